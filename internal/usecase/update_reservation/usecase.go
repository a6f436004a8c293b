package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CampsiteService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CampsiteService/pkg/daterange"
)

// UseCase use case для частичного обновления бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case обновления бронирования.
// Переданные поля накладываются на существующую запись, и полученный
// ПОЛНЫЙ кандидат проходит тот же путь валидации, что и при создании -
// логика проверки не расходится между create и update.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%s", req.ID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Получаем существующее бронирование
		existing, err := uc.reservationRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		// 3. Сливаем переданные поля с существующими в полного кандидата
		candidate, err := mergeReservation(existing, req)
		if err != nil {
			return err
		}

		// 4. Прогоняем слитого кандидата через бизнес-правила
		now := uc.timeProvider.Now()
		if err := domain.ValidateReservation(candidate, now); err != nil {
			return err
		}

		// 5. Полная замена записи; exclusion constraint перепроверит даты
		updated, err := uc.reservationRepo.Update(txCtx, candidate)
		if err != nil {
			return err
		}

		result = updated
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, reservationRepo.ErrReservationNotFound):
			uc.logger.Warn("UpdateReservation: reservation id=%s not found", req.ID)
			return nil, ErrReservationNotFound

		case errors.Is(err, reservationRepo.ErrDatesConflict):
			uc.logger.Warn("UpdateReservation: new dates for id=%s conflict with an existing reservation", req.ID)
			return nil, ErrDatesConflict

		case errors.Is(err, domain.ErrStayTooShort),
			errors.Is(err, domain.ErrStayTooLong),
			errors.Is(err, domain.ErrArrivalTooSoon),
			errors.Is(err, domain.ErrArrivalTooFarAhead),
			errors.Is(err, ErrInvalidInput):
			uc.logger.Warn("UpdateReservation: merged candidate for id=%s rejected: %v", req.ID, err)
			return nil, err

		default:
			uc.logger.Error("UpdateReservation: failed to update reservation id=%s: %v", req.ID, err)
			return nil, fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%s", result.ID)

	return &Response{
		ID:        result.ID,
		FullName:  result.FullName,
		Email:     result.Email,
		Arrival:   result.Arrival(),
		Departure: result.Departure(),
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	if req.FullName != nil && *req.FullName == "" {
		return fmt.Errorf("%w: fullName must not be empty", ErrInvalidInput)
	}

	if req.Email != nil && *req.Email == "" {
		return fmt.Errorf("%w: email must not be empty", ErrInvalidInput)
	}

	return nil
}

// mergeReservation накладывает переданные поля на существующую запись
// и возвращает полного кандидата на замену
func mergeReservation(existing *domain.Reservation, req *Request) (*domain.Reservation, error) {
	candidate := &domain.Reservation{
		ID:        existing.ID,
		FullName:  existing.FullName,
		Email:     existing.Email,
		Dates:     existing.Dates,
		CreatedAt: existing.CreatedAt,
	}

	if req.FullName != nil {
		candidate.FullName = *req.FullName
	}

	if req.Email != nil {
		candidate.Email = *req.Email
	}

	arrival := candidate.Dates.Start
	departure := candidate.Dates.End

	if req.Arrival != nil {
		parsed, err := daterange.ParseDate(*req.Arrival)
		if err != nil {
			return nil, fmt.Errorf("%w: arrival not in YYYY-MM-DD format", ErrInvalidInput)
		}
		arrival = parsed
	}

	if req.Departure != nil {
		parsed, err := daterange.ParseDate(*req.Departure)
		if err != nil {
			return nil, fmt.Errorf("%w: departure not in YYYY-MM-DD format", ErrInvalidInput)
		}
		departure = parsed
	}

	candidate.Dates = daterange.New(arrival, departure)

	return candidate, nil
}
