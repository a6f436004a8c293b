package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CampsiteService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CampsiteService/pkg/daterange"
)

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования.
// Бизнес-правила проверяются до записи, но гарантия отсутствия пересечений
// дает exclusion constraint хранилища: при конкурентных запросах на
// пересекающиеся даты ровно один коммит проходит, остальные получают
// ErrDatesConflict.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: name=%s, arrival=%s, departure=%s",
		req.FullName, req.Arrival, req.Departure)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Парсим даты - формат перепроверяем сами, upstream-проверкам не доверяем
	dates, err := parseDates(req.Arrival, req.Departure)
	if err != nil {
		uc.logger.Warn("CreateReservation: date parsing failed: %v", err)
		return nil, err
	}

	// 3. Собираем кандидата и прогоняем через бизнес-правила
	candidate := &domain.Reservation{
		FullName: req.FullName,
		Email:    req.Email,
		Dates:    dates,
	}

	now := uc.timeProvider.Now()
	if err := domain.ValidateReservation(candidate, now); err != nil {
		uc.logger.Warn("CreateReservation: policy rejected %s: %v", dates, err)
		return nil, err
	}

	// 4. Коммитим в сериализуемой транзакции
	var result *domain.Reservation
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, err := uc.reservationRepo.Create(txCtx, candidate)
		if err != nil {
			return err
		}
		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, reservationRepo.ErrDatesConflict) {
			uc.logger.Warn("CreateReservation: dates %s conflict with an existing reservation", dates)
			return nil, ErrDatesConflict
		}
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%s", result.ID)

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

// parseDates парсит даты заезда и выезда в полуоткрытый диапазон
func parseDates(arrival, departure string) (daterange.Range, error) {
	start, err := daterange.ParseDate(arrival)
	if err != nil {
		return daterange.Range{}, fmt.Errorf("%w: arrival not in YYYY-MM-DD format", ErrInvalidInput)
	}

	end, err := daterange.ParseDate(departure)
	if err != nil {
		return daterange.Range{}, fmt.Errorf("%w: departure not in YYYY-MM-DD format", ErrInvalidInput)
	}

	return daterange.New(start, end), nil
}
