package create_reservation

import (
	"errors"
	"net/http"
	"net/mail"

	"github.com/m04kA/SMC-CampsiteService/internal/api/handlers"
	"github.com/m04kA/SMC-CampsiteService/internal/domain"
	createReservation "github.com/m04kA/SMC-CampsiteService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidEmail       = "email is not a valid email address"
	msgDatesConflict      = "requested dates are no longer available"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Форма email - тонкая проверка на границе; остальное валидирует ядро
	if _, err := mail.ParseAddress(req.Email); err != nil {
		h.logger.Warn("POST /reservations - Invalid email: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmail)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrDatesConflict):
			h.logger.Warn("POST /reservations - Dates conflict: arrival=%s, departure=%s",
				req.Arrival, req.Departure)
			handlers.RespondConflict(w, msgDatesConflict)

		case errors.Is(err, domain.ErrStayTooShort),
			errors.Is(err, domain.ErrStayTooLong),
			errors.Is(err, domain.ErrArrivalTooSoon),
			errors.Is(err, domain.ErrArrivalTooFarAhead):
			h.logger.Warn("POST /reservations - Policy rejected: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
