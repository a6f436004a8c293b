package update_reservation

import (
	"errors"
	"net/http"
	"net/mail"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CampsiteService/internal/api/handlers"
	"github.com/m04kA/SMC-CampsiteService/internal/domain"
	updateReservation "github.com/m04kA/SMC-CampsiteService/internal/usecase/update_reservation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidEmail       = "email is not a valid email address"
	msgNotFound           = "reservation does not exist"
	msgDatesConflict      = "requested dates are no longer available"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID := vars["reservationId"]

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Email != nil {
		if _, err := mail.ParseAddress(*req.Email); err != nil {
			h.logger.Warn("PATCH /reservations/{id} - Invalid email: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEmail)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(reservationID))
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id} - Reservation not found: id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateReservation.ErrDatesConflict):
			h.logger.Warn("PATCH /reservations/{id} - Dates conflict: id=%s", reservationID)
			handlers.RespondConflict(w, msgDatesConflict)

		case errors.Is(err, domain.ErrStayTooShort),
			errors.Is(err, domain.ErrStayTooLong),
			errors.Is(err, domain.ErrArrivalTooSoon),
			errors.Is(err, domain.ErrArrivalTooFarAhead):
			h.logger.Warn("PATCH /reservations/{id} - Policy rejected: id=%s, %v", reservationID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id} - Invalid input: id=%s, %v", reservationID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /reservations/{id} - Failed to update reservation: id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id} - Reservation updated successfully: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
