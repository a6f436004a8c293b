package get_reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CampsiteService/internal/api/handlers"
	"github.com/m04kA/SMC-CampsiteService/internal/service/reservations"
	"github.com/m04kA/SMC-CampsiteService/internal/service/reservations/models"
)

const msgNotFound = "reservation does not exist"

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Arrival   string `json:"arrival"`
	Departure string `json:"departure"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Handle GET /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID := vars["reservationId"]

	reservation, err := h.service.GetByID(r.Context(), reservationID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{id} - Reservation not found: id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /reservations/{id} - Failed to get reservation: id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/{id} - Reservation retrieved successfully: id=%s", reservationID)
	handlers.RespondJSON(w, http.StatusOK, fromServiceModel(reservation))
}

func fromServiceModel(m *models.ReservationResponse) *ReservationResponse {
	return &ReservationResponse{
		ID:        m.ID,
		FullName:  m.FullName,
		Email:     m.Email,
		Arrival:   m.Arrival,
		Departure: m.Departure,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
		UpdatedAt: m.UpdatedAt.Format(time.RFC3339),
	}
}
