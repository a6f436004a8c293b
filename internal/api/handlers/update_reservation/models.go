package update_reservation

import (
	"time"

	updateReservation "github.com/m04kA/SMC-CampsiteService/internal/usecase/update_reservation"
)

// UpdateReservationRequest HTTP request model.
// Отсутствующие поля остаются без изменений.
type UpdateReservationRequest struct {
	FullName  *string `json:"fullName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Arrival   *string `json:"arrival,omitempty"`
	Departure *string `json:"departure,omitempty"`
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest(id string) *updateReservation.Request {
	return &updateReservation.Request{
		ID:        id,
		FullName:  r.FullName,
		Email:     r.Email,
		Arrival:   r.Arrival,
		Departure: r.Departure,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:        resp.ID,
		FullName:  resp.FullName,
		Email:     resp.Email,
		Arrival:   resp.Arrival,
		Departure: resp.Departure,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
