package create_reservation

import (
	"time"

	createReservation "github.com/m04kA/SMC-CampsiteService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Arrival   string `json:"arrival"`   // "2021-01-01"
	Departure string `json:"departure"` // "2021-01-03"
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
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	return &createReservation.Request{
		FullName:  r.FullName,
		Email:     r.Email,
		Arrival:   r.Arrival,
		Departure: r.Departure,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
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
