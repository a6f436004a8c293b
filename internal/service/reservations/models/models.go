package models

import (
	"time"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
)

// ReservationResponse модель бронирования для внешних слоев.
// Заезд и выезд - производные от хранимого диапазона дат.
type ReservationResponse struct {
	ID        string
	FullName  string
	Email     string
	Arrival   string
	Departure string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FromDomainReservation конвертирует domain-сущность в response-модель.
// Потребители получают копию - мутабельная ссылка на запись остается
// только у хранилища.
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:        r.ID,
		FullName:  r.FullName,
		Email:     r.Email,
		Arrival:   r.Arrival(),
		Departure: r.Departure(),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
