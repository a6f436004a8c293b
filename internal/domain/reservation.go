package domain

import (
	"time"

	"github.com/m04kA/SMC-CampsiteService/pkg/daterange"
)

// Reservation represents an exclusive-use campsite reservation.
// Dates is the single source of truth for the occupied period; arrival and
// departure are derived from it, not stored separately.
type Reservation struct {
	ID       string
	FullName string
	Email    string
	Dates    daterange.Range

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Arrival returns the first occupied date as YYYY-MM-DD
func (r *Reservation) Arrival() string {
	return daterange.FormatDate(r.Dates.Start)
}

// Departure returns the departure date as YYYY-MM-DD.
// The departure day itself is free for other reservations - the stored
// range is half-open.
func (r *Reservation) Departure() string {
	return daterange.FormatDate(r.Dates.End)
}

// StayDays returns the length of the stay in days
func (r *Reservation) StayDays() int {
	return r.Dates.Days()
}
