package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CampsiteService/pkg/daterange"
)

func reservationFor(t *testing.T, arrival, departure string) *Reservation {
	t.Helper()

	start, err := daterange.ParseDate(arrival)
	require.NoError(t, err)
	end, err := daterange.ParseDate(departure)
	require.NoError(t, err)

	return &Reservation{
		FullName: "John Smith",
		Email:    "user@domain.tld",
		Dates:    daterange.New(start, end),
	}
}

// midnight полночь указанной даты в UTC (для сценариев "сейчас ровно полночь")
func midnight(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestValidateReservation_Duration(t *testing.T) {
	now := midnight("2021-06-01")

	tests := []struct {
		name      string
		arrival   string
		departure string
		wantErr   error
	}{
		{"one day stay accepted", "2021-06-10", "2021-06-11", nil},
		{"three day stay accepted", "2021-06-10", "2021-06-13", nil},
		{"zero day stay rejected", "2021-06-10", "2021-06-10", ErrStayTooShort},
		{"negative stay rejected", "2021-06-11", "2021-06-10", ErrStayTooShort},
		{"four day stay rejected", "2021-06-10", "2021-06-14", ErrStayTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReservation(reservationFor(t, tt.arrival, tt.departure), now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateReservation_LeadTime(t *testing.T) {
	t.Run("at midnight arrival exactly one day out is accepted", func(t *testing.T) {
		now := midnight("2021-06-10")
		err := ValidateReservation(reservationFor(t, "2021-06-11", "2021-06-12"), now)
		assert.NoError(t, err)
	})

	t.Run("after midnight arrival one calendar day out is rejected", func(t *testing.T) {
		// "за день" значит минимум 24 часа, а не другая календарная дата
		now := midnight("2021-06-10").Add(9 * time.Hour)
		err := ValidateReservation(reservationFor(t, "2021-06-11", "2021-06-12"), now)
		assert.ErrorIs(t, err, ErrArrivalTooSoon)
	})

	t.Run("after midnight the day after next is accepted", func(t *testing.T) {
		now := midnight("2021-06-10").Add(9 * time.Hour)
		err := ValidateReservation(reservationFor(t, "2021-06-12", "2021-06-13"), now)
		assert.NoError(t, err)
	})

	t.Run("arrival today is rejected", func(t *testing.T) {
		now := midnight("2021-06-10").Add(9 * time.Hour)
		err := ValidateReservation(reservationFor(t, "2021-06-10", "2021-06-11"), now)
		assert.ErrorIs(t, err, ErrArrivalTooSoon)
	})
}

func TestValidateReservation_Horizon(t *testing.T) {
	t.Run("exactly one month out is accepted", func(t *testing.T) {
		now := midnight("2021-06-10")
		err := ValidateReservation(reservationFor(t, "2021-07-10", "2021-07-11"), now)
		assert.NoError(t, err)
	})

	t.Run("more than one month out is rejected", func(t *testing.T) {
		now := midnight("2021-06-10")
		err := ValidateReservation(reservationFor(t, "2021-07-11", "2021-07-12"), now)
		assert.ErrorIs(t, err, ErrArrivalTooFarAhead)
	})

	t.Run("one month out with non-midnight now is accepted", func(t *testing.T) {
		now := midnight("2021-06-10").Add(15 * time.Hour)
		err := ValidateReservation(reservationFor(t, "2021-07-10", "2021-07-11"), now)
		assert.NoError(t, err)
	})
}

func TestReservationAccessors(t *testing.T) {
	r := reservationFor(t, "2021-06-10", "2021-06-13")

	assert.Equal(t, "2021-06-10", r.Arrival())
	assert.Equal(t, "2021-06-13", r.Departure())
	assert.Equal(t, 3, r.StayDays())
}
