package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CampsiteService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CampsiteService/pkg/daterange"
)

const existingID = "3fa85f64-5717-4562-b3fc-2c963f66afa6"

type fakeReservationRepo struct {
	existing *domain.Reservation
	getErr   error
	delErr   error
	deleted  []string
}

func (r *fakeReservationRepo) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.existing == nil || r.existing.ID != id {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r.existing, nil
}

func (r *fakeReservationRepo) DeleteByID(_ context.Context, id string) error {
	if r.delErr != nil {
		return r.delErr
	}
	r.deleted = append(r.deleted, id)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func existingReservation(t *testing.T) *domain.Reservation {
	t.Helper()

	start, err := daterange.ParseDate("2021-06-10")
	require.NoError(t, err)
	end, err := daterange.ParseDate("2021-06-12")
	require.NoError(t, err)

	return &domain.Reservation{
		ID:        existingID,
		FullName:  "John Smith",
		Email:     "user@domain.tld",
		Dates:     daterange.New(start, end),
		CreatedAt: time.Date(2021, 5, 20, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2021, 5, 20, 10, 0, 0, 0, time.UTC),
	}
}

func TestGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := &fakeReservationRepo{existing: existingReservation(t)}
		svc := NewService(repo, noopLogger{})

		resp, err := svc.GetByID(context.Background(), existingID)
		require.NoError(t, err)

		assert.Equal(t, existingID, resp.ID)
		assert.Equal(t, "John Smith", resp.FullName)
		assert.Equal(t, "2021-06-10", resp.Arrival)
		assert.Equal(t, "2021-06-12", resp.Departure)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeReservationRepo{}
		svc := NewService(repo, noopLogger{})

		_, err := svc.GetByID(context.Background(), existingID)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &fakeReservationRepo{getErr: errors.New("connection refused")}
		svc := NewService(repo, noopLogger{})

		_, err := svc.GetByID(context.Background(), existingID)
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestCancel(t *testing.T) {
	t.Run("deletes the record", func(t *testing.T) {
		repo := &fakeReservationRepo{existing: existingReservation(t)}
		svc := NewService(repo, noopLogger{})

		err := svc.Cancel(context.Background(), existingID)
		require.NoError(t, err)
		assert.Equal(t, []string{existingID}, repo.deleted)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeReservationRepo{delErr: reservationRepo.ErrReservationNotFound}
		svc := NewService(repo, noopLogger{})

		err := svc.Cancel(context.Background(), existingID)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &fakeReservationRepo{delErr: errors.New("connection refused")}
		svc := NewService(repo, noopLogger{})

		err := svc.Cancel(context.Background(), existingID)
		assert.ErrorIs(t, err, ErrInternal)
	})
}
