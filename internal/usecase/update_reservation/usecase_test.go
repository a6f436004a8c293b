package update_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CampsiteService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CampsiteService/pkg/daterange"
	"github.com/m04kA/SMC-CampsiteService/pkg/ptr"
)

const existingID = "3fa85f64-5717-4562-b3fc-2c963f66afa6"

type fakeReservationRepo struct {
	existing  *domain.Reservation
	updateErr error
	updated   *domain.Reservation
}

func (r *fakeReservationRepo) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	if r.existing == nil || r.existing.ID != id {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r.existing, nil
}

func (r *fakeReservationRepo) Update(_ context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}

	updated := *reservation
	updated.UpdatedAt = time.Now()
	r.updated = &updated
	return &updated, nil
}

// fakeTxManager выполняет fn без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := daterange.ParseDate(s)
	require.NoError(t, err)
	return d
}

func existingReservation(t *testing.T) *domain.Reservation {
	t.Helper()
	return &domain.Reservation{
		ID:        existingID,
		FullName:  "John Smith",
		Email:     "user@domain.tld",
		Dates:     daterange.New(mustDate(t, "2021-06-10"), mustDate(t, "2021-06-12")),
		CreatedAt: time.Date(2021, 5, 20, 10, 0, 0, 0, time.UTC),
	}
}

func newTestUseCase(repo *fakeReservationRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, fakeTxManager{}, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func fixedNow() time.Time {
	return time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestExecute_MergePartialFields(t *testing.T) {
	t.Run("only name changes", func(t *testing.T) {
		repo := &fakeReservationRepo{existing: existingReservation(t)}
		uc := newTestUseCase(repo, fixedNow())

		resp, err := uc.Execute(context.Background(), &Request{
			ID:       existingID,
			FullName: ptr.Ptr("Jane Brown"),
		})
		require.NoError(t, err)

		assert.Equal(t, "Jane Brown", resp.FullName)
		assert.Equal(t, "user@domain.tld", resp.Email)
		assert.Equal(t, "2021-06-10", resp.Arrival)
		assert.Equal(t, "2021-06-12", resp.Departure)
	})

	t.Run("only dates change", func(t *testing.T) {
		repo := &fakeReservationRepo{existing: existingReservation(t)}
		uc := newTestUseCase(repo, fixedNow())

		resp, err := uc.Execute(context.Background(), &Request{
			ID:        existingID,
			Arrival:   ptr.Ptr("2021-06-15"),
			Departure: ptr.Ptr("2021-06-17"),
		})
		require.NoError(t, err)

		assert.Equal(t, "John Smith", resp.FullName)
		assert.Equal(t, "2021-06-15", resp.Arrival)
		assert.Equal(t, "2021-06-17", resp.Departure)
	})

	t.Run("only arrival changes keeps existing departure", func(t *testing.T) {
		repo := &fakeReservationRepo{existing: existingReservation(t)}
		uc := newTestUseCase(repo, fixedNow())

		resp, err := uc.Execute(context.Background(), &Request{
			ID:      existingID,
			Arrival: ptr.Ptr("2021-06-09"),
		})
		require.NoError(t, err)

		assert.Equal(t, "2021-06-09", resp.Arrival)
		assert.Equal(t, "2021-06-12", resp.Departure)
	})
}

func TestExecute_MergedCandidateRevalidated(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			// Сдвиг только выезда растягивает проживание сверх максимума
			"departure shift makes stay too long",
			&Request{ID: existingID, Departure: ptr.Ptr("2021-06-15")},
			domain.ErrStayTooLong,
		},
		{
			"arrival shift makes stay empty",
			&Request{ID: existingID, Arrival: ptr.Ptr("2021-06-12")},
			domain.ErrStayTooShort,
		},
		{
			"arrival shift violates lead time",
			&Request{ID: existingID, Arrival: ptr.Ptr("2021-06-01"), Departure: ptr.Ptr("2021-06-02")},
			domain.ErrArrivalTooSoon,
		},
		{
			"arrival shift beyond horizon",
			&Request{ID: existingID, Arrival: ptr.Ptr("2021-07-15"), Departure: ptr.Ptr("2021-07-16")},
			domain.ErrArrivalTooFarAhead,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeReservationRepo{existing: existingReservation(t)}
			uc := newTestUseCase(repo, fixedNow())

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, repo.updated, "rejected candidate must not be written")
		})
	}
}

func TestExecute_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{"missing id", &Request{}},
		{"empty fullName", &Request{ID: existingID, FullName: ptr.Ptr("")}},
		{"empty email", &Request{ID: existingID, Email: ptr.Ptr("")}},
		{"malformed arrival", &Request{ID: existingID, Arrival: ptr.Ptr("15/06/2021")}},
		{"malformed departure", &Request{ID: existingID, Departure: ptr.Ptr("tomorrow")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeReservationRepo{existing: existingReservation(t)}
			uc := newTestUseCase(repo, fixedNow())

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ReservationNotFound(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, fixedNow())

	_, err := uc.Execute(context.Background(), &Request{
		ID:       "00000000-0000-0000-0000-000000000000",
		FullName: ptr.Ptr("Jane Brown"),
	})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_DatesConflict(t *testing.T) {
	repo := &fakeReservationRepo{
		existing:  existingReservation(t),
		updateErr: reservationRepo.ErrDatesConflict,
	}
	uc := newTestUseCase(repo, fixedNow())

	_, err := uc.Execute(context.Background(), &Request{
		ID:        existingID,
		Arrival:   ptr.Ptr("2021-06-20"),
		Departure: ptr.Ptr("2021-06-22"),
	})
	assert.ErrorIs(t, err, ErrDatesConflict)
}
