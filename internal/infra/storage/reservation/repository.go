package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
	"github.com/m04kA/SMC-CampsiteService/pkg/daterange"
	"github.com/m04kA/SMC-CampsiteService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CampsiteService/pkg/psqlbuilder"
)

// overlapConstraint имя exclusion constraint, запрещающего пересекающиеся
// диапазоны дат: EXCLUDE USING gist (dates WITH &&).
// Ровно это ограничение, проверяемое Postgres атомарно в момент коммита,
// гарантирует отсутствие конфликтов при конкурентных записях - никакой
// application-level check-then-write здесь нет.
const overlapConstraint = "reservation_prevent_overlapping"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция (через context.Value),
// использует её. При нарушении exclusion constraint возвращает
// ErrDatesConflict; любая другая ошибка БД остается непрозрачной
// и НЕ интерпретируется как конфликт.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"full_name",
			"email",
			"dates",
		).
		Values(
			reservation.FullName,
			reservation.Email,
			reservation.Dates,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isOverlapViolation(err) {
			return nil, ErrDatesConflict
		}
		// Драйверная ошибка оборачивается прозрачно: txmanager распознает
		// по ней serialization failure и повторяет транзакцию
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// Update полностью заменяет данные бронирования (имя, email, даты).
// Exclusion constraint перепроверяется Postgres и для UPDATE, поэтому
// конфликтная смена дат возвращает ErrDatesConflict.
func (r *Repository) Update(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("full_name", reservation.FullName).
		Set("email", reservation.Email).
		Set("dates", reservation.Dates).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": reservation.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		if isOverlapViolation(err) {
			return nil, ErrDatesConflict
		}
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"full_name",
		"email",
		"dates",
		"created_at",
		"updated_at",
	).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var reservation domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&reservation.FullName,
		&reservation.Email,
		&reservation.Dates,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %w", ErrScanRow, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return &reservation, nil
}

// DeleteByID удаляет бронирование по ID
func (r *Repository) DeleteByID(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByID - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByID - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// ListOverlapping получает все бронирования, пересекающиеся с окном запроса.
// Окно передается как ВКЛЮЧАЮЩИЙ диапазон [start,end], чтобы бронирование,
// начинающееся ровно в последний день окна, тоже попало в выборку.
// Оператор && использует то же определение пересечения, что и
// daterange.Range.Overlaps, и обслуживается GiST-индексом constraint'а.
func (r *Repository) ListOverlapping(ctx context.Context, window daterange.Range) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	inclusiveWindow := fmt.Sprintf("[%s,%s]",
		daterange.FormatDate(window.Start), daterange.FormatDate(window.End))

	query, args, err := psqlbuilder.Select(
		"id",
		"full_name",
		"email",
		"dates",
		"created_at",
		"updated_at",
	).
		From("reservations").
		Where(squirrel.Expr("dates && ?::daterange", inclusiveWindow)).
		OrderBy("lower(dates) ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// scanReservations сканирует результаты запроса в слайс бронирований
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var reservation domain.Reservation
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&reservation.ID,
			&reservation.FullName,
			&reservation.Email,
			&reservation.Dates,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %w", ErrScanRow, err)
		}

		reservation.CreatedAt = createdAt.Time
		reservation.UpdatedAt = updatedAt.Time

		reservations = append(reservations, &reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %w", ErrScanRow, err)
	}

	return reservations, nil
}

// isOverlapViolation проверяет, что ошибка - это срабатывание exclusion
// constraint на пересечение дат. Любое другое нарушение ограничений
// конфликтом НЕ считается.
func isOverlapViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Constraint == overlapConstraint
}
