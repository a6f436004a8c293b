package create_reservation

import "errors"

// Ошибки бизнес-правил (too short / too soon / ...) приходят из
// internal/domain и пробрасываются наверх как есть.
var (
	// ErrDatesConflict возвращается, когда даты уже заняты другим
	// бронированием - зафиксировано хранилищем в момент коммита
	ErrDatesConflict = errors.New("create_reservation: requested dates are no longer available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
