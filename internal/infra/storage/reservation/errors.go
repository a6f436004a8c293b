package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrDatesConflict возвращается, когда коммит нарушил бы инвариант
	// "никакие два бронирования не пересекаются". Это ЕДИНСТВЕННЫЙ
	// авторитетный сигнал конфликта: любая другая ошибка хранилища
	// не является решением о доступности дат.
	ErrDatesConflict = errors.New("reservation.repository: requested dates are no longer available")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
