package get_availability

import "errors"

var (
	// ErrInvalidRange возвращается, когда начало окна позже конца
	ErrInvalidRange = errors.New("requested start date must be earlier than requested end date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
