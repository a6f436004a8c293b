package create_reservation

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.FullName == "" {
		return fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}

	if req.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if req.Arrival == "" {
		return fmt.Errorf("%w: arrival is required", ErrInvalidInput)
	}

	if req.Departure == "" {
		return fmt.Errorf("%w: departure is required", ErrInvalidInput)
	}

	return nil
}
