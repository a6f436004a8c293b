package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
	"github.com/m04kA/SMC-CampsiteService/pkg/daterange"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// ListOverlapping получает все бронирования, пересекающиеся с окном запроса
	ListOverlapping(ctx context.Context, window daterange.Range) ([]*domain.Reservation, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
