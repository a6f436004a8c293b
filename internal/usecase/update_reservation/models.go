package update_reservation

import "time"

// Request модель запроса на обновление бронирования.
// Nil-поля не меняются - они берутся из существующей записи.
type Request struct {
	ID        string  // ID бронирования
	FullName  *string // Новое имя (опционально)
	Email     *string // Новый email (опционально)
	Arrival   *string // Новая дата заезда в формате YYYY-MM-DD (опционально)
	Departure *string // Новая дата выезда в формате YYYY-MM-DD (опционально)
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID        string    // ID бронирования
	FullName  string    // Имя
	Email     string    // Email
	Arrival   string    // Дата заезда
	Departure string    // Дата выезда
	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
