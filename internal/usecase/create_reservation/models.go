package create_reservation

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	FullName  string // Имя, на которое оформляется бронирование
	Email     string // Контактный email
	Arrival   string // Дата заезда в формате YYYY-MM-DD
	Departure string // Дата выезда в формате YYYY-MM-DD (день выезда свободен)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        string    // ID созданного бронирования
	FullName  string    // Имя
	Email     string    // Email
	Arrival   string    // Дата заезда
	Departure string    // Дата выезда
	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
