package get_availability

// Request модель запроса на поиск свободных дат.
// Обе границы опциональны - пустая строка означает "не задана".
type Request struct {
	Start string // Начало окна в формате YYYY-MM-DD (опционально)
	End   string // Конец окна в формате YYYY-MM-DD (опционально)
}

// Response модель ответа со списком свободных дат
type Response struct {
	// Dates свободные даты в формате YYYY-MM-DD по возрастанию,
	// ограниченные окном запроса и горизонтом бронирования
	Dates []string
}
