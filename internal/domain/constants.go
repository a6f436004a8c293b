package domain

import "time"

// Business validation constants
const (
	// MinStayDays минимальная длительность бронирования в днях
	MinStayDays = 1
	// MaxStayDays максимальная длительность бронирования в днях
	MaxStayDays = 3
	// MinAdvanceNotice минимальное время от текущего момента до заезда.
	// Сравнение идет по дате и времени: "за день" значит минимум 24 часа,
	// а не просто другая календарная дата.
	MinAdvanceNotice = 24 * time.Hour
	// HorizonMonths горизонт бронирования в месяцах от текущего момента
	HorizonMonths = 1
)
