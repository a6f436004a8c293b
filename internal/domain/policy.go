package domain

import (
	"errors"
	"time"
)

// Ошибки бизнес-правил бронирования. Тексты описывают конкретное
// нарушенное правило и уходят клиенту как есть.
var (
	// ErrStayTooShort возвращается, когда бронирование короче одного дня
	ErrStayTooShort = errors.New("time from arrival to departure is not at least one day")

	// ErrStayTooLong возвращается, когда бронирование длиннее трех дней
	ErrStayTooLong = errors.New("time from arrival to departure is greater than maximum three days")

	// ErrArrivalTooSoon возвращается, когда до заезда меньше суток
	ErrArrivalTooSoon = errors.New("reservations not accepted later than one day in advance")

	// ErrArrivalTooFarAhead возвращается, когда заезд дальше месяца вперед
	ErrArrivalTooFarAhead = errors.New("reservations not accepted further than one month in advance")
)

// ValidateReservation проверяет бизнес-правила для кандидата на бронирование
// относительно переданного текущего момента. Выполняется перед каждым
// созданием и каждым обновлением - для обновления проверяется полностью
// слитая сущность, а не только измененные поля. Без побочных эффектов и I/O.
//
// Проверка на пересечение с другими бронированиями сюда НЕ входит:
// единственный источник истины для конфликтов - exclusion constraint
// в хранилище, срабатывающий в момент коммита.
func ValidateReservation(r *Reservation, now time.Time) error {
	stay := r.StayDays()

	if stay < MinStayDays {
		return ErrStayTooShort
	}

	if stay > MaxStayDays {
		return ErrStayTooLong
	}

	// Заезд приводим к полуночи в зоне "сейчас", чтобы сравнение
	// дата+время было корректным
	arrival := atMidnight(r.Dates.Start, now.Location())

	if now.Add(MinAdvanceNotice).After(arrival) {
		return ErrArrivalTooSoon
	}

	if arrival.After(now.AddDate(0, HorizonMonths, 0)) {
		return ErrArrivalTooFarAhead
	}

	return nil
}

func atMidnight(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
