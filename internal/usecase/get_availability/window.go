package get_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
	"github.com/m04kA/SMC-CampsiteService/pkg/daterange"
)

// resolveWindow вычисляет окно запроса [start, end] (обе даты включительно):
// - обе границы не заданы: [сегодня, сегодня + месяц]
// - задано только начало: [start, start + месяц]
// - задан только конец: [end - месяц, end]
// - заданы обе: как есть
// Возвращает ErrInvalidRange, если начало строго позже конца.
func resolveWindow(req *Request, today time.Time) (daterange.Range, error) {
	hasStart := req.Start != ""
	hasEnd := req.End != ""

	var start, end time.Time
	var err error

	switch {
	case !hasStart && !hasEnd:
		start = today
		end = today.AddDate(0, domain.HorizonMonths, 0)

	case hasStart && !hasEnd:
		start, err = parseWindowDate(req.Start, "start")
		if err != nil {
			return daterange.Range{}, err
		}
		end = start.AddDate(0, domain.HorizonMonths, 0)

	case !hasStart && hasEnd:
		end, err = parseWindowDate(req.End, "end")
		if err != nil {
			return daterange.Range{}, err
		}
		start = end.AddDate(0, -domain.HorizonMonths, 0)

	default:
		start, err = parseWindowDate(req.Start, "start")
		if err != nil {
			return daterange.Range{}, err
		}
		end, err = parseWindowDate(req.End, "end")
		if err != nil {
			return daterange.Range{}, err
		}
	}

	if daterange.Days(start, end) < 0 {
		return daterange.Range{}, ErrInvalidRange
	}

	return daterange.New(start, end), nil
}

// clampWindow обрезает окно до горизонта бронирования [сегодня, сегодня+месяц].
// Даты вне горизонта нельзя ни забронировать, ни отчитаться по ним -
// обрезаем молча, а не ошибкой: это ограничивает стоимость запроса к БД
// и повышает вероятность попадания в кэш.
func clampWindow(window daterange.Range, today time.Time) daterange.Range {
	horizon := today.AddDate(0, domain.HorizonMonths, 0)

	if window.Start.Before(today) {
		window.Start = today
	}

	if window.End.After(horizon) {
		window.End = horizon
	}

	return window
}

// parseWindowDate парсит границу окна, оборачивая ошибку формата
func parseWindowDate(s, field string) (time.Time, error) {
	t, err := daterange.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s not in YYYY-MM-DD format", ErrInvalidInput, field)
	}
	return t, nil
}
