package daterange

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateFormat формат календарной даты (YYYY-MM-DD)
const DateFormat = "2006-01-02"

var (
	// ErrInvalidFormat возвращается, когда строка не является датой
	// или диапазоном дат в каноническом формате
	ErrInvalidFormat = errors.New("daterange: invalid format")

	// ErrInvalidRange возвращается, когда начало диапазона не раньше конца
	ErrInvalidRange = errors.New("daterange: start must be before end")
)

// Range полуоткрытый диапазон календарных дат [Start, End).
// Start и End хранятся как полночь UTC, время суток не моделируется.
// Канонический текстовый вид совпадает с выводом Postgres для daterange:
// "[2021-01-01,2021-01-04)".
type Range struct {
	Start time.Time
	End   time.Time
}

// ParseDate парсит дату в формате YYYY-MM-DD (полночь UTC)
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidFormat, s)
	}
	return t, nil
}

// FormatDate форматирует дату как YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// New создает диапазон [start, end)
func New(start, end time.Time) Range {
	return Range{Start: start, End: end}
}

// Parse парсит канонический вид "[start,end)"
func Parse(s string) (Range, error) {
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, ")") {
		return Range{}, fmt.Errorf("%w: %q is not a half-open [start,end) range", ErrInvalidFormat, s)
	}

	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("%w: %q is not a half-open [start,end) range", ErrInvalidFormat, s)
	}

	start, err := ParseDate(parts[0])
	if err != nil {
		return Range{}, err
	}

	end, err := ParseDate(parts[1])
	if err != nil {
		return Range{}, err
	}

	if Days(start, end) < 0 {
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}

	return Range{Start: start, End: end}, nil
}

// String возвращает канонический вид "[start,end)"
func (r Range) String() string {
	return fmt.Sprintf("[%s,%s)", FormatDate(r.Start), FormatDate(r.End))
}

// Days возвращает количество календарных дней от a до b.
// Результат отрицательный, если b раньше a.
func Days(a, b time.Time) int {
	a = midnightUTC(a)
	b = midnightUTC(b)
	return int(b.Sub(a) / (24 * time.Hour))
}

// Days возвращает длину диапазона в днях
func (r Range) Days() int {
	return Days(r.Start, r.End)
}

// Dates возвращает возрастающий список дат от start до end включительно.
// Пустой список, если end раньше start.
func Dates(start, end time.Time) []time.Time {
	size := Days(start, end)
	if size < 0 {
		return []time.Time{}
	}

	dates := make([]time.Time, 0, size+1)
	for d := 0; d <= size; d++ {
		dates = append(dates, midnightUTC(start).AddDate(0, 0, d))
	}
	return dates
}

// CoveredDates возвращает даты, занятые диапазоном: от Start до End
// НЕ включительно. День End свободен - диапазон полуоткрытый.
func (r Range) CoveredDates() []time.Time {
	return Dates(r.Start, r.End.AddDate(0, 0, -1))
}

// Overlaps проверяет пересечение двух полуоткрытых диапазонов.
// Диапазоны пересекаются, только если a.Start < b.End И b.Start < a.End
// (строгие неравенства). Смежные диапазоны (a.End == b.Start) НЕ пересекаются,
// поэтому бронирования "впритык" допустимы.
func (r Range) Overlaps(o Range) bool {
	return r.Start.Before(o.End) && o.Start.Before(r.End)
}

// Value сериализует диапазон для колонки daterange
func (r Range) Value() (driver.Value, error) {
	return r.String(), nil
}

// Scan читает диапазон из колонки daterange.
// Postgres всегда возвращает daterange в каноническом виде [a,b).
func (r *Range) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		parsed, err := Parse(string(v))
		if err != nil {
			return err
		}
		*r = parsed
		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*r = parsed
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into Range", ErrInvalidFormat, src)
	}
}

// midnightUTC обнуляет время суток, чтобы сравнивать только даты
func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
