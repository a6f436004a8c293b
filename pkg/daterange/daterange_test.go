package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2021-06-15")
		require.NoError(t, err)
		assert.Equal(t, date("2021-06-15"), got)
	})

	t.Run("invalid format", func(t *testing.T) {
		cases := []string{"", "2021-6-15", "15-06-2021", "2021/06/15", "not-a-date", "2021-13-01"}
		for _, c := range cases {
			_, err := ParseDate(c)
			assert.ErrorIs(t, err, ErrInvalidFormat, "input %q", c)
		}
	})
}

func TestParseAndString(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		r, err := Parse("[2021-06-15,2021-06-18)")
		require.NoError(t, err)
		assert.Equal(t, date("2021-06-15"), r.Start)
		assert.Equal(t, date("2021-06-18"), r.End)
		assert.Equal(t, "[2021-06-15,2021-06-18)", r.String())
	})

	t.Run("invalid range text", func(t *testing.T) {
		cases := []string{"", "2021-06-15,2021-06-18", "(2021-06-15,2021-06-18)", "[2021-06-15,2021-06-18]", "[2021-06-15)"}
		for _, c := range cases {
			_, err := Parse(c)
			assert.ErrorIs(t, err, ErrInvalidFormat, "input %q", c)
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := Parse("[2021-06-18,2021-06-15)")
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestDays(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"same day", "2021-06-15", "2021-06-15", 0},
		{"one day", "2021-06-15", "2021-06-16", 1},
		{"three days", "2021-06-15", "2021-06-18", 3},
		{"negative", "2021-06-18", "2021-06-15", -3},
		{"across month boundary", "2021-06-30", "2021-07-02", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Days(date(tt.a), date(tt.b)))
		})
	}
}

func TestDates(t *testing.T) {
	t.Run("inclusive of both ends", func(t *testing.T) {
		got := Dates(date("2021-06-15"), date("2021-06-17"))
		require.Len(t, got, 3)
		assert.Equal(t, date("2021-06-15"), got[0])
		assert.Equal(t, date("2021-06-16"), got[1])
		assert.Equal(t, date("2021-06-17"), got[2])
	})

	t.Run("single day", func(t *testing.T) {
		got := Dates(date("2021-06-15"), date("2021-06-15"))
		require.Len(t, got, 1)
	})

	t.Run("empty when end before start", func(t *testing.T) {
		assert.Empty(t, Dates(date("2021-06-17"), date("2021-06-15")))
	})
}

func TestCoveredDates(t *testing.T) {
	// День End свободен - диапазон полуоткрытый
	r := New(date("2021-06-15"), date("2021-06-18"))
	got := r.CoveredDates()
	require.Len(t, got, 3)
	assert.Equal(t, date("2021-06-15"), got[0])
	assert.Equal(t, date("2021-06-17"), got[2])
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"identical", "[2021-06-15,2021-06-18)", "[2021-06-15,2021-06-18)", true},
		{"partial overlap", "[2021-06-15,2021-06-18)", "[2021-06-17,2021-06-20)", true},
		{"contained", "[2021-06-15,2021-06-20)", "[2021-06-16,2021-06-17)", true},
		{"adjacent back-to-back", "[2021-06-15,2021-06-18)", "[2021-06-18,2021-06-20)", false},
		{"disjoint", "[2021-06-15,2021-06-16)", "[2021-06-18,2021-06-20)", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Parse(tt.a)
			require.NoError(t, err)
			b, err := Parse(tt.b)
			require.NoError(t, err)

			assert.Equal(t, tt.want, a.Overlaps(b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, b.Overlaps(a))
		})
	}
}

func TestScanValue(t *testing.T) {
	t.Run("scan from bytes", func(t *testing.T) {
		var r Range
		require.NoError(t, r.Scan([]byte("[2021-06-15,2021-06-18)")))
		assert.Equal(t, "[2021-06-15,2021-06-18)", r.String())
	})

	t.Run("scan from string", func(t *testing.T) {
		var r Range
		require.NoError(t, r.Scan("[2021-06-15,2021-06-18)"))
		assert.Equal(t, date("2021-06-15"), r.Start)
	})

	t.Run("scan rejects other types", func(t *testing.T) {
		var r Range
		assert.ErrorIs(t, r.Scan(42), ErrInvalidFormat)
	})

	t.Run("value is canonical text", func(t *testing.T) {
		v, err := New(date("2021-06-15"), date("2021-06-18")).Value()
		require.NoError(t, err)
		assert.Equal(t, "[2021-06-15,2021-06-18)", v)
	})
}
