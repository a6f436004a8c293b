package reservation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsOverlapViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			// Единственный авторитетный сигнал конфликта дат
			"exclusion constraint violation",
			&pq.Error{Code: "23P01", Constraint: overlapConstraint},
			true,
		},
		{
			"other constraint violation",
			&pq.Error{Code: "23505", Constraint: "reservations_pkey"},
			false,
		},
		{
			"pq error without constraint",
			&pq.Error{Code: "40001"},
			false,
		},
		{
			"plain error mentioning the constraint",
			errors.New("pq: conflicting key value violates exclusion constraint \"reservation_prevent_overlapping\""),
			false,
		},
		{
			"wrapped pq error keeps the signal",
			fmt.Errorf("%w: Create - execute insert: %w",
				ErrExecQuery, &pq.Error{Code: "23P01", Constraint: overlapConstraint}),
			true,
		},
		{
			"nil error",
			nil,
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isOverlapViolation(tt.err))
		})
	}
}
