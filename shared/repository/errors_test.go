package repository_test

import (
	"errors"
	"fmt"
	"testing"

	"desk/shared/repository"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pq.Error{Code: "23505", Constraint: "uq_seat_bookings_seat_date"}

	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{name: "any constraint", err: unique, want: true},
		{name: "matching constraint", err: unique, constraint: "uq_seat_bookings_seat_date", want: true},
		{name: "wrapped", err: fmt.Errorf("insert: %w", unique), constraint: "uq_seat_bookings_seat_date", want: true},
		{name: "other constraint", err: unique, constraint: "seat_bookings_pkey", want: false},
		{name: "other code", err: &pq.Error{Code: "23503"}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repository.IsUniqueViolation(tt.err, tt.constraint))
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, repository.IsForeignKeyViolation(fmt.Errorf("x: %w", &pq.Error{Code: "23503"})))
	assert.False(t, repository.IsForeignKeyViolation(&pq.Error{Code: "23505"}))
	assert.False(t, repository.IsForeignKeyViolation(errors.New("boom")))
}
