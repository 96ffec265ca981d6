package storage

import (
	"database/sql"
	"errors"
	"testing"

	pq "github.com/lib/pq"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", sql.ErrNoRows, ErrNotFound},
		{"zero rows affected", ErrNotFound, ErrNotFound},
		{"postgres foreign key", &pq.Error{Code: "23503"}, ErrConstraintViolation},
		{"postgres not null", &pq.Error{Code: "23502"}, ErrConstraintViolation},
		{"postgres connection", &pq.Error{Code: "08006"}, ErrStore},
		{"other", errors.New("disk on fire"), ErrStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify("op", tt.err)
			if !errors.Is(got, tt.want) {
				t.Errorf("classify(%v) = %v, want kind %v", tt.err, got, tt.want)
			}
		})
	}

	if classify("op", nil) != nil {
		t.Error("classify(nil) should be nil")
	}
}

func TestClassifyKeepsDriverError(t *testing.T) {
	driverErr := &pq.Error{Code: "23503", Message: "violates foreign key"}
	got := classify("add entry", driverErr)

	var pe *pq.Error
	if !errors.As(got, &pe) {
		t.Fatalf("classify() lost the driver error: %v", got)
	}
}
