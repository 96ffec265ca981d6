package storage

import (
	"database/sql"
	"errors"
	"fmt"

	pq "github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrNotFound is returned when an id-based lookup or mutation matches no row.
	ErrNotFound = errors.New("not found")
	// ErrConstraintViolation is returned when a write breaks a foreign key,
	// NOT NULL or CHECK constraint.
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrStore covers connection, I/O and schema upgrade failures.
	ErrStore = errors.New("store error")
)

// classify attaches one of the package error kinds to a driver error.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConstraintViolation) || errors.Is(err, ErrStore) {
		return fmt.Errorf("%s: %w", op, err)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if isConstraint(err) {
		return fmt.Errorf("%s: %w: %w", op, ErrConstraintViolation, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStore, err)
}

func isConstraint(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		// Extended codes carry the primary code in the low byte.
		return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	var pe *pq.Error
	if errors.As(err, &pe) {
		// Class 23: integrity constraint violation.
		return pe.Code.Class() == "23"
	}
	return false
}

// notFoundIfNone converts a zero RowsAffected into ErrNotFound.
func notFoundIfNone(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
