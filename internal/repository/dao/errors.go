package dao

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrCakeNotFound = errors.New("cake not found")
	ErrEmptyUpdate  = errors.New("no columns to update")
)

// StoreError is a failure reported by the database itself: I/O, constraint
// violations, corruption. Error returns the driver's message unchanged.
type StoreError struct {
	Op string
	// Code is the SQLSTATE when the driver reports one.
	Code       string
	Constraint bool
	Err        error
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func newStoreError(op string, err error) error {
	storeErr := &StoreError{
		Op:  op,
		Err: err,
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		storeErr.Code = pgErr.Code
		storeErr.Constraint = pgerrcode.IsIntegrityConstraintViolation(pgErr.Code)
	}

	return storeErr
}
