package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Sentinel errors returned (wrapped) by the repositories.
var (
	ErrDuplicate   = errors.New("duplicate record")
	ErrForeignKey  = errors.New("foreign key violation")
	ErrInvalidSort = errors.New("invalid sort field")
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// translate maps Postgres constraint violations onto the sentinel errors and leaves
// anything else untouched.
func translate(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case pgUniqueViolation:
		return fmt.Errorf("%w: %s", ErrDuplicate, pqErr.Constraint)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %s", ErrForeignKey, pqErr.Constraint)
	default:
		return err
	}
}
