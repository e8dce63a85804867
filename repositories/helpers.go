package repositories

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

func checkAffectedRows(result sql.Result, notFoundError error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return notFoundError
	}
	return nil
}

// mapConstraintError translates a pq constraint violation into the matching
// sentinel error. Services pre-check uniqueness and references, this is the
// backstop for races the pre-checks cannot close.
func mapConstraintError(err error, byConstraint map[string]error) error {
	pqErr, ok := err.(*pq.Error)
	if !ok {
		return err
	}
	if pqErr.Code != pqUniqueViolation && pqErr.Code != pqForeignKeyViolation {
		return err
	}
	if mapped, found := byConstraint[pqErr.Constraint]; found {
		return mapped
	}
	return err
}
