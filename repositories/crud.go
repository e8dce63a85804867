package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// tableSpec describes what the generic helpers need to know about a table:
// where the rows live, the surrogate key column, the select list, and how
// to scan one row into the entity type.
type tableSpec[T any] struct {
	table    string
	idColumn string
	columns  string
	scanRow  func(rowScanner, *T) error
}

// crudQueries implements the uniform data-access primitives shared by every
// repository. Inserts and updates stay per entity with explicit column
// lists, so there is no reflection anywhere in the data layer.
type crudQueries[T any] struct {
	db       *sql.DB
	spec     tableSpec[T]
	notFound error
}

func (c *crudQueries[T]) getByID(ctx context.Context, id int) (*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, c.spec.columns, c.spec.table, c.spec.idColumn)

	entity := new(T)
	err := c.spec.scanRow(c.db.QueryRowContext(ctx, query, id), entity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, c.notFound
		}
		return nil, err
	}
	return entity, nil
}

func (c *crudQueries[T]) list(ctx context.Context, skip, limit int) ([]T, error) {
	return c.listWhere(ctx, "", nil, "", skip, limit)
}

// listWhere runs a paginated select. The where clause may be empty;
// placeholders in it must start at $1 and line up with args. orderBy
// defaults to the surrogate key ascending so pages stay disjoint and
// order-consistent.
func (c *crudQueries[T]) listWhere(ctx context.Context, where string, args []interface{}, orderBy string, skip, limit int) ([]T, error) {
	if orderBy == "" {
		orderBy = c.spec.idColumn + " ASC"
	}

	var queryBuilder strings.Builder
	queryBuilder.WriteString("SELECT ")
	queryBuilder.WriteString(c.spec.columns)
	queryBuilder.WriteString(" FROM ")
	queryBuilder.WriteString(c.spec.table)
	if where != "" {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(where)
	}
	queryBuilder.WriteString(" ORDER BY ")
	queryBuilder.WriteString(orderBy)
	queryBuilder.WriteString(" OFFSET $")
	queryBuilder.WriteString(strconv.Itoa(len(args) + 1))
	queryBuilder.WriteString(" LIMIT $")
	queryBuilder.WriteString(strconv.Itoa(len(args) + 2))
	args = append(args, skip, limit)

	rows, err := c.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entities := make([]T, 0)
	for rows.Next() {
		var entity T
		if scanErr := c.spec.scanRow(rows, &entity); scanErr != nil {
			return nil, scanErr
		}
		entities = append(entities, entity)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entities, nil
}

func (c *crudQueries[T]) exists(ctx context.Context, where string, args ...interface{}) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s)`, c.spec.table, where)

	var exists bool
	if err := c.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (c *crudQueries[T]) deleteByID(ctx context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, c.spec.table, c.spec.idColumn)

	result, err := c.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, c.notFound)
}
