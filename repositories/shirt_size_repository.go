package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/coog-esports/admin-api/models"
)

var (
	ErrShirtSizeNotFound     = errors.New("shirt size not found")
	ErrShirtSizeNameConflict = errors.New("shirt size name conflict")
)

type ShirtSizeRepository interface {
	Create(ctx context.Context, size *models.ShirtSize) error
	GetByID(ctx context.Context, id int) (*models.ShirtSize, error)
	List(ctx context.Context, skip, limit int) ([]models.ShirtSize, error)
	Update(ctx context.Context, size *models.ShirtSize) error
	Delete(ctx context.Context, id int) error
	NameTaken(ctx context.Context, name models.ShirtSizeName, excludeID int) (bool, error)
}

type postgresShirtSizeRepository struct {
	crud crudQueries[models.ShirtSize]
}

func NewPostgresShirtSizeRepository(db *sql.DB) ShirtSizeRepository {
	return &postgresShirtSizeRepository{
		crud: crudQueries[models.ShirtSize]{
			db: db,
			spec: tableSpec[models.ShirtSize]{
				table:    "shirt_sizes",
				idColumn: "size_id",
				columns:  "size_id, size_name",
				scanRow: func(row rowScanner, size *models.ShirtSize) error {
					var name sql.NullString
					if err := row.Scan(&size.ID, &name); err != nil {
						return err
					}
					if name.Valid {
						sizeName := models.ShirtSizeName(name.String)
						size.SizeName = &sizeName
					}
					return nil
				},
			},
			notFound: ErrShirtSizeNotFound,
		},
	}
}

func (r *postgresShirtSizeRepository) Create(ctx context.Context, size *models.ShirtSize) error {
	query := `INSERT INTO shirt_sizes (size_name) VALUES ($1) RETURNING size_id`

	err := r.crud.db.QueryRowContext(ctx, query, sizeNameArg(size.SizeName)).Scan(&size.ID)
	if err != nil {
		return mapConstraintError(err, map[string]error{
			"shirt_sizes_size_name_key": ErrShirtSizeNameConflict,
		})
	}
	return nil
}

func (r *postgresShirtSizeRepository) GetByID(ctx context.Context, id int) (*models.ShirtSize, error) {
	return r.crud.getByID(ctx, id)
}

func (r *postgresShirtSizeRepository) List(ctx context.Context, skip, limit int) ([]models.ShirtSize, error) {
	return r.crud.list(ctx, skip, limit)
}

func (r *postgresShirtSizeRepository) Update(ctx context.Context, size *models.ShirtSize) error {
	query := `UPDATE shirt_sizes SET size_name = $1 WHERE size_id = $2`

	result, err := r.crud.db.ExecContext(ctx, query, sizeNameArg(size.SizeName), size.ID)
	if err != nil {
		return mapConstraintError(err, map[string]error{
			"shirt_sizes_size_name_key": ErrShirtSizeNameConflict,
		})
	}
	return checkAffectedRows(result, ErrShirtSizeNotFound)
}

func (r *postgresShirtSizeRepository) Delete(ctx context.Context, id int) error {
	return r.crud.deleteByID(ctx, id)
}

func (r *postgresShirtSizeRepository) NameTaken(ctx context.Context, name models.ShirtSizeName, excludeID int) (bool, error) {
	return r.crud.exists(ctx, "size_name = $1 AND size_id <> $2", string(name), excludeID)
}

func sizeNameArg(name *models.ShirtSizeName) interface{} {
	if name == nil {
		return nil
	}
	return string(*name)
}
