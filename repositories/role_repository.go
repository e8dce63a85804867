package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/coog-esports/admin-api/models"
)

var (
	ErrRoleNotFound     = errors.New("role not found")
	ErrRoleNameConflict = errors.New("role name conflict")
)

type RoleRepository interface {
	Create(ctx context.Context, role *models.Role) error
	GetByID(ctx context.Context, id int) (*models.Role, error)
	List(ctx context.Context, skip, limit int) ([]models.Role, error)
	Update(ctx context.Context, role *models.Role) error
	Delete(ctx context.Context, id int) error
	NameTaken(ctx context.Context, name string, excludeID int) (bool, error)
}

type postgresRoleRepository struct {
	crud crudQueries[models.Role]
}

func NewPostgresRoleRepository(db *sql.DB) RoleRepository {
	return &postgresRoleRepository{
		crud: crudQueries[models.Role]{
			db: db,
			spec: tableSpec[models.Role]{
				table:    "roles",
				idColumn: "role_id",
				columns:  "role_id, role_name",
				scanRow: func(row rowScanner, role *models.Role) error {
					return row.Scan(&role.ID, &role.RoleName)
				},
			},
			notFound: ErrRoleNotFound,
		},
	}
}

func (r *postgresRoleRepository) Create(ctx context.Context, role *models.Role) error {
	query := `INSERT INTO roles (role_name) VALUES ($1) RETURNING role_id`

	err := r.crud.db.QueryRowContext(ctx, query, role.RoleName).Scan(&role.ID)
	if err != nil {
		return mapConstraintError(err, map[string]error{
			"roles_role_name_key": ErrRoleNameConflict,
		})
	}
	return nil
}

func (r *postgresRoleRepository) GetByID(ctx context.Context, id int) (*models.Role, error) {
	return r.crud.getByID(ctx, id)
}

func (r *postgresRoleRepository) List(ctx context.Context, skip, limit int) ([]models.Role, error) {
	return r.crud.list(ctx, skip, limit)
}

func (r *postgresRoleRepository) Update(ctx context.Context, role *models.Role) error {
	query := `UPDATE roles SET role_name = $1 WHERE role_id = $2`

	result, err := r.crud.db.ExecContext(ctx, query, role.RoleName, role.ID)
	if err != nil {
		return mapConstraintError(err, map[string]error{
			"roles_role_name_key": ErrRoleNameConflict,
		})
	}
	return checkAffectedRows(result, ErrRoleNotFound)
}

func (r *postgresRoleRepository) Delete(ctx context.Context, id int) error {
	return r.crud.deleteByID(ctx, id)
}

func (r *postgresRoleRepository) NameTaken(ctx context.Context, name string, excludeID int) (bool, error) {
	return r.crud.exists(ctx, "role_name = $1 AND role_id <> $2", name, excludeID)
}
