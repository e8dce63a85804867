package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/coog-esports/admin-api/models"
)

var (
	ErrOfficerNotFound    = errors.New("officer not found")
	ErrOfficerUserInvalid = errors.New("officer user conflict or invalid")
	ErrOfficerRoleInvalid = errors.New("officer role conflict or invalid")
	ErrOfficerInUse       = errors.New("officer cannot be deleted as it is in use")
)

type OfficerRepository interface {
	Create(ctx context.Context, officer *models.Officer) error
	GetByID(ctx context.Context, id int) (*models.Officer, error)
	List(ctx context.Context, skip, limit int) ([]models.Officer, error)
	ListByUser(ctx context.Context, userID, skip, limit int) ([]models.Officer, error)
	Update(ctx context.Context, officer *models.Officer) error
	UpdateImageKey(ctx context.Context, id int, key *string) error
	Delete(ctx context.Context, id int) error
	HasOverlap(ctx context.Context, userID int, start time.Time, end *time.Time, excludeID int) (bool, error)
	ExistsByUserID(ctx context.Context, userID int) (bool, error)
	ExistsByRoleID(ctx context.Context, roleID int) (bool, error)
}

type postgresOfficerRepository struct {
	crud crudQueries[models.Officer]
}

func NewPostgresOfficerRepository(db *sql.DB) OfficerRepository {
	return &postgresOfficerRepository{
		crud: crudQueries[models.Officer]{
			db: db,
			spec: tableSpec[models.Officer]{
				table:    "officers",
				idColumn: "officer_id",
				columns:  "officer_id, user_id, role_id, start_date, end_date, image_key",
				scanRow: func(row rowScanner, officer *models.Officer) error {
					return row.Scan(
						&officer.ID,
						&officer.UserID,
						&officer.RoleID,
						&officer.StartDate,
						&officer.EndDate,
						&officer.ImageKey,
					)
				},
			},
			notFound: ErrOfficerNotFound,
		},
	}
}

func (r *postgresOfficerRepository) Create(ctx context.Context, officer *models.Officer) error {
	query := `
		INSERT INTO officers (user_id, role_id, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING officer_id`

	err := r.crud.db.QueryRowContext(ctx, query,
		officer.UserID,
		officer.RoleID,
		officer.StartDate,
		officer.EndDate,
	).Scan(&officer.ID)

	if err != nil {
		return mapConstraintError(err, map[string]error{
			"officers_user_id_fkey": ErrOfficerUserInvalid,
			"officers_role_id_fkey": ErrOfficerRoleInvalid,
		})
	}
	return nil
}

func (r *postgresOfficerRepository) GetByID(ctx context.Context, id int) (*models.Officer, error) {
	return r.crud.getByID(ctx, id)
}

func (r *postgresOfficerRepository) List(ctx context.Context, skip, limit int) ([]models.Officer, error) {
	return r.crud.list(ctx, skip, limit)
}

func (r *postgresOfficerRepository) ListByUser(ctx context.Context, userID, skip, limit int) ([]models.Officer, error) {
	return r.crud.listWhere(ctx, "user_id = $1", []interface{}{userID}, "start_date ASC", skip, limit)
}

func (r *postgresOfficerRepository) Update(ctx context.Context, officer *models.Officer) error {
	query := `
		UPDATE officers SET
			user_id = $1,
			role_id = $2,
			start_date = $3,
			end_date = $4
		WHERE officer_id = $5`

	result, err := r.crud.db.ExecContext(ctx, query,
		officer.UserID,
		officer.RoleID,
		officer.StartDate,
		officer.EndDate,
		officer.ID,
	)
	if err != nil {
		return mapConstraintError(err, map[string]error{
			"officers_user_id_fkey": ErrOfficerUserInvalid,
			"officers_role_id_fkey": ErrOfficerRoleInvalid,
		})
	}
	return checkAffectedRows(result, ErrOfficerNotFound)
}

func (r *postgresOfficerRepository) UpdateImageKey(ctx context.Context, id int, key *string) error {
	query := `UPDATE officers SET image_key = $1 WHERE officer_id = $2`

	result, err := r.crud.db.ExecContext(ctx, query, key, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrOfficerNotFound)
}

func (r *postgresOfficerRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM officers WHERE officer_id = $1`

	result, err := r.crud.db.ExecContext(ctx, query, id)
	if err != nil {
		return mapConstraintError(err, map[string]error{
			"events_created_by_officer_id_fkey": ErrOfficerInUse,
			"media_uploaded_by_officer_id_fkey": ErrOfficerInUse,
		})
	}
	return checkAffectedRows(result, ErrOfficerNotFound)
}

// HasOverlap reports whether the user already holds an officer period that
// intersects [start, end]. A nil end means the candidate period is open.
func (r *postgresOfficerRepository) HasOverlap(ctx context.Context, userID int, start time.Time, end *time.Time, excludeID int) (bool, error) {
	where := `user_id = $1 AND officer_id <> $2
		AND start_date <= COALESCE($4::timestamp, 'infinity'::timestamp)
		AND COALESCE(end_date, 'infinity'::timestamp) >= $3`
	return r.crud.exists(ctx, where, userID, excludeID, start, end)
}

func (r *postgresOfficerRepository) ExistsByUserID(ctx context.Context, userID int) (bool, error) {
	return r.crud.exists(ctx, "user_id = $1", userID)
}

func (r *postgresOfficerRepository) ExistsByRoleID(ctx context.Context, roleID int) (bool, error) {
	return r.crud.exists(ctx, "role_id = $1", roleID)
}
