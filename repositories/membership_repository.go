package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/coog-esports/admin-api/models"
)

var (
	ErrMembershipNotFound         = errors.New("membership not found")
	ErrMembershipUserInvalid      = errors.New("membership user conflict or invalid")
	ErrMembershipShirtSizeInvalid = errors.New("membership shirt size conflict or invalid")
	ErrMembershipInUse            = errors.New("membership cannot be deleted as it is in use")
)

type MembershipRepository interface {
	Create(ctx context.Context, membership *models.Membership) error
	GetByID(ctx context.Context, id int) (*models.Membership, error)
	List(ctx context.Context, skip, limit int) ([]models.Membership, error)
	ListByUser(ctx context.Context, userID, skip, limit int) ([]models.Membership, error)
	Update(ctx context.Context, membership *models.Membership) error
	Delete(ctx context.Context, id int) error
	HasOverlap(ctx context.Context, userID int, start, end time.Time, excludeID int) (bool, error)
	ExistsByUserID(ctx context.Context, userID int) (bool, error)
	ExistsByShirtSizeID(ctx context.Context, shirtSizeID int) (bool, error)
}

type postgresMembershipRepository struct {
	crud crudQueries[models.Membership]
}

func NewPostgresMembershipRepository(db *sql.DB) MembershipRepository {
	return &postgresMembershipRepository{
		crud: crudQueries[models.Membership]{
			db: db,
			spec: tableSpec[models.Membership]{
				table:    "memberships",
				idColumn: "membership_id",
				columns:  "membership_id, user_id, start_date, end_date, shirt_size_id",
				scanRow: func(row rowScanner, membership *models.Membership) error {
					return row.Scan(
						&membership.ID,
						&membership.UserID,
						&membership.StartDate,
						&membership.EndDate,
						&membership.ShirtSizeID,
					)
				},
			},
			notFound: ErrMembershipNotFound,
		},
	}
}

func (r *postgresMembershipRepository) Create(ctx context.Context, membership *models.Membership) error {
	query := `
		INSERT INTO memberships (user_id, start_date, end_date, shirt_size_id)
		VALUES ($1, $2, $3, $4)
		RETURNING membership_id`

	err := r.crud.db.QueryRowContext(ctx, query,
		membership.UserID,
		membership.StartDate,
		membership.EndDate,
		membership.ShirtSizeID,
	).Scan(&membership.ID)

	if err != nil {
		return mapConstraintError(err, map[string]error{
			"memberships_user_id_fkey":       ErrMembershipUserInvalid,
			"memberships_shirt_size_id_fkey": ErrMembershipShirtSizeInvalid,
		})
	}
	return nil
}

func (r *postgresMembershipRepository) GetByID(ctx context.Context, id int) (*models.Membership, error) {
	return r.crud.getByID(ctx, id)
}

func (r *postgresMembershipRepository) List(ctx context.Context, skip, limit int) ([]models.Membership, error) {
	return r.crud.list(ctx, skip, limit)
}

func (r *postgresMembershipRepository) ListByUser(ctx context.Context, userID, skip, limit int) ([]models.Membership, error) {
	return r.crud.listWhere(ctx, "user_id = $1", []interface{}{userID}, "start_date ASC", skip, limit)
}

func (r *postgresMembershipRepository) Update(ctx context.Context, membership *models.Membership) error {
	query := `
		UPDATE memberships SET
			user_id = $1,
			start_date = $2,
			end_date = $3,
			shirt_size_id = $4
		WHERE membership_id = $5`

	result, err := r.crud.db.ExecContext(ctx, query,
		membership.UserID,
		membership.StartDate,
		membership.EndDate,
		membership.ShirtSizeID,
		membership.ID,
	)
	if err != nil {
		return mapConstraintError(err, map[string]error{
			"memberships_user_id_fkey":       ErrMembershipUserInvalid,
			"memberships_shirt_size_id_fkey": ErrMembershipShirtSizeInvalid,
		})
	}
	return checkAffectedRows(result, ErrMembershipNotFound)
}

func (r *postgresMembershipRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM memberships WHERE membership_id = $1`

	result, err := r.crud.db.ExecContext(ctx, query, id)
	if err != nil {
		return mapConstraintError(err, map[string]error{
			"team_memberships_membership_id_fkey": ErrMembershipInUse,
		})
	}
	return checkAffectedRows(result, ErrMembershipNotFound)
}

// HasOverlap reports whether the user already has a membership period that
// intersects [start, end]. Membership end dates are always set.
func (r *postgresMembershipRepository) HasOverlap(ctx context.Context, userID int, start, end time.Time, excludeID int) (bool, error) {
	where := `user_id = $1 AND membership_id <> $2 AND start_date <= $4 AND end_date >= $3`
	return r.crud.exists(ctx, where, userID, excludeID, start, end)
}

func (r *postgresMembershipRepository) ExistsByUserID(ctx context.Context, userID int) (bool, error) {
	return r.crud.exists(ctx, "user_id = $1", userID)
}

func (r *postgresMembershipRepository) ExistsByShirtSizeID(ctx context.Context, shirtSizeID int) (bool, error) {
	return r.crud.exists(ctx, "shirt_size_id = $1", shirtSizeID)
}
