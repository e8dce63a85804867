package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/coog-esports/admin-api/models"
)

var (
	ErrSponsorNotFound     = errors.New("sponsor not found")
	ErrSponsorNameConflict = errors.New("sponsor name conflict")
)

type SponsorRepository interface {
	Create(ctx context.Context, sponsor *models.Sponsor) error
	GetByID(ctx context.Context, id int) (*models.Sponsor, error)
	List(ctx context.Context, skip, limit int) ([]models.Sponsor, error)
	ListActive(ctx context.Context, now time.Time, skip, limit int) ([]models.Sponsor, error)
	Update(ctx context.Context, sponsor *models.Sponsor) error
	UpdateLogoKey(ctx context.Context, id int, key *string) error
	Delete(ctx context.Context, id int) error
	NameTaken(ctx context.Context, name string, excludeID int) (bool, error)
}

type postgresSponsorRepository struct {
	crud crudQueries[models.Sponsor]
}

func NewPostgresSponsorRepository(db *sql.DB) SponsorRepository {
	return &postgresSponsorRepository{
		crud: crudQueries[models.Sponsor]{
			db: db,
			spec: tableSpec[models.Sponsor]{
				table:    "sponsors",
				idColumn: "sponsor_id",
				columns:  "sponsor_id, sponsor_name, start_date, end_date, sponsor_website, logo_key",
				scanRow: func(row rowScanner, sponsor *models.Sponsor) error {
					return row.Scan(
						&sponsor.ID,
						&sponsor.SponsorName,
						&sponsor.StartDate,
						&sponsor.EndDate,
						&sponsor.SponsorWebsite,
						&sponsor.LogoKey,
					)
				},
			},
			notFound: ErrSponsorNotFound,
		},
	}
}

func (r *postgresSponsorRepository) Create(ctx context.Context, sponsor *models.Sponsor) error {
	query := `
		INSERT INTO sponsors (sponsor_name, start_date, end_date, sponsor_website)
		VALUES ($1, $2, $3, $4)
		RETURNING sponsor_id`

	err := r.crud.db.QueryRowContext(ctx, query,
		sponsor.SponsorName,
		sponsor.StartDate,
		sponsor.EndDate,
		sponsor.SponsorWebsite,
	).Scan(&sponsor.ID)

	if err != nil {
		return mapConstraintError(err, map[string]error{
			"sponsors_sponsor_name_key": ErrSponsorNameConflict,
		})
	}
	return nil
}

func (r *postgresSponsorRepository) GetByID(ctx context.Context, id int) (*models.Sponsor, error) {
	return r.crud.getByID(ctx, id)
}

func (r *postgresSponsorRepository) List(ctx context.Context, skip, limit int) ([]models.Sponsor, error) {
	return r.crud.list(ctx, skip, limit)
}

// ListActive returns sponsors whose period covers the given instant, open
// end dates counting as still active.
func (r *postgresSponsorRepository) ListActive(ctx context.Context, now time.Time, skip, limit int) ([]models.Sponsor, error) {
	where := "start_date <= $1 AND COALESCE(end_date, 'infinity'::timestamp) > $1"
	return r.crud.listWhere(ctx, where, []interface{}{now}, "", skip, limit)
}

func (r *postgresSponsorRepository) Update(ctx context.Context, sponsor *models.Sponsor) error {
	query := `
		UPDATE sponsors SET
			sponsor_name = $1,
			start_date = $2,
			end_date = $3,
			sponsor_website = $4
		WHERE sponsor_id = $5`

	result, err := r.crud.db.ExecContext(ctx, query,
		sponsor.SponsorName,
		sponsor.StartDate,
		sponsor.EndDate,
		sponsor.SponsorWebsite,
		sponsor.ID,
	)
	if err != nil {
		return mapConstraintError(err, map[string]error{
			"sponsors_sponsor_name_key": ErrSponsorNameConflict,
		})
	}
	return checkAffectedRows(result, ErrSponsorNotFound)
}

func (r *postgresSponsorRepository) UpdateLogoKey(ctx context.Context, id int, key *string) error {
	query := `UPDATE sponsors SET logo_key = $1 WHERE sponsor_id = $2`

	result, err := r.crud.db.ExecContext(ctx, query, key, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrSponsorNotFound)
}

func (r *postgresSponsorRepository) Delete(ctx context.Context, id int) error {
	return r.crud.deleteByID(ctx, id)
}

func (r *postgresSponsorRepository) NameTaken(ctx context.Context, name string, excludeID int) (bool, error) {
	return r.crud.exists(ctx, "sponsor_name = $1 AND sponsor_id <> $2", name, excludeID)
}
