package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/coog-esports/admin-api/models"
)

var (
	ErrMediaNotFound       = errors.New("media not found")
	ErrMediaTermInvalid    = errors.New("media academic term conflict or invalid")
	ErrMediaOfficerInvalid = errors.New("media officer conflict or invalid")
)

type MediaRepository interface {
	Create(ctx context.Context, media *models.Media) error
	GetByID(ctx context.Context, id int) (*models.Media, error)
	List(ctx context.Context, skip, limit int) ([]models.Media, error)
	ListByTerm(ctx context.Context, termID, skip, limit int) ([]models.Media, error)
	Update(ctx context.Context, media *models.Media) error
	UpdateImageKey(ctx context.Context, id int, key *string) error
	Delete(ctx context.Context, id int) error
	ExistsByTermID(ctx context.Context, termID int) (bool, error)
	ExistsByUploadedByOfficerID(ctx context.Context, officerID int) (bool, error)
}

type postgresMediaRepository struct {
	crud crudQueries[models.Media]
}

func NewPostgresMediaRepository(db *sql.DB) MediaRepository {
	return &postgresMediaRepository{
		crud: crudQueries[models.Media]{
			db: db,
			spec: tableSpec[models.Media]{
				table:    "media",
				idColumn: "media_id",
				columns:  "media_id, academic_term_id, uploaded_by_officer_id, date_uploaded, image_key",
				scanRow: func(row rowScanner, media *models.Media) error {
					return row.Scan(
						&media.ID,
						&media.AcademicTermID,
						&media.UploadedByOfficerID,
						&media.DateUploaded,
						&media.ImageKey,
					)
				},
			},
			notFound: ErrMediaNotFound,
		},
	}
}

func (r *postgresMediaRepository) Create(ctx context.Context, media *models.Media) error {
	query := `
		INSERT INTO media (academic_term_id, uploaded_by_officer_id, date_uploaded)
		VALUES ($1, $2, $3)
		RETURNING media_id`

	err := r.crud.db.QueryRowContext(ctx, query,
		media.AcademicTermID,
		media.UploadedByOfficerID,
		media.DateUploaded,
	).Scan(&media.ID)

	if err != nil {
		return mapConstraintError(err, map[string]error{
			"media_academic_term_id_fkey":       ErrMediaTermInvalid,
			"media_uploaded_by_officer_id_fkey": ErrMediaOfficerInvalid,
		})
	}
	return nil
}

func (r *postgresMediaRepository) GetByID(ctx context.Context, id int) (*models.Media, error) {
	return r.crud.getByID(ctx, id)
}

func (r *postgresMediaRepository) List(ctx context.Context, skip, limit int) ([]models.Media, error) {
	return r.crud.list(ctx, skip, limit)
}

func (r *postgresMediaRepository) ListByTerm(ctx context.Context, termID, skip, limit int) ([]models.Media, error) {
	return r.crud.listWhere(ctx, "academic_term_id = $1", []interface{}{termID}, "date_uploaded DESC", skip, limit)
}

func (r *postgresMediaRepository) Update(ctx context.Context, media *models.Media) error {
	query := `
		UPDATE media SET
			academic_term_id = $1,
			uploaded_by_officer_id = $2,
			date_uploaded = $3
		WHERE media_id = $4`

	result, err := r.crud.db.ExecContext(ctx, query,
		media.AcademicTermID,
		media.UploadedByOfficerID,
		media.DateUploaded,
		media.ID,
	)
	if err != nil {
		return mapConstraintError(err, map[string]error{
			"media_academic_term_id_fkey":       ErrMediaTermInvalid,
			"media_uploaded_by_officer_id_fkey": ErrMediaOfficerInvalid,
		})
	}
	return checkAffectedRows(result, ErrMediaNotFound)
}

func (r *postgresMediaRepository) UpdateImageKey(ctx context.Context, id int, key *string) error {
	query := `UPDATE media SET image_key = $1 WHERE media_id = $2`

	result, err := r.crud.db.ExecContext(ctx, query, key, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMediaNotFound)
}

func (r *postgresMediaRepository) Delete(ctx context.Context, id int) error {
	return r.crud.deleteByID(ctx, id)
}

func (r *postgresMediaRepository) ExistsByTermID(ctx context.Context, termID int) (bool, error) {
	return r.crud.exists(ctx, "academic_term_id = $1", termID)
}

func (r *postgresMediaRepository) ExistsByUploadedByOfficerID(ctx context.Context, officerID int) (bool, error) {
	return r.crud.exists(ctx, "uploaded_by_officer_id = $1", officerID)
}
