package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/coog-esports/admin-api/models"
)

var (
	ErrAcademicTermNotFound = errors.New("academic term not found")
	ErrAcademicTermInUse    = errors.New("academic term cannot be deleted as it is in use")
)

type AcademicTermRepository interface {
	Create(ctx context.Context, term *models.AcademicTerm) error
	GetByID(ctx context.Context, id int) (*models.AcademicTerm, error)
	List(ctx context.Context, skip, limit int) ([]models.AcademicTerm, error)
	Update(ctx context.Context, term *models.AcademicTerm) error
	Delete(ctx context.Context, id int) error
	HasOverlap(ctx context.Context, start, end time.Time, excludeID int) (bool, error)
}

type postgresAcademicTermRepository struct {
	crud crudQueries[models.AcademicTerm]
}

func NewPostgresAcademicTermRepository(db *sql.DB) AcademicTermRepository {
	return &postgresAcademicTermRepository{
		crud: crudQueries[models.AcademicTerm]{
			db: db,
			spec: tableSpec[models.AcademicTerm]{
				table:    "academic_terms",
				idColumn: "term_id",
				columns:  "term_id, semester, start_date, end_date",
				scanRow: func(row rowScanner, term *models.AcademicTerm) error {
					return row.Scan(&term.ID, &term.Semester, &term.StartDate, &term.EndDate)
				},
			},
			notFound: ErrAcademicTermNotFound,
		},
	}
}

func (r *postgresAcademicTermRepository) Create(ctx context.Context, term *models.AcademicTerm) error {
	query := `
		INSERT INTO academic_terms (semester, start_date, end_date)
		VALUES ($1, $2, $3)
		RETURNING term_id`

	return r.crud.db.QueryRowContext(ctx, query,
		term.Semester,
		term.StartDate,
		term.EndDate,
	).Scan(&term.ID)
}

func (r *postgresAcademicTermRepository) GetByID(ctx context.Context, id int) (*models.AcademicTerm, error) {
	return r.crud.getByID(ctx, id)
}

func (r *postgresAcademicTermRepository) List(ctx context.Context, skip, limit int) ([]models.AcademicTerm, error) {
	return r.crud.list(ctx, skip, limit)
}

func (r *postgresAcademicTermRepository) Update(ctx context.Context, term *models.AcademicTerm) error {
	query := `
		UPDATE academic_terms SET
			semester = $1,
			start_date = $2,
			end_date = $3
		WHERE term_id = $4`

	result, err := r.crud.db.ExecContext(ctx, query,
		term.Semester,
		term.StartDate,
		term.EndDate,
		term.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrAcademicTermNotFound)
}

func (r *postgresAcademicTermRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM academic_terms WHERE term_id = $1`

	result, err := r.crud.db.ExecContext(ctx, query, id)
	if err != nil {
		return mapConstraintError(err, map[string]error{
			"media_academic_term_id_fkey": ErrAcademicTermInUse,
		})
	}
	return checkAffectedRows(result, ErrAcademicTermNotFound)
}

// HasOverlap reports whether any other term intersects [start, end].
// Terms are global, there is no grouping key.
func (r *postgresAcademicTermRepository) HasOverlap(ctx context.Context, start, end time.Time, excludeID int) (bool, error) {
	where := "term_id <> $1 AND start_date <= $3 AND end_date >= $2"
	return r.crud.exists(ctx, where, excludeID, start, end)
}
