package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/coog-esports/admin-api/models"
)

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrEventTitleConflict  = errors.New("event title conflict")
	ErrEventOfficerInvalid = errors.New("event officer conflict or invalid")
)

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id int) (*models.Event, error)
	List(ctx context.Context, skip, limit int) ([]models.Event, error)
	ListByOfficer(ctx context.Context, officerID, skip, limit int) ([]models.Event, error)
	ListUpcoming(ctx context.Context, now time.Time, skip, limit int) ([]models.Event, error)
	ListPast(ctx context.Context, now time.Time, skip, limit int) ([]models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int) error
	TitleTaken(ctx context.Context, title string, excludeID int) (bool, error)
	ExistsByCreatedByOfficerID(ctx context.Context, officerID int) (bool, error)
}

type postgresEventRepository struct {
	crud crudQueries[models.Event]
}

func NewPostgresEventRepository(db *sql.DB) EventRepository {
	return &postgresEventRepository{
		crud: crudQueries[models.Event]{
			db: db,
			spec: tableSpec[models.Event]{
				table:    "events",
				idColumn: "event_id",
				columns:  "event_id, title, description, location, date_time, end_time, attendance, created_by_officer_id",
				scanRow: func(row rowScanner, event *models.Event) error {
					return row.Scan(
						&event.ID,
						&event.Title,
						&event.Description,
						&event.Location,
						&event.DateTime,
						&event.EndTime,
						&event.Attendance,
						&event.CreatedByOfficerID,
					)
				},
			},
			notFound: ErrEventNotFound,
		},
	}
}

func (r *postgresEventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (title, description, location, date_time, end_time, attendance, created_by_officer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING event_id`

	err := r.crud.db.QueryRowContext(ctx, query,
		event.Title,
		event.Description,
		event.Location,
		event.DateTime,
		event.EndTime,
		event.Attendance,
		event.CreatedByOfficerID,
	).Scan(&event.ID)

	if err != nil {
		return mapConstraintError(err, map[string]error{
			"events_title_key":                  ErrEventTitleConflict,
			"events_created_by_officer_id_fkey": ErrEventOfficerInvalid,
		})
	}
	return nil
}

func (r *postgresEventRepository) GetByID(ctx context.Context, id int) (*models.Event, error) {
	return r.crud.getByID(ctx, id)
}

func (r *postgresEventRepository) List(ctx context.Context, skip, limit int) ([]models.Event, error) {
	return r.crud.list(ctx, skip, limit)
}

func (r *postgresEventRepository) ListByOfficer(ctx context.Context, officerID, skip, limit int) ([]models.Event, error) {
	return r.crud.listWhere(ctx, "created_by_officer_id = $1", []interface{}{officerID}, "date_time ASC", skip, limit)
}

func (r *postgresEventRepository) ListUpcoming(ctx context.Context, now time.Time, skip, limit int) ([]models.Event, error) {
	return r.crud.listWhere(ctx, "date_time > $1", []interface{}{now}, "date_time ASC", skip, limit)
}

func (r *postgresEventRepository) ListPast(ctx context.Context, now time.Time, skip, limit int) ([]models.Event, error) {
	return r.crud.listWhere(ctx, "end_time <= $1", []interface{}{now}, "date_time DESC", skip, limit)
}

func (r *postgresEventRepository) Update(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events SET
			title = $1,
			description = $2,
			location = $3,
			date_time = $4,
			end_time = $5,
			attendance = $6,
			created_by_officer_id = $7
		WHERE event_id = $8`

	result, err := r.crud.db.ExecContext(ctx, query,
		event.Title,
		event.Description,
		event.Location,
		event.DateTime,
		event.EndTime,
		event.Attendance,
		event.CreatedByOfficerID,
		event.ID,
	)
	if err != nil {
		return mapConstraintError(err, map[string]error{
			"events_title_key":                  ErrEventTitleConflict,
			"events_created_by_officer_id_fkey": ErrEventOfficerInvalid,
		})
	}
	return checkAffectedRows(result, ErrEventNotFound)
}

func (r *postgresEventRepository) Delete(ctx context.Context, id int) error {
	// Attendee rows cascade with the event.
	return r.crud.deleteByID(ctx, id)
}

func (r *postgresEventRepository) TitleTaken(ctx context.Context, title string, excludeID int) (bool, error) {
	return r.crud.exists(ctx, "title = $1 AND event_id <> $2", title, excludeID)
}

func (r *postgresEventRepository) ExistsByCreatedByOfficerID(ctx context.Context, officerID int) (bool, error) {
	return r.crud.exists(ctx, "created_by_officer_id = $1", officerID)
}
