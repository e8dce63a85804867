package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/coog-esports/admin-api/models"
)

var (
	ErrEventAttendeeNotFound     = errors.New("event attendee not found")
	ErrEventAttendeeConflict     = errors.New("event attendee already recorded")
	ErrEventAttendeeEventInvalid = errors.New("event attendee event conflict or invalid")
	ErrEventAttendeeUserInvalid  = errors.New("event attendee user conflict or invalid")
)

type EventAttendeeRepository interface {
	Create(ctx context.Context, attendee *models.EventAttendee) error
	Get(ctx context.Context, eventID, userID int) (*models.EventAttendee, error)
	List(ctx context.Context, skip, limit int) ([]models.EventAttendee, error)
	ListByEvent(ctx context.Context, eventID, skip, limit int) ([]models.EventAttendee, error)
	Delete(ctx context.Context, eventID, userID int) error
	Exists(ctx context.Context, eventID, userID int) (bool, error)
}

type postgresEventAttendeeRepository struct {
	crud crudQueries[models.EventAttendee]
}

func NewPostgresEventAttendeeRepository(db *sql.DB) EventAttendeeRepository {
	return &postgresEventAttendeeRepository{
		crud: crudQueries[models.EventAttendee]{
			db: db,
			spec: tableSpec[models.EventAttendee]{
				table:    "event_attendees",
				idColumn: "event_id, user_id",
				columns:  "event_id, user_id",
				scanRow: func(row rowScanner, attendee *models.EventAttendee) error {
					return row.Scan(&attendee.EventID, &attendee.UserID)
				},
			},
			notFound: ErrEventAttendeeNotFound,
		},
	}
}

func (r *postgresEventAttendeeRepository) Create(ctx context.Context, attendee *models.EventAttendee) error {
	query := `INSERT INTO event_attendees (event_id, user_id) VALUES ($1, $2)`

	_, err := r.crud.db.ExecContext(ctx, query, attendee.EventID, attendee.UserID)
	if err != nil {
		return mapConstraintError(err, map[string]error{
			"event_attendees_pkey":          ErrEventAttendeeConflict,
			"event_attendees_event_id_fkey": ErrEventAttendeeEventInvalid,
			"event_attendees_user_id_fkey":  ErrEventAttendeeUserInvalid,
		})
	}
	return nil
}

func (r *postgresEventAttendeeRepository) Get(ctx context.Context, eventID, userID int) (*models.EventAttendee, error) {
	query := `SELECT event_id, user_id FROM event_attendees WHERE event_id = $1 AND user_id = $2`

	attendee := &models.EventAttendee{}
	err := r.crud.spec.scanRow(r.crud.db.QueryRowContext(ctx, query, eventID, userID), attendee)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventAttendeeNotFound
		}
		return nil, err
	}
	return attendee, nil
}

func (r *postgresEventAttendeeRepository) List(ctx context.Context, skip, limit int) ([]models.EventAttendee, error) {
	return r.crud.list(ctx, skip, limit)
}

func (r *postgresEventAttendeeRepository) ListByEvent(ctx context.Context, eventID, skip, limit int) ([]models.EventAttendee, error) {
	return r.crud.listWhere(ctx, "event_id = $1", []interface{}{eventID}, "user_id ASC", skip, limit)
}

func (r *postgresEventAttendeeRepository) Delete(ctx context.Context, eventID, userID int) error {
	query := `DELETE FROM event_attendees WHERE event_id = $1 AND user_id = $2`

	result, err := r.crud.db.ExecContext(ctx, query, eventID, userID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrEventAttendeeNotFound)
}

func (r *postgresEventAttendeeRepository) Exists(ctx context.Context, eventID, userID int) (bool, error) {
	return r.crud.exists(ctx, "event_id = $1 AND user_id = $2", eventID, userID)
}
