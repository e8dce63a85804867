package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/coog-esports/admin-api/models"
)

var (
	ErrCoordinatorNotFound    = errors.New("coordinator not found")
	ErrCoordinatorUserInvalid = errors.New("coordinator user conflict or invalid")
	ErrCoordinatorGameInvalid = errors.New("coordinator game conflict or invalid")
	ErrCoordinatorInUse       = errors.New("coordinator cannot be deleted as it is in use")
)

type CoordinatorRepository interface {
	Create(ctx context.Context, coordinator *models.Coordinator) error
	GetByID(ctx context.Context, id int) (*models.Coordinator, error)
	List(ctx context.Context, skip, limit int) ([]models.Coordinator, error)
	ListByGame(ctx context.Context, gameID, skip, limit int) ([]models.Coordinator, error)
	Update(ctx context.Context, coordinator *models.Coordinator) error
	Delete(ctx context.Context, id int) error
	HasOverlap(ctx context.Context, userID, gameID int, start time.Time, end *time.Time, excludeID int) (bool, error)
}

type postgresCoordinatorRepository struct {
	crud crudQueries[models.Coordinator]
}

func NewPostgresCoordinatorRepository(db *sql.DB) CoordinatorRepository {
	return &postgresCoordinatorRepository{
		crud: crudQueries[models.Coordinator]{
			db: db,
			spec: tableSpec[models.Coordinator]{
				table:    "coordinators",
				idColumn: "coordinator_id",
				columns:  "coordinator_id, user_id, game_id, start_date, end_date",
				scanRow: func(row rowScanner, coordinator *models.Coordinator) error {
					return row.Scan(
						&coordinator.ID,
						&coordinator.UserID,
						&coordinator.GameID,
						&coordinator.StartDate,
						&coordinator.EndDate,
					)
				},
			},
			notFound: ErrCoordinatorNotFound,
		},
	}
}

func (r *postgresCoordinatorRepository) Create(ctx context.Context, coordinator *models.Coordinator) error {
	query := `
		INSERT INTO coordinators (user_id, game_id, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING coordinator_id`

	err := r.crud.db.QueryRowContext(ctx, query,
		coordinator.UserID,
		coordinator.GameID,
		coordinator.StartDate,
		coordinator.EndDate,
	).Scan(&coordinator.ID)

	if err != nil {
		return mapConstraintError(err, map[string]error{
			"coordinators_user_id_fkey": ErrCoordinatorUserInvalid,
			"coordinators_game_id_fkey": ErrCoordinatorGameInvalid,
		})
	}
	return nil
}

func (r *postgresCoordinatorRepository) GetByID(ctx context.Context, id int) (*models.Coordinator, error) {
	return r.crud.getByID(ctx, id)
}

func (r *postgresCoordinatorRepository) List(ctx context.Context, skip, limit int) ([]models.Coordinator, error) {
	return r.crud.list(ctx, skip, limit)
}

func (r *postgresCoordinatorRepository) ListByGame(ctx context.Context, gameID, skip, limit int) ([]models.Coordinator, error) {
	return r.crud.listWhere(ctx, "game_id = $1", []interface{}{gameID}, "start_date ASC", skip, limit)
}

func (r *postgresCoordinatorRepository) Update(ctx context.Context, coordinator *models.Coordinator) error {
	query := `
		UPDATE coordinators SET
			user_id = $1,
			game_id = $2,
			start_date = $3,
			end_date = $4
		WHERE coordinator_id = $5`

	result, err := r.crud.db.ExecContext(ctx, query,
		coordinator.UserID,
		coordinator.GameID,
		coordinator.StartDate,
		coordinator.EndDate,
		coordinator.ID,
	)
	if err != nil {
		return mapConstraintError(err, map[string]error{
			"coordinators_user_id_fkey": ErrCoordinatorUserInvalid,
			"coordinators_game_id_fkey": ErrCoordinatorGameInvalid,
		})
	}
	return checkAffectedRows(result, ErrCoordinatorNotFound)
}

func (r *postgresCoordinatorRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM coordinators WHERE coordinator_id = $1`

	result, err := r.crud.db.ExecContext(ctx, query, id)
	if err != nil {
		return mapConstraintError(err, map[string]error{
			"teams_coordinator_id_fkey": ErrCoordinatorInUse,
		})
	}
	return checkAffectedRows(result, ErrCoordinatorNotFound)
}

// HasOverlap reports whether the user already coordinates the game during a
// period that intersects [start, end]. A nil end means the candidate period
// is open.
func (r *postgresCoordinatorRepository) HasOverlap(ctx context.Context, userID, gameID int, start time.Time, end *time.Time, excludeID int) (bool, error) {
	where := `user_id = $1 AND game_id = $2 AND coordinator_id <> $3
		AND start_date <= COALESCE($5::timestamp, 'infinity'::timestamp)
		AND COALESCE(end_date, 'infinity'::timestamp) >= $4`
	return r.crud.exists(ctx, where, userID, gameID, excludeID, start, end)
}
