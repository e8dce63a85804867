package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/coog-esports/admin-api/models"
)

var (
	ErrTeamNotFound           = errors.New("team not found")
	ErrTeamNameConflict       = errors.New("team name conflict")
	ErrTeamGameInvalid        = errors.New("team game conflict or invalid")
	ErrTeamCoordinatorInvalid = errors.New("team coordinator conflict or invalid")
	ErrTeamInUse              = errors.New("team cannot be deleted as it is in use")
)

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id int) (*models.Team, error)
	List(ctx context.Context, skip, limit int) ([]models.Team, error)
	ListByGame(ctx context.Context, gameID, skip, limit int) ([]models.Team, error)
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, id int) error
	NameTaken(ctx context.Context, name string, excludeID int) (bool, error)
	ExistsByGameID(ctx context.Context, gameID int) (bool, error)
	ExistsByCoordinatorID(ctx context.Context, coordinatorID int) (bool, error)
}

type postgresTeamRepository struct {
	crud crudQueries[models.Team]
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{
		crud: crudQueries[models.Team]{
			db: db,
			spec: tableSpec[models.Team]{
				table:    "teams",
				idColumn: "team_id",
				columns:  "team_id, team_name, game_id, coordinator_id, achievements, wins, losses",
				scanRow: func(row rowScanner, team *models.Team) error {
					return row.Scan(
						&team.ID,
						&team.TeamName,
						&team.GameID,
						&team.CoordinatorID,
						&team.Achievements,
						&team.Wins,
						&team.Losses,
					)
				},
			},
			notFound: ErrTeamNotFound,
		},
	}
}

func (r *postgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (team_name, game_id, coordinator_id, achievements, wins, losses)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING team_id`

	err := r.crud.db.QueryRowContext(ctx, query,
		team.TeamName,
		team.GameID,
		team.CoordinatorID,
		team.Achievements,
		team.Wins,
		team.Losses,
	).Scan(&team.ID)

	if err != nil {
		return mapConstraintError(err, map[string]error{
			"teams_team_name_key":       ErrTeamNameConflict,
			"teams_game_id_fkey":        ErrTeamGameInvalid,
			"teams_coordinator_id_fkey": ErrTeamCoordinatorInvalid,
		})
	}
	return nil
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	return r.crud.getByID(ctx, id)
}

func (r *postgresTeamRepository) List(ctx context.Context, skip, limit int) ([]models.Team, error) {
	return r.crud.list(ctx, skip, limit)
}

func (r *postgresTeamRepository) ListByGame(ctx context.Context, gameID, skip, limit int) ([]models.Team, error) {
	return r.crud.listWhere(ctx, "game_id = $1", []interface{}{gameID}, "team_name ASC", skip, limit)
}

func (r *postgresTeamRepository) Update(ctx context.Context, team *models.Team) error {
	query := `
		UPDATE teams SET
			team_name = $1,
			game_id = $2,
			coordinator_id = $3,
			achievements = $4,
			wins = $5,
			losses = $6
		WHERE team_id = $7`

	result, err := r.crud.db.ExecContext(ctx, query,
		team.TeamName,
		team.GameID,
		team.CoordinatorID,
		team.Achievements,
		team.Wins,
		team.Losses,
		team.ID,
	)
	if err != nil {
		return mapConstraintError(err, map[string]error{
			"teams_team_name_key":       ErrTeamNameConflict,
			"teams_game_id_fkey":        ErrTeamGameInvalid,
			"teams_coordinator_id_fkey": ErrTeamCoordinatorInvalid,
		})
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) Delete(ctx context.Context, id int) error {
	return r.crud.deleteByID(ctx, id)
}

func (r *postgresTeamRepository) NameTaken(ctx context.Context, name string, excludeID int) (bool, error) {
	return r.crud.exists(ctx, "team_name = $1 AND team_id <> $2", name, excludeID)
}

func (r *postgresTeamRepository) ExistsByGameID(ctx context.Context, gameID int) (bool, error) {
	return r.crud.exists(ctx, "game_id = $1", gameID)
}

func (r *postgresTeamRepository) ExistsByCoordinatorID(ctx context.Context, coordinatorID int) (bool, error) {
	return r.crud.exists(ctx, "coordinator_id = $1", coordinatorID)
}
