package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/coog-esports/admin-api/models"
)

var (
	ErrMatchNotFound        = errors.New("match not found")
	ErrMatchTeamInvalid     = errors.New("match team conflict or invalid")
	ErrMatchOpponentInvalid = errors.New("match opponent conflict or invalid")
	ErrMatchGameInvalid     = errors.New("match game conflict or invalid")
)

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	List(ctx context.Context, skip, limit int) ([]models.Match, error)
	ListByTeam(ctx context.Context, teamID, skip, limit int) ([]models.Match, error)
	ListByGame(ctx context.Context, gameID, skip, limit int) ([]models.Match, error)
	ListUpcoming(ctx context.Context, now time.Time, skip, limit int) ([]models.Match, error)
	ListPast(ctx context.Context, now time.Time, skip, limit int) ([]models.Match, error)
	Update(ctx context.Context, match *models.Match) error
	Delete(ctx context.Context, id int) error
	ExistsByTeamID(ctx context.Context, teamID int) (bool, error)
	ExistsByOpponentID(ctx context.Context, opponentID int) (bool, error)
}

type postgresMatchRepository struct {
	crud crudQueries[models.Match]
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{
		crud: crudQueries[models.Match]{
			db: db,
			spec: tableSpec[models.Match]{
				table:    "matches",
				idColumn: "match_id",
				columns:  "match_id, date_time, team_id, opponent_id, game_id, watch_link, result",
				scanRow: func(row rowScanner, match *models.Match) error {
					return row.Scan(
						&match.ID,
						&match.DateTime,
						&match.TeamID,
						&match.OpponentID,
						&match.GameID,
						&match.WatchLink,
						&match.Result,
					)
				},
			},
			notFound: ErrMatchNotFound,
		},
	}
}

func (r *postgresMatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (date_time, team_id, opponent_id, game_id, watch_link, result)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING match_id`

	err := r.crud.db.QueryRowContext(ctx, query,
		match.DateTime,
		match.TeamID,
		match.OpponentID,
		match.GameID,
		match.WatchLink,
		match.Result,
	).Scan(&match.ID)

	if err != nil {
		return mapConstraintError(err, map[string]error{
			"matches_team_id_fkey":     ErrMatchTeamInvalid,
			"matches_opponent_id_fkey": ErrMatchOpponentInvalid,
			"matches_game_id_fkey":     ErrMatchGameInvalid,
		})
	}
	return nil
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	return r.crud.getByID(ctx, id)
}

func (r *postgresMatchRepository) List(ctx context.Context, skip, limit int) ([]models.Match, error) {
	return r.crud.list(ctx, skip, limit)
}

func (r *postgresMatchRepository) ListByTeam(ctx context.Context, teamID, skip, limit int) ([]models.Match, error) {
	return r.crud.listWhere(ctx, "team_id = $1", []interface{}{teamID}, "date_time ASC", skip, limit)
}

func (r *postgresMatchRepository) ListByGame(ctx context.Context, gameID, skip, limit int) ([]models.Match, error) {
	return r.crud.listWhere(ctx, "game_id = $1", []interface{}{gameID}, "date_time ASC", skip, limit)
}

func (r *postgresMatchRepository) ListUpcoming(ctx context.Context, now time.Time, skip, limit int) ([]models.Match, error) {
	return r.crud.listWhere(ctx, "date_time > $1", []interface{}{now}, "date_time ASC", skip, limit)
}

func (r *postgresMatchRepository) ListPast(ctx context.Context, now time.Time, skip, limit int) ([]models.Match, error) {
	return r.crud.listWhere(ctx, "date_time <= $1", []interface{}{now}, "date_time DESC", skip, limit)
}

func (r *postgresMatchRepository) Update(ctx context.Context, match *models.Match) error {
	query := `
		UPDATE matches SET
			date_time = $1,
			team_id = $2,
			opponent_id = $3,
			game_id = $4,
			watch_link = $5,
			result = $6
		WHERE match_id = $7`

	result, err := r.crud.db.ExecContext(ctx, query,
		match.DateTime,
		match.TeamID,
		match.OpponentID,
		match.GameID,
		match.WatchLink,
		match.Result,
		match.ID,
	)
	if err != nil {
		return mapConstraintError(err, map[string]error{
			"matches_team_id_fkey":     ErrMatchTeamInvalid,
			"matches_opponent_id_fkey": ErrMatchOpponentInvalid,
			"matches_game_id_fkey":     ErrMatchGameInvalid,
		})
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id int) error {
	return r.crud.deleteByID(ctx, id)
}

func (r *postgresMatchRepository) ExistsByTeamID(ctx context.Context, teamID int) (bool, error) {
	return r.crud.exists(ctx, "team_id = $1", teamID)
}

func (r *postgresMatchRepository) ExistsByOpponentID(ctx context.Context, opponentID int) (bool, error) {
	return r.crud.exists(ctx, "opponent_id = $1", opponentID)
}
