package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/coog-esports/admin-api/models"
)

var (
	ErrOpponentNotFound     = errors.New("opponent not found")
	ErrOpponentNameConflict = errors.New("opponent name conflict for game")
	ErrOpponentGameInvalid  = errors.New("opponent game conflict or invalid")
	ErrOpponentInUse        = errors.New("opponent cannot be deleted as it is in use")
)

type OpponentRepository interface {
	Create(ctx context.Context, opponent *models.Opponent) error
	GetByID(ctx context.Context, id int) (*models.Opponent, error)
	List(ctx context.Context, skip, limit int) ([]models.Opponent, error)
	ListByGame(ctx context.Context, gameID, skip, limit int) ([]models.Opponent, error)
	Update(ctx context.Context, opponent *models.Opponent) error
	UpdateLogoKey(ctx context.Context, id int, key *string) error
	Delete(ctx context.Context, id int) error
	NameTakenForGame(ctx context.Context, gameID int, name string, excludeID int) (bool, error)
	ExistsByGameID(ctx context.Context, gameID int) (bool, error)
}

type postgresOpponentRepository struct {
	crud crudQueries[models.Opponent]
}

func NewPostgresOpponentRepository(db *sql.DB) OpponentRepository {
	return &postgresOpponentRepository{
		crud: crudQueries[models.Opponent]{
			db: db,
			spec: tableSpec[models.Opponent]{
				table:    "opponents",
				idColumn: "opponent_id",
				columns:  "opponent_id, opponent_name, game_id, school, logo_key",
				scanRow: func(row rowScanner, opponent *models.Opponent) error {
					return row.Scan(
						&opponent.ID,
						&opponent.OpponentName,
						&opponent.GameID,
						&opponent.School,
						&opponent.LogoKey,
					)
				},
			},
			notFound: ErrOpponentNotFound,
		},
	}
}

func (r *postgresOpponentRepository) Create(ctx context.Context, opponent *models.Opponent) error {
	query := `
		INSERT INTO opponents (opponent_name, game_id, school)
		VALUES ($1, $2, $3)
		RETURNING opponent_id`

	err := r.crud.db.QueryRowContext(ctx, query,
		opponent.OpponentName,
		opponent.GameID,
		opponent.School,
	).Scan(&opponent.ID)

	if err != nil {
		return mapConstraintError(err, map[string]error{
			"opponents_game_id_opponent_name_key": ErrOpponentNameConflict,
			"opponents_game_id_fkey":              ErrOpponentGameInvalid,
		})
	}
	return nil
}

func (r *postgresOpponentRepository) GetByID(ctx context.Context, id int) (*models.Opponent, error) {
	return r.crud.getByID(ctx, id)
}

func (r *postgresOpponentRepository) List(ctx context.Context, skip, limit int) ([]models.Opponent, error) {
	return r.crud.list(ctx, skip, limit)
}

func (r *postgresOpponentRepository) ListByGame(ctx context.Context, gameID, skip, limit int) ([]models.Opponent, error) {
	return r.crud.listWhere(ctx, "game_id = $1", []interface{}{gameID}, "opponent_name ASC", skip, limit)
}

func (r *postgresOpponentRepository) Update(ctx context.Context, opponent *models.Opponent) error {
	query := `
		UPDATE opponents SET
			opponent_name = $1,
			game_id = $2,
			school = $3
		WHERE opponent_id = $4`

	result, err := r.crud.db.ExecContext(ctx, query,
		opponent.OpponentName,
		opponent.GameID,
		opponent.School,
		opponent.ID,
	)
	if err != nil {
		return mapConstraintError(err, map[string]error{
			"opponents_game_id_opponent_name_key": ErrOpponentNameConflict,
			"opponents_game_id_fkey":              ErrOpponentGameInvalid,
		})
	}
	return checkAffectedRows(result, ErrOpponentNotFound)
}

func (r *postgresOpponentRepository) UpdateLogoKey(ctx context.Context, id int, key *string) error {
	query := `UPDATE opponents SET logo_key = $1 WHERE opponent_id = $2`

	result, err := r.crud.db.ExecContext(ctx, query, key, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrOpponentNotFound)
}

func (r *postgresOpponentRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM opponents WHERE opponent_id = $1`

	result, err := r.crud.db.ExecContext(ctx, query, id)
	if err != nil {
		return mapConstraintError(err, map[string]error{
			"matches_opponent_id_fkey": ErrOpponentInUse,
		})
	}
	return checkAffectedRows(result, ErrOpponentNotFound)
}

func (r *postgresOpponentRepository) NameTakenForGame(ctx context.Context, gameID int, name string, excludeID int) (bool, error) {
	return r.crud.exists(ctx, "game_id = $1 AND opponent_name = $2 AND opponent_id <> $3", gameID, name, excludeID)
}

func (r *postgresOpponentRepository) ExistsByGameID(ctx context.Context, gameID int) (bool, error) {
	return r.crud.exists(ctx, "game_id = $1", gameID)
}
