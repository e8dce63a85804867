package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/coog-esports/admin-api/models"
)

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrGameNameConflict = errors.New("game name conflict")
	ErrGameInUse        = errors.New("game cannot be deleted as it is in use")
)

type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	GetByID(ctx context.Context, id int) (*models.Game, error)
	List(ctx context.Context, skip, limit int) ([]models.Game, error)
	Update(ctx context.Context, game *models.Game) error
	UpdateBgImageKey(ctx context.Context, id int, key *string) error
	Delete(ctx context.Context, id int) error
	NameTaken(ctx context.Context, name string, excludeID int) (bool, error)
}

type postgresGameRepository struct {
	crud crudQueries[models.Game]
}

func NewPostgresGameRepository(db *sql.DB) GameRepository {
	return &postgresGameRepository{
		crud: crudQueries[models.Game]{
			db: db,
			spec: tableSpec[models.Game]{
				table:    "games",
				idColumn: "game_id",
				columns:  "game_id, game_name, bg_image_key",
				scanRow: func(row rowScanner, game *models.Game) error {
					return row.Scan(&game.ID, &game.GameName, &game.BgImageKey)
				},
			},
			notFound: ErrGameNotFound,
		},
	}
}

func (r *postgresGameRepository) Create(ctx context.Context, game *models.Game) error {
	query := `INSERT INTO games (game_name) VALUES ($1) RETURNING game_id`

	err := r.crud.db.QueryRowContext(ctx, query, game.GameName).Scan(&game.ID)
	if err != nil {
		return mapConstraintError(err, map[string]error{
			"games_game_name_key": ErrGameNameConflict,
		})
	}
	return nil
}

func (r *postgresGameRepository) GetByID(ctx context.Context, id int) (*models.Game, error) {
	return r.crud.getByID(ctx, id)
}

func (r *postgresGameRepository) List(ctx context.Context, skip, limit int) ([]models.Game, error) {
	return r.crud.list(ctx, skip, limit)
}

func (r *postgresGameRepository) Update(ctx context.Context, game *models.Game) error {
	query := `UPDATE games SET game_name = $1 WHERE game_id = $2`

	result, err := r.crud.db.ExecContext(ctx, query, game.GameName, game.ID)
	if err != nil {
		return mapConstraintError(err, map[string]error{
			"games_game_name_key": ErrGameNameConflict,
		})
	}
	return checkAffectedRows(result, ErrGameNotFound)
}

func (r *postgresGameRepository) UpdateBgImageKey(ctx context.Context, id int, key *string) error {
	query := `UPDATE games SET bg_image_key = $1 WHERE game_id = $2`

	result, err := r.crud.db.ExecContext(ctx, query, key, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrGameNotFound)
}

func (r *postgresGameRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM games WHERE game_id = $1`

	result, err := r.crud.db.ExecContext(ctx, query, id)
	if err != nil {
		return mapConstraintError(err, map[string]error{
			"teams_game_id_fkey":        ErrGameInUse,
			"opponents_game_id_fkey":    ErrGameInUse,
			"matches_game_id_fkey":      ErrGameInUse,
			"coordinators_game_id_fkey": ErrGameInUse,
		})
	}
	return checkAffectedRows(result, ErrGameNotFound)
}

func (r *postgresGameRepository) NameTaken(ctx context.Context, name string, excludeID int) (bool, error) {
	return r.crud.exists(ctx, "game_name = $1 AND game_id <> $2", name, excludeID)
}
