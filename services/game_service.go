package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/coog-esports/admin-api/models"
	"github.com/coog-esports/admin-api/repositories"
	"github.com/coog-esports/admin-api/storage"
)

var ErrGameNameRequired = errors.New("game name is required")

type GameService interface {
	CreateGame(ctx context.Context, input CreateGameInput) (*models.Game, error)
	GetGameByID(ctx context.Context, id int) (*models.Game, error)
	ListGames(ctx context.Context, skip, limit int) ([]models.Game, error)
	UpdateGame(ctx context.Context, id int, input UpdateGameInput) (*models.Game, error)
	DeleteGame(ctx context.Context, id int) (*models.Game, error)
	UploadBackground(ctx context.Context, id int, contentType string, file io.Reader) (*models.Game, error)
}

type CreateGameInput struct {
	GameName string `json:"game_name"`
}

type UpdateGameInput struct {
	GameName *string `json:"game_name"`
}

type gameService struct {
	gameRepo     repositories.GameRepository
	teamRepo     repositories.TeamRepository
	opponentRepo repositories.OpponentRepository
	uploader     storage.FileUploader
}

func NewGameService(
	gameRepo repositories.GameRepository,
	teamRepo repositories.TeamRepository,
	opponentRepo repositories.OpponentRepository,
	uploader storage.FileUploader,
) GameService {
	return &gameService{
		gameRepo:     gameRepo,
		teamRepo:     teamRepo,
		opponentRepo: opponentRepo,
		uploader:     uploader,
	}
}

func (s *gameService) CreateGame(ctx context.Context, input CreateGameInput) (*models.Game, error) {
	name := trimmed(input.GameName)
	if name == "" {
		return nil, ErrGameNameRequired
	}

	taken, err := s.gameRepo.NameTaken(ctx, name, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check game name uniqueness: %w", err)
	}
	if taken {
		return nil, ErrGameNameConflict
	}

	game := &models.Game{GameName: name}
	if err := s.gameRepo.Create(ctx, game); err != nil {
		if errors.Is(err, repositories.ErrGameNameConflict) {
			return nil, ErrGameNameConflict
		}
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return game, nil
}

func (s *gameService) GetGameByID(ctx context.Context, id int) (*models.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game %d: %w", id, err)
	}
	game.BgImageURL = publicURL(s.uploader, game.BgImageKey)
	return game, nil
}

func (s *gameService) ListGames(ctx context.Context, skip, limit int) ([]models.Game, error) {
	games, err := s.gameRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	if games == nil {
		return []models.Game{}, nil
	}
	for i := range games {
		games[i].BgImageURL = publicURL(s.uploader, games[i].BgImageKey)
	}
	return games, nil
}

func (s *gameService) UpdateGame(ctx context.Context, id int, input UpdateGameInput) (*models.Game, error) {
	game, err := s.GetGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.GameName != nil {
		name := trimmed(*input.GameName)
		if name == "" {
			return nil, ErrGameNameRequired
		}
		if name != game.GameName {
			taken, err := s.gameRepo.NameTaken(ctx, name, id)
			if err != nil {
				return nil, fmt.Errorf("failed to check game name uniqueness: %w", err)
			}
			if taken {
				return nil, ErrGameNameConflict
			}
		}
		game.GameName = name
	}

	if err := s.gameRepo.Update(ctx, game); err != nil {
		switch {
		case errors.Is(err, repositories.ErrGameNotFound):
			return nil, ErrGameNotFound
		case errors.Is(err, repositories.ErrGameNameConflict):
			return nil, ErrGameNameConflict
		default:
			return nil, fmt.Errorf("failed to update game %d: %w", id, err)
		}
	}
	return game, nil
}

func (s *gameService) DeleteGame(ctx context.Context, id int) (*models.Game, error) {
	game, err := s.GetGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hasTeams, err := s.teamRepo.ExistsByGameID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check game teams: %w", err)
	}
	hasOpponents, err := s.opponentRepo.ExistsByGameID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check game opponents: %w", err)
	}
	if hasTeams || hasOpponents {
		return nil, ErrGameHasDependents
	}

	if err := s.gameRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrGameNotFound):
			return nil, ErrGameNotFound
		case errors.Is(err, repositories.ErrGameInUse):
			return nil, ErrGameHasDependents
		default:
			return nil, fmt.Errorf("failed to delete game %d: %w", id, err)
		}
	}

	if s.uploader != nil && game.BgImageKey != nil {
		_ = s.uploader.Delete(ctx, *game.BgImageKey)
	}
	return game, nil
}

func (s *gameService) UploadBackground(ctx context.Context, id int, contentType string, file io.Reader) (*models.Game, error) {
	if s.uploader == nil {
		return nil, ErrUploadsDisabled
	}

	game, err := s.GetGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ext, err := extensionFromContentType(contentType)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("games/%d/background%s", id, ext)

	// A re-upload with a different extension leaves the old object behind.
	if game.BgImageKey != nil && *game.BgImageKey != key {
		_ = s.uploader.Delete(ctx, *game.BgImageKey)
	}

	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload game background: %w", err)
	}

	if err := s.gameRepo.UpdateBgImageKey(ctx, id, &result.Key); err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to store game background key: %w", err)
	}

	game.BgImageKey = &result.Key
	game.BgImageURL = publicURL(s.uploader, game.BgImageKey)
	return game, nil
}
