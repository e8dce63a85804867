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

var ErrOpponentNameRequired = errors.New("opponent name is required")

type OpponentService interface {
	CreateOpponent(ctx context.Context, input CreateOpponentInput) (*models.Opponent, error)
	GetOpponentByID(ctx context.Context, id int) (*models.Opponent, error)
	ListOpponents(ctx context.Context, skip, limit int) ([]models.Opponent, error)
	ListOpponentsByGame(ctx context.Context, gameID, skip, limit int) ([]models.Opponent, error)
	UpdateOpponent(ctx context.Context, id int, input UpdateOpponentInput) (*models.Opponent, error)
	DeleteOpponent(ctx context.Context, id int) (*models.Opponent, error)
	UploadLogo(ctx context.Context, id int, contentType string, file io.Reader) (*models.Opponent, error)
}

type CreateOpponentInput struct {
	OpponentName string  `json:"opponent_name"`
	GameID       int     `json:"game_id"`
	School       *string `json:"school"`
}

type UpdateOpponentInput struct {
	OpponentName *string `json:"opponent_name"`
	GameID       *int    `json:"game_id"`
	School       *string `json:"school"`
}

type opponentService struct {
	opponentRepo repositories.OpponentRepository
	gameRepo     repositories.GameRepository
	matchRepo    repositories.MatchRepository
	uploader     storage.FileUploader
}

func NewOpponentService(
	opponentRepo repositories.OpponentRepository,
	gameRepo repositories.GameRepository,
	matchRepo repositories.MatchRepository,
	uploader storage.FileUploader,
) OpponentService {
	return &opponentService{
		opponentRepo: opponentRepo,
		gameRepo:     gameRepo,
		matchRepo:    matchRepo,
		uploader:     uploader,
	}
}

func (s *opponentService) CreateOpponent(ctx context.Context, input CreateOpponentInput) (*models.Opponent, error) {
	name := trimmed(input.OpponentName)
	if name == "" {
		return nil, ErrOpponentNameRequired
	}
	if _, err := s.gameRepo.GetByID(ctx, input.GameID); err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game %d: %w", input.GameID, err)
	}

	taken, err := s.opponentRepo.NameTakenForGame(ctx, input.GameID, name, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check opponent name uniqueness: %w", err)
	}
	if taken {
		return nil, ErrOpponentNameConflict
	}

	opponent := &models.Opponent{
		OpponentName: name,
		GameID:       input.GameID,
		School:       input.School,
	}
	if err := s.opponentRepo.Create(ctx, opponent); err != nil {
		switch {
		case errors.Is(err, repositories.ErrOpponentNameConflict):
			return nil, ErrOpponentNameConflict
		case errors.Is(err, repositories.ErrOpponentGameInvalid):
			return nil, ErrGameNotFound
		default:
			return nil, fmt.Errorf("failed to create opponent: %w", err)
		}
	}
	return opponent, nil
}

func (s *opponentService) GetOpponentByID(ctx context.Context, id int) (*models.Opponent, error) {
	opponent, err := s.opponentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrOpponentNotFound) {
			return nil, ErrOpponentNotFound
		}
		return nil, fmt.Errorf("failed to get opponent %d: %w", id, err)
	}
	opponent.LogoURL = publicURL(s.uploader, opponent.LogoKey)
	return opponent, nil
}

func (s *opponentService) ListOpponents(ctx context.Context, skip, limit int) ([]models.Opponent, error) {
	opponents, err := s.opponentRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list opponents: %w", err)
	}
	return s.withLogoURLs(opponents), nil
}

func (s *opponentService) ListOpponentsByGame(ctx context.Context, gameID, skip, limit int) ([]models.Opponent, error) {
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game %d: %w", gameID, err)
	}

	opponents, err := s.opponentRepo.ListByGame(ctx, gameID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list opponents for game %d: %w", gameID, err)
	}
	return s.withLogoURLs(opponents), nil
}

func (s *opponentService) UpdateOpponent(ctx context.Context, id int, input UpdateOpponentInput) (*models.Opponent, error) {
	opponent, err := s.GetOpponentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.OpponentName != nil {
		name := trimmed(*input.OpponentName)
		if name == "" {
			return nil, ErrOpponentNameRequired
		}
		opponent.OpponentName = name
	}
	if input.GameID != nil {
		if _, err := s.gameRepo.GetByID(ctx, *input.GameID); err != nil {
			if errors.Is(err, repositories.ErrGameNotFound) {
				return nil, ErrGameNotFound
			}
			return nil, fmt.Errorf("failed to get game %d: %w", *input.GameID, err)
		}
		opponent.GameID = *input.GameID
	}
	if input.School != nil {
		opponent.School = input.School
	}

	taken, err := s.opponentRepo.NameTakenForGame(ctx, opponent.GameID, opponent.OpponentName, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check opponent name uniqueness: %w", err)
	}
	if taken {
		return nil, ErrOpponentNameConflict
	}

	if err := s.opponentRepo.Update(ctx, opponent); err != nil {
		switch {
		case errors.Is(err, repositories.ErrOpponentNotFound):
			return nil, ErrOpponentNotFound
		case errors.Is(err, repositories.ErrOpponentNameConflict):
			return nil, ErrOpponentNameConflict
		case errors.Is(err, repositories.ErrOpponentGameInvalid):
			return nil, ErrGameNotFound
		default:
			return nil, fmt.Errorf("failed to update opponent %d: %w", id, err)
		}
	}
	return opponent, nil
}

func (s *opponentService) DeleteOpponent(ctx context.Context, id int) (*models.Opponent, error) {
	opponent, err := s.GetOpponentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hasMatches, err := s.matchRepo.ExistsByOpponentID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check opponent matches: %w", err)
	}
	if hasMatches {
		return nil, ErrOpponentHasMatches
	}

	if err := s.opponentRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrOpponentNotFound):
			return nil, ErrOpponentNotFound
		case errors.Is(err, repositories.ErrOpponentInUse):
			return nil, ErrOpponentHasMatches
		default:
			return nil, fmt.Errorf("failed to delete opponent %d: %w", id, err)
		}
	}

	if s.uploader != nil && opponent.LogoKey != nil {
		_ = s.uploader.Delete(ctx, *opponent.LogoKey)
	}
	return opponent, nil
}

func (s *opponentService) UploadLogo(ctx context.Context, id int, contentType string, file io.Reader) (*models.Opponent, error) {
	if s.uploader == nil {
		return nil, ErrUploadsDisabled
	}

	opponent, err := s.GetOpponentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ext, err := extensionFromContentType(contentType)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("opponents/%d/logo%s", id, ext)

	if opponent.LogoKey != nil && *opponent.LogoKey != key {
		_ = s.uploader.Delete(ctx, *opponent.LogoKey)
	}

	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload opponent logo: %w", err)
	}

	if err := s.opponentRepo.UpdateLogoKey(ctx, id, &result.Key); err != nil {
		if errors.Is(err, repositories.ErrOpponentNotFound) {
			return nil, ErrOpponentNotFound
		}
		return nil, fmt.Errorf("failed to store opponent logo key: %w", err)
	}

	opponent.LogoKey = &result.Key
	opponent.LogoURL = publicURL(s.uploader, opponent.LogoKey)
	return opponent, nil
}

func (s *opponentService) withLogoURLs(opponents []models.Opponent) []models.Opponent {
	if opponents == nil {
		return []models.Opponent{}
	}
	for i := range opponents {
		opponents[i].LogoURL = publicURL(s.uploader, opponents[i].LogoKey)
	}
	return opponents
}
