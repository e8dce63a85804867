package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coog-esports/admin-api/models"
	"github.com/coog-esports/admin-api/repositories"
)

type CoordinatorService interface {
	CreateCoordinator(ctx context.Context, input CreateCoordinatorInput) (*models.Coordinator, error)
	GetCoordinatorByID(ctx context.Context, id int) (*models.Coordinator, error)
	ListCoordinators(ctx context.Context, skip, limit int) ([]models.Coordinator, error)
	ListCoordinatorsByGame(ctx context.Context, gameID, skip, limit int) ([]models.Coordinator, error)
	UpdateCoordinator(ctx context.Context, id int, input UpdateCoordinatorInput) (*models.Coordinator, error)
	DeleteCoordinator(ctx context.Context, id int) (*models.Coordinator, error)
}

type CreateCoordinatorInput struct {
	UserID    int        `json:"user_id"`
	GameID    int        `json:"game_id"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type UpdateCoordinatorInput struct {
	UserID    *int       `json:"user_id"`
	GameID    *int       `json:"game_id"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type coordinatorService struct {
	coordinatorRepo repositories.CoordinatorRepository
	userRepo        repositories.UserRepository
	gameRepo        repositories.GameRepository
	teamRepo        repositories.TeamRepository
}

func NewCoordinatorService(
	coordinatorRepo repositories.CoordinatorRepository,
	userRepo repositories.UserRepository,
	gameRepo repositories.GameRepository,
	teamRepo repositories.TeamRepository,
) CoordinatorService {
	return &coordinatorService{
		coordinatorRepo: coordinatorRepo,
		userRepo:        userRepo,
		gameRepo:        gameRepo,
		teamRepo:        teamRepo,
	}
}

func (s *coordinatorService) CreateCoordinator(ctx context.Context, input CreateCoordinatorInput) (*models.Coordinator, error) {
	if err := s.checkReferences(ctx, input.UserID, input.GameID); err != nil {
		return nil, err
	}
	if err := validatePeriod(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	overlap, err := s.coordinatorRepo.HasOverlap(ctx, input.UserID, input.GameID, input.StartDate, input.EndDate, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check coordinator overlap: %w", err)
	}
	if overlap {
		return nil, ErrCoordinatorOverlap
	}

	coordinator := &models.Coordinator{
		UserID:    input.UserID,
		GameID:    input.GameID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
	if err := s.coordinatorRepo.Create(ctx, coordinator); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCoordinatorUserInvalid):
			return nil, ErrUserNotFound
		case errors.Is(err, repositories.ErrCoordinatorGameInvalid):
			return nil, ErrGameNotFound
		default:
			return nil, fmt.Errorf("failed to create coordinator: %w", err)
		}
	}
	return coordinator, nil
}

func (s *coordinatorService) GetCoordinatorByID(ctx context.Context, id int) (*models.Coordinator, error) {
	coordinator, err := s.coordinatorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCoordinatorNotFound) {
			return nil, ErrCoordinatorNotFound
		}
		return nil, fmt.Errorf("failed to get coordinator %d: %w", id, err)
	}
	return coordinator, nil
}

func (s *coordinatorService) ListCoordinators(ctx context.Context, skip, limit int) ([]models.Coordinator, error) {
	coordinators, err := s.coordinatorRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list coordinators: %w", err)
	}
	if coordinators == nil {
		return []models.Coordinator{}, nil
	}
	return coordinators, nil
}

func (s *coordinatorService) ListCoordinatorsByGame(ctx context.Context, gameID, skip, limit int) ([]models.Coordinator, error) {
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game %d: %w", gameID, err)
	}

	coordinators, err := s.coordinatorRepo.ListByGame(ctx, gameID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list coordinators for game %d: %w", gameID, err)
	}
	if coordinators == nil {
		return []models.Coordinator{}, nil
	}
	return coordinators, nil
}

func (s *coordinatorService) UpdateCoordinator(ctx context.Context, id int, input UpdateCoordinatorInput) (*models.Coordinator, error) {
	coordinator, err := s.GetCoordinatorByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.UserID != nil {
		coordinator.UserID = *input.UserID
	}
	if input.GameID != nil {
		coordinator.GameID = *input.GameID
	}
	if input.StartDate != nil {
		coordinator.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		coordinator.EndDate = input.EndDate
	}

	if err := s.checkReferences(ctx, coordinator.UserID, coordinator.GameID); err != nil {
		return nil, err
	}
	if err := validatePeriod(coordinator.StartDate, coordinator.EndDate); err != nil {
		return nil, err
	}

	overlap, err := s.coordinatorRepo.HasOverlap(ctx, coordinator.UserID, coordinator.GameID, coordinator.StartDate, coordinator.EndDate, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check coordinator overlap: %w", err)
	}
	if overlap {
		return nil, ErrCoordinatorOverlap
	}

	if err := s.coordinatorRepo.Update(ctx, coordinator); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCoordinatorNotFound):
			return nil, ErrCoordinatorNotFound
		case errors.Is(err, repositories.ErrCoordinatorUserInvalid):
			return nil, ErrUserNotFound
		case errors.Is(err, repositories.ErrCoordinatorGameInvalid):
			return nil, ErrGameNotFound
		default:
			return nil, fmt.Errorf("failed to update coordinator %d: %w", id, err)
		}
	}
	return coordinator, nil
}

func (s *coordinatorService) DeleteCoordinator(ctx context.Context, id int) (*models.Coordinator, error) {
	coordinator, err := s.GetCoordinatorByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hasTeams, err := s.teamRepo.ExistsByCoordinatorID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check coordinator teams: %w", err)
	}
	if hasTeams {
		return nil, ErrCoordinatorHasTeams
	}

	if err := s.coordinatorRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCoordinatorNotFound):
			return nil, ErrCoordinatorNotFound
		case errors.Is(err, repositories.ErrCoordinatorInUse):
			return nil, ErrCoordinatorHasTeams
		default:
			return nil, fmt.Errorf("failed to delete coordinator %d: %w", id, err)
		}
	}
	return coordinator, nil
}

func (s *coordinatorService) checkReferences(ctx context.Context, userID, gameID int) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to get user %d: %w", userID, err)
	}
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return ErrGameNotFound
		}
		return fmt.Errorf("failed to get game %d: %w", gameID, err)
	}
	return nil
}
