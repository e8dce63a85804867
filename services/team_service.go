package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/coog-esports/admin-api/models"
	"github.com/coog-esports/admin-api/repositories"
)

var ErrTeamNameRequired = errors.New("team name is required")

type TeamService interface {
	CreateTeam(ctx context.Context, input CreateTeamInput) (*models.Team, error)
	GetTeamByID(ctx context.Context, id int) (*models.Team, error)
	ListTeams(ctx context.Context, skip, limit int) ([]models.Team, error)
	ListTeamsByGame(ctx context.Context, gameID, skip, limit int) ([]models.Team, error)
	UpdateTeam(ctx context.Context, id int, input UpdateTeamInput) (*models.Team, error)
	DeleteTeam(ctx context.Context, id int) (*models.Team, error)
}

type CreateTeamInput struct {
	TeamName      string  `json:"team_name"`
	GameID        int     `json:"game_id"`
	CoordinatorID int     `json:"coordinator_id"`
	Achievements  *string `json:"achievements"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
}

type UpdateTeamInput struct {
	TeamName      *string `json:"team_name"`
	GameID        *int    `json:"game_id"`
	CoordinatorID *int    `json:"coordinator_id"`
	Achievements  *string `json:"achievements"`
	Wins          *int    `json:"wins"`
	Losses        *int    `json:"losses"`
}

type teamService struct {
	teamRepo           repositories.TeamRepository
	gameRepo           repositories.GameRepository
	coordinatorRepo    repositories.CoordinatorRepository
	matchRepo          repositories.MatchRepository
	teamMembershipRepo repositories.TeamMembershipRepository
}

func NewTeamService(
	teamRepo repositories.TeamRepository,
	gameRepo repositories.GameRepository,
	coordinatorRepo repositories.CoordinatorRepository,
	matchRepo repositories.MatchRepository,
	teamMembershipRepo repositories.TeamMembershipRepository,
) TeamService {
	return &teamService{
		teamRepo:           teamRepo,
		gameRepo:           gameRepo,
		coordinatorRepo:    coordinatorRepo,
		matchRepo:          matchRepo,
		teamMembershipRepo: teamMembershipRepo,
	}
}

func (s *teamService) CreateTeam(ctx context.Context, input CreateTeamInput) (*models.Team, error) {
	name := trimmed(input.TeamName)
	if name == "" {
		return nil, ErrTeamNameRequired
	}
	if input.Wins < 0 || input.Losses < 0 {
		return nil, ErrWinsLossesNegative
	}
	if err := s.checkReferences(ctx, input.GameID, input.CoordinatorID); err != nil {
		return nil, err
	}

	taken, err := s.teamRepo.NameTaken(ctx, name, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check team name uniqueness: %w", err)
	}
	if taken {
		return nil, ErrTeamNameConflict
	}

	team := &models.Team{
		TeamName:      name,
		GameID:        input.GameID,
		CoordinatorID: input.CoordinatorID,
		Achievements:  input.Achievements,
		Wins:          input.Wins,
		Losses:        input.Losses,
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeamNameConflict):
			return nil, ErrTeamNameConflict
		case errors.Is(err, repositories.ErrTeamGameInvalid):
			return nil, ErrGameNotFound
		case errors.Is(err, repositories.ErrTeamCoordinatorInvalid):
			return nil, ErrCoordinatorNotFound
		default:
			return nil, fmt.Errorf("failed to create team: %w", err)
		}
	}
	return team, nil
}

func (s *teamService) GetTeamByID(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", id, err)
	}
	return team, nil
}

func (s *teamService) ListTeams(ctx context.Context, skip, limit int) ([]models.Team, error) {
	teams, err := s.teamRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	if teams == nil {
		return []models.Team{}, nil
	}
	return teams, nil
}

func (s *teamService) ListTeamsByGame(ctx context.Context, gameID, skip, limit int) ([]models.Team, error) {
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game %d: %w", gameID, err)
	}

	teams, err := s.teamRepo.ListByGame(ctx, gameID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for game %d: %w", gameID, err)
	}
	if teams == nil {
		return []models.Team{}, nil
	}
	return teams, nil
}

func (s *teamService) UpdateTeam(ctx context.Context, id int, input UpdateTeamInput) (*models.Team, error) {
	team, err := s.GetTeamByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.TeamName != nil {
		name := trimmed(*input.TeamName)
		if name == "" {
			return nil, ErrTeamNameRequired
		}
		if name != team.TeamName {
			taken, err := s.teamRepo.NameTaken(ctx, name, id)
			if err != nil {
				return nil, fmt.Errorf("failed to check team name uniqueness: %w", err)
			}
			if taken {
				return nil, ErrTeamNameConflict
			}
		}
		team.TeamName = name
	}
	if input.GameID != nil {
		team.GameID = *input.GameID
	}
	if input.CoordinatorID != nil {
		team.CoordinatorID = *input.CoordinatorID
	}
	if input.Achievements != nil {
		team.Achievements = input.Achievements
	}
	if input.Wins != nil {
		team.Wins = *input.Wins
	}
	if input.Losses != nil {
		team.Losses = *input.Losses
	}

	if team.Wins < 0 || team.Losses < 0 {
		return nil, ErrWinsLossesNegative
	}
	if err := s.checkReferences(ctx, team.GameID, team.CoordinatorID); err != nil {
		return nil, err
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeamNotFound):
			return nil, ErrTeamNotFound
		case errors.Is(err, repositories.ErrTeamNameConflict):
			return nil, ErrTeamNameConflict
		case errors.Is(err, repositories.ErrTeamGameInvalid):
			return nil, ErrGameNotFound
		case errors.Is(err, repositories.ErrTeamCoordinatorInvalid):
			return nil, ErrCoordinatorNotFound
		default:
			return nil, fmt.Errorf("failed to update team %d: %w", id, err)
		}
	}
	return team, nil
}

func (s *teamService) DeleteTeam(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.GetTeamByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hasMatches, err := s.matchRepo.ExistsByTeamID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check team matches: %w", err)
	}
	hasMembers, err := s.teamMembershipRepo.ExistsByTeamID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check team members: %w", err)
	}
	if hasMatches || hasMembers {
		return nil, ErrTeamHasDependents
	}

	if err := s.teamRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeamNotFound):
			return nil, ErrTeamNotFound
		case errors.Is(err, repositories.ErrTeamInUse):
			return nil, ErrTeamHasDependents
		default:
			return nil, fmt.Errorf("failed to delete team %d: %w", id, err)
		}
	}
	return team, nil
}

func (s *teamService) checkReferences(ctx context.Context, gameID, coordinatorID int) error {
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return ErrGameNotFound
		}
		return fmt.Errorf("failed to get game %d: %w", gameID, err)
	}
	if _, err := s.coordinatorRepo.GetByID(ctx, coordinatorID); err != nil {
		if errors.Is(err, repositories.ErrCoordinatorNotFound) {
			return ErrCoordinatorNotFound
		}
		return fmt.Errorf("failed to get coordinator %d: %w", coordinatorID, err)
	}
	return nil
}
