package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coog-esports/admin-api/models"
	"github.com/coog-esports/admin-api/repositories"
)

type MatchService interface {
	CreateMatch(ctx context.Context, input CreateMatchInput) (*models.Match, error)
	GetMatchByID(ctx context.Context, id int) (*models.Match, error)
	ListMatches(ctx context.Context, skip, limit int) ([]models.Match, error)
	ListMatchesByTeam(ctx context.Context, teamID, skip, limit int) ([]models.Match, error)
	ListMatchesByGame(ctx context.Context, gameID, skip, limit int) ([]models.Match, error)
	ListUpcomingMatches(ctx context.Context, skip, limit int) ([]models.Match, error)
	ListPastMatches(ctx context.Context, skip, limit int) ([]models.Match, error)
	UpdateMatch(ctx context.Context, id int, input UpdateMatchInput) (*models.Match, error)
	DeleteMatch(ctx context.Context, id int) (*models.Match, error)
}

type CreateMatchInput struct {
	DateTime   time.Time `json:"date_time"`
	TeamID     int       `json:"team_id"`
	OpponentID int       `json:"opponent_id"`
	GameID     int       `json:"game_id"`
	WatchLink  *string   `json:"watch_link"`
	Result     *string   `json:"result"`
}

type UpdateMatchInput struct {
	DateTime   *time.Time `json:"date_time"`
	TeamID     *int       `json:"team_id"`
	OpponentID *int       `json:"opponent_id"`
	GameID     *int       `json:"game_id"`
	WatchLink  *string    `json:"watch_link"`
	Result     *string    `json:"result"`
}

type matchService struct {
	matchRepo    repositories.MatchRepository
	teamRepo     repositories.TeamRepository
	opponentRepo repositories.OpponentRepository
	gameRepo     repositories.GameRepository
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	teamRepo repositories.TeamRepository,
	opponentRepo repositories.OpponentRepository,
	gameRepo repositories.GameRepository,
) MatchService {
	return &matchService{
		matchRepo:    matchRepo,
		teamRepo:     teamRepo,
		opponentRepo: opponentRepo,
		gameRepo:     gameRepo,
	}
}

func (s *matchService) CreateMatch(ctx context.Context, input CreateMatchInput) (*models.Match, error) {
	if err := s.checkParticipants(ctx, input.TeamID, input.OpponentID, input.GameID); err != nil {
		return nil, err
	}

	match := &models.Match{
		DateTime:   input.DateTime,
		TeamID:     input.TeamID,
		OpponentID: input.OpponentID,
		GameID:     input.GameID,
		WatchLink:  input.WatchLink,
		Result:     input.Result,
	}
	if err := s.matchRepo.Create(ctx, match); err != nil {
		switch {
		case errors.Is(err, repositories.ErrMatchTeamInvalid):
			return nil, ErrTeamNotFound
		case errors.Is(err, repositories.ErrMatchOpponentInvalid):
			return nil, ErrOpponentNotFound
		case errors.Is(err, repositories.ErrMatchGameInvalid):
			return nil, ErrGameNotFound
		default:
			return nil, fmt.Errorf("failed to create match: %w", err)
		}
	}
	return match, nil
}

func (s *matchService) GetMatchByID(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match %d: %w", id, err)
	}
	return match, nil
}

func (s *matchService) ListMatches(ctx context.Context, skip, limit int) ([]models.Match, error) {
	matches, err := s.matchRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return nonNilMatches(matches), nil
}

func (s *matchService) ListMatchesByTeam(ctx context.Context, teamID, skip, limit int) ([]models.Match, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", teamID, err)
	}

	matches, err := s.matchRepo.ListByTeam(ctx, teamID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for team %d: %w", teamID, err)
	}
	return nonNilMatches(matches), nil
}

func (s *matchService) ListMatchesByGame(ctx context.Context, gameID, skip, limit int) ([]models.Match, error) {
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game %d: %w", gameID, err)
	}

	matches, err := s.matchRepo.ListByGame(ctx, gameID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for game %d: %w", gameID, err)
	}
	return nonNilMatches(matches), nil
}

func (s *matchService) ListUpcomingMatches(ctx context.Context, skip, limit int) ([]models.Match, error) {
	matches, err := s.matchRepo.ListUpcoming(ctx, time.Now().UTC(), skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming matches: %w", err)
	}
	return nonNilMatches(matches), nil
}

func (s *matchService) ListPastMatches(ctx context.Context, skip, limit int) ([]models.Match, error) {
	matches, err := s.matchRepo.ListPast(ctx, time.Now().UTC(), skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list past matches: %w", err)
	}
	return nonNilMatches(matches), nil
}

func (s *matchService) UpdateMatch(ctx context.Context, id int, input UpdateMatchInput) (*models.Match, error) {
	match, err := s.GetMatchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.DateTime != nil {
		match.DateTime = *input.DateTime
	}
	if input.TeamID != nil {
		match.TeamID = *input.TeamID
	}
	if input.OpponentID != nil {
		match.OpponentID = *input.OpponentID
	}
	if input.GameID != nil {
		match.GameID = *input.GameID
	}
	if input.WatchLink != nil {
		match.WatchLink = input.WatchLink
	}
	if input.Result != nil {
		match.Result = input.Result
	}

	if err := s.checkParticipants(ctx, match.TeamID, match.OpponentID, match.GameID); err != nil {
		return nil, err
	}

	if err := s.matchRepo.Update(ctx, match); err != nil {
		switch {
		case errors.Is(err, repositories.ErrMatchNotFound):
			return nil, ErrMatchNotFound
		case errors.Is(err, repositories.ErrMatchTeamInvalid):
			return nil, ErrTeamNotFound
		case errors.Is(err, repositories.ErrMatchOpponentInvalid):
			return nil, ErrOpponentNotFound
		case errors.Is(err, repositories.ErrMatchGameInvalid):
			return nil, ErrGameNotFound
		default:
			return nil, fmt.Errorf("failed to update match %d: %w", id, err)
		}
	}
	return match, nil
}

func (s *matchService) DeleteMatch(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.GetMatchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.matchRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to delete match %d: %w", id, err)
	}
	return match, nil
}

// checkParticipants verifies the referenced rows exist and that both sides
// of the match actually play the stated game.
func (s *matchService) checkParticipants(ctx context.Context, teamID, opponentID, gameID int) error {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team %d: %w", teamID, err)
	}
	opponent, err := s.opponentRepo.GetByID(ctx, opponentID)
	if err != nil {
		if errors.Is(err, repositories.ErrOpponentNotFound) {
			return ErrOpponentNotFound
		}
		return fmt.Errorf("failed to get opponent %d: %w", opponentID, err)
	}
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return ErrGameNotFound
		}
		return fmt.Errorf("failed to get game %d: %w", gameID, err)
	}

	if team.GameID != gameID {
		return ErrMatchTeamGameMismatch
	}
	if opponent.GameID != gameID {
		return ErrMatchOpponentGameMismatch
	}
	return nil
}

func nonNilMatches(matches []models.Match) []models.Match {
	if matches == nil {
		return []models.Match{}
	}
	return matches
}
