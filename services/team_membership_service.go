package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coog-esports/admin-api/models"
	"github.com/coog-esports/admin-api/repositories"
)

type TeamMembershipService interface {
	CreateTeamMembership(ctx context.Context, input CreateTeamMembershipInput) (*models.TeamMembership, error)
	GetTeamMembership(ctx context.Context, teamID, membershipID int) (*models.TeamMembership, error)
	ListTeamMemberships(ctx context.Context, skip, limit int) ([]models.TeamMembership, error)
	ListTeamMembershipsByTeam(ctx context.Context, teamID, skip, limit int) ([]models.TeamMembership, error)
	UpdateTeamMembership(ctx context.Context, teamID, membershipID int, input UpdateTeamMembershipInput) (*models.TeamMembership, error)
	DeleteTeamMembership(ctx context.Context, teamID, membershipID int) (*models.TeamMembership, error)
}

type CreateTeamMembershipInput struct {
	TeamID       int        `json:"team_id"`
	MembershipID int        `json:"membership_id"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
}

type UpdateTeamMembershipInput struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type teamMembershipService struct {
	teamMembershipRepo repositories.TeamMembershipRepository
	teamRepo           repositories.TeamRepository
	membershipRepo     repositories.MembershipRepository
}

func NewTeamMembershipService(
	teamMembershipRepo repositories.TeamMembershipRepository,
	teamRepo repositories.TeamRepository,
	membershipRepo repositories.MembershipRepository,
) TeamMembershipService {
	return &teamMembershipService{
		teamMembershipRepo: teamMembershipRepo,
		teamRepo:           teamRepo,
		membershipRepo:     membershipRepo,
	}
}

func (s *teamMembershipService) CreateTeamMembership(ctx context.Context, input CreateTeamMembershipInput) (*models.TeamMembership, error) {
	if _, err := s.teamRepo.GetByID(ctx, input.TeamID); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", input.TeamID, err)
	}
	if _, err := s.membershipRepo.GetByID(ctx, input.MembershipID); err != nil {
		if errors.Is(err, repositories.ErrMembershipNotFound) {
			return nil, ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get membership %d: %w", input.MembershipID, err)
	}
	if err := validatePeriod(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	// The composite key allows at most one row per (team, membership) pair,
	// so once the duplicate check passes the pair-scoped period overlap rule
	// holds structurally: there is no second row left to compare against.
	exists, err := s.teamMembershipRepo.Exists(ctx, input.TeamID, input.MembershipID)
	if err != nil {
		return nil, fmt.Errorf("failed to check team membership: %w", err)
	}
	if exists {
		return nil, ErrTeamMembershipConflict
	}

	teamMembership := &models.TeamMembership{
		TeamID:       input.TeamID,
		MembershipID: input.MembershipID,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
	}
	if err := s.teamMembershipRepo.Create(ctx, teamMembership); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeamMembershipTeamInvalid):
			return nil, ErrTeamNotFound
		case errors.Is(err, repositories.ErrTeamMembershipMembershipInvalid):
			return nil, ErrMembershipNotFound
		default:
			return nil, fmt.Errorf("failed to create team membership: %w", err)
		}
	}
	return teamMembership, nil
}

func (s *teamMembershipService) GetTeamMembership(ctx context.Context, teamID, membershipID int) (*models.TeamMembership, error) {
	teamMembership, err := s.teamMembershipRepo.Get(ctx, teamID, membershipID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamMembershipNotFound) {
			return nil, ErrTeamMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get team membership (%d, %d): %w", teamID, membershipID, err)
	}
	return teamMembership, nil
}

func (s *teamMembershipService) ListTeamMemberships(ctx context.Context, skip, limit int) ([]models.TeamMembership, error) {
	teamMemberships, err := s.teamMembershipRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list team memberships: %w", err)
	}
	if teamMemberships == nil {
		return []models.TeamMembership{}, nil
	}
	return teamMemberships, nil
}

func (s *teamMembershipService) ListTeamMembershipsByTeam(ctx context.Context, teamID, skip, limit int) ([]models.TeamMembership, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", teamID, err)
	}

	teamMemberships, err := s.teamMembershipRepo.ListByTeam(ctx, teamID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list team memberships for team %d: %w", teamID, err)
	}
	if teamMemberships == nil {
		return []models.TeamMembership{}, nil
	}
	return teamMemberships, nil
}

func (s *teamMembershipService) UpdateTeamMembership(ctx context.Context, teamID, membershipID int, input UpdateTeamMembershipInput) (*models.TeamMembership, error) {
	teamMembership, err := s.GetTeamMembership(ctx, teamID, membershipID)
	if err != nil {
		return nil, err
	}

	if input.StartDate != nil {
		teamMembership.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		teamMembership.EndDate = input.EndDate
	}
	if err := validatePeriod(teamMembership.StartDate, teamMembership.EndDate); err != nil {
		return nil, err
	}

	if err := s.teamMembershipRepo.Update(ctx, teamMembership); err != nil {
		if errors.Is(err, repositories.ErrTeamMembershipNotFound) {
			return nil, ErrTeamMembershipNotFound
		}
		return nil, fmt.Errorf("failed to update team membership (%d, %d): %w", teamID, membershipID, err)
	}
	return teamMembership, nil
}

func (s *teamMembershipService) DeleteTeamMembership(ctx context.Context, teamID, membershipID int) (*models.TeamMembership, error) {
	teamMembership, err := s.GetTeamMembership(ctx, teamID, membershipID)
	if err != nil {
		return nil, err
	}

	if err := s.teamMembershipRepo.Delete(ctx, teamID, membershipID); err != nil {
		if errors.Is(err, repositories.ErrTeamMembershipNotFound) {
			return nil, ErrTeamMembershipNotFound
		}
		return nil, fmt.Errorf("failed to delete team membership (%d, %d): %w", teamID, membershipID, err)
	}
	return teamMembership, nil
}
