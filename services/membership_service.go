package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coog-esports/admin-api/models"
	"github.com/coog-esports/admin-api/repositories"
)

type MembershipService interface {
	CreateMembership(ctx context.Context, input CreateMembershipInput) (*models.Membership, error)
	GetMembershipByID(ctx context.Context, id int) (*models.Membership, error)
	ListMemberships(ctx context.Context, skip, limit int) ([]models.Membership, error)
	ListMembershipsByUser(ctx context.Context, userID, skip, limit int) ([]models.Membership, error)
	UpdateMembership(ctx context.Context, id int, input UpdateMembershipInput) (*models.Membership, error)
	DeleteMembership(ctx context.Context, id int) (*models.Membership, error)
}

type CreateMembershipInput struct {
	UserID      int        `json:"user_id"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	ShirtSizeID *int       `json:"shirt_size_id"`
}

type UpdateMembershipInput struct {
	UserID      *int       `json:"user_id"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	ShirtSizeID *int       `json:"shirt_size_id"`
}

type membershipService struct {
	membershipRepo     repositories.MembershipRepository
	userRepo           repositories.UserRepository
	shirtSizeRepo      repositories.ShirtSizeRepository
	teamMembershipRepo repositories.TeamMembershipRepository
}

func NewMembershipService(
	membershipRepo repositories.MembershipRepository,
	userRepo repositories.UserRepository,
	shirtSizeRepo repositories.ShirtSizeRepository,
	teamMembershipRepo repositories.TeamMembershipRepository,
) MembershipService {
	return &membershipService{
		membershipRepo:     membershipRepo,
		userRepo:           userRepo,
		shirtSizeRepo:      shirtSizeRepo,
		teamMembershipRepo: teamMembershipRepo,
	}
}

func (s *membershipService) CreateMembership(ctx context.Context, input CreateMembershipInput) (*models.Membership, error) {
	if err := s.checkReferences(ctx, input.UserID, input.ShirtSizeID); err != nil {
		return nil, err
	}

	startDate := time.Now().UTC()
	if input.StartDate != nil {
		startDate = *input.StartDate
	}
	if err := validatePeriod(startDate, &input.EndDate); err != nil {
		return nil, err
	}

	overlap, err := s.membershipRepo.HasOverlap(ctx, input.UserID, startDate, input.EndDate, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership overlap: %w", err)
	}
	if overlap {
		return nil, ErrMembershipOverlap
	}

	membership := &models.Membership{
		UserID:      input.UserID,
		StartDate:   startDate,
		EndDate:     input.EndDate,
		ShirtSizeID: input.ShirtSizeID,
	}
	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		switch {
		case errors.Is(err, repositories.ErrMembershipUserInvalid):
			return nil, ErrUserNotFound
		case errors.Is(err, repositories.ErrMembershipShirtSizeInvalid):
			return nil, ErrShirtSizeNotFound
		default:
			return nil, fmt.Errorf("failed to create membership: %w", err)
		}
	}
	return membership, nil
}

func (s *membershipService) GetMembershipByID(ctx context.Context, id int) (*models.Membership, error) {
	membership, err := s.membershipRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMembershipNotFound) {
			return nil, ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get membership %d: %w", id, err)
	}
	return membership, nil
}

func (s *membershipService) ListMemberships(ctx context.Context, skip, limit int) ([]models.Membership, error) {
	memberships, err := s.membershipRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	if memberships == nil {
		return []models.Membership{}, nil
	}
	return memberships, nil
}

func (s *membershipService) ListMembershipsByUser(ctx context.Context, userID, skip, limit int) ([]models.Membership, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}

	memberships, err := s.membershipRepo.ListByUser(ctx, userID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships for user %d: %w", userID, err)
	}
	if memberships == nil {
		return []models.Membership{}, nil
	}
	return memberships, nil
}

func (s *membershipService) UpdateMembership(ctx context.Context, id int, input UpdateMembershipInput) (*models.Membership, error) {
	membership, err := s.GetMembershipByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.UserID != nil {
		membership.UserID = *input.UserID
	}
	if input.StartDate != nil {
		membership.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		membership.EndDate = *input.EndDate
	}
	if input.ShirtSizeID != nil {
		membership.ShirtSizeID = input.ShirtSizeID
	}

	if err := s.checkReferences(ctx, membership.UserID, membership.ShirtSizeID); err != nil {
		return nil, err
	}
	if err := validatePeriod(membership.StartDate, &membership.EndDate); err != nil {
		return nil, err
	}

	overlap, err := s.membershipRepo.HasOverlap(ctx, membership.UserID, membership.StartDate, membership.EndDate, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership overlap: %w", err)
	}
	if overlap {
		return nil, ErrMembershipOverlap
	}

	if err := s.membershipRepo.Update(ctx, membership); err != nil {
		switch {
		case errors.Is(err, repositories.ErrMembershipNotFound):
			return nil, ErrMembershipNotFound
		case errors.Is(err, repositories.ErrMembershipUserInvalid):
			return nil, ErrUserNotFound
		case errors.Is(err, repositories.ErrMembershipShirtSizeInvalid):
			return nil, ErrShirtSizeNotFound
		default:
			return nil, fmt.Errorf("failed to update membership %d: %w", id, err)
		}
	}
	return membership, nil
}

func (s *membershipService) DeleteMembership(ctx context.Context, id int) (*models.Membership, error) {
	membership, err := s.GetMembershipByID(ctx, id)
	if err != nil {
		return nil, err
	}

	inUse, err := s.teamMembershipRepo.ExistsByMembershipID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership team assignments: %w", err)
	}
	if inUse {
		return nil, ErrMembershipHasTeamMemberships
	}

	if err := s.membershipRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrMembershipNotFound):
			return nil, ErrMembershipNotFound
		case errors.Is(err, repositories.ErrMembershipInUse):
			return nil, ErrMembershipHasTeamMemberships
		default:
			return nil, fmt.Errorf("failed to delete membership %d: %w", id, err)
		}
	}
	return membership, nil
}

func (s *membershipService) checkReferences(ctx context.Context, userID int, shirtSizeID *int) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to get user %d: %w", userID, err)
	}
	if shirtSizeID != nil {
		if _, err := s.shirtSizeRepo.GetByID(ctx, *shirtSizeID); err != nil {
			if errors.Is(err, repositories.ErrShirtSizeNotFound) {
				return ErrShirtSizeNotFound
			}
			return fmt.Errorf("failed to get shirt size %d: %w", *shirtSizeID, err)
		}
	}
	return nil
}
