package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/coog-esports/admin-api/models"
	"github.com/coog-esports/admin-api/repositories"
)

type ShirtSizeService interface {
	CreateShirtSize(ctx context.Context, input CreateShirtSizeInput) (*models.ShirtSize, error)
	GetShirtSizeByID(ctx context.Context, id int) (*models.ShirtSize, error)
	ListShirtSizes(ctx context.Context, skip, limit int) ([]models.ShirtSize, error)
	UpdateShirtSize(ctx context.Context, id int, input UpdateShirtSizeInput) (*models.ShirtSize, error)
	DeleteShirtSize(ctx context.Context, id int) (*models.ShirtSize, error)
}

type CreateShirtSizeInput struct {
	SizeName *models.ShirtSizeName `json:"size_name"`
}

type UpdateShirtSizeInput struct {
	SizeName *models.ShirtSizeName `json:"size_name"`
}

type shirtSizeService struct {
	shirtSizeRepo  repositories.ShirtSizeRepository
	membershipRepo repositories.MembershipRepository
}

func NewShirtSizeService(
	shirtSizeRepo repositories.ShirtSizeRepository,
	membershipRepo repositories.MembershipRepository,
) ShirtSizeService {
	return &shirtSizeService{
		shirtSizeRepo:  shirtSizeRepo,
		membershipRepo: membershipRepo,
	}
}

func (s *shirtSizeService) CreateShirtSize(ctx context.Context, input CreateShirtSizeInput) (*models.ShirtSize, error) {
	if err := s.checkName(ctx, input.SizeName, 0); err != nil {
		return nil, err
	}

	size := &models.ShirtSize{SizeName: input.SizeName}
	if err := s.shirtSizeRepo.Create(ctx, size); err != nil {
		if errors.Is(err, repositories.ErrShirtSizeNameConflict) {
			return nil, ErrShirtSizeNameConflict
		}
		return nil, fmt.Errorf("failed to create shirt size: %w", err)
	}
	return size, nil
}

func (s *shirtSizeService) GetShirtSizeByID(ctx context.Context, id int) (*models.ShirtSize, error) {
	size, err := s.shirtSizeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrShirtSizeNotFound) {
			return nil, ErrShirtSizeNotFound
		}
		return nil, fmt.Errorf("failed to get shirt size %d: %w", id, err)
	}
	return size, nil
}

func (s *shirtSizeService) ListShirtSizes(ctx context.Context, skip, limit int) ([]models.ShirtSize, error) {
	sizes, err := s.shirtSizeRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list shirt sizes: %w", err)
	}
	if sizes == nil {
		return []models.ShirtSize{}, nil
	}
	return sizes, nil
}

func (s *shirtSizeService) UpdateShirtSize(ctx context.Context, id int, input UpdateShirtSizeInput) (*models.ShirtSize, error) {
	size, err := s.GetShirtSizeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.SizeName != nil {
		if err := s.checkName(ctx, input.SizeName, id); err != nil {
			return nil, err
		}
		size.SizeName = input.SizeName
	}

	if err := s.shirtSizeRepo.Update(ctx, size); err != nil {
		switch {
		case errors.Is(err, repositories.ErrShirtSizeNotFound):
			return nil, ErrShirtSizeNotFound
		case errors.Is(err, repositories.ErrShirtSizeNameConflict):
			return nil, ErrShirtSizeNameConflict
		default:
			return nil, fmt.Errorf("failed to update shirt size %d: %w", id, err)
		}
	}
	return size, nil
}

func (s *shirtSizeService) DeleteShirtSize(ctx context.Context, id int) (*models.ShirtSize, error) {
	size, err := s.GetShirtSizeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	inUse, err := s.membershipRepo.ExistsByShirtSizeID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check shirt size usage: %w", err)
	}
	if inUse {
		return nil, ErrShirtSizeHasMemberships
	}

	if err := s.shirtSizeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrShirtSizeNotFound) {
			return nil, ErrShirtSizeNotFound
		}
		return nil, fmt.Errorf("failed to delete shirt size %d: %w", id, err)
	}
	return size, nil
}

func (s *shirtSizeService) checkName(ctx context.Context, name *models.ShirtSizeName, excludeID int) error {
	if name == nil {
		return nil
	}
	if !name.Valid() {
		return ErrShirtSizeNameInvalid
	}
	taken, err := s.shirtSizeRepo.NameTaken(ctx, *name, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check shirt size name uniqueness: %w", err)
	}
	if taken {
		return ErrShirtSizeNameConflict
	}
	return nil
}
