package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/coog-esports/admin-api/models"
	"github.com/coog-esports/admin-api/repositories"
	"github.com/coog-esports/admin-api/storage"
)

type OfficerService interface {
	CreateOfficer(ctx context.Context, input CreateOfficerInput) (*models.Officer, error)
	GetOfficerByID(ctx context.Context, id int) (*models.Officer, error)
	ListOfficers(ctx context.Context, skip, limit int) ([]models.Officer, error)
	ListOfficersByUser(ctx context.Context, userID, skip, limit int) ([]models.Officer, error)
	UpdateOfficer(ctx context.Context, id int, input UpdateOfficerInput) (*models.Officer, error)
	DeleteOfficer(ctx context.Context, id int) (*models.Officer, error)
	UploadImage(ctx context.Context, id int, contentType string, file io.Reader) (*models.Officer, error)
}

type CreateOfficerInput struct {
	UserID    int        `json:"user_id"`
	RoleID    int        `json:"role_id"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type UpdateOfficerInput struct {
	UserID    *int       `json:"user_id"`
	RoleID    *int       `json:"role_id"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type officerService struct {
	officerRepo repositories.OfficerRepository
	userRepo    repositories.UserRepository
	roleRepo    repositories.RoleRepository
	eventRepo   repositories.EventRepository
	mediaRepo   repositories.MediaRepository
	uploader    storage.FileUploader
}

func NewOfficerService(
	officerRepo repositories.OfficerRepository,
	userRepo repositories.UserRepository,
	roleRepo repositories.RoleRepository,
	eventRepo repositories.EventRepository,
	mediaRepo repositories.MediaRepository,
	uploader storage.FileUploader,
) OfficerService {
	return &officerService{
		officerRepo: officerRepo,
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		eventRepo:   eventRepo,
		mediaRepo:   mediaRepo,
		uploader:    uploader,
	}
}

func (s *officerService) CreateOfficer(ctx context.Context, input CreateOfficerInput) (*models.Officer, error) {
	if err := s.checkReferences(ctx, input.UserID, input.RoleID); err != nil {
		return nil, err
	}
	if err := validatePeriod(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	overlap, err := s.officerRepo.HasOverlap(ctx, input.UserID, input.StartDate, input.EndDate, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check officer overlap: %w", err)
	}
	if overlap {
		return nil, ErrOfficerOverlap
	}

	officer := &models.Officer{
		UserID:    input.UserID,
		RoleID:    input.RoleID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
	if err := s.officerRepo.Create(ctx, officer); err != nil {
		switch {
		case errors.Is(err, repositories.ErrOfficerUserInvalid):
			return nil, ErrUserNotFound
		case errors.Is(err, repositories.ErrOfficerRoleInvalid):
			return nil, ErrRoleNotFound
		default:
			return nil, fmt.Errorf("failed to create officer: %w", err)
		}
	}
	return officer, nil
}

func (s *officerService) GetOfficerByID(ctx context.Context, id int) (*models.Officer, error) {
	officer, err := s.officerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrOfficerNotFound) {
			return nil, ErrOfficerNotFound
		}
		return nil, fmt.Errorf("failed to get officer %d: %w", id, err)
	}
	officer.ImageURL = publicURL(s.uploader, officer.ImageKey)
	return officer, nil
}

func (s *officerService) ListOfficers(ctx context.Context, skip, limit int) ([]models.Officer, error) {
	officers, err := s.officerRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list officers: %w", err)
	}
	return s.withImageURLs(officers), nil
}

func (s *officerService) ListOfficersByUser(ctx context.Context, userID, skip, limit int) ([]models.Officer, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}

	officers, err := s.officerRepo.ListByUser(ctx, userID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list officers for user %d: %w", userID, err)
	}
	return s.withImageURLs(officers), nil
}

func (s *officerService) UpdateOfficer(ctx context.Context, id int, input UpdateOfficerInput) (*models.Officer, error) {
	officer, err := s.GetOfficerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.UserID != nil {
		officer.UserID = *input.UserID
	}
	if input.RoleID != nil {
		officer.RoleID = *input.RoleID
	}
	if input.StartDate != nil {
		officer.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		officer.EndDate = input.EndDate
	}

	if err := s.checkReferences(ctx, officer.UserID, officer.RoleID); err != nil {
		return nil, err
	}
	if err := validatePeriod(officer.StartDate, officer.EndDate); err != nil {
		return nil, err
	}

	overlap, err := s.officerRepo.HasOverlap(ctx, officer.UserID, officer.StartDate, officer.EndDate, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check officer overlap: %w", err)
	}
	if overlap {
		return nil, ErrOfficerOverlap
	}

	if err := s.officerRepo.Update(ctx, officer); err != nil {
		switch {
		case errors.Is(err, repositories.ErrOfficerNotFound):
			return nil, ErrOfficerNotFound
		case errors.Is(err, repositories.ErrOfficerUserInvalid):
			return nil, ErrUserNotFound
		case errors.Is(err, repositories.ErrOfficerRoleInvalid):
			return nil, ErrRoleNotFound
		default:
			return nil, fmt.Errorf("failed to update officer %d: %w", id, err)
		}
	}
	return officer, nil
}

func (s *officerService) DeleteOfficer(ctx context.Context, id int) (*models.Officer, error) {
	officer, err := s.GetOfficerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hasEvents, err := s.eventRepo.ExistsByCreatedByOfficerID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check officer events: %w", err)
	}
	hasMedia, err := s.mediaRepo.ExistsByUploadedByOfficerID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check officer media: %w", err)
	}
	if hasEvents || hasMedia {
		return nil, ErrOfficerHasDependents
	}

	if err := s.officerRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrOfficerNotFound):
			return nil, ErrOfficerNotFound
		case errors.Is(err, repositories.ErrOfficerInUse):
			return nil, ErrOfficerHasDependents
		default:
			return nil, fmt.Errorf("failed to delete officer %d: %w", id, err)
		}
	}

	if s.uploader != nil && officer.ImageKey != nil {
		_ = s.uploader.Delete(ctx, *officer.ImageKey)
	}
	return officer, nil
}

func (s *officerService) UploadImage(ctx context.Context, id int, contentType string, file io.Reader) (*models.Officer, error) {
	if s.uploader == nil {
		return nil, ErrUploadsDisabled
	}

	officer, err := s.GetOfficerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ext, err := extensionFromContentType(contentType)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("officers/%d/image%s", id, ext)

	if officer.ImageKey != nil && *officer.ImageKey != key {
		_ = s.uploader.Delete(ctx, *officer.ImageKey)
	}

	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload officer image: %w", err)
	}

	if err := s.officerRepo.UpdateImageKey(ctx, id, &result.Key); err != nil {
		if errors.Is(err, repositories.ErrOfficerNotFound) {
			return nil, ErrOfficerNotFound
		}
		return nil, fmt.Errorf("failed to store officer image key: %w", err)
	}

	officer.ImageKey = &result.Key
	officer.ImageURL = publicURL(s.uploader, officer.ImageKey)
	return officer, nil
}

func (s *officerService) checkReferences(ctx context.Context, userID, roleID int) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to get user %d: %w", userID, err)
	}
	if _, err := s.roleRepo.GetByID(ctx, roleID); err != nil {
		if errors.Is(err, repositories.ErrRoleNotFound) {
			return ErrRoleNotFound
		}
		return fmt.Errorf("failed to get role %d: %w", roleID, err)
	}
	return nil
}

func (s *officerService) withImageURLs(officers []models.Officer) []models.Officer {
	if officers == nil {
		return []models.Officer{}
	}
	for i := range officers {
		officers[i].ImageURL = publicURL(s.uploader, officers[i].ImageKey)
	}
	return officers
}
