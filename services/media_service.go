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

type MediaService interface {
	CreateMedia(ctx context.Context, input CreateMediaInput) (*models.Media, error)
	GetMediaByID(ctx context.Context, id int) (*models.Media, error)
	ListMedia(ctx context.Context, skip, limit int) ([]models.Media, error)
	ListMediaByTerm(ctx context.Context, termID, skip, limit int) ([]models.Media, error)
	UpdateMedia(ctx context.Context, id int, input UpdateMediaInput) (*models.Media, error)
	DeleteMedia(ctx context.Context, id int) (*models.Media, error)
	UploadImage(ctx context.Context, id int, contentType string, file io.Reader) (*models.Media, error)
}

type CreateMediaInput struct {
	AcademicTermID      int        `json:"academic_term_id"`
	UploadedByOfficerID int        `json:"uploaded_by_officer_id"`
	DateUploaded        *time.Time `json:"date_uploaded"`
}

type UpdateMediaInput struct {
	AcademicTermID      *int       `json:"academic_term_id"`
	UploadedByOfficerID *int       `json:"uploaded_by_officer_id"`
	DateUploaded        *time.Time `json:"date_uploaded"`
}

type mediaService struct {
	mediaRepo   repositories.MediaRepository
	termRepo    repositories.AcademicTermRepository
	officerRepo repositories.OfficerRepository
	uploader    storage.FileUploader
}

func NewMediaService(
	mediaRepo repositories.MediaRepository,
	termRepo repositories.AcademicTermRepository,
	officerRepo repositories.OfficerRepository,
	uploader storage.FileUploader,
) MediaService {
	return &mediaService{
		mediaRepo:   mediaRepo,
		termRepo:    termRepo,
		officerRepo: officerRepo,
		uploader:    uploader,
	}
}

func (s *mediaService) CreateMedia(ctx context.Context, input CreateMediaInput) (*models.Media, error) {
	if err := s.checkReferences(ctx, input.AcademicTermID, input.UploadedByOfficerID); err != nil {
		return nil, err
	}

	dateUploaded := time.Now().UTC()
	if input.DateUploaded != nil {
		dateUploaded = *input.DateUploaded
	}

	media := &models.Media{
		AcademicTermID:      input.AcademicTermID,
		UploadedByOfficerID: input.UploadedByOfficerID,
		DateUploaded:        dateUploaded,
	}
	if err := s.mediaRepo.Create(ctx, media); err != nil {
		switch {
		case errors.Is(err, repositories.ErrMediaTermInvalid):
			return nil, ErrAcademicTermNotFound
		case errors.Is(err, repositories.ErrMediaOfficerInvalid):
			return nil, ErrOfficerNotFound
		default:
			return nil, fmt.Errorf("failed to create media: %w", err)
		}
	}
	return media, nil
}

func (s *mediaService) GetMediaByID(ctx context.Context, id int) (*models.Media, error) {
	media, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMediaNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, fmt.Errorf("failed to get media %d: %w", id, err)
	}
	media.ImageURL = publicURL(s.uploader, media.ImageKey)
	return media, nil
}

func (s *mediaService) ListMedia(ctx context.Context, skip, limit int) ([]models.Media, error) {
	media, err := s.mediaRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}
	return s.withImageURLs(media), nil
}

func (s *mediaService) ListMediaByTerm(ctx context.Context, termID, skip, limit int) ([]models.Media, error) {
	if _, err := s.termRepo.GetByID(ctx, termID); err != nil {
		if errors.Is(err, repositories.ErrAcademicTermNotFound) {
			return nil, ErrAcademicTermNotFound
		}
		return nil, fmt.Errorf("failed to get academic term %d: %w", termID, err)
	}

	media, err := s.mediaRepo.ListByTerm(ctx, termID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list media for term %d: %w", termID, err)
	}
	return s.withImageURLs(media), nil
}

func (s *mediaService) UpdateMedia(ctx context.Context, id int, input UpdateMediaInput) (*models.Media, error) {
	media, err := s.GetMediaByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.AcademicTermID != nil {
		media.AcademicTermID = *input.AcademicTermID
	}
	if input.UploadedByOfficerID != nil {
		media.UploadedByOfficerID = *input.UploadedByOfficerID
	}
	if input.DateUploaded != nil {
		media.DateUploaded = *input.DateUploaded
	}

	if err := s.checkReferences(ctx, media.AcademicTermID, media.UploadedByOfficerID); err != nil {
		return nil, err
	}

	if err := s.mediaRepo.Update(ctx, media); err != nil {
		switch {
		case errors.Is(err, repositories.ErrMediaNotFound):
			return nil, ErrMediaNotFound
		case errors.Is(err, repositories.ErrMediaTermInvalid):
			return nil, ErrAcademicTermNotFound
		case errors.Is(err, repositories.ErrMediaOfficerInvalid):
			return nil, ErrOfficerNotFound
		default:
			return nil, fmt.Errorf("failed to update media %d: %w", id, err)
		}
	}
	return media, nil
}

func (s *mediaService) DeleteMedia(ctx context.Context, id int) (*models.Media, error) {
	media, err := s.GetMediaByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.mediaRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrMediaNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, fmt.Errorf("failed to delete media %d: %w", id, err)
	}

	if s.uploader != nil && media.ImageKey != nil {
		_ = s.uploader.Delete(ctx, *media.ImageKey)
	}
	return media, nil
}

func (s *mediaService) UploadImage(ctx context.Context, id int, contentType string, file io.Reader) (*models.Media, error) {
	if s.uploader == nil {
		return nil, ErrUploadsDisabled
	}

	media, err := s.GetMediaByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ext, err := extensionFromContentType(contentType)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("media/%d/image%s", id, ext)

	if media.ImageKey != nil && *media.ImageKey != key {
		_ = s.uploader.Delete(ctx, *media.ImageKey)
	}

	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload media image: %w", err)
	}

	if err := s.mediaRepo.UpdateImageKey(ctx, id, &result.Key); err != nil {
		if errors.Is(err, repositories.ErrMediaNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, fmt.Errorf("failed to store media image key: %w", err)
	}

	media.ImageKey = &result.Key
	media.ImageURL = publicURL(s.uploader, media.ImageKey)
	return media, nil
}

func (s *mediaService) checkReferences(ctx context.Context, termID, officerID int) error {
	if _, err := s.termRepo.GetByID(ctx, termID); err != nil {
		if errors.Is(err, repositories.ErrAcademicTermNotFound) {
			return ErrAcademicTermNotFound
		}
		return fmt.Errorf("failed to get academic term %d: %w", termID, err)
	}
	if _, err := s.officerRepo.GetByID(ctx, officerID); err != nil {
		if errors.Is(err, repositories.ErrOfficerNotFound) {
			return ErrOfficerNotFound
		}
		return fmt.Errorf("failed to get officer %d: %w", officerID, err)
	}
	return nil
}

func (s *mediaService) withImageURLs(media []models.Media) []models.Media {
	if media == nil {
		return []models.Media{}
	}
	for i := range media {
		media[i].ImageURL = publicURL(s.uploader, media[i].ImageKey)
	}
	return media
}
