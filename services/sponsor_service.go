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

var ErrSponsorNameRequired = errors.New("sponsor name is required")

type SponsorService interface {
	CreateSponsor(ctx context.Context, input CreateSponsorInput) (*models.Sponsor, error)
	GetSponsorByID(ctx context.Context, id int) (*models.Sponsor, error)
	ListSponsors(ctx context.Context, skip, limit int) ([]models.Sponsor, error)
	ListActiveSponsors(ctx context.Context, skip, limit int) ([]models.Sponsor, error)
	UpdateSponsor(ctx context.Context, id int, input UpdateSponsorInput) (*models.Sponsor, error)
	DeleteSponsor(ctx context.Context, id int) (*models.Sponsor, error)
	UploadLogo(ctx context.Context, id int, contentType string, file io.Reader) (*models.Sponsor, error)
}

type CreateSponsorInput struct {
	SponsorName    string     `json:"sponsor_name"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	SponsorWebsite *string    `json:"sponsor_website"`
}

type UpdateSponsorInput struct {
	SponsorName    *string    `json:"sponsor_name"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	SponsorWebsite *string    `json:"sponsor_website"`
}

type sponsorService struct {
	sponsorRepo repositories.SponsorRepository
	uploader    storage.FileUploader
}

func NewSponsorService(sponsorRepo repositories.SponsorRepository, uploader storage.FileUploader) SponsorService {
	return &sponsorService{
		sponsorRepo: sponsorRepo,
		uploader:    uploader,
	}
}

func (s *sponsorService) CreateSponsor(ctx context.Context, input CreateSponsorInput) (*models.Sponsor, error) {
	name := trimmed(input.SponsorName)
	if name == "" {
		return nil, ErrSponsorNameRequired
	}
	if err := validatePeriod(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	taken, err := s.sponsorRepo.NameTaken(ctx, name, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check sponsor name uniqueness: %w", err)
	}
	if taken {
		return nil, ErrSponsorNameConflict
	}

	sponsor := &models.Sponsor{
		SponsorName:    name,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		SponsorWebsite: input.SponsorWebsite,
	}
	if err := s.sponsorRepo.Create(ctx, sponsor); err != nil {
		if errors.Is(err, repositories.ErrSponsorNameConflict) {
			return nil, ErrSponsorNameConflict
		}
		return nil, fmt.Errorf("failed to create sponsor: %w", err)
	}
	return sponsor, nil
}

func (s *sponsorService) GetSponsorByID(ctx context.Context, id int) (*models.Sponsor, error) {
	sponsor, err := s.sponsorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSponsorNotFound) {
			return nil, ErrSponsorNotFound
		}
		return nil, fmt.Errorf("failed to get sponsor %d: %w", id, err)
	}
	sponsor.LogoURL = publicURL(s.uploader, sponsor.LogoKey)
	return sponsor, nil
}

func (s *sponsorService) ListSponsors(ctx context.Context, skip, limit int) ([]models.Sponsor, error) {
	sponsors, err := s.sponsorRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sponsors: %w", err)
	}
	return s.withLogoURLs(sponsors), nil
}

func (s *sponsorService) ListActiveSponsors(ctx context.Context, skip, limit int) ([]models.Sponsor, error) {
	sponsors, err := s.sponsorRepo.ListActive(ctx, time.Now().UTC(), skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list active sponsors: %w", err)
	}
	return s.withLogoURLs(sponsors), nil
}

func (s *sponsorService) UpdateSponsor(ctx context.Context, id int, input UpdateSponsorInput) (*models.Sponsor, error) {
	sponsor, err := s.GetSponsorByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.SponsorName != nil {
		name := trimmed(*input.SponsorName)
		if name == "" {
			return nil, ErrSponsorNameRequired
		}
		if name != sponsor.SponsorName {
			taken, err := s.sponsorRepo.NameTaken(ctx, name, id)
			if err != nil {
				return nil, fmt.Errorf("failed to check sponsor name uniqueness: %w", err)
			}
			if taken {
				return nil, ErrSponsorNameConflict
			}
		}
		sponsor.SponsorName = name
	}
	if input.StartDate != nil {
		sponsor.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		sponsor.EndDate = input.EndDate
	}
	if input.SponsorWebsite != nil {
		sponsor.SponsorWebsite = input.SponsorWebsite
	}
	if err := validatePeriod(sponsor.StartDate, sponsor.EndDate); err != nil {
		return nil, err
	}

	if err := s.sponsorRepo.Update(ctx, sponsor); err != nil {
		switch {
		case errors.Is(err, repositories.ErrSponsorNotFound):
			return nil, ErrSponsorNotFound
		case errors.Is(err, repositories.ErrSponsorNameConflict):
			return nil, ErrSponsorNameConflict
		default:
			return nil, fmt.Errorf("failed to update sponsor %d: %w", id, err)
		}
	}
	return sponsor, nil
}

func (s *sponsorService) DeleteSponsor(ctx context.Context, id int) (*models.Sponsor, error) {
	sponsor, err := s.GetSponsorByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.sponsorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrSponsorNotFound) {
			return nil, ErrSponsorNotFound
		}
		return nil, fmt.Errorf("failed to delete sponsor %d: %w", id, err)
	}

	if s.uploader != nil && sponsor.LogoKey != nil {
		_ = s.uploader.Delete(ctx, *sponsor.LogoKey)
	}
	return sponsor, nil
}

func (s *sponsorService) UploadLogo(ctx context.Context, id int, contentType string, file io.Reader) (*models.Sponsor, error) {
	if s.uploader == nil {
		return nil, ErrUploadsDisabled
	}

	sponsor, err := s.GetSponsorByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ext, err := extensionFromContentType(contentType)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("sponsors/%d/logo%s", id, ext)

	if sponsor.LogoKey != nil && *sponsor.LogoKey != key {
		_ = s.uploader.Delete(ctx, *sponsor.LogoKey)
	}

	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload sponsor logo: %w", err)
	}

	if err := s.sponsorRepo.UpdateLogoKey(ctx, id, &result.Key); err != nil {
		if errors.Is(err, repositories.ErrSponsorNotFound) {
			return nil, ErrSponsorNotFound
		}
		return nil, fmt.Errorf("failed to store sponsor logo key: %w", err)
	}

	sponsor.LogoKey = &result.Key
	sponsor.LogoURL = publicURL(s.uploader, sponsor.LogoKey)
	return sponsor, nil
}

func (s *sponsorService) withLogoURLs(sponsors []models.Sponsor) []models.Sponsor {
	if sponsors == nil {
		return []models.Sponsor{}
	}
	for i := range sponsors {
		sponsors[i].LogoURL = publicURL(s.uploader, sponsors[i].LogoKey)
	}
	return sponsors
}
