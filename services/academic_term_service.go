package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coog-esports/admin-api/models"
	"github.com/coog-esports/admin-api/repositories"
)

var ErrAcademicTermSemesterRequired = errors.New("semester is required")

type AcademicTermService interface {
	CreateAcademicTerm(ctx context.Context, input CreateAcademicTermInput) (*models.AcademicTerm, error)
	GetAcademicTermByID(ctx context.Context, id int) (*models.AcademicTerm, error)
	ListAcademicTerms(ctx context.Context, skip, limit int) ([]models.AcademicTerm, error)
	UpdateAcademicTerm(ctx context.Context, id int, input UpdateAcademicTermInput) (*models.AcademicTerm, error)
	DeleteAcademicTerm(ctx context.Context, id int) (*models.AcademicTerm, error)
}

type CreateAcademicTermInput struct {
	Semester  string    `json:"semester"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type UpdateAcademicTermInput struct {
	Semester  *string    `json:"semester"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type academicTermService struct {
	termRepo  repositories.AcademicTermRepository
	mediaRepo repositories.MediaRepository
}

func NewAcademicTermService(
	termRepo repositories.AcademicTermRepository,
	mediaRepo repositories.MediaRepository,
) AcademicTermService {
	return &academicTermService{
		termRepo:  termRepo,
		mediaRepo: mediaRepo,
	}
}

func (s *academicTermService) CreateAcademicTerm(ctx context.Context, input CreateAcademicTermInput) (*models.AcademicTerm, error) {
	semester := trimmed(input.Semester)
	if semester == "" {
		return nil, ErrAcademicTermSemesterRequired
	}
	if err := validatePeriod(input.StartDate, &input.EndDate); err != nil {
		return nil, err
	}

	overlap, err := s.termRepo.HasOverlap(ctx, input.StartDate, input.EndDate, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check term overlap: %w", err)
	}
	if overlap {
		return nil, ErrAcademicTermOverlap
	}

	term := &models.AcademicTerm{
		Semester:  semester,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
	if err := s.termRepo.Create(ctx, term); err != nil {
		return nil, fmt.Errorf("failed to create academic term: %w", err)
	}
	return term, nil
}

func (s *academicTermService) GetAcademicTermByID(ctx context.Context, id int) (*models.AcademicTerm, error) {
	term, err := s.termRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAcademicTermNotFound) {
			return nil, ErrAcademicTermNotFound
		}
		return nil, fmt.Errorf("failed to get academic term %d: %w", id, err)
	}
	return term, nil
}

func (s *academicTermService) ListAcademicTerms(ctx context.Context, skip, limit int) ([]models.AcademicTerm, error) {
	terms, err := s.termRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list academic terms: %w", err)
	}
	if terms == nil {
		return []models.AcademicTerm{}, nil
	}
	return terms, nil
}

func (s *academicTermService) UpdateAcademicTerm(ctx context.Context, id int, input UpdateAcademicTermInput) (*models.AcademicTerm, error) {
	term, err := s.GetAcademicTermByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Semester != nil {
		semester := trimmed(*input.Semester)
		if semester == "" {
			return nil, ErrAcademicTermSemesterRequired
		}
		term.Semester = semester
	}
	if input.StartDate != nil {
		term.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		term.EndDate = *input.EndDate
	}
	if err := validatePeriod(term.StartDate, &term.EndDate); err != nil {
		return nil, err
	}

	overlap, err := s.termRepo.HasOverlap(ctx, term.StartDate, term.EndDate, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check term overlap: %w", err)
	}
	if overlap {
		return nil, ErrAcademicTermOverlap
	}

	if err := s.termRepo.Update(ctx, term); err != nil {
		if errors.Is(err, repositories.ErrAcademicTermNotFound) {
			return nil, ErrAcademicTermNotFound
		}
		return nil, fmt.Errorf("failed to update academic term %d: %w", id, err)
	}
	return term, nil
}

func (s *academicTermService) DeleteAcademicTerm(ctx context.Context, id int) (*models.AcademicTerm, error) {
	term, err := s.GetAcademicTermByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hasMedia, err := s.mediaRepo.ExistsByTermID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check term media: %w", err)
	}
	if hasMedia {
		return nil, ErrAcademicTermHasMedia
	}

	if err := s.termRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrAcademicTermNotFound):
			return nil, ErrAcademicTermNotFound
		case errors.Is(err, repositories.ErrAcademicTermInUse):
			return nil, ErrAcademicTermHasMedia
		default:
			return nil, fmt.Errorf("failed to delete academic term %d: %w", id, err)
		}
	}
	return term, nil
}
