package services

import (
	"context"
	"testing"

	"github.com/coog-esports/admin-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAcademicTermServiceForTest(termRepo *fakeAcademicTermRepo, mediaRepo *fakeMediaRepo) AcademicTermService {
	if termRepo == nil {
		termRepo = &fakeAcademicTermRepo{terms: map[int]*models.AcademicTerm{}}
	}
	if mediaRepo == nil {
		mediaRepo = &fakeMediaRepo{}
	}
	return NewAcademicTermService(termRepo, mediaRepo)
}

func TestCreateAcademicTermOverlap(t *testing.T) {
	termRepo := &fakeAcademicTermRepo{terms: map[int]*models.AcademicTerm{}, hasOverlap: true}
	svc := newAcademicTermServiceForTest(termRepo, nil)

	_, err := svc.CreateAcademicTerm(context.Background(), CreateAcademicTermInput{
		Semester:  "Fall 2025",
		StartDate: ts("2025-08-25"),
		EndDate:   ts("2025-12-12"),
	})
	assert.ErrorIs(t, err, ErrAcademicTermOverlap)
}

func TestCreateAcademicTermInvalidPeriod(t *testing.T) {
	svc := newAcademicTermServiceForTest(nil, nil)

	_, err := svc.CreateAcademicTerm(context.Background(), CreateAcademicTermInput{
		Semester:  "Fall 2025",
		StartDate: ts("2025-12-12"),
		EndDate:   ts("2025-08-25"),
	})
	assert.ErrorIs(t, err, ErrPeriodInvalid)
}

func TestCreateAcademicTermSemesterRequired(t *testing.T) {
	svc := newAcademicTermServiceForTest(nil, nil)

	_, err := svc.CreateAcademicTerm(context.Background(), CreateAcademicTermInput{
		Semester:  "   ",
		StartDate: ts("2025-08-25"),
		EndDate:   ts("2025-12-12"),
	})
	assert.ErrorIs(t, err, ErrAcademicTermSemesterRequired)
}

func TestUpdateAcademicTermOverlap(t *testing.T) {
	termRepo := &fakeAcademicTermRepo{terms: map[int]*models.AcademicTerm{
		4: {ID: 4, Semester: "Fall 2025", StartDate: ts("2025-08-25"), EndDate: ts("2025-12-12")},
	}}
	svc := newAcademicTermServiceForTest(termRepo, nil)

	newEnd := ts("2026-01-10")
	updated, err := svc.UpdateAcademicTerm(context.Background(), 4, UpdateAcademicTermInput{EndDate: &newEnd})
	require.NoError(t, err)
	assert.Equal(t, newEnd, updated.EndDate)

	termRepo.hasOverlap = true
	_, err = svc.UpdateAcademicTerm(context.Background(), 4, UpdateAcademicTermInput{EndDate: &newEnd})
	assert.ErrorIs(t, err, ErrAcademicTermOverlap)
}

func TestDeleteAcademicTermWithMedia(t *testing.T) {
	termRepo := &fakeAcademicTermRepo{terms: map[int]*models.AcademicTerm{
		4: {ID: 4, Semester: "Fall 2025", StartDate: ts("2025-08-25"), EndDate: ts("2025-12-12")},
	}}
	svc := newAcademicTermServiceForTest(termRepo, &fakeMediaRepo{existsByTerm: true})

	_, err := svc.DeleteAcademicTerm(context.Background(), 4)
	assert.ErrorIs(t, err, ErrAcademicTermHasMedia)
}
