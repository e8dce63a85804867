package services

import (
	"context"
	"testing"

	"github.com/coog-esports/admin-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOfficerServiceForTest(officerRepo *fakeOfficerRepo) OfficerService {
	if officerRepo == nil {
		officerRepo = &fakeOfficerRepo{}
	}
	userRepo := &fakeUserRepo{users: map[int]*models.User{
		1: {ID: 1, Email: "sam@uh.edu"},
		2: {ID: 2, Email: "alex@uh.edu"},
	}}
	roleRepo := &fakeRoleRepo{roles: map[int]*models.Role{3: {ID: 3, RoleName: "President"}}}
	return NewOfficerService(officerRepo, userRepo, roleRepo, nil, nil, nil)
}

func TestCreateOfficerOverlappingTerm(t *testing.T) {
	officerRepo := &fakeOfficerRepo{officers: map[int]*models.Officer{
		1: {ID: 1, UserID: 1, RoleID: 3, StartDate: ts("2024-01-01"), EndDate: tsp("2024-06-01")},
	}}
	svc := newOfficerServiceForTest(officerRepo)
	ctx := context.Background()

	_, err := svc.CreateOfficer(ctx, CreateOfficerInput{
		UserID:    1,
		RoleID:    3,
		StartDate: ts("2024-03-01"),
		EndDate:   tsp("2024-09-01"),
	})
	assert.ErrorIs(t, err, ErrOfficerOverlap)

	// A disjoint period for the same user is fine, open end included.
	created, err := svc.CreateOfficer(ctx, CreateOfficerInput{UserID: 1, RoleID: 3, StartDate: ts("2024-07-01")})
	require.NoError(t, err)
	assert.Nil(t, created.EndDate)

	// Another user may hold a position over the same period.
	_, err = svc.CreateOfficer(ctx, CreateOfficerInput{
		UserID:    2,
		RoleID:    3,
		StartDate: ts("2024-03-01"),
		EndDate:   tsp("2024-09-01"),
	})
	require.NoError(t, err)
}

func TestCreateOfficerMissingReferences(t *testing.T) {
	svc := newOfficerServiceForTest(nil)
	ctx := context.Background()

	_, err := svc.CreateOfficer(ctx, CreateOfficerInput{UserID: 99, RoleID: 3, StartDate: ts("2024-01-01")})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.CreateOfficer(ctx, CreateOfficerInput{UserID: 1, RoleID: 99, StartDate: ts("2024-01-01")})
	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestCreateOfficerInvalidPeriod(t *testing.T) {
	svc := newOfficerServiceForTest(nil)

	_, err := svc.CreateOfficer(context.Background(), CreateOfficerInput{
		UserID:    1,
		RoleID:    3,
		StartDate: ts("2024-06-01"),
		EndDate:   tsp("2024-01-01"),
	})
	assert.ErrorIs(t, err, ErrPeriodInvalid)
}
