package services

import (
	"context"
	"testing"
	"time"

	"github.com/coog-esports/admin-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMembershipServiceForTest(membershipRepo *fakeMembershipRepo, teamMembershipRepo *fakeTeamMembershipRepo) MembershipService {
	if membershipRepo == nil {
		membershipRepo = &fakeMembershipRepo{memberships: map[int]*models.Membership{}}
	}
	if teamMembershipRepo == nil {
		teamMembershipRepo = &fakeTeamMembershipRepo{}
	}
	userRepo := &fakeUserRepo{users: map[int]*models.User{1: {ID: 1, Email: "sam@uh.edu"}}}
	sizeRepo := &fakeShirtSizeRepo{sizes: map[int]*models.ShirtSize{3: {ID: 3}}}
	return NewMembershipService(membershipRepo, userRepo, sizeRepo, teamMembershipRepo)
}

func TestCreateMembershipOverlap(t *testing.T) {
	membershipRepo := &fakeMembershipRepo{memberships: map[int]*models.Membership{}, hasOverlap: true}
	svc := newMembershipServiceForTest(membershipRepo, nil)

	_, err := svc.CreateMembership(context.Background(), CreateMembershipInput{
		UserID:    1,
		StartDate: tsp("2025-01-15"),
		EndDate:   ts("2025-05-15"),
	})
	assert.ErrorIs(t, err, ErrMembershipOverlap)
	assert.True(t, membershipRepo.overlapCalled)
}

func TestCreateMembershipDefaultsStartDate(t *testing.T) {
	membershipRepo := &fakeMembershipRepo{memberships: map[int]*models.Membership{}}
	svc := newMembershipServiceForTest(membershipRepo, nil)

	before := time.Now().UTC()
	membership, err := svc.CreateMembership(context.Background(), CreateMembershipInput{
		UserID:  1,
		EndDate: time.Now().UTC().AddDate(1, 0, 0),
	})
	require.NoError(t, err)
	assert.False(t, membership.StartDate.Before(before))
}

func TestCreateMembershipUserNotFound(t *testing.T) {
	svc := newMembershipServiceForTest(nil, nil)

	_, err := svc.CreateMembership(context.Background(), CreateMembershipInput{
		UserID:    99,
		StartDate: tsp("2025-01-15"),
		EndDate:   ts("2025-05-15"),
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateMembershipShirtSizeNotFound(t *testing.T) {
	svc := newMembershipServiceForTest(nil, nil)

	missing := 99
	_, err := svc.CreateMembership(context.Background(), CreateMembershipInput{
		UserID:      1,
		StartDate:   tsp("2025-01-15"),
		EndDate:     ts("2025-05-15"),
		ShirtSizeID: &missing,
	})
	assert.ErrorIs(t, err, ErrShirtSizeNotFound)
}

func TestCreateMembershipInvalidPeriod(t *testing.T) {
	svc := newMembershipServiceForTest(nil, nil)

	_, err := svc.CreateMembership(context.Background(), CreateMembershipInput{
		UserID:    1,
		StartDate: tsp("2025-05-15"),
		EndDate:   ts("2025-01-15"),
	})
	assert.ErrorIs(t, err, ErrPeriodInvalid)
}

func TestUpdateMembershipOverlapExcludesSelf(t *testing.T) {
	membershipRepo := &fakeMembershipRepo{
		memberships: map[int]*models.Membership{
			7: {ID: 7, UserID: 1, StartDate: ts("2025-01-15"), EndDate: ts("2025-05-15")},
		},
	}
	svc := newMembershipServiceForTest(membershipRepo, nil)

	// No other row overlaps, so shifting the end date succeeds.
	newEnd := ts("2025-06-15")
	updated, err := svc.UpdateMembership(context.Background(), 7, UpdateMembershipInput{EndDate: &newEnd})
	require.NoError(t, err)
	assert.Equal(t, newEnd, updated.EndDate)

	membershipRepo.hasOverlap = true
	_, err = svc.UpdateMembership(context.Background(), 7, UpdateMembershipInput{EndDate: &newEnd})
	assert.ErrorIs(t, err, ErrMembershipOverlap)
}

func TestDeleteMembershipAssignedToTeam(t *testing.T) {
	membershipRepo := &fakeMembershipRepo{
		memberships: map[int]*models.Membership{7: {ID: 7, UserID: 1}},
	}
	svc := newMembershipServiceForTest(membershipRepo, &fakeTeamMembershipRepo{existsByMembership: true})

	_, err := svc.DeleteMembership(context.Background(), 7)
	assert.ErrorIs(t, err, ErrMembershipHasTeamMemberships)

	svc = newMembershipServiceForTest(membershipRepo, nil)
	deleted, err := svc.DeleteMembership(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, membershipRepo.deletedID)
	assert.Equal(t, 7, deleted.ID)
}
