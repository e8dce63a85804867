package services

import (
	"context"
	"testing"

	"github.com/coog-esports/admin-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTeamMembershipServiceForTest(teamMembershipRepo *fakeTeamMembershipRepo) TeamMembershipService {
	if teamMembershipRepo == nil {
		teamMembershipRepo = &fakeTeamMembershipRepo{}
	}
	teamRepo := &fakeTeamRepo{teams: map[int]*models.Team{1: {ID: 1, TeamName: "Valorant Red", GameID: 10}}}
	membershipRepo := &fakeMembershipRepo{memberships: map[int]*models.Membership{
		7: {ID: 7, UserID: 1, StartDate: ts("2025-01-01"), EndDate: ts("2025-12-31")},
	}}
	return NewTeamMembershipService(teamMembershipRepo, teamRepo, membershipRepo)
}

func TestCreateTeamMembershipDuplicatePair(t *testing.T) {
	svc := newTeamMembershipServiceForTest(&fakeTeamMembershipRepo{exists: true})

	_, err := svc.CreateTeamMembership(context.Background(), CreateTeamMembershipInput{
		TeamID:       1,
		MembershipID: 7,
		StartDate:    ts("2025-02-01"),
	})
	assert.ErrorIs(t, err, ErrTeamMembershipConflict)
}

func TestCreateTeamMembershipSamePairDisjointPeriod(t *testing.T) {
	svc := newTeamMembershipServiceForTest(&fakeTeamMembershipRepo{exists: true})

	// A period that does not touch the existing stint is still rejected:
	// the composite key holds one row per pair, so the duplicate check is
	// what enforces the no-overlap rule.
	_, err := svc.CreateTeamMembership(context.Background(), CreateTeamMembershipInput{
		TeamID:       1,
		MembershipID: 7,
		StartDate:    ts("2026-01-01"),
	})
	assert.ErrorIs(t, err, ErrTeamMembershipConflict)
}

func TestCreateTeamMembershipMissingReferences(t *testing.T) {
	svc := newTeamMembershipServiceForTest(nil)
	ctx := context.Background()

	_, err := svc.CreateTeamMembership(ctx, CreateTeamMembershipInput{TeamID: 99, MembershipID: 7, StartDate: ts("2025-02-01")})
	assert.ErrorIs(t, err, ErrTeamNotFound)

	_, err = svc.CreateTeamMembership(ctx, CreateTeamMembershipInput{TeamID: 1, MembershipID: 99, StartDate: ts("2025-02-01")})
	assert.ErrorIs(t, err, ErrMembershipNotFound)
}

func TestCreateTeamMembershipOpenEnded(t *testing.T) {
	teamMembershipRepo := &fakeTeamMembershipRepo{}
	svc := newTeamMembershipServiceForTest(teamMembershipRepo)

	created, err := svc.CreateTeamMembership(context.Background(), CreateTeamMembershipInput{
		TeamID:       1,
		MembershipID: 7,
		StartDate:    ts("2025-02-01"),
	})
	require.NoError(t, err)
	assert.Nil(t, created.EndDate)
	require.NotNil(t, teamMembershipRepo.created)
}

func TestCreateTeamMembershipInvalidPeriod(t *testing.T) {
	svc := newTeamMembershipServiceForTest(nil)

	_, err := svc.CreateTeamMembership(context.Background(), CreateTeamMembershipInput{
		TeamID:       1,
		MembershipID: 7,
		StartDate:    ts("2025-06-01"),
		EndDate:      tsp("2025-02-01"),
	})
	assert.ErrorIs(t, err, ErrPeriodInvalid)
}
