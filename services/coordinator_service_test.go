package services

import (
	"context"
	"testing"

	"github.com/coog-esports/admin-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCoordinatorServiceForTest(coordinatorRepo *fakeCoordinatorRepo, teamRepo *fakeTeamRepo) CoordinatorService {
	if coordinatorRepo == nil {
		coordinatorRepo = &fakeCoordinatorRepo{}
	}
	if teamRepo == nil {
		teamRepo = &fakeTeamRepo{}
	}
	userRepo := &fakeUserRepo{users: map[int]*models.User{1: {ID: 1, Email: "sam@uh.edu"}}}
	gameRepo := &fakeGameRepo{games: map[int]*models.Game{
		10: {ID: 10, GameName: "Valorant"},
		11: {ID: 11, GameName: "Overwatch"},
	}}
	return NewCoordinatorService(coordinatorRepo, userRepo, gameRepo, teamRepo)
}

func TestCreateCoordinatorOverlappingPeriod(t *testing.T) {
	coordinatorRepo := &fakeCoordinatorRepo{coordinators: map[int]*models.Coordinator{
		1: {ID: 1, UserID: 1, GameID: 10, StartDate: ts("2024-01-01"), EndDate: tsp("2024-06-01")},
	}}
	svc := newCoordinatorServiceForTest(coordinatorRepo, nil)
	ctx := context.Background()

	_, err := svc.CreateCoordinator(ctx, CreateCoordinatorInput{
		UserID:    1,
		GameID:    10,
		StartDate: ts("2024-03-01"),
		EndDate:   tsp("2024-09-01"),
	})
	assert.ErrorIs(t, err, ErrCoordinatorOverlap)

	// The group key is (user, game): the same period under another game
	// is allowed.
	created, err := svc.CreateCoordinator(ctx, CreateCoordinatorInput{
		UserID:    1,
		GameID:    11,
		StartDate: ts("2024-03-01"),
		EndDate:   tsp("2024-09-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, 11, created.GameID)
}

func TestUpdateCoordinatorExcludesSelf(t *testing.T) {
	coordinatorRepo := &fakeCoordinatorRepo{coordinators: map[int]*models.Coordinator{
		1: {ID: 1, UserID: 1, GameID: 10, StartDate: ts("2024-01-01"), EndDate: tsp("2024-06-01")},
	}}
	svc := newCoordinatorServiceForTest(coordinatorRepo, nil)

	newEnd := tsp("2024-08-01")
	updated, err := svc.UpdateCoordinator(context.Background(), 1, UpdateCoordinatorInput{EndDate: newEnd})
	require.NoError(t, err)
	assert.Equal(t, newEnd, updated.EndDate)
	require.NotNil(t, coordinatorRepo.updated)
}

func TestDeleteCoordinatorWithTeams(t *testing.T) {
	coordinatorRepo := &fakeCoordinatorRepo{coordinators: map[int]*models.Coordinator{
		1: {ID: 1, UserID: 1, GameID: 10, StartDate: ts("2024-01-01")},
	}}
	svc := newCoordinatorServiceForTest(coordinatorRepo, &fakeTeamRepo{existsByCoordinator: true})

	_, err := svc.DeleteCoordinator(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCoordinatorHasTeams)
}
