package services

import (
	"context"
	"testing"

	"github.com/coog-esports/admin-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpponentServiceForTest(opponentRepo *fakeOpponentRepo, matchRepo *fakeMatchRepo) OpponentService {
	if opponentRepo == nil {
		opponentRepo = &fakeOpponentRepo{}
	}
	if matchRepo == nil {
		matchRepo = &fakeMatchRepo{}
	}
	gameRepo := &fakeGameRepo{games: map[int]*models.Game{
		5: {ID: 5, GameName: "Valorant"},
		6: {ID: 6, GameName: "Overwatch"},
	}}
	return NewOpponentService(opponentRepo, gameRepo, matchRepo, nil)
}

func TestCreateOpponentNameUniquePerGame(t *testing.T) {
	opponentRepo := &fakeOpponentRepo{opponents: map[int]*models.Opponent{
		1: {ID: 1, OpponentName: "Rice Owls", GameID: 5},
	}}
	svc := newOpponentServiceForTest(opponentRepo, nil)
	ctx := context.Background()

	_, err := svc.CreateOpponent(ctx, CreateOpponentInput{OpponentName: "Rice Owls", GameID: 5})
	assert.ErrorIs(t, err, ErrOpponentNameConflict)

	// The same name under another game is a different roster entry.
	created, err := svc.CreateOpponent(ctx, CreateOpponentInput{OpponentName: "Rice Owls", GameID: 6})
	require.NoError(t, err)
	assert.Equal(t, 6, created.GameID)
}

func TestCreateOpponentNameRequired(t *testing.T) {
	svc := newOpponentServiceForTest(nil, nil)

	_, err := svc.CreateOpponent(context.Background(), CreateOpponentInput{OpponentName: " ", GameID: 5})
	assert.ErrorIs(t, err, ErrOpponentNameRequired)
}

func TestCreateOpponentGameNotFound(t *testing.T) {
	svc := newOpponentServiceForTest(nil, nil)

	_, err := svc.CreateOpponent(context.Background(), CreateOpponentInput{OpponentName: "Rice Owls", GameID: 99})
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestUpdateOpponentExcludesSelfFromNameCheck(t *testing.T) {
	opponentRepo := &fakeOpponentRepo{opponents: map[int]*models.Opponent{
		1: {ID: 1, OpponentName: "Rice Owls", GameID: 5},
	}}
	svc := newOpponentServiceForTest(opponentRepo, nil)

	school := "Rice University"
	updated, err := svc.UpdateOpponent(context.Background(), 1, UpdateOpponentInput{School: &school})
	require.NoError(t, err)
	assert.Equal(t, "Rice Owls", updated.OpponentName)
	assert.Equal(t, &school, updated.School)
}

func TestDeleteOpponentWithMatches(t *testing.T) {
	opponentRepo := &fakeOpponentRepo{opponents: map[int]*models.Opponent{
		1: {ID: 1, OpponentName: "Rice Owls", GameID: 5},
	}}
	svc := newOpponentServiceForTest(opponentRepo, &fakeMatchRepo{existsByOpponent: true})

	_, err := svc.DeleteOpponent(context.Background(), 1)
	assert.ErrorIs(t, err, ErrOpponentHasMatches)

	svc = newOpponentServiceForTest(opponentRepo, nil)
	deleted, err := svc.DeleteOpponent(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, opponentRepo.deletedID)
	assert.Equal(t, "Rice Owls", deleted.OpponentName)
}
