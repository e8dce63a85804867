package services

import (
	"context"
	"testing"

	"github.com/coog-esports/admin-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatchServiceForTest(matchRepo *fakeMatchRepo) MatchService {
	if matchRepo == nil {
		matchRepo = &fakeMatchRepo{matches: map[int]*models.Match{}}
	}
	teamRepo := &fakeTeamRepo{teams: map[int]*models.Team{
		1: {ID: 1, TeamName: "Valorant Red", GameID: 10},
	}}
	opponentRepo := &fakeOpponentRepo{opponents: map[int]*models.Opponent{
		2: {ID: 2, OpponentName: "Rice Owls", GameID: 10},
		3: {ID: 3, OpponentName: "A&M Maroon", GameID: 20},
	}}
	gameRepo := &fakeGameRepo{games: map[int]*models.Game{
		10: {ID: 10, GameName: "Valorant"},
		20: {ID: 20, GameName: "Overwatch"},
	}}
	return NewMatchService(matchRepo, teamRepo, opponentRepo, gameRepo)
}

func TestCreateMatchTeamGameMismatch(t *testing.T) {
	svc := newMatchServiceForTest(nil)

	_, err := svc.CreateMatch(context.Background(), CreateMatchInput{
		DateTime:   ts("2025-10-01"),
		TeamID:     1,
		OpponentID: 3,
		GameID:     20,
	})
	assert.ErrorIs(t, err, ErrMatchTeamGameMismatch)
}

func TestCreateMatchOpponentGameMismatch(t *testing.T) {
	svc := newMatchServiceForTest(nil)

	_, err := svc.CreateMatch(context.Background(), CreateMatchInput{
		DateTime:   ts("2025-10-01"),
		TeamID:     1,
		OpponentID: 3,
		GameID:     10,
	})
	assert.ErrorIs(t, err, ErrMatchOpponentGameMismatch)
}

func TestCreateMatchMissingReferences(t *testing.T) {
	svc := newMatchServiceForTest(nil)
	ctx := context.Background()

	_, err := svc.CreateMatch(ctx, CreateMatchInput{DateTime: ts("2025-10-01"), TeamID: 99, OpponentID: 2, GameID: 10})
	assert.ErrorIs(t, err, ErrTeamNotFound)

	_, err = svc.CreateMatch(ctx, CreateMatchInput{DateTime: ts("2025-10-01"), TeamID: 1, OpponentID: 99, GameID: 10})
	assert.ErrorIs(t, err, ErrOpponentNotFound)

	_, err = svc.CreateMatch(ctx, CreateMatchInput{DateTime: ts("2025-10-01"), TeamID: 1, OpponentID: 2, GameID: 99})
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestCreateMatchSuccess(t *testing.T) {
	matchRepo := &fakeMatchRepo{matches: map[int]*models.Match{}}
	svc := newMatchServiceForTest(matchRepo)

	match, err := svc.CreateMatch(context.Background(), CreateMatchInput{
		DateTime:   ts("2025-10-01"),
		TeamID:     1,
		OpponentID: 2,
		GameID:     10,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, match.GameID)
	require.NotNil(t, matchRepo.created)
}

func TestUpdateMatchRevalidatesParticipants(t *testing.T) {
	matchRepo := &fakeMatchRepo{matches: map[int]*models.Match{
		5: {ID: 5, DateTime: ts("2025-10-01"), TeamID: 1, OpponentID: 2, GameID: 10},
	}}
	svc := newMatchServiceForTest(matchRepo)

	// Switching only the game leaves both participants on the wrong game.
	newGame := 20
	_, err := svc.UpdateMatch(context.Background(), 5, UpdateMatchInput{GameID: &newGame})
	assert.ErrorIs(t, err, ErrMatchTeamGameMismatch)
}
