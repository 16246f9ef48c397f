//go:build integration
// +build integration

package integration

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbellini/fantamarket/internal/domain"
	"github.com/gbellini/fantamarket/internal/service"
)

func TestAssignPlayerLifecycle(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	team := env.createTeam(t, "Gli Invincibili", 0)
	assert.Equal(t, 300.0, team.Cash, "a new team starts with the default budget")

	player := env.createPlayer(t, "Lautaro Martinez", domain.RoleForward, "Inter")

	result, err := env.Market.AssignPlayer(ctx, service.AssignPlayerRequest{
		PlayerID:      player.ID,
		TeamID:        team.ID,
		Price:         30.5,
		ContractYears: 2,
		Option:        true,
	})
	require.NoError(t, err)
	assert.Equal(t, 300.0, result.CashBefore)
	assert.Equal(t, 269.5, result.CashAfter)
	assert.True(t, result.Option)

	// The debit and the claim are both persisted.
	updatedTeam, err := env.Teams.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, 269.5, updatedTeam.Cash)

	updatedPlayer, err := env.Players.GetPlayer(ctx, player.ID)
	require.NoError(t, err)
	require.NotNil(t, updatedPlayer.TeamID)
	assert.Equal(t, team.ID, *updatedPlayer.TeamID)
	assert.Equal(t, 30.5, updatedPlayer.Cost)
	require.NotNil(t, updatedPlayer.ContractYears)
	assert.Equal(t, 2, *updatedPlayer.ContractYears)

	// A second assignment of the same player must fail.
	otherTeam := env.createTeam(t, "AC Fantozzi", 0)
	_, err = env.Market.AssignPlayer(ctx, service.AssignPlayerRequest{
		PlayerID:      player.ID,
		TeamID:        otherTeam.ID,
		Price:         10,
		ContractYears: 1,
	})
	require.ErrorIs(t, err, domain.ErrPlayerAlreadyAssigned)
}

func TestAssignPlayerThreeYearContractDropsOption(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	team := env.createTeam(t, "Gli Invincibili", 0)
	player := env.createPlayer(t, "Nicolo Barella", domain.RoleMidfielder, "Inter")

	result, err := env.Market.AssignPlayer(ctx, service.AssignPlayerRequest{
		PlayerID:      player.ID,
		TeamID:        team.ID,
		Price:         25,
		ContractYears: 3,
		Option:        true,
	})
	require.NoError(t, err)
	assert.False(t, result.Option)

	stored, err := env.Players.GetPlayer(ctx, player.ID)
	require.NoError(t, err)
	assert.False(t, stored.Option)
}

func TestAssignPlayerInsufficientFundsRollsBack(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	team := env.createTeam(t, "Squadra Povera", 10)
	player := env.createPlayer(t, "Mike Maignan", domain.RoleGoalkeeper, "Milan")

	_, err := env.Market.AssignPlayer(ctx, service.AssignPlayerRequest{
		PlayerID:      player.ID,
		TeamID:        team.ID,
		Price:         50,
		ContractYears: 1,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	// Nothing changed: the cash stands and the player is still free.
	unchangedTeam, err := env.Teams.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, unchangedTeam.Cash)

	unchangedPlayer, err := env.Players.GetPlayer(ctx, player.ID)
	require.NoError(t, err)
	assert.Nil(t, unchangedPlayer.TeamID)
	assert.Equal(t, 0.0, unchangedPlayer.Cost)
}

func TestAssignPlayerRosterLimit(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	team := env.createTeam(t, "Gli Invincibili", 0)

	// The goalkeeper slot caps at three.
	for i := 1; i <= 3; i++ {
		keeper := env.createPlayer(t, fmt.Sprintf("Portiere %d", i), domain.RoleGoalkeeper, "Test FC")
		_, err := env.Market.AssignPlayer(ctx, service.AssignPlayerRequest{
			PlayerID:      keeper.ID,
			TeamID:        team.ID,
			Price:         1,
			ContractYears: 1,
		})
		require.NoError(t, err)
	}

	extra := env.createPlayer(t, "Portiere 4", domain.RoleGoalkeeper, "Test FC")
	_, err := env.Market.AssignPlayer(ctx, service.AssignPlayerRequest{
		PlayerID:      extra.ID,
		TeamID:        team.ID,
		Price:         1,
		ContractYears: 1,
	})
	require.ErrorIs(t, err, domain.ErrRosterLimitExceeded)

	roster, err := env.Market.GetTeamRoster(ctx, "Gli Invincibili")
	require.NoError(t, err)
	assert.Len(t, roster.ByRole[domain.RoleGoalkeeper], 3)
}

func TestReleasePlayerRefundsCost(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	team := env.createTeam(t, "Gli Invincibili", 0)
	player := env.createPlayer(t, "Theo Hernandez", domain.RoleDefender, "Milan")

	_, err := env.Market.AssignPlayer(ctx, service.AssignPlayerRequest{
		PlayerID:      player.ID,
		TeamID:        team.ID,
		Price:         40,
		ContractYears: 2,
	})
	require.NoError(t, err)

	released, err := env.Market.ReleasePlayer(ctx, player.ID)
	require.NoError(t, err)
	assert.Nil(t, released.TeamID)
	assert.Equal(t, 0.0, released.Cost)

	refundedTeam, err := env.Teams.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, refundedTeam.Cash)

	// Releasing a free agent is an error.
	_, err = env.Market.ReleasePlayer(ctx, player.ID)
	require.ErrorIs(t, err, domain.ErrPlayerNotAssigned)
}

func TestTransferPlayerBetweenTeams(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	source := env.createTeam(t, "Gli Invincibili", 0)
	dest := env.createTeam(t, "AC Fantozzi", 0)
	player := env.createPlayer(t, "Lautaro Martinez", domain.RoleForward, "Inter")

	_, err := env.Market.AssignPlayer(ctx, service.AssignPlayerRequest{
		PlayerID:      player.ID,
		TeamID:        source.ID,
		Price:         50,
		ContractYears: 2,
	})
	require.NoError(t, err)

	result, err := env.Market.TransferPlayer(ctx, service.TransferPlayerRequest{
		PlayerID:   player.ID,
		FromTeamID: source.ID,
		ToTeamID:   dest.ID,
		Price:      60,
	})
	require.NoError(t, err)
	assert.Equal(t, dest.ID, result.TeamID)
	assert.Equal(t, 2, result.ContractYears, "the transfer keeps the remaining contract")

	// Source refunded the original cost, destination paid the new price.
	sourceAfter, err := env.Teams.GetTeam(ctx, source.ID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, sourceAfter.Cash)

	destAfter, err := env.Teams.GetTeam(ctx, dest.ID)
	require.NoError(t, err)
	assert.Equal(t, 240.0, destAfter.Cash)

	moved, err := env.Players.GetPlayer(ctx, player.ID)
	require.NoError(t, err)
	require.NotNil(t, moved.TeamID)
	assert.Equal(t, dest.ID, *moved.TeamID)
	assert.Equal(t, 60.0, moved.Cost)
}

func TestConcurrentAssignmentsSingleWinner(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	teamA := env.createTeam(t, "Gli Invincibili", 0)
	teamB := env.createTeam(t, "AC Fantozzi", 0)
	player := env.createPlayer(t, "Lautaro Martinez", domain.RoleForward, "Inter")

	results := make([]error, 2)
	var wg sync.WaitGroup
	for i, teamID := range []int{teamA.ID, teamB.ID} {
		wg.Add(1)
		go func(i, teamID int) {
			defer wg.Done()
			_, err := env.Market.AssignPlayer(ctx, service.AssignPlayerRequest{
				PlayerID:      player.ID,
				TeamID:        teamID,
				Price:         30,
				ContractYears: 1,
			})
			results[i] = err
		}(i, teamID)
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, domain.ErrPlayerAlreadyAssigned)
		}
	}
	assert.Equal(t, 1, winners, "exactly one assignment must commit")

	// Only the winning team paid.
	a, err := env.Teams.GetTeam(ctx, teamA.ID)
	require.NoError(t, err)
	b, err := env.Teams.GetTeam(ctx, teamB.ID)
	require.NoError(t, err)
	assert.Equal(t, 570.0, a.Cash+b.Cash)
}

func TestTeamSummariesReflectAssignments(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	team := env.createTeam(t, "Gli Invincibili", 0)
	keeper := env.createPlayer(t, "Mike Maignan", domain.RoleGoalkeeper, "Milan")
	forward := env.createPlayer(t, "Lautaro Martinez", domain.RoleForward, "Inter")

	for _, assignment := range []struct {
		playerID int
		price    float64
	}{
		{keeper.ID, 25.5},
		{forward.ID, 30.0},
	} {
		_, err := env.Market.AssignPlayer(ctx, service.AssignPlayerRequest{
			PlayerID:      assignment.playerID,
			TeamID:        team.ID,
			Price:         assignment.price,
			ContractYears: 1,
		})
		require.NoError(t, err)
	}

	summaries, err := env.Market.GetTeamSummaries(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "Gli Invincibili", s.TeamName)
	assert.Equal(t, 300.0, s.Starting)
	assert.Equal(t, 55.5, s.Spent)
	assert.Equal(t, 244.5, s.Remaining)
	assert.Equal(t, 2, s.Missing[domain.RoleGoalkeeper])
	assert.Equal(t, 8, s.Missing[domain.RoleDefender])
	assert.Equal(t, 8, s.Missing[domain.RoleMidfielder])
	assert.Equal(t, 5, s.Missing[domain.RoleForward])
	assert.Equal(t, 23, s.MissingTotal())
}

func TestNameSuggestions(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	team := env.createTeam(t, "Gli Invincibili", 0)
	barella := env.createPlayer(t, "Barella", domain.RoleMidfielder, "Inter")
	env.createPlayer(t, "Bastoni", domain.RoleDefender, "Inter")
	env.createPlayer(t, "Lautaro Martinez", domain.RoleForward, "Inter")

	suggestions, err := env.Market.GetNameSuggestions(ctx, "ba")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Barella", "Bastoni"}, suggestions)

	// Assigned players drop out of the suggestion pool.
	_, err = env.Market.AssignPlayer(ctx, service.AssignPlayerRequest{
		PlayerID:      barella.ID,
		TeamID:        team.ID,
		Price:         20,
		ContractYears: 1,
	})
	require.NoError(t, err)

	suggestions, err = env.Market.GetNameSuggestions(ctx, "ba")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bastoni"}, suggestions)
}

func TestDeleteTeamFreesRoster(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	team := env.createTeam(t, "Gli Invincibili", 0)
	player := env.createPlayer(t, "Theo Hernandez", domain.RoleDefender, "Milan")

	_, err := env.Market.AssignPlayer(ctx, service.AssignPlayerRequest{
		PlayerID:      player.ID,
		TeamID:        team.ID,
		Price:         35,
		ContractYears: 1,
	})
	require.NoError(t, err)

	require.NoError(t, env.Teams.DeleteTeam(ctx, team.ID))

	freed, err := env.Players.GetPlayer(ctx, player.ID)
	require.NoError(t, err)
	assert.Nil(t, freed.TeamID)
	assert.Equal(t, 0.0, freed.Cost)

	_, err = env.Teams.GetTeam(ctx, team.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
