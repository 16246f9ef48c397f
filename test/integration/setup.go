//go:build integration
// +build integration

package integration

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gbellini/fantamarket/internal/config"
	"github.com/gbellini/fantamarket/internal/db"
	"github.com/gbellini/fantamarket/internal/domain"
	"github.com/gbellini/fantamarket/internal/repository/sqlite"
	"github.com/gbellini/fantamarket/internal/service"
)

// testEnv wires the real SQLite repositories and services against a
// throwaway database file, migrated from scratch for every test.
type testEnv struct {
	Market  service.MarketService
	Teams   service.TeamService
	Players service.PlayerService
	Leagues service.LeagueService
	Auth    service.AuthService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))

	t.Cleanup(func() {
		database.Close()
	})

	marketCfg := config.MarketConfig{
		StartingBudget:  300.0,
		MaxPlayerPrice:  1000.0,
		SuggestionLimit: 8,
		RosterLimits: map[domain.Role]int{
			domain.RoleGoalkeeper: 3,
			domain.RoleDefender:   8,
			domain.RoleMidfielder: 8,
			domain.RoleForward:    6,
		},
	}
	authCfg := config.AuthConfig{
		JWTSecret:       "integration-test-secret",
		AccessTokenTTL:  30 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}

	playerRepo := sqlite.NewPlayerRepository(database)
	teamRepo := sqlite.NewTeamRepository(database)
	leagueRepo := sqlite.NewLeagueRepository(database)
	userRepo := sqlite.NewUserRepository(database)
	sessionRepo := sqlite.NewSessionRepository(database)

	return &testEnv{
		Market:  service.NewMarketService(database, playerRepo, teamRepo, marketCfg),
		Teams:   service.NewTeamService(database, teamRepo, playerRepo, marketCfg),
		Players: service.NewPlayerService(playerRepo, marketCfg),
		Leagues: service.NewLeagueService(leagueRepo, teamRepo),
		Auth:    service.NewAuthService(userRepo, sessionRepo, authCfg),
	}
}

func (e *testEnv) createTeam(t *testing.T, name string, cash float64) *domain.Team {
	t.Helper()
	team, err := e.Teams.CreateTeam(context.Background(), &domain.Team{Name: name, Cash: cash})
	require.NoError(t, err)
	return team
}

func (e *testEnv) createPlayer(t *testing.T, name string, role domain.Role, realTeam string) *domain.Player {
	t.Helper()
	player, err := e.Players.CreatePlayer(context.Background(), &domain.Player{
		Name:     name,
		Role:     role,
		RealTeam: realTeam,
	})
	require.NoError(t, err)
	return player
}
