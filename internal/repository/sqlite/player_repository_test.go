package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbellini/fantamarket/internal/domain"
)

func setupPlayerRepo(t *testing.T) (*playerRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewPlayerRepository(db), mock
}

func playerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "role", "cost", "contract_years", "option_flag",
		"real_team", "team_id", "team_name", "is_injured", "created_at", "updated_at",
	})
}

func TestPlayerRepository_GetByName(t *testing.T) {
	t.Run("returns a free agent", func(t *testing.T) {
		repo, mock := setupPlayerRepo(t)

		createdAt := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
		rows := playerRows().
			AddRow(7, "Lautaro Martinez", "A", 0.0, nil, false, "Inter", nil, nil, false, createdAt, nil)
		mock.ExpectQuery("SELECT").
			WithArgs("Lautaro Martinez").
			WillReturnRows(rows)

		player, err := repo.GetByName(context.Background(), "Lautaro Martinez")

		require.NoError(t, err)
		assert.Equal(t, 7, player.ID)
		assert.Equal(t, domain.RoleForward, player.Role)
		assert.True(t, player.IsFreeAgent())
		assert.Nil(t, player.ContractYears)
		assert.Equal(t, "Inter", player.RealTeam)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns an assigned player with team name", func(t *testing.T) {
		repo, mock := setupPlayerRepo(t)

		createdAt := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
		years := 2
		rows := playerRows().
			AddRow(3, "Mike Maignan", "P", 25.5, years, true, "Milan", 4, "Gli Invincibili", false, createdAt, createdAt)
		mock.ExpectQuery("SELECT").
			WithArgs("Mike Maignan").
			WillReturnRows(rows)

		player, err := repo.GetByName(context.Background(), "Mike Maignan")

		require.NoError(t, err)
		assert.False(t, player.IsFreeAgent())
		assert.Equal(t, 4, *player.TeamID)
		assert.Equal(t, "Gli Invincibili", player.TeamName)
		assert.Equal(t, 2, *player.ContractYears)
		assert.True(t, player.Option)
		assert.NotNil(t, player.UpdatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := setupPlayerRepo(t)

		mock.ExpectQuery("SELECT").
			WithArgs("Nobody").
			WillReturnError(sql.ErrNoRows)

		player, err := repo.GetByName(context.Background(), "Nobody")

		require.Error(t, err)
		assert.Nil(t, player)
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPlayerRepository_Assign(t *testing.T) {
	t.Run("claims a free agent", func(t *testing.T) {
		repo, mock := setupPlayerRepo(t)

		mock.ExpectExec("UPDATE players").
			WithArgs(4, 30.0, 2, true, sqlmock.AnyArg(), 7).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Assign(context.Background(), 7, 4, 30.0, 2, true)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("guard fails when the player is already taken", func(t *testing.T) {
		repo, mock := setupPlayerRepo(t)

		mock.ExpectExec("UPDATE players").
			WithArgs(4, 30.0, 2, true, sqlmock.AnyArg(), 7).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Assign(context.Background(), 7, 4, 30.0, 2, true)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrPlayerAlreadyAssigned))

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPlayerRepository_Unassign(t *testing.T) {
	t.Run("clears team, cost and contract", func(t *testing.T) {
		repo, mock := setupPlayerRepo(t)

		mock.ExpectExec("UPDATE players").
			WithArgs(sqlmock.AnyArg(), 7).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Unassign(context.Background(), 7)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("guard fails for a free agent", func(t *testing.T) {
		repo, mock := setupPlayerRepo(t)

		mock.ExpectExec("UPDATE players").
			WithArgs(sqlmock.AnyArg(), 7).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Unassign(context.Background(), 7)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrPlayerNotAssigned))

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPlayerRepository_SuggestNames(t *testing.T) {
	t.Run("returns matching free-agent names", func(t *testing.T) {
		repo, mock := setupPlayerRepo(t)

		rows := sqlmock.NewRows([]string{"name"}).
			AddRow("Barella").
			AddRow("Bastoni")
		mock.ExpectQuery("SELECT name").
			WithArgs("ba%", 8).
			WillReturnRows(rows)

		names, err := repo.SuggestNames(context.Background(), "ba", 8)

		require.NoError(t, err)
		assert.Equal(t, []string{"Barella", "Bastoni"}, names)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no matches", func(t *testing.T) {
		repo, mock := setupPlayerRepo(t)

		mock.ExpectQuery("SELECT name").
			WithArgs("zz%", 8).
			WillReturnRows(sqlmock.NewRows([]string{"name"}))

		names, err := repo.SuggestNames(context.Background(), "zz", 8)

		require.NoError(t, err)
		assert.Empty(t, names)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPlayerRepository_CountByTeamAndRole(t *testing.T) {
	repo, mock := setupPlayerRepo(t)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(4, "D").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountByTeamAndRole(context.Background(), 4, domain.RoleDefender)

	require.NoError(t, err)
	assert.Equal(t, 5, count)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerRepository_List(t *testing.T) {
	t.Run("filters free agents by role with pagination", func(t *testing.T) {
		repo, mock := setupPlayerRepo(t)

		mock.ExpectQuery("SELECT COUNT").
			WithArgs("A").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

		createdAt := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
		rows := playerRows().
			AddRow(1, "Dybala", "A", 0.0, nil, false, "Roma", nil, nil, false, createdAt, nil).
			AddRow(2, "Kean", "A", 0.0, nil, false, "Fiorentina", nil, nil, true, createdAt, nil)
		mock.ExpectQuery("SELECT").
			WithArgs("A", 20, 0).
			WillReturnRows(rows)

		players, total, err := repo.List(context.Background(), domain.PlayerFilter{
			Roles:          []domain.Role{domain.RoleForward},
			FreeAgentsOnly: true,
			Limit:          20,
		})

		require.NoError(t, err)
		assert.Equal(t, 42, total)
		require.Len(t, players, 2)
		assert.Equal(t, "Dybala", players[0].Name)
		assert.True(t, players[1].IsInjured)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPlayerRepository_Statistics(t *testing.T) {
	repo, mock := setupPlayerRepo(t)

	rows := sqlmock.NewRows([]string{"role", "total", "free", "value"}).
		AddRow("P", 60, 40, 200.0).
		AddRow("D", 180, 100, 400.0).
		AddRow("C", 180, 120, 300.0).
		AddRow("A", 120, 90, 600.0)
	mock.ExpectQuery("SELECT role").
		WillReturnRows(rows)

	stats, err := repo.Statistics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 540, stats.TotalPlayers)
	assert.Equal(t, 350, stats.FreeAgents)
	assert.Equal(t, 190, stats.AssignedPlayers)
	assert.InDelta(t, 1500.0, stats.TotalMarketValue, 0.001)
	assert.InDelta(t, 1500.0/190.0, stats.AveragePlayerCost, 0.001)

	forwards := stats.RoleDistribution[domain.RoleForward]
	assert.Equal(t, 30, forwards.Assigned)
	assert.InDelta(t, 20.0, forwards.AverageCost, 0.001)

	assert.NoError(t, mock.ExpectationsWereMet())
}
