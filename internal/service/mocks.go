package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/gbellini/fantamarket/internal/domain"
	"github.com/gbellini/fantamarket/internal/repository"
)

type MockPlayerRepository struct {
	mock.Mock
}

// WithTx returns the mock itself: transactional tests drive Begin/Commit
// through sqlmock and keep a single set of expectations.
func (m *MockPlayerRepository) WithTx(tx *sql.Tx) repository.PlayerRepository {
	return m
}

func (m *MockPlayerRepository) Create(ctx context.Context, player *domain.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockPlayerRepository) GetByID(ctx context.Context, id int) (*domain.Player, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerRepository) GetByName(ctx context.Context, name string) (*domain.Player, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerRepository) List(ctx context.Context, filter domain.PlayerFilter) ([]domain.Player, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Player), args.Int(1), args.Error(2)
}

func (m *MockPlayerRepository) ListByTeamID(ctx context.Context, teamID int) ([]domain.Player, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Player), args.Error(1)
}

func (m *MockPlayerRepository) Update(ctx context.Context, player *domain.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockPlayerRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlayerRepository) SuggestNames(ctx context.Context, prefix string, limit int) ([]string, error) {
	args := m.Called(ctx, prefix, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPlayerRepository) CountByTeamAndRole(ctx context.Context, teamID int, role domain.Role) (int, error) {
	args := m.Called(ctx, teamID, role)
	return args.Int(0), args.Error(1)
}

func (m *MockPlayerRepository) Assign(ctx context.Context, playerID, teamID int, price float64, contractYears int, option bool) error {
	args := m.Called(ctx, playerID, teamID, price, contractYears, option)
	return args.Error(0)
}

func (m *MockPlayerRepository) Unassign(ctx context.Context, playerID int) error {
	args := m.Called(ctx, playerID)
	return args.Error(0)
}

func (m *MockPlayerRepository) ReleaseAllFromTeam(ctx context.Context, teamID int) (int64, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlayerRepository) Statistics(ctx context.Context) (*domain.MarketStatistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketStatistics), args.Error(1)
}

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) WithTx(tx *sql.Tx) repository.TeamRepository {
	return m
}

func (m *MockTeamRepository) Create(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id int) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) List(ctx context.Context) ([]domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Team), args.Error(1)
}

func (m *MockTeamRepository) ListByLeagueID(ctx context.Context, leagueID int) ([]domain.Team, error) {
	args := m.Called(ctx, leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Team), args.Error(1)
}

func (m *MockTeamRepository) Update(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTeamRepository) DebitCash(ctx context.Context, teamID int, amount float64) error {
	args := m.Called(ctx, teamID, amount)
	return args.Error(0)
}

func (m *MockTeamRepository) CreditCash(ctx context.Context, teamID int, amount float64) error {
	args := m.Called(ctx, teamID, amount)
	return args.Error(0)
}

type MockLeagueRepository struct {
	mock.Mock
}

func (m *MockLeagueRepository) Create(ctx context.Context, league *domain.League) error {
	args := m.Called(ctx, league)
	return args.Error(0)
}

func (m *MockLeagueRepository) GetByID(ctx context.Context, id int) (*domain.League, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.League), args.Error(1)
}

func (m *MockLeagueRepository) GetBySlug(ctx context.Context, slug string) (*domain.League, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.League), args.Error(1)
}

func (m *MockLeagueRepository) List(ctx context.Context) ([]domain.League, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.League), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id int, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetByRefreshTokenHash(ctx context.Context, hash string) (*domain.Session, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) GetByAccessTokenHash(ctx context.Context, hash string) (*domain.Session, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) RotateAccessToken(ctx context.Context, sessionID, accessTokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, sessionID, accessTokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockSessionRepository) Revoke(ctx context.Context, sessionID string, at time.Time) error {
	args := m.Called(ctx, sessionID, at)
	return args.Error(0)
}

func (m *MockSessionRepository) IsAccessTokenRevoked(ctx context.Context, hash string) (bool, error) {
	args := m.Called(ctx, hash)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}
