package repository

import (
	"context"
	"database/sql"

	"github.com/gbellini/fantamarket/internal/domain"
)

type PlayerRepository interface {
	Create(ctx context.Context, player *domain.Player) error
	GetByID(ctx context.Context, id int) (*domain.Player, error)
	GetByName(ctx context.Context, name string) (*domain.Player, error)
	List(ctx context.Context, filter domain.PlayerFilter) ([]domain.Player, int, error)
	ListByTeamID(ctx context.Context, teamID int) ([]domain.Player, error)
	Update(ctx context.Context, player *domain.Player) error
	Delete(ctx context.Context, id int) error

	// SuggestNames returns free-agent names matching the prefix
	// (case-insensitive), alphabetically, at most limit entries.
	SuggestNames(ctx context.Context, prefix string, limit int) ([]string, error)

	CountByTeamAndRole(ctx context.Context, teamID int, role domain.Role) (int, error)

	// Assign claims a free agent for a team. The UPDATE is guarded by
	// team_id IS NULL; zero affected rows means somebody got there first
	// and the call returns domain.ErrPlayerAlreadyAssigned.
	Assign(ctx context.Context, playerID, teamID int, price float64, contractYears int, option bool) error

	// Unassign clears the player's team, cost and contract. Guarded by
	// team_id IS NOT NULL; zero affected rows returns
	// domain.ErrPlayerNotAssigned.
	Unassign(ctx context.Context, playerID int) error

	// ReleaseAllFromTeam frees every player the team holds. Used before a
	// team is deleted so no roster rows keep pointing at it.
	ReleaseAllFromTeam(ctx context.Context, teamID int) (int64, error)

	Statistics(ctx context.Context) (*domain.MarketStatistics, error)

	// WithTx returns a copy of the repository bound to tx, so a service
	// can run several repository calls in one transaction.
	WithTx(tx *sql.Tx) PlayerRepository
}
