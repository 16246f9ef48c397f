package service

import (
	"context"

	"github.com/gbellini/fantamarket/internal/domain"
)

// AssignPlayerRequest buys a free agent for a team. TeamName is used to
// resolve the team when TeamID is zero (the legacy form posts names).
type AssignPlayerRequest struct {
	PlayerID      int
	TeamID        int
	TeamName      string
	Price         float64
	ContractYears int
	Option        bool
}

// TransferPlayerRequest moves an assigned player between two teams: the
// source is refunded the player's cost, the destination pays Price.
type TransferPlayerRequest struct {
	PlayerID   int
	FromTeamID int
	ToTeamID   int
	Price      float64
}

type MarketService interface {
	AssignPlayer(ctx context.Context, req AssignPlayerRequest) (*domain.AssignmentResult, error)
	ReleasePlayer(ctx context.Context, playerID int) (*domain.Player, error)
	TransferPlayer(ctx context.Context, req TransferPlayerRequest) (*domain.AssignmentResult, error)
	GetTeamSummaries(ctx context.Context) ([]domain.TeamSummary, error)
	GetTeamRoster(ctx context.Context, teamName string) (*domain.TeamRoster, error)
	GetNameSuggestions(ctx context.Context, prefix string) ([]string, error)
	GetMarketStatistics(ctx context.Context) (*domain.MarketStatistics, error)
	SearchPlayers(ctx context.Context, filter domain.PlayerFilter) ([]domain.Player, int, error)
}
