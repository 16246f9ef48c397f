package service

import (
	"context"

	"github.com/gbellini/fantamarket/internal/domain"
)

// LeagueWithTeams is a league and its member teams.
type LeagueWithTeams struct {
	League domain.League
	Teams  []domain.Team
}

type LeagueService interface {
	ListLeagues(ctx context.Context) ([]domain.League, error)
	GetLeague(ctx context.Context, id int) (*LeagueWithTeams, error)
}
