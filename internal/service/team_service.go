package service

import (
	"context"

	"github.com/gbellini/fantamarket/internal/domain"
)

type TeamService interface {
	ListTeams(ctx context.Context) ([]domain.Team, error)
	GetTeam(ctx context.Context, id int) (*domain.Team, error)
	GetTeamByName(ctx context.Context, name string) (*domain.Team, error)
	CreateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error)
	UpdateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error)
	DeleteTeam(ctx context.Context, id int) error
	GetTeamPlayers(ctx context.Context, id int) ([]domain.Player, error)
}
