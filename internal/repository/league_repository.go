package repository

import (
	"context"

	"github.com/gbellini/fantamarket/internal/domain"
)

type LeagueRepository interface {
	Create(ctx context.Context, league *domain.League) error
	GetByID(ctx context.Context, id int) (*domain.League, error)
	GetBySlug(ctx context.Context, slug string) (*domain.League, error)
	List(ctx context.Context) ([]domain.League, error)
}
