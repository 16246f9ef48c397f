package service

import (
	"context"

	"github.com/gbellini/fantamarket/internal/domain"
)

type PlayerService interface {
	GetPlayer(ctx context.Context, id int) (*domain.Player, error)
	CreatePlayer(ctx context.Context, player *domain.Player) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, player *domain.Player) (*domain.Player, error)
	DeletePlayer(ctx context.Context, id int) error
}
