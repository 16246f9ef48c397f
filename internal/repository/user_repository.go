package repository

import (
	"context"
	"time"

	"github.com/gbellini/fantamarket/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetByUsernameOrEmail resolves a login identifier against both the
	// username and email columns.
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error)

	UpdateLastLogin(ctx context.Context, id int, at time.Time) error
}
