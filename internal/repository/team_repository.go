package repository

import (
	"context"
	"database/sql"

	"github.com/gbellini/fantamarket/internal/domain"
)

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id int) (*domain.Team, error)
	GetByName(ctx context.Context, name string) (*domain.Team, error)
	List(ctx context.Context) ([]domain.Team, error)
	ListByLeagueID(ctx context.Context, leagueID int) ([]domain.Team, error)
	Update(ctx context.Context, team *domain.Team) error
	Delete(ctx context.Context, id int) error

	// DebitCash subtracts amount from the team's cash. The UPDATE is
	// guarded by cash >= amount; zero affected rows returns
	// domain.ErrInsufficientFunds.
	DebitCash(ctx context.Context, teamID int, amount float64) error

	CreditCash(ctx context.Context, teamID int, amount float64) error

	WithTx(tx *sql.Tx) TeamRepository
}
