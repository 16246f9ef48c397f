package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gbellini/fantamarket/internal/domain"
)

type leagueRepository struct {
	q querier
}

func NewLeagueRepository(db *sql.DB) *leagueRepository {
	return &leagueRepository{q: db}
}

func (r *leagueRepository) Create(ctx context.Context, league *domain.League) error {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO leagues (slug, name) VALUES (?, ?)`,
		league.Slug, league.Name,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewValidationError("league slug already exists")
		}
		return fmt.Errorf("failed to insert league: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read league id: %w", err)
	}
	league.ID = int(id)
	return nil
}

func (r *leagueRepository) GetByID(ctx context.Context, id int) (*domain.League, error) {
	return r.getOne(ctx, `SELECT id, slug, name FROM leagues WHERE id = ?`, id)
}

func (r *leagueRepository) GetBySlug(ctx context.Context, slug string) (*domain.League, error) {
	return r.getOne(ctx, `SELECT id, slug, name FROM leagues WHERE slug = ?`, slug)
}

func (r *leagueRepository) getOne(ctx context.Context, query string, arg any) (*domain.League, error) {
	league := &domain.League{}
	err := r.q.QueryRowContext(ctx, query, arg).Scan(&league.ID, &league.Slug, &league.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("league")
		}
		return nil, fmt.Errorf("failed to get league: %w", err)
	}
	return league, nil
}

func (r *leagueRepository) List(ctx context.Context) ([]domain.League, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id, slug, name FROM leagues ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}
	defer rows.Close()

	var leagues []domain.League
	for rows.Next() {
		var league domain.League
		if err := rows.Scan(&league.ID, &league.Slug, &league.Name); err != nil {
			return nil, fmt.Errorf("failed to scan league: %w", err)
		}
		leagues = append(leagues, league)
	}
	return leagues, rows.Err()
}
