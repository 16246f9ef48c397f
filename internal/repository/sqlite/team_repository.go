package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gbellini/fantamarket/internal/domain"
	"github.com/gbellini/fantamarket/internal/repository"
)

const teamColumns = `
	t.id, t.name, t.cash, t.league_id, l.name, t.created_at, t.updated_at
`

type teamRepository struct {
	q querier
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{q: db}
}

func (r *teamRepository) WithTx(tx *sql.Tx) repository.TeamRepository {
	return &teamRepository{q: tx}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO teams (name, cash, league_id, created_at)
		VALUES (?, ?, ?, ?)
	`

	now := time.Now()
	res, err := r.q.ExecContext(ctx, query, team.Name, team.Cash, team.LeagueID, now)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTeamExists
		}
		return fmt.Errorf("failed to insert team: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read team id: %w", err)
	}
	team.ID = int(id)
	team.CreatedAt = now
	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id int) (*domain.Team, error) {
	query := `
		SELECT ` + teamColumns + `
		FROM teams t
		LEFT JOIN leagues l ON l.id = t.league_id
		WHERE t.id = ?
	`
	return r.getOne(ctx, query, id)
}

func (r *teamRepository) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	query := `
		SELECT ` + teamColumns + `
		FROM teams t
		LEFT JOIN leagues l ON l.id = t.league_id
		WHERE t.name = ? COLLATE NOCASE
	`
	return r.getOne(ctx, query, name)
}

func (r *teamRepository) getOne(ctx context.Context, query string, arg any) (*domain.Team, error) {
	team, err := scanTeam(r.q.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("team")
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

func (r *teamRepository) List(ctx context.Context) ([]domain.Team, error) {
	query := `
		SELECT ` + teamColumns + `
		FROM teams t
		LEFT JOIN leagues l ON l.id = t.league_id
		ORDER BY t.name COLLATE NOCASE
	`
	return r.list(ctx, query)
}

func (r *teamRepository) ListByLeagueID(ctx context.Context, leagueID int) ([]domain.Team, error) {
	query := `
		SELECT ` + teamColumns + `
		FROM teams t
		LEFT JOIN leagues l ON l.id = t.league_id
		WHERE t.league_id = ?
		ORDER BY t.name COLLATE NOCASE
	`
	return r.list(ctx, query, leagueID)
}

func (r *teamRepository) list(ctx context.Context, query string, args ...any) ([]domain.Team, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, *team)
	}
	return teams, rows.Err()
}

func (r *teamRepository) Update(ctx context.Context, team *domain.Team) error {
	query := `
		UPDATE teams
		SET name = ?, cash = ?, league_id = ?, updated_at = ?
		WHERE id = ?
	`

	now := time.Now()
	res, err := r.q.ExecContext(ctx, query, team.Name, team.Cash, team.LeagueID, now, team.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTeamExists
		}
		return fmt.Errorf("failed to update team: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError("team")
	}
	team.UpdatedAt = &now
	return nil
}

func (r *teamRepository) Delete(ctx context.Context, id int) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError("team")
	}
	return nil
}

func (r *teamRepository) DebitCash(ctx context.Context, teamID int, amount float64) error {
	query := `
		UPDATE teams
		SET cash = cash - ?, updated_at = ?
		WHERE id = ? AND cash >= ?
	`

	res, err := r.q.ExecContext(ctx, query, amount, time.Now(), teamID, amount)
	if err != nil {
		return fmt.Errorf("failed to debit team cash: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrInsufficientFunds
	}
	return nil
}

func (r *teamRepository) CreditCash(ctx context.Context, teamID int, amount float64) error {
	query := `
		UPDATE teams
		SET cash = cash + ?, updated_at = ?
		WHERE id = ?
	`

	res, err := r.q.ExecContext(ctx, query, amount, time.Now(), teamID)
	if err != nil {
		return fmt.Errorf("failed to credit team cash: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError("team")
	}
	return nil
}

func scanTeam(row rowScanner) (*domain.Team, error) {
	team := &domain.Team{}
	var leagueID sql.NullInt64
	var leagueName sql.NullString
	var updatedAt sql.NullTime

	err := row.Scan(
		&team.ID,
		&team.Name,
		&team.Cash,
		&leagueID,
		&leagueName,
		&team.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if leagueID.Valid {
		id := int(leagueID.Int64)
		team.LeagueID = &id
	}
	team.LeagueName = leagueName.String
	if updatedAt.Valid {
		team.UpdatedAt = &updatedAt.Time
	}
	return team, nil
}
