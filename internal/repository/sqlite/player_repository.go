package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gbellini/fantamarket/internal/domain"
	"github.com/gbellini/fantamarket/internal/repository"
)

const playerColumns = `
	p.id, p.name, p.role, p.cost, p.contract_years, p.option_flag,
	p.real_team, p.team_id, t.name, p.is_injured, p.created_at, p.updated_at
`

type playerRepository struct {
	q querier
}

func NewPlayerRepository(db *sql.DB) *playerRepository {
	return &playerRepository{q: db}
}

func (r *playerRepository) WithTx(tx *sql.Tx) repository.PlayerRepository {
	return &playerRepository{q: tx}
}

func (r *playerRepository) Create(ctx context.Context, player *domain.Player) error {
	query := `
		INSERT INTO players (name, role, cost, contract_years, option_flag, real_team, team_id, is_injured, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now()
	res, err := r.q.ExecContext(ctx, query,
		player.Name,
		string(player.Role),
		player.Cost,
		player.ContractYears,
		player.Option,
		nullString(player.RealTeam),
		player.TeamID,
		player.IsInjured,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read player id: %w", err)
	}
	player.ID = int(id)
	player.CreatedAt = now
	return nil
}

func (r *playerRepository) GetByID(ctx context.Context, id int) (*domain.Player, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM players p
		LEFT JOIN teams t ON t.id = p.team_id
		WHERE p.id = ?
	`
	return r.getOne(ctx, query, id)
}

func (r *playerRepository) GetByName(ctx context.Context, name string) (*domain.Player, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM players p
		LEFT JOIN teams t ON t.id = p.team_id
		WHERE p.name = ? COLLATE NOCASE
	`
	return r.getOne(ctx, query, name)
}

func (r *playerRepository) getOne(ctx context.Context, query string, arg any) (*domain.Player, error) {
	player, err := scanPlayer(r.q.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("player")
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

func (r *playerRepository) List(ctx context.Context, filter domain.PlayerFilter) ([]domain.Player, int, error) {
	where, args := buildPlayerFilter(filter)

	countQuery := `SELECT COUNT(*) FROM players p` + where
	var total int
	if err := r.q.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count players: %w", err)
	}

	query := `
		SELECT ` + playerColumns + `
		FROM players p
		LEFT JOIN teams t ON t.id = p.team_id
	` + where + `
		ORDER BY p.name COLLATE NOCASE
	`
	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	players, err := collectPlayers(rows)
	if err != nil {
		return nil, 0, err
	}
	return players, total, nil
}

func buildPlayerFilter(filter domain.PlayerFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.Query != "" {
		conds = append(conds, `p.name LIKE ? ESCAPE '\' COLLATE NOCASE`)
		args = append(args, escapeLike(filter.Query)+"%")
	}
	if len(filter.Roles) > 0 {
		placeholders := make([]string, len(filter.Roles))
		for i, role := range filter.Roles {
			placeholders[i] = "?"
			args = append(args, string(role))
		}
		conds = append(conds, "p.role IN ("+strings.Join(placeholders, ", ")+")")
	}
	if filter.RealTeam != "" {
		conds = append(conds, "p.real_team = ? COLLATE NOCASE")
		args = append(args, filter.RealTeam)
	}
	if filter.MinCost != nil {
		conds = append(conds, "p.cost >= ?")
		args = append(args, *filter.MinCost)
	}
	if filter.MaxCost != nil {
		conds = append(conds, "p.cost <= ?")
		args = append(args, *filter.MaxCost)
	}
	if filter.FreeAgentsOnly {
		conds = append(conds, "p.team_id IS NULL")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *playerRepository) ListByTeamID(ctx context.Context, teamID int) ([]domain.Player, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM players p
		LEFT JOIN teams t ON t.id = p.team_id
		WHERE p.team_id = ?
		ORDER BY p.role, p.name COLLATE NOCASE
	`

	rows, err := r.q.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team players: %w", err)
	}
	defer rows.Close()

	return collectPlayers(rows)
}

func (r *playerRepository) Update(ctx context.Context, player *domain.Player) error {
	query := `
		UPDATE players
		SET name = ?, role = ?, cost = ?, contract_years = ?, option_flag = ?,
		    real_team = ?, is_injured = ?, updated_at = ?
		WHERE id = ?
	`

	now := time.Now()
	res, err := r.q.ExecContext(ctx, query,
		player.Name,
		string(player.Role),
		player.Cost,
		player.ContractYears,
		player.Option,
		nullString(player.RealTeam),
		player.IsInjured,
		now,
		player.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError("player")
	}
	player.UpdatedAt = &now
	return nil
}

func (r *playerRepository) Delete(ctx context.Context, id int) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError("player")
	}
	return nil
}

func (r *playerRepository) SuggestNames(ctx context.Context, prefix string, limit int) ([]string, error) {
	query := `
		SELECT name
		FROM players
		WHERE team_id IS NULL AND name LIKE ? ESCAPE '\' COLLATE NOCASE
		ORDER BY name COLLATE NOCASE
		LIMIT ?
	`

	rows, err := r.q.QueryContext(ctx, query, escapeLike(prefix)+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query suggestions: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan suggestion: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *playerRepository) CountByTeamAndRole(ctx context.Context, teamID int, role domain.Role) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM players WHERE team_id = ? AND role = ?`,
		teamID, string(role),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count roster role: %w", err)
	}
	return count, nil
}

func (r *playerRepository) Assign(ctx context.Context, playerID, teamID int, price float64, contractYears int, option bool) error {
	query := `
		UPDATE players
		SET team_id = ?, cost = ?, contract_years = ?, option_flag = ?, updated_at = ?
		WHERE id = ? AND team_id IS NULL
	`

	res, err := r.q.ExecContext(ctx, query, teamID, price, contractYears, option, time.Now(), playerID)
	if err != nil {
		return fmt.Errorf("failed to assign player: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrPlayerAlreadyAssigned
	}
	return nil
}

func (r *playerRepository) Unassign(ctx context.Context, playerID int) error {
	query := `
		UPDATE players
		SET team_id = NULL, cost = 0, contract_years = NULL, option_flag = 0, updated_at = ?
		WHERE id = ? AND team_id IS NOT NULL
	`

	res, err := r.q.ExecContext(ctx, query, time.Now(), playerID)
	if err != nil {
		return fmt.Errorf("failed to unassign player: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrPlayerNotAssigned
	}
	return nil
}

func (r *playerRepository) ReleaseAllFromTeam(ctx context.Context, teamID int) (int64, error) {
	query := `
		UPDATE players
		SET team_id = NULL, cost = 0, contract_years = NULL, option_flag = 0, updated_at = ?
		WHERE team_id = ?
	`

	res, err := r.q.ExecContext(ctx, query, time.Now(), teamID)
	if err != nil {
		return 0, fmt.Errorf("failed to release team players: %w", err)
	}
	return res.RowsAffected()
}

func (r *playerRepository) Statistics(ctx context.Context) (*domain.MarketStatistics, error) {
	query := `
		SELECT role,
		       COUNT(*),
		       SUM(CASE WHEN team_id IS NULL THEN 1 ELSE 0 END),
		       COALESCE(SUM(CASE WHEN team_id IS NOT NULL THEN cost ELSE 0 END), 0)
		FROM players
		GROUP BY role
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query market statistics: %w", err)
	}
	defer rows.Close()

	stats := &domain.MarketStatistics{
		RoleDistribution: make(map[domain.Role]domain.RoleStats),
	}
	for rows.Next() {
		var role string
		var total, free int
		var value float64
		if err := rows.Scan(&role, &total, &free, &value); err != nil {
			return nil, fmt.Errorf("failed to scan role statistics: %w", err)
		}

		rs := domain.RoleStats{
			Total:      total,
			FreeAgents: free,
			Assigned:   total - free,
			TotalValue: value,
		}
		if rs.Assigned > 0 {
			rs.AverageCost = value / float64(rs.Assigned)
		}
		stats.RoleDistribution[domain.Role(role)] = rs

		stats.TotalPlayers += total
		stats.FreeAgents += free
		stats.AssignedPlayers += rs.Assigned
		stats.TotalMarketValue += value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if stats.AssignedPlayers > 0 {
		stats.AveragePlayerCost = stats.TotalMarketValue / float64(stats.AssignedPlayers)
	}
	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (*domain.Player, error) {
	player := &domain.Player{}
	var contractYears sql.NullInt64
	var realTeam, teamName sql.NullString
	var teamID sql.NullInt64
	var updatedAt sql.NullTime
	var role string

	err := row.Scan(
		&player.ID,
		&player.Name,
		&role,
		&player.Cost,
		&contractYears,
		&player.Option,
		&realTeam,
		&teamID,
		&teamName,
		&player.IsInjured,
		&player.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	player.Role = domain.Role(role)
	if contractYears.Valid {
		years := int(contractYears.Int64)
		player.ContractYears = &years
	}
	player.RealTeam = realTeam.String
	if teamID.Valid {
		id := int(teamID.Int64)
		player.TeamID = &id
	}
	player.TeamName = teamName.String
	if updatedAt.Valid {
		player.UpdatedAt = &updatedAt.Time
	}
	return player, nil
}

func collectPlayers(rows *sql.Rows) ([]domain.Player, error) {
	var players []domain.Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, *player)
	}
	return players, rows.Err()
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
