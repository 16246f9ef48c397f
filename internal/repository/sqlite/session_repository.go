package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gbellini/fantamarket/internal/domain"
)

const sessionColumns = `
	id, user_id, access_token_hash, refresh_token_hash,
	expires_at, refresh_expires_at, revoked_at, ip_address, user_agent, created_at
`

type sessionRepository struct {
	q querier
}

func NewSessionRepository(db *sql.DB) *sessionRepository {
	return &sessionRepository{q: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	query := `
		INSERT INTO sessions (id, user_id, access_token_hash, refresh_token_hash,
			expires_at, refresh_expires_at, ip_address, user_agent, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now()
	_, err := r.q.ExecContext(ctx, query,
		session.ID,
		session.UserID,
		session.AccessTokenHash,
		session.RefreshTokenHash,
		session.ExpiresAt,
		session.RefreshExpiresAt,
		nullString(session.IPAddress),
		nullString(session.UserAgent),
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	session.CreatedAt = now
	return nil
}

func (r *sessionRepository) GetByRefreshTokenHash(ctx context.Context, hash string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE refresh_token_hash = ?`
	return r.getOne(ctx, query, hash)
}

func (r *sessionRepository) GetByAccessTokenHash(ctx context.Context, hash string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE access_token_hash = ?`
	return r.getOne(ctx, query, hash)
}

func (r *sessionRepository) getOne(ctx context.Context, query string, arg any) (*domain.Session, error) {
	session := &domain.Session{}
	var revokedAt sql.NullTime
	var ip, agent sql.NullString

	err := r.q.QueryRowContext(ctx, query, arg).Scan(
		&session.ID,
		&session.UserID,
		&session.AccessTokenHash,
		&session.RefreshTokenHash,
		&session.ExpiresAt,
		&session.RefreshExpiresAt,
		&revokedAt,
		&ip,
		&agent,
		&session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("session")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if revokedAt.Valid {
		session.RevokedAt = &revokedAt.Time
	}
	session.IPAddress = ip.String
	session.UserAgent = agent.String
	return session, nil
}

func (r *sessionRepository) RotateAccessToken(ctx context.Context, sessionID, accessTokenHash string, expiresAt time.Time) error {
	query := `
		UPDATE sessions
		SET access_token_hash = ?, expires_at = ?
		WHERE id = ? AND revoked_at IS NULL
	`

	res, err := r.q.ExecContext(ctx, query, accessTokenHash, expiresAt, sessionID)
	if err != nil {
		return fmt.Errorf("failed to rotate access token: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrTokenRevoked
	}
	return nil
}

func (r *sessionRepository) Revoke(ctx context.Context, sessionID string, at time.Time) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE sessions SET revoked_at = ? WHERE id = ? AND revoked_at IS NULL`,
		at, sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError("session")
	}
	return nil
}

func (r *sessionRepository) IsAccessTokenRevoked(ctx context.Context, hash string) (bool, error) {
	var revoked bool
	err := r.q.QueryRowContext(ctx,
		`SELECT revoked_at IS NOT NULL FROM sessions WHERE access_token_hash = ?`,
		hash,
	).Scan(&revoked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return revoked, nil
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM sessions WHERE refresh_expires_at < ?`,
		before,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return res.RowsAffected()
}
