package repository

import (
	"context"
	"time"

	"github.com/gbellini/fantamarket/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByRefreshTokenHash(ctx context.Context, hash string) (*domain.Session, error)
	GetByAccessTokenHash(ctx context.Context, hash string) (*domain.Session, error)

	// RotateAccessToken stores the access-token hash and expiry issued by
	// a refresh, keeping the session row.
	RotateAccessToken(ctx context.Context, sessionID, accessTokenHash string, expiresAt time.Time) error

	Revoke(ctx context.Context, sessionID string, at time.Time) error

	// IsAccessTokenRevoked reports whether the hash belongs to a revoked
	// session. Revoked access hashes act as the token blacklist.
	IsAccessTokenRevoked(ctx context.Context, hash string) (bool, error)

	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
