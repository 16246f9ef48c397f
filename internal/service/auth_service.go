package service

import (
	"context"
	"time"

	"github.com/gbellini/fantamarket/internal/auth"
	"github.com/gbellini/fantamarket/internal/domain"
)

// AuthTokens is the pair issued on register, login and refresh. RefreshToken
// is empty on refresh, which only rotates the access token.
type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	User         *domain.User
}

// ClientInfo is recorded on the session for auditing.
type ClientInfo struct {
	IPAddress string
	UserAgent string
}

type RegisterRequest struct {
	Username string
	Email    string
	Password string
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest, client ClientInfo) (*AuthTokens, error)
	Login(ctx context.Context, identifier, password string, client ClientInfo) (*AuthTokens, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, accessToken string) error

	// ValidateAccess checks signature, expiry and the revocation list.
	ValidateAccess(ctx context.Context, accessToken string) (*auth.Claims, error)

	GetProfile(ctx context.Context, userID int) (*domain.User, error)
}
