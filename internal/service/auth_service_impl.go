package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/gbellini/fantamarket/internal/auth"
	"github.com/gbellini/fantamarket/internal/config"
	"github.com/gbellini/fantamarket/internal/domain"
	"github.com/gbellini/fantamarket/internal/repository"
)

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	tokens      *auth.TokenManager
	refreshTTL  time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	cfg config.AuthConfig,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokens:      auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL),
		refreshTTL:  cfg.RefreshTokenTTL,
	}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest, client ClientInfo) (*AuthTokens, error) {
	if len(req.Username) < 3 {
		return nil, domain.NewValidationError("username must be at least 3 characters")
	}
	if !strings.Contains(req.Email, "@") {
		return nil, domain.NewValidationError("invalid email address")
	}
	if len(req.Password) < 8 {
		return nil, domain.NewValidationError("password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.UserRoleUser,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Info().Str("username", user.Username).Msg("user registered")
	return s.issueTokens(ctx, user, client)
}

func (s *authService) Login(ctx context.Context, identifier, password string, client ClientInfo) (*AuthTokens, error) {
	user, err := s.userRepo.GetByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrAccountInactive
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now

	return s.issueTokens(ctx, user, client)
}

func (s *authService) issueTokens(ctx context.Context, user *domain.User, client ClientInfo) (*AuthTokens, error) {
	accessToken, expiresAt, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := auth.NewRefreshToken()
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		ID:               uuid.NewString(),
		UserID:           user.ID,
		AccessTokenHash:  auth.HashToken(accessToken),
		RefreshTokenHash: auth.HashToken(refreshToken),
		ExpiresAt:        expiresAt,
		RefreshExpiresAt: time.Now().Add(s.refreshTTL),
		IPAddress:        client.IPAddress,
		UserAgent:        client.UserAgent,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		User:         user,
	}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	session, err := s.sessionRepo.GetByRefreshTokenHash(ctx, auth.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, err
	}

	if session.Revoked() {
		return nil, domain.ErrTokenRevoked
	}
	if time.Now().After(session.RefreshExpiresAt) {
		return nil, domain.ErrTokenExpired
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrAccountInactive
	}

	accessToken, expiresAt, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}
	if err := s.sessionRepo.RotateAccessToken(ctx, session.ID, auth.HashToken(accessToken), expiresAt); err != nil {
		return nil, err
	}

	return &AuthTokens{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

// Logout revokes the session behind the access token; the hash stays behind
// as a blacklist entry until the session row expires out.
func (s *authService) Logout(ctx context.Context, accessToken string) error {
	session, err := s.sessionRepo.GetByAccessTokenHash(ctx, auth.HashToken(accessToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrTokenInvalid
		}
		return err
	}
	if session.Revoked() {
		return nil
	}
	return s.sessionRepo.Revoke(ctx, session.ID, time.Now())
}

func (s *authService) ValidateAccess(ctx context.Context, accessToken string) (*auth.Claims, error) {
	claims, err := s.tokens.ParseAccessToken(accessToken)
	if err != nil {
		return nil, err
	}

	revoked, err := s.sessionRepo.IsAccessTokenRevoked(ctx, auth.HashToken(accessToken))
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, domain.ErrTokenRevoked
	}
	return claims, nil
}

func (s *authService) GetProfile(ctx context.Context, userID int) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
