package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbellini/fantamarket/internal/auth"
	"github.com/gbellini/fantamarket/internal/domain"
	"github.com/gbellini/fantamarket/internal/service"
)

// stubAuthService validates exactly one token and returns fixed claims.
type stubAuthService struct {
	token  string
	claims *auth.Claims
	err    error
}

func (s *stubAuthService) Register(ctx context.Context, req service.RegisterRequest, client service.ClientInfo) (*service.AuthTokens, error) {
	return nil, nil
}

func (s *stubAuthService) Login(ctx context.Context, identifier, password string, client service.ClientInfo) (*service.AuthTokens, error) {
	return nil, nil
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string) (*service.AuthTokens, error) {
	return nil, nil
}

func (s *stubAuthService) Logout(ctx context.Context, accessToken string) error {
	return nil
}

func (s *stubAuthService) ValidateAccess(ctx context.Context, accessToken string) (*auth.Claims, error) {
	if s.err != nil {
		return nil, s.err
	}
	if accessToken != s.token {
		return nil, domain.ErrTokenInvalid
	}
	return s.claims, nil
}

func (s *stubAuthService) GetProfile(ctx context.Context, userID int) (*domain.User, error) {
	return nil, nil
}

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestRequireAuth(t *testing.T) {
	userClaims := &auth.Claims{UserID: 42, Username: "presidente", Role: "user"}

	t.Run("valid token reaches the handler with claims", func(t *testing.T) {
		mw := NewAuth(&stubAuthService{token: "good", claims: userClaims})

		var got *auth.Claims
		handler := mw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ = ClaimsFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/teams", nil)
		req.Header.Set("Authorization", "Bearer good")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, got)
		assert.Equal(t, 42, got.UserID)
	})

	t.Run("missing header", func(t *testing.T) {
		mw := NewAuth(&stubAuthService{token: "good", claims: userClaims})
		handler, called := okHandler()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/teams", nil)
		rec := httptest.NewRecorder()

		mw.RequireAuth(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, *called)
		assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
	})

	t.Run("revoked token carries its code", func(t *testing.T) {
		mw := NewAuth(&stubAuthService{err: domain.ErrTokenRevoked})
		handler, called := okHandler()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/teams", nil)
		req.Header.Set("Authorization", "Bearer revoked")
		rec := httptest.NewRecorder()

		mw.RequireAuth(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, *called)
		assert.Contains(t, rec.Body.String(), "TOKEN_REVOKED")
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("admin passes", func(t *testing.T) {
		mw := NewAuth(&stubAuthService{
			token:  "admintoken",
			claims: &auth.Claims{UserID: 1, Username: "admin", Role: "admin"},
		})
		handler, called := okHandler()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/teams", nil)
		req.Header.Set("Authorization", "Bearer admintoken")
		rec := httptest.NewRecorder()

		mw.RequireAdmin(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, *called)
	})

	t.Run("regular user gets 403", func(t *testing.T) {
		mw := NewAuth(&stubAuthService{
			token:  "usertoken",
			claims: &auth.Claims{UserID: 42, Username: "presidente", Role: "user"},
		})
		handler, called := okHandler()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/teams", nil)
		req.Header.Set("Authorization", "Bearer usertoken")
		rec := httptest.NewRecorder()

		mw.RequireAdmin(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, *called)
	})

	t.Run("anonymous gets 401", func(t *testing.T) {
		mw := NewAuth(&stubAuthService{})
		handler, called := okHandler()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/teams", nil)
		rec := httptest.NewRecorder()

		mw.RequireAdmin(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, *called)
	})
}

func TestSecurityHeaders(t *testing.T) {
	handler, _ := okHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	SecurityHeaders(handler).ServeHTTP(rec, req)

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "max-age=31536000; includeSubDomains", rec.Header().Get("Strict-Transport-Security"))
	assert.Equal(t, "default-src 'self'", rec.Header().Get("Content-Security-Policy"))
}

func TestRateLimiter(t *testing.T) {
	t.Run("throttles a client past its burst", func(t *testing.T) {
		limiter := NewRateLimiter(1, 2)
		handler, _ := okHandler()
		wrapped := limiter.Handler(handler)

		statuses := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			rec := httptest.NewRecorder()
			wrapped.ServeHTTP(rec, req)
			statuses = append(statuses, rec.Code)
		}

		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
	})

	t.Run("authenticated users behind one address get separate buckets", func(t *testing.T) {
		limiter := NewRateLimiter(1, 1)
		handler, _ := okHandler()
		limited := limiter.Handler(handler)

		// Same composition the router uses: auth outside, limiter inside,
		// so the claims are in the context by the time the bucket is picked.
		alice := NewAuth(&stubAuthService{
			token:  "alice-token",
			claims: &auth.Claims{UserID: 1, Username: "alice", Role: "user"},
		}).RequireAuth(limited)
		bruno := NewAuth(&stubAuthService{
			token:  "bruno-token",
			claims: &auth.Claims{UserID: 2, Username: "bruno", Role: "user"},
		}).RequireAuth(limited)

		send := func(h http.Handler, token string) int {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/teams", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			return rec.Code
		}

		assert.Equal(t, http.StatusOK, send(alice, "alice-token"))
		assert.Equal(t, http.StatusOK, send(bruno, "bruno-token"))
		assert.Equal(t, http.StatusTooManyRequests, send(alice, "alice-token"))
	})

	t.Run("clients are limited independently", func(t *testing.T) {
		limiter := NewRateLimiter(1, 1)
		handler, _ := okHandler()
		wrapped := limiter.Handler(handler)

		first := httptest.NewRequest(http.MethodGet, "/", nil)
		first.RemoteAddr = "10.0.0.1:1234"
		rec1 := httptest.NewRecorder()
		wrapped.ServeHTTP(rec1, first)

		blocked := httptest.NewRequest(http.MethodGet, "/", nil)
		blocked.RemoteAddr = "10.0.0.1:9999"
		rec2 := httptest.NewRecorder()
		wrapped.ServeHTTP(rec2, blocked)

		other := httptest.NewRequest(http.MethodGet, "/", nil)
		other.RemoteAddr = "10.0.0.2:1234"
		rec3 := httptest.NewRecorder()
		wrapped.ServeHTTP(rec3, other)

		assert.Equal(t, http.StatusOK, rec1.Code)
		assert.Equal(t, http.StatusTooManyRequests, rec2.Code)
		assert.Equal(t, http.StatusOK, rec3.Code)
	})
}
