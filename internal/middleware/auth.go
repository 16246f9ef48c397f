// Package middleware provides the HTTP middleware chain: authentication,
// role gating, security headers, rate limiting and request logging.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gbellini/fantamarket/internal/auth"
	"github.com/gbellini/fantamarket/internal/domain"
	"github.com/gbellini/fantamarket/internal/service"
)

type ctxKey int

const claimsKey ctxKey = iota

// ClaimsFromContext returns the authenticated claims, if any.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

type Auth struct {
	authService service.AuthService
}

func NewAuth(authService service.AuthService) *Auth {
	return &Auth{authService: authService}
}

// RequireAuth validates the bearer token and stores the claims in the
// request context.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing or malformed Authorization header")
			return
		}

		claims, err := a.authService.ValidateAccess(r.Context(), token)
		if err != nil {
			code, message := "TOKEN_INVALID", "invalid token"
			var domainErr *domain.DomainError
			if errors.As(err, &domainErr) {
				code, message = domainErr.Code, domainErr.Message
			}
			writeAuthError(w, http.StatusUnauthorized, code, message)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates a handler to admin users. Anonymous requests get 401,
// authenticated non-admins 403.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return a.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok || claims.Role != string(domain.UserRoleAdmin) {
			writeAuthError(w, http.StatusForbidden, "FORBIDDEN", "insufficient permissions")
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func writeAuthError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
