package server

import (
	"net/http"

	"github.com/gbellini/fantamarket/internal/handler"
	"github.com/gbellini/fantamarket/internal/middleware"
)

// SetupRoutes registers every route. The rate limiter sits inside the auth
// wrap so authenticated requests are throttled per user; open routes fall
// back to per-address buckets.
func SetupRoutes(mux *http.ServeMux, h *handler.Handler, auth *middleware.Auth, limiter *middleware.RateLimiter) {
	open := func(hf http.HandlerFunc) http.Handler { return limiter.Handler(hf) }
	user := func(hf http.HandlerFunc) http.Handler { return auth.RequireAuth(limiter.Handler(hf)) }
	admin := func(hf http.HandlerFunc) http.Handler { return auth.RequireAdmin(limiter.Handler(hf)) }

	// Legacy HTML market UI, open like the original.
	mux.Handle("GET /{$}", open(h.Index))
	mux.Handle("POST /assegna_giocatore", open(h.AssignPlayerForm))
	mux.Handle("GET /squadra/{team_name}", open(h.TeamPage))
	mux.Handle("GET /rose", open(h.Rosters))

	mux.Handle("GET /api/v1/health", open(h.Health))

	mux.Handle("POST /api/v1/auth/register", open(h.Register))
	mux.Handle("POST /api/v1/auth/login", open(h.Login))
	mux.Handle("POST /api/v1/auth/refresh", open(h.Refresh))
	mux.Handle("POST /api/v1/auth/logout", open(h.Logout))
	mux.Handle("GET /api/v1/auth/profile", user(h.Profile))

	mux.Handle("GET /api/v1/teams", user(h.ListTeams))
	mux.Handle("POST /api/v1/teams", admin(h.CreateTeam))
	mux.Handle("GET /api/v1/teams/{id}", user(h.GetTeam))
	mux.Handle("PUT /api/v1/teams/{id}", admin(h.UpdateTeam))
	mux.Handle("DELETE /api/v1/teams/{id}", admin(h.DeleteTeam))
	mux.Handle("GET /api/v1/teams/{id}/players", user(h.GetTeamPlayers))

	mux.Handle("GET /api/v1/players", user(h.ListPlayers))
	mux.Handle("POST /api/v1/players", admin(h.CreatePlayer))
	mux.Handle("GET /api/v1/players/{id}", user(h.GetPlayer))
	mux.Handle("PUT /api/v1/players/{id}", admin(h.UpdatePlayer))
	mux.Handle("DELETE /api/v1/players/{id}", admin(h.DeletePlayer))

	mux.Handle("GET /api/v1/leagues", user(h.ListLeagues))
	mux.Handle("GET /api/v1/leagues/{id}", user(h.GetLeague))

	mux.Handle("GET /api/v1/market/statistics", user(h.GetStatistics))
	mux.Handle("GET /api/v1/market/suggestions", user(h.GetSuggestions))
	mux.Handle("POST /api/v1/market/assign", user(h.AssignPlayer))
	mux.Handle("POST /api/v1/market/unassign", user(h.UnassignPlayer))
	mux.Handle("POST /api/v1/market/transfer", user(h.TransferPlayer))
}
