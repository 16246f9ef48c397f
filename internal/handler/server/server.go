package server

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/gbellini/fantamarket/internal/handler"
	"github.com/gbellini/fantamarket/internal/middleware"
)

type Server struct {
	server *http.Server
}

func NewServer(h *handler.Handler, auth *middleware.Auth, limiter *middleware.RateLimiter, addr string) *Server {
	mux := http.NewServeMux()
	SetupRoutes(mux, h, auth, limiter)

	// Outermost first: headers on everything, then the request log line.
	// Throttling happens per route so it can see the authenticated user.
	chain := middleware.SecurityHeaders(
		middleware.RequestLogger(mux),
	)

	return &Server{
		server: &http.Server{
			Addr:    addr,
			Handler: chain,
		},
	}
}

func (s *Server) Start() error {
	log.Info().Str("addr", s.server.Addr).Msg("server starting")
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
