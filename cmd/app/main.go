package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gbellini/fantamarket/internal/config"
	"github.com/gbellini/fantamarket/internal/db"
	"github.com/gbellini/fantamarket/internal/handler"
	"github.com/gbellini/fantamarket/internal/handler/server"
	"github.com/gbellini/fantamarket/internal/middleware"
	"github.com/gbellini/fantamarket/internal/repository/sqlite"
	"github.com/gbellini/fantamarket/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg := config.Load()

	database := db.MustLoad(cfg)
	log.Info().Str("path", cfg.Database.Path).Msg("database ready")
	defer database.Close()

	playerRepo := sqlite.NewPlayerRepository(database)
	teamRepo := sqlite.NewTeamRepository(database)
	leagueRepo := sqlite.NewLeagueRepository(database)
	userRepo := sqlite.NewUserRepository(database)
	sessionRepo := sqlite.NewSessionRepository(database)

	marketService := service.NewMarketService(database, playerRepo, teamRepo, cfg.Market)
	teamService := service.NewTeamService(database, teamRepo, playerRepo, cfg.Market)
	playerService := service.NewPlayerService(playerRepo, cfg.Market)
	leagueService := service.NewLeagueService(leagueRepo, teamRepo)
	authService := service.NewAuthService(userRepo, sessionRepo, cfg.Auth)

	h := handler.NewHandler(marketService, teamService, playerService, leagueService, authService)
	authMW := middleware.NewAuth(authService)
	limiter := middleware.NewRateLimiter(cfg.Server.RateLimitPerSec, cfg.Server.RateLimitBurst)

	srv := server.NewServer(h, authMW, limiter, cfg.Server.Addr)

	// Sweep sessions whose refresh window closed; revoked rows stay until
	// then so the access-token blacklist keeps working.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			n, err := sessionRepo.DeleteExpired(context.Background(), time.Now())
			if err != nil {
				log.Error().Err(err).Msg("session cleanup failed")
				continue
			}
			if n > 0 {
				log.Info().Int64("sessions", n).Msg("expired sessions removed")
			}
		}
	}()

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}
}
