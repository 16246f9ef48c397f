package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/gbellini/fantamarket/internal/config"
	"github.com/gbellini/fantamarket/internal/domain"
	"github.com/gbellini/fantamarket/internal/repository"
)

type teamService struct {
	db         *sql.DB
	teamRepo   repository.TeamRepository
	playerRepo repository.PlayerRepository
	cfg        config.MarketConfig
}

func NewTeamService(
	db *sql.DB,
	teamRepo repository.TeamRepository,
	playerRepo repository.PlayerRepository,
	cfg config.MarketConfig,
) TeamService {
	return &teamService{
		db:         db,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		cfg:        cfg,
	}
}

func (s *teamService) ListTeams(ctx context.Context) ([]domain.Team, error) {
	return s.teamRepo.List(ctx)
}

func (s *teamService) GetTeam(ctx context.Context, id int) (*domain.Team, error) {
	return s.teamRepo.GetByID(ctx, id)
}

func (s *teamService) GetTeamByName(ctx context.Context, name string) (*domain.Team, error) {
	return s.teamRepo.GetByName(ctx, name)
}

func (s *teamService) CreateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	if team.Name == "" {
		return nil, domain.NewValidationError("team name is required")
	}
	if team.Cash < 0 {
		return nil, domain.NewValidationError("team cash cannot be negative")
	}
	// New teams start with the configured budget unless one was given.
	if team.Cash == 0 {
		team.Cash = s.cfg.StartingBudget
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	log.Info().Str("team", team.Name).Float64("cash", team.Cash).Msg("team created")
	return team, nil
}

func (s *teamService) UpdateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	if team.Name == "" {
		return nil, domain.NewValidationError("team name is required")
	}
	if team.Cash < 0 {
		return nil, domain.NewValidationError("team cash cannot be negative")
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, err
	}
	return s.teamRepo.GetByID(ctx, team.ID)
}

// DeleteTeam frees the roster and removes the team in one transaction.
func (s *teamService) DeleteTeam(ctx context.Context, id int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	released, err := s.playerRepo.WithTx(tx).ReleaseAllFromTeam(ctx, id)
	if err != nil {
		return err
	}
	if err := s.teamRepo.WithTx(tx).Delete(ctx, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit team deletion: %w", err)
	}

	log.Info().Int("team_id", id).Int64("players_released", released).Msg("team deleted")
	return nil
}

func (s *teamService) GetTeamPlayers(ctx context.Context, id int) ([]domain.Player, error) {
	if _, err := s.teamRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.playerRepo.ListByTeamID(ctx, id)
}
