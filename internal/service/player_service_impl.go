package service

import (
	"context"

	"github.com/gbellini/fantamarket/internal/config"
	"github.com/gbellini/fantamarket/internal/domain"
	"github.com/gbellini/fantamarket/internal/repository"
)

type playerService struct {
	playerRepo repository.PlayerRepository
	cfg        config.MarketConfig
}

func NewPlayerService(playerRepo repository.PlayerRepository, cfg config.MarketConfig) PlayerService {
	return &playerService{playerRepo: playerRepo, cfg: cfg}
}

func (s *playerService) GetPlayer(ctx context.Context, id int) (*domain.Player, error) {
	return s.playerRepo.GetByID(ctx, id)
}

func (s *playerService) CreatePlayer(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	if err := s.validate(player); err != nil {
		return nil, err
	}
	// Players enter the pool as free agents; assignment goes through the
	// market transaction.
	player.TeamID = nil
	player.Cost = 0
	player.ContractYears = nil
	player.Option = false

	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

func (s *playerService) UpdatePlayer(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	if err := s.validate(player); err != nil {
		return nil, err
	}

	current, err := s.playerRepo.GetByID(ctx, player.ID)
	if err != nil {
		return nil, err
	}
	// Assignment state is owned by the market; carry it over unchanged.
	player.Cost = current.Cost
	player.ContractYears = current.ContractYears
	player.Option = current.Option

	if err := s.playerRepo.Update(ctx, player); err != nil {
		return nil, err
	}
	return s.playerRepo.GetByID(ctx, player.ID)
}

func (s *playerService) DeletePlayer(ctx context.Context, id int) error {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !player.IsFreeAgent() {
		return domain.NewValidationError("assigned players must be released before deletion")
	}
	return s.playerRepo.Delete(ctx, id)
}

func (s *playerService) validate(player *domain.Player) error {
	if player.Name == "" {
		return domain.NewValidationError("player name is required")
	}
	role, ok := domain.ParseRole(string(player.Role))
	if !ok {
		return domain.NewValidationError("invalid player role")
	}
	player.Role = role
	return nil
}
