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

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

type marketService struct {
	db         *sql.DB
	playerRepo repository.PlayerRepository
	teamRepo   repository.TeamRepository
	cfg        config.MarketConfig
}

func NewMarketService(
	db *sql.DB,
	playerRepo repository.PlayerRepository,
	teamRepo repository.TeamRepository,
	cfg config.MarketConfig,
) MarketService {
	return &marketService{
		db:         db,
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		cfg:        cfg,
	}
}

// AssignPlayer buys a free agent inside a single transaction. The cash debit
// and the player claim are both guarded UPDATEs, so a concurrent assignment
// of the same player (or a concurrent debit below zero) makes one of the two
// transactions fail and roll back completely.
func (s *marketService) AssignPlayer(ctx context.Context, req AssignPlayerRequest) (*domain.AssignmentResult, error) {
	if req.Price < 0 || req.Price > s.cfg.MaxPlayerPrice {
		return nil, domain.NewValidationError("price out of range")
	}
	if req.ContractYears < 1 || req.ContractYears > 3 {
		return nil, domain.ErrInvalidContractTerms
	}
	// A three-year contract cannot carry the renewal option.
	if req.ContractYears == 3 {
		req.Option = false
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	playerRepo := s.playerRepo.WithTx(tx)
	teamRepo := s.teamRepo.WithTx(tx)

	team, err := s.resolveTeam(ctx, teamRepo, req.TeamID, req.TeamName)
	if err != nil {
		return nil, err
	}

	player, err := playerRepo.GetByID(ctx, req.PlayerID)
	if err != nil {
		return nil, err
	}
	if !player.IsFreeAgent() {
		return nil, domain.ErrPlayerAlreadyAssigned
	}

	if !team.CanAfford(req.Price) {
		return nil, domain.ErrInsufficientFunds
	}

	count, err := playerRepo.CountByTeamAndRole(ctx, team.ID, player.Role)
	if err != nil {
		return nil, err
	}
	if limit, ok := s.cfg.RosterLimits[player.Role]; ok && count+1 > limit {
		return nil, domain.ErrRosterLimitExceeded
	}

	if err := teamRepo.DebitCash(ctx, team.ID, req.Price); err != nil {
		return nil, err
	}
	if err := playerRepo.Assign(ctx, player.ID, team.ID, req.Price, req.ContractYears, req.Option); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit assignment: %w", err)
	}

	log.Info().
		Int("player_id", player.ID).
		Str("player", player.Name).
		Str("team", team.Name).
		Float64("price", req.Price).
		Int("contract_years", req.ContractYears).
		Msg("player assigned")

	return &domain.AssignmentResult{
		PlayerID:      player.ID,
		PlayerName:    player.Name,
		TeamID:        team.ID,
		TeamName:      team.Name,
		Price:         req.Price,
		ContractYears: req.ContractYears,
		Option:        req.Option,
		CashBefore:    team.Cash,
		CashAfter:     team.Cash - req.Price,
	}, nil
}

func (s *marketService) resolveTeam(ctx context.Context, teamRepo repository.TeamRepository, id int, name string) (*domain.Team, error) {
	if id != 0 {
		return teamRepo.GetByID(ctx, id)
	}
	if name == "" {
		return nil, domain.NewValidationError("team is required")
	}
	return teamRepo.GetByName(ctx, name)
}

// ReleasePlayer frees an assigned player and refunds his cost to the team.
func (s *marketService) ReleasePlayer(ctx context.Context, playerID int) (*domain.Player, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	playerRepo := s.playerRepo.WithTx(tx)
	teamRepo := s.teamRepo.WithTx(tx)

	player, err := playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player.IsFreeAgent() {
		return nil, domain.ErrPlayerNotAssigned
	}

	if err := teamRepo.CreditCash(ctx, *player.TeamID, player.Cost); err != nil {
		return nil, err
	}
	if err := playerRepo.Unassign(ctx, player.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit release: %w", err)
	}

	log.Info().
		Int("player_id", player.ID).
		Str("player", player.Name).
		Str("team", player.TeamName).
		Float64("refund", player.Cost).
		Msg("player released")

	released := *player
	released.TeamID = nil
	released.TeamName = ""
	released.Cost = 0
	released.ContractYears = nil
	released.Option = false
	return &released, nil
}

// TransferPlayer moves a player between teams atomically: refund the source,
// debit the destination, reassign. Funds and roster limits are checked on
// the destination.
func (s *marketService) TransferPlayer(ctx context.Context, req TransferPlayerRequest) (*domain.AssignmentResult, error) {
	if req.Price < 0 || req.Price > s.cfg.MaxPlayerPrice {
		return nil, domain.NewValidationError("invalid transfer price")
	}
	if req.FromTeamID == req.ToTeamID {
		return nil, domain.NewValidationError("source and destination teams must differ")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	playerRepo := s.playerRepo.WithTx(tx)
	teamRepo := s.teamRepo.WithTx(tx)

	player, err := playerRepo.GetByID(ctx, req.PlayerID)
	if err != nil {
		return nil, err
	}
	if player.IsFreeAgent() {
		return nil, domain.ErrPlayerNotAssigned
	}
	if *player.TeamID != req.FromTeamID {
		return nil, domain.NewValidationError("player does not belong to the source team")
	}

	dest, err := teamRepo.GetByID(ctx, req.ToTeamID)
	if err != nil {
		return nil, err
	}
	if !dest.CanAfford(req.Price) {
		return nil, domain.ErrInsufficientFunds
	}

	count, err := playerRepo.CountByTeamAndRole(ctx, dest.ID, player.Role)
	if err != nil {
		return nil, err
	}
	if limit, ok := s.cfg.RosterLimits[player.Role]; ok && count+1 > limit {
		return nil, domain.ErrRosterLimitExceeded
	}

	// The transfer keeps the remaining contract.
	contractYears := 1
	if player.ContractYears != nil {
		contractYears = *player.ContractYears
	}

	if err := teamRepo.CreditCash(ctx, req.FromTeamID, player.Cost); err != nil {
		return nil, err
	}
	if err := teamRepo.DebitCash(ctx, dest.ID, req.Price); err != nil {
		return nil, err
	}
	if err := playerRepo.Unassign(ctx, player.ID); err != nil {
		return nil, err
	}
	if err := playerRepo.Assign(ctx, player.ID, dest.ID, req.Price, contractYears, player.Option); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transfer: %w", err)
	}

	log.Info().
		Int("player_id", player.ID).
		Str("player", player.Name).
		Int("from_team", req.FromTeamID).
		Str("to_team", dest.Name).
		Float64("price", req.Price).
		Msg("player transferred")

	return &domain.AssignmentResult{
		PlayerID:      player.ID,
		PlayerName:    player.Name,
		TeamID:        dest.ID,
		TeamName:      dest.Name,
		Price:         req.Price,
		ContractYears: contractYears,
		Option:        player.Option,
		CashBefore:    dest.Cash,
		CashAfter:     dest.Cash - req.Price,
	}, nil
}

// GetTeamSummaries builds the market-index table: budget state and missing
// players per role for every team.
func (s *marketService) GetTeamSummaries(ctx context.Context) ([]domain.TeamSummary, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.TeamSummary, 0, len(teams))
	for _, team := range teams {
		players, err := s.playerRepo.ListByTeamID(ctx, team.ID)
		if err != nil {
			return nil, err
		}

		spent := 0.0
		counts := make(map[domain.Role]int)
		for _, p := range players {
			spent += p.Cost
			counts[p.Role]++
		}

		missing := make(map[domain.Role]int, len(s.cfg.RosterLimits))
		for role, limit := range s.cfg.RosterLimits {
			if n := limit - counts[role]; n > 0 {
				missing[role] = n
			} else {
				missing[role] = 0
			}
		}

		summaries = append(summaries, domain.TeamSummary{
			TeamName:  team.Name,
			Starting:  team.Cash + spent,
			Spent:     spent,
			Remaining: team.Cash,
			Missing:   missing,
		})
	}
	return summaries, nil
}

func (s *marketService) GetTeamRoster(ctx context.Context, teamName string) (*domain.TeamRoster, error) {
	team, err := s.teamRepo.GetByName(ctx, teamName)
	if err != nil {
		return nil, err
	}

	players, err := s.playerRepo.ListByTeamID(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	byRole := make(map[domain.Role][]domain.Player)
	spent := 0.0
	for _, p := range players {
		byRole[p.Role] = append(byRole[p.Role], p)
		spent += p.Cost
	}

	return &domain.TeamRoster{
		TeamName:   team.Name,
		ByRole:     byRole,
		Starting:   team.Cash + spent,
		TotalSpent: spent,
		Remaining:  team.Cash,
	}, nil
}

func (s *marketService) GetNameSuggestions(ctx context.Context, prefix string) ([]string, error) {
	if prefix == "" {
		return nil, nil
	}
	return s.playerRepo.SuggestNames(ctx, prefix, s.cfg.SuggestionLimit)
}

func (s *marketService) GetMarketStatistics(ctx context.Context) (*domain.MarketStatistics, error) {
	return s.playerRepo.Statistics(ctx)
}

func (s *marketService) SearchPlayers(ctx context.Context, filter domain.PlayerFilter) ([]domain.Player, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultSearchLimit
	}
	if filter.Limit > maxSearchLimit {
		filter.Limit = maxSearchLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.playerRepo.List(ctx, filter)
}
