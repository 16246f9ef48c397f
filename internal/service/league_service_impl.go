package service

import (
	"context"

	"github.com/gbellini/fantamarket/internal/domain"
	"github.com/gbellini/fantamarket/internal/repository"
)

type leagueService struct {
	leagueRepo repository.LeagueRepository
	teamRepo   repository.TeamRepository
}

func NewLeagueService(leagueRepo repository.LeagueRepository, teamRepo repository.TeamRepository) LeagueService {
	return &leagueService{leagueRepo: leagueRepo, teamRepo: teamRepo}
}

func (s *leagueService) ListLeagues(ctx context.Context) ([]domain.League, error) {
	return s.leagueRepo.List(ctx)
}

func (s *leagueService) GetLeague(ctx context.Context, id int) (*LeagueWithTeams, error) {
	league, err := s.leagueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListByLeagueID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &LeagueWithTeams{League: *league, Teams: teams}, nil
}
