package handler

import (
	"github.com/gbellini/fantamarket/internal/domain"
	"github.com/gbellini/fantamarket/internal/service"
)

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	return TeamResponse{
		ID:         team.ID,
		Name:       team.Name,
		Cash:       team.Cash,
		LeagueID:   team.LeagueID,
		LeagueName: team.LeagueName,
	}
}

func domainTeamsToHTTP(teams []domain.Team) []TeamResponse {
	out := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		out = append(out, domainTeamToHTTP(&teams[i]))
	}
	return out
}

func domainPlayerToHTTP(player *domain.Player) PlayerResponse {
	return PlayerResponse{
		ID:            player.ID,
		Name:          player.Name,
		Role:          string(player.Role),
		RoleName:      player.Role.DisplayName(),
		Cost:          player.Cost,
		ContractYears: player.ContractYears,
		Option:        player.Option,
		RealTeam:      player.RealTeam,
		TeamID:        player.TeamID,
		TeamName:      player.TeamName,
		IsInjured:     player.IsInjured,
	}
}

func domainPlayersToHTTP(players []domain.Player) []PlayerResponse {
	out := make([]PlayerResponse, 0, len(players))
	for i := range players {
		out = append(out, domainPlayerToHTTP(&players[i]))
	}
	return out
}

func domainAssignmentToHTTP(result *domain.AssignmentResult) AssignmentResponse {
	return AssignmentResponse{
		PlayerID:      result.PlayerID,
		PlayerName:    result.PlayerName,
		TeamID:        result.TeamID,
		TeamName:      result.TeamName,
		Price:         result.Price,
		ContractYears: result.ContractYears,
		Option:        result.Option,
		CashBefore:    result.CashBefore,
		CashAfter:     result.CashAfter,
	}
}

func domainStatisticsToHTTP(stats *domain.MarketStatistics) StatisticsResponse {
	roles := make(map[string]RoleStatsResponse, len(stats.RoleDistribution))
	for role, rs := range stats.RoleDistribution {
		roles[string(role)] = RoleStatsResponse{
			Total:       rs.Total,
			FreeAgents:  rs.FreeAgents,
			Assigned:    rs.Assigned,
			TotalValue:  rs.TotalValue,
			AverageCost: rs.AverageCost,
		}
	}
	return StatisticsResponse{
		TotalPlayers:      stats.TotalPlayers,
		FreeAgents:        stats.FreeAgents,
		AssignedPlayers:   stats.AssignedPlayers,
		TotalMarketValue:  stats.TotalMarketValue,
		AveragePlayerCost: stats.AveragePlayerCost,
		Roles:             roles,
	}
}

func domainLeagueToHTTP(league *domain.League) LeagueResponse {
	return LeagueResponse{ID: league.ID, Slug: league.Slug, Name: league.Name}
}

func domainUserToHTTP(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		LastLogin: user.LastLogin,
	}
}

func authTokensToHTTP(tokens *service.AuthTokens) TokenResponse {
	return TokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		TokenType:    "bearer",
		ExpiresAt:    tokens.ExpiresAt,
		User:         domainUserToHTTP(tokens.User),
	}
}
