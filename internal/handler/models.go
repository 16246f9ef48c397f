package handler

import "time"

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type TeamResponse struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Cash       float64 `json:"cash"`
	LeagueID   *int    `json:"league_id,omitempty"`
	LeagueName string  `json:"league_name,omitempty"`
}

type TeamsListResponse struct {
	Teams []TeamResponse `json:"teams"`
	Total int            `json:"total"`
}

type TeamRequest struct {
	Name     string  `json:"name"`
	Cash     float64 `json:"cash"`
	LeagueID *int    `json:"league_id"`
}

type PlayerResponse struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Role          string  `json:"role"`
	RoleName      string  `json:"role_name"`
	Cost          float64 `json:"cost"`
	ContractYears *int    `json:"contract_years,omitempty"`
	Option        bool    `json:"option"`
	RealTeam      string  `json:"real_team,omitempty"`
	TeamID        *int    `json:"team_id,omitempty"`
	TeamName      string  `json:"team_name,omitempty"`
	IsInjured     bool    `json:"is_injured"`
}

type PlayersListResponse struct {
	Players []PlayerResponse `json:"players"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

type PlayerRequest struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	RealTeam  string `json:"real_team"`
	IsInjured bool   `json:"is_injured"`
}

type AssignRequest struct {
	PlayerID      int     `json:"player_id"`
	TeamID        int     `json:"team_id"`
	Price         float64 `json:"price"`
	ContractYears int     `json:"contract_years"`
	Option        bool    `json:"option"`
}

type UnassignRequest struct {
	PlayerID int `json:"player_id"`
}

type TransferRequest struct {
	PlayerID   int     `json:"player_id"`
	FromTeamID int     `json:"from_team_id"`
	ToTeamID   int     `json:"to_team_id"`
	Price      float64 `json:"price"`
}

type AssignmentResponse struct {
	PlayerID      int     `json:"player_id"`
	PlayerName    string  `json:"player_name"`
	TeamID        int     `json:"team_id"`
	TeamName      string  `json:"team_name"`
	Price         float64 `json:"price"`
	ContractYears int     `json:"contract_years"`
	Option        bool    `json:"option"`
	CashBefore    float64 `json:"cash_before"`
	CashAfter     float64 `json:"cash_after"`
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

type RoleStatsResponse struct {
	Total       int     `json:"total"`
	FreeAgents  int     `json:"free_agents"`
	Assigned    int     `json:"assigned"`
	TotalValue  float64 `json:"total_value"`
	AverageCost float64 `json:"average_cost"`
}

type StatisticsResponse struct {
	TotalPlayers      int                          `json:"total_players"`
	FreeAgents        int                          `json:"free_agents"`
	AssignedPlayers   int                          `json:"assigned_players"`
	TotalMarketValue  float64                      `json:"total_market_value"`
	AveragePlayerCost float64                      `json:"average_player_cost"`
	Roles             map[string]RoleStatsResponse `json:"roles"`
}

type LeagueResponse struct {
	ID   int    `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type LeaguesListResponse struct {
	Leagues []LeagueResponse `json:"leagues"`
	Total   int              `json:"total"`
}

type LeagueDetailResponse struct {
	LeagueResponse
	Teams []TeamResponse `json:"teams"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type UserResponse struct {
	ID        int        `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token,omitempty"`
	TokenType    string       `json:"token_type"`
	ExpiresAt    time.Time    `json:"expires_at"`
	User         UserResponse `json:"user"`
}
