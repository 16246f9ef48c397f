package domain

// AssignmentResult is the committed outcome of a player assignment.
type AssignmentResult struct {
	PlayerID      int
	PlayerName    string
	TeamID        int
	TeamName      string
	Price         float64
	ContractYears int
	Option        bool
	CashBefore    float64
	CashAfter     float64
}

// RoleStats is the per-role slice of the market statistics.
type RoleStats struct {
	Total       int
	FreeAgents  int
	Assigned    int
	TotalValue  float64
	AverageCost float64
}

// MarketStatistics aggregates the whole player pool.
type MarketStatistics struct {
	TotalPlayers      int
	FreeAgents        int
	AssignedPlayers   int
	TotalMarketValue  float64
	AveragePlayerCost float64
	RoleDistribution  map[Role]RoleStats
}
