package domain

import "time"

type Team struct {
	ID         int
	Name       string
	Cash       float64
	LeagueID   *int
	LeagueName string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// CanAfford reports whether the team's cash covers the given price.
func (t *Team) CanAfford(price float64) bool {
	return t.Cash >= price
}

// TeamSummary is the per-team aggregation shown on the market index:
// budget state plus how many players are still missing per role.
type TeamSummary struct {
	TeamName  string
	Starting  float64
	Spent     float64
	Remaining float64
	Missing   map[Role]int
}

// MissingTotal sums the missing players across all roles.
func (s *TeamSummary) MissingTotal() int {
	total := 0
	for _, n := range s.Missing {
		total += n
	}
	return total
}

// TeamRoster is a team's current squad grouped by role, with budget totals.
type TeamRoster struct {
	TeamName   string
	ByRole     map[Role][]Player
	Starting   float64
	TotalSpent float64
	Remaining  float64
}
