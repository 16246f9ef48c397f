package domain

import "time"

// Role is the fixed position enum: P (goalkeeper), D (defender),
// C (midfielder), A (forward).
type Role string

const (
	RoleGoalkeeper Role = "P"
	RoleDefender   Role = "D"
	RoleMidfielder Role = "C"
	RoleForward    Role = "A"
)

// ParseRole normalizes a role code. The legacy dataset uses "G" for
// goalkeepers in some rows; it maps onto P.
func ParseRole(code string) (Role, bool) {
	switch code {
	case "P", "G":
		return RoleGoalkeeper, true
	case "D":
		return RoleDefender, true
	case "C":
		return RoleMidfielder, true
	case "A":
		return RoleForward, true
	}
	return "", false
}

// DisplayName returns the Italian role name used by the UI.
func (r Role) DisplayName() string {
	switch r {
	case RoleGoalkeeper:
		return "Portieri"
	case RoleDefender:
		return "Difensori"
	case RoleMidfielder:
		return "Centrocampisti"
	case RoleForward:
		return "Attaccanti"
	}
	return string(r)
}

// Roles lists every role in display order.
func Roles() []Role {
	return []Role{RoleGoalkeeper, RoleDefender, RoleMidfielder, RoleForward}
}

type Player struct {
	ID            int
	Name          string
	Role          Role
	Cost          float64
	ContractYears *int
	Option        bool
	RealTeam      string
	TeamID        *int
	TeamName      string
	IsInjured     bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// IsFreeAgent reports whether the player has no team assignment.
func (p *Player) IsFreeAgent() bool {
	return p.TeamID == nil
}

// PlayerFilter holds market search criteria.
type PlayerFilter struct {
	Query          string
	Roles          []Role
	RealTeam       string
	MinCost        *float64
	MaxCost        *float64
	FreeAgentsOnly bool
	Limit          int
	Offset         int
}
