package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is compares by code so callers can use errors.Is against the sentinel values.
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrInsufficientFunds - the price exceeds the team's available cash
	ErrInsufficientFunds = &DomainError{
		Code:    "INSUFFICIENT_FUNDS",
		Message: "team does not have enough cash for this assignment",
	}

	// ErrRosterLimitExceeded - the team already holds the maximum for the role
	ErrRosterLimitExceeded = &DomainError{
		Code:    "ROSTER_LIMIT_EXCEEDED",
		Message: "team already has the maximum number of players for this role",
	}

	// ErrPlayerAlreadyAssigned - the player is not a free agent
	ErrPlayerAlreadyAssigned = &DomainError{
		Code:    "PLAYER_ALREADY_ASSIGNED",
		Message: "player is already assigned to a team",
	}

	// ErrPlayerNotAssigned - release or transfer requested for a free agent
	ErrPlayerNotAssigned = &DomainError{
		Code:    "PLAYER_NOT_ASSIGNED",
		Message: "player is not assigned to any team",
	}

	// ErrInvalidContractTerms - contract years outside the allowed set
	ErrInvalidContractTerms = &DomainError{
		Code:    "INVALID_CONTRACT_TERMS",
		Message: "invalid contract terms",
	}

	// ErrTeamExists - team name already taken
	ErrTeamExists = &DomainError{
		Code:    "TEAM_EXISTS",
		Message: "team name already exists",
	}

	// ErrUserExists - username or email already registered
	ErrUserExists = &DomainError{
		Code:    "USER_EXISTS",
		Message: "username or email already exists",
	}

	// ErrInvalidCredentials - login failure, deliberately unspecific
	ErrInvalidCredentials = &DomainError{
		Code:    "INVALID_CREDENTIALS",
		Message: "invalid credentials",
	}

	// ErrAccountInactive - valid credentials but the account is disabled
	ErrAccountInactive = &DomainError{
		Code:    "ACCOUNT_INACTIVE",
		Message: "account is inactive",
	}

	// ErrTokenInvalid - malformed, tampered or wrong-type token
	ErrTokenInvalid = &DomainError{
		Code:    "TOKEN_INVALID",
		Message: "invalid token",
	}

	// ErrTokenExpired - token past its validity window
	ErrTokenExpired = &DomainError{
		Code:    "TOKEN_EXPIRED",
		Message: "token has expired",
	}

	// ErrTokenRevoked - token is on the revocation list
	ErrTokenRevoked = &DomainError{
		Code:    "TOKEN_REVOKED",
		Message: "token has been revoked",
	}

	// ErrForbidden - authenticated but not allowed
	ErrForbidden = &DomainError{
		Code:    "FORBIDDEN",
		Message: "insufficient permissions",
	}

	// ErrNotFound - resource not found
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}
)

// NewNotFoundError creates a NOT_FOUND error with extra context
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError creates a BAD_REQUEST error with a field-level message
func NewValidationError(message string) *DomainError {
	return &DomainError{
		Code:    "BAD_REQUEST",
		Message: message,
	}
}
