package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/gbellini/fantamarket/internal/domain"
)

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, getStatusCode(domainErr.Code), ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		})
		return
	}

	log.Error().Err(err).Msg("unhandled error")
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}

// handleWebError is the plain-text variant used by the legacy HTML routes.
func (h *Handler) handleWebError(w http.ResponseWriter, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		http.Error(w, domainErr.Message, getStatusCode(domainErr.Code))
		return
	}

	log.Error().Err(err).Msg("unhandled error")
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case "BAD_REQUEST", "INVALID_CONTRACT_TERMS", "INSUFFICIENT_FUNDS",
		"ROSTER_LIMIT_EXCEEDED", "PLAYER_NOT_ASSIGNED":
		return http.StatusBadRequest
	case "PLAYER_ALREADY_ASSIGNED", "TEAM_EXISTS", "USER_EXISTS":
		return http.StatusConflict
	case "NOT_FOUND":
		return http.StatusNotFound
	case "INVALID_CREDENTIALS", "TOKEN_INVALID", "TOKEN_EXPIRED", "TOKEN_REVOKED":
		return http.StatusUnauthorized
	case "FORBIDDEN", "ACCOUNT_INACTIVE":
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
