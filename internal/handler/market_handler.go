package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gbellini/fantamarket/internal/domain"
	"github.com/gbellini/fantamarket/internal/service"
)

func (h *Handler) AssignPlayer(w http.ResponseWriter, r *http.Request) {
	var req AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	result, err := h.marketService.AssignPlayer(r.Context(), service.AssignPlayerRequest{
		PlayerID:      req.PlayerID,
		TeamID:        req.TeamID,
		Price:         req.Price,
		ContractYears: req.ContractYears,
		Option:        req.Option,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainAssignmentToHTTP(result))
}

func (h *Handler) UnassignPlayer(w http.ResponseWriter, r *http.Request) {
	var req UnassignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	player, err := h.marketService.ReleasePlayer(r.Context(), req.PlayerID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainPlayerToHTTP(player))
}

func (h *Handler) TransferPlayer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	result, err := h.marketService.TransferPlayer(r.Context(), service.TransferPlayerRequest{
		PlayerID:   req.PlayerID,
		FromTeamID: req.FromTeamID,
		ToTeamID:   req.ToTeamID,
		Price:      req.Price,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainAssignmentToHTTP(result))
}

func (h *Handler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	names, err := h.marketService.GetNameSuggestions(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}

	writeJSON(w, http.StatusOK, SuggestionsResponse{Suggestions: names})
}

func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.marketService.GetMarketStatistics(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainStatisticsToHTTP(stats))
}
