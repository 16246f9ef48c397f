package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gbellini/fantamarket/internal/domain"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, TeamsListResponse{
		Teams: domainTeamsToHTTP(teams),
		Total: len(teams),
	})
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	team, err := h.teamService.GetTeam(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	team := &domain.Team{Name: req.Name, Cash: req.Cash, LeagueID: req.LeagueID}
	created, err := h.teamService.CreateTeam(r.Context(), team)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainTeamToHTTP(created))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req TeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	team := &domain.Team{ID: id, Name: req.Name, Cash: req.Cash, LeagueID: req.LeagueID}
	updated, err := h.teamService.UpdateTeam(r.Context(), team)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(updated))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.teamService.DeleteTeam(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetTeamPlayers(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	players, err := h.teamService.GetTeamPlayers(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PlayersListResponse{
		Players: domainPlayersToHTTP(players),
		Total:   len(players),
	})
}
