package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gbellini/fantamarket/internal/domain"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	filter := playerFilterFromQuery(r)

	players, total, err := h.marketService.SearchPlayers(r.Context(), filter)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PlayersListResponse{
		Players: domainPlayersToHTTP(players),
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	})
}

func playerFilterFromQuery(r *http.Request) domain.PlayerFilter {
	q := r.URL.Query()

	filter := domain.PlayerFilter{
		Query:          q.Get("q"),
		RealTeam:       q.Get("real_team"),
		FreeAgentsOnly: q.Get("free_agents") == "true",
	}

	for _, code := range strings.Split(q.Get("role"), ",") {
		if role, ok := domain.ParseRole(strings.TrimSpace(code)); ok {
			filter.Roles = append(filter.Roles, role)
		}
	}

	if v, err := strconv.ParseFloat(q.Get("min_cost"), 64); err == nil {
		filter.MinCost = &v
	}
	if v, err := strconv.ParseFloat(q.Get("max_cost"), 64); err == nil {
		filter.MaxCost = &v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		filter.Limit = v
	}
	if v, err := strconv.Atoi(q.Get("offset")); err == nil {
		filter.Offset = v
	}
	return filter
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	player, err := h.playerService.GetPlayer(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainPlayerToHTTP(player))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req PlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	player := &domain.Player{
		Name:      req.Name,
		Role:      domain.Role(req.Role),
		RealTeam:  req.RealTeam,
		IsInjured: req.IsInjured,
	}
	created, err := h.playerService.CreatePlayer(r.Context(), player)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainPlayerToHTTP(created))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req PlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	player := &domain.Player{
		ID:        id,
		Name:      req.Name,
		Role:      domain.Role(req.Role),
		RealTeam:  req.RealTeam,
		IsInjured: req.IsInjured,
	}
	updated, err := h.playerService.UpdatePlayer(r.Context(), player)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainPlayerToHTTP(updated))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.playerService.DeletePlayer(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("invalid " + name)
	}
	return id, nil
}
