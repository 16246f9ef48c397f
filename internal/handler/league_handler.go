package handler

import "net/http"

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	leagues, err := h.leagueService.ListLeagues(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	out := make([]LeagueResponse, 0, len(leagues))
	for i := range leagues {
		out = append(out, domainLeagueToHTTP(&leagues[i]))
	}

	writeJSON(w, http.StatusOK, LeaguesListResponse{Leagues: out, Total: len(out)})
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	detail, err := h.leagueService.GetLeague(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, LeagueDetailResponse{
		LeagueResponse: domainLeagueToHTTP(&detail.League),
		Teams:          domainTeamsToHTTP(detail.Teams),
	})
}
