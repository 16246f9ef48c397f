package handler

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/gbellini/fantamarket/internal/domain"
	"github.com/gbellini/fantamarket/internal/service"
)

const indexPageSize = 20

// indexData feeds the market index template.
type indexData struct {
	Query          string
	SelectedRole   string
	FreeAgentsOnly bool
	Players        []domain.Player
	Total          int
	Page           int
	TotalPages     int
	Suggestions    []string
	Summaries      []domain.TeamSummary
	Roles          []domain.Role
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}

	filter := domain.PlayerFilter{
		Query:          q.Get("q"),
		FreeAgentsOnly: q.Get("free_agents") == "on",
		Limit:          indexPageSize,
		Offset:         (page - 1) * indexPageSize,
	}
	roleParam := q.Get("role")
	if role, ok := domain.ParseRole(roleParam); ok {
		filter.Roles = []domain.Role{role}
	}

	players, total, err := h.marketService.SearchPlayers(r.Context(), filter)
	if err != nil {
		h.handleWebError(w, err)
		return
	}

	summaries, err := h.marketService.GetTeamSummaries(r.Context())
	if err != nil {
		h.handleWebError(w, err)
		return
	}

	// Offer spelling help when a search comes back nearly empty.
	var suggestions []string
	if filter.Query != "" && total < 3 {
		suggestions, err = h.marketService.GetNameSuggestions(r.Context(), filter.Query)
		if err != nil {
			h.handleWebError(w, err)
			return
		}
	}

	totalPages := (total + indexPageSize - 1) / indexPageSize
	data := indexData{
		Query:          filter.Query,
		SelectedRole:   roleParam,
		FreeAgentsOnly: filter.FreeAgentsOnly,
		Players:        players,
		Total:          total,
		Page:           page,
		TotalPages:     totalPages,
		Suggestions:    suggestions,
		Summaries:      summaries,
		Roles:          domain.Roles(),
	}
	h.render(w, "index.html", data)
}

// AssignPlayerForm handles the legacy form post. Field names match the
// original UI: id, squadra, costo, anni_contratto, opzione.
func (h *Handler) AssignPlayerForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.handleWebError(w, domain.NewValidationError("invalid form data"))
		return
	}

	playerID, err := strconv.Atoi(r.PostFormValue("id"))
	if err != nil {
		h.handleWebError(w, domain.NewValidationError("invalid player id"))
		return
	}
	price, err := strconv.ParseFloat(r.PostFormValue("costo"), 64)
	if err != nil {
		h.handleWebError(w, domain.NewValidationError("invalid price"))
		return
	}
	years, err := strconv.Atoi(r.PostFormValue("anni_contratto"))
	if err != nil {
		h.handleWebError(w, domain.NewValidationError("invalid contract years"))
		return
	}

	_, err = h.marketService.AssignPlayer(r.Context(), service.AssignPlayerRequest{
		PlayerID:      playerID,
		TeamName:      r.PostFormValue("squadra"),
		Price:         price,
		ContractYears: years,
		Option:        r.PostFormValue("opzione") == "on",
	})
	if err != nil {
		h.handleWebError(w, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) TeamPage(w http.ResponseWriter, r *http.Request) {
	roster, err := h.marketService.GetTeamRoster(r.Context(), r.PathValue("team_name"))
	if err != nil {
		h.handleWebError(w, err)
		return
	}

	h.render(w, "team.html", struct {
		Roster *domain.TeamRoster
		Roles  []domain.Role
	}{roster, domain.Roles()})
}

func (h *Handler) Rosters(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		h.handleWebError(w, err)
		return
	}

	rosters := make([]*domain.TeamRoster, 0, len(teams))
	for _, team := range teams {
		roster, err := h.marketService.GetTeamRoster(r.Context(), team.Name)
		if err != nil {
			h.handleWebError(w, err)
			return
		}
		rosters = append(rosters, roster)
	}

	h.render(w, "rosters.html", struct {
		Rosters []*domain.TeamRoster
		Roles   []domain.Role
	}{rosters, domain.Roles()})
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("template render failed")
	}
}
