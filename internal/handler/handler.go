package handler

import (
	"html/template"

	"github.com/gbellini/fantamarket/internal/service"
)

type Handler struct {
	marketService service.MarketService
	teamService   service.TeamService
	playerService service.PlayerService
	leagueService service.LeagueService
	authService   service.AuthService
	templates     *template.Template
}

func NewHandler(
	marketService service.MarketService,
	teamService service.TeamService,
	playerService service.PlayerService,
	leagueService service.LeagueService,
	authService service.AuthService,
) *Handler {
	return &Handler{
		marketService: marketService,
		teamService:   teamService,
		playerService: playerService,
		leagueService: leagueService,
		authService:   authService,
		templates:     mustParseTemplates(),
	}
}
