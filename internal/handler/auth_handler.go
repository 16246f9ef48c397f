package handler

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/gbellini/fantamarket/internal/domain"
	"github.com/gbellini/fantamarket/internal/middleware"
	"github.com/gbellini/fantamarket/internal/service"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	tokens, err := h.authService.Register(r.Context(), service.RegisterRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}, clientInfo(r))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, authTokensToHTTP(tokens))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	tokens, err := h.authService.Login(r.Context(), req.Username, req.Password, clientInfo(r))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, authTokensToHTTP(tokens))
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	tokens, err := h.authService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, authTokensToHTTP(tokens))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		h.handleError(w, domain.ErrTokenInvalid)
		return
	}

	if err := h.authService.Logout(r.Context(), parts[1]); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		h.handleError(w, domain.ErrTokenInvalid)
		return
	}

	user, err := h.authService.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainUserToHTTP(user))
}

// clientInfo records the caller for the session row. RemoteAddr carries a
// port; the session stores the bare IP.
func clientInfo(r *http.Request) service.ClientInfo {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	return service.ClientInfo{
		IPAddress: ip,
		UserAgent: r.UserAgent(),
	}
}
