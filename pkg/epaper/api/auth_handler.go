package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/presslayer/epaper-studio/pkg/epaper"
)

// AuthHandler handles the mock sign-in flow and edit session state
type AuthHandler struct {
	service epaper.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service epaper.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// Routes returns the routes for authentication and sessions
func (h *AuthHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(RequireUser)
		r.Post("/logout", h.Logout)
		r.Get("/me", h.Me)
		r.Post("/session/edition/{editionID}", h.OpenEdition)
		r.Post("/session/page/{pageID}", h.SelectPage)
	})

	return r
}

// Login accepts an email/role pair and mints a session token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req epaper.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, err.Error())
		return
	}

	session, err := h.service.Login(r.Context(), req)
	if err != nil {
		slog.Error("Login failed", "email", req.Email, "error", err)
		writeError(w, r, err)
		return
	}

	slog.Info("User logged in", "email", req.Email, "role", req.Role)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, session)
}

// Logout drops the session for the presented token
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context(), CurrentToken(r)); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the current session, including the open edition and page
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.CurrentSession(r.Context(), CurrentToken(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, session)
}

// OpenEdition points the session at an edition and its first page
func (h *AuthHandler) OpenEdition(w http.ResponseWriter, r *http.Request) {
	editionID := chi.URLParam(r, "editionID")

	session, err := h.service.OpenEdition(r.Context(), CurrentToken(r), editionID)
	if err != nil {
		slog.Error("Failed to open edition", "edition_id", editionID, "error", err)
		writeError(w, r, err)
		return
	}

	slog.Info("Edition opened", "edition_id", editionID, "user", session.User.Name)
	render.JSON(w, r, session)
}

// SelectPage points the session at a page of the open edition
func (h *AuthHandler) SelectPage(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")

	session, err := h.service.SelectPage(r.Context(), CurrentToken(r), pageID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.JSON(w, r, session)
}
