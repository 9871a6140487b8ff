package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// conditionalHTTPLogger only logs HTTP requests when HTTP logging is enabled
func (h *Handlers) conditionalHTTPLogger(next http.Handler) http.Handler {
	logger := middleware.Logger(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Log != nil && h.Log.IsHTTPLoggingEnabled() {
			logger.ServeHTTP(w, r)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.conditionalHTTPLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)
	r.Use(middleware.Timeout(60 * time.Second))

	// WebSocket
	r.Get("/ws", h.Hub.ServeWs)

	// Participant session
	r.Post("/api/session", h.handleSignIn)
	r.Get("/api/session", h.handleWhoAmI)
	r.Delete("/api/session", h.handleSignOut)

	// Game (requires a participant session)
	r.Get("/api/catalog", h.handleGetCatalog)
	r.Get("/api/state", h.handleGetState)
	r.Post("/api/predictions", h.handleSelectNominee)
	r.Post("/api/lock", h.handleLock)
	r.Post("/api/reset", h.handleReset)

	// Admin auth (public)
	r.Post("/api/admin/login", h.handleAdminLogin)
	r.Post("/api/admin/logout", h.handleAdminLogout)

	// Admin API (protected)
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.RequireAuthAPI)

		r.Get("/api/admin/winners", h.handleGetWinners)
		r.Put("/api/admin/winners/{categoryID}", h.handleSetWinner)
		r.Delete("/api/admin/winners/{categoryID}", h.handleRemoveWinner)
		r.Get("/api/admin/join-qr", h.handleJoinQR)
	})

	return r
}
