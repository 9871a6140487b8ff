package handlers

import (
	"github.com/jmercer/awardpool/internal/auth"
	"github.com/jmercer/awardpool/internal/catalog"
	"github.com/jmercer/awardpool/internal/identity"
	"github.com/jmercer/awardpool/internal/services"
	"github.com/jmercer/awardpool/internal/websocket"
)

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Sessions services.SessionServicer
	Winners  services.WinnerServicer
	Catalog  *catalog.Catalog
	Provider identity.Provider
	Store    *identity.SessionStore
	Auth     *auth.Auth
	Hub      *websocket.Hub
	Log      HTTPLogger

	// JoinURL is the address participants open to join the party,
	// rendered as a QR code on the admin console.
	JoinURL string
}

// HTTPLogger is an interface for loggers that support HTTP logging control
type HTTPLogger interface {
	IsHTTPLoggingEnabled() bool
}

// New creates a new Handlers instance with all dependencies
func New(
	sessions services.SessionServicer,
	winners services.WinnerServicer,
	cat *catalog.Catalog,
	provider identity.Provider,
	store *identity.SessionStore,
	adminAuth *auth.Auth,
	hub *websocket.Hub,
	log HTTPLogger,
	joinURL string,
) *Handlers {
	return &Handlers{
		Sessions: sessions,
		Winners:  winners,
		Catalog:  cat,
		Provider: provider,
		Store:    store,
		Auth:     adminAuth,
		Hub:      hub,
		Log:      log,
		JoinURL:  joinURL,
	}
}

// NoopHTTPLogger is a test logger that always returns false for HTTP logging
type NoopHTTPLogger struct{}

func (NoopHTTPLogger) IsHTTPLoggingEnabled() bool { return false }
