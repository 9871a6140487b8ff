package services

import (
	"context"

	"github.com/jmercer/awardpool/internal/identity"
	"github.com/jmercer/awardpool/internal/models"
)

// SessionServicer defines session lifecycle operations used by handlers
type SessionServicer interface {
	SignIn(ctx context.Context, id identity.Identity) (*Session, error)
	Get(identityID string) (*Session, bool)
	SignOut(identityID string)
}

// WinnerServicer defines winner announcement operations used by handlers
type WinnerServicer interface {
	ListAll(ctx context.Context) ([]models.Winner, error)
	SetWinner(ctx context.Context, category, nominee string) error
	RemoveWinner(ctx context.Context, category string) error
}

// Broadcaster pushes messages to connected websocket clients
type Broadcaster interface {
	Broadcast(message models.WSMessage)
}

// Compile-time interface checks
var _ SessionServicer = (*SessionManager)(nil)
