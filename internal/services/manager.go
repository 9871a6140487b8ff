package services

import (
	"context"
	"errors"
	"sync"

	"github.com/jmercer/awardpool/internal/catalog"
	"github.com/jmercer/awardpool/internal/clock"
	"github.com/jmercer/awardpool/internal/identity"
	"github.com/jmercer/awardpool/internal/logger"
	"github.com/jmercer/awardpool/internal/repository"
	"github.com/jmercer/awardpool/internal/winnerfeed"
)

// SessionManager owns the sign-in lifecycle. One session exists per identity
// regardless of how many devices share it.
type SessionManager struct {
	log     logger.Logger
	repo    repository.FullRepository
	catalog *catalog.Catalog
	feed    *winnerfeed.Feed
	lockout *clock.Lockout

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionManager creates a new SessionManager
func NewSessionManager(log logger.Logger, repo repository.FullRepository, cat *catalog.Catalog, feed *winnerfeed.Feed, lockout *clock.Lockout) *SessionManager {
	return &SessionManager{
		log:      log,
		repo:     repo,
		catalog:  cat,
		feed:     feed,
		lockout:  lockout,
		sessions: make(map[string]*Session),
	}
}

// SignIn returns the live session for the identity, hydrating one from the
// store if needed. A broken store degrades to an empty session rather than
// failing the sign-in.
func (m *SessionManager) SignIn(ctx context.Context, id identity.Identity) (*Session, error) {
	m.mu.Lock()
	if session, ok := m.sessions[id.ID]; ok {
		m.mu.Unlock()
		return session, nil
	}
	m.mu.Unlock()

	predictions, err := m.repo.LoadPredictions(ctx, id.ID)
	if err != nil {
		m.log.Warn("Failed to load predictions, starting empty", "identity", id.ID, "error", err)
		predictions = make(map[string]string)
	}

	winners, err := m.repo.LoadWinners(ctx)
	if err != nil {
		m.log.Warn("Failed to load winners, starting empty", "identity", id.ID, "error", err)
		winners = make(map[string]string)
	}

	locked := false
	participant, err := m.repo.GetParticipant(ctx, id.ID)
	switch {
	case err == nil:
		locked = participant.Locked
	case errors.Is(err, repository.ErrNotFound):
	default:
		m.log.Warn("Failed to load participant, assuming unlocked", "identity", id.ID, "error", err)
	}

	if err := m.repo.UpsertParticipant(ctx, id.ID, id.DisplayName); err != nil {
		m.log.Warn("Failed to register participant", "identity", id.ID, "error", err)
	}

	session := &Session{
		log:         m.log,
		repo:        m.repo,
		catalog:     m.catalog,
		lockout:     m.lockout,
		identity:    id,
		predictions: predictions,
		winners:     winners,
		locked:      locked,
	}
	session.recomputeScore()

	m.mu.Lock()
	// Another device may have signed in while we were hydrating
	if existing, ok := m.sessions[id.ID]; ok {
		m.mu.Unlock()
		return existing, nil
	}
	session.sub = m.feed.Subscribe()
	m.sessions[id.ID] = session
	m.mu.Unlock()

	go session.consume()

	m.log.Info("Participant signed in", "identity", id.ID,
		"predictions", len(predictions), "winners", len(winners), "locked", locked)
	return session, nil
}

// Get returns the live session for an identity, if one exists
func (m *SessionManager) Get(identityID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[identityID]
	return session, ok
}

// SignOut tears down the identity's session and its feed subscription.
// The stored predictions survive for the next sign-in.
func (m *SessionManager) SignOut(identityID string) {
	m.mu.Lock()
	session, ok := m.sessions[identityID]
	if ok {
		delete(m.sessions, identityID)
	}
	m.mu.Unlock()

	if !ok {
		return
	}
	session.sub.Close()
	m.log.Info("Participant signed out", "identity", identityID)
}

// ActiveSessions returns the number of signed-in identities
func (m *SessionManager) ActiveSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
