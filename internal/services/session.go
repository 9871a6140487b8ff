package services

import (
	"context"
	"sync"

	"github.com/jmercer/awardpool/internal/catalog"
	"github.com/jmercer/awardpool/internal/clock"
	"github.com/jmercer/awardpool/internal/identity"
	"github.com/jmercer/awardpool/internal/logger"
	"github.com/jmercer/awardpool/internal/models"
	"github.com/jmercer/awardpool/internal/repository"
	"github.com/jmercer/awardpool/internal/winnerfeed"
)

// Session holds one participant's live game state. The store is best-effort:
// the in-memory state is authoritative for the session's lifetime, and store
// failures never surface to the participant.
type Session struct {
	log     logger.Logger
	repo    repository.FullRepository
	catalog *catalog.Catalog
	lockout *clock.Lockout

	identity identity.Identity
	sub      *winnerfeed.Subscription

	mu          sync.Mutex
	predictions map[string]string
	winners     map[string]string
	locked      bool
	score       int
}

// CategoryState classifies one category for display
type CategoryState struct {
	Selected string           `json:"selected,omitempty"`
	Winner   string           `json:"winner,omitempty"`
	State    models.PickState `json:"state"`
}

// State is a point-in-time snapshot of a session
type State struct {
	Identity    identity.Identity        `json:"identity"`
	Predictions map[string]string        `json:"predictions"`
	Winners     map[string]string        `json:"winners"`
	Categories  map[string]CategoryState `json:"categories"`
	Score       int                      `json:"score"`
	Selected    int                      `json:"selected"`
	Revealed    int                      `json:"revealed"`
	Total       int                      `json:"total"`
	Locked      bool                     `json:"locked"`
	TimeLocked  bool                     `json:"time_locked"`
	RemainingMS int64                    `json:"remaining_ms"`
}

// Identity returns the participant this session belongs to
func (s *Session) Identity() identity.Identity {
	return s.identity
}

// SelectNominee records a pick for a category. The in-memory state updates
// immediately; the store write is best-effort.
func (s *Session) SelectNominee(ctx context.Context, category, nominee string) error {
	if s.lockout.Locked() {
		return ErrDeadlinePassed
	}
	if _, ok := s.catalog.Get(category); !ok {
		return ErrUnknownCategory
	}
	if !s.catalog.HasNominee(category, nominee) {
		return ErrUnknownNominee
	}

	s.mu.Lock()
	if s.locked {
		s.mu.Unlock()
		return ErrPredictionsLocked
	}
	s.predictions[category] = nominee
	s.recomputeScore()
	s.mu.Unlock()

	if err := s.repo.UpsertPrediction(ctx, s.identity.ID, category, nominee); err != nil {
		s.log.Warn("Failed to persist prediction, keeping local state",
			"identity", s.identity.ID, "category", category, "error", err)
	}
	return nil
}

// Lock freezes the session's picks. Every category must have a pick first.
func (s *Session) Lock(ctx context.Context) error {
	s.mu.Lock()
	if s.locked {
		s.mu.Unlock()
		return nil
	}
	selected := len(s.predictions)
	total := s.catalog.Total()
	if selected < total {
		s.mu.Unlock()
		return &IncompletePredictionsError{Selected: selected, Total: total}
	}
	s.locked = true
	s.mu.Unlock()

	if err := s.repo.SetParticipantLocked(ctx, s.identity.ID, true); err != nil {
		s.log.Warn("Failed to persist locked flag", "identity", s.identity.ID, "error", err)
	}

	s.log.Info("Predictions locked in", "identity", s.identity.ID, "picks", selected)
	return nil
}

// Reset wipes the session's picks and unlocks it. Refused once the
// ceremony deadline has passed.
func (s *Session) Reset(ctx context.Context) error {
	if s.lockout.Locked() {
		return ErrDeadlinePassed
	}

	if err := s.repo.DeletePredictions(ctx, s.identity.ID); err != nil {
		s.log.Warn("Failed to delete stored predictions", "identity", s.identity.ID, "error", err)
	}
	if err := s.repo.SetParticipantLocked(ctx, s.identity.ID, false); err != nil {
		s.log.Warn("Failed to clear locked flag", "identity", s.identity.ID, "error", err)
	}

	s.mu.Lock()
	s.predictions = make(map[string]string)
	s.locked = false
	s.recomputeScore()
	s.mu.Unlock()

	s.log.Info("Predictions reset", "identity", s.identity.ID)
	return nil
}

// ApplyWinnerEvent folds a winner change into the session's mirror.
// Applying the same event twice leaves the state unchanged.
func (s *Session) ApplyWinnerEvent(event winnerfeed.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch event.Kind {
	case winnerfeed.Inserted, winnerfeed.Updated:
		s.winners[event.Category] = event.Nominee
	case winnerfeed.Deleted:
		delete(s.winners, event.Category)
	}
	s.recomputeScore()
}

// Locked reports whether the participant has locked in
func (s *Session) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}

// Score returns the current number of correct predictions
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Snapshot returns a copy of the session state for rendering
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := State{
		Identity:    s.identity,
		Predictions: make(map[string]string, len(s.predictions)),
		Winners:     make(map[string]string, len(s.winners)),
		Categories:  make(map[string]CategoryState, s.catalog.Total()),
		Score:       s.score,
		Selected:    len(s.predictions),
		Revealed:    len(s.winners),
		Total:       s.catalog.Total(),
		Locked:      s.locked,
		TimeLocked:  s.lockout.Locked(),
		RemainingMS: s.lockout.Remaining().Milliseconds(),
	}
	for category, nominee := range s.predictions {
		state.Predictions[category] = nominee
	}
	for category, nominee := range s.winners {
		state.Winners[category] = nominee
	}
	for _, cat := range s.catalog.Categories() {
		state.Categories[cat.ID] = s.classify(cat.ID)
	}
	return state
}

// classify determines the display state for one category.
// Caller must hold s.mu.
func (s *Session) classify(category string) CategoryState {
	selected, hasPick := s.predictions[category]
	winner, hasWinner := s.winners[category]

	cs := CategoryState{Selected: selected, Winner: winner}
	switch {
	case hasWinner && hasPick && selected == winner:
		cs.State = models.PickCorrect
	case hasWinner && hasPick:
		cs.State = models.PickIncorrect
	case hasWinner:
		cs.State = models.PickWinner
	case hasPick:
		cs.State = models.PickSelected
	default:
		cs.State = models.PickPending
	}
	return cs
}

// recomputeScore rebuilds the score from scratch rather than patching it,
// so duplicate or reordered winner events cannot drift it.
// Caller must hold s.mu.
func (s *Session) recomputeScore() {
	score := 0
	for category, nominee := range s.predictions {
		if s.winners[category] == nominee {
			score++
		}
	}
	s.score = score
}

// consume applies feed events until the subscription is closed
func (s *Session) consume() {
	for event := range s.sub.Events() {
		s.ApplyWinnerEvent(event)
	}
}
