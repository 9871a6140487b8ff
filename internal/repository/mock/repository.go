// Package mock provides a repository wrapper with injectable failures for
// testing error paths.
package mock

import (
	"context"

	"github.com/jmercer/awardpool/internal/models"
	"github.com/jmercer/awardpool/internal/repository"
)

// Repository wraps a real repository and lets tests force specific methods
// to fail. Methods without an injected error delegate to the wrapped store.
type Repository struct {
	repository.FullRepository

	// UpsertPredictionCalls counts writes, injected error or not
	UpsertPredictionCalls int

	GetParticipantError       error
	UpsertParticipantError    error
	SetParticipantLockedError error
	LoadPredictionsError      error
	UpsertPredictionError     error
	DeletePredictionsError    error
	CountPredictionsError     error
	LoadWinnersError          error
	ListWinnersError          error
	UpsertWinnerError         error
	DeleteWinnerError         error
}

// New creates a mock wrapping the given repository
func New(repo repository.FullRepository) *Repository {
	return &Repository{FullRepository: repo}
}

func (m *Repository) GetParticipant(ctx context.Context, identity string) (*models.Participant, error) {
	if m.GetParticipantError != nil {
		return nil, m.GetParticipantError
	}
	return m.FullRepository.GetParticipant(ctx, identity)
}

func (m *Repository) UpsertParticipant(ctx context.Context, identity, displayName string) error {
	if m.UpsertParticipantError != nil {
		return m.UpsertParticipantError
	}
	return m.FullRepository.UpsertParticipant(ctx, identity, displayName)
}

func (m *Repository) SetParticipantLocked(ctx context.Context, identity string, locked bool) error {
	if m.SetParticipantLockedError != nil {
		return m.SetParticipantLockedError
	}
	return m.FullRepository.SetParticipantLocked(ctx, identity, locked)
}

func (m *Repository) LoadPredictions(ctx context.Context, identity string) (map[string]string, error) {
	if m.LoadPredictionsError != nil {
		return nil, m.LoadPredictionsError
	}
	return m.FullRepository.LoadPredictions(ctx, identity)
}

func (m *Repository) UpsertPrediction(ctx context.Context, identity, category, nominee string) error {
	m.UpsertPredictionCalls++
	if m.UpsertPredictionError != nil {
		return m.UpsertPredictionError
	}
	return m.FullRepository.UpsertPrediction(ctx, identity, category, nominee)
}

func (m *Repository) DeletePredictions(ctx context.Context, identity string) error {
	if m.DeletePredictionsError != nil {
		return m.DeletePredictionsError
	}
	return m.FullRepository.DeletePredictions(ctx, identity)
}

func (m *Repository) CountPredictions(ctx context.Context, identity string) (int, error) {
	if m.CountPredictionsError != nil {
		return 0, m.CountPredictionsError
	}
	return m.FullRepository.CountPredictions(ctx, identity)
}

func (m *Repository) LoadWinners(ctx context.Context) (map[string]string, error) {
	if m.LoadWinnersError != nil {
		return nil, m.LoadWinnersError
	}
	return m.FullRepository.LoadWinners(ctx)
}

func (m *Repository) ListWinners(ctx context.Context) ([]models.Winner, error) {
	if m.ListWinnersError != nil {
		return nil, m.ListWinnersError
	}
	return m.FullRepository.ListWinners(ctx)
}

func (m *Repository) UpsertWinner(ctx context.Context, category, nominee string) (bool, error) {
	if m.UpsertWinnerError != nil {
		return false, m.UpsertWinnerError
	}
	return m.FullRepository.UpsertWinner(ctx, category, nominee)
}

func (m *Repository) DeleteWinner(ctx context.Context, category string) error {
	if m.DeleteWinnerError != nil {
		return m.DeleteWinnerError
	}
	return m.FullRepository.DeleteWinner(ctx, category)
}

var _ repository.FullRepository = (*Repository)(nil)
