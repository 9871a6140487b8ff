package repository

import (
	"context"

	"github.com/jmercer/awardpool/internal/models"
)

// ParticipantRepository defines participant data operations
type ParticipantRepository interface {
	GetParticipant(ctx context.Context, identity string) (*models.Participant, error)
	UpsertParticipant(ctx context.Context, identity, displayName string) error
	SetParticipantLocked(ctx context.Context, identity string, locked bool) error
}

// PredictionRepository defines prediction data operations
type PredictionRepository interface {
	LoadPredictions(ctx context.Context, identity string) (map[string]string, error)
	UpsertPrediction(ctx context.Context, identity, category, nominee string) error
	DeletePredictions(ctx context.Context, identity string) error
	CountPredictions(ctx context.Context, identity string) (int, error)
}

// WinnerRepository defines winner data operations
type WinnerRepository interface {
	LoadWinners(ctx context.Context) (map[string]string, error)
	ListWinners(ctx context.Context) ([]models.Winner, error)
	UpsertWinner(ctx context.Context, category, nominee string) (created bool, err error)
	DeleteWinner(ctx context.Context, category string) error
}

// FullRepository combines all repository interfaces
// Use this when a service needs access to multiple domains
type FullRepository interface {
	ParticipantRepository
	PredictionRepository
	WinnerRepository
}

// Ensure Repository implements all interfaces
var _ FullRepository = (*Repository)(nil)
