// Package testutil provides shared helpers for tests.
package testutil

import (
	"testing"

	"github.com/jmercer/awardpool/internal/repository"
)

// NewTestRepository creates an in-memory SQLite repository for testing.
// The repository is closed automatically when the test finishes.
func NewTestRepository(t *testing.T) *repository.Repository {
	t.Helper()

	repo, err := repository.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}

	t.Cleanup(func() {
		repo.Close()
	})

	return repo
}
