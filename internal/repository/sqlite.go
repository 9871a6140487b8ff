package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jmercer/awardpool/internal/models"
)

// Repository provides data access methods
type Repository struct {
	db *sql.DB
}

// New creates a new Repository
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}

	// SQLite works best with a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	repo := &Repository{db: db}

	if err := repo.migrate(); err != nil {
		return nil, err
	}

	return repo, nil
}

// DB returns the underlying database connection (for transactions)
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Close closes the database connection
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// migrate runs database migrations
func (r *Repository) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS participants (
			identity TEXT PRIMARY KEY,
			display_name TEXT NOT NULL,
			locked BOOLEAN DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS predictions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			identity TEXT NOT NULL,
			category TEXT NOT NULL,
			nominee TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(identity, category)
		)`,
		`CREATE TABLE IF NOT EXISTS winners (
			category TEXT PRIMARY KEY,
			nominee TEXT NOT NULL,
			announced_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_predictions_identity ON predictions(identity)`,
		`CREATE INDEX IF NOT EXISTS idx_predictions_category ON predictions(category)`,
	}

	additionalMigrations := []string{
		`ALTER TABLE participants ADD COLUMN locked BOOLEAN DEFAULT 0`,
	}

	for _, migration := range migrations {
		if _, err := r.db.Exec(migration); err != nil {
			return err
		}
	}

	for _, migration := range additionalMigrations {
		r.db.Exec(migration) // Ignore errors - columns may already exist
	}

	return nil
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// ==================== Participant Methods ====================

// GetParticipant retrieves a participant by identity
func (r *Repository) GetParticipant(ctx context.Context, identity string) (*models.Participant, error) {
	var p models.Participant
	err := r.db.QueryRowContext(ctx,
		`SELECT identity, display_name, locked FROM participants WHERE identity = ?`,
		identity).Scan(&p.Identity, &p.DisplayName, &p.Locked)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &p, nil
}

// UpsertParticipant creates a participant row or refreshes its display name
func (r *Repository) UpsertParticipant(ctx context.Context, identity, displayName string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO participants (identity, display_name)
		VALUES (?, ?)
		ON CONFLICT(identity) DO UPDATE SET
			display_name = excluded.display_name
	`, identity, displayName)
	if err != nil {
		return storeErr(err)
	}
	return nil
}

// SetParticipantLocked updates the server-side locked flag for an identity
func (r *Repository) SetParticipantLocked(ctx context.Context, identity string, locked bool) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE participants SET locked = ? WHERE identity = ?`, locked, identity)
	if err != nil {
		return storeErr(err)
	}
	return nil
}

// ==================== Prediction Methods ====================

// LoadPredictions returns all predictions for an identity keyed by category
func (r *Repository) LoadPredictions(ctx context.Context, identity string) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category, nominee FROM predictions WHERE identity = ?`, identity)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	predictions := make(map[string]string)
	for rows.Next() {
		var category, nominee string
		if err := rows.Scan(&category, &nominee); err != nil {
			return nil, storeErr(err)
		}
		predictions[category] = nominee
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return predictions, nil
}

// UpsertPrediction saves or replaces an identity's pick for a category
func (r *Repository) UpsertPrediction(ctx context.Context, identity, category, nominee string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO predictions (identity, category, nominee, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(identity, category) DO UPDATE SET
			nominee = excluded.nominee,
			created_at = excluded.created_at
	`, identity, category, nominee, time.Now())
	if err != nil {
		return storeErr(err)
	}
	return nil
}

// DeletePredictions removes all predictions for an identity
func (r *Repository) DeletePredictions(ctx context.Context, identity string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM predictions WHERE identity = ?`, identity)
	if err != nil {
		return storeErr(err)
	}
	return nil
}

// CountPredictions returns the number of picks saved for an identity
func (r *Repository) CountPredictions(ctx context.Context, identity string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM predictions WHERE identity = ?`, identity).Scan(&count)
	if err != nil {
		return 0, storeErr(err)
	}
	return count, nil
}

// ==================== Winner Methods ====================

// LoadWinners returns all announced winners keyed by category
func (r *Repository) LoadWinners(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT category, nominee FROM winners`)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	winners := make(map[string]string)
	for rows.Next() {
		var category, nominee string
		if err := rows.Scan(&category, &nominee); err != nil {
			return nil, storeErr(err)
		}
		winners[category] = nominee
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return winners, nil
}

// ListWinners returns all announced winners with timestamps, newest first
func (r *Repository) ListWinners(ctx context.Context) ([]models.Winner, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category, nominee, announced_at FROM winners ORDER BY announced_at DESC`)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	var winners []models.Winner
	for rows.Next() {
		var w models.Winner
		if err := rows.Scan(&w.Category, &w.Nominee, &w.AnnouncedAt); err != nil {
			return nil, storeErr(err)
		}
		winners = append(winners, w)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return winners, nil
}

// UpsertWinner records or replaces the announced winner for a category.
// Returns true when the category had no winner before (insert vs update).
func (r *Repository) UpsertWinner(ctx context.Context, category, nominee string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM winners WHERE category = ?)`, category).Scan(&exists)
	if err != nil {
		return false, storeErr(err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO winners (category, nominee, announced_at)
		VALUES (?, ?, ?)
		ON CONFLICT(category) DO UPDATE SET
			nominee = excluded.nominee,
			announced_at = excluded.announced_at
	`, category, nominee, time.Now())
	if err != nil {
		return false, storeErr(err)
	}
	return !exists, nil
}

// DeleteWinner removes the announced winner for a category
func (r *Repository) DeleteWinner(ctx context.Context, category string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM winners WHERE category = ?`, category)
	if err != nil {
		return storeErr(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return storeErr(err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
