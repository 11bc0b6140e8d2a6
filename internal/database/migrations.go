package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// These tables deliberately impose nothing beyond primary keys; duplicate
// prevention and rating bounds stay application-level checks.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		name TEXT NOT NULL,
		picture TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		session_token TEXT NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_token ON sessions (session_token)`,
	`CREATE TABLE IF NOT EXISTS shows (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		catalog_id BIGINT NOT NULL,
		name TEXT NOT NULL,
		image_url TEXT,
		genres TEXT[] NOT NULL DEFAULT '{}',
		rating DOUBLE PRECISION,
		user_rating DOUBLE PRECISION,
		premiered TEXT,
		status TEXT,
		summary TEXT,
		added_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_shows_user ON shows (user_id)`,
	`CREATE TABLE IF NOT EXISTS episodes (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		show_id TEXT NOT NULL,
		catalog_episode_id BIGINT NOT NULL,
		season INT NOT NULL,
		number INT NOT NULL,
		name TEXT NOT NULL,
		airdate TEXT,
		airstamp TEXT,
		runtime INT,
		summary TEXT,
		watched BOOLEAN NOT NULL DEFAULT FALSE,
		watched_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_episodes_show ON episodes (show_id, user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_episodes_upcoming ON episodes (user_id, airdate)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		show_id TEXT NOT NULL,
		show_name TEXT NOT NULL,
		episode_name TEXT NOT NULL,
		season INT NOT NULL,
		episode_number INT NOT NULL,
		airdate TEXT NOT NULL,
		message TEXT NOT NULL,
		read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications (user_id, created_at DESC)`,
}

// Migrate applies the idempotent schema statements in order.
func (db *DB) Migrate(ctx context.Context) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	log.Info().Int("statements", len(migrations)).Msg("database migrations applied")
	return nil
}
