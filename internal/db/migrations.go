package db

import (
	"database/sql"
	"fmt"
)

// migrations is an ordered list of SQL migration statements.
// Each entry is applied once in order. New migrations are appended at the end.
var migrations = []string{
	// Migration 0: initial schema
	`CREATE TABLE IF NOT EXISTS conversations (
		id                  TEXT PRIMARY KEY,
		student_id          TEXT NOT NULL,
		agent_type          TEXT NOT NULL,
		topic               TEXT NOT NULL DEFAULT 'general',
		user_message        TEXT NOT NULL,
		agent_response      TEXT NOT NULL,
		emotion             TEXT NOT NULL DEFAULT '{}',
		understanding_level REAL NOT NULL DEFAULT 5.0,
		created_at          DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS goals (
		student_id     TEXT NOT NULL,
		goal_id        INTEGER NOT NULL,
		title          TEXT NOT NULL,
		description    TEXT,
		created_date   DATETIME NOT NULL,
		target_date    DATETIME NOT NULL,
		progress       REAL NOT NULL DEFAULT 0,
		status         TEXT NOT NULL DEFAULT 'active',
		category       TEXT NOT NULL DEFAULT 'learning',
		last_updated   DATETIME,
		completed_date DATETIME,
		PRIMARY KEY (student_id, goal_id)
	)`,

	`CREATE TABLE IF NOT EXISTS achievements (
		id            TEXT PRIMARY KEY,
		student_id    TEXT NOT NULL,
		title         TEXT NOT NULL,
		description   TEXT,
		icon          TEXT,
		points        INTEGER NOT NULL DEFAULT 0,
		unlocked_date DATETIME NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_conversations_student ON conversations(student_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_goals_student         ON goals(student_id)`,
	`CREATE INDEX IF NOT EXISTS idx_achievements_student  ON achievements(student_id)`,
}

// applyMigrations runs any migrations that have not yet been applied.
func applyMigrations(conn *sql.DB) error {
	// Ensure the migration tracking table exists first.
	if _, err := conn.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version    INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for i, stmt := range migrations {
		var count int
		row := conn.QueryRow(`SELECT COUNT(*) FROM schema_migrations WHERE version = ?`, i)
		if err := row.Scan(&count); err != nil {
			return fmt.Errorf("check migration %d: %w", i, err)
		}
		if count > 0 {
			continue
		}

		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("apply migration %d: %w", i, err)
		}

		if _, err := conn.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, i); err != nil {
			return fmt.Errorf("record migration %d: %w", i, err)
		}
	}

	return nil
}
