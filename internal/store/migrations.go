package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates the initial tables and indexes. Reports are append-only:
// one row per analysis run, never updated in place.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS conversations (
			id         TEXT PRIMARY KEY,
			title      TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			analyzed   BOOLEAN NOT NULL DEFAULT false
		)`,

		`CREATE TABLE IF NOT EXISTS messages (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			conversation_id TEXT NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
			seq             INTEGER NOT NULL,
			sender          TEXT NOT NULL,
			text            TEXT NOT NULL,
			timestamp       TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS reports (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			conversation_id    TEXT NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
			created_at         TEXT NOT NULL,
			clarity_score      REAL NOT NULL,
			relevance_score    REAL NOT NULL,
			accuracy_score     REAL NOT NULL,
			completeness_score REAL NOT NULL,
			sentiment          TEXT NOT NULL,
			empathy_score      REAL NOT NULL,
			response_time_avg  REAL NOT NULL,
			resolution         TEXT NOT NULL,
			escalation_need    TEXT NOT NULL,
			fallback_frequency INTEGER NOT NULL,
			fallback_rate      REAL NOT NULL,
			overall_score      REAL NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_messages_conversation ON messages(conversation_id, seq)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_conversation ON reports(conversation_id)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_created ON reports(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_conversations_analyzed ON conversations(analyzed)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
