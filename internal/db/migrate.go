package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS predictions (
		id TEXT PRIMARY KEY,
		schema TEXT NOT NULL CHECK(schema IN ('academic','learner')),
		outcome TEXT NOT NULL CHECK(outcome IN ('distinction','pass','fail','withdrawn')),
		outcome_label TEXT NOT NULL,
		confidence REAL NOT NULL,
		source TEXT NOT NULL DEFAULT 'heuristic' CHECK(source IN ('heuristic','model')),
		raw_score REAL NOT NULL,
		persona_id INTEGER NOT NULL,
		persona_name TEXT NOT NULL,
		risk_level TEXT NOT NULL CHECK(risk_level IN ('Low','Medium','High')),
		risk_count INTEGER NOT NULL DEFAULT 0,
		result_json TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS prediction_inputs (
		prediction_id TEXT PRIMARY KEY REFERENCES predictions(id) ON DELETE CASCADE,
		schema TEXT NOT NULL,
		payload_json TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_predictions_created ON predictions(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_predictions_schema ON predictions(schema)`,
	`CREATE INDEX IF NOT EXISTS idx_predictions_risk ON predictions(risk_level)`,
}
