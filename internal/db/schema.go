package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema holds the DDL for all habitstats tables. Kept in code so that
// the seed command and the integration test suite can set a database up
// from scratch. All statements are idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS habit (
		id SERIAL PRIMARY KEY,
		user_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		type TEXT NOT NULL,
		theme JSONB NOT NULL DEFAULT '{}',
		recurrence JSONB NOT NULL DEFAULT '{}',
		metrics JSONB NOT NULL DEFAULT '[]',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS habit_entry (
		id SERIAL PRIMARY KEY,
		habit_id INTEGER NOT NULL REFERENCES habit(id) ON DELETE CASCADE,
		day DATE NOT NULL,
		value JSONB NOT NULL DEFAULT '{}',
		notes TEXT NOT NULL DEFAULT '',
		completed BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (habit_id, day)
	);`,
	`CREATE TABLE IF NOT EXISTS streak (
		habit_id INTEGER PRIMARY KEY REFERENCES habit(id) ON DELETE CASCADE,
		current INTEGER NOT NULL DEFAULT 0,
		best INTEGER NOT NULL DEFAULT 0,
		last_completed DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS achievement (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		icon TEXT NOT NULL DEFAULT '',
		criteria JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS user_achievement (
		id SERIAL PRIMARY KEY,
		user_id TEXT NOT NULL,
		achievement_id INTEGER NOT NULL REFERENCES achievement(id) ON DELETE CASCADE,
		earned_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, achievement_id)
	);`,
	`CREATE INDEX IF NOT EXISTS habit_entry_day_idx ON habit_entry (day);`,
	`CREATE INDEX IF NOT EXISTS habit_user_idx ON habit (user_id);`,
}

func ApplySchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}
	return nil
}
