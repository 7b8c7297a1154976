package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upInitSchema, downInitSchema)
}

func upInitSchema(ctx context.Context, tx *sql.Tx) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username VARCHAR(20) NOT NULL UNIQUE,
			first_name VARCHAR(20) NOT NULL,
			last_name VARCHAR(20) NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(16) NOT NULL DEFAULT 'USER' CHECK (role IN ('USER', 'ADMIN')),
			account_creation_date TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS teams (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(20) NOT NULL UNIQUE,
			description VARCHAR(30) NOT NULL,
			team_creation_date TIMESTAMPTZ NOT NULL DEFAULT now(),
			team_leader_id BIGINT REFERENCES users(id) ON DELETE SET NULL
		)`,
		`CREATE TABLE IF NOT EXISTS team_users (
			team_id BIGINT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			PRIMARY KEY (team_id, user_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_team_users_user_id ON team_users (user_id)`,
		`CREATE TABLE IF NOT EXISTS plan_entries (
			id BIGSERIAL PRIMARY KEY,
			title VARCHAR(20) NOT NULL,
			start_time TIMESTAMPTZ NOT NULL,
			end_time TIMESTAMPTZ NOT NULL,
			color VARCHAR(8) NOT NULL CHECK (color IN ('RED', 'GREEN', 'BLUE')),
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			team_id BIGINT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
			CHECK (end_time >= start_time)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_plan_entries_team_user ON plan_entries (team_id, user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_plan_entries_start_time ON plan_entries (start_time)`,
	}

	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}

func downInitSchema(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE IF EXISTS plan_entries;
	DROP TABLE IF EXISTS team_users;
	DROP TABLE IF EXISTS teams;
	DROP TABLE IF EXISTS users;
	`)
	return err
}
