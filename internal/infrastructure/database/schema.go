package database

import (
	"context"
	"fmt"
)

// schema is the idempotent DDL bootstrap. profile_data and about_me are
// true singletons (id fixed to 1), and skill_categories carries the
// UNIQUE(user_id, name) constraint the find-or-create path relies on.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS profile_data (
		id                 SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		greeting           TEXT NOT NULL DEFAULT '',
		name               TEXT NOT NULL DEFAULT '',
		title              TEXT NOT NULL DEFAULT '',
		description        TEXT NOT NULL DEFAULT '',
		image              TEXT NOT NULL DEFAULT '',
		image_alt          TEXT NOT NULL DEFAULT '',
		available_for_work BOOLEAN NOT NULL DEFAULT false,
		github_url         TEXT NOT NULL DEFAULT '',
		linkedin_url       TEXT NOT NULL DEFAULT '',
		updated_by         TEXT NOT NULL DEFAULT 'admin',
		updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS about_me (
		id          SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		title       TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		bio         TEXT NOT NULL DEFAULT '',
		location    TEXT NOT NULL DEFAULT '',
		email       TEXT NOT NULL DEFAULT '',
		phone       TEXT NOT NULL DEFAULT '',
		linkedin    TEXT NOT NULL DEFAULT '',
		github      TEXT NOT NULL DEFAULT '',
		twitter     TEXT NOT NULL DEFAULT '',
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS blog_posts (
		id         BIGSERIAL PRIMARY KEY,
		title      TEXT NOT NULL,
		excerpt    TEXT NOT NULL DEFAULT '',
		content    TEXT NOT NULL DEFAULT '',
		author     TEXT NOT NULL DEFAULT '',
		category   TEXT NOT NULL DEFAULT '',
		tags       TEXT[] NOT NULL DEFAULT '{}',
		image      TEXT NOT NULL DEFAULT '',
		read_time  TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id           BIGSERIAL PRIMARY KEY,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		image        TEXT NOT NULL DEFAULT '',
		tags         TEXT[] NOT NULL DEFAULT '{}',
		status       TEXT NOT NULL DEFAULT 'NEW',
		github       TEXT NOT NULL DEFAULT '',
		demo         TEXT NOT NULL DEFAULT '',
		technologies TEXT[] NOT NULL DEFAULT '{}',
		features     TEXT[] NOT NULL DEFAULT '{}',
		"order"      INT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS skill_categories (
		id      BIGSERIAL PRIMARY KEY,
		name    TEXT NOT NULL,
		user_id BIGINT NOT NULL DEFAULT 1,
		"order" INT NOT NULL DEFAULT 0,
		UNIQUE (user_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS skills (
		id          BIGSERIAL PRIMARY KEY,
		name        TEXT NOT NULL,
		category_id BIGINT NOT NULL REFERENCES skill_categories(id) ON DELETE RESTRICT,
		icon        TEXT NOT NULL DEFAULT '',
		"order"     INT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS certifications (
		id             BIGSERIAL PRIMARY KEY,
		title          TEXT NOT NULL,
		issuer         TEXT NOT NULL DEFAULT '',
		date           TEXT NOT NULL DEFAULT '',
		description    TEXT NOT NULL DEFAULT '',
		image          TEXT NOT NULL DEFAULT '',
		credential_url TEXT NOT NULL DEFAULT '',
		"order"        INT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS education (
		id           BIGSERIAL PRIMARY KEY,
		degree       TEXT NOT NULL,
		institution  TEXT NOT NULL DEFAULT '',
		period       TEXT NOT NULL DEFAULT '',
		description  TEXT NOT NULL DEFAULT '',
		achievements TEXT[] NOT NULL DEFAULT '{}',
		"order"      INT NOT NULL DEFAULT 0
	)`,
}

// EnsureSchema applies the bootstrap DDL. Safe to run on every startup.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for _, stmt := range schema {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}
