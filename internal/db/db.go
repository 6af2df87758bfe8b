package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a pgx pool against the given database URL and verifies
// connectivity before returning it.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return pool, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            text PRIMARY KEY,
    role_id       text,
    assessor_id   text,
    username      text NOT NULL UNIQUE,
    password_hash text NOT NULL,
    first_name    text NOT NULL DEFAULT '',
    last_name     text NOT NULL DEFAULT '',
    is_active     boolean NOT NULL DEFAULT true,
    created_at    timestamptz NOT NULL DEFAULT NOW(),
    updated_at    timestamptz NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS roles (
    id          text PRIMARY KEY,
    code        text NOT NULL UNIQUE,
    name        text NOT NULL,
    description text NOT NULL DEFAULT '',
    created_at  timestamptz NOT NULL DEFAULT NOW(),
    updated_at  timestamptz NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS areas (
    id         text PRIMARY KEY,
    name       text NOT NULL UNIQUE,
    created_at timestamptz NOT NULL DEFAULT NOW(),
    updated_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS countries (
    id         text PRIMARY KEY,
    area_id    text NOT NULL,
    code       text NOT NULL UNIQUE,
    name       text NOT NULL,
    name_en    text NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW(),
    updated_at timestamptz NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS countries_area_id_idx ON countries (area_id);

CREATE TABLE IF NOT EXISTS companies (
    id         text PRIMARY KEY,
    name       text NOT NULL DEFAULT '',
    country_id text
);

CREATE TABLE IF NOT EXISTS sites (
    id            text PRIMARY KEY,
    code          text NOT NULL DEFAULT '',
    name          text NOT NULL DEFAULT '',
    internal_code text NOT NULL DEFAULT '',
    country_id    text,
    company_id    text,
    city          text NOT NULL DEFAULT '',
    address       text NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS activities (
    id   text PRIMARY KEY,
    code text NOT NULL DEFAULT '',
    name text NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS business_units (
    id          text PRIMARY KEY,
    name        text NOT NULL DEFAULT '',
    description text NOT NULL DEFAULT '',
    activity_id text
);

CREATE TABLE IF NOT EXISTS assessors (
    id         text PRIMARY KEY,
    first_name text NOT NULL,
    last_name  text NOT NULL,
    email      text NOT NULL UNIQUE,
    phone      text NOT NULL DEFAULT '',
    type       text NOT NULL DEFAULT '',
    is_suzuki  boolean NOT NULL DEFAULT false,
    created_at timestamptz NOT NULL DEFAULT NOW(),
    updated_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS privileges (
    id          text PRIMARY KEY,
    code        text NOT NULL,
    name        text NOT NULL,
    description text NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS user_privileges (
    id           text PRIMARY KEY,
    user_id      text NOT NULL,
    privilege_id text NOT NULL,
    UNIQUE (user_id, privilege_id)
);

CREATE TABLE IF NOT EXISTS languages (
    id   text PRIMARY KEY,
    code text NOT NULL DEFAULT '',
    name text NOT NULL DEFAULT ''
);
`

// EnsureSchema creates the tables when they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
