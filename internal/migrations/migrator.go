// Package migrations bootstraps the database schema at startup.
package migrations

import (
	"context"

	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	username VARCHAR(50) NOT NULL UNIQUE,
	email VARCHAR(100) NOT NULL UNIQUE,
	password VARCHAR(255) NOT NULL,
	points BIGINT NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	last_login TIMESTAMP
);

CREATE TABLE IF NOT EXISTS carbon_footprints (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL REFERENCES users(id),
	transportation DOUBLE PRECISION NOT NULL,
	energy DOUBLE PRECISION NOT NULL,
	waste DOUBLE PRECISION NOT NULL,
	total DOUBLE PRECISION NOT NULL,
	description TEXT,
	date DATE NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_carbon_footprints_user_date
	ON carbon_footprints (user_id, date DESC);

CREATE TABLE IF NOT EXISTS challenges (
	id BIGSERIAL PRIMARY KEY,
	title VARCHAR(200) NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	points BIGINT NOT NULL DEFAULT 0,
	start_date DATE NOT NULL,
	end_date DATE NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'active',
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS user_challenges (
	user_id BIGINT NOT NULL REFERENCES users(id),
	challenge_id BIGINT NOT NULL REFERENCES challenges(id),
	status VARCHAR(20) NOT NULL DEFAULT 'joined',
	progress BIGINT NOT NULL DEFAULT 0,
	joined_at TIMESTAMP NOT NULL DEFAULT NOW(),
	completed_at TIMESTAMP,
	UNIQUE (user_id, challenge_id)
);

CREATE TABLE IF NOT EXISTS community_posts (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL REFERENCES users(id),
	title VARCHAR(200) NOT NULL,
	content TEXT NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'active',
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS comments (
	id BIGSERIAL PRIMARY KEY,
	post_id BIGINT NOT NULL REFERENCES community_posts(id),
	user_id BIGINT NOT NULL REFERENCES users(id),
	content TEXT NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'active',
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS educational_content (
	id BIGSERIAL PRIMARY KEY,
	author_id BIGINT NOT NULL REFERENCES users(id),
	title VARCHAR(200) NOT NULL,
	content TEXT NOT NULL,
	category VARCHAR(50),
	status VARCHAR(20) NOT NULL DEFAULT 'published',
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS tips (
	id BIGSERIAL PRIMARY KEY,
	title VARCHAR(200) NOT NULL,
	content TEXT NOT NULL,
	category VARCHAR(50) NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'active',
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);
`

// Apply creates all tables and indexes if they do not exist yet.
func Apply(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		logger.Log.Errorw("failed to apply schema", "error", err)
		return err
	}
	return nil
}
