package database

import (
	"context"
	"fmt"
	"log"
)

// Schema bootstrap. The user table is a pre-existing system of record on
// campus deployments, but local and test environments need it created the
// same way, so every statement is CREATE TABLE IF NOT EXISTS.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id  VARCHAR(10)  PRIMARY KEY,
		password VARCHAR(255) NOT NULL,
		username VARCHAR(100),
		email    VARCHAR(255)
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		item_id      BIGSERIAL PRIMARY KEY,
		item_type    VARCHAR(10)  NOT NULL CHECK (item_type IN ('LOST', 'FOUND')),
		title        VARCHAR(255) NOT NULL,
		description  TEXT,
		location     VARCHAR(255),
		item_date    DATE         NOT NULL,
		contact_info VARCHAR(255) NOT NULL,
		image_url    VARCHAR(255),
		status       VARCHAR(10)  NOT NULL DEFAULT 'ACTIVE' CHECK (status IN ('ACTIVE', 'RESOLVED')),
		posted_by    VARCHAR(10)  NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		posted_at    TIMESTAMPTZ  NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS item_images (
		image_id    BIGSERIAL    PRIMARY KEY,
		user_id     VARCHAR(10)  NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		image_url   VARCHAR(255) NOT NULL,
		uploaded_at TIMESTAMPTZ  NOT NULL DEFAULT now()
	)`,
}

// Migrate creates the schema if it does not exist yet.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for _, stmt := range migrations {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema migration failed: %w", err)
		}
	}

	log.Println("[DATABASE] Schema is up to date")
	return nil
}
