package postgres

import (
	"context"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/friendsofgo/errors"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS "users" (
		"user_id"       TEXT PRIMARY KEY,
		"email"         TEXT,
		"display_name"  TEXT,
		"first_name"    TEXT,
		"last_name"     TEXT,
		"creation_date" TIMESTAMPTZ NOT NULL DEFAULT now(),
		"password_hash" TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS "groups" (
		"group_id"     SERIAL PRIMARY KEY,
		"display_name" TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS "memberships" (
		"user_id"  TEXT NOT NULL REFERENCES "users" ("user_id") ON DELETE CASCADE,
		"group_id" INTEGER NOT NULL REFERENCES "groups" ("group_id") ON DELETE CASCADE,
		PRIMARY KEY ("user_id", "group_id")
	)`,
}

func (r *implRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := queries.Raw(stmt).ExecContext(ctx, r.db); err != nil {
			r.l.Errorf(ctx, "internal.user.repository.postgres.EnsureSchema.ExecContext: %v", err)
			return errors.Wrap(err, "ensure schema")
		}
	}
	return nil
}
