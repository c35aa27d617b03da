package sqlitestore

import (
	"context"
	"database/sql"
)

// Dates are stored as YYYY-MM-DD text and timestamps as unix microseconds,
// so ORDER BY on either column matches chronological order.
const schema = `
CREATE TABLE IF NOT EXISTS pending_entries (
    id              TEXT PRIMARY KEY,
    user_id         TEXT NOT NULL,
    fingerprint     TEXT NOT NULL,
    week_start_date TEXT NOT NULL,
    week_end_date   TEXT NOT NULL,
    destination     TEXT NOT NULL,
    interest        TEXT NOT NULL,
    created_at      INTEGER NOT NULL,
    CHECK (week_start_date <= week_end_date),
    UNIQUE (user_id, fingerprint)
);

CREATE INDEX IF NOT EXISTS idx_pending_entries_fingerprint_created
    ON pending_entries (fingerprint, created_at, id);

CREATE INDEX IF NOT EXISTS idx_pending_entries_user
    ON pending_entries (user_id, created_at);

CREATE TABLE IF NOT EXISTS travel_groups (
    id              TEXT PRIMARY KEY,
    fingerprint     TEXT NOT NULL,
    week_start_date TEXT NOT NULL,
    week_end_date   TEXT NOT NULL,
    destination     TEXT NOT NULL,
    interest        TEXT NOT NULL,
    created_at      INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_travel_groups_created
    ON travel_groups (created_at DESC, id DESC);

CREATE TABLE IF NOT EXISTS travel_group_members (
    group_id TEXT NOT NULL,
    position INTEGER NOT NULL CHECK (position >= 0),
    user_id  TEXT NOT NULL,
    PRIMARY KEY (group_id, position),
    UNIQUE (group_id, user_id),
    FOREIGN KEY (group_id) REFERENCES travel_groups(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_travel_group_members_user
    ON travel_group_members (user_id, group_id);
`

func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
