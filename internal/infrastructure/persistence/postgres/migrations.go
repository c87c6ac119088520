package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// ══════════════════════════════════════════════════════════════════════════════
// MIGRATIONS
// Versioned, transactional, tracked in schema_migrations.
// ══════════════════════════════════════════════════════════════════════════════

// Migration represents a database migration.
type Migration struct {
	Version int
	Name    string
	UpSQL   string
	DownSQL string
}

// Migrator applies migrations in order.
type Migrator struct {
	conn       *Connection
	migrations []Migration
	tableName  string
}

// NewMigrator creates a migrator with the embedded migrations.
func NewMigrator(conn *Connection) *Migrator {
	return &Migrator{
		conn:       conn,
		migrations: GetMigrations(),
		tableName:  "schema_migrations",
	}
}

// EnsureMigrationTable creates the tracking table if it doesn't exist.
func (m *Migrator) EnsureMigrationTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)
	`, m.tableName)

	if _, err := m.conn.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// GetAppliedMigrations returns the versions already applied.
func (m *Migrator) GetAppliedMigrations(ctx context.Context) (map[int]time.Time, error) {
	query := fmt.Sprintf("SELECT version, applied_at FROM %s ORDER BY version", m.tableName)

	rows, err := m.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]time.Time)
	for rows.Next() {
		var version int
		var appliedAt time.Time
		if err := rows.Scan(&version, &appliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan migration row: %w", err)
		}
		applied[version] = appliedAt
	}

	return applied, rows.Err()
}

// Migrate applies all pending migrations, each inside its own transaction.
func (m *Migrator) Migrate(ctx context.Context) error {
	if err := m.EnsureMigrationTable(ctx); err != nil {
		return err
	}

	applied, err := m.GetAppliedMigrations(ctx)
	if err != nil {
		return err
	}

	for _, mig := range m.migrations {
		if _, isApplied := applied[mig.Version]; isApplied {
			continue
		}

		if mig.UpSQL == "" {
			return fmt.Errorf("%w: missing up SQL for migration %d", ErrMigrationFailed, mig.Version)
		}

		err := m.conn.WithTx(ctx, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, mig.UpSQL); err != nil {
				return fmt.Errorf("failed to execute migration %d: %w", mig.Version, err)
			}

			insertQuery := fmt.Sprintf("INSERT INTO %s (version, name) VALUES ($1, $2)", m.tableName)
			_, err := tx.Exec(ctx, insertQuery, mig.Version, mig.Name)
			return err
		})
		if err != nil {
			return fmt.Errorf("%w: version %d: %v", ErrMigrationFailed, mig.Version, err)
		}
	}

	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// EMBEDDED MIGRATIONS
// ══════════════════════════════════════════════════════════════════════════════

const migration001Up = `
CREATE TABLE IF NOT EXISTS members (
	telegram_id     BIGINT PRIMARY KEY,
	display_name    TEXT NOT NULL,
	joined_at       TIMESTAMP WITH TIME ZONE NOT NULL,
	is_admin        BOOLEAN NOT NULL DEFAULT FALSE,
	attendance_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
	activity_points INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_members_joined_at ON members (joined_at);
CREATE INDEX IF NOT EXISTS idx_members_activity ON members (activity_points DESC, telegram_id ASC);
`

const migration001Down = `DROP TABLE IF EXISTS members;`

const migration002Up = `
CREATE TABLE IF NOT EXISTS attendance_entries (
	id          BIGSERIAL PRIMARY KEY,
	member_id   BIGINT NOT NULL REFERENCES members (telegram_id),
	occurred_at TIMESTAMP WITH TIME ZONE NOT NULL,
	status      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_attendance_occurred_at ON attendance_entries (occurred_at);
`

const migration002Down = `DROP TABLE IF EXISTS attendance_entries;`

const migration003Up = `
CREATE TABLE IF NOT EXISTS performance_entries (
	id          BIGSERIAL PRIMARY KEY,
	member_id   BIGINT NOT NULL REFERENCES members (telegram_id),
	subject     TEXT NOT NULL,
	grade       DOUBLE PRECISION NOT NULL,
	recorded_at TIMESTAMP WITH TIME ZONE NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_performance_subject ON performance_entries (subject);
`

const migration003Down = `DROP TABLE IF EXISTS performance_entries;`

const migration004Up = `
CREATE TABLE IF NOT EXISTS announcements (
	id           BIGSERIAL PRIMARY KEY,
	text         TEXT NOT NULL,
	published_at TIMESTAMP WITH TIME ZONE NOT NULL,
	author_id    BIGINT NOT NULL REFERENCES members (telegram_id)
);
`

const migration004Down = `DROP TABLE IF EXISTS announcements;`

// GetMigrations returns all embedded migrations.
func GetMigrations() []Migration {
	return []Migration{
		{Version: 1, Name: "create_members", UpSQL: migration001Up, DownSQL: migration001Down},
		{Version: 2, Name: "create_attendance_entries", UpSQL: migration002Up, DownSQL: migration002Down},
		{Version: 3, Name: "create_performance_entries", UpSQL: migration003Up, DownSQL: migration003Down},
		{Version: 4, Name: "create_announcements", UpSQL: migration004Up, DownSQL: migration004Down},
	}
}
