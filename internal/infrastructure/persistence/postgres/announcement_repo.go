package postgres

import (
	"context"

	"github.com/bahadir04/grupa247-bot/internal/domain/announcement"
	"github.com/bahadir04/grupa247-bot/internal/domain/member"
)

// ══════════════════════════════════════════════════════════════════════════════
// ANNOUNCEMENT REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// AnnouncementRepository implements announcement.Repository for PostgreSQL.
type AnnouncementRepository struct {
	conn *Connection
}

// NewAnnouncementRepository creates a new AnnouncementRepository.
func NewAnnouncementRepository(conn *Connection) *AnnouncementRepository {
	return &AnnouncementRepository{conn: conn}
}

// ListRecent returns up to limit announcements, most recent first.
func (r *AnnouncementRepository) ListRecent(ctx context.Context, limit int) ([]announcement.Announcement, error) {
	query := `
		SELECT id, text, published_at, author_id
		FROM announcements
		ORDER BY id DESC
		LIMIT $1
	`

	rows, err := r.conn.Query(ctx, query, limit)
	if err != nil {
		return nil, storeError("announcement", "ListRecent", "failed to list announcements", err)
	}
	defer rows.Close()

	var items []announcement.Announcement
	for rows.Next() {
		var (
			a        announcement.Announcement
			authorID int64
		)
		if err := rows.Scan(&a.ID, &a.Text, &a.PublishedAt, &authorID); err != nil {
			return nil, storeError("announcement", "ListRecent", "failed to scan announcement", err)
		}
		a.AuthorID = member.TelegramID(authorID)
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("announcement", "ListRecent", "failed to read announcements", err)
	}

	return items, nil
}
