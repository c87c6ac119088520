// Package announcement contains the domain model for group announcements.
package announcement

import (
	"time"

	"github.com/bahadir04/grupa247-bot/internal/domain/member"
)

// Announcement is one append-only group announcement.
type Announcement struct {
	// ID is the store-assigned surrogate key; insertion order defines recency.
	ID int64

	// Text is the announcement body.
	Text string

	// PublishedAt is when the announcement was posted (UTC).
	PublishedAt time.Time

	// AuthorID references the posting member.
	AuthorID member.TelegramID
}
