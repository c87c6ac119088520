package announcement

import "context"

// Repository defines the read operations over announcements.
type Repository interface {
	// ListRecent returns up to limit announcements, most recent first.
	ListRecent(ctx context.Context, limit int) ([]Announcement, error)
}
