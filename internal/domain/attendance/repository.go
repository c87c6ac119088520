package attendance

import (
	"context"
	"time"
)

// Repository defines the read operations over attendance entries.
// Entries are written by collaborators outside this bot; the bot only reads.
type Repository interface {
	// TallyBetween counts present and total entries within the half-open
	// range [from, to). Both counts come from one statement.
	TallyBetween(ctx context.Context, from, to time.Time) (DayTally, error)

	// ListRecent returns up to limit entries, most recent insertion first.
	ListRecent(ctx context.Context, limit int) ([]Entry, error)
}
