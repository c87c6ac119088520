package member

import (
	"context"
	"time"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACE
// The contract for member persistence. Implementations live in
// infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// Ranked is one entry of the activity ranking.
type Ranked struct {
	TelegramID  TelegramID
	DisplayName string
	Points      ActivityPoints
}

// Repository defines the store operations used by the bot.
type Repository interface {
	// Upsert inserts the member if the Telegram ID is absent and does
	// nothing otherwise. The first-seen JoinedAt and DisplayName win.
	Upsert(ctx context.Context, m *Member) error

	// Count returns the total number of members.
	Count(ctx context.Context) (int, error)

	// CountJoinedBetween returns how many members joined within the
	// half-open range [from, to).
	CountJoinedBetween(ctx context.Context, from, to time.Time) (int, error)

	// CountWithPointsAbove returns how many members have strictly more
	// than the given number of activity points.
	CountWithPointsAbove(ctx context.Context, threshold ActivityPoints) (int, error)

	// AverageAttendanceRate returns the mean stored attendance rate
	// across all members, and 0 when there are no members.
	AverageAttendanceRate(ctx context.Context) (float64, error)

	// TopByActivity returns up to limit members ordered by activity
	// points descending, ties broken by Telegram ID ascending.
	TopByActivity(ctx context.Context, limit int) ([]Ranked, error)

	// ListNames returns all member display names in join order.
	ListNames(ctx context.Context) ([]string, error)
}
