// Package query contains read operations following the CQRS pattern.
// Queries never modify state - they only read and return data. Each query
// is a self-contained use case with its own request/response types, holds
// no state of its own, and is safe to invoke concurrently. Every query is
// defined on an entirely empty store: counts are zero, averages are zero,
// lists are empty, and "today" aggregates report a no-data state.
package query

import (
	"context"
	"fmt"
	"time"

	"github.com/bahadir04/grupa247-bot/internal/domain/member"
	"github.com/bahadir04/grupa247-bot/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET MEMBER STATS QUERY
// Headline membership numbers: group size, today's arrivals, active members.
// ══════════════════════════════════════════════════════════════════════════════

// ActiveThreshold is the activity-points bar for counting a member as
// active. The comparison is strict: exactly this many points is not active.
const ActiveThreshold member.ActivityPoints = 50

// MemberStatsResult contains the computed member statistics.
type MemberStatsResult struct {
	// TotalMembers is the total number of registered members.
	TotalMembers int

	// JoinedToday is how many members joined on the current calendar day.
	JoinedToday int

	// ActiveMembers is how many members have more than ActiveThreshold points.
	ActiveMembers int

	// GeneratedAt is when the result was computed.
	GeneratedAt time.Time
}

// GetMemberStatsHandler computes member statistics.
type GetMemberStatsHandler struct {
	members member.Repository
	clock   timeutil.Clock
}

// NewGetMemberStatsHandler creates the handler.
func NewGetMemberStatsHandler(members member.Repository, clock timeutil.Clock) *GetMemberStatsHandler {
	return &GetMemberStatsHandler{members: members, clock: clock}
}

// Handle computes the member statistics from the store's current contents.
func (h *GetMemberStatsHandler) Handle(ctx context.Context) (*MemberStatsResult, error) {
	now := h.clock.Now()
	dayStart, dayEnd := timeutil.DayRange(now)

	total, err := h.members.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("get_member_stats: count members: %w", err)
	}

	joinedToday, err := h.members.CountJoinedBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("get_member_stats: count joined today: %w", err)
	}

	active, err := h.members.CountWithPointsAbove(ctx, ActiveThreshold)
	if err != nil {
		return nil, fmt.Errorf("get_member_stats: count active: %w", err)
	}

	return &MemberStatsResult{
		TotalMembers:  total,
		JoinedToday:   joinedToday,
		ActiveMembers: active,
		GeneratedAt:   now,
	}, nil
}
