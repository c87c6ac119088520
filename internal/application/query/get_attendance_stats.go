package query

import (
	"context"
	"fmt"
	"time"

	"github.com/bahadir04/grupa247-bot/internal/domain/attendance"
	"github.com/bahadir04/grupa247-bot/internal/domain/member"
	"github.com/bahadir04/grupa247-bot/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET ATTENDANCE STATS QUERY
// The stored average attendance rate plus today's live percentage.
// Today's numerator and denominator come from a single store read, so a
// concurrent write can never produce a zero denominator with a nonzero
// numerator.
// ══════════════════════════════════════════════════════════════════════════════

// AttendanceStatsResult contains the computed attendance statistics.
type AttendanceStatsResult struct {
	// AverageRate is the mean stored attendance rate across all members,
	// rounded to one decimal. 0 when there are no members.
	AverageRate float64

	// TodayPercent is today's attendance percentage, rounded to one
	// decimal. Only meaningful when HasToday is true.
	TodayPercent float64

	// HasToday is false when no attendance entries exist for today.
	// That is a valid terminal report ("no data"), not an error.
	HasToday bool

	// GeneratedAt is when the result was computed.
	GeneratedAt time.Time
}

// GetAttendanceStatsHandler computes attendance statistics.
type GetAttendanceStatsHandler struct {
	members    member.Repository
	attendance attendance.Repository
	clock      timeutil.Clock
}

// NewGetAttendanceStatsHandler creates the handler.
func NewGetAttendanceStatsHandler(
	members member.Repository,
	att attendance.Repository,
	clock timeutil.Clock,
) *GetAttendanceStatsHandler {
	return &GetAttendanceStatsHandler{members: members, attendance: att, clock: clock}
}

// Handle computes the attendance statistics from the store's current contents.
func (h *GetAttendanceStatsHandler) Handle(ctx context.Context) (*AttendanceStatsResult, error) {
	now := h.clock.Now()
	dayStart, dayEnd := timeutil.DayRange(now)

	avgRate, err := h.members.AverageAttendanceRate(ctx)
	if err != nil {
		return nil, fmt.Errorf("get_attendance_stats: average rate: %w", err)
	}

	tally, err := h.attendance.TallyBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("get_attendance_stats: today tally: %w", err)
	}

	result := &AttendanceStatsResult{
		AverageRate: round1(avgRate),
		GeneratedAt: now,
	}

	if tally.Total > 0 {
		result.HasToday = true
		result.TodayPercent = round1(float64(tally.Present) / float64(tally.Total) * 100)
	}

	return result, nil
}
