package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bahadir04/grupa247-bot/internal/domain/attendance"
	"github.com/bahadir04/grupa247-bot/internal/domain/member"
	"github.com/bahadir04/grupa247-bot/pkg/timeutil"
)

func TestGetAttendanceStats_TwoOfThreePresent(t *testing.T) {
	now := timeutil.DateTime(2025, 3, 10, 15, 0, 0)
	attRepo := &fakeAttendanceRepo{entries: []attendance.Entry{
		{MemberID: 1, OccurredAt: timeutil.DateTime(2025, 3, 10, 9, 0, 0), Status: attendance.StatusPresent},
		{MemberID: 2, OccurredAt: timeutil.DateTime(2025, 3, 10, 9, 0, 0), Status: attendance.StatusPresent},
		{MemberID: 3, OccurredAt: timeutil.DateTime(2025, 3, 10, 9, 0, 0), Status: attendance.StatusAbsent},
	}}
	h := NewGetAttendanceStatsHandler(&fakeMemberRepo{}, attRepo, timeutil.FixedClock(now))

	result, err := h.Handle(context.Background())
	require.NoError(t, err)

	assert.True(t, result.HasToday)
	assert.InDelta(t, 66.7, result.TodayPercent, 1e-9)
}

func TestGetAttendanceStats_NoEntriesToday(t *testing.T) {
	now := timeutil.DateTime(2025, 3, 10, 15, 0, 0)
	attRepo := &fakeAttendanceRepo{entries: []attendance.Entry{
		// Yesterday only.
		{MemberID: 1, OccurredAt: timeutil.DateTime(2025, 3, 9, 9, 0, 0), Status: attendance.StatusPresent},
	}}
	h := NewGetAttendanceStatsHandler(&fakeMemberRepo{}, attRepo, timeutil.FixedClock(now))

	result, err := h.Handle(context.Background())
	require.NoError(t, err)

	// No data is a valid report, not an error, and the percentage stays
	// untouched rather than reading as 0%.
	assert.False(t, result.HasToday)
	assert.Zero(t, result.TodayPercent)
}

func TestGetAttendanceStats_AverageRateRounded(t *testing.T) {
	joined := timeutil.DateTime(2025, 1, 1, 0, 0, 0)
	m1 := newTestMember(t, 1, "a", joined, 0)
	m1.AttendanceRate = member.AttendanceRate(77.25)
	m2 := newTestMember(t, 2, "b", joined, 0)
	m2.AttendanceRate = member.AttendanceRate(80)

	memberRepo := &fakeMemberRepo{members: []*member.Member{m1, m2}}
	h := NewGetAttendanceStatsHandler(memberRepo, &fakeAttendanceRepo{}, timeutil.FixedClock(timeutil.Now()))

	result, err := h.Handle(context.Background())
	require.NoError(t, err)

	// (77.25 + 80) / 2 = 78.625, rounded half away from zero to 78.6.
	assert.InDelta(t, 78.6, result.AverageRate, 1e-9)
}

func TestGetAttendanceStats_EmptyStore(t *testing.T) {
	h := NewGetAttendanceStatsHandler(&fakeMemberRepo{}, &fakeAttendanceRepo{}, timeutil.FixedClock(timeutil.Now()))

	result, err := h.Handle(context.Background())
	require.NoError(t, err)

	assert.Zero(t, result.AverageRate)
	assert.False(t, result.HasToday)
}
