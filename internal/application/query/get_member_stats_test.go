package query

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bahadir04/grupa247-bot/internal/domain/member"
	"github.com/bahadir04/grupa247-bot/pkg/timeutil"
)

func newTestMember(t *testing.T, id int64, name string, joinedAt time.Time, points int) *member.Member {
	t.Helper()
	m, err := member.NewMember(member.TelegramID(id), name, joinedAt)
	require.NoError(t, err)
	m.ActivityPoints = member.ActivityPoints(points)
	return m
}

func TestGetMemberStats_EmptyStore(t *testing.T) {
	repo := &fakeMemberRepo{}
	clock := timeutil.FixedClock(timeutil.DateTime(2025, 3, 10, 15, 0, 0))
	h := NewGetMemberStatsHandler(repo, clock)

	result, err := h.Handle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalMembers)
	assert.Equal(t, 0, result.JoinedToday)
	assert.Equal(t, 0, result.ActiveMembers)
}

func TestGetMemberStats_ActiveThresholdIsStrict(t *testing.T) {
	joined := timeutil.DateTime(2025, 1, 1, 10, 0, 0)
	repo := &fakeMemberRepo{members: []*member.Member{
		newTestMember(t, 1, "aida", joined, 51),
		newTestMember(t, 2, "bek", joined, 50),
		newTestMember(t, 3, "dana", joined, 49),
	}}
	clock := timeutil.FixedClock(timeutil.DateTime(2025, 3, 10, 15, 0, 0))
	h := NewGetMemberStatsHandler(repo, clock)

	result, err := h.Handle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalMembers)
	// Exactly 50 points is not active.
	assert.Equal(t, 1, result.ActiveMembers)
}

func TestGetMemberStats_JoinedTodayUsesLocalDayBounds(t *testing.T) {
	now := timeutil.DateTime(2025, 3, 10, 15, 0, 0)
	repo := &fakeMemberRepo{members: []*member.Member{
		// 00:00 local today: inside.
		newTestMember(t, 1, "a", timeutil.DateTime(2025, 3, 10, 0, 0, 0), 0),
		// 23:59:59 local today: inside.
		newTestMember(t, 2, "b", timeutil.DateTime(2025, 3, 10, 23, 59, 59), 0),
		// Midnight of the next day: outside.
		newTestMember(t, 3, "c", timeutil.DateTime(2025, 3, 11, 0, 0, 0), 0),
		// Just before midnight yesterday: outside.
		newTestMember(t, 4, "d", timeutil.DateTime(2025, 3, 9, 23, 59, 59), 0),
	}}
	h := NewGetMemberStatsHandler(repo, timeutil.FixedClock(now))

	result, err := h.Handle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.JoinedToday)
}

func TestGetMemberStats_PropagatesStoreError(t *testing.T) {
	storeErr := errors.New("connection reset")
	repo := &fakeMemberRepo{err: storeErr}
	h := NewGetMemberStatsHandler(repo, timeutil.FixedClock(timeutil.Now()))

	_, err := h.Handle(context.Background())
	assert.ErrorIs(t, err, storeErr)
}
