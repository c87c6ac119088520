package query

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bahadir04/grupa247-bot/internal/domain/announcement"
	"github.com/bahadir04/grupa247-bot/internal/domain/attendance"
	"github.com/bahadir04/grupa247-bot/internal/domain/member"
	"github.com/bahadir04/grupa247-bot/internal/domain/performance"
	"github.com/bahadir04/grupa247-bot/pkg/timeutil"
)

func TestListAnnouncements_NewestFirstCappedAtFive(t *testing.T) {
	repo := &fakeAnnouncementRepo{}
	for i := 1; i <= 7; i++ {
		repo.items = append(repo.items, announcement.Announcement{
			ID:          int64(i),
			Text:        fmt.Sprintf("ann %d", i),
			PublishedAt: timeutil.DateTime(2025, 3, i, 12, 0, 0),
		})
	}
	h := NewListAnnouncementsHandler(repo)

	items, err := h.Handle(context.Background())
	require.NoError(t, err)

	require.Len(t, items, RecentLimit)
	assert.Equal(t, "ann 7", items[0].Text)
	assert.Equal(t, "ann 3", items[4].Text)
}

func TestListAnnouncements_Empty(t *testing.T) {
	h := NewListAnnouncementsHandler(&fakeAnnouncementRepo{})

	items, err := h.Handle(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListAttendance_NewestFirstCappedAtFive(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	for i := 1; i <= 6; i++ {
		repo.entries = append(repo.entries, attendance.Entry{
			ID:         int64(i),
			MemberID:   member.TelegramID(i),
			OccurredAt: timeutil.DateTime(2025, 3, i, 9, 0, 0),
			Status:     attendance.StatusPresent,
		})
	}
	h := NewListAttendanceHandler(repo)

	entries, err := h.Handle(context.Background())
	require.NoError(t, err)

	require.Len(t, entries, RecentLimit)
	assert.Equal(t, int64(6), entries[0].ID)
	assert.Equal(t, int64(2), entries[4].ID)
}

func TestListPerformance_NewestFirstCappedAtFive(t *testing.T) {
	repo := &fakePerformanceRepo{}
	for i := 1; i <= 6; i++ {
		repo.entries = append(repo.entries, performance.Entry{
			ID:       int64(i),
			MemberID: 1,
			Subject:  "Math",
			Grade:    float64(60 + i),
		})
	}
	h := NewListPerformanceHandler(repo)

	entries, err := h.Handle(context.Background())
	require.NoError(t, err)

	require.Len(t, entries, RecentLimit)
	assert.Equal(t, int64(6), entries[0].ID)
}

func TestListMembers_JoinOrder(t *testing.T) {
	joined := timeutil.DateTime(2025, 1, 1, 0, 0, 0)
	repo := &fakeMemberRepo{}
	for i, name := range []string{"aida", "bek", "dana"} {
		repo.members = append(repo.members, newTestMember(t, int64(i+1), name, joined.AddDate(0, 0, i), 0))
	}
	h := NewListMembersHandler(repo)

	names, err := h.Handle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"aida", "bek", "dana"}, names)
}
