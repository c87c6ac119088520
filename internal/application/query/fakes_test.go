package query

import (
	"context"
	"sort"
	"time"

	"github.com/bahadir04/grupa247-bot/internal/domain/announcement"
	"github.com/bahadir04/grupa247-bot/internal/domain/attendance"
	"github.com/bahadir04/grupa247-bot/internal/domain/member"
	"github.com/bahadir04/grupa247-bot/internal/domain/performance"
)

// In-memory repositories implementing the store semantics: half-open day
// ranges, strict activity threshold, descending ranking with ID tie-break.

type fakeMemberRepo struct {
	members []*member.Member
	err     error
}

func (r *fakeMemberRepo) Upsert(_ context.Context, m *member.Member) error {
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.members {
		if existing.TelegramID == m.TelegramID {
			return nil
		}
	}
	r.members = append(r.members, m)
	return nil
}

func (r *fakeMemberRepo) Count(_ context.Context) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	return len(r.members), nil
}

func (r *fakeMemberRepo) CountJoinedBetween(_ context.Context, from, to time.Time) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	n := 0
	for _, m := range r.members {
		if !m.JoinedAt.Before(from) && m.JoinedAt.Before(to) {
			n++
		}
	}
	return n, nil
}

func (r *fakeMemberRepo) CountWithPointsAbove(_ context.Context, threshold member.ActivityPoints) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	n := 0
	for _, m := range r.members {
		if m.ActivityPoints > threshold {
			n++
		}
	}
	return n, nil
}

func (r *fakeMemberRepo) AverageAttendanceRate(_ context.Context) (float64, error) {
	if r.err != nil {
		return 0, r.err
	}
	if len(r.members) == 0 {
		return 0, nil
	}
	sum := 0.0
	for _, m := range r.members {
		sum += float64(m.AttendanceRate)
	}
	return sum / float64(len(r.members)), nil
}

func (r *fakeMemberRepo) TopByActivity(_ context.Context, limit int) ([]member.Ranked, error) {
	if r.err != nil {
		return nil, r.err
	}
	ranked := make([]member.Ranked, 0, len(r.members))
	for _, m := range r.members {
		ranked = append(ranked, member.Ranked{
			TelegramID:  m.TelegramID,
			DisplayName: m.DisplayName,
			Points:      m.ActivityPoints,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Points != ranked[j].Points {
			return ranked[i].Points > ranked[j].Points
		}
		return ranked[i].TelegramID < ranked[j].TelegramID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func (r *fakeMemberRepo) ListNames(_ context.Context) ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	names := make([]string, 0, len(r.members))
	for _, m := range r.members {
		names = append(names, m.DisplayName)
	}
	return names, nil
}

type fakeAttendanceRepo struct {
	entries []attendance.Entry
	err     error
}

func (r *fakeAttendanceRepo) TallyBetween(_ context.Context, from, to time.Time) (attendance.DayTally, error) {
	if r.err != nil {
		return attendance.DayTally{}, r.err
	}
	var tally attendance.DayTally
	for _, e := range r.entries {
		if !e.OccurredAt.Before(from) && e.OccurredAt.Before(to) {
			tally.Total++
			if e.Status == attendance.StatusPresent {
				tally.Present++
			}
		}
	}
	return tally, nil
}

func (r *fakeAttendanceRepo) ListRecent(_ context.Context, limit int) ([]attendance.Entry, error) {
	if r.err != nil {
		return nil, r.err
	}
	return newestFirst(r.entries, limit), nil
}

type fakePerformanceRepo struct {
	entries []performance.Entry
	err     error
}

func (r *fakePerformanceRepo) GlobalAverage(_ context.Context) (float64, error) {
	if r.err != nil {
		return 0, r.err
	}
	if len(r.entries) == 0 {
		return 0, nil
	}
	sum := 0.0
	for _, e := range r.entries {
		sum += e.Grade
	}
	return sum / float64(len(r.entries)), nil
}

func (r *fakePerformanceRepo) SubjectAverages(_ context.Context) ([]performance.SubjectAverage, error) {
	if r.err != nil {
		return nil, r.err
	}
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, e := range r.entries {
		sums[e.Subject] += e.Grade
		counts[e.Subject]++
	}
	subjects := make([]string, 0, len(sums))
	for s := range sums {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)

	averages := make([]performance.SubjectAverage, 0, len(subjects))
	for _, s := range subjects {
		averages = append(averages, performance.SubjectAverage{
			Subject: s,
			Average: sums[s] / float64(counts[s]),
		})
	}
	return averages, nil
}

func (r *fakePerformanceRepo) ListRecent(_ context.Context, limit int) ([]performance.Entry, error) {
	if r.err != nil {
		return nil, r.err
	}
	return newestFirst(r.entries, limit), nil
}

type fakeAnnouncementRepo struct {
	items []announcement.Announcement
	err   error
}

func (r *fakeAnnouncementRepo) ListRecent(_ context.Context, limit int) ([]announcement.Announcement, error) {
	if r.err != nil {
		return nil, r.err
	}
	return newestFirst(r.items, limit), nil
}

// newestFirst reverses insertion order and truncates, mirroring the
// ORDER BY id DESC LIMIT n reads.
func newestFirst[T any](items []T, limit int) []T {
	out := make([]T, 0, limit)
	for i := len(items) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, items[i])
	}
	return out
}
