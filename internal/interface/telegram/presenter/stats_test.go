package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bahadir04/grupa247-bot/internal/application/query"
)

func TestStatsPresenter_MemberStats(t *testing.T) {
	p := NewStatsPresenter()
	text := p.MemberStats(&query.MemberStatsResult{
		TotalMembers:  25,
		JoinedToday:   2,
		ActiveMembers: 7,
	})

	assert.Contains(t, text, "👥 A'zolar statistikasi")
	assert.Contains(t, text, "Umumiy a'zolar: 25 ta")
	assert.Contains(t, text, "Bugun qo'shilganlar: 2 ta")
	assert.Contains(t, text, "Faol a'zolar: 7 ta")
}

func TestStatsPresenter_AttendanceStats(t *testing.T) {
	p := NewStatsPresenter()

	text := p.AttendanceStats(&query.AttendanceStatsResult{
		AverageRate:  78.6,
		TodayPercent: 66.7,
		HasToday:     true,
	})
	assert.Contains(t, text, "O'rtacha davomat: 78.6%")
	assert.Contains(t, text, "Bugungi davomat: 66.7%")

	empty := p.AttendanceStats(&query.AttendanceStatsResult{
		AverageRate: 78.6,
		HasToday:    false,
	})
	assert.Contains(t, empty, "Bugungi davomat: Ma'lumot yo'q")
	assert.NotContains(t, empty, "0.0%")
}

func TestStatsPresenter_PerformanceStats(t *testing.T) {
	p := NewStatsPresenter()
	text := p.PerformanceStats(&query.PerformanceStatsResult{
		GlobalAverage: 80.0,
		Subjects: []query.SubjectAverageDTO{
			{Subject: "Math", Average: 85.0},
			{Subject: "Physics", Average: 70.0},
		},
	})

	assert.Contains(t, text, "Umumiy o'rtacha ball: 80.0")
	assert.Contains(t, text, "Math: 85.0")
	assert.Contains(t, text, "Physics: 70.0")
}

func TestStatsPresenter_ActivityRanking(t *testing.T) {
	p := NewStatsPresenter()
	text := p.ActivityRanking(&query.ActivityRankingResult{
		Entries: []query.RankedMemberDTO{
			{Rank: 1, DisplayName: "aida", Points: 120},
			{Rank: 2, DisplayName: "bek", Points: 90},
		},
	})

	assert.Contains(t, text, "⭐️ Faollik reytingi")
	assert.Contains(t, text, "1. aida: 120 ball")
	assert.Contains(t, text, "2. bek: 90 ball")
}
