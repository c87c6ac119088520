package presenter

import (
	"fmt"
	"strings"

	"github.com/bahadir04/grupa247-bot/internal/application/query"
)

// ─────────────────────────────────────────────────────────────────────────────
// STATISTICS REPORTS
// One formatter per report screen. Percentages and averages arrive already
// rounded to one decimal; formatting never re-rounds.
// ─────────────────────────────────────────────────────────────────────────────

// StatsPresenter formats the four statistics reports.
type StatsPresenter struct{}

// NewStatsPresenter creates a new StatsPresenter.
func NewStatsPresenter() *StatsPresenter {
	return &StatsPresenter{}
}

// MemberStats formats the member statistics report.
func (p *StatsPresenter) MemberStats(r *query.MemberStatsResult) string {
	return fmt.Sprintf(
		"👥 A'zolar statistikasi\n\n"+
			"Umumiy a'zolar: %d ta\n"+
			"Bugun qo'shilganlar: %d ta\n"+
			"Faol a'zolar: %d ta\n",
		r.TotalMembers, r.JoinedToday, r.ActiveMembers,
	)
}

// AttendanceStats formats the attendance statistics report. When no
// attendance was recorded today, the today line shows "Ma'lumot yo'q"
// instead of a percentage.
func (p *StatsPresenter) AttendanceStats(r *query.AttendanceStatsResult) string {
	today := "Ma'lumot yo'q"
	if r.HasToday {
		today = fmt.Sprintf("%.1f%%", r.TodayPercent)
	}

	return fmt.Sprintf(
		"📝 Davomat statistikasi\n\n"+
			"O'rtacha davomat: %.1f%%\n"+
			"Bugungi davomat: %s\n",
		r.AverageRate, today,
	)
}

// PerformanceStats formats the performance statistics report. Subjects are
// already ordered by name.
func (p *StatsPresenter) PerformanceStats(r *query.PerformanceStatsResult) string {
	var b strings.Builder
	b.WriteString("📊 O'zlashtirish statistikasi\n\n")
	fmt.Fprintf(&b, "Umumiy o'rtacha ball: %.1f\n\n", r.GlobalAverage)
	b.WriteString("Fanlar bo'yicha:\n")
	for _, s := range r.Subjects {
		fmt.Fprintf(&b, "%s: %.1f\n", s.Subject, s.Average)
	}
	return b.String()
}

// ActivityRanking formats the activity ranking report.
func (p *StatsPresenter) ActivityRanking(r *query.ActivityRankingResult) string {
	var b strings.Builder
	b.WriteString("⭐️ Faollik reytingi\n\n")
	b.WriteString("Top 5 eng faol a'zolar:\n")
	for _, e := range r.Entries {
		fmt.Fprintf(&b, "%d. %s: %d ball\n", e.Rank, e.DisplayName, e.Points)
	}
	return b.String()
}
