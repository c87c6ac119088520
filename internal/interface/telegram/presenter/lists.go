package presenter

import (
	"fmt"
	"strings"

	"github.com/bahadir04/grupa247-bot/internal/domain/announcement"
	"github.com/bahadir04/grupa247-bot/internal/domain/attendance"
	"github.com/bahadir04/grupa247-bot/internal/domain/performance"
	"github.com/bahadir04/grupa247-bot/pkg/timeutil"
)

// ─────────────────────────────────────────────────────────────────────────────
// RECENT-RECORD LISTS
// The announcement, attendance and performance screens show the five newest
// records. An empty store renders a dedicated "nothing yet" message.
// ─────────────────────────────────────────────────────────────────────────────

// ListPresenter formats the record list screens.
type ListPresenter struct{}

// NewListPresenter creates a new ListPresenter.
func NewListPresenter() *ListPresenter {
	return &ListPresenter{}
}

// Announcements formats the recent announcements screen.
func (p *ListPresenter) Announcements(items []announcement.Announcement) string {
	if len(items) == 0 {
		return "❌ Hozirche reklama yo'q"
	}

	var b strings.Builder
	b.WriteString("📢 Songi reklammalar:\n\n")
	for _, a := range items {
		fmt.Fprintf(&b, "📅 %s\n%s\n\n", timeutil.FormatDateTime(a.PublishedAt), a.Text)
	}
	return b.String()
}

// Members formats the full member roster.
func (p *ListPresenter) Members(names []string) string {
	var b strings.Builder
	b.WriteString("👥 Gurrupa adamlari:\n\n")
	for i, name := range names {
		fmt.Fprintf(&b, "%d. %s\n", i+1, name)
	}
	return b.String()
}

// Attendance formats the recent attendance entries screen.
func (p *ListPresenter) Attendance(entries []attendance.Entry) string {
	if len(entries) == 0 {
		return "❌ Hozirche davomat yo'q"
	}

	var b strings.Builder
	b.WriteString("📝 Davomat:\n\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "📅 %s\n%s\n\n", timeutil.FormatDateTime(e.OccurredAt), e.Status)
	}
	return b.String()
}

// Performance formats the recent performance entries screen.
func (p *ListPresenter) Performance(entries []performance.Entry) string {
	if len(entries) == 0 {
		return "❌ Hozirche o'zlashtirish yo'q"
	}

	var b strings.Builder
	b.WriteString("📈 O'zlashtirish:\n\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "📚 %s\n%.1f\n📅 %s\n\n", e.Subject, e.Grade, timeutil.FormatDateTime(e.RecordedAt))
	}
	return b.String()
}
