package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bahadir04/grupa247-bot/internal/domain/announcement"
	"github.com/bahadir04/grupa247-bot/internal/domain/attendance"
	"github.com/bahadir04/grupa247-bot/internal/domain/performance"
	"github.com/bahadir04/grupa247-bot/pkg/timeutil"
)

func TestListPresenter_Announcements(t *testing.T) {
	p := NewListPresenter()

	text := p.Announcements([]announcement.Announcement{
		{Text: "Dars 9:00 da boshlanadi", PublishedAt: timeutil.DateTime(2025, 3, 10, 8, 0, 0)},
	})
	assert.Contains(t, text, "📢 Songi reklammalar:")
	assert.Contains(t, text, "📅 2025-03-10 08:00")
	assert.Contains(t, text, "Dars 9:00 da boshlanadi")

	assert.Equal(t, "❌ Hozirche reklama yo'q", p.Announcements(nil))
}

func TestListPresenter_Members(t *testing.T) {
	p := NewListPresenter()

	text := p.Members([]string{"aida", "bek"})
	assert.Contains(t, text, "👥 Gurrupa adamlari:")
	assert.Contains(t, text, "1. aida")
	assert.Contains(t, text, "2. bek")

	// The roster keeps its header even when empty.
	assert.Contains(t, p.Members(nil), "👥 Gurrupa adamlari:")
}

func TestListPresenter_Attendance(t *testing.T) {
	p := NewListPresenter()

	text := p.Attendance([]attendance.Entry{
		{OccurredAt: timeutil.DateTime(2025, 3, 10, 9, 0, 0), Status: attendance.StatusPresent},
	})
	assert.Contains(t, text, "📝 Davomat:")
	assert.Contains(t, text, "📅 2025-03-10 09:00")
	assert.Contains(t, text, "present")

	assert.Equal(t, "❌ Hozirche davomat yo'q", p.Attendance(nil))
}

func TestListPresenter_Performance(t *testing.T) {
	p := NewListPresenter()

	text := p.Performance([]performance.Entry{
		{Subject: "Math", Grade: 85.5, RecordedAt: timeutil.DateTime(2025, 3, 10, 12, 0, 0)},
	})
	assert.Contains(t, text, "📈 O'zlashtirish:")
	assert.Contains(t, text, "📚 Math")
	assert.Contains(t, text, "85.5")
	assert.Contains(t, text, "📅 2025-03-10 12:00")

	assert.Equal(t, "❌ Hozirche o'zlashtirish yo'q", p.Performance(nil))
}
