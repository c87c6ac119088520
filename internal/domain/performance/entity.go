// Package performance contains the domain model for academic performance records.
package performance

import (
	"time"

	"github.com/bahadir04/grupa247-bot/internal/domain/member"
)

// Entry is one append-only grade record.
type Entry struct {
	// ID is the store-assigned surrogate key; insertion order defines recency.
	ID int64

	// MemberID references the graded member.
	MemberID member.TelegramID

	// Subject is free text; grouping is by exact string match.
	Subject string

	// Grade is the numeric grade.
	Grade float64

	// RecordedAt is when the grade was recorded (UTC).
	RecordedAt time.Time
}

// SubjectAverage is the unrounded mean grade for one subject.
type SubjectAverage struct {
	Subject string
	Average float64
}
