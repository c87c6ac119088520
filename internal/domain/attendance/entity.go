// Package attendance contains the domain model for attendance tracking.
package attendance

import (
	"time"

	"github.com/bahadir04/grupa247-bot/internal/domain/member"
)

// Status is the recorded attendance state for one entry.
type Status string

const (
	// StatusPresent marks the member as present.
	StatusPresent Status = "present"
	// StatusAbsent marks the member as absent.
	StatusAbsent Status = "absent"
	// StatusExcused marks an excused absence.
	StatusExcused Status = "excused"
)

// IsValid reports whether the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusExcused:
		return true
	default:
		return false
	}
}

// Entry is one append-only attendance record.
// Duplicates per (member, day) are permitted and reflected in aggregates.
type Entry struct {
	// ID is the store-assigned surrogate key; insertion order defines recency.
	ID int64

	// MemberID references the member the entry belongs to.
	MemberID member.TelegramID

	// OccurredAt is when the attendance was taken (UTC).
	OccurredAt time.Time

	// Status is the recorded state.
	Status Status
}

// DayTally is the present/total breakdown of one day's entries,
// computed in a single store read so the two counts never disagree.
type DayTally struct {
	Present int
	Total   int
}
