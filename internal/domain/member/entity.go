// Package member contains the domain model for group members.
// This is the core of the business logic - no external dependencies here.
package member

import (
	"fmt"
	"strings"
	"time"

	"github.com/bahadir04/grupa247-bot/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// TelegramID is the stable, unique identity of a member.
type TelegramID int64

// IsValid reports whether the TelegramID is positive.
func (t TelegramID) IsValid() bool {
	return t > 0
}

// ActivityPoints is the member's activity score.
// It is maintained outside this bot; the bot only reads and ranks it.
type ActivityPoints int

// IsValid reports whether the points value is non-negative.
func (p ActivityPoints) IsValid() bool {
	return p >= 0
}

// AttendanceRate is a stored per-member attendance percentage (0-100).
// Distinct from the computed "today's attendance" aggregate.
type AttendanceRate float64

// IsValid reports whether the rate is within [0, 100].
func (r AttendanceRate) IsValid() bool {
	return r >= 0 && r <= 100
}

// ══════════════════════════════════════════════════════════════════════════════
// ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrInvalidTelegramID is returned for a non-positive Telegram ID.
	ErrInvalidTelegramID = fmt.Errorf("member: invalid telegram id: %w", shared.ErrInvalidInput)

	// ErrEmptyDisplayName is returned when the display name is blank.
	ErrEmptyDisplayName = fmt.Errorf("member: display name is empty: %w", shared.ErrInvalidInput)
)

// ══════════════════════════════════════════════════════════════════════════════
// ENTITY
// ══════════════════════════════════════════════════════════════════════════════

// Member is a tracked individual of the group.
type Member struct {
	// TelegramID is the unique, immutable identity.
	TelegramID TelegramID

	// DisplayName is the name shown in lists and rankings.
	// Fixed at first registration; later encounters never update it.
	DisplayName string

	// JoinedAt is the time of first registration (UTC).
	JoinedAt time.Time

	// IsAdmin marks group administrators.
	IsAdmin bool

	// AttendanceRate is the stored attendance percentage (0-100).
	AttendanceRate AttendanceRate

	// ActivityPoints is the member's activity score.
	ActivityPoints ActivityPoints
}

// NewMember creates a member as seen on first interaction.
// Rate and points start at zero; external collaborators update them later.
func NewMember(id TelegramID, displayName string, joinedAt time.Time) (*Member, error) {
	if !id.IsValid() {
		return nil, ErrInvalidTelegramID
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, ErrEmptyDisplayName
	}

	return &Member{
		TelegramID:  id,
		DisplayName: displayName,
		JoinedAt:    joinedAt.UTC(),
	}, nil
}

// IsActive reports whether the member counts as active for member statistics.
// The threshold is strict: exactly `threshold` points is not active.
func (m *Member) IsActive(threshold ActivityPoints) bool {
	return m.ActivityPoints > threshold
}
