package query

import (
	"context"
	"fmt"

	"github.com/bahadir04/grupa247-bot/internal/domain/attendance"
)

// ListAttendanceHandler returns the latest attendance entries.
type ListAttendanceHandler struct {
	attendance attendance.Repository
}

// NewListAttendanceHandler creates the handler.
func NewListAttendanceHandler(a attendance.Repository) *ListAttendanceHandler {
	return &ListAttendanceHandler{attendance: a}
}

// Handle returns up to RecentLimit entries, most recent first.
func (h *ListAttendanceHandler) Handle(ctx context.Context) ([]attendance.Entry, error) {
	items, err := h.attendance.ListRecent(ctx, RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("list_attendance: %w", err)
	}
	return items, nil
}
