package handler

import (
	"context"
	"fmt"

	"github.com/bahadir04/grupa247-bot/internal/application/query"
	"github.com/bahadir04/grupa247-bot/internal/interface/telegram/presenter"
)

// AttendanceHandler renders the recent attendance entries screen.
type AttendanceHandler struct {
	list    *query.ListAttendanceHandler
	present *presenter.ListPresenter
}

// NewAttendanceHandler creates the handler.
func NewAttendanceHandler(list *query.ListAttendanceHandler, present *presenter.ListPresenter) *AttendanceHandler {
	return &AttendanceHandler{list: list, present: present}
}

// Handle loads and formats the newest attendance entries.
func (h *AttendanceHandler) Handle(ctx context.Context, _ Request) (*Response, error) {
	entries, err := h.list.Handle(ctx)
	if err != nil {
		return nil, fmt.Errorf("attendance list: %w", err)
	}
	return &Response{Text: h.present.Attendance(entries)}, nil
}
