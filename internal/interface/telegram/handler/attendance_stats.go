package handler

import (
	"context"
	"fmt"

	"github.com/bahadir04/grupa247-bot/internal/application/query"
	"github.com/bahadir04/grupa247-bot/internal/interface/telegram/presenter"
)

// AttendanceStatsHandler renders the attendance statistics screen.
type AttendanceStatsHandler struct {
	stats   *query.GetAttendanceStatsHandler
	present *presenter.StatsPresenter
}

// NewAttendanceStatsHandler creates the handler.
func NewAttendanceStatsHandler(stats *query.GetAttendanceStatsHandler, present *presenter.StatsPresenter) *AttendanceStatsHandler {
	return &AttendanceStatsHandler{stats: stats, present: present}
}

// Handle computes and formats the attendance statistics.
func (h *AttendanceStatsHandler) Handle(ctx context.Context, _ Request) (*Response, error) {
	result, err := h.stats.Handle(ctx)
	if err != nil {
		return nil, fmt.Errorf("attendance stats: %w", err)
	}
	return &Response{Text: h.present.AttendanceStats(result)}, nil
}
