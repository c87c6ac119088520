package handler

import (
	"context"
	"fmt"

	"github.com/bahadir04/grupa247-bot/internal/application/query"
	"github.com/bahadir04/grupa247-bot/internal/interface/telegram/presenter"
)

// PerformanceStatsHandler renders the performance statistics screen.
type PerformanceStatsHandler struct {
	stats   *query.GetPerformanceStatsHandler
	present *presenter.StatsPresenter
}

// NewPerformanceStatsHandler creates the handler.
func NewPerformanceStatsHandler(stats *query.GetPerformanceStatsHandler, present *presenter.StatsPresenter) *PerformanceStatsHandler {
	return &PerformanceStatsHandler{stats: stats, present: present}
}

// Handle computes and formats the performance statistics.
func (h *PerformanceStatsHandler) Handle(ctx context.Context, _ Request) (*Response, error) {
	result, err := h.stats.Handle(ctx)
	if err != nil {
		return nil, fmt.Errorf("performance stats: %w", err)
	}
	return &Response{Text: h.present.PerformanceStats(result)}, nil
}
