package query

import (
	"context"
	"fmt"

	"github.com/bahadir04/grupa247-bot/internal/domain/performance"
)

// ListPerformanceHandler returns the latest performance entries.
type ListPerformanceHandler struct {
	performance performance.Repository
}

// NewListPerformanceHandler creates the handler.
func NewListPerformanceHandler(p performance.Repository) *ListPerformanceHandler {
	return &ListPerformanceHandler{performance: p}
}

// Handle returns up to RecentLimit entries, most recent first.
func (h *ListPerformanceHandler) Handle(ctx context.Context) ([]performance.Entry, error) {
	items, err := h.performance.ListRecent(ctx, RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("list_performance: %w", err)
	}
	return items, nil
}
