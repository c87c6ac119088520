package handler

import (
	"context"
	"fmt"

	"github.com/bahadir04/grupa247-bot/internal/application/query"
	"github.com/bahadir04/grupa247-bot/internal/interface/telegram/presenter"
)

// PerformanceHandler renders the recent performance entries screen.
type PerformanceHandler struct {
	list    *query.ListPerformanceHandler
	present *presenter.ListPresenter
}

// NewPerformanceHandler creates the handler.
func NewPerformanceHandler(list *query.ListPerformanceHandler, present *presenter.ListPresenter) *PerformanceHandler {
	return &PerformanceHandler{list: list, present: present}
}

// Handle loads and formats the newest performance entries.
func (h *PerformanceHandler) Handle(ctx context.Context, _ Request) (*Response, error) {
	entries, err := h.list.Handle(ctx)
	if err != nil {
		return nil, fmt.Errorf("performance list: %w", err)
	}
	return &Response{Text: h.present.Performance(entries)}, nil
}
