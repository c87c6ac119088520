package handler

import (
	"context"
	"fmt"

	"github.com/bahadir04/grupa247-bot/internal/application/query"
	"github.com/bahadir04/grupa247-bot/internal/interface/telegram/presenter"
)

// MemberStatsHandler renders the member statistics screen.
type MemberStatsHandler struct {
	stats   *query.GetMemberStatsHandler
	present *presenter.StatsPresenter
}

// NewMemberStatsHandler creates the handler.
func NewMemberStatsHandler(stats *query.GetMemberStatsHandler, present *presenter.StatsPresenter) *MemberStatsHandler {
	return &MemberStatsHandler{stats: stats, present: present}
}

// Handle computes and formats the member statistics.
func (h *MemberStatsHandler) Handle(ctx context.Context, _ Request) (*Response, error) {
	result, err := h.stats.Handle(ctx)
	if err != nil {
		return nil, fmt.Errorf("member stats: %w", err)
	}
	return &Response{Text: h.present.MemberStats(result)}, nil
}
