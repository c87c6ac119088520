package handler

import (
	"context"
	"fmt"

	"github.com/bahadir04/grupa247-bot/internal/application/query"
	"github.com/bahadir04/grupa247-bot/internal/interface/telegram/presenter"
)

// ActivityRankingHandler renders the activity ranking screen. The provider
// may be the plain query handler or the Redis-backed caching decorator.
type ActivityRankingHandler struct {
	ranking query.ActivityRankingProvider
	present *presenter.StatsPresenter
}

// NewActivityRankingHandler creates the handler.
func NewActivityRankingHandler(ranking query.ActivityRankingProvider, present *presenter.StatsPresenter) *ActivityRankingHandler {
	return &ActivityRankingHandler{ranking: ranking, present: present}
}

// Handle computes and formats the activity ranking.
func (h *ActivityRankingHandler) Handle(ctx context.Context, _ Request) (*Response, error) {
	result, err := h.ranking.Handle(ctx)
	if err != nil {
		return nil, fmt.Errorf("activity ranking: %w", err)
	}
	return &Response{Text: h.present.ActivityRanking(result)}, nil
}
