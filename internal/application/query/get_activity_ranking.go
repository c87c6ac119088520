package query

import (
	"context"
	"fmt"
	"time"

	"github.com/bahadir04/grupa247-bot/internal/domain/member"
	"github.com/bahadir04/grupa247-bot/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET ACTIVITY RANKING QUERY
// Top members by activity points. Points are not unique, so ties break by
// Telegram ID ascending - the ordering is stable across repeated calls.
// ══════════════════════════════════════════════════════════════════════════════

// RankingSize is how many members the activity ranking shows.
const RankingSize = 5

// RankedMemberDTO is one entry of the activity ranking.
type RankedMemberDTO struct {
	// Rank is the 1-based position.
	Rank int `json:"rank"`

	// TelegramID identifies the member.
	TelegramID int64 `json:"telegram_id"`

	// DisplayName is the member's display name.
	DisplayName string `json:"display_name"`

	// Points is the member's activity score.
	Points int `json:"points"`
}

// ActivityRankingResult contains the computed ranking.
type ActivityRankingResult struct {
	// Entries holds at most RankingSize members, best first.
	Entries []RankedMemberDTO `json:"entries"`

	// GeneratedAt is when the result was computed.
	GeneratedAt time.Time `json:"generated_at"`
}

// ActivityRankingProvider is implemented by the plain handler and by the
// caching decorator in persistence/redis.
type ActivityRankingProvider interface {
	Handle(ctx context.Context) (*ActivityRankingResult, error)
}

// GetActivityRankingHandler computes the activity ranking.
type GetActivityRankingHandler struct {
	members member.Repository
	clock   timeutil.Clock
}

// NewGetActivityRankingHandler creates the handler.
func NewGetActivityRankingHandler(members member.Repository, clock timeutil.Clock) *GetActivityRankingHandler {
	return &GetActivityRankingHandler{members: members, clock: clock}
}

// Handle computes the ranking from the store's current contents.
func (h *GetActivityRankingHandler) Handle(ctx context.Context) (*ActivityRankingResult, error) {
	top, err := h.members.TopByActivity(ctx, RankingSize)
	if err != nil {
		return nil, fmt.Errorf("get_activity_ranking: top by activity: %w", err)
	}

	result := &ActivityRankingResult{GeneratedAt: h.clock.Now()}
	for i, m := range top {
		result.Entries = append(result.Entries, RankedMemberDTO{
			Rank:        i + 1,
			TelegramID:  int64(m.TelegramID),
			DisplayName: m.DisplayName,
			Points:      int(m.Points),
		})
	}

	return result, nil
}
