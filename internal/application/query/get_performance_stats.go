package query

import (
	"context"
	"fmt"
	"time"

	"github.com/bahadir04/grupa247-bot/internal/domain/performance"
	"github.com/bahadir04/grupa247-bot/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET PERFORMANCE STATS QUERY
// Global grade average plus per-subject averages. Subjects group by exact
// string match and are ordered lexicographically so repeated calls render
// identically.
// ══════════════════════════════════════════════════════════════════════════════

// SubjectAverageDTO is one subject's rounded average grade.
type SubjectAverageDTO struct {
	// Subject is the exact subject string as stored.
	Subject string

	// Average is the mean grade, rounded to one decimal.
	Average float64
}

// PerformanceStatsResult contains the computed performance statistics.
type PerformanceStatsResult struct {
	// GlobalAverage is the mean grade over all entries, rounded to one
	// decimal. 0 when there are no entries.
	GlobalAverage float64

	// Subjects lists per-subject averages, ordered by subject ascending.
	Subjects []SubjectAverageDTO

	// GeneratedAt is when the result was computed.
	GeneratedAt time.Time
}

// GetPerformanceStatsHandler computes performance statistics.
type GetPerformanceStatsHandler struct {
	performance performance.Repository
	clock       timeutil.Clock
}

// NewGetPerformanceStatsHandler creates the handler.
func NewGetPerformanceStatsHandler(perf performance.Repository, clock timeutil.Clock) *GetPerformanceStatsHandler {
	return &GetPerformanceStatsHandler{performance: perf, clock: clock}
}

// Handle computes the performance statistics from the store's current contents.
func (h *GetPerformanceStatsHandler) Handle(ctx context.Context) (*PerformanceStatsResult, error) {
	global, err := h.performance.GlobalAverage(ctx)
	if err != nil {
		return nil, fmt.Errorf("get_performance_stats: global average: %w", err)
	}

	subjects, err := h.performance.SubjectAverages(ctx)
	if err != nil {
		return nil, fmt.Errorf("get_performance_stats: subject averages: %w", err)
	}

	result := &PerformanceStatsResult{
		GlobalAverage: round1(global),
		GeneratedAt:   h.clock.Now(),
	}

	for _, s := range subjects {
		result.Subjects = append(result.Subjects, SubjectAverageDTO{
			Subject: s.Subject,
			Average: round1(s.Average),
		})
	}

	return result, nil
}
