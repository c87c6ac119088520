package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/bahadir04/grupa247-bot/internal/application/query"
)

// ══════════════════════════════════════════════════════════════════════════════
// ACTIVITY RANKING CACHE
// Decorates the activity ranking query with a short-TTL Redis cache.
// A miss or any Redis failure falls through to the underlying query; cache
// trouble never fails an interaction.
// ══════════════════════════════════════════════════════════════════════════════

const rankingKey = "ranking:activity"

// RankingCache implements query.ActivityRankingProvider.
type RankingCache struct {
	cache  *Cache
	next   query.ActivityRankingProvider
	logger *slog.Logger
}

// NewRankingCache creates the caching decorator around next.
func NewRankingCache(cache *Cache, next query.ActivityRankingProvider, logger *slog.Logger) *RankingCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &RankingCache{cache: cache, next: next, logger: logger}
}

// Handle returns the cached ranking when fresh, otherwise computes and
// stores it.
func (c *RankingCache) Handle(ctx context.Context) (*query.ActivityRankingResult, error) {
	data, err := c.cache.GetBytes(ctx, rankingKey)
	if err == nil {
		var cached query.ActivityRankingResult
		if jsonErr := json.Unmarshal(data, &cached); jsonErr == nil {
			return &cached, nil
		}
		// Corrupt entry: drop it and recompute.
		_ = c.cache.Delete(ctx, rankingKey)
	} else if !errors.Is(err, ErrCacheMiss) {
		c.logger.Warn("ranking cache read failed, falling through", "error", err)
	}

	result, err := c.next.Handle(ctx)
	if err != nil {
		return nil, err
	}

	if data, jsonErr := json.Marshal(result); jsonErr == nil {
		if setErr := c.cache.SetBytes(ctx, rankingKey, data, TTLRanking); setErr != nil {
			c.logger.Warn("ranking cache write failed", "error", setErr)
		}
	}

	return result, nil
}

// Invalidate drops the cached ranking.
func (c *RankingCache) Invalidate(ctx context.Context) error {
	return c.cache.Delete(ctx, rankingKey)
}
