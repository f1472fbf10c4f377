package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zeebo/xxh3"

	"github.com/social360/social360/internal/domain"
	"github.com/social360/social360/internal/usecase"
)

const insightCacheTTL = 6 * time.Hour

// InsightCacheService memoizes analysis reports in redis, keyed by a hash of
// the content. The heuristic is pure, so a cached report never goes stale.
type InsightCacheService struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewInsightCacheService(rdb *redis.Client) *InsightCacheService {
	return &InsightCacheService{rdb: rdb, ttl: insightCacheTTL}
}

func insightCacheKey(content string) string {
	return fmt.Sprintf("social360:insight:%016x", xxh3.HashString(content))
}

func (s *InsightCacheService) Get(ctx context.Context, content string) (domain.Insights, bool) {
	raw, err := s.rdb.Get(ctx, insightCacheKey(content)).Bytes()
	if err != nil {
		return domain.Insights{}, false
	}
	var cached domain.Insights
	if err := json.Unmarshal(raw, &cached); err != nil {
		return domain.Insights{}, false
	}
	return cached, true
}

func (s *InsightCacheService) Set(ctx context.Context, content string, insights domain.Insights) {
	encoded, err := json.Marshal(insights)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, insightCacheKey(content), encoded, s.ttl).Err(); err != nil {
		slog.DebugContext(ctx, "insight cache write failed",
			slog.String("error", err.Error()),
			slog.String("module", "service"),
		)
	}
}

var _ usecase.InsightCache = (*InsightCacheService)(nil)
