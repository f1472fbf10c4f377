package usecase

import (
	"context"

	"github.com/social360/social360/internal/domain"
	"github.com/social360/social360/internal/insight"
)

type InsightUsecase struct {
	cache InsightCache
}

func NewInsightUsecase(cache InsightCache) *InsightUsecase {
	return &InsightUsecase{cache: cache}
}

// Analyze runs the deterministic scoring heuristic, consulting the cache
// first. A nil cache disables memoization.
func (uc *InsightUsecase) Analyze(ctx context.Context, content string) domain.Insights {
	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx, content); ok {
			return cached
		}
	}
	report := insight.Analyze(content)
	if uc.cache != nil {
		uc.cache.Set(ctx, content, report)
	}
	return report
}
