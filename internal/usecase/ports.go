package usecase

import (
	"context"

	"github.com/social360/social360/internal/domain"
)

// AccountRepository defines persistence for account records.
type AccountRepository interface {
	Upsert(ctx context.Context, account domain.Account) error
	Get(ctx context.Context, identity string) (domain.Account, error)
	SearchByHandlePrefix(ctx context.Context, prefix string) ([]domain.Account, error)
}

// GraphRepository defines persistence for the follow graph. A single edge
// store serves both directions, which keeps the outbound/inbound mirror
// invariant structural.
type GraphRepository interface {
	AddEdge(ctx context.Context, follower, followee string) error
	Following(ctx context.Context, identity string) ([]string, error)
	Followers(ctx context.Context, identity string) ([]string, error)
}

// ContentRepository defines persistence for updates. Create and
// CreateDerived allocate ids from the shared monotonic counter; the derived
// variant also bumps the original's repost/quote counter in the same
// transaction.
type ContentRepository interface {
	Create(ctx context.Context, update domain.Update) (int64, error)
	CreateDerived(ctx context.Context, update domain.Update, originalID int64, kind domain.DerivedKind) (int64, error)
	Get(ctx context.Context, id int64) (domain.Update, error)
	SetModeration(ctx context.Context, id int64, moderated, hidden bool, reason *string) (bool, error)
	ListByAuthors(ctx context.Context, authors []string, offset, limit int) ([]domain.Update, error)
	SearchContent(ctx context.Context, keyword string) ([]domain.Update, error)
	ListModerated(ctx context.Context) ([]domain.Update, error)
}

// EngagementRepository defines persistence for per-update membership sets.
type EngagementRepository interface {
	ToggleLike(ctx context.Context, updateID int64, identity string) (bool, error)
	HasLiked(ctx context.Context, updateID int64, identity string) (bool, error)
	HasReposted(ctx context.Context, updateID int64, identity string) (bool, error)
}

// ModerationRepository defines persistence for flags and warnings.
type ModerationRepository interface {
	CreateFlag(ctx context.Context, flag domain.Flag) (int64, error)
	Resolve(ctx context.Context, flagID int64) (bool, error)
	ListOpenFlags(ctx context.Context) ([]domain.Flag, error)
	AppendWarning(ctx context.Context, warning domain.Warning) (int64, error)
	ListWarnings(ctx context.Context, identity string) ([]domain.Warning, error)
}

// InsightCache memoizes analysis reports. Safe because the heuristic is pure.
type InsightCache interface {
	Get(ctx context.Context, content string) (domain.Insights, bool)
	Set(ctx context.Context, content string, insights domain.Insights)
}
