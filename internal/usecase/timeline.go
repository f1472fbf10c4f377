package usecase

import (
	"context"

	"github.com/social360/social360/internal/domain"
)

type TimelineUsecase struct {
	content  ContentRepository
	graph    GraphRepository
	accounts AccountRepository
}

func NewTimelineUsecase(
	content ContentRepository,
	graph GraphRepository,
	accounts AccountRepository,
) *TimelineUsecase {
	return &TimelineUsecase{content: content, graph: graph, accounts: accounts}
}

// Timeline returns updates authored by the caller or anyone they follow,
// newest first, sliced to the requested page. An out-of-range page yields an
// empty slice. Hidden and moderated updates are not filtered out; visibility
// is the caller's concern.
func (uc *TimelineUsecase) Timeline(ctx context.Context, caller string, page, pageSize int) ([]domain.Update, error) {
	if page < 0 || pageSize <= 0 {
		return []domain.Update{}, nil
	}
	following, err := uc.graph.Following(ctx, caller)
	if err != nil {
		return nil, err
	}
	authors := append([]string{caller}, following...)
	return uc.content.ListByAuthors(ctx, authors, page*pageSize, pageSize)
}

// UserUpdates pages through a single author's updates, newest first.
func (uc *TimelineUsecase) UserUpdates(ctx context.Context, identity string, page, pageSize int) ([]domain.Update, error) {
	if page < 0 || pageSize <= 0 {
		return []domain.Update{}, nil
	}
	return uc.content.ListByAuthors(ctx, []string{identity}, page*pageSize, pageSize)
}

// SearchUpdates is a case-insensitive substring match over content,
// unranked and unpaginated.
func (uc *TimelineUsecase) SearchUpdates(ctx context.Context, keyword string) ([]domain.Update, error) {
	return uc.content.SearchContent(ctx, keyword)
}

// SearchUsers is a case-insensitive prefix match over handles.
func (uc *TimelineUsecase) SearchUsers(ctx context.Context, prefix string) ([]domain.Account, error) {
	return uc.accounts.SearchByHandlePrefix(ctx, prefix)
}
