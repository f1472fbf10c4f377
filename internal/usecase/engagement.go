package usecase

import "context"

type EngagementUsecase struct {
	repo EngagementRepository
}

func NewEngagementUsecase(repo EngagementRepository) *EngagementUsecase {
	return &EngagementUsecase{repo: repo}
}

// ToggleLike flips the caller's membership in the update's like set and
// returns the new state (true = now liked). The membership flip happens even
// for a nonexistent update; only the counter write is skipped in that case.
func (uc *EngagementUsecase) ToggleLike(ctx context.Context, updateID int64, identity string) (bool, error) {
	return uc.repo.ToggleLike(ctx, updateID, identity)
}

func (uc *EngagementUsecase) HasLiked(ctx context.Context, updateID int64, identity string) (bool, error) {
	return uc.repo.HasLiked(ctx, updateID, identity)
}

// HasReposted reads the repost membership store. No write path populates it
// today, so it always reports false.
func (uc *EngagementUsecase) HasReposted(ctx context.Context, updateID int64, identity string) (bool, error) {
	return uc.repo.HasReposted(ctx, updateID, identity)
}
