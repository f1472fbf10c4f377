package usecase

import "context"

type GraphUsecase struct {
	repo GraphRepository
}

func NewGraphUsecase(repo GraphRepository) *GraphUsecase {
	return &GraphUsecase{repo: repo}
}

// Follow adds followee to follower's outbound set with set semantics; the
// inbound side is the same edge viewed from the other end. Self-follow is
// not rejected and there is no unfollow.
func (uc *GraphUsecase) Follow(ctx context.Context, follower, followee string) error {
	return uc.repo.AddEdge(ctx, follower, followee)
}

func (uc *GraphUsecase) Following(ctx context.Context, identity string) ([]string, error) {
	return uc.repo.Following(ctx, identity)
}

func (uc *GraphUsecase) Followers(ctx context.Context, identity string) ([]string, error) {
	return uc.repo.Followers(ctx, identity)
}
