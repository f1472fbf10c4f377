package usecase

import (
	"context"
	"testing"
)

func TestToggleLike(t *testing.T) {
	repo := newMockEngagementRepo()
	uc := NewEngagementUsecase(repo)

	liked, err := uc.ToggleLike(context.Background(), 1, "alice")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !liked {
		t.Fatalf("expected first toggle to like")
	}

	has, _ := uc.HasLiked(context.Background(), 1, "alice")
	if !has {
		t.Fatalf("expected membership after like")
	}

	liked, err = uc.ToggleLike(context.Background(), 1, "alice")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if liked {
		t.Fatalf("expected second toggle to unlike")
	}

	has, _ = uc.HasLiked(context.Background(), 1, "alice")
	if has {
		t.Fatalf("expected no membership after unlike")
	}
}

func TestHasRepostedDefaultsFalse(t *testing.T) {
	uc := NewEngagementUsecase(newMockEngagementRepo())

	has, err := uc.HasReposted(context.Background(), 1, "alice")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if has {
		t.Fatalf("expected no repost membership")
	}
}
