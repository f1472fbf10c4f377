package usecase

import (
	"context"
	"testing"
)

func TestFollowMirrorsBothDirections(t *testing.T) {
	repo := newMockGraphRepo()
	uc := NewGraphUsecase(repo)

	if err := uc.Follow(context.Background(), "alice", "bob"); err != nil {
		t.Fatalf("follow failed: %v", err)
	}

	following, _ := uc.Following(context.Background(), "alice")
	if len(following) != 1 || following[0] != "bob" {
		t.Fatalf("unexpected following set %v", following)
	}

	followers, _ := uc.Followers(context.Background(), "bob")
	if len(followers) != 1 || followers[0] != "alice" {
		t.Fatalf("unexpected followers set %v", followers)
	}
}

func TestFollowIdempotent(t *testing.T) {
	repo := newMockGraphRepo()
	uc := NewGraphUsecase(repo)

	uc.Follow(context.Background(), "alice", "bob")
	uc.Follow(context.Background(), "alice", "bob")

	following, _ := uc.Following(context.Background(), "alice")
	if len(following) != 1 {
		t.Fatalf("expected set semantics, got %v", following)
	}
}

func TestSelfFollowAllowed(t *testing.T) {
	repo := newMockGraphRepo()
	uc := NewGraphUsecase(repo)

	if err := uc.Follow(context.Background(), "alice", "alice"); err != nil {
		t.Fatalf("self-follow failed: %v", err)
	}
	following, _ := uc.Following(context.Background(), "alice")
	if len(following) != 1 || following[0] != "alice" {
		t.Fatalf("expected self edge, got %v", following)
	}
}
