package usecase

import (
	"context"
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestAccountSuspendMissing(t *testing.T) {
	repo := newMockAccountRepo()
	uc := NewAccountUsecase(repo)

	ok, err := uc.Suspend(context.Background(), "nobody", time.Hour)
	if err != nil {
		t.Fatalf("suspend failed: %v", err)
	}
	if ok {
		t.Fatalf("expected suspend of missing account to report false")
	}
	if len(repo.accounts) != 0 {
		t.Fatalf("expected no account to be created")
	}
}

func TestAccountSuspendSetsDeadline(t *testing.T) {
	repo := newMockAccountRepo()
	uc := NewAccountUsecase(repo)
	uc.now = fixedNow

	if err := uc.Register(context.Background(), "alice", "alice"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	ok, err := uc.Suspend(context.Background(), "alice", time.Hour)
	if err != nil || !ok {
		t.Fatalf("suspend failed: ok=%v err=%v", ok, err)
	}

	account := repo.accounts["alice"]
	if !account.IsSuspended {
		t.Fatalf("expected account to be suspended")
	}
	want := fixedNow().Add(time.Hour)
	if account.SuspendedUntil == nil || !account.SuspendedUntil.Equal(want) {
		t.Fatalf("expected deadline %v got %v", want, account.SuspendedUntil)
	}
}

func TestAccountUnsuspendClears(t *testing.T) {
	repo := newMockAccountRepo()
	uc := NewAccountUsecase(repo)
	uc.now = fixedNow

	uc.Register(context.Background(), "alice", "alice")
	uc.Suspend(context.Background(), "alice", time.Hour)

	ok, err := uc.Unsuspend(context.Background(), "alice")
	if err != nil || !ok {
		t.Fatalf("unsuspend failed: ok=%v err=%v", ok, err)
	}

	account := repo.accounts["alice"]
	if account.IsSuspended || account.SuspendedUntil != nil {
		t.Fatalf("expected suspension fields cleared, got %+v", account)
	}
}

func TestAccountVerify(t *testing.T) {
	repo := newMockAccountRepo()
	uc := NewAccountUsecase(repo)

	uc.Register(context.Background(), "alice", "alice")

	ok, err := uc.Verify(context.Background(), "alice")
	if err != nil || !ok {
		t.Fatalf("verify failed: ok=%v err=%v", ok, err)
	}
	if !repo.accounts["alice"].IsVerified {
		t.Fatalf("expected account to be verified")
	}

	ok, _ = uc.Verify(context.Background(), "nobody")
	if ok {
		t.Fatalf("expected verify of missing account to report false")
	}
}

func TestAccountRegisterOverwrites(t *testing.T) {
	repo := newMockAccountRepo()
	uc := NewAccountUsecase(repo)
	uc.now = fixedNow

	uc.Register(context.Background(), "alice", "alice")
	uc.Suspend(context.Background(), "alice", time.Hour)
	uc.Verify(context.Background(), "alice")

	// Re-registering resets to a fresh default record, last write wins.
	if err := uc.Register(context.Background(), "alice", "alice2"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	account := repo.accounts["alice"]
	if account.Handle != "alice2" {
		t.Fatalf("expected handle alice2 got %s", account.Handle)
	}
	if account.IsSuspended || account.IsVerified || account.WarningCount != 0 {
		t.Fatalf("expected fresh record, got %+v", account)
	}
}
