package usecase

import (
	"context"
	"testing"

	"github.com/social360/social360/internal/domain"
)

func newModerationFixture() (*ModerationUsecase, *ContentUsecase, *mockContentRepo, *mockAccountRepo, *mockModerationRepo) {
	content := newMockContentRepo()
	accounts := newMockAccountRepo()
	moderation := newMockModerationRepo()

	contentUC := NewContentUsecase(content, accounts, moderation)
	contentUC.now = fixedNow

	uc := NewModerationUsecase(moderation, content, accounts)
	uc.now = fixedNow
	return uc, contentUC, content, accounts, moderation
}

func TestFlagMissingUpdate(t *testing.T) {
	uc, _, _, _, moderation := newModerationFixture()

	ok, err := uc.Flag(context.Background(), 42, "bob", "offensive", domain.SeverityHigh)
	if err != nil {
		t.Fatalf("flag failed: %v", err)
	}
	if ok {
		t.Fatalf("expected flag of missing update to report false")
	}
	if len(moderation.flags) != 0 {
		t.Fatalf("expected no flag to be stored")
	}
}

func TestFlagRecordsWarning(t *testing.T) {
	uc, contentUC, _, accounts, moderation := newModerationFixture()

	accounts.accounts["alice"] = domain.Account{Identity: "alice", Handle: "alice"}
	id, _ := contentUC.Post(context.Background(), "alice", "perfectly fine")

	ok, err := uc.Flag(context.Background(), id, "bob", "misleading", domain.SeverityMedium)
	if err != nil || !ok {
		t.Fatalf("flag failed: ok=%v err=%v", ok, err)
	}

	if len(moderation.flags) != 1 {
		t.Fatalf("expected one flag got %d", len(moderation.flags))
	}
	flag := moderation.flags[0]
	if flag.UpdateID != id || flag.FlaggedBy != "bob" || flag.Severity != domain.SeverityMedium {
		t.Fatalf("unexpected flag %+v", flag)
	}

	// The warning lands on the update's author, not the reporter, and manual
	// warnings carry no expiry stamp.
	warnings, _ := uc.Warnings(context.Background(), "alice")
	if len(warnings) != 1 {
		t.Fatalf("expected one warning got %d", len(warnings))
	}
	if warnings[0].ExpiresAt != nil {
		t.Fatalf("expected no expiry on manual warning")
	}
	if accounts.accounts["alice"].WarningCount != 1 {
		t.Fatalf("expected warning count 1 got %d", accounts.accounts["alice"].WarningCount)
	}
}

func TestFlagModeratedUpdate(t *testing.T) {
	uc, contentUC, _, _, moderation := newModerationFixture()

	id, _ := contentUC.Post(context.Background(), "alice", "perfectly fine")
	contentUC.Moderate(context.Background(), id, "manual review")

	ok, err := uc.Flag(context.Background(), id, "bob", "late report", domain.SeverityLow)
	if err != nil {
		t.Fatalf("flag failed: %v", err)
	}
	if ok {
		t.Fatalf("expected flag of moderated update to report false")
	}
	if len(moderation.flags) != 0 {
		t.Fatalf("expected no flag to be stored")
	}
}

func TestResolveFlag(t *testing.T) {
	uc, contentUC, _, _, _ := newModerationFixture()

	id, _ := contentUC.Post(context.Background(), "alice", "perfectly fine")
	uc.Flag(context.Background(), id, "bob", "misleading", domain.SeverityMedium)

	open, _ := uc.FlaggedContent(context.Background())
	if len(open) != 1 {
		t.Fatalf("expected one open flag got %d", len(open))
	}

	ok, err := uc.Resolve(context.Background(), open[0].ID)
	if err != nil || !ok {
		t.Fatalf("resolve failed: ok=%v err=%v", ok, err)
	}

	open, _ = uc.FlaggedContent(context.Background())
	if len(open) != 0 {
		t.Fatalf("expected no open flags after resolution")
	}

	ok, _ = uc.Resolve(context.Background(), 999)
	if ok {
		t.Fatalf("expected resolve of missing flag to report false")
	}
}

func TestModeratedUpdatesListing(t *testing.T) {
	uc, contentUC, _, _, _ := newModerationFixture()

	first, _ := contentUC.Post(context.Background(), "alice", "perfectly fine")
	contentUC.Post(context.Background(), "alice", "also fine")
	contentUC.Moderate(context.Background(), first, "manual review")

	moderated, err := uc.ModeratedUpdates(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(moderated) != 1 || moderated[0].ID != first {
		t.Fatalf("expected only the moderated update, got %+v", moderated)
	}
}
