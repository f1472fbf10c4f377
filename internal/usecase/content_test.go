package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/social360/social360/internal/domain"
)

func newContentFixture() (*ContentUsecase, *mockContentRepo, *mockAccountRepo, *mockModerationRepo) {
	content := newMockContentRepo()
	accounts := newMockAccountRepo()
	moderation := newMockModerationRepo()
	uc := NewContentUsecase(content, accounts, moderation)
	uc.now = fixedNow
	return uc, content, accounts, moderation
}

func TestPostWithoutAccount(t *testing.T) {
	uc, content, _, _ := newContentFixture()

	id, err := uc.Post(context.Background(), "alice", "first update")
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected id 1 got %d", id)
	}
	if content.updates[1].Author != "alice" {
		t.Fatalf("expected stored author alice got %s", content.updates[1].Author)
	}
}

func TestPostIDsMonotonic(t *testing.T) {
	uc, _, _, _ := newContentFixture()

	for want := int64(1); want <= 3; want++ {
		id, err := uc.Post(context.Background(), "alice", "another update")
		if err != nil {
			t.Fatalf("post failed: %v", err)
		}
		if id != want {
			t.Fatalf("expected id %d got %d", want, id)
		}
	}
}

func TestPostBlockedWhileSuspended(t *testing.T) {
	uc, content, accounts, _ := newContentFixture()

	until := fixedNow().Add(time.Hour)
	accounts.accounts["alice"] = domain.Account{
		Identity:       "alice",
		IsSuspended:    true,
		SuspendedUntil: &until,
	}

	id, err := uc.Post(context.Background(), "alice", "blocked update")
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}
	if id != 0 {
		t.Fatalf("expected sentinel 0 got %d", id)
	}
	if len(content.updates) != 0 {
		t.Fatalf("expected nothing stored")
	}
}

func TestPostAllowedAtDeadline(t *testing.T) {
	uc, _, accounts, _ := newContentFixture()

	// Deadline equal to now no longer blocks; the stale flags stay on record.
	until := fixedNow()
	accounts.accounts["alice"] = domain.Account{
		Identity:       "alice",
		IsSuspended:    true,
		SuspendedUntil: &until,
	}

	id, err := uc.Post(context.Background(), "alice", "back again")
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected id 1 got %d", id)
	}
	if !accounts.accounts["alice"].IsSuspended {
		t.Fatalf("expected suspension record untouched by lazy expiry")
	}
}

func TestPostIndefiniteSuspension(t *testing.T) {
	uc, _, accounts, _ := newContentFixture()

	accounts.accounts["alice"] = domain.Account{Identity: "alice", IsSuspended: true}

	id, err := uc.Post(context.Background(), "alice", "still blocked")
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}
	if id != 0 {
		t.Fatalf("expected sentinel 0 got %d", id)
	}
}

func TestPostFlaggedStoredModerated(t *testing.T) {
	uc, content, accounts, moderation := newContentFixture()

	accounts.accounts["alice"] = domain.Account{Identity: "alice", Handle: "alice"}

	id, err := uc.Post(context.Background(), "alice", "free money, click here")
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected flagged update to still be stored, got id %d", id)
	}

	stored := content.updates[1]
	if !stored.IsModerated || !stored.IsHidden {
		t.Fatalf("expected stored update moderated and hidden, got %+v", stored)
	}
	if stored.ModerationReason == nil || *stored.ModerationReason != "spam content" {
		t.Fatalf("unexpected moderation reason %v", stored.ModerationReason)
	}

	if len(moderation.warnings) != 1 {
		t.Fatalf("expected one warning got %d", len(moderation.warnings))
	}
	warning := moderation.warnings[0]
	if warning.Identity != "alice" || warning.Severity != domain.SeverityLow {
		t.Fatalf("unexpected warning %+v", warning)
	}
	wantExpiry := fixedNow().Add(24 * time.Hour)
	if warning.ExpiresAt == nil || !warning.ExpiresAt.Equal(wantExpiry) {
		t.Fatalf("expected expiry %v got %v", wantExpiry, warning.ExpiresAt)
	}

	if accounts.accounts["alice"].WarningCount != 1 {
		t.Fatalf("expected warning count 1 got %d", accounts.accounts["alice"].WarningCount)
	}
}

func TestPostFlaggedWithoutAccount(t *testing.T) {
	uc, _, accounts, moderation := newContentFixture()

	id, err := uc.Post(context.Background(), "ghost", "total scam")
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected id 1 got %d", id)
	}

	// The warning record is kept even though no account counter exists.
	if len(moderation.warnings) != 1 {
		t.Fatalf("expected one warning got %d", len(moderation.warnings))
	}
	if len(accounts.accounts) != 0 {
		t.Fatalf("expected no account to be created")
	}
}

func TestRepostMissingOriginal(t *testing.T) {
	uc, content, _, _ := newContentFixture()

	id, err := uc.Repost(context.Background(), 42, "alice")
	if err != nil {
		t.Fatalf("repost failed: %v", err)
	}
	if id != 0 {
		t.Fatalf("expected sentinel 0 got %d", id)
	}
	if len(content.updates) != 0 {
		t.Fatalf("expected nothing stored")
	}
	if content.nextID != 1 {
		t.Fatalf("expected id counter untouched, got %d", content.nextID)
	}
}

func TestRepostWrapsContent(t *testing.T) {
	uc, content, _, _ := newContentFixture()

	origID, _ := uc.Post(context.Background(), "alice", "original words")

	id, err := uc.Repost(context.Background(), origID, "bob")
	if err != nil {
		t.Fatalf("repost failed: %v", err)
	}

	repost := content.updates[id]
	if repost.Content != "Reposted: original words" {
		t.Fatalf("unexpected repost content %q", repost.Content)
	}
	if repost.OriginalPostID == nil || *repost.OriginalPostID != origID {
		t.Fatalf("expected original reference %d got %v", origID, repost.OriginalPostID)
	}
	if content.updates[origID].Reposts != 1 {
		t.Fatalf("expected repost counter 1 got %d", content.updates[origID].Reposts)
	}
}

func TestQuoteMissingOriginal(t *testing.T) {
	uc, content, _, _ := newContentFixture()

	id, err := uc.Quote(context.Background(), 42, "alice", "my take")
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if id != 0 {
		t.Fatalf("expected sentinel 0 got %d", id)
	}
	if len(content.updates) != 0 {
		t.Fatalf("expected nothing stored")
	}
	if content.nextID != 1 {
		t.Fatalf("expected id counter untouched, got %d", content.nextID)
	}
}

func TestQuoteSnapshotsOriginal(t *testing.T) {
	uc, content, _, _ := newContentFixture()

	origID, _ := uc.Post(context.Background(), "alice", "original words")

	id, err := uc.Quote(context.Background(), origID, "bob", "my take")
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}

	quote := content.updates[id]
	if quote.Content != "Quote: my take" {
		t.Fatalf("unexpected quote content %q", quote.Content)
	}
	if quote.QuoteContent == nil || *quote.QuoteContent != "original words" {
		t.Fatalf("expected snapshot of original content, got %v", quote.QuoteContent)
	}
	if content.updates[origID].Quotes != 1 {
		t.Fatalf("expected quote counter 1 got %d", content.updates[origID].Quotes)
	}
}

func TestModerateAndUnmoderate(t *testing.T) {
	uc, content, _, _ := newContentFixture()

	id, _ := uc.Post(context.Background(), "alice", "perfectly fine")

	ok, err := uc.Moderate(context.Background(), id, "manual review")
	if err != nil || !ok {
		t.Fatalf("moderate failed: ok=%v err=%v", ok, err)
	}
	stored := content.updates[id]
	if !stored.IsModerated || !stored.IsHidden || stored.ModerationReason == nil {
		t.Fatalf("expected moderated update, got %+v", stored)
	}

	ok, err = uc.Unmoderate(context.Background(), id)
	if err != nil || !ok {
		t.Fatalf("unmoderate failed: ok=%v err=%v", ok, err)
	}
	stored = content.updates[id]
	if stored.IsModerated || stored.IsHidden || stored.ModerationReason != nil {
		t.Fatalf("expected cleared moderation, got %+v", stored)
	}

	ok, _ = uc.Moderate(context.Background(), 999, "missing")
	if ok {
		t.Fatalf("expected moderate of missing update to report false")
	}
}
