package usecase

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/social360/social360/internal/automod"
	"github.com/social360/social360/internal/domain"
)

var tracer = otel.Tracer("usecase")

const autoWarningExpiry = 24 * time.Hour

type ContentUsecase struct {
	content    ContentRepository
	accounts   AccountRepository
	moderation ModerationRepository
	now        func() time.Time
}

func NewContentUsecase(
	content ContentRepository,
	accounts AccountRepository,
	moderation ModerationRepository,
) *ContentUsecase {
	return &ContentUsecase{
		content:    content,
		accounts:   accounts,
		moderation: moderation,
		now:        time.Now,
	}
}

// Post publishes an original update. Returns 0 when the author's suspension
// is currently active. The content filter runs before storage; a flagged
// update is stored already moderated and hidden, and the author accrues a
// warning with a 24 hour expiry stamp.
func (uc *ContentUsecase) Post(ctx context.Context, author, content string) (int64, error) {
	ctx, span := tracer.Start(ctx, "Content.Usecase.Post")
	defer span.End()

	blocked, err := uc.suspensionBlocks(ctx, author)
	if err != nil {
		return 0, err
	}
	if blocked {
		return 0, nil
	}

	update := domain.Update{
		Author:    author,
		Content:   content,
		CreatedAt: uc.now(),
	}
	verdict := automod.Filter(content)
	applyVerdict(&update, verdict)

	id, err := uc.content.Create(ctx, update)
	if err != nil {
		return 0, pkgerrors.Wrap(err, "ContentUsecase.Post: create failed")
	}

	if verdict.Flagged {
		if err := uc.recordAutoWarning(ctx, author, verdict); err != nil {
			return 0, err
		}
	}
	return id, nil
}

// Repost publishes a derived update wrapping the original's content and
// bumps the original's repost counter. A missing original yields 0 with no
// side effects. The repost is filtered independently of the original, and
// the original's moderation state does not block it.
func (uc *ContentUsecase) Repost(ctx context.Context, originalID int64, author string) (int64, error) {
	ctx, span := tracer.Start(ctx, "Content.Usecase.Repost")
	defer span.End()

	original, err := uc.content.Get(ctx, originalID)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	update := domain.Update{
		Author:         author,
		Content:        "Reposted: " + original.Content,
		CreatedAt:      uc.now(),
		OriginalPostID: &originalID,
	}
	verdict := automod.Filter(update.Content)
	applyVerdict(&update, verdict)

	id, err := uc.content.CreateDerived(ctx, update, originalID, domain.DerivedRepost)
	if err != nil {
		return 0, pkgerrors.Wrap(err, "ContentUsecase.Repost: create failed")
	}

	if verdict.Flagged {
		if err := uc.recordAutoWarning(ctx, author, verdict); err != nil {
			return 0, err
		}
	}
	return id, nil
}

// Quote publishes a derived update with the caller's commentary and a
// snapshot of the original content, and bumps the original's quote counter.
func (uc *ContentUsecase) Quote(ctx context.Context, originalID int64, author, quoteText string) (int64, error) {
	ctx, span := tracer.Start(ctx, "Content.Usecase.Quote")
	defer span.End()

	original, err := uc.content.Get(ctx, originalID)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	snapshot := original.Content
	update := domain.Update{
		Author:         author,
		Content:        "Quote: " + quoteText,
		CreatedAt:      uc.now(),
		OriginalPostID: &originalID,
		QuoteContent:   &snapshot,
	}
	verdict := automod.Filter(update.Content)
	applyVerdict(&update, verdict)

	id, err := uc.content.CreateDerived(ctx, update, originalID, domain.DerivedQuote)
	if err != nil {
		return 0, pkgerrors.Wrap(err, "ContentUsecase.Quote: create failed")
	}

	if verdict.Flagged {
		if err := uc.recordAutoWarning(ctx, author, verdict); err != nil {
			return 0, err
		}
	}
	return id, nil
}

// Moderate is the manual override: hides the update and records the reason.
func (uc *ContentUsecase) Moderate(ctx context.Context, id int64, reason string) (bool, error) {
	return uc.content.SetModeration(ctx, id, true, true, &reason)
}

// Unmoderate clears the moderation fields.
func (uc *ContentUsecase) Unmoderate(ctx context.Context, id int64) (bool, error) {
	return uc.content.SetModeration(ctx, id, false, false, nil)
}

func (uc *ContentUsecase) suspensionBlocks(ctx context.Context, author string) (bool, error) {
	account, err := uc.accounts.Get(ctx, author)
	if errors.Is(err, domain.ErrNotFound) {
		// No account record means no suspension record either.
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !account.CanPost(uc.now()), nil
}

func (uc *ContentUsecase) recordAutoWarning(ctx context.Context, author string, verdict automod.Verdict) error {
	expires := uc.now().Add(autoWarningExpiry)
	warning := domain.Warning{
		Identity:  author,
		Reason:    verdict.Reason,
		Severity:  verdict.Severity,
		CreatedAt: uc.now(),
		ExpiresAt: &expires,
	}
	if _, err := uc.moderation.AppendWarning(ctx, warning); err != nil {
		return pkgerrors.Wrap(err, "ContentUsecase: append warning failed")
	}
	return bumpWarningCount(ctx, uc.accounts, author)
}

func applyVerdict(update *domain.Update, verdict automod.Verdict) {
	if !verdict.Flagged {
		return
	}
	reason := verdict.Reason
	update.IsModerated = true
	update.IsHidden = true
	update.ModerationReason = &reason
}

func bumpWarningCount(ctx context.Context, accounts AccountRepository, identity string) error {
	account, err := accounts.Get(ctx, identity)
	if errors.Is(err, domain.ErrNotFound) {
		// The warning itself is kept; only the account counter has no home.
		return nil
	}
	if err != nil {
		return err
	}
	account.WarningCount++
	return accounts.Upsert(ctx, account)
}
