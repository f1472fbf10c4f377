package usecase

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/social360/social360/internal/domain"
)

type ModerationUsecase struct {
	moderation ModerationRepository
	content    ContentRepository
	accounts   AccountRepository
	now        func() time.Time
}

func NewModerationUsecase(
	moderation ModerationRepository,
	content ContentRepository,
	accounts AccountRepository,
) *ModerationUsecase {
	return &ModerationUsecase{
		moderation: moderation,
		content:    content,
		accounts:   accounts,
		now:        time.Now,
	}
}

// Flag records a manual report against an update that is not already
// moderated, and appends a warning to the update's author. Returns false
// when the update is missing or already moderated.
func (uc *ModerationUsecase) Flag(ctx context.Context, updateID int64, flaggedBy, reason string, severity domain.Severity) (bool, error) {
	ctx, span := tracer.Start(ctx, "Moderation.Usecase.Flag")
	defer span.End()

	update, err := uc.content.Get(ctx, updateID)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if update.IsModerated {
		return false, nil
	}

	flag := domain.Flag{
		UpdateID:  updateID,
		FlaggedBy: flaggedBy,
		Reason:    reason,
		Severity:  severity,
		CreatedAt: uc.now(),
	}
	if _, err := uc.moderation.CreateFlag(ctx, flag); err != nil {
		return false, pkgerrors.Wrap(err, "ModerationUsecase.Flag: create failed")
	}

	warning := domain.Warning{
		Identity:  update.Author,
		Reason:    reason,
		Severity:  severity,
		CreatedAt: uc.now(),
	}
	if _, err := uc.moderation.AppendWarning(ctx, warning); err != nil {
		return false, pkgerrors.Wrap(err, "ModerationUsecase.Flag: append warning failed")
	}
	if err := bumpWarningCount(ctx, uc.accounts, update.Author); err != nil {
		return false, err
	}
	return true, nil
}

// Resolve marks a flag resolved. The underlying update's hidden/moderated
// state is untouched.
func (uc *ModerationUsecase) Resolve(ctx context.Context, flagID int64) (bool, error) {
	return uc.moderation.Resolve(ctx, flagID)
}

func (uc *ModerationUsecase) Warnings(ctx context.Context, identity string) ([]domain.Warning, error) {
	return uc.moderation.ListWarnings(ctx, identity)
}

// FlaggedContent returns flags awaiting resolution. Resolved flags stay
// stored but are no longer part of the review queue.
func (uc *ModerationUsecase) FlaggedContent(ctx context.Context) ([]domain.Flag, error) {
	return uc.moderation.ListOpenFlags(ctx)
}

func (uc *ModerationUsecase) ModeratedUpdates(ctx context.Context) ([]domain.Update, error) {
	return uc.content.ListModerated(ctx)
}
