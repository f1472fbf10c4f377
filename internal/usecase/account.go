package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/social360/social360/internal/domain"
)

type AccountUsecase struct {
	repo AccountRepository
	now  func() time.Time
}

func NewAccountUsecase(repo AccountRepository) *AccountUsecase {
	return &AccountUsecase{repo: repo, now: time.Now}
}

// Register inserts or overwrites the account for identity with a fresh
// default record. Handle collisions are permitted.
func (uc *AccountUsecase) Register(ctx context.Context, identity, handle string) error {
	return uc.repo.Upsert(ctx, domain.Account{Identity: identity, Handle: handle})
}

func (uc *AccountUsecase) Get(ctx context.Context, identity string) (domain.Account, error) {
	return uc.repo.Get(ctx, identity)
}

// Suspend sets the suspension deadline to now+d. Re-suspending overwrites
// the deadline. Returns false when the account does not exist.
func (uc *AccountUsecase) Suspend(ctx context.Context, identity string, d time.Duration) (bool, error) {
	account, err := uc.repo.Get(ctx, identity)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	until := uc.now().Add(d)
	account.IsSuspended = true
	account.SuspendedUntil = &until
	return true, uc.repo.Upsert(ctx, account)
}

func (uc *AccountUsecase) Unsuspend(ctx context.Context, identity string) (bool, error) {
	account, err := uc.repo.Get(ctx, identity)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	account.IsSuspended = false
	account.SuspendedUntil = nil
	return true, uc.repo.Upsert(ctx, account)
}

func (uc *AccountUsecase) Verify(ctx context.Context, identity string) (bool, error) {
	account, err := uc.repo.Get(ctx, identity)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	account.IsVerified = true
	return true, uc.repo.Upsert(ctx, account)
}
