package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/bradfitz/gomemcache/memcache"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/social360/social360/internal/domain"
	"github.com/social360/social360/internal/infra/database/models"
)

const accountCacheTTL = 60 // seconds

type AccountRepository struct {
	db *gorm.DB
	mc *memcache.Client
}

func NewAccountRepository(db *gorm.DB, mc *memcache.Client) *AccountRepository {
	return &AccountRepository{db: db, mc: mc}
}

func accountCacheKey(identity string) string {
	return "social360:account:" + identity
}

func (r *AccountRepository) Upsert(ctx context.Context, account domain.Account) error {
	model := models.Account{
		Identity:       account.Identity,
		Handle:         account.Handle,
		IsVerified:     account.IsVerified,
		WarningCount:   account.WarningCount,
		IsSuspended:    account.IsSuspended,
		SuspendedUntil: account.SuspendedUntil,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "identity"}},
		DoUpdates: clause.AssignmentColumns([]string{"handle", "is_verified", "warning_count", "is_suspended", "suspended_until"}),
	}).Create(&model).Error
	if err != nil {
		return err
	}

	if r.mc != nil {
		if err := r.mc.Delete(accountCacheKey(account.Identity)); err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
			slog.Debug("account cache invalidation failed",
				slog.String("error", err.Error()),
				slog.String("module", "repository"),
			)
		}
	}
	return nil
}

func (r *AccountRepository) Get(ctx context.Context, identity string) (domain.Account, error) {
	key := accountCacheKey(identity)
	if r.mc != nil {
		if item, err := r.mc.Get(key); err == nil {
			var cached domain.Account
			if err := json.Unmarshal(item.Value, &cached); err == nil {
				return cached, nil
			}
		}
	}

	var model models.Account
	err := r.db.WithContext(ctx).
		Where("identity = ?", identity).
		Take(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Account{}, domain.NotFoundError{Resource: "account"}
	}
	if err != nil {
		return domain.Account{}, err
	}

	account := accountToDomain(model)
	if r.mc != nil {
		if encoded, err := json.Marshal(account); err == nil {
			_ = r.mc.Set(&memcache.Item{Key: key, Value: encoded, Expiration: accountCacheTTL})
		}
	}
	return account, nil
}

func (r *AccountRepository) SearchByHandlePrefix(ctx context.Context, prefix string) ([]domain.Account, error) {
	var rows []models.Account
	err := r.db.WithContext(ctx).
		Where("handle ILIKE ?", escapeLike(prefix)+"%").
		Order("identity").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, accountToDomain(row))
	}
	return accounts, nil
}

func accountToDomain(model models.Account) domain.Account {
	return domain.Account{
		Identity:       model.Identity,
		Handle:         model.Handle,
		IsVerified:     model.IsVerified,
		WarningCount:   model.WarningCount,
		IsSuspended:    model.IsSuspended,
		SuspendedUntil: model.SuspendedUntil,
	}
}

func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
