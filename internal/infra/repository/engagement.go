package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/social360/social360/internal/infra/database/models"
)

type EngagementRepository struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) *EngagementRepository {
	return &EngagementRepository{db: db}
}

// ToggleLike flips membership and adjusts the update's like counter in one
// transaction. The counter decrement saturates at zero, and a missing update
// row simply means no counter to adjust; the membership flip still lands.
func (r *EngagementRepository) ToggleLike(ctx context.Context, updateID int64, identity string) (bool, error) {
	var liked bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var member models.LikeMember
		err := tx.Where("update_id = ? AND identity = ?", updateID, identity).
			Take(&member).Error

		switch {
		case err == nil:
			liked = false
			if err := tx.Delete(&models.LikeMember{}, "update_id = ? AND identity = ?", updateID, identity).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			liked = true
			if err := tx.Create(&models.LikeMember{UpdateID: updateID, Identity: identity}).Error; err != nil {
				return err
			}
		default:
			return err
		}

		expr := gorm.Expr("GREATEST(likes - 1, 0)")
		if liked {
			expr = gorm.Expr("likes + 1")
		}
		return tx.Model(&models.Update{}).
			Where("id = ?", updateID).
			UpdateColumn("likes", expr).Error
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

func (r *EngagementRepository) HasLiked(ctx context.Context, updateID int64, identity string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.LikeMember{}).
		Where("update_id = ? AND identity = ?", updateID, identity).
		Count(&count).Error
	return count > 0, err
}

func (r *EngagementRepository) HasReposted(ctx context.Context, updateID int64, identity string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.RepostMember{}).
		Where("update_id = ? AND identity = ?", updateID, identity).
		Count(&count).Error
	return count > 0, err
}
