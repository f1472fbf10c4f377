package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/social360/social360/internal/infra/database/models"
)

// GraphRepository stores follow edges in one table; outbound and inbound
// views are the same rows read from either end, so the two directions can
// never disagree.
type GraphRepository struct {
	db *gorm.DB
}

func NewGraphRepository(db *gorm.DB) *GraphRepository {
	return &GraphRepository{db: db}
}

func (r *GraphRepository) AddEdge(ctx context.Context, follower, followee string) error {
	edge := models.FollowEdge{
		Follower: follower,
		Followee: followee,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoNothing: true,
	}).Create(&edge).Error
}

func (r *GraphRepository) Following(ctx context.Context, identity string) ([]string, error) {
	out := []string{}
	err := r.db.WithContext(ctx).
		Model(&models.FollowEdge{}).
		Where("follower = ?", identity).
		Order("id").
		Pluck("followee", &out).Error
	return out, err
}

func (r *GraphRepository) Followers(ctx context.Context, identity string) ([]string, error) {
	out := []string{}
	err := r.db.WithContext(ctx).
		Model(&models.FollowEdge{}).
		Where("followee = ?", identity).
		Order("id").
		Pluck("follower", &out).Error
	return out, err
}
