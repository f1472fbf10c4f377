package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/social360/social360/internal/domain"
	"github.com/social360/social360/internal/infra/database/models"
)

const updateCounter = "update"

type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

func (r *ContentRepository) Create(ctx context.Context, update domain.Update) (int64, error) {
	var id int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		allocated, err := nextID(tx, updateCounter)
		if err != nil {
			return err
		}
		model := updateFromDomain(update)
		model.ID = allocated
		if err := tx.Create(&model).Error; err != nil {
			return err
		}
		id = allocated
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ContentRepository) CreateDerived(ctx context.Context, update domain.Update, originalID int64, kind domain.DerivedKind) (int64, error) {
	column := "reposts"
	if kind == domain.DerivedQuote {
		column = "quotes"
	}

	var id int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		allocated, err := nextID(tx, updateCounter)
		if err != nil {
			return err
		}
		model := updateFromDomain(update)
		model.ID = allocated
		if err := tx.Create(&model).Error; err != nil {
			return err
		}

		err = tx.Model(&models.Update{}).
			Where("id = ?", originalID).
			UpdateColumn(column, gorm.Expr(column+" + 1")).Error
		if err != nil {
			return err
		}

		id = allocated
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ContentRepository) Get(ctx context.Context, id int64) (domain.Update, error) {
	var model models.Update
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Update{}, domain.NotFoundError{Resource: "update"}
	}
	if err != nil {
		return domain.Update{}, err
	}
	return updateToDomain(model), nil
}

func (r *ContentRepository) SetModeration(ctx context.Context, id int64, moderated, hidden bool, reason *string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Update{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_moderated":      moderated,
			"is_hidden":         hidden,
			"moderation_reason": reason,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ContentRepository) ListByAuthors(ctx context.Context, authors []string, offset, limit int) ([]domain.Update, error) {
	var rows []models.Update
	err := r.db.WithContext(ctx).
		Where("author IN ?", authors).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return updatesToDomain(rows), nil
}

func (r *ContentRepository) SearchContent(ctx context.Context, keyword string) ([]domain.Update, error) {
	var rows []models.Update
	err := r.db.WithContext(ctx).
		Where("content ILIKE ?", "%"+escapeLike(keyword)+"%").
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return updatesToDomain(rows), nil
}

func (r *ContentRepository) ListModerated(ctx context.Context) ([]domain.Update, error) {
	var rows []models.Update
	err := r.db.WithContext(ctx).
		Where("is_moderated = ?", true).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return updatesToDomain(rows), nil
}

func updateFromDomain(u domain.Update) models.Update {
	return models.Update{
		ID:               u.ID,
		Author:           u.Author,
		Content:          u.Content,
		CreatedAt:        u.CreatedAt,
		Likes:            u.Likes,
		Reposts:          u.Reposts,
		Quotes:           u.Quotes,
		OriginalPostID:   u.OriginalPostID,
		QuoteContent:     u.QuoteContent,
		IsModerated:      u.IsModerated,
		ModerationReason: u.ModerationReason,
		IsHidden:         u.IsHidden,
	}
}

func updateToDomain(m models.Update) domain.Update {
	return domain.Update{
		ID:               m.ID,
		Author:           m.Author,
		Content:          m.Content,
		CreatedAt:        m.CreatedAt,
		Likes:            m.Likes,
		Reposts:          m.Reposts,
		Quotes:           m.Quotes,
		OriginalPostID:   m.OriginalPostID,
		QuoteContent:     m.QuoteContent,
		IsModerated:      m.IsModerated,
		ModerationReason: m.ModerationReason,
		IsHidden:         m.IsHidden,
	}
}

func updatesToDomain(rows []models.Update) []domain.Update {
	updates := make([]domain.Update, 0, len(rows))
	for _, row := range rows {
		updates = append(updates, updateToDomain(row))
	}
	return updates
}
