package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/social360/social360/internal/domain"
	"github.com/social360/social360/internal/infra/database/models"
)

const (
	flagCounter    = "flag"
	warningCounter = "warning"
)

type ModerationRepository struct {
	db *gorm.DB
}

func NewModerationRepository(db *gorm.DB) *ModerationRepository {
	return &ModerationRepository{db: db}
}

func (r *ModerationRepository) CreateFlag(ctx context.Context, flag domain.Flag) (int64, error) {
	var id int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		allocated, err := nextID(tx, flagCounter)
		if err != nil {
			return err
		}
		model := models.ModerationFlag{
			ID:        allocated,
			UpdateID:  flag.UpdateID,
			FlaggedBy: flag.FlaggedBy,
			Reason:    flag.Reason,
			Severity:  string(flag.Severity),
			CreatedAt: flag.CreatedAt,
		}
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

func (r *ModerationRepository) Resolve(ctx context.Context, flagID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.ModerationFlag{}).
		Where("id = ?", flagID).
		Update("is_resolved", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ModerationRepository) ListOpenFlags(ctx context.Context) ([]domain.Flag, error) {
	var rows []models.ModerationFlag
	err := r.db.WithContext(ctx).
		Where("is_resolved = ?", false).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	flags := make([]domain.Flag, 0, len(rows))
	for _, row := range rows {
		flags = append(flags, domain.Flag{
			ID:         row.ID,
			UpdateID:   row.UpdateID,
			FlaggedBy:  row.FlaggedBy,
			Reason:     row.Reason,
			Severity:   domain.Severity(row.Severity),
			CreatedAt:  row.CreatedAt,
			IsResolved: row.IsResolved,
		})
	}
	return flags, nil
}

func (r *ModerationRepository) AppendWarning(ctx context.Context, warning domain.Warning) (int64, error) {
	var id int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		allocated, err := nextID(tx, warningCounter)
		if err != nil {
			return err
		}
		model := models.Warning{
			ID:        allocated,
			Identity:  warning.Identity,
			Reason:    warning.Reason,
			Severity:  string(warning.Severity),
			CreatedAt: warning.CreatedAt,
			ExpiresAt: warning.ExpiresAt,
		}
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

func (r *ModerationRepository) ListWarnings(ctx context.Context, identity string) ([]domain.Warning, error) {
	var rows []models.Warning
	err := r.db.WithContext(ctx).
		Where("identity = ?", identity).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	warnings := make([]domain.Warning, 0, len(rows))
	for _, row := range rows {
		warnings = append(warnings, domain.Warning{
			ID:        row.ID,
			Identity:  row.Identity,
			Reason:    row.Reason,
			Severity:  domain.Severity(row.Severity),
			CreatedAt: row.CreatedAt,
			ExpiresAt: row.ExpiresAt,
		})
	}
	return warnings, nil
}
