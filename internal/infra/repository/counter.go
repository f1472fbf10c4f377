package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/social360/social360/internal/infra/database/models"
)

// nextID advances the named monotonic counter under a row lock and returns
// the new value. Counters start at 1 so 0 stays free as the rejection
// sentinel. Must run inside a transaction.
func nextID(tx *gorm.DB, name string) (int64, error) {
	var counter models.Counter
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", name).
		Take(&counter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		counter = models.Counter{Name: name, Value: 0}
		if err := tx.Create(&counter).Error; err != nil {
			return 0, err
		}
	} else if err != nil {
		return 0, err
	}

	counter.Value++
	err = tx.Model(&models.Counter{}).
		Where("name = ?", name).
		Update("value", counter.Value).Error
	if err != nil {
		return 0, err
	}
	return counter.Value, nil
}
