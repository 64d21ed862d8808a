// Package admin provides the destructive maintenance operations:
// study-history reset and full database reset.
package admin

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/langportal/backend/internal/database"
	"github.com/langportal/backend/internal/entities"
)

// Repository handles bulk reset operations.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ResetHistory deletes every study session and review item atomically,
// leaving words and groups untouched. Returns the deleted row counts.
func (r *Repository) ResetHistory() (deletedSessions, deletedReviews int64, err error) {
	err = r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("1 = 1").Delete(&entities.WordReviewItem{})
		if res.Error != nil {
			return res.Error
		}
		deletedReviews = res.RowsAffected

		res = tx.Where("1 = 1").Delete(&entities.StudySession{})
		if res.Error != nil {
			return res.Error
		}
		deletedSessions = res.RowsAffected
		return nil
	})
	return deletedSessions, deletedReviews, err
}

// FullReset drops the whole schema, recreates it and reseeds the
// built-in study activities. All vocabulary and group data is lost.
func (r *Repository) FullReset() error {
	err := r.db.Migrator().DropTable(
		&entities.WordReviewItem{},
		&entities.StudySession{},
		&entities.StudyActivity{},
		&entities.WordsGroup{},
		&entities.Word{},
		&entities.Group{},
	)
	if err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}

	if err := database.Migrate(r.db); err != nil {
		return err
	}

	return database.SeedActivities(r.db)
}
