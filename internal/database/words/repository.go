// Package words provides database operations for vocabulary words.
package words

import (
	"gorm.io/gorm"

	"github.com/langportal/backend/internal/entities"
)

// ReviewCounts aggregates review outcomes for a single word.
type ReviewCounts struct {
	Correct int64
	Wrong   int64
}

// Repository handles all word database operations.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAllWords returns one page of words together with the total count.
func (r *Repository) GetAllWords(limit, offset int) ([]entities.Word, int64, error) {
	var words []entities.Word
	var total int64

	if err := r.db.Model(&entities.Word{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Find(&words).Error
	return words, total, err
}

// GetWordByID retrieves a word with its groups preloaded.
func (r *Repository) GetWordByID(id uint) (*entities.Word, error) {
	var word entities.Word
	err := r.db.Preload("Groups").First(&word, id).Error
	if err != nil {
		return nil, err
	}
	return &word, nil
}

// GetReviewCounts returns correct/wrong review tallies for a set of
// words in two aggregate queries rather than loading review rows.
func (r *Repository) GetReviewCounts(wordIDs []uint) (map[uint]ReviewCounts, error) {
	counts := make(map[uint]ReviewCounts, len(wordIDs))
	if len(wordIDs) == 0 {
		return counts, nil
	}

	type row struct {
		WordID  uint
		Correct bool
		Total   int64
	}
	var rows []row
	err := r.db.Model(&entities.WordReviewItem{}).
		Select("word_id, correct, COUNT(*) as total").
		Where("word_id IN ?", wordIDs).
		Group("word_id, correct").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, rr := range rows {
		c := counts[rr.WordID]
		if rr.Correct {
			c.Correct = rr.Total
		} else {
			c.Wrong = rr.Total
		}
		counts[rr.WordID] = c
	}
	return counts, nil
}
