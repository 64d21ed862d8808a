// Package dashboard provides the aggregate queries behind the
// dashboard endpoints.
package dashboard

import (
	"time"

	"gorm.io/gorm"

	"github.com/langportal/backend/internal/entities"
)

// Repository computes derived statistics across entities.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetLastSession returns the most recently created study session with
// its group and activity preloaded. gorm.ErrRecordNotFound when no
// session exists yet.
func (r *Repository) GetLastSession() (*entities.StudySession, error) {
	var session entities.StudySession
	err := r.db.Preload("Group").Preload("Activity").
		Order("created_at DESC").
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Progress holds the study-progress aggregates.
type Progress struct {
	TotalWords   int64
	StudiedWords int64
	LastStudied  *time.Time
}

// GetProgress counts the vocabulary and how much of it has at least one
// recorded review.
func (r *Repository) GetProgress() (*Progress, error) {
	var p Progress

	if err := r.db.Model(&entities.Word{}).Count(&p.TotalWords).Error; err != nil {
		return nil, err
	}

	err := r.db.Model(&entities.WordReviewItem{}).
		Distinct("word_id").
		Count(&p.StudiedWords).Error
	if err != nil {
		return nil, err
	}

	var last entities.StudySession
	err = r.db.Order("created_at DESC").First(&last).Error
	if err == nil {
		p.LastStudied = &last.CreatedAt
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	return &p, nil
}

// Stats holds the quick-stats aggregates.
type Stats struct {
	TotalReviews   int64
	CorrectReviews int64
	TotalSessions  int64
	ActiveGroups   int64
}

func (r *Repository) GetStats() (*Stats, error) {
	var s Stats

	if err := r.db.Model(&entities.WordReviewItem{}).Count(&s.TotalReviews).Error; err != nil {
		return nil, err
	}
	err := r.db.Model(&entities.WordReviewItem{}).
		Where("correct = ?", true).
		Count(&s.CorrectReviews).Error
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.StudySession{}).Count(&s.TotalSessions).Error; err != nil {
		return nil, err
	}
	err = r.db.Model(&entities.StudySession{}).
		Distinct("group_id").
		Count(&s.ActiveGroups).Error
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// GetStreakDays walks backward from now's UTC calendar date and counts
// consecutive days with at least one session, stopping at the first day
// without one.
func (r *Repository) GetStreakDays(now time.Time) (int, error) {
	day := now.UTC().Truncate(24 * time.Hour)
	streak := 0

	for {
		var count int64
		err := r.db.Model(&entities.StudySession{}).
			Where("created_at >= ? AND created_at < ?", day, day.Add(24*time.Hour)).
			Count(&count).Error
		if err != nil {
			return 0, err
		}
		if count == 0 {
			break
		}
		streak++
		day = day.Add(-24 * time.Hour)
	}

	return streak, nil
}
