// Package study provides database operations for study activities,
// study sessions and word reviews.
package study

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/langportal/backend/internal/entities"
)

// ReviewCounts aggregates review outcomes for a single session.
type ReviewCounts struct {
	Correct int64
	Wrong   int64
}

// Total returns the number of reviews recorded in the session.
func (c ReviewCounts) Total() int64 {
	return c.Correct + c.Wrong
}

// Repository handles study activity, session and review operations.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetActivityByID retrieves a study activity by ID.
func (r *Repository) GetActivityByID(id uint) (*entities.StudyActivity, error) {
	var activity entities.StudyActivity
	err := r.db.First(&activity, id).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// GetActivitySessions returns one page of the activity's sessions,
// newest first.
func (r *Repository) GetActivitySessions(activityID uint, limit, offset int) ([]entities.StudySession, int64, error) {
	var sessions []entities.StudySession
	var total int64

	base := r.db.Model(&entities.StudySession{}).Where("study_activity_id = ?", activityID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Group").Preload("Activity").
		Where("study_activity_id = ?", activityID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&sessions).Error
	return sessions, total, err
}

// CreateSession creates a fresh activity for the given type and a
// session linking it to the group, atomically. The group must exist.
func (r *Repository) CreateSession(groupID uint, activityType string) (*entities.StudySession, error) {
	var session *entities.StudySession

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var group entities.Group
		if err := tx.First(&group, groupID).Error; err != nil {
			return err
		}

		activity := entities.StudyActivity{
			Name:         fmt.Sprintf("%s session", activityType),
			ActivityType: activityType,
			LaunchURL:    fmt.Sprintf("https://external-app.com/%s", activityType),
		}
		if err := tx.Create(&activity).Error; err != nil {
			return err
		}

		session = &entities.StudySession{
			GroupID:         groupID,
			StudyActivityID: &activity.ID,
		}
		return tx.Create(session).Error
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// GetAllSessions returns one page of all sessions, newest first, with
// their group and activity preloaded.
func (r *Repository) GetAllSessions(limit, offset int) ([]entities.StudySession, int64, error) {
	var sessions []entities.StudySession
	var total int64

	if err := r.db.Model(&entities.StudySession{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Group").Preload("Activity").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&sessions).Error
	return sessions, total, err
}

// GetSessionByID retrieves a session with group and activity preloaded.
func (r *Repository) GetSessionByID(id uint) (*entities.StudySession, error) {
	var session entities.StudySession
	err := r.db.Preload("Group").Preload("Activity").First(&session, id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// GetSessionWords returns one page of the session's review items,
// newest first, with the reviewed word preloaded.
func (r *Repository) GetSessionWords(sessionID uint, limit, offset int) ([]entities.WordReviewItem, int64, error) {
	var items []entities.WordReviewItem
	var total int64

	base := r.db.Model(&entities.WordReviewItem{}).Where("study_session_id = ?", sessionID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Word").
		Where("study_session_id = ?", sessionID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&items).Error
	return items, total, err
}

// GetReviewCounts returns correct/wrong review tallies for a set of
// sessions in a single aggregate query.
func (r *Repository) GetReviewCounts(sessionIDs []uint) (map[uint]ReviewCounts, error) {
	counts := make(map[uint]ReviewCounts, len(sessionIDs))
	if len(sessionIDs) == 0 {
		return counts, nil
	}

	type row struct {
		StudySessionID uint
		Correct        bool
		Total          int64
	}
	var rows []row
	err := r.db.Model(&entities.WordReviewItem{}).
		Select("study_session_id, correct, COUNT(*) as total").
		Where("study_session_id IN ?", sessionIDs).
		Group("study_session_id, correct").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, rr := range rows {
		c := counts[rr.StudySessionID]
		if rr.Correct {
			c.Correct = rr.Total
		} else {
			c.Wrong = rr.Total
		}
		counts[rr.StudySessionID] = c
	}
	return counts, nil
}

// CreateReview records a review outcome. Both the session and the word
// must exist; nothing is inserted otherwise.
func (r *Repository) CreateReview(sessionID, wordID uint, correct bool) (*entities.WordReviewItem, error) {
	var item *entities.WordReviewItem

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var session entities.StudySession
		if err := tx.First(&session, sessionID).Error; err != nil {
			return err
		}
		var word entities.Word
		if err := tx.First(&word, wordID).Error; err != nil {
			return err
		}

		item = &entities.WordReviewItem{
			WordID:         wordID,
			StudySessionID: sessionID,
			Correct:        correct,
		}
		return tx.Create(item).Error
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}
