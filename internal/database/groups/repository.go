// Package groups provides database operations for word groups.
package groups

import (
	"gorm.io/gorm"

	"github.com/langportal/backend/internal/entities"
)

// Repository handles all group database operations.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAllGroups returns one page of groups together with the total count.
func (r *Repository) GetAllGroups(limit, offset int) ([]entities.Group, int64, error) {
	var groups []entities.Group
	var total int64

	if err := r.db.Model(&entities.Group{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Find(&groups).Error
	return groups, total, err
}

// GetGroupByID retrieves a group by ID.
func (r *Repository) GetGroupByID(id uint) (*entities.Group, error) {
	var group entities.Group
	err := r.db.First(&group, id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetWordCount returns the number of words associated with a group.
func (r *Repository) GetWordCount(groupID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.WordsGroup{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

// GetWordCounts returns word tallies for a set of groups in a single
// aggregate query.
func (r *Repository) GetWordCounts(groupIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(groupIDs))
	if len(groupIDs) == 0 {
		return counts, nil
	}

	type row struct {
		GroupID uint
		Total   int64
	}
	var rows []row
	err := r.db.Model(&entities.WordsGroup{}).
		Select("group_id, COUNT(*) as total").
		Where("group_id IN ?", groupIDs).
		Group("group_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, rr := range rows {
		counts[rr.GroupID] = rr.Total
	}
	return counts, nil
}

// GetGroupWords returns one page of the group's words.
func (r *Repository) GetGroupWords(groupID uint, limit, offset int) ([]entities.Word, int64, error) {
	var words []entities.Word
	var total int64

	base := r.db.Model(&entities.Word{}).
		Joins("JOIN words_groups ON words_groups.word_id = words.id").
		Where("words_groups.group_id = ?", groupID)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.Limit(limit).Offset(offset).Find(&words).Error
	return words, total, err
}

// GetGroupSessions returns one page of the group's study sessions,
// newest first.
func (r *Repository) GetGroupSessions(groupID uint, limit, offset int) ([]entities.StudySession, int64, error) {
	var sessions []entities.StudySession
	var total int64

	base := r.db.Model(&entities.StudySession{}).Where("group_id = ?", groupID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Group").Preload("Activity").
		Where("group_id = ?", groupID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&sessions).Error
	return sessions, total, err
}
