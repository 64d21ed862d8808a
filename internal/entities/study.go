package entities

import "time"

// StudyActivity is a named external exercise (e.g. a quiz) launchable
// through its URL. Two built-in activities are seeded at bootstrap.
type StudyActivity struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Description  string    `gorm:"size:500" json:"description"`
	ThumbnailURL string    `gorm:"size:500" json:"thumbnail_url"`
	ActivityType string    `gorm:"size:100" json:"activity_type"`
	LaunchURL    string    `gorm:"size:500" json:"launch_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// StudySession is one instance of studying a group through an activity.
// Its review items are removed together with it.
type StudySession struct {
	ID              uint  `gorm:"primaryKey" json:"id"`
	GroupID         uint  `gorm:"not null;index" json:"group_id"`
	StudyActivityID *uint `gorm:"index" json:"study_activity_id"`

	Group       Group            `gorm:"foreignKey:GroupID" json:"-"`
	Activity    *StudyActivity   `gorm:"foreignKey:StudyActivityID" json:"-"`
	ReviewItems []WordReviewItem `gorm:"foreignKey:StudySessionID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// WordReviewItem records a single correct/incorrect outcome for a word
// within a study session.
type WordReviewItem struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	WordID         uint `gorm:"not null;index" json:"word_id"`
	StudySessionID uint `gorm:"not null;index" json:"study_session_id"`
	Correct        bool `gorm:"not null" json:"correct"`

	Word Word `gorm:"foreignKey:WordID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (WordReviewItem) TableName() string {
	return "words_review_items"
}
