package entities

import "time"

// Word is a single vocabulary entry. Words are created by seeding and
// never modified through the API; review outcomes reference them.
type Word struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Japanese string `gorm:"size:255;not null" json:"japanese"`
	Romaji   string `gorm:"size:255;not null" json:"romaji"`
	English  string `gorm:"size:255;not null" json:"english"`

	// Parts holds the raw JSON-encoded breakdown of the word.
	// Serialization parses it; malformed content degrades to an empty list.
	Parts string `gorm:"size:500" json:"-"`

	Groups      []Group          `gorm:"many2many:words_groups;" json:"-"`
	ReviewItems []WordReviewItem `gorm:"foreignKey:WordID" json:"-"`
}

// Group is a named collection of words (e.g. "Core Verbs").
type Group struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:255;not null" json:"name"`

	Words         []Word         `gorm:"many2many:words_groups;" json:"-"`
	StudySessions []StudySession `gorm:"foreignKey:GroupID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// WordsGroup is the words<->groups junction row. The composite unique
// index keeps a word from being added to the same group twice.
type WordsGroup struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	WordID  uint `gorm:"not null;uniqueIndex:idx_words_groups_pair" json:"word_id"`
	GroupID uint `gorm:"not null;uniqueIndex:idx_words_groups_pair" json:"group_id"`
}

// TableName overrides GORM's pluralization so the junction entity maps
// onto the same table the many2many association uses.
func (WordsGroup) TableName() string {
	return "words_groups"
}
