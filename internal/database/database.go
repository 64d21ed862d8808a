package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/langportal/backend/internal/entities"
)

// DefaultActivities are the built-in study activities present after
// bootstrap and after a full reset.
var DefaultActivities = []entities.StudyActivity{
	{Name: "Hiragana Quiz", ActivityType: "quiz", LaunchURL: "https://external-app.com/hiragana"},
	{Name: "Katakana Quiz", ActivityType: "quiz", LaunchURL: "https://external-app.com/katakana"},
}

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	database := &Database{DB: db}

	if err := database.seedActivities(); err != nil {
		return nil, fmt.Errorf("failed to seed study activities: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

// Migrate creates or updates the schema for all entities. The junction
// table is registered explicitly so the many2many association and the
// WordsGroup entity share one table with a unique (word_id, group_id) pair.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&entities.Word{}, "Groups", &entities.WordsGroup{}); err != nil {
		return fmt.Errorf("failed to set up join table: %w", err)
	}
	if err := db.SetupJoinTable(&entities.Group{}, "Words", &entities.WordsGroup{}); err != nil {
		return fmt.Errorf("failed to set up join table: %w", err)
	}

	err := db.AutoMigrate(
		&entities.Word{},
		&entities.Group{},
		&entities.WordsGroup{},
		&entities.StudyActivity{},
		&entities.StudySession{},
		&entities.WordReviewItem{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) seedActivities() error {
	return SeedActivities(d.DB)
}

// SeedActivities inserts the built-in activities that are missing.
func SeedActivities(db *gorm.DB) error {
	for _, activity := range DefaultActivities {
		var existing entities.StudyActivity
		result := db.Where("name = ?", activity.Name).First(&existing)
		if result.Error == gorm.ErrRecordNotFound {
			if err := db.Create(&activity).Error; err != nil {
				return fmt.Errorf("failed to create activity %s: %w", activity.Name, err)
			}
			log.Printf("Created study activity: %s", activity.Name)
		} else if result.Error != nil {
			return result.Error
		}
	}
	return nil
}
