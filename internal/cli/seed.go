package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/langportal/backend/internal/config"
	"github.com/langportal/backend/internal/database"
	"github.com/langportal/backend/internal/entities"
)

// seedWord is one entry of a JSON seed file.
type seedWord struct {
	Kanji   string `json:"kanji"`
	Romaji  string `json:"romaji"`
	English string `json:"english"`
	Parts   []any  `json:"parts"`
}

// SeedCommand loads vocabulary from JSON seed files. Each file becomes
// a group named after the file; its entries become the group's words.
type SeedCommand struct {
	SeedsDir     string
	DatabasePath string
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)

	fs.StringVar(&cmd.SeedsDir, "dir", config.DefaultSeedsDir, "Directory containing JSON seed files")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Seed the database with vocabulary groups from JSON files.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s seed -dir ./db/seeds\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s seed -dir ./db/seeds -db ./words.db\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *SeedCommand) Run() error {
	if _, err := os.Stat(cmd.SeedsDir); os.IsNotExist(err) {
		return fmt.Errorf("seeds directory does not exist: %s", cmd.SeedsDir)
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	files, err := filepath.Glob(filepath.Join(cmd.SeedsDir, "*.json"))
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, file := range files {
		groupName := GroupNameFromFile(file)
		fmt.Printf("Seeding: %s\n", groupName)

		if err := SeedGroupFromFile(db.DB, file, groupName); err != nil {
			return fmt.Errorf("failed to seed %s: %w", groupName, err)
		}
	}

	fmt.Println("Seeding completed successfully")
	return nil
}

// GroupNameFromFile derives a group name from a seed file name:
// "core_verbs.json" becomes "Core Verbs".
func GroupNameFromFile(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), ".json")
	fields := strings.Split(name, "_")
	for i, f := range fields {
		if f == "" {
			continue
		}
		fields[i] = strings.ToUpper(f[:1]) + f[1:]
	}
	return strings.Join(fields, " ")
}

// SeedGroupFromFile inserts the group and its words from one JSON seed
// file. A group that already holds words is left untouched, so reruns
// do not duplicate vocabulary.
func SeedGroupFromFile(db *gorm.DB, path, groupName string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var entries []seedWord
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("malformed seed file: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var group entities.Group
		if err := tx.Where("name = ?", groupName).FirstOrCreate(&group, entities.Group{Name: groupName}).Error; err != nil {
			return err
		}

		var existing int64
		err := tx.Model(&entities.WordsGroup{}).Where("group_id = ?", group.ID).Count(&existing).Error
		if err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}

		for _, entry := range entries {
			parts, err := json.Marshal(entry.Parts)
			if err != nil {
				return err
			}

			word := entities.Word{
				Japanese: entry.Kanji,
				Romaji:   entry.Romaji,
				English:  entry.English,
				Parts:    string(parts),
			}
			if err := tx.Create(&word).Error; err != nil {
				return err
			}
			junction := entities.WordsGroup{WordID: word.ID, GroupID: group.ID}
			if err := tx.Create(&junction).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
