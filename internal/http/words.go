package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/langportal/backend/internal/database/words"
	"github.com/langportal/backend/internal/entities"
)

// WordStore defines database operations for vocabulary words.
type WordStore interface {
	GetAllWords(limit, offset int) ([]entities.Word, int64, error)
	GetWordByID(id uint) (*entities.Word, error)
	ReviewCounter
}

// ReviewCounter provides per-word review tallies. Shared with the
// groups controller, which serializes words too.
type ReviewCounter interface {
	GetReviewCounts(wordIDs []uint) (map[uint]words.ReviewCounts, error)
}

type WordsController struct {
	store WordStore
}

func NewWordsController(store WordStore) *WordsController {
	return &WordsController{store: store}
}

// serializeWord renders a word with its derived review counts. The
// stored parts JSON is parsed lazily; malformed content becomes an
// empty list instead of an error.
func serializeWord(w entities.Word, counts words.ReviewCounts, includeGroups bool) gin.H {
	data := gin.H{
		"id":            w.ID,
		"japanese":      w.Japanese,
		"romaji":        w.Romaji,
		"english":       w.English,
		"correct_count": counts.Correct,
		"wrong_count":   counts.Wrong,
	}

	if w.Parts != "" {
		var parts []any
		if err := json.Unmarshal([]byte(w.Parts), &parts); err != nil {
			parts = []any{}
		}
		data["parts"] = parts
	}

	if includeGroups {
		groups := make([]gin.H, 0, len(w.Groups))
		for _, g := range w.Groups {
			groups = append(groups, gin.H{"id": g.ID, "name": g.Name})
		}
		data["groups"] = groups
	}

	return data
}

// serializeWords renders a page of words, fetching review tallies for
// the whole page in one pass.
func serializeWords(ws []entities.Word, counter ReviewCounter) ([]gin.H, error) {
	ids := make([]uint, len(ws))
	for i, w := range ws {
		ids[i] = w.ID
	}
	counts, err := counter.GetReviewCounts(ids)
	if err != nil {
		return nil, err
	}

	data := make([]gin.H, len(ws))
	for i, w := range ws {
		data[i] = serializeWord(w, counts[w.ID], false)
	}
	return data, nil
}

// ListWords returns the paginated vocabulary.
// GET /api/words
func (wc *WordsController) ListWords(c *gin.Context) {
	page := parsePage(c)

	ws, total, err := wc.store.GetAllWords(PerPage, pageOffset(page))
	if err != nil {
		respondInternalError(c, err, "list words")
		return
	}

	data, err := serializeWords(ws, wc.store)
	if err != nil {
		respondInternalError(c, err, "list words")
		return
	}

	respondPage(c, data, page, total)
}

// GetWord returns a single word with its groups.
// GET /api/words/:id
func (wc *WordsController) GetWord(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	word, err := wc.store.GetWordByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c)
		return
	}
	if err != nil {
		respondInternalError(c, err, "get word")
		return
	}

	counts, err := wc.store.GetReviewCounts([]uint{word.ID})
	if err != nil {
		respondInternalError(c, err, "get word")
		return
	}

	c.JSON(http.StatusOK, serializeWord(*word, counts[word.ID], true))
}
