package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/langportal/backend/internal/entities"
)

// GroupStore defines database operations for word groups.
type GroupStore interface {
	GetAllGroups(limit, offset int) ([]entities.Group, int64, error)
	GetGroupByID(id uint) (*entities.Group, error)
	GetWordCount(groupID uint) (int64, error)
	GetWordCounts(groupIDs []uint) (map[uint]int64, error)
	GetGroupWords(groupID uint, limit, offset int) ([]entities.Word, int64, error)
	GetGroupSessions(groupID uint, limit, offset int) ([]entities.StudySession, int64, error)
}

type GroupsController struct {
	store    GroupStore
	reviews  ReviewCounter
	sessions SessionCounter
}

func NewGroupsController(store GroupStore, reviews ReviewCounter, sessions SessionCounter) *GroupsController {
	return &GroupsController{store: store, reviews: reviews, sessions: sessions}
}

// ListGroups returns the paginated groups with their word tallies.
// GET /api/groups
func (gc *GroupsController) ListGroups(c *gin.Context) {
	page := parsePage(c)

	groups, total, err := gc.store.GetAllGroups(PerPage, pageOffset(page))
	if err != nil {
		respondInternalError(c, err, "list groups")
		return
	}

	ids := make([]uint, len(groups))
	for i, g := range groups {
		ids[i] = g.ID
	}
	wordCounts, err := gc.store.GetWordCounts(ids)
	if err != nil {
		respondInternalError(c, err, "list groups")
		return
	}

	data := make([]gin.H, len(groups))
	for i, g := range groups {
		data[i] = gin.H{
			"id":         g.ID,
			"name":       g.Name,
			"word_count": wordCounts[g.ID],
		}
	}

	respondPage(c, data, page, total)
}

// GetGroup returns a single group.
// GET /api/groups/:id
func (gc *GroupsController) GetGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	group, err := gc.store.GetGroupByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c)
		return
	}
	if err != nil {
		respondInternalError(c, err, "get group")
		return
	}

	wordCount, err := gc.store.GetWordCount(group.ID)
	if err != nil {
		respondInternalError(c, err, "get group")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":               group.ID,
		"name":             group.Name,
		"total_word_count": wordCount,
		"created_at":       formatTimestamp(group.CreatedAt),
	})
}

// GroupWords returns the paginated words belonging to a group.
// GET /api/groups/:id/words
func (gc *GroupsController) GroupWords(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := gc.store.GetGroupByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c)
		} else {
			respondInternalError(c, err, "group words")
		}
		return
	}

	page := parsePage(c)
	words, total, err := gc.store.GetGroupWords(id, PerPage, pageOffset(page))
	if err != nil {
		respondInternalError(c, err, "group words")
		return
	}

	data, err := serializeWords(words, gc.reviews)
	if err != nil {
		respondInternalError(c, err, "group words")
		return
	}

	respondPage(c, data, page, total)
}

// GroupSessions returns the paginated study sessions of a group,
// newest first.
// GET /api/groups/:id/study_sessions
func (gc *GroupsController) GroupSessions(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := gc.store.GetGroupByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c)
		} else {
			respondInternalError(c, err, "group sessions")
		}
		return
	}

	page := parsePage(c)
	sessions, total, err := gc.store.GetGroupSessions(id, PerPage, pageOffset(page))
	if err != nil {
		respondInternalError(c, err, "group sessions")
		return
	}

	data, err := serializeSessions(sessions, gc.sessions)
	if err != nil {
		respondInternalError(c, err, "group sessions")
		return
	}

	respondPage(c, data, page, total)
}
