package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/langportal/backend/internal/database/study"
	"github.com/langportal/backend/internal/entities"
)

// SessionStore defines database operations for study sessions.
type SessionStore interface {
	GetAllSessions(limit, offset int) ([]entities.StudySession, int64, error)
	GetSessionByID(id uint) (*entities.StudySession, error)
	GetSessionWords(sessionID uint, limit, offset int) ([]entities.WordReviewItem, int64, error)
	SessionCounter
}

// SessionCounter provides per-session review tallies. Shared with the
// groups, activities and dashboard controllers.
type SessionCounter interface {
	GetReviewCounts(sessionIDs []uint) (map[uint]study.ReviewCounts, error)
}

type SessionsController struct {
	store SessionStore
}

func NewSessionsController(store SessionStore) *SessionsController {
	return &SessionsController{store: store}
}

// serializeSession renders a session with its derived review counts.
// Group and Activity must be preloaded.
func serializeSession(s entities.StudySession, counts study.ReviewCounts) gin.H {
	var activityName any
	if s.Activity != nil {
		activityName = s.Activity.Name
	}

	return gin.H{
		"id":                s.ID,
		"group_id":          s.GroupID,
		"study_activity_id": s.StudyActivityID,
		"activity_name":     activityName,
		"group_name":        s.Group.Name,
		"created_at":        formatTimestamp(s.CreatedAt),
		"correct_count":     counts.Correct,
		"wrong_count":       counts.Wrong,
		"total_reviews":     counts.Total(),
	}
}

// serializeSessions renders a page of sessions, fetching review
// tallies for the whole page in one pass.
func serializeSessions(sessions []entities.StudySession, counter SessionCounter) ([]gin.H, error) {
	ids := make([]uint, len(sessions))
	for i, s := range sessions {
		ids[i] = s.ID
	}
	counts, err := counter.GetReviewCounts(ids)
	if err != nil {
		return nil, err
	}

	data := make([]gin.H, len(sessions))
	for i, s := range sessions {
		data[i] = serializeSession(s, counts[s.ID])
	}
	return data, nil
}

// serializeReviewItem renders a review item, optionally enriched with
// the reviewed word's text fields.
func serializeReviewItem(item entities.WordReviewItem, includeWord bool) gin.H {
	data := gin.H{
		"id":               item.ID,
		"word_id":          item.WordID,
		"study_session_id": item.StudySessionID,
		"correct":          item.Correct,
		"reviewed_at":      formatTimestamp(item.CreatedAt),
	}

	if includeWord {
		data["japanese"] = item.Word.Japanese
		data["romaji"] = item.Word.Romaji
		data["english"] = item.Word.English
	}

	return data
}

// ListSessions returns all sessions, newest first, paginated.
// GET /api/study_sessions
func (sc *SessionsController) ListSessions(c *gin.Context) {
	page := parsePage(c)

	sessions, total, err := sc.store.GetAllSessions(PerPage, pageOffset(page))
	if err != nil {
		respondInternalError(c, err, "list sessions")
		return
	}

	data, err := serializeSessions(sessions, sc.store)
	if err != nil {
		respondInternalError(c, err, "list sessions")
		return
	}

	respondPage(c, data, page, total)
}

// GetSession returns a single session with its review tallies.
// GET /api/study_sessions/:id
func (sc *SessionsController) GetSession(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	session, err := sc.store.GetSessionByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c)
		return
	}
	if err != nil {
		respondInternalError(c, err, "get session")
		return
	}

	counts, err := sc.store.GetReviewCounts([]uint{session.ID})
	if err != nil {
		respondInternalError(c, err, "get session")
		return
	}

	c.JSON(http.StatusOK, serializeSession(*session, counts[session.ID]))
}

// SessionWords returns the session's review items, newest first,
// enriched with word details. An unknown session yields an empty page.
// GET /api/study_sessions/:id/words
func (sc *SessionsController) SessionWords(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	page := parsePage(c)
	items, total, err := sc.store.GetSessionWords(id, PerPage, pageOffset(page))
	if err != nil {
		respondInternalError(c, err, "session words")
		return
	}

	data := make([]gin.H, len(items))
	for i, item := range items {
		data[i] = serializeReviewItem(item, true)
	}

	respondPage(c, data, page, total)
}
