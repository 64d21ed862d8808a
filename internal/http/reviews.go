package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/langportal/backend/internal/entities"
)

// ReviewStore defines the database operation for recording reviews.
type ReviewStore interface {
	CreateReview(sessionID, wordID uint, correct bool) (*entities.WordReviewItem, error)
}

type ReviewsController struct {
	store ReviewStore
}

func NewReviewsController(store ReviewStore) *ReviewsController {
	return &ReviewsController{store: store}
}

// RecordReviewRequest is the request body for recording a review
// outcome. Correct is a pointer so a missing field is distinguishable
// from false.
type RecordReviewRequest struct {
	Correct *bool `json:"correct"`
}

// RecordReview records one correct/incorrect outcome for a word within
// a session. Nothing is inserted unless both referenced rows exist.
// POST /api/study_sessions/:session_id/words/:word_id/review
func (rc *ReviewsController) RecordReview(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "session_id")
	if !ok {
		return
	}
	wordID, ok := parseIDParam(c, "word_id")
	if !ok {
		return
	}

	var req RecordReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Correct == nil {
		respondBadRequest(c, "correct (boolean) is required")
		return
	}

	item, err := rc.store.CreateReview(sessionID, wordID, *req.Correct)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c)
		return
	}
	if err != nil {
		respondInternalError(c, err, "record review")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":               item.ID,
		"word_id":          item.WordID,
		"study_session_id": item.StudySessionID,
		"correct":          item.Correct,
		"created_at":       formatTimestamp(item.CreatedAt),
	})
}
