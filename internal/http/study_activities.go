package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/langportal/backend/internal/entities"
)

// ActivityStore defines database operations for study activities.
type ActivityStore interface {
	GetActivityByID(id uint) (*entities.StudyActivity, error)
	GetActivitySessions(activityID uint, limit, offset int) ([]entities.StudySession, int64, error)
	CreateSession(groupID uint, activityType string) (*entities.StudySession, error)
	SessionCounter
}

type ActivitiesController struct {
	store ActivityStore
}

func NewActivitiesController(store ActivityStore) *ActivitiesController {
	return &ActivitiesController{store: store}
}

// CreateSessionRequest is the request body for launching a study
// session through a new activity.
type CreateSessionRequest struct {
	GroupID           uint   `json:"group_id"`
	StudyActivityType string `json:"study_activity_type"`
}

// GetActivity returns a single study activity.
// GET /api/study_activities/:id
func (ac *ActivitiesController) GetActivity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	activity, err := ac.store.GetActivityByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c)
		return
	}
	if err != nil {
		respondInternalError(c, err, "get activity")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            activity.ID,
		"name":          activity.Name,
		"description":   activity.Description,
		"thumbnail_url": activity.ThumbnailURL,
		"activity_type": activity.ActivityType,
		"launch_url":    activity.LaunchURL,
		"created_at":    formatTimestamp(activity.CreatedAt),
	})
}

// ActivitySessions returns the activity's sessions, newest first,
// paginated.
// GET /api/study_activities/:id/study_sessions
func (ac *ActivitiesController) ActivitySessions(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := ac.store.GetActivityByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c)
		} else {
			respondInternalError(c, err, "activity sessions")
		}
		return
	}

	page := parsePage(c)
	sessions, total, err := ac.store.GetActivitySessions(id, PerPage, pageOffset(page))
	if err != nil {
		respondInternalError(c, err, "activity sessions")
		return
	}

	data, err := serializeSessions(sessions, ac.store)
	if err != nil {
		respondInternalError(c, err, "activity sessions")
		return
	}

	respondPage(c, data, page, total)
}

// CreateSession creates a study activity of the requested type plus a
// session linking it to the group.
// POST /api/study_activities
func (ac *ActivitiesController) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "group_id and study_activity_type required")
		return
	}
	if req.GroupID == 0 || req.StudyActivityType == "" {
		respondBadRequest(c, "group_id and study_activity_type required")
		return
	}

	session, err := ac.store.CreateSession(req.GroupID, req.StudyActivityType)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c)
		return
	}
	if err != nil {
		respondInternalError(c, err, "create session")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":               session.ID,
		"study_session_id": session.ID,
		"group_id":         session.GroupID,
		"created_at":       formatTimestamp(session.CreatedAt),
	})
}
