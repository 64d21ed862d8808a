package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}))

	router.NoRoute(func(c *gin.Context) {
		respondNotFound(c)
	})

	health := NewHealthController(cfg.Database, cfg.Version)
	words := NewWordsController(cfg.WordStore)
	groups := NewGroupsController(cfg.GroupStore, cfg.WordStore, cfg.SessionStore)
	sessions := NewSessionsController(cfg.SessionStore)
	activities := NewActivitiesController(cfg.ActivityStore)
	reviews := NewReviewsController(cfg.ReviewStore)
	dash := NewDashboardController(cfg.DashboardStore, cfg.SessionStore)
	admin := NewAdminController(cfg.AdminStore)

	router.GET("/health", health.Status)

	api := router.Group("/api")

	api.GET("/words", words.ListWords)
	api.GET("/words/:id", words.GetWord)

	api.GET("/groups", groups.ListGroups)
	api.GET("/groups/:id", groups.GetGroup)
	api.GET("/groups/:id/words", groups.GroupWords)
	api.GET("/groups/:id/study_sessions", groups.GroupSessions)

	api.GET("/study_sessions", sessions.ListSessions)
	api.GET("/study_sessions/:id", sessions.GetSession)
	api.GET("/study_sessions/:id/words", sessions.SessionWords)

	api.GET("/study_activities/:id", activities.GetActivity)
	api.GET("/study_activities/:id/study_sessions", activities.ActivitySessions)
	api.POST("/study_activities", activities.CreateSession)

	api.POST("/study_sessions/:session_id/words/:word_id/review", reviews.RecordReview)

	api.GET("/dashboard/last_study_session", dash.LastStudySession)
	api.GET("/dashboard/study_progress", dash.StudyProgress)
	api.GET("/dashboard/quick_stats", dash.QuickStats)

	api.POST("/reset_history", admin.ResetHistory)
	api.POST("/full_reset", admin.FullReset)

	return router
}
