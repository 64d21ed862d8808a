package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/langportal/backend/internal/database/dashboard"
	"github.com/langportal/backend/internal/entities"
)

// DashboardStore defines the aggregate queries behind the dashboard.
type DashboardStore interface {
	GetLastSession() (*entities.StudySession, error)
	GetProgress() (*dashboard.Progress, error)
	GetStats() (*dashboard.Stats, error)
	GetStreakDays(now time.Time) (int, error)
}

type DashboardController struct {
	store    DashboardStore
	sessions SessionCounter

	// now is swappable in tests so streak assertions are deterministic.
	now func() time.Time
}

func NewDashboardController(store DashboardStore, sessions SessionCounter) *DashboardController {
	return &DashboardController{
		store:    store,
		sessions: sessions,
		now:      time.Now,
	}
}

// LastStudySession returns the most recent session with its review
// tallies.
// GET /api/dashboard/last_study_session
func (dc *DashboardController) LastStudySession(c *gin.Context) {
	session, err := dc.store.GetLastSession()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "No study sessions found"})
		return
	}
	if err != nil {
		respondInternalError(c, err, "last study session")
		return
	}

	counts, err := dc.sessions.GetReviewCounts([]uint{session.ID})
	if err != nil {
		respondInternalError(c, err, "last study session")
		return
	}

	c.JSON(http.StatusOK, serializeSession(*session, counts[session.ID]))
}

// StudyProgress reports how much of the vocabulary has been studied.
// GET /api/dashboard/study_progress
func (dc *DashboardController) StudyProgress(c *gin.Context) {
	progress, err := dc.store.GetProgress()
	if err != nil {
		respondInternalError(c, err, "study progress")
		return
	}

	mastery := 0.0
	if progress.TotalWords > 0 {
		mastery = roundRate(float64(progress.StudiedWords) / float64(progress.TotalWords) * 100)
	}

	var lastStudied any
	if progress.LastStudied != nil {
		lastStudied = formatTimestamp(*progress.LastStudied)
	}

	c.JSON(http.StatusOK, gin.H{
		"total_words_studied":   progress.StudiedWords,
		"total_words_available": progress.TotalWords,
		"mastery_percentage":    mastery,
		"last_studied_date":     lastStudied,
	})
}

// QuickStats reports the headline numbers: success rate, session and
// active-group counts, and the calendar-day study streak.
// GET /api/dashboard/quick_stats
func (dc *DashboardController) QuickStats(c *gin.Context) {
	stats, err := dc.store.GetStats()
	if err != nil {
		respondInternalError(c, err, "quick stats")
		return
	}

	successRate := 0.0
	if stats.TotalReviews > 0 {
		successRate = roundRate(float64(stats.CorrectReviews) / float64(stats.TotalReviews) * 100)
	}

	streak, err := dc.store.GetStreakDays(dc.now())
	if err != nil {
		respondInternalError(c, err, "quick stats")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success_rate":         successRate,
		"total_study_sessions": stats.TotalSessions,
		"total_active_groups":  stats.ActiveGroups,
		"study_streak_days":    streak,
	})
}
