package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// AdminStore defines the destructive maintenance operations.
type AdminStore interface {
	ResetHistory() (deletedSessions, deletedReviews int64, err error)
	FullReset() error
}

type AdminController struct {
	store AdminStore
}

func NewAdminController(store AdminStore) *AdminController {
	return &AdminController{store: store}
}

// ResetHistory clears all study sessions and review items, keeping the
// vocabulary and groups.
// POST /api/reset_history
func (ac *AdminController) ResetHistory(c *gin.Context) {
	deletedSessions, deletedReviews, err := ac.store.ResetHistory()
	if err != nil {
		respondInternalError(c, err, "reset history")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          "Study history reset successfully",
		"deleted_sessions": deletedSessions,
		"deleted_reviews":  deletedReviews,
	})
}

// FullReset drops all data, recreates the schema and reseeds the
// built-in activities. Irreversible.
// POST /api/full_reset
func (ac *AdminController) FullReset(c *gin.Context) {
	if err := ac.store.FullReset(); err != nil {
		respondInternalError(c, err, "full reset")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Database reset and reseeded successfully",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
