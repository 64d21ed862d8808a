package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/langportal/backend/internal/database"
)

type HealthController struct {
	db      *database.Database
	version string
}

func NewHealthController(db *database.Database, version string) *HealthController {
	return &HealthController{db: db, version: version}
}

// Status reports liveness plus a database ping.
// GET /health
func (h *HealthController) Status(c *gin.Context) {
	dbState := "ok"
	if err := h.pingDatabase(); err != nil {
		dbState = "error: " + err.Error()
	}

	status := "healthy"
	code := http.StatusOK
	if dbState != "ok" {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":  status,
		"time":    time.Now().UTC().Format(time.RFC3339),
		"version": h.version,
		"checks":  gin.H{"database": dbState},
	})
}

func (h *HealthController) pingDatabase() error {
	sqlDB, err := h.db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
