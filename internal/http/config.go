package http

import (
	"github.com/langportal/backend/internal/database"
)

// RouterConfig holds all dependencies needed to construct the router.
// Controllers receive the narrow store interface they need; the
// concrete database handle is only used by the health check.
type RouterConfig struct {
	Database *database.Database

	WordStore      WordStore
	GroupStore     GroupStore
	SessionStore   SessionStore
	ActivityStore  ActivityStore
	ReviewStore    ReviewStore
	DashboardStore DashboardStore
	AdminStore     AdminStore

	Version string
}
