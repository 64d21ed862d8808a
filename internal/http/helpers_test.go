package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langportal/backend/internal/database"
	"github.com/langportal/backend/internal/database/admin"
	"github.com/langportal/backend/internal/database/dashboard"
	"github.com/langportal/backend/internal/database/groups"
	"github.com/langportal/backend/internal/database/study"
	"github.com/langportal/backend/internal/database/words"
	"github.com/langportal/backend/internal/entities"
)

// setupTestServer builds a throwaway database and a fully wired router.
func setupTestServer(t *testing.T) (*database.Database, *gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_api_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	studyRepo := study.NewRepository(db.DB)
	router := NewRouter(RouterConfig{
		Database:       db,
		WordStore:      words.NewRepository(db.DB),
		GroupStore:     groups.NewRepository(db.DB),
		SessionStore:   studyRepo,
		ActivityStore:  studyRepo,
		ReviewStore:    studyRepo,
		DashboardStore: dashboard.NewRepository(db.DB),
		AdminStore:     admin.NewRepository(db.DB),
		Version:        "test",
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, router, cleanup
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func createAPITestGroup(t *testing.T, db *database.Database, name string) *entities.Group {
	t.Helper()
	g := &entities.Group{Name: name}
	require.NoError(t, db.DB.Create(g).Error)
	return g
}

func createAPITestWord(t *testing.T, db *database.Database, japanese, romaji, english, parts string) *entities.Word {
	t.Helper()
	w := &entities.Word{Japanese: japanese, Romaji: romaji, English: english, Parts: parts}
	require.NoError(t, db.DB.Create(w).Error)
	return w
}

func TestNewPagination(t *testing.T) {
	t.Run("rounds total pages up", func(t *testing.T) {
		p := newPagination(1, 101)
		assert.Equal(t, 1, p.CurrentPage)
		assert.Equal(t, PerPage, p.PerPage)
		assert.Equal(t, 2, p.TotalPages)
		assert.Equal(t, int64(101), p.TotalItems)
	})

	t.Run("zero items means zero pages", func(t *testing.T) {
		p := newPagination(1, 0)
		assert.Equal(t, 0, p.TotalPages)
		assert.Equal(t, int64(0), p.TotalItems)
	})
}

func TestParsePage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		query    string
		expected int
	}{
		{"", 1},
		{"?page=3", 3},
		{"?page=0", 1},
		{"?page=-2", 1},
		{"?page=abc", 1},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest("GET", "/words"+tc.query, nil)

		assert.Equal(t, tc.expected, parsePage(c), "query %q", tc.query)
	}
}

func TestNoRouteReturnsGenericNotFound(t *testing.T) {
	_, router, cleanup := setupTestServer(t)
	defer cleanup()

	w := performRequest(router, "GET", "/api/nope", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, "Resource not found", body["error"])
}

func TestHealthEndpoint(t *testing.T) {
	_, router, cleanup := setupTestServer(t)
	defer cleanup()

	w := performRequest(router, "GET", "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, "healthy", body["status"])
}
