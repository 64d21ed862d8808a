package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langportal/backend/internal/database/dashboard"
	"github.com/langportal/backend/internal/database/study"
	"github.com/langportal/backend/internal/entities"
)

func TestDashboardController_LastStudySession(t *testing.T) {
	t.Run("empty history yields 404", func(t *testing.T) {
		_, router, cleanup := setupTestServer(t)
		defer cleanup()

		w := performRequest(router, "GET", "/api/dashboard/last_study_session", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decodeJSON(t, w)
		assert.Equal(t, "No study sessions found", body["error"])
	})

	t.Run("returns most recent session with counts", func(t *testing.T) {
		db, router, cleanup := setupTestServer(t)
		defer cleanup()

		group := createAPITestGroup(t, db, "Animals")
		word := createAPITestWord(t, db, "犬", "inu", "dog", "")

		older := &entities.StudySession{GroupID: group.ID, CreatedAt: time.Now().UTC().Add(-time.Hour)}
		require.NoError(t, db.DB.Create(older).Error)
		newer := &entities.StudySession{GroupID: group.ID, CreatedAt: time.Now().UTC()}
		require.NoError(t, db.DB.Create(newer).Error)
		for _, correct := range []bool{true, true, false} {
			item := &entities.WordReviewItem{WordID: word.ID, StudySessionID: newer.ID, Correct: correct}
			require.NoError(t, db.DB.Create(item).Error)
		}

		w := performRequest(router, "GET", "/api/dashboard/last_study_session", "")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeJSON(t, w)
		assert.Equal(t, float64(newer.ID), body["id"])
		assert.Equal(t, "Animals", body["group_name"])
		assert.Equal(t, float64(2), body["correct_count"])
		assert.Equal(t, float64(1), body["wrong_count"])
	})
}

func TestDashboardController_StudyProgress(t *testing.T) {
	t.Run("no words means zero mastery", func(t *testing.T) {
		_, router, cleanup := setupTestServer(t)
		defer cleanup()

		w := performRequest(router, "GET", "/api/dashboard/study_progress", "")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeJSON(t, w)
		assert.Equal(t, float64(0), body["total_words_studied"])
		assert.Equal(t, float64(0), body["total_words_available"])
		assert.Equal(t, float64(0), body["mastery_percentage"])
		assert.Nil(t, body["last_studied_date"])
	})

	t.Run("counts distinct studied words", func(t *testing.T) {
		db, router, cleanup := setupTestServer(t)
		defer cleanup()

		group := createAPITestGroup(t, db, "Animals")
		studied := createAPITestWord(t, db, "犬", "inu", "dog", "")
		createAPITestWord(t, db, "猫", "neko", "cat", "")

		session := &entities.StudySession{GroupID: group.ID, CreatedAt: time.Now().UTC()}
		require.NoError(t, db.DB.Create(session).Error)
		for _, correct := range []bool{true, false} {
			item := &entities.WordReviewItem{WordID: studied.ID, StudySessionID: session.ID, Correct: correct}
			require.NoError(t, db.DB.Create(item).Error)
		}

		w := performRequest(router, "GET", "/api/dashboard/study_progress", "")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeJSON(t, w)
		assert.Equal(t, float64(1), body["total_words_studied"])
		assert.Equal(t, float64(2), body["total_words_available"])
		assert.Equal(t, float64(50), body["mastery_percentage"])
		assert.NotNil(t, body["last_studied_date"])
	})
}

func TestDashboardController_QuickStats(t *testing.T) {
	t.Run("empty database yields zeroes", func(t *testing.T) {
		_, router, cleanup := setupTestServer(t)
		defer cleanup()

		w := performRequest(router, "GET", "/api/dashboard/quick_stats", "")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeJSON(t, w)
		assert.Equal(t, float64(0), body["success_rate"])
		assert.Equal(t, float64(0), body["total_study_sessions"])
		assert.Equal(t, float64(0), body["total_active_groups"])
		assert.Equal(t, float64(0), body["study_streak_days"])
	})

	t.Run("aggregates reviews and groups", func(t *testing.T) {
		db, router, cleanup := setupTestServer(t)
		defer cleanup()

		group := createAPITestGroup(t, db, "Animals")
		other := createAPITestGroup(t, db, "Food")
		word := createAPITestWord(t, db, "犬", "inu", "dog", "")

		for _, g := range []*entities.Group{group, group, other} {
			session := &entities.StudySession{GroupID: g.ID, CreatedAt: time.Now().UTC()}
			require.NoError(t, db.DB.Create(session).Error)
			for _, correct := range []bool{true, false} {
				item := &entities.WordReviewItem{WordID: word.ID, StudySessionID: session.ID, Correct: correct}
				require.NoError(t, db.DB.Create(item).Error)
			}
		}

		w := performRequest(router, "GET", "/api/dashboard/quick_stats", "")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeJSON(t, w)
		assert.Equal(t, float64(50), body["success_rate"])
		assert.Equal(t, float64(3), body["total_study_sessions"])
		assert.Equal(t, float64(2), body["total_active_groups"])
		assert.GreaterOrEqual(t, body["study_streak_days"].(float64), float64(1))
	})

	t.Run("streak counts consecutive days up to a fixed now", func(t *testing.T) {
		db, _, cleanup := setupTestServer(t)
		defer cleanup()

		group := createAPITestGroup(t, db, "Animals")
		now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
		for _, offset := range []int{0, 1, 2, 4} {
			session := &entities.StudySession{GroupID: group.ID, CreatedAt: now.AddDate(0, 0, -offset)}
			require.NoError(t, db.DB.Create(session).Error)
		}

		studyRepo := study.NewRepository(db.DB)
		controller := NewDashboardController(dashboard.NewRepository(db.DB), studyRepo)
		controller.now = func() time.Time { return now }

		gin.SetMode(gin.TestMode)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest("GET", "/api/dashboard/quick_stats", nil)
		controller.QuickStats(c)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeJSON(t, w)
		assert.Equal(t, float64(3), body["study_streak_days"])
	})
}
