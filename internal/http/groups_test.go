package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langportal/backend/internal/entities"
)

func TestGroupsController_ListGroups(t *testing.T) {
	db, router, cleanup := setupTestServer(t)
	defer cleanup()

	group := createAPITestGroup(t, db, "Animals")
	createAPITestGroup(t, db, "Colors")
	word := createAPITestWord(t, db, "犬", "inu", "dog", "")
	require.NoError(t, db.DB.Create(&entities.WordsGroup{WordID: word.ID, GroupID: group.ID}).Error)

	w := performRequest(router, "GET", "/api/groups", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	data := body["data"].([]any)
	require.Len(t, data, 2)

	first := data[0].(map[string]any)
	assert.Equal(t, "Animals", first["name"])
	assert.Equal(t, float64(1), first["word_count"])
	second := data[1].(map[string]any)
	assert.Equal(t, float64(0), second["word_count"])
}

func TestGroupsController_GetGroup(t *testing.T) {
	t.Run("returns group with its real creation time", func(t *testing.T) {
		db, router, cleanup := setupTestServer(t)
		defer cleanup()

		group := createAPITestGroup(t, db, "Animals")

		w := performRequest(router, "GET", fmt.Sprintf("/api/groups/%d", group.ID), "")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeJSON(t, w)
		assert.Equal(t, "Animals", body["name"])
		assert.Equal(t, float64(0), body["total_word_count"])
		assert.NotEmpty(t, body["created_at"])
	})

	t.Run("unknown group yields 404", func(t *testing.T) {
		_, router, cleanup := setupTestServer(t)
		defer cleanup()

		w := performRequest(router, "GET", "/api/groups/42", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGroupsController_GroupWords(t *testing.T) {
	t.Run("returns only the group's words", func(t *testing.T) {
		db, router, cleanup := setupTestServer(t)
		defer cleanup()

		group := createAPITestGroup(t, db, "Animals")
		other := createAPITestGroup(t, db, "Colors")
		inGroup := createAPITestWord(t, db, "犬", "inu", "dog", "")
		outside := createAPITestWord(t, db, "赤", "aka", "red", "")
		require.NoError(t, db.DB.Create(&entities.WordsGroup{WordID: inGroup.ID, GroupID: group.ID}).Error)
		require.NoError(t, db.DB.Create(&entities.WordsGroup{WordID: outside.ID, GroupID: other.ID}).Error)

		w := performRequest(router, "GET", fmt.Sprintf("/api/groups/%d/words", group.ID), "")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeJSON(t, w)
		data := body["data"].([]any)
		require.Len(t, data, 1)
		assert.Equal(t, "犬", data[0].(map[string]any)["japanese"])
	})

	t.Run("unknown group yields 404", func(t *testing.T) {
		_, router, cleanup := setupTestServer(t)
		defer cleanup()

		w := performRequest(router, "GET", "/api/groups/42/words", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGroupsController_GroupSessions(t *testing.T) {
	t.Run("returns the group's sessions with counts", func(t *testing.T) {
		db, router, cleanup := setupTestServer(t)
		defer cleanup()

		group := createAPITestGroup(t, db, "Animals")
		session := &entities.StudySession{GroupID: group.ID}
		require.NoError(t, db.DB.Create(session).Error)

		w := performRequest(router, "GET", fmt.Sprintf("/api/groups/%d/study_sessions", group.ID), "")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeJSON(t, w)
		data := body["data"].([]any)
		require.Len(t, data, 1)
		entry := data[0].(map[string]any)
		assert.Equal(t, "Animals", entry["group_name"])
		assert.Equal(t, float64(0), entry["total_reviews"])
	})

	t.Run("unknown group yields 404", func(t *testing.T) {
		_, router, cleanup := setupTestServer(t)
		defer cleanup()

		w := performRequest(router, "GET", "/api/groups/42/study_sessions", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
