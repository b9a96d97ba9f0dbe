package media

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toplistapp/toplist-server/cmd/models"
	"github.com/toplistapp/toplist-server/core"
	"github.com/toplistapp/toplist-server/store"
)

func newTestRouter(t *testing.T) (*mux.Router, *core.Core) {
	t.Helper()
	c := core.New(store.NewMemoryStore())
	router := mux.NewRouter()
	NewHandler(c).RegisterRoutes(router.PathPrefix("/api").Subrouter())
	return router, c
}

func doJSON(t *testing.T, router *mux.Router, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func seedUser(t *testing.T, c *core.Core, username string) *models.User {
	t.Helper()
	u, err := c.RegisterUser(&models.User{
		Username:    username,
		Email:       username + "@example.com",
		DisplayName: username,
	})
	require.NoError(t, err)
	return u
}

func TestAddMediaItemEndpoint(t *testing.T) {
	router, c := newTestRouter(t)
	u := seedUser(t, c, "ada")

	rec := doJSON(t, router, "POST", "/api/media", map[string]interface{}{
		"userId":    u.ID,
		"title":     "Bohemian Rhapsody",
		"creator":   "Queen",
		"mediaType": "song",
		"story":     "first single I owned",
		"position":  1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var item models.MediaItem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&item))
	assert.NotZero(t, item.ID)
	assert.Equal(t, 1, item.Position)
	assert.Zero(t, item.LikeCount)
}

func TestAddMediaItemValidation(t *testing.T) {
	router, c := newTestRouter(t)
	u := seedUser(t, c, "ada")

	for name, payload := range map[string]map[string]interface{}{
		"missing title":     {"userId": u.ID, "mediaType": "song", "story": "s", "position": 1},
		"missing story":     {"userId": u.ID, "title": "t", "mediaType": "song", "position": 1},
		"bad media type":    {"userId": u.ID, "title": "t", "mediaType": "podcast", "story": "s", "position": 1},
		"position zero":     {"userId": u.ID, "title": "t", "mediaType": "song", "story": "s", "position": 0},
		"position too high": {"userId": u.ID, "title": "t", "mediaType": "song", "story": "s", "position": 11},
	} {
		rec := doJSON(t, router, "POST", "/api/media", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
	}
}

func TestAddMediaItemOwnerMissingIs404(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/media", map[string]interface{}{
		"userId": 42, "title": "t", "mediaType": "song", "story": "s", "position": 1,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddMediaItemConstraintViolationsAre400(t *testing.T) {
	router, c := newTestRouter(t)
	u := seedUser(t, c, "ada")

	for pos := 1; pos <= models.MaxListItems; pos++ {
		rec := doJSON(t, router, "POST", "/api/media", map[string]interface{}{
			"userId": u.ID, "title": fmt.Sprintf("Item %d", pos), "mediaType": "song", "story": "s", "position": pos,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	// Position 1..10 are taken and the list is full; both map to 400.
	rec := doJSON(t, router, "POST", "/api/media", map[string]interface{}{
		"userId": u.ID, "title": "Eleventh", "mediaType": "song", "story": "s", "position": 3,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateMediaItemEndpoint(t *testing.T) {
	router, c := newTestRouter(t)
	u := seedUser(t, c, "ada")
	item, err := c.AddMediaItem(core.AddMediaItemInput{UserID: u.ID, Title: "t", MediaType: "song", Story: "s", Position: 1})
	require.NoError(t, err)

	rec := doJSON(t, router, "PUT", fmt.Sprintf("/api/media/%d", item.ID), map[string]interface{}{
		"position": 4, "changeReason": "felt right",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.MediaItem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	assert.Equal(t, 4, updated.Position)

	rec = doJSON(t, router, "PUT", "/api/media/999", map[string]interface{}{"title": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, "PUT", fmt.Sprintf("/api/media/%d", item.ID), map[string]interface{}{"position": 99})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteMediaItemEndpoint(t *testing.T) {
	router, c := newTestRouter(t)
	u := seedUser(t, c, "ada")
	item, err := c.AddMediaItem(core.AddMediaItemInput{UserID: u.ID, Title: "t", MediaType: "song", Story: "s", Position: 1})
	require.NoError(t, err)

	rec := doJSON(t, router, "DELETE", fmt.Sprintf("/api/media/%d?changeReason=making+room", item.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	entries, err := c.TimelineForUser(u.ID)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, models.ActionRemoved, entries[0].Action)
	assert.Equal(t, "making room", entries[0].ChangeReason)

	rec = doJSON(t, router, "DELETE", fmt.Sprintf("/api/media/%d", item.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetUserMediaSortedByPosition(t *testing.T) {
	router, c := newTestRouter(t)
	u := seedUser(t, c, "ada")
	for _, pos := range []int{7, 2, 5} {
		_, err := c.AddMediaItem(core.AddMediaItemInput{
			UserID: u.ID, Title: fmt.Sprintf("Item %d", pos), MediaType: "song", Story: "s", Position: pos,
		})
		require.NoError(t, err)
	}

	rec := doJSON(t, router, "GET", fmt.Sprintf("/api/users/%d/media", u.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.MediaItem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&items))
	require.Len(t, items, 3)
	assert.Equal(t, 2, items[0].Position)
	assert.Equal(t, 5, items[1].Position)
	assert.Equal(t, 7, items[2].Position)
}

func TestLikeEndpoints(t *testing.T) {
	router, c := newTestRouter(t)
	u := seedUser(t, c, "ada")
	item, err := c.AddMediaItem(core.AddMediaItemInput{UserID: u.ID, Title: "t", MediaType: "song", Story: "s", Position: 1})
	require.NoError(t, err)

	payload := map[string]interface{}{"userId": u.ID, "mediaItemId": item.ID}
	rec := doJSON(t, router, "POST", "/api/likes", payload)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, "POST", "/api/likes", payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "double like")

	rec = doJSON(t, router, "DELETE", fmt.Sprintf("/api/likes/%d/%d", u.ID, item.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, "DELETE", fmt.Sprintf("/api/likes/%d/%d", u.ID, item.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCommentEndpoints(t *testing.T) {
	router, c := newTestRouter(t)
	u := seedUser(t, c, "ada")
	item, err := c.AddMediaItem(core.AddMediaItemInput{UserID: u.ID, Title: "t", MediaType: "song", Story: "s", Position: 1})
	require.NoError(t, err)

	rec := doJSON(t, router, "POST", "/api/comments", map[string]interface{}{
		"userId": u.ID, "mediaItemId": item.ID, "content": "great pick",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var comment models.CommentWithUser
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&comment))
	require.NotNil(t, comment.User)
	assert.Equal(t, "ada", comment.User.Username)

	rec = doJSON(t, router, "GET", fmt.Sprintf("/api/media/%d/comments", item.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var comments []models.CommentWithUser
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&comments))
	assert.Len(t, comments, 1)

	rec = doJSON(t, router, "POST", "/api/comments", map[string]interface{}{
		"userId": u.ID, "mediaItemId": item.ID, "content": "",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, "DELETE", fmt.Sprintf("/api/comments/%d", comment.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTrendingEndpoint(t *testing.T) {
	router, c := newTestRouter(t)
	u := seedUser(t, c, "ada")
	reader := seedUser(t, c, "reader")

	quiet, err := c.AddMediaItem(core.AddMediaItemInput{UserID: u.ID, Title: "Quiet", MediaType: "song", Story: "s", Position: 1})
	require.NoError(t, err)
	loud, err := c.AddMediaItem(core.AddMediaItemInput{UserID: u.ID, Title: "Loud", MediaType: "song", Story: "s", Position: 2})
	require.NoError(t, err)
	_, err = c.AddComment(reader.ID, loud.ID, "so good")
	require.NoError(t, err)

	rec := doJSON(t, router, "GET", "/api/trending", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var trending []models.TrendingItem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&trending))
	require.Len(t, trending, 2)
	assert.Equal(t, loud.ID, trending[0].ID)
	assert.Equal(t, 2, trending[0].EngagementScore)
	assert.Equal(t, quiet.ID, trending[1].ID)

	rec = doJSON(t, router, "GET", "/api/trending?limit=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	trending = nil
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&trending))
	assert.Len(t, trending, 1)
}

// brokenStore stands in for a backend whose queries fail.
type brokenStore struct {
	*store.MemoryStore
}

func (brokenStore) AllMediaItems() ([]*models.MediaItem, error) {
	return nil, errors.New("connection refused")
}

func TestTrendingStoreFailureIsServerError(t *testing.T) {
	c := core.New(brokenStore{store.NewMemoryStore()})
	router := mux.NewRouter()
	NewHandler(c).RegisterRoutes(router.PathPrefix("/api").Subrouter())

	rec := doJSON(t, router, "GET", "/api/trending", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "internal server error", body["message"])
}
