package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"clubserver/db"
	"clubserver/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	models.Init(gdb)
	db.Instance = gdb

	router := gin.New()
	router.POST("/messages", MessageSubmit)
	router.GET("/albums/:id/cover", AlbumGetCover)
	router.GET("/events", EventList)
	return router
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMessageSubmitEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := postForm(router, "/messages", url.Values{
		"first_name": {"Jo"},
		"last_name":  {"Bloggs"},
		"email":      {"jo@club.test"},
		"body":       {"When is training?"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Error string `json:"error"`
		ID    uint64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Error)
	assert.NotZero(t, resp.ID)

	message, err := models.OpenMessage(db.Instance, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "When is training?", message.Body)
}

func TestMessageSubmitEndpointValidation(t *testing.T) {
	router := setupRouter(t)

	// Missing required fields are rejected by binding
	w := postForm(router, "/messages", url.Values{"first_name": {"Jo"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Bad email is rejected by the model
	w = postForm(router, "/messages", url.Values{
		"first_name": {"Jo"},
		"last_name":  {"Bloggs"},
		"email":      {"not-an-email"},
		"body":       {"hi"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	messages, err := models.GetMessages(db.Instance)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestAlbumCoverNotFoundEndpoint(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/albums/42/cover", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/albums/abc/cover", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEventListEndpoint(t *testing.T) {
	router := setupRouter(t)
	_, err := models.CreateEvent(db.Instance, models.Event{Title: "Open day"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var events []models.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "Open day", events[0].Title)
}
