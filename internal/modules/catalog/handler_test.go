package catalog

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furnex/internal/pkg/upload"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := setupService(t)
	handler := NewHandler(svc, upload.NewSaver(t.TempDir(), "/uploads"))

	router := gin.New()
	v1 := router.Group("/api/v1")
	handler.RegisterPublicRoutes(v1)
	handler.RegisterProtectedRoutes(v1)
	return router
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddColorEndpoint_CreateThenConflict(t *testing.T) {
	router := setupRouter(t)

	body := ColorAddForm{Name: "Graphite", HexCode: "#383838"}

	w := performJSON(router, http.MethodPost, "/api/v1/catalog/colors", body)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performJSON(router, http.MethodPost, "/api/v1/catalog/colors", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "ALREADY_EXISTS")
}

func TestAddColorEndpoint_InvalidHex(t *testing.T) {
	router := setupRouter(t)

	w := performJSON(router, http.MethodPost, "/api/v1/catalog/colors", ColorAddForm{Name: "Bad", HexCode: "not-a-color"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetColorsEndpoint_EmptyList(t *testing.T) {
	router := setupRouter(t)

	w := performJSON(router, http.MethodGet, "/api/v1/catalog/colors", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"colors":[]`)
}

func TestGetRoomEndpoint_NotFound(t *testing.T) {
	router := setupRouter(t)

	w := performJSON(router, http.MethodGet, "/api/v1/catalog/rooms/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestGetRoomEndpoint_BadID(t *testing.T) {
	router := setupRouter(t)

	w := performJSON(router, http.MethodGet, "/api/v1/catalog/rooms/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ID")
}
