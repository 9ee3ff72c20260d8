package customsize

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"furnex/internal/middleware"
	jwtsvc "furnex/internal/pkg/jwt"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, *jwtsvc.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, db := setupService(t)
	handler := NewHandler(svc)
	j := jwtsvc.New("test-secret", time.Hour)

	router := gin.New()
	v1 := router.Group("/api/v1")

	protected := v1.Group("/")
	protected.Use(middleware.JWTAuth(j))
	handler.RegisterClientRoutes(protected)

	worker := v1.Group("/")
	worker.Use(middleware.JWTAuth(j), middleware.WorkerOnly())
	handler.RegisterWorkerRoutes(worker)

	return router, db, j
}

func performJSON(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListAllEndpoint_EmptyBacklogIs204(t *testing.T) {
	router, _, j := setupRouter(t)
	token, _ := j.GenerateToken(1, "worker")

	w := performJSON(router, http.MethodGet, "/api/v1/custom-size", nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestListAllEndpoint_ClientForbidden(t *testing.T) {
	router, _, j := setupRouter(t)
	token, _ := j.GenerateToken(1, "client")

	w := performJSON(router, http.MethodGet, "/api/v1/custom-size", nil, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAddEndpoint_Unauthenticated(t *testing.T) {
	router, _, _ := setupRouter(t)

	w := performJSON(router, http.MethodPost, "/api/v1/custom-size/client", CustomSizeAddForm{Width: 1, Height: 1, Depth: 1}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCustomSizeFlow_AddThenApprove(t *testing.T) {
	router, db, j := setupRouter(t)

	userID := seedClient(t, db, "anna@example.com")
	clientToken, _ := j.GenerateToken(userID, "client")
	workerToken, _ := j.GenerateToken(999, "worker")

	w := performJSON(router, http.MethodPost, "/api/v1/custom-size/client",
		CustomSizeAddForm{Width: 180, Height: 75, Depth: 90, Description: "Alcove desk"}, clientToken)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			Form CustomSizeFormResponse `json:"form"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	formID := created.Data.Form.ID
	require.NotZero(t, formID)

	// backlog is now visible to the worker
	w = performJSON(router, http.MethodGet, "/api/v1/custom-size", nil, workerToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(router, http.MethodPost, "/api/v1/custom-size/accept",
		ApproveForm{FormID: formID, Price: 1500}, workerToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "approved")

	// second approval conflicts
	w = performJSON(router, http.MethodPost, "/api/v1/custom-size/accept",
		ApproveForm{FormID: formID, Price: 1800}, workerToken)
	assert.Equal(t, http.StatusConflict, w.Code)

	// the client sees the quoted price
	w = performJSON(router, http.MethodGet, "/api/v1/custom-size/client", nil, clientToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "1500")
}

func TestApproveEndpoint_ValidationRejectsZeroPrice(t *testing.T) {
	router, _, j := setupRouter(t)
	token, _ := j.GenerateToken(1, "worker")

	w := performJSON(router, http.MethodPost, "/api/v1/custom-size/accept",
		map[string]interface{}{"form_id": 1, "price": 0}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
