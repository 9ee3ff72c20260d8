package customsize

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"furnex/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CustomSizeAddForm
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}

	form, err := h.service.Add(c.Request.Context(), userID, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"form": form})
}

func (h *Handler) ListOwn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	forms, err := h.service.ListForClient(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"forms": forms})
}

func (h *Handler) GetOwn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	form, err := h.service.GetForClient(c.Request.Context(), userID, id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"form": form})
}

// ListAll returns every request for review. An empty backlog is 204.
func (h *Handler) ListAll(c *gin.Context) {
	forms, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	if len(forms) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"forms": forms})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	form, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"form": form})
}

func (h *Handler) Approve(c *gin.Context) {
	var req ApproveForm
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	form, err := h.service.Approve(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"form": form})
}

// RegisterClientRoutes needs JWTAuth on the group.
func (h *Handler) RegisterClientRoutes(r *gin.RouterGroup) {
	r.POST("/custom-size/client", h.Add)
	r.GET("/custom-size/client", h.ListOwn)
	r.GET("/custom-size/client/:id", h.GetOwn)
}

// RegisterWorkerRoutes needs JWTAuth plus the worker role on the group.
func (h *Handler) RegisterWorkerRoutes(r *gin.RouterGroup) {
	r.POST("/custom-size/accept", h.Approve)
	r.GET("/custom-size", h.ListAll)
	r.GET("/custom-size/:id", h.Get)
}

func currentUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return 0, false
	}
	id, ok := v.(int64)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return 0, false
	}
	return id, true
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid id")
		return 0, false
	}
	return id, true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrFormNotFound), errors.Is(err, ErrClientNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrAlreadyApproved):
		response.Error(c, http.StatusConflict, "ALREADY_EXISTS", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
