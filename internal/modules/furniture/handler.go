package furniture

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"furnex/internal/pkg/response"
	"furnex/internal/pkg/upload"
	"furnex/internal/pkg/validator"
)

type Handler struct {
	service *Service
	uploads *upload.Saver
}

func NewHandler(service *Service, uploads *upload.Saver) *Handler {
	return &Handler{
		service: service,
		uploads: uploads,
	}
}

func (h *Handler) GetAllFurniture(c *gin.Context) {
	pieces, err := h.service.GetAllFurniture(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"furniture": pieces})
}

func (h *Handler) GetPieceOfFurniture(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	piece, err := h.service.GetPieceOfFurniture(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"furniture": piece})
}

// AddFurniture takes multipart form data: a JSON "data" part and any number
// of "photos" files.
func (h *Handler) AddFurniture(c *gin.Context) {
	var req FurnitureAddForm
	data := c.PostForm("data")
	if data == "" {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Missing data part")
		return
	}
	if err := json.Unmarshal([]byte(data), &req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON in data part", err.Error())
		return
	}
	if fieldErrors := validator.Validate(&req); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", fieldErrors)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid multipart form")
		return
	}

	paths, err := h.uploads.SaveAll(c, form.File["photos"], "furniture")
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to save photos")
		return
	}

	piece, err := h.service.AddFurniture(c.Request.Context(), paths, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"furniture": piece})
}

func (h *Handler) RemoveFurniture(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.RemoveFurniture(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) GetParts(c *gin.Context) {
	parts, err := h.service.GetParts(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"parts": parts})
}

func (h *Handler) GetPart(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	part, err := h.service.GetPart(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"part": part})
}

func (h *Handler) AddPart(c *gin.Context) {
	var req PartAddForm
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	part, err := h.service.AddPart(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"part": part})
}

func (h *Handler) RemovePart(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.RemovePart(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/furniture", h.GetAllFurniture)
	r.GET("/furniture/parts", h.GetParts)
	r.GET("/furniture/parts/:id", h.GetPart)
	r.GET("/furniture/:id", h.GetPieceOfFurniture)
}

func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.POST("/furniture", h.AddFurniture)
	r.POST("/furniture/parts", h.AddPart)
}

func (h *Handler) RegisterWorkerRoutes(r *gin.RouterGroup) {
	r.DELETE("/furniture/parts/:id", h.RemovePart)
	r.DELETE("/furniture/:id", h.RemoveFurniture)
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
	case errors.Is(err, ErrFurnitureNotFound),
		errors.Is(err, ErrPartNotFound),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrRoomNotFound),
		errors.Is(err, ErrColorNotFound),
		errors.Is(err, ErrMaterialNotFound),
		errors.Is(err, ErrPatternNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrFurnitureExists), errors.Is(err, ErrPartExists):
		response.Error(c, http.StatusConflict, "ALREADY_EXISTS", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
