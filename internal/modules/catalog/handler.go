package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"furnex/internal/pkg/response"
	"furnex/internal/pkg/upload"
	"furnex/internal/pkg/validator"
	"furnex/internal/repository"
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

/* ---------- COLORS ---------- */

func (h *Handler) GetColors(c *gin.Context) {
	colors, err := h.service.GetColors(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"colors": colors})
}

func (h *Handler) GetColor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	color, err := h.service.GetColor(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"color": color})
}

func (h *Handler) AddColor(c *gin.Context) {
	var req ColorAddForm
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	color, err := h.service.AddColor(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"color": color})
}

/* ---------- ROOMS ---------- */

func (h *Handler) GetRooms(c *gin.Context) {
	rooms, err := h.service.GetRooms(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) GetRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	room, err := h.service.GetRoom(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) AddRoom(c *gin.Context) {
	var req RoomAddForm
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	room, err := h.service.AddRoom(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

/* ---------- CATEGORIES ---------- */

func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.service.GetCategories(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}

func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	category, err := h.service.GetCategory(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"category": category})
}

func (h *Handler) AddCategory(c *gin.Context) {
	var req CategoryAddForm
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}
	category, err := h.service.AddCategory(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"category": category})
}

/* ---------- MATERIALS ---------- */

func (h *Handler) GetMaterials(c *gin.Context) {
	materials, err := h.service.GetMaterials(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"materials": materials})
}

func (h *Handler) GetMaterial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	material, err := h.service.GetMaterial(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"material": material})
}

// AddMaterial takes multipart form data: a JSON "data" part and a "photo"
// file that becomes the material's one photo.
func (h *Handler) AddMaterial(c *gin.Context) {
	var req MaterialAddForm
	if !bindMultipartJSON(c, &req) {
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "Photo file is required")
		return
	}

	path, err := h.uploads.Save(c, file, "materials")
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to save photo")
		return
	}

	material, err := h.service.AddMaterial(c.Request.Context(), path, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"material": material})
}

/* ---------- PATTERNS ---------- */

func (h *Handler) GetPatterns(c *gin.Context) {
	patterns, err := h.service.GetPatterns(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"patterns": patterns})
}

func (h *Handler) GetPattern(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pattern, err := h.service.GetPattern(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"pattern": pattern})
}

func (h *Handler) AddPattern(c *gin.Context) {
	var req PatternAddForm
	if !bindMultipartJSON(c, &req) {
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "Photo file is required")
		return
	}

	path, err := h.uploads.Save(c, file, "patterns")
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to save photo")
		return
	}

	pattern, err := h.service.AddPattern(c.Request.Context(), path, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"pattern": pattern})
}

/* ---------- REMOVAL ---------- */

func (h *Handler) remove(c *gin.Context, del func(context.Context, int64) error) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := del(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) RemoveColor(c *gin.Context)    { h.remove(c, h.service.RemoveColor) }
func (h *Handler) RemoveRoom(c *gin.Context)     { h.remove(c, h.service.RemoveRoom) }
func (h *Handler) RemoveCategory(c *gin.Context) { h.remove(c, h.service.RemoveCategory) }
func (h *Handler) RemoveMaterial(c *gin.Context) { h.remove(c, h.service.RemoveMaterial) }
func (h *Handler) RemovePattern(c *gin.Context)  { h.remove(c, h.service.RemovePattern) }

/* ---------- ROUTE REGISTRATION ---------- */

// RegisterPublicRoutes exposes the reference-data reads; they are anonymous.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	catalog := r.Group("/catalog")
	{
		catalog.GET("/colors", h.GetColors)
		catalog.GET("/colors/:id", h.GetColor)
		catalog.GET("/rooms", h.GetRooms)
		catalog.GET("/rooms/:id", h.GetRoom)
		catalog.GET("/categories", h.GetCategories)
		catalog.GET("/categories/:id", h.GetCategory)
		catalog.GET("/materials", h.GetMaterials)
		catalog.GET("/materials/:id", h.GetMaterial)
		catalog.GET("/patterns", h.GetPatterns)
		catalog.GET("/patterns/:id", h.GetPattern)
	}
}

// RegisterProtectedRoutes exposes the writes; the group must carry JWTAuth.
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	catalog := r.Group("/catalog")
	{
		catalog.POST("/colors", h.AddColor)
		catalog.POST("/rooms", h.AddRoom)
		catalog.POST("/categories", h.AddCategory)
		catalog.POST("/materials", h.AddMaterial)
		catalog.POST("/patterns", h.AddPattern)
	}
}

// RegisterWorkerRoutes exposes the destructive operations; the group must
// carry JWTAuth plus the worker role.
func (h *Handler) RegisterWorkerRoutes(r *gin.RouterGroup) {
	catalog := r.Group("/catalog")
	{
		catalog.DELETE("/colors/:id", h.RemoveColor)
		catalog.DELETE("/rooms/:id", h.RemoveRoom)
		catalog.DELETE("/categories/:id", h.RemoveCategory)
		catalog.DELETE("/materials/:id", h.RemoveMaterial)
		catalog.DELETE("/patterns/:id", h.RemovePattern)
	}
}

/* ---------- HELPERS ---------- */

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid id")
		return 0, false
	}
	return id, true
}

// bindMultipartJSON decodes the JSON "data" part of a multipart form and
// runs the service-level validation tags.
func bindMultipartJSON(c *gin.Context, out any) bool {
	data := c.PostForm("data")
	if data == "" {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Missing data part")
		return false
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON in data part", err.Error())
		return false
	}
	if fieldErrors := validator.Validate(out); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", fieldErrors)
		return false
	}
	return true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	case errors.Is(err, repository.ErrDuplicate):
		response.Error(c, http.StatusConflict, "ALREADY_EXISTS", "Already exists")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
