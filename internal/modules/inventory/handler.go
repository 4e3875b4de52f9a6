package inventory

import (
	"errors"
	"net/http"
	"strconv"

	"bikerental/internal/pkg/response"
	"bikerental/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/equipment", h.List)
	protected.GET("/equipment/:id", h.GetByID)
	protected.POST("/equipment/update", h.Update)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.POST("/equipment/add", h.Create)
}

func (h *Handler) RegisterInternalRoutes(internal *gin.RouterGroup) {
	internal.POST("/internal/equipment/status", h.SetStatus)
}

func (h *Handler) List(c *gin.Context) {
	filters := repository.EquipmentFilters{
		Status: c.Query("status"),
		Type:   c.Query("type"),
	}

	items, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "status must be 'available' or 'rented'")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list equipment")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"equipment": items})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid equipment ID")
		return
	}

	e, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Equipment not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load equipment")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"equipment": e})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "status must be 'available' or 'rented'")
		case errors.Is(err, ErrInvalidRate):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "hourly_rate must be non-negative")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create equipment")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"equipment": e})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.Update(c.Request.Context(), req, c.GetString("role"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Equipment not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only admins may change fields other than status")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "status must be 'available' or 'rented'")
		case errors.Is(err, ErrInvalidRate):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "hourly_rate must be non-negative")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update equipment")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"equipment": e})
}

func (h *Handler) SetStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.SetStatus(c.Request.Context(), req.ID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Equipment not found")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "status must be 'available' or 'rented'")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update status")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"equipment": e})
}
