package rental

import (
	"errors"
	"net/http"
	"strconv"

	"bikerental/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	rentals := protected.Group("/rentals")
	{
		rentals.POST("/start", h.Start)
		rentals.POST("/return/:id", h.Return)
		rentals.GET("/my", h.GetMy)
		rentals.GET("/:id", h.GetByID)
	}
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/rentals/all", h.GetAll)
}

func (h *Handler) Start(c *gin.Context) {
	var req StartRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rental, err := h.service.Start(c.Request.Context(), c.GetInt64("user_id"), req.EquipmentID, c.GetString("token"))
	if err != nil {
		switch {
		case errors.Is(err, ErrEquipmentNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Equipment not found")
		case errors.Is(err, ErrEquipmentUnavailable):
			response.Error(c, http.StatusConflict, "EQUIPMENT_UNAVAILABLE", "Equipment is not available")
		case errors.Is(err, ErrInventoryUnavailable):
			response.Error(c, http.StatusBadGateway, "INVENTORY_UNAVAILABLE", "Inventory service error")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to start rental")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"rental": rental})
}

func (h *Handler) Return(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid rental ID")
		return
	}

	rental, err := h.service.Return(c.Request.Context(), id, c.GetInt64("user_id"), c.GetString("role"), c.GetString("token"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Rental not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the rental owner or an admin can return it")
		case errors.Is(err, ErrAlreadyCompleted):
			response.Error(c, http.StatusConflict, "INVALID_STATE", "Rental is not active")
		case errors.Is(err, ErrInventoryUnavailable):
			response.Error(c, http.StatusBadGateway, "INVENTORY_UNAVAILABLE", "Inventory service error")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to return rental")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rental": rental})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid rental ID")
		return
	}

	rental, err := h.service.Get(c.Request.Context(), id, c.GetInt64("user_id"), c.GetString("role"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Rental not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the rental owner or an admin can view it")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load rental")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rental": rental})
}

func (h *Handler) GetMy(c *gin.Context) {
	rentals, err := h.service.GetMyRentals(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list rentals")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rentals": rentals})
}

func (h *Handler) GetAll(c *gin.Context) {
	rentals, err := h.service.GetAllRentals(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list rentals")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rentals": rentals})
}
