package handlers

import (
	"net/http"

	"immo_backend/internal/services"
	"immo_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	*BaseHandler
	propertyService services.PropertyService
}

func NewPropertyHandler(base *BaseHandler, propertyService services.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		BaseHandler:     base,
		propertyService: propertyService,
	}
}

func (h *PropertyHandler) RegisterRoutes(r *gin.RouterGroup) {
	properties := r.Group("/properties")
	{
		properties.POST("", h.CreateProperty)
		properties.GET("/:id", h.GetProperty)
		properties.DELETE("/:id", h.DeleteProperty)
		properties.POST("/:id/contact", h.ContactOwner)
	}
}

// CreateProperty godoc
// @Summary Создать объявление
// @Description Только для роли seller. Владельцы объявлений в том же городе получают уведомление
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePropertyRequest true "Данные объявления"
// @Success 201 {object} dto.PropertyResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePropertyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	property, err := h.propertyService.CreateProperty(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, property)
}

// GetProperty godoc
// @Summary Получить объявление
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID объявления"
// @Success 200 {object} dto.PropertyResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	propertyID, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	property, err := h.propertyService.GetProperty(c.Request.Context(), propertyID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

// DeleteProperty godoc
// @Summary Удалить объявление
// @Tags properties
// @Security BearerAuth
// @Param id path int true "ID объявления"
// @Success 200 {object} map[string]string
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	propertyID, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	if err := h.propertyService.DeleteProperty(c.Request.Context(), userID, propertyID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property deleted"})
}

// ContactOwner godoc
// @Summary Связаться с владельцем
// @Description Владелец получает уведомление об интересе к объявлению
// @Tags properties
// @Security BearerAuth
// @Param id path int true "ID объявления"
// @Success 200 {object} map[string]string
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /properties/{id}/contact [post]
func (h *PropertyHandler) ContactOwner(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	propertyID, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	if err := h.propertyService.ContactOwner(c.Request.Context(), userID, propertyID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Owner notified"})
}
