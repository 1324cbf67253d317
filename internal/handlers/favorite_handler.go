package handlers

import (
	"net/http"

	"immo_backend/internal/services"
	"immo_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	*BaseHandler
	favoriteService services.FavoriteService
}

func NewFavoriteHandler(base *BaseHandler, favoriteService services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		BaseHandler:     base,
		favoriteService: favoriteService,
	}
}

func (h *FavoriteHandler) RegisterRoutes(r *gin.RouterGroup) {
	favorites := r.Group("/favorites")
	{
		favorites.GET("", h.ListFavorites)
		favorites.GET("/check/:propertyId", h.CheckFavorite)
		favorites.POST("", h.AddFavorite)
		favorites.DELETE("/:propertyId", h.RemoveFavorite)
	}
}

// AddFavorite godoc
// @Summary Добавить объявление в избранное
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddFavoriteRequest true "ID объявления"
// @Success 201 {object} map[string]string
// @Failure 400 {object} apperrors.ErrorResponse "Уже в избранном"
// @Failure 403 {object} apperrors.ErrorResponse "Роль visitor"
// @Failure 404 {object} apperrors.ErrorResponse "Объявление не найдено"
// @Router /favorites [post]
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddFavoriteRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.favoriteService.AddFavorite(c.Request.Context(), userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Added to favorites"})
}

// RemoveFavorite godoc
// @Summary Убрать объявление из избранного
// @Tags favorites
// @Security BearerAuth
// @Param propertyId path int true "ID объявления"
// @Success 200 {object} map[string]string
// @Router /favorites/{propertyId} [delete]
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	propertyID, ok := h.paramID(c, "propertyId")
	if !ok {
		return
	}

	if err := h.favoriteService.RemoveFavorite(c.Request.Context(), userID, propertyID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
}

// ListFavorites godoc
// @Summary Избранное пользователя
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.FavoriteResponse
// @Router /favorites [get]
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	list, err := h.favoriteService.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// CheckFavorite godoc
// @Summary Проверить, в избранном ли объявление
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param propertyId path int true "ID объявления"
// @Success 200 {object} dto.FavoriteCheckResponse
// @Router /favorites/check/{propertyId} [get]
func (h *FavoriteHandler) CheckFavorite(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	propertyID, ok := h.paramID(c, "propertyId")
	if !ok {
		return
	}

	isFavorite, err := h.favoriteService.IsFavorite(c.Request.Context(), userID, propertyID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FavoriteCheckResponse{IsFavorite: isFavorite})
}
