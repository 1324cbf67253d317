package handlers

import (
	"net/http"

	"immo_backend/internal/services"
	"immo_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	*BaseHandler
	messageService services.MessageService
	sendLimit      gin.HandlerFunc
}

// sendLimit - middleware ограничения частоты отправки, может быть nil
func NewMessageHandler(base *BaseHandler, messageService services.MessageService, sendLimit gin.HandlerFunc) *MessageHandler {
	return &MessageHandler{
		BaseHandler:    base,
		messageService: messageService,
		sendLimit:      sendLimit,
	}
}

// RegisterRoutes ожидает группу, уже защищенную AuthMiddleware
func (h *MessageHandler) RegisterRoutes(r *gin.RouterGroup) {
	messages := r.Group("/messages")
	{
		messages.GET("/conversations", h.ListConversations)
		messages.GET("/:otherUserId", h.GetThread)
		if h.sendLimit != nil {
			messages.POST("", h.sendLimit, h.SendMessage)
		} else {
			messages.POST("", h.SendMessage)
		}
		messages.DELETE("/:id", h.DeleteMessage)
	}
}

// ListConversations godoc
// @Summary Список диалогов
// @Description Последнее сообщение с каждым собеседником, новые первыми
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ConversationResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /messages/conversations [get]
func (h *MessageHandler) ListConversations(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	conversations, err := h.messageService.ListConversations(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, conversations)
}

// GetThread godoc
// @Summary Переписка с пользователем
// @Description Сообщения по возрастанию времени; входящие помечаются прочитанными
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param otherUserId path int true "ID собеседника"
// @Success 200 {array} dto.MessageResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /messages/{otherUserId} [get]
func (h *MessageHandler) GetThread(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	otherUserID, ok := h.paramID(c, "otherUserId")
	if !ok {
		return
	}

	thread, err := h.messageService.GetThread(c.Request.Context(), userID, otherUserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, thread)
}

// SendMessage godoc
// @Summary Отправить сообщение
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendMessageRequest true "Получатель и текст"
// @Success 201 {object} dto.SendMessageResponse
// @Failure 400 {object} apperrors.ErrorResponse "Пустые поля или сообщение самому себе"
// @Failure 403 {object} apperrors.ErrorResponse "Роль visitor"
// @Failure 404 {object} apperrors.ErrorResponse "Получатель не найден"
// @Failure 429 {object} apperrors.ErrorResponse
// @Router /messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.messageService.SendMessage(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// DeleteMessage godoc
// @Summary Удалить сообщение
// @Description Удалить может только отправитель
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID сообщения"
// @Success 200 {object} map[string]string
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /messages/{id} [delete]
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	messageID, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	if err := h.messageService.DeleteMessage(c.Request.Context(), userID, messageID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
