package middleware

import (
	"time"

	"immo_backend/internal/logger"
	"immo_backend/internal/ratelimit"
	"immo_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware ограничивает частоту запросов на пользователя.
// Ставится после AuthMiddleware.
func RateLimitMiddleware(limiter *ratelimit.UserLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		if !limiter.Allow(userID, time.Now()) {
			logger.CtxWarn(c.Request.Context(), "Rate limit exceeded", "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.NewTooManyRequestsError("Too many requests, slow down"))
			return
		}
		c.Next()
	}
}
