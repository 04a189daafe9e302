package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hanntran/folio-forge/pkg/apperror"
	"github.com/hanntran/folio-forge/pkg/logger"
)

// ErrorMiddleware converts errors attached via c.Error into JSON responses.
// AppError detail is logged server-side only; the client always receives the
// generic message for its category.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := apperror.ToHTTPStatus(appErr)
			logFields := []zap.Field{
				zap.Int("status", status),
				zap.String("path", c.Request.URL.Path),
				zap.String("details", appErr.Details),
			}
			if status >= http.StatusInternalServerError {
				log.Error("Request failed", appErr, logFields...)
			} else {
				log.Warn("Request rejected", append(logFields, zap.Error(appErr))...)
			}
			c.AbortWithStatusJSON(status, appErr.ToJSON())
			return
		}

		log.Error("Unhandled request error", err, zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   apperror.ErrInternal.Error(),
			"message": "An internal server error occurred",
		})
	}
}
