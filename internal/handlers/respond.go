package handlers

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"

	"github.com/ArowuTest/newslens-backend/internal/middleware"
)

// logFailure records an internal failure with the request id; the client only sees a generic body
func logFailure(c *gin.Context, msg string, err error, attrs ...any) {
	attrs = append(attrs, "error", err, "requestId", c.GetString(middleware.RequestIDKey))
	slog.Error(msg, attrs...)
}
