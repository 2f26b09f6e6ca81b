package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"

	"github.com/ArowuTest/newslens-backend/pkg/smsgateway"
)

// SignatureChecker validates inbound webhook signatures
type SignatureChecker interface {
	Validate(params map[string]string, signature string) bool
}

var _ SignatureChecker = (*smsgateway.SignatureValidator)(nil)

// TwilioSignatureMiddleware rejects webhooks whose signature does not match the form body
func TwilioSignatureMiddleware(checker SignatureChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := c.Request.ParseForm(); err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}

		params := make(map[string]string, len(c.Request.PostForm))
		for key, values := range c.Request.PostForm {
			if len(values) > 0 {
				params[key] = values[0]
			}
		}

		if !checker.Validate(params, c.GetHeader(smsgateway.SignatureHeader)) {
			slog.Warn("Webhook signature mismatch", "requestId", c.GetString(RequestIDKey))
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
