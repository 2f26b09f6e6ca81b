package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArowuTest/newslens-backend/internal/services"
	"github.com/ArowuTest/newslens-backend/pkg/smsgateway"
)

// WebhookHandler answers inbound SMS with TwiML
type WebhookHandler struct {
	onboardingService *services.OnboardingService
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(onboardingService *services.OnboardingService) *WebhookHandler {
	return &WebhookHandler{
		onboardingService: onboardingService,
	}
}

// SMS handles POST /sms-webhook
func (h *WebhookHandler) SMS(c *gin.Context) {
	from := c.PostForm("From")
	body := c.PostForm("Body")

	reply, err := h.onboardingService.HandleMessage(c.Request.Context(), from, body)
	if err != nil {
		logFailure(c, "Failed to handle inbound SMS", err, "from", from)
		reply = services.ReplyRegistrationError
	}

	xml, err := smsgateway.Reply(reply)
	if err != nil {
		logFailure(c, "Failed to render TwiML", err, "from", from)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "text/xml", []byte(xml))
}
