package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArowuTest/newslens-backend/internal/services"
)

// InteractionHandler handles interaction storage and the analytics endpoints
type InteractionHandler struct {
	interactionService *services.InteractionService
}

// NewInteractionHandler creates a new InteractionHandler
func NewInteractionHandler(interactionService *services.InteractionService) *InteractionHandler {
	return &InteractionHandler{
		interactionService: interactionService,
	}
}

type addInteractionRequest struct {
	UserPhoneNumber string `json:"userPhoneNumber"`
	Prompt          string `json:"prompt"`
	Link            string `json:"link"`
	Result          string `json:"result"`
}

type phoneNumberRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

// AddInteraction handles POST /addInteraction
func (h *InteractionHandler) AddInteraction(c *gin.Context) {
	var req addInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User phone number, prompt, and result are required."})
		return
	}

	_, err := h.interactionService.AddInteraction(c.Request.Context(), services.AddInteractionInput{
		UserPhoneNumber: req.UserPhoneNumber,
		Prompt:          req.Prompt,
		Link:            req.Link,
		Result:          req.Result,
	})
	if err != nil {
		if services.KindOf(err) == services.KindValidation {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User phone number, prompt, and result are required."})
			return
		}
		logFailure(c, "Failed to save interaction", err, "phoneNumber", req.UserPhoneNumber)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Interaction saved successfully."})
}

// FindInteractions handles GET /findInteractions?phoneNumber=
func (h *InteractionHandler) FindInteractions(c *gin.Context) {
	phoneNumber := c.Query("phoneNumber")

	interactions, err := h.interactionService.FindByPhoneNumber(c.Request.Context(), phoneNumber)
	if err != nil {
		if services.KindOf(err) == services.KindValidation {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number is required"})
			return
		}
		logFailure(c, "Failed to find interactions", err, "phoneNumber", phoneNumber)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, interactions)
}

// UserSummary handles POST /userSummary
func (h *InteractionHandler) UserSummary(c *gin.Context) {
	var req phoneNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number is required."})
		return
	}

	summary, err := h.interactionService.Summary(c.Request.Context(), req.PhoneNumber)
	if err != nil {
		switch services.KindOf(err) {
		case services.KindValidation:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number is required."})
		case services.KindNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "No interactions found for this user."})
		default:
			logFailure(c, "Failed to generate summary", err, "phoneNumber", req.PhoneNumber)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while generating the summary."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Summary generated successfully.",
		"summary": summary,
	})
}

// NewsFeedDigest handles POST /newsFeedDigest
func (h *InteractionHandler) NewsFeedDigest(c *gin.Context) {
	var req phoneNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number is required"})
		return
	}

	topics, err := h.interactionService.Digest(c.Request.Context(), req.PhoneNumber)
	if err != nil {
		switch services.KindOf(err) {
		case services.KindValidation:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number is required"})
		case services.KindNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": "No interactions found for this user."})
		default:
			logFailure(c, "Failed to build news feed digest", err, "phoneNumber", req.PhoneNumber)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendedTopics": topics})
}
