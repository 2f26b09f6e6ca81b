package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArowuTest/newslens-backend/internal/services"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

type createUserRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

// CreateUser handles POST /addUser and POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and phone number are required."})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.Name, req.PhoneNumber)
	if err != nil {
		switch services.KindOf(err) {
		case services.KindValidation:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name and phone number are required."})
		case services.KindConflict:
			c.JSON(http.StatusConflict, gin.H{"error": "User with this phone number already exists."})
		default:
			logFailure(c, "Failed to create user", err, "phoneNumber", req.PhoneNumber)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while creating the user."})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully.",
		"user":    user,
	})
}
