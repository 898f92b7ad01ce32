package handlers

import (
	"net/http"

	"aamer/services/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SignupHandler creates a user account, plus the provider profile for
// provider signups.
func (h *HandlerBundle) SignupHandler(c *gin.Context) {
	logger := getLogger(c)

	var in auth.SignupInput
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Error("Invalid signup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	user, err := h.AuthSvc.Signup(c.Request.Context(), in)
	if err != nil {
		respondMessageError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "✅ User created successfully", "user": user})
}

// LoginHandler verifies credentials and hands back a JWT.
func (h *HandlerBundle) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.AuthSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondMessageError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "✅ Login successful",
		"token":    result.Token,
		"userType": result.UserType,
		"userId":   result.UserID,
	})
}

func (h *HandlerBundle) GetUsersHandler(c *gin.Context) {
	logger := getLogger(c)

	users, err := h.AuthSvc.GetUsers(c.Request.Context())
	if err != nil {
		respondMessageError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
