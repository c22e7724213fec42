package handlers

import (
	"errors"
	"net/http"

	"invoicely/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var userService user.UserService

// SetUserService injects the user service used by the auth handlers.
func SetUserService(svc user.UserService) {
	userService = svc
}

// RegisterUserHandler handles POST /api/auth/register.
func RegisterUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := userService.RegisterUser(req.Name, req.Email, req.Password)
	if err != nil {
		var dupErr user.DuplicateEmailError
		if errors.As(err, &dupErr) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("User registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler handles POST /api/auth/login.
func AuthenticateUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := userService.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		var credErr user.InvalidCredentialsError
		if errors.As(err, &credErr) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Login failed", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetCurrentUserHandler handles GET /api/auth/me.
func GetCurrentUserHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	usr, err := userService.GetUserByID(userID)
	if err != nil {
		getLogger(c).Error("User not found", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// LogoutHandler handles POST /api/auth/logout by revoking the current token.
func LogoutHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	if err := userService.RevokeAuthToken(userID); err != nil {
		getLogger(c).Error("Logout failed", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
