package controllers

import (
	"errors"
	"net/http"
	"strings"

	"medequip_server/internal/db"
	"medequip_server/internal/models"
	"medequip_server/pkg/colors"
	"medequip_server/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthController handles authentication related HTTP requests
type AuthController struct{}

// NewAuthController creates a new auth controller
func NewAuthController() *AuthController {
	return &AuthController{}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Name     string          `json:"name" binding:"required,min=2,max=100"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role,omitempty"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Token   string                 `json:"token,omitempty"`
	User    map[string]interface{} `json:"user,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// Register creates a new user account and returns a token
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		colors.PrintError("Invalid registration request: %v", err)
		c.JSON(http.StatusBadRequest, AuthResponse{
			Success: false,
			Error:   "Invalid request format",
			Message: err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	if err := db.GetDB().Where("email = ?", email).First(&existing).Error; err == nil {
		colors.PrintWarning("Registration failed: email %s already in use", email)
		c.JSON(http.StatusConflict, AuthResponse{
			Success: false,
			Error:   "Conflict",
			Message: "A user with this email already exists",
		})
		return
	}

	role := req.Role
	if role == "" {
		role = models.UserRoleUser
	}
	if role != models.UserRoleAdmin && role != models.UserRoleUser {
		c.JSON(http.StatusBadRequest, AuthResponse{
			Success: false,
			Error:   "Validation Error",
			Message: "Invalid role",
		})
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    email,
		Password: req.Password,
		Role:     role,
	}

	if err := db.GetDB().Create(&user).Error; err != nil {
		colors.PrintError("Failed to create user %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Error:   "Internal server error",
			Message: "Please try again later",
		})
		return
	}

	token, err := utils.GenerateJWT(&user)
	if err != nil {
		colors.PrintError("Failed to generate token for user %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Error:   "Failed to generate authentication token",
			Message: "Please try again later",
		})
		return
	}

	colors.PrintSuccess("User %s registered successfully", email)
	c.JSON(http.StatusCreated, AuthResponse{
		Success: true,
		Message: "User registered successfully",
		Token:   token,
		User:    user.ToSafeUser(),
	})
}

// Login authenticates a user and returns a token
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		colors.PrintError("Invalid login request: %v", err)
		c.JSON(http.StatusBadRequest, AuthResponse{
			Success: false,
			Error:   "Invalid request format",
			Message: err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := db.GetDB().Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			colors.PrintWarning("Login failed: user not found for email %s", email)
			c.JSON(http.StatusUnauthorized, AuthResponse{
				Success: false,
				Error:   "Invalid credentials",
				Message: "Email or password is incorrect",
			})
			return
		}
		colors.PrintError("Database error during login: %v", err)
		c.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Error:   "Internal server error",
			Message: "Please try again later",
		})
		return
	}

	if !user.CheckPassword(req.Password) {
		colors.PrintWarning("Login failed: invalid password for email %s", email)
		c.JSON(http.StatusUnauthorized, AuthResponse{
			Success: false,
			Error:   "Invalid credentials",
			Message: "Email or password is incorrect",
		})
		return
	}

	token, err := utils.GenerateJWT(&user)
	if err != nil {
		colors.PrintError("Failed to generate token for user %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Error:   "Failed to generate authentication token",
			Message: "Please try again later",
		})
		return
	}

	colors.PrintSuccess("User %s logged in successfully", email)
	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    user.ToSafeUser(),
	})
}

// Me returns the currently authenticated user
func (ac *AuthController) Me(c *gin.Context) {
	userID := c.GetUint("user_id")

	var user models.User
	if err := db.GetDB().First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Success: false,
			Error:   "Not Found",
			Message: "User not found",
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "User retrieved successfully",
		Data:    user.ToSafeUser(),
	})
}

// Logout acknowledges the logout; tokens are stateless, the client discards it
func (ac *AuthController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Logout successful",
	})
}
