package handlers

import (
	"net/http"
	"strings"

	"pharmacy-api/config"
	"pharmacy-api/middleware"
	"pharmacy-api/models"
	"pharmacy-api/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Signup creates a user account with the user role
func Signup(c *gin.Context) {
	var req models.SignupForm
	if !bindJSON(c, &req) {
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validation.Struct(req); err != nil {
		invalid(c, err)
		return
	}

	var count int64
	if err := config.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		serverError(c, "Server error during signup", err)
		return
	}
	if count > 0 {
		fail(c, http.StatusConflict, "Email already registered.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		serverError(c, "Failed to hash password", err)
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if isDuplicate(err) {
			fail(c, http.StatusConflict, "Email already registered.")
			return
		}
		serverError(c, "Server error during signup", err)
		return
	}

	zap.S().Infof("user %d signed up", user.ID)
	c.JSON(http.StatusCreated, models.AuthResponse{
		Success: true,
		Message: "Signup successful",
		UserID:  user.ID,
	})
}

// Login authenticates a user and returns a JWT
func Login(c *gin.Context) {
	var req models.LoginForm
	if !bindJSON(c, &req) {
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validation.Struct(req); err != nil {
		invalid(c, err)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if isNotFound(err) {
			fail(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		serverError(c, "Server error during login", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		serverError(c, "Failed to generate token", err)
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Success: true,
		Message: "Login successful",
		UserID:  user.ID,
		Token:   token,
		Role:    user.Role,
	})
}

// Me returns the authenticated user's profile
func Me(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, middleware.GetUserID(c)).Error; err != nil {
		if isNotFound(err) {
			fail(c, http.StatusNotFound, "User not found")
			return
		}
		serverError(c, "Failed to load user", err)
		return
	}
	c.JSON(http.StatusOK, models.Envelope[models.User]{Success: true, Data: user})
}
