package handlers

import (
	"ClaimTrack/middlewares"
	"ClaimTrack/services"
	"ClaimTrack/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Login verifies credentials and sets paseto auth cookies.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middlewares.HttpError(c, "invalid request body", http.StatusBadRequest, err)
		return
	}
	user, access, refresh, err := h.service.Login(c, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			middlewares.HttpError(c, "Invalid username or password", http.StatusUnauthorized, nil)
			return
		}
		middlewares.HttpError(c, "login failed", http.StatusInternalServerError, err)
		return
	}
	utils.SetAuthCookies(c, access, refresh)
	c.JSON(http.StatusOK, user)
}

// Logout clears the auth cookies.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAuthCookies(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Register creates a user in the given role. Admin only.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middlewares.HttpError(c, "invalid request body", http.StatusBadRequest, err)
		return
	}
	if req.Role == "" {
		req.Role = "Viewer"
	}
	user, err := h.service.Register(c, req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		middlewares.HttpError(c, err.Error(), http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}
