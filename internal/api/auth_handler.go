package api

import (
	"bpump/fitness-backend/internal/domain"
	"bpump/fitness-backend/internal/service"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

// CredentialsRequest is the payload of both /register and /login. There is
// no token exchange; every authenticated request re-submits credentials.
type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse excludes the password hash.
type UserResponse struct {
	Username   string            `json:"username"`
	Metabolism domain.Metabolism `json:"metabolism"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// --- Handler Methods ---

// Register creates the account plus its seeded starter programs.
func (h *AuthHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, seeded, err := h.authService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  true,
		"message": "Account created successfully",
		"user":    mapUserToResponse(user),
		"progs":   seeded,
	})
}

// Login verifies credentials and returns the account record.
func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"user":   mapUserToResponse(user),
	})
}

// mapUserToResponse converts a domain User to a UserResponse DTO,
// dropping the password hash.
func mapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		Username:   user.Username,
		Metabolism: user.Metabolism,
		CreatedAt:  user.CreatedAt,
	}
}
