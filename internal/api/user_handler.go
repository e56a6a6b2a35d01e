package api

import (
	"bpump/fitness-backend/internal/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserHandler holds the profile-management service dependency.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// --- Request Structs ---

type EditUsernameRequest struct {
	Username    string `json:"username" binding:"required"`
	NewUsername string `json:"new_username" binding:"required"`
}

// EditPasswordRequest re-authenticates with the current password before the
// change is applied; a mismatch is a 401, not a 404.
type EditPasswordRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type EditWeightRequest struct {
	Username string `json:"username" binding:"required"`
	Weight   int    `json:"weight" binding:"required,min=1"`
}

type EditHeightRequest struct {
	Username string `json:"username" binding:"required"`
	Height   int    `json:"height" binding:"required,min=1"`
}

type EditAgeRequest struct {
	Username string `json:"username" binding:"required"`
	Age      int    `json:"age" binding:"required,min=1"`
}

type EditSexRequest struct {
	Username string `json:"username" binding:"required"`
	Sex      string `json:"sex" binding:"required"`
}

// --- Handler Methods ---

func (h *UserHandler) EditUsername(c *gin.Context) {
	var req EditUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.userService.ChangeUsername(c.Request.Context(), req.Username, req.NewUsername); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, statusOK("Username updated successfully"))
}

func (h *UserHandler) EditPassword(c *gin.Context) {
	var req EditPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), req.Username, req.Password, req.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, statusOK("Password updated successfully"))
}

func (h *UserHandler) EditWeight(c *gin.Context) {
	var req EditWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.userService.SetWeight(c.Request.Context(), req.Username, req.Weight); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, statusOK("Weight updated successfully"))
}

func (h *UserHandler) EditHeight(c *gin.Context) {
	var req EditHeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.userService.SetHeight(c.Request.Context(), req.Username, req.Height); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, statusOK("Height updated successfully"))
}

func (h *UserHandler) EditAge(c *gin.Context) {
	var req EditAgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.userService.SetAge(c.Request.Context(), req.Username, req.Age); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, statusOK("Age updated successfully"))
}

func (h *UserHandler) EditSex(c *gin.Context) {
	var req EditSexRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.userService.SetSex(c.Request.Context(), req.Username, req.Sex); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, statusOK("Sex updated successfully"))
}

// Delete removes the account identified by the username query parameter,
// cascading to every program it owns.
func (h *UserHandler) Delete(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'username' is required")
		return
	}

	if err := h.userService.DeleteAccount(c.Request.Context(), username); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, statusOK("Account deleted successfully"))
}
