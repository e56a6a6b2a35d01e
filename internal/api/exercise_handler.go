package api

import (
	"bpump/fitness-backend/internal/domain"
	"bpump/fitness-backend/internal/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise catalog service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- Request Structs ---

// ExercisePayload is the full catalog entry shape, used by the
// administrative add/edit endpoints.
type ExercisePayload struct {
	ID          string                   `json:"id" binding:"required"`
	Icon        string                   `json:"icon"`
	Title       string                   `json:"title" binding:"required"`
	Description string                   `json:"description"`
	Category    string                   `json:"category"`
	Difficulty  int                      `json:"difficulty"`
	Video       string                   `json:"video"`
	Muscles     []string                 `json:"muscles"`
	Security    []string                 `json:"security"`
	Needed      []string                 `json:"needed"`
	Calories    int                      `json:"calories"`
	Camera      map[string]interface{}   `json:"camera"`
	Projector   []map[string]interface{} `json:"projector"`
}

type RemoveExerciseRequest struct {
	ID string `json:"id" binding:"required"`
}

type VideoUploadRequest struct {
	ContentType string `json:"content_type" binding:"required"`
}

func toExercise(p ExercisePayload) domain.Exercise {
	return domain.Exercise{
		ID:          p.ID,
		Icon:        p.Icon,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Difficulty:  p.Difficulty,
		Video:       p.Video,
		Muscles:     p.Muscles,
		Security:    p.Security,
		Needed:      p.Needed,
		Calories:    p.Calories,
		Camera:      p.Camera,
		Projector:   p.Projector,
	}
}

// --- Handler Methods ---

// Get returns one catalog entry, or the whole catalog when the path id is
// "all".
func (h *ExerciseHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "all" {
		exercises, err := h.exerciseService.List(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, exercises)
		return
	}

	exercise, err := h.exerciseService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// Video resolves the exercise's video reference to a fetchable URL.
func (h *ExerciseHandler) Video(c *gin.Context) {
	url, err := h.exerciseService.VideoURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// VideoUpload returns a presigned PUT URL for the exercise's video object.
// Admin-only, like the rest of the catalog mutations.
func (h *ExerciseHandler) VideoUpload(c *gin.Context) {
	var req VideoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	url, err := h.exerciseService.VideoUploadURL(c.Request.Context(), c.Param("id"), req.ContentType)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *ExerciseHandler) Add(c *gin.Context) {
	var req ExercisePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	exercise, err := h.exerciseService.Add(c.Request.Context(), toExercise(req))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   true,
		"message":  "Exercise created successfully",
		"exercise": exercise,
	})
}

func (h *ExerciseHandler) Edit(c *gin.Context) {
	var req ExercisePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	exercise, err := h.exerciseService.Update(c.Request.Context(), toExercise(req))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   true,
		"message":  "Exercise updated successfully",
		"exercise": exercise,
	})
}

func (h *ExerciseHandler) Remove(c *gin.Context) {
	var req RemoveExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.exerciseService.Remove(c.Request.Context(), req.ID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, statusOK("Exercise removed successfully"))
}
