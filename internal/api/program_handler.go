package api

import (
	"bpump/fitness-backend/internal/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ProgramHandler holds the program service dependency.
type ProgramHandler struct {
	programService service.ProgramService
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(programService service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// --- Request Structs ---

// ProgramPayload carries the mutable program fields. The id is derived
// from the title on creation and passed explicitly on edit/remove.
type ProgramPayload struct {
	Icon        string   `json:"icon"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Difficulty  int      `json:"difficulty"`
	Hint        []string `json:"hint"`
	Exercises   []string `json:"exercises"`
	Rest        []int    `json:"rest"`
}

type AddProgramRequest struct {
	Username string         `json:"username" binding:"required"`
	Program  ProgramPayload `json:"program" binding:"required"`
}

type EditProgramRequest struct {
	Username string         `json:"username" binding:"required"`
	ID       string         `json:"id" binding:"required"`
	Program  ProgramPayload `json:"program" binding:"required"`
}

type RemoveProgramRequest struct {
	Username string `json:"username" binding:"required"`
	ID       string `json:"id" binding:"required"`
}

func toInput(p ProgramPayload) service.ProgramInput {
	return service.ProgramInput{
		Icon:        p.Icon,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Difficulty:  p.Difficulty,
		Hint:        p.Hint,
		Exercises:   p.Exercises,
		Rest:        p.Rest,
	}
}

// --- Handler Methods ---

// Get returns one program of the acting user, or the full set (seeded
// starters included) when the path id is "all".
func (h *ProgramHandler) Get(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'username' is required")
		return
	}

	id := c.Param("id")
	if id == "all" {
		programs, err := h.programService.List(c.Request.Context(), username)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, programs)
		return
	}

	program, err := h.programService.Get(c.Request.Context(), username, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, program)
}

func (h *ProgramHandler) Add(c *gin.Context) {
	var req AddProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	program, err := h.programService.Add(c.Request.Context(), req.Username, toInput(req.Program))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  true,
		"message": "Program created successfully",
		"program": program,
	})
}

func (h *ProgramHandler) Edit(c *gin.Context) {
	var req EditProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	program, err := h.programService.Update(c.Request.Context(), req.Username, req.ID, toInput(req.Program))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Program updated successfully",
		"program": program,
	})
}

func (h *ProgramHandler) Remove(c *gin.Context) {
	var req RemoveProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.programService.Remove(c.Request.Context(), req.Username, req.ID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, statusOK("Program removed successfully"))
}
