package api

import (
	"bpump/fitness-backend/internal/service"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondServiceError translates service-layer sentinel errors into the
// response contract: 400 for bad input and uniqueness conflicts, 401 for
// credential mismatches, 404 for anything absent (or not owned — the two
// are indistinguishable on purpose), 500 for everything else.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUserAlreadyExists),
		errors.Is(err, service.ErrProgramAlreadyExists),
		errors.Is(err, service.ErrExerciseAlreadyExists):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAuthenticationFailed):
		abortWithError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrProgramNotFound),
		errors.Is(err, service.ErrExerciseNotFound),
		errors.Is(err, service.ErrExerciseHasNoVideo):
		abortWithError(c, http.StatusNotFound, err.Error())
	default:
		// Never leak raw store internals to the client.
		log.Printf("ERROR: unexpected error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

// statusOK is the body shape of every successful mutation.
func statusOK(message string) gin.H {
	return gin.H{"status": true, "message": message}
}
