package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Header names used by the middleware below.
const (
	HeaderRequestID = "X-Request-ID"
	HeaderAdminKey  = "X-Admin-Key"
)

// ContextRequestIDKey is the gin context key holding the request id.
const ContextRequestIDKey = "requestID"

// Helper to return JSON error response and abort request. Failure bodies
// always carry a single "detail" message.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"detail": message})
}

// RequestIDMiddleware tags every request with a unique id, echoed in the
// response headers so client reports can be matched against server logs.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, requestID)
		c.Writer.Header().Set(HeaderRequestID, requestID)
		c.Next()
	}
}

// CORSMiddleware allows the mobile/web clients to call the API from any
// origin. Credentials are part of each request body, not cookies, so the
// permissive policy carries no session to leak.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+HeaderAdminKey)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// AdminKeyMiddleware gates catalog mutation behind a shared administrative
// key. Per-user identity deliberately grants no catalog rights; exercises
// have no owner. An empty configured key disables the endpoints.
func AdminKeyMiddleware(configuredKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if configuredKey == "" {
			abortWithError(c, http.StatusForbidden, "Administrative API is disabled")
			return
		}
		provided := c.GetHeader(HeaderAdminKey)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(configuredKey)) != 1 {
			abortWithError(c, http.StatusUnauthorized, "Invalid or missing admin key")
			return
		}
		c.Next()
	}
}
