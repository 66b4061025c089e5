package respond

import (
	"github.com/gin-gonic/gin"

	"interview-backend/internal/shared/telemetry"
)

// FailureBody is the error shape shared by every endpoint.
type FailureBody struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"errorMessage"`
}

// Failure logs and sends a {success:false, errorMessage} response.
func Failure(c *gin.Context, status int, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, FailureBody{
		Success:      false,
		ErrorMessage: message,
	})
}
