package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prepdeck/prepdeck-backend/internal/apierr"
)

// RespondOK writes payload with success=true folded in. Every endpoint
// shares this envelope so clients can branch on a single flag.
func RespondOK(c *gin.Context, status int, payload gin.H) {
	if payload == nil {
		payload = gin.H{}
	}
	payload["success"] = true
	c.JSON(status, payload)
}

// RespondError maps err onto the envelope, classifying unknown errors as
// store failures (HTTP 500).
func RespondError(c *gin.Context, err error) {
	apiErr := apierr.From(err)
	status := apiErr.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{
		"success": false,
		"error":   apiErr.Error(),
	})
}
