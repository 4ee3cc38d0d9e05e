package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// RespondError writes err as a JSON error body. Only AppError messages reach
// the client; anything else is reported as a generic server fault.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		JSONError(c, appErr.Status(), appErr.Message)
		return
	}
	JSONError(c, http.StatusInternalServerError, MsgInternal)
}

// AbortWithError is RespondError for middleware: later handlers are skipped.
func AbortWithError(c *gin.Context, err error) {
	RespondError(c, err)
	c.Abort()
}
