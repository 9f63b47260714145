package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"digicards/internal/reference"
	"digicards/pkg/database"
)

// statusFor maps accessor errors onto the HTTP taxonomy.
func statusFor(err error) int {
	switch {
	case errors.Is(err, database.ErrNotFound), errors.Is(err, reference.ErrUnknownTable):
		return http.StatusNotFound
	case errors.Is(err, database.ErrConflict):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error response for err. detail is used for 4xx
// responses; server errors are logged and reported generically.
func (h *handler) fail(c *gin.Context, err error, detail string) {
	h.failWith(c, statusFor(err), err, detail)
}

func (h *handler) failWith(c *gin.Context, status int, err error, detail string) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"request_id", c.GetString(ctxRequestIDKey),
			"error", err,
		)
		detail = "Internal server error"
	}
	writeDetail(c, status, detail)
}

func writeDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}
