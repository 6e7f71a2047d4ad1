// Package httperr wraps request-boundary failures with stack context and
// renders them as the flat {"error": "..."} shape the HTTP layer returns to
// clients.
package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Wrap attaches message as stack context to err, the same way
// errors.Wrap is used around fallible calendar-API operations elsewhere in
// the corpus.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Respond logs err (with its wrapped stack trace, if any) at warn level and
// writes a flat JSON error body with the given status. Callers pass the
// already-wrapped error so the log line carries cause context the client
// response deliberately omits.
func Respond(c *gin.Context, log *zerolog.Logger, status int, err error) {
	log.Warn().
		Str("path", c.Request.URL.Path).
		Int("status", status).
		Err(err).
		Msg("request failed")

	c.JSON(status, gin.H{"error": rootMessage(err)})
}

// BadRequest is a convenience wrapper for the common 400 case.
func BadRequest(c *gin.Context, log *zerolog.Logger, err error) {
	Respond(c, log, http.StatusBadRequest, err)
}

// rootMessage returns the innermost error string, so a chain of internal
// Wrap calls doesn't turn into a verbose, implementation-revealing message
// on the wire.
func rootMessage(err error) string {
	type causer interface {
		Cause() error
	}
	for {
		c, ok := err.(causer)
		if !ok {
			return err.Error()
		}
		cause := c.Cause()
		if cause == nil {
			return err.Error()
		}
		err = cause
	}
}
