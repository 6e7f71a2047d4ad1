// Package logging wires up structured, zerolog-backed logging for the
// server: a process-wide logger plus a Gin request-logging middleware that
// times each request and logs method/path/status/latency as fields.
package logging

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// New builds the process-wide logger. level is parsed with
// zerolog.ParseLevel; an unrecognised value falls back to info.
func New(levelName string) zerolog.Logger {
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Middleware returns a Gin middleware that logs one structured line per
// request: start a timer, call the next handler, then log method, path,
// status, and latency.
func Middleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if len(c.Errors) > 0 {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Str("remote_ip", c.ClientIP()).
			Int("status", status).
			Dur("latency", latency).
			Msg("request handled")
	}
}
