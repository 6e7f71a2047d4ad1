// Package handlers implements the HTTP handlers fronting the optimisation
// engine: request decoding and validation, a call into engine.Optimize, and
// response encoding. It owns no business logic of its own.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jjc6676/holiday-optimizer/internal/engine"
	"github.com/jjc6676/holiday-optimizer/internal/httperr"
)

// Handler holds the dependencies shared by the engine-facing endpoints. The
// engine itself is a stateless pure function, so Handler carries nothing but
// a logger.
type Handler struct {
	log zerolog.Logger
}

// NewHandler builds a Handler with the given logger.
func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{log: log}
}

// Optimize handles POST /api/v1/optimize: decode, validate, call
// engine.Optimize, encode.
func (h *Handler) Optimize(c *gin.Context) {
	var req OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, &h.log, httperr.Wrap(err, "decoding optimize request"))
		return
	}

	params, err := req.toParams(time.Now())
	if err != nil {
		httperr.BadRequest(c, &h.log, httperr.Wrap(err, "converting optimize request"))
		return
	}

	result := engine.Optimize(params)
	c.JSON(http.StatusOK, toResponse(result))
}

// Health handles GET /api/v1/health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// strategyDescription pairs a style identifier with its human-readable
// description for the discovery endpoint.
type strategyDescription struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var strategyDescriptions = []strategyDescription{
	{ID: "balanced", Name: "Balanced", Description: "A mix of long weekends, mini breaks, week-long breaks, and extended vacations."},
	{ID: "longWeekends", Name: "Long Weekends", Description: "Favours short 3-4 day breaks spread across the year."},
	{ID: "miniBreaks", Name: "Mini Breaks", Description: "Favours 5-6 day breaks."},
	{ID: "weekLongBreaks", Name: "Week-Long Breaks", Description: "Favours 7-9 day breaks."},
	{ID: "extendedVacations", Name: "Extended Vacations", Description: "Favours long 10-15 day breaks."},
}

// Strategies handles GET /api/v1/strategies.
func (h *Handler) Strategies(c *gin.Context) {
	c.JSON(http.StatusOK, strategyDescriptions)
}
