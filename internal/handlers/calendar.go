package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hka9s2v/task-calendar/internal/models"
)

// GetCalendar serves the per-month completion matrix. Year and month
// default to the server's current local date when omitted.
func (h *Handler) GetCalendar(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid year or month parameter"})
			return
		}
		year = parsed
	}
	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid year or month parameter"})
			return
		}
		month = parsed
	}

	calendar, err := h.calendar.Calendar(c.Request.Context(), userID, year, month)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, calendar)
}
