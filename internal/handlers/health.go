package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hka9s2v/task-calendar/internal/models"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{Status: "ok"})
}
