package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hka9s2v/task-calendar/internal/middleware"
	"github.com/hka9s2v/task-calendar/internal/models"
	"github.com/hka9s2v/task-calendar/internal/repository"
	"github.com/hka9s2v/task-calendar/internal/service"
)

type Handler struct {
	users    *repository.UserRepository
	tasks    *service.TaskService
	calendar *service.CalendarService
	jwtKey   string
}

func New(users *repository.UserRepository, tasks *service.TaskService, calendar *service.CalendarService, jwtKey string) *Handler {
	return &Handler{users: users, tasks: tasks, calendar: calendar, jwtKey: jwtKey}
}

func parseId(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// currentUser resolves the authenticated user id or writes a 401.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
	}
	return userID, ok
}

// fail maps service errors onto the response taxonomy: not-found and
// not-owned are both 404, validation failures 400, anything else 500.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
	case errors.Is(err, service.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
	}
}
