package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hka9s2v/task-calendar/internal/models"
	"github.com/hka9s2v/task-calendar/internal/service"
)

type createTaskRequest struct {
	Title         string     `json:"title"`
	RepeatType    string     `json:"repeat_type"`
	WeekDays      []int      `json:"week_days"`
	MonthDay      int        `json:"month_day"`
	BiweeklyStart *time.Time `json:"biweekly_start"`
	DueDate       *time.Time `json:"due_date"`
}

type updateTaskRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

// GetTasks returns the user's tasks split into today/upcoming buckets.
func (h *Handler) GetTasks(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	list, err := h.tasks.ListTasks(c.Request.Context(), userID, time.Now())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) CreateTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	request := &createTaskRequest{}
	err := c.ShouldBindBodyWithJSON(request)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	task, err := h.tasks.CreateTask(c.Request.Context(), userID, service.TaskInput{
		Title:         request.Title,
		RepeatType:    models.RepeatType(request.RepeatType),
		WeekDays:      request.WeekDays,
		MonthDay:      request.MonthDay,
		BiweeklyStart: request.BiweeklyStart,
		DueDate:       request.DueDate,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	taskId, err := parseId(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid id"})
		return
	}

	task, err := h.tasks.GetTask(c.Request.Context(), userID, taskId)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	taskId, err := parseId(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid id"})
		return
	}

	request := &updateTaskRequest{}
	err = c.ShouldBindBodyWithJSON(request)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	task, err := h.tasks.UpdateTask(c.Request.Context(), userID, taskId, service.TaskUpdate{
		Title:     request.Title,
		Completed: request.Completed,
	}, time.Now())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	taskId, err := parseId(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid id"})
		return
	}

	if err := h.tasks.DeleteTask(c.Request.Context(), userID, taskId); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "task deleted"})
}
