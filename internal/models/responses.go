package models

import (
	"time"

	"github.com/google/uuid"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type Token struct {
	Token string `json:"token"`
}

type HealthResponse struct {
	Status string `json:"status,omitempty"`
}

// TaskList splits a user's tasks into the two buckets the due-today
// evaluation produces.
type TaskList struct {
	Today    []Task `json:"today"`
	Upcoming []Task `json:"upcoming"`
}

// Calendar is the per-month completion matrix: every task the user owns,
// each carrying only the completions that fall inside the requested month.
type Calendar struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Tasks []CalendarTask `json:"tasks"`
}

type CalendarTask struct {
	ID          uuid.UUID            `json:"id"`
	Title       string               `json:"title"`
	IsRecurring bool                 `json:"is_recurring"`
	RepeatType  RepeatType           `json:"repeat_type,omitempty"`
	WeekDays    WeekDays             `json:"week_days,omitempty"`
	MonthDay    int                  `json:"month_day,omitempty"`
	Completions []CalendarCompletion `json:"completions"`
}

type CalendarCompletion struct {
	Day         int       `json:"day"`
	CompletedAt time.Time `json:"completed_at"`
}
