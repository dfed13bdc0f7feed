package models

import (
	"time"

	"github.com/google/uuid"
)

// CompletionEvent records that a task was marked done on a specific calendar
// day. Year/Month/Day are denormalized from CompletedAt in server-local time;
// the composite unique index guarantees at most one event per task per day.
type CompletionEvent struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id,omitempty"`
	TaskID      uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_completion_task_day" json:"task_id,omitempty"`
	UserID      uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
	Year        int       `gorm:"uniqueIndex:idx_completion_task_day" json:"year"`
	Month       int       `gorm:"uniqueIndex:idx_completion_task_day" json:"month"`
	Day         int       `gorm:"uniqueIndex:idx_completion_task_day" json:"day"`
	CreatedAt   time.Time `json:"-"`
}

// NewCompletionEvent builds an event for the task's owner keyed by the local
// calendar day of now.
func NewCompletionEvent(task *Task, now time.Time) CompletionEvent {
	return CompletionEvent{
		ID:          uuid.New(),
		TaskID:      task.ID,
		UserID:      task.UserID,
		CompletedAt: now,
		Year:        now.Year(),
		Month:       int(now.Month()),
		Day:         now.Day(),
	}
}
