package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hka9s2v/task-calendar/internal/models"
)

func TestCalendarFiltersByMonth(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	taskSvc := NewTaskService(repo)
	calSvc := NewCalendarService(repo)
	userID := uuid.New()

	task, err := taskSvc.CreateTask(ctx, userID, TaskInput{Title: "Stretch", RepeatType: models.RepeatDaily})
	if err != nil {
		t.Fatalf("create task failed: %v", err)
	}

	completed := true
	stamps := []time.Time{
		time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC), // month before
		time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC), // month after
	}
	for _, stamp := range stamps {
		if _, err := taskSvc.UpdateTask(ctx, userID, task.ID, TaskUpdate{Completed: &completed}, stamp); err != nil {
			t.Fatalf("complete at %v failed: %v", stamp, err)
		}
	}

	calendar, err := calSvc.Calendar(ctx, userID, 2026, 3)
	if err != nil {
		t.Fatalf("calendar failed: %v", err)
	}

	if calendar.Year != 2026 || calendar.Month != 3 {
		t.Fatalf("calendar did not echo the requested month: %d-%d", calendar.Year, calendar.Month)
	}
	if len(calendar.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(calendar.Tasks))
	}

	completions := calendar.Tasks[0].Completions
	if len(completions) != 2 {
		t.Fatalf("expected only March events, got %d", len(completions))
	}
	if completions[0].Day != 5 || completions[1].Day != 12 {
		t.Fatalf("expected days ascending [5 12], got [%d %d]", completions[0].Day, completions[1].Day)
	}
}

func TestCalendarRejectsInvalidMonth(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	calSvc := NewCalendarService(repo)

	for _, month := range []int{0, 13, -1} {
		if _, err := calSvc.Calendar(ctx, uuid.New(), 2026, month); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument for month %d, got %v", month, err)
		}
	}
}

func TestCalendarIncludesTasksWithoutCompletions(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	taskSvc := NewTaskService(repo)
	calSvc := NewCalendarService(repo)
	userID := uuid.New()

	if _, err := taskSvc.CreateTask(ctx, userID, TaskInput{Title: "Never done"}); err != nil {
		t.Fatalf("create task failed: %v", err)
	}

	calendar, err := calSvc.Calendar(ctx, userID, 2026, 3)
	if err != nil {
		t.Fatalf("calendar failed: %v", err)
	}
	if len(calendar.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(calendar.Tasks))
	}
	if calendar.Tasks[0].Completions == nil || len(calendar.Tasks[0].Completions) != 0 {
		t.Fatalf("expected empty completions slice, got %v", calendar.Tasks[0].Completions)
	}
}

func TestCalendarScopedToUser(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	taskSvc := NewTaskService(repo)
	calSvc := NewCalendarService(repo)
	alice := uuid.New()
	bob := uuid.New()

	if _, err := taskSvc.CreateTask(ctx, alice, TaskInput{Title: "Alice's task"}); err != nil {
		t.Fatalf("create task failed: %v", err)
	}

	calendar, err := calSvc.Calendar(ctx, bob, 2026, 3)
	if err != nil {
		t.Fatalf("calendar failed: %v", err)
	}
	if len(calendar.Tasks) != 0 {
		t.Fatalf("expected no tasks for another user, got %d", len(calendar.Tasks))
	}
}
