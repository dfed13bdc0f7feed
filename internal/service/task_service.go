package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hka9s2v/task-calendar/internal/models"
	"github.com/hka9s2v/task-calendar/internal/repository"
)

// TaskInput represents data required to create a task.
type TaskInput struct {
	Title         string
	RepeatType    models.RepeatType
	WeekDays      []int
	MonthDay      int
	BiweeklyStart *time.Time
	DueDate       *time.Time
}

// TaskUpdate carries a partial update; nil fields are left untouched.
type TaskUpdate struct {
	Title     *string
	Completed *bool
}

// TaskService wraps task-related business logic.
type TaskService struct {
	tasks *repository.TaskRepository
}

func NewTaskService(tasks *repository.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) CreateTask(ctx context.Context, userID uuid.UUID, input TaskInput) (*models.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidArgument)
	}
	if !input.RepeatType.IsValid() {
		return nil, fmt.Errorf("%w: unknown repeat type %q", ErrInvalidArgument, input.RepeatType)
	}

	task := models.Task{
		UserID:      userID,
		Title:       title,
		RepeatType:  input.RepeatType,
		DueDate:     input.DueDate,
		IsRecurring: input.RepeatType != models.RepeatNone,
	}

	switch input.RepeatType {
	case models.RepeatWeekly:
		for _, d := range input.WeekDays {
			if d < 0 || d > 6 {
				return nil, fmt.Errorf("%w: weekday index %d out of range", ErrInvalidArgument, d)
			}
		}
		task.WeekDays = models.WeekDays(input.WeekDays)
	case models.RepeatMonthly:
		if input.MonthDay < 1 || input.MonthDay > 31 {
			return nil, fmt.Errorf("%w: month day must be between 1 and 31", ErrInvalidArgument)
		}
		task.MonthDay = input.MonthDay
	case models.RepeatBiweekly:
		task.BiweeklyStart = input.BiweeklyStart
	}

	if err := s.tasks.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// ListTasks splits the user's tasks into today/upcoming buckets by the
// due-today evaluation at now.
func (s *TaskService) ListTasks(ctx context.Context, userID uuid.UUID, now time.Time) (*models.TaskList, error) {
	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	list := models.TaskList{
		Today:    make([]models.Task, 0, len(tasks)),
		Upcoming: make([]models.Task, 0),
	}
	for _, task := range tasks {
		if task.DueOn(now) {
			list.Today = append(list.Today, task)
		} else {
			list.Upcoming = append(list.Upcoming, task)
		}
	}
	return &list, nil
}

func (s *TaskService) GetTask(ctx context.Context, userID, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.tasks.FindByID(ctx, userID, taskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTask applies a title edit and/or a completion toggle.
//
// Marking complete records a completion event keyed by the local calendar
// day of now: a second completion on the same day refreshes the event's
// timestamp instead of adding a row. Recurring tasks drop straight back to
// Completed=false; their done-for-today state lives in LastCompleted.
// Marking incomplete is a plain field set and leaves history alone.
func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, update TaskUpdate, now time.Time) (*models.Task, error) {
	task, err := s.GetTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title is required", ErrInvalidArgument)
		}
		task.Title = title
	}

	if update.Completed != nil {
		if *update.Completed {
			event := models.NewCompletionEvent(task, now)
			if err := s.tasks.UpsertCompletion(ctx, &event); err != nil {
				return nil, err
			}
			task.LastCompleted = &now
			task.Completed = !task.IsRecurring
		} else {
			task.Completed = false
		}
	}

	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes the task and all of its completion events.
func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	task, err := s.GetTask(ctx, userID, taskID)
	if err != nil {
		return err
	}
	return s.tasks.DeleteWithCompletions(ctx, task)
}
