package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hka9s2v/task-calendar/internal/models"
	"github.com/hka9s2v/task-calendar/internal/repository"
)

// CalendarService builds the per-month completion matrix.
type CalendarService struct {
	tasks *repository.TaskRepository
}

func NewCalendarService(tasks *repository.TaskRepository) *CalendarService {
	return &CalendarService{tasks: tasks}
}

// Calendar returns every task the user owns, each restricted to the
// completion events of the requested month, days ascending. Any year is
// accepted; month must be 1..12.
func (s *CalendarService) Calendar(ctx context.Context, userID uuid.UUID, year, month int) (*models.Calendar, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidArgument)
	}

	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	calendar := models.Calendar{
		Year:  year,
		Month: month,
		Tasks: make([]models.CalendarTask, 0, len(tasks)),
	}

	for _, task := range tasks {
		events, err := s.tasks.CompletionsForMonth(ctx, task.ID, year, month)
		if err != nil {
			return nil, err
		}

		completions := make([]models.CalendarCompletion, 0, len(events))
		for _, event := range events {
			completions = append(completions, models.CalendarCompletion{
				Day:         event.Day,
				CompletedAt: event.CompletedAt,
			})
		}

		calendar.Tasks = append(calendar.Tasks, models.CalendarTask{
			ID:          task.ID,
			Title:       task.Title,
			IsRecurring: task.IsRecurring,
			RepeatType:  task.RepeatType,
			WeekDays:    task.WeekDays,
			MonthDay:    task.MonthDay,
			Completions: completions,
		})
	}

	return &calendar, nil
}
