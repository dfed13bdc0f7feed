package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hka9s2v/task-calendar/internal/models"
)

// TaskRepository handles CRUD for tasks and their completion events.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByID scopes the lookup to the owner, so another user's task reads the
// same as a missing one.
func (r *TaskRepository) FindByID(ctx context.Context, userID, taskID uuid.UUID) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, taskID).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Save(ctx context.Context, task *models.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}

// DeleteWithCompletions removes a task and all of its completion events in
// one transaction so no orphan events survive.
func (r *TaskRepository) DeleteWithCompletions(ctx context.Context, task *models.Task) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", task.ID).
			Delete(&models.CompletionEvent{}).Error; err != nil {
			return err
		}
		return tx.Delete(task).Error
	})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// UpsertCompletion inserts the event, or refreshes completed_at when one
// already exists for the same (task, year, month, day). Last writer wins on
// the timestamp; no duplicate rows are possible.
func (r *TaskRepository) UpsertCompletion(ctx context.Context, event *models.CompletionEvent) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "task_id"}, {Name: "year"}, {Name: "month"}, {Name: "day"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"completed_at"}),
	}).Create(event).Error
	if err != nil {
		return fmt.Errorf("upsert completion: %w", err)
	}
	return nil
}

func (r *TaskRepository) CompletionsForMonth(ctx context.Context, taskID uuid.UUID, year, month int) ([]models.CompletionEvent, error) {
	var events []models.CompletionEvent
	if err := r.db.WithContext(ctx).
		Where("task_id = ? AND year = ? AND month = ?", taskID, year, month).
		Order("day ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// CompletionsForTask returns every event for a task, newest day last.
func (r *TaskRepository) CompletionsForTask(ctx context.Context, taskID uuid.UUID) ([]models.CompletionEvent, error) {
	var events []models.CompletionEvent
	if err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("year ASC, month ASC, day ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
