package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tomibudis/task-manager-webapp/internal/core/domain"
	"github.com/tomibudis/task-manager-webapp/internal/core/ports"
)

type TaskRepository struct {
	mu sync.Mutex
	// Insertion order doubles as creation-time order, so listing walks the
	// slice backwards for newest-first.
	tasks []domain.Task
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{}
}

func (r *TaskRepository) Create(_ context.Context, input domain.NewTask) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	task := domain.Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		UserID:      input.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.tasks = append(r.tasks, task)
	return task, nil
}

func (r *TaskRepository) FindByID(_ context.Context, taskID string) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(taskID); i >= 0 {
		task := r.tasks[i]
		return &task, nil
	}
	return nil, nil
}

func (r *TaskRepository) ListByUser(_ context.Context, userID string, page domain.Pagination, status *domain.TaskStatus) (domain.TaskPage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	limit := page.ClampedLimit()
	started := page.Cursor == ""

	items := make([]domain.Task, 0, limit)
	var nextCursor *string
	for i := len(r.tasks) - 1; i >= 0; i-- {
		task := r.tasks[i]
		if !started {
			if task.ID == page.Cursor {
				started = true
			}
			continue
		}
		if task.UserID != userID {
			continue
		}
		if status != nil && task.Status != *status {
			continue
		}
		if len(items) == limit {
			cursor := items[limit-1].ID
			nextCursor = &cursor
			break
		}
		items = append(items, task)
	}

	return domain.TaskPage{Items: items, NextCursor: nextCursor}, nil
}

func (r *TaskRepository) Update(_ context.Context, taskID string, patch domain.TaskPatch) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(taskID)
	if i < 0 {
		return domain.Task{}, domain.NewNotFoundError("Task not found")
	}

	task := r.tasks[i]
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	task.UpdatedAt = time.Now()
	r.tasks[i] = task
	return task, nil
}

func (r *TaskRepository) UpdateStatus(_ context.Context, taskID string, status domain.TaskStatus) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(taskID)
	if i < 0 {
		return domain.Task{}, domain.NewNotFoundError("Task not found")
	}

	task := r.tasks[i]
	task.Status = status
	task.UpdatedAt = time.Now()
	r.tasks[i] = task
	return task, nil
}

func (r *TaskRepository) Delete(_ context.Context, taskID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(taskID)
	if i < 0 {
		return domain.NewNotFoundError("Task not found")
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	return nil
}

// Len reports the number of stored tasks, regardless of owner.
func (r *TaskRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}

func (r *TaskRepository) indexOf(taskID string) int {
	for i, task := range r.tasks {
		if task.ID == taskID {
			return i
		}
	}
	return -1
}
