package ports

import (
	"context"

	"github.com/tomibudis/task-manager-webapp/internal/core/domain"
)

// TaskRepository is the persistence capability for tasks. It does not enforce
// ownership; that is the use case's responsibility. ListByUser orders by
// creation time descending and clamps the page limit.
type TaskRepository interface {
	Create(ctx context.Context, input domain.NewTask) (domain.Task, error)
	FindByID(ctx context.Context, taskID string) (*domain.Task, error)
	ListByUser(ctx context.Context, userID string, page domain.Pagination, status *domain.TaskStatus) (domain.TaskPage, error)
	Update(ctx context.Context, taskID string, patch domain.TaskPatch) (domain.Task, error)
	UpdateStatus(ctx context.Context, taskID string, status domain.TaskStatus) (domain.Task, error)
	Delete(ctx context.Context, taskID string) error
}

type TaskService interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, input domain.UpdateTaskInput) (domain.Task, error)
	UpdateTaskStatus(ctx context.Context, taskID, userID string, status domain.TaskStatus) (domain.Task, error)
	ListTasks(ctx context.Context, input domain.ListTasksInput) (domain.TaskPage, error)
	DeleteTask(ctx context.Context, taskID, userID string) error
}
