package service

import (
	"context"
	"strings"

	"github.com/tomibudis/task-manager-webapp/internal/core/domain"
	"github.com/tomibudis/task-manager-webapp/internal/core/ports"
)

type TaskService struct {
	tasks ports.TaskRepository
	users ports.UserRepository
}

func NewTaskService(tasks ports.TaskRepository, users ports.UserRepository) *TaskService {
	return &TaskService{tasks: tasks, users: users}
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	if err := s.requireUser(ctx, input.UserID); err != nil {
		return domain.Task{}, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.Task{}, domain.NewValidationError("Task title is required")
	}

	description := ""
	if input.Description != nil {
		description = strings.TrimSpace(*input.Description)
	}

	status := domain.TaskStatusTodo
	if input.Status != nil {
		status = *input.Status
	}
	if !status.Valid() {
		return domain.Task{}, domain.NewValidationError("Invalid task status")
	}

	return s.tasks.Create(ctx, domain.NewTask{
		Title:       title,
		Description: description,
		Status:      status,
		UserID:      input.UserID,
	})
}

func (s *TaskService) UpdateTask(ctx context.Context, input domain.UpdateTaskInput) (domain.Task, error) {
	if input.Status != nil && !input.Status.Valid() {
		return domain.Task{}, domain.NewValidationError("Invalid task status")
	}
	if err := s.requireOwnedTask(ctx, input.ID, input.UserID, "Cannot modify task you do not own"); err != nil {
		return domain.Task{}, err
	}

	patch := domain.TaskPatch{Status: input.Status}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		patch.Title = &title
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		patch.Description = &description
	}

	return s.tasks.Update(ctx, input.ID, patch)
}

func (s *TaskService) UpdateTaskStatus(ctx context.Context, taskID, userID string, status domain.TaskStatus) (domain.Task, error) {
	if !status.Valid() {
		return domain.Task{}, domain.NewValidationError("Invalid task status")
	}
	if err := s.requireOwnedTask(ctx, taskID, userID, "Cannot modify task you do not own"); err != nil {
		return domain.Task{}, err
	}
	return s.tasks.UpdateStatus(ctx, taskID, status)
}

func (s *TaskService) ListTasks(ctx context.Context, input domain.ListTasksInput) (domain.TaskPage, error) {
	if err := s.requireUser(ctx, input.UserID); err != nil {
		return domain.TaskPage{}, err
	}
	return s.tasks.ListByUser(ctx, input.UserID, input.Page, input.Status)
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID, userID string) error {
	if err := s.requireOwnedTask(ctx, taskID, userID, "Cannot delete task you do not own"); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, taskID)
}

func (s *TaskService) requireUser(ctx context.Context, userID string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.NewNotFoundError("User not found")
	}
	return nil
}

// requireOwnedTask resolves the user, then the task, then compares ownership,
// in that fixed order: a caller without a valid session cannot distinguish a
// nonexistent task from someone else's task.
func (s *TaskService) requireOwnedTask(ctx context.Context, taskID, userID, unauthorizedMsg string) error {
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return domain.NewNotFoundError("Task not found")
	}
	if task.UserID != userID {
		return domain.NewUnauthorizedError(unauthorizedMsg)
	}
	return nil
}

var _ ports.TaskService = (*TaskService)(nil)
