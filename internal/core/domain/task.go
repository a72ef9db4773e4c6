package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// Valid reports whether s is one of the three known statuses. The status set
// is unordered: any transition between valid statuses is allowed.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type Task struct {
	ID          string
	Title       string
	Description string
	Status      TaskStatus
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTask is the record handed to the task repository on insert. Fields are
// already trimmed and defaulted by the use-case layer.
type NewTask struct {
	Title       string
	Description string
	Status      TaskStatus
	UserID      string
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Status      *TaskStatus
	UserID      string
}

// UpdateTaskInput carries a partial update. A nil field means "leave
// unchanged"; a non-nil field replaces the stored value.
type UpdateTaskInput struct {
	ID          string
	UserID      string
	Title       *string
	Description *string
	Status      *TaskStatus
}

// TaskPatch is the repository-level view of a partial update, with the
// ownership fields already checked by the use case.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *TaskStatus
}

type ListTasksInput struct {
	UserID string
	Page   Pagination
	Status *TaskStatus
}
