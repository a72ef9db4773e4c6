package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tomibudis/task-manager-webapp/internal/core/domain"
	"github.com/tomibudis/task-manager-webapp/internal/core/ports"
)

const (
	insertTaskQuery = `
INSERT INTO tasks (id, title, description, status, user_id)
VALUES (?, ?, ?, ?, ?);
`
	selectTaskByIDQuery = `
SELECT id, title, description, status, user_id, created_at, updated_at
FROM tasks
WHERE id = ?;
`
	updateTaskStatusQuery = `
UPDATE tasks SET status = ? WHERE id = ?;
`
	deleteTaskQuery = `
DELETE FROM tasks WHERE id = ?;
`
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Status      string    `db:"status"`
	UserID      string    `db:"user_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, input domain.NewTask) (domain.Task, error) {
	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx, insertTaskQuery, id, input.Title, input.Description, string(input.Status), input.UserID); err != nil {
		return domain.Task{}, err
	}

	created, err := r.FindByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	return *created, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, taskID string) (*domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, selectTaskByIDQuery, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	task := mapTaskRowToDomainTask(row)
	return &task, nil
}

// ListByUser pages through a user's tasks newest-first with a keyset on
// (created_at, id). The cursor is the last-seen task's identifier; an unknown
// cursor yields an empty page.
func (r *TaskRepository) ListByUser(ctx context.Context, userID string, page domain.Pagination, status *domain.TaskStatus) (domain.TaskPage, error) {
	limit := page.ClampedLimit()

	var builder strings.Builder
	builder.WriteString(`
SELECT id, title, description, status, user_id, created_at, updated_at
FROM tasks
WHERE user_id = ?`)
	args := []any{userID}

	if status != nil {
		builder.WriteString(" AND status = ?")
		args = append(args, string(*status))
	}

	if page.Cursor != "" {
		after, err := r.FindByID(ctx, page.Cursor)
		if err != nil {
			return domain.TaskPage{}, err
		}
		if after == nil {
			return domain.TaskPage{Items: []domain.Task{}}, nil
		}
		builder.WriteString(" AND (created_at < ? OR (created_at = ? AND id < ?))")
		args = append(args, after.CreatedAt, after.CreatedAt, after.ID)
	}

	builder.WriteString(" ORDER BY created_at DESC, id DESC LIMIT ?")
	// Fetch one extra row to know whether another page exists.
	args = append(args, limit+1)

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, builder.String(), args...); err != nil {
		return domain.TaskPage{}, err
	}

	items := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapTaskRowToDomainTask(row))
	}

	result := domain.TaskPage{Items: items}
	if len(items) > limit {
		result.Items = items[:limit]
		cursor := result.Items[limit-1].ID
		result.NextCursor = &cursor
	}
	return result, nil
}

func (r *TaskRepository) Update(ctx context.Context, taskID string, patch domain.TaskPatch) (domain.Task, error) {
	existing, err := r.FindByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if existing == nil {
		return domain.Task{}, domain.NewNotFoundError("Task not found")
	}

	assignments := make([]string, 0, 3)
	args := make([]any, 0, 4)
	if patch.Title != nil {
		assignments = append(assignments, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		assignments = append(assignments, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Status != nil {
		assignments = append(assignments, "status = ?")
		args = append(args, string(*patch.Status))
	}
	if len(assignments) == 0 {
		return *existing, nil
	}

	query := "UPDATE tasks SET " + strings.Join(assignments, ", ") + " WHERE id = ?"
	args = append(args, taskID)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Task{}, err
	}

	updated, err := r.FindByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	return *updated, nil
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, taskID string, status domain.TaskStatus) (domain.Task, error) {
	existing, err := r.FindByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if existing == nil {
		return domain.Task{}, domain.NewNotFoundError("Task not found")
	}

	if _, err := r.db.ExecContext(ctx, updateTaskStatusQuery, string(status), taskID); err != nil {
		return domain.Task{}, err
	}

	updated, err := r.FindByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	return *updated, nil
}

func (r *TaskRepository) Delete(ctx context.Context, taskID string) error {
	res, err := r.db.ExecContext(ctx, deleteTaskQuery, taskID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("Task not found")
	}
	return nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	return domain.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Status:      domain.TaskStatus(row.Status),
		UserID:      row.UserID,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
