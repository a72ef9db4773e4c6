package mapper

import (
	"time"

	"github.com/tomibudis/task-manager-webapp/internal/adapter/http/dto"
	"github.com/tomibudis/task-manager-webapp/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}
}

func ToTaskPage(page domain.TaskPage) dto.TaskPage {
	return dto.TaskPage{
		Items:      ToTaskItems(page.Items),
		NextCursor: page.NextCursor,
	}
}
