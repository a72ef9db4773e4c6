package mapper

import (
	"time"

	"github.com/tomibudis/task-manager-webapp/internal/adapter/http/dto"
	"github.com/tomibudis/task-manager-webapp/internal/core/domain"
)

func ToUserItem(user domain.PublicUser) dto.UserItem {
	item := dto.UserItem{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}
	if user.Name != nil {
		value := *user.Name
		item.Name = &value
	}
	return item
}
