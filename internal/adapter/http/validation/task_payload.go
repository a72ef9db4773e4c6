package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/tomibudis/task-manager-webapp/internal/adapter/http/dto"
	"github.com/tomibudis/task-manager-webapp/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildUpdateTaskInput turns a partial-update request into the use-case
// input. The raw message map distinguishes "field absent" from "field null":
// absent fields stay unchanged, explicit nulls are rejected since no task
// field is nullable.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage, taskID, userID string) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var title *string
	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	if hasJSONField(raw, "description") && (isJSONNull(raw["description"]) || req.Description == nil) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var status *domain.TaskStatus
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		status = &value
	}

	return domain.UpdateTaskInput{
		ID:          taskID,
		UserID:      userID,
		Title:       title,
		Description: req.Description,
		Status:      status,
	}, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "status")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
