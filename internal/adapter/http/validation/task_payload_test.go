package validation_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tomibudis/task-manager-webapp/internal/adapter/http/dto"
	"github.com/tomibudis/task-manager-webapp/internal/adapter/http/validation"
	"github.com/tomibudis/task-manager-webapp/internal/core/domain"
)

func decodeUpdate(t *testing.T, body string) (dto.UpdateTaskRequest, map[string]json.RawMessage) {
	t.Helper()
	var req dto.UpdateTaskRequest
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return req, raw
}

func TestBuildUpdateTaskInput_CarriesSuppliedFields(t *testing.T) {
	req, raw := decodeUpdate(t, `{"title":"  New title  ","description":"  details  "}`)

	input, err := validation.BuildUpdateTaskInput(req, raw, "task-1", "user-1")
	require.NoError(t, err)
	require.Equal(t, "task-1", input.ID)
	require.Equal(t, "user-1", input.UserID)
	require.NotNil(t, input.Title)
	require.Equal(t, "New title", *input.Title)
	// Description is carried as supplied; the use case trims it.
	require.NotNil(t, input.Description)
	require.Equal(t, "  details  ", *input.Description)
	require.Nil(t, input.Status)
}

func TestBuildUpdateTaskInput_OmittedFieldsStayNil(t *testing.T) {
	req, raw := decodeUpdate(t, `{"status":"DONE"}`)

	input, err := validation.BuildUpdateTaskInput(req, raw, "task-1", "user-1")
	require.NoError(t, err)
	require.Nil(t, input.Title)
	require.Nil(t, input.Description)
	require.NotNil(t, input.Status)
	require.Equal(t, domain.TaskStatusDone, *input.Status)
}

func TestBuildUpdateTaskInput_RejectsEmptyPayload(t *testing.T) {
	req, raw := decodeUpdate(t, `{}`)

	_, err := validation.BuildUpdateTaskInput(req, raw, "task-1", "user-1")
	require.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}

func TestBuildUpdateTaskInput_RejectsNullFields(t *testing.T) {
	for _, body := range []string{
		`{"title":null}`,
		`{"description":null}`,
		`{"status":null}`,
	} {
		req, raw := decodeUpdate(t, body)
		_, err := validation.BuildUpdateTaskInput(req, raw, "task-1", "user-1")
		require.ErrorIsf(t, err, validation.ErrInvalidTaskPayload, "body %s", body)
	}
}

func TestBuildUpdateTaskInput_RejectsBlankTitle(t *testing.T) {
	req, raw := decodeUpdate(t, `{"title":"   "}`)

	_, err := validation.BuildUpdateTaskInput(req, raw, "task-1", "user-1")
	require.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}
