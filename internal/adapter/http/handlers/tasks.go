package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tomibudis/task-manager-webapp/internal/adapter/http/dto"
	"github.com/tomibudis/task-manager-webapp/internal/adapter/http/mapper"
	"github.com/tomibudis/task-manager-webapp/internal/adapter/http/middleware"
	"github.com/tomibudis/task-manager-webapp/internal/adapter/http/validation"
	"github.com/tomibudis/task-manager-webapp/internal/core/domain"
	"github.com/tomibudis/task-manager-webapp/internal/core/ports"
	"github.com/tomibudis/task-manager-webapp/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	var status *domain.TaskStatus
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		status = &value
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), domain.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		UserID:      userID,
	})
	if err != nil {
		h.respondTaskError(c, err, apierrors.MsgFailCreateTask, lang)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
			)
			return
		}
		limit = parsed
	}

	var status *domain.TaskStatus
	if raw := c.Query("status"); raw != "" {
		value := domain.TaskStatus(raw)
		if !value.Valid() {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
			)
			return
		}
		status = &value
	}

	page, err := h.taskService.ListTasks(c.Request.Context(), domain.ListTasksInput{
		UserID: userID,
		Page:   domain.Pagination{Limit: limit, Cursor: c.Query("cursor")},
		Status: status,
	})
	if err != nil {
		h.respondTaskError(c, err, apierrors.MsgFailListTasks, lang)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskPage(page))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)
	taskID := c.Param("id")

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	var raw map[string]json.RawMessage
	var req dto.UpdateTaskRequest
	if err := json.Unmarshal(body, &raw); err != nil || json.Unmarshal(body, &req) != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw, taskID, userID)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), input)
	if err != nil {
		h.respondTaskError(c, err, apierrors.MsgFailUpdateTask, lang)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)
	taskID := c.Param("id")

	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	task, err := h.taskService.UpdateTaskStatus(c.Request.Context(), taskID, userID, domain.TaskStatus(req.Status))
	if err != nil {
		h.respondTaskError(c, err, apierrors.MsgFailUpdateTask, lang)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)
	taskID := c.Param("id")

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID, userID); err != nil {
		h.respondTaskError(c, err, apierrors.MsgFailDeleteTask, lang)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) respondTaskError(c *gin.Context, err error, fallbackMsg, lang string) {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		c.JSON(apierrors.StatusForKind(domainErr.Kind), apierrors.FromDomain(domainErr, lang))
		return
	}

	zap.L().Error("task request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(
		http.StatusInternalServerError,
		apierrors.CreateError(http.StatusInternalServerError, fallbackMsg, lang),
	)
}
