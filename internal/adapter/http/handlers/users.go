package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tomibudis/task-manager-webapp/internal/adapter/http/dto"
	"github.com/tomibudis/task-manager-webapp/internal/adapter/http/mapper"
	"github.com/tomibudis/task-manager-webapp/internal/adapter/http/middleware"
	"github.com/tomibudis/task-manager-webapp/internal/core/domain"
	"github.com/tomibudis/task-manager-webapp/internal/core/ports"
	"github.com/tomibudis/task-manager-webapp/pkg/apierrors"
	"github.com/tomibudis/task-manager-webapp/pkg/token"
)

type UserHandler struct {
	userService ports.UserService
	tokens      *token.Manager
}

func NewUserHandler(userService ports.UserService, tokens *token.Manager) *UserHandler {
	return &UserHandler{userService: userService, tokens: tokens}
}

func (h *UserHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), domain.RegisterUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		var domainErr *domain.Error
		if errors.As(err, &domainErr) {
			c.JSON(apierrors.StatusForKind(domainErr.Kind), apierrors.FromDomain(domainErr, lang))
			return
		}
		zap.L().Error("failed to register user", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailRegister, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToUserItem(user))
}

func (h *UserHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var domainErr *domain.Error
		if errors.As(err, &domainErr) {
			c.JSON(apierrors.StatusForKind(domainErr.Kind), apierrors.FromDomain(domainErr, lang))
			return
		}
		zap.L().Error("failed to authenticate user", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLogin, lang),
		)
		return
	}
	// A nil user covers both unknown email and wrong password.
	if user == nil {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
		)
		return
	}

	signed, expiresAt, err := h.tokens.Generate(user.ID)
	if err != nil {
		zap.L().Error("failed to issue session token", zap.String("user_id", user.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLogin, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		User:      mapper.ToUserItem(*user),
		Token:     signed,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		var domainErr *domain.Error
		if errors.As(err, &domainErr) {
			c.JSON(apierrors.StatusForKind(domainErr.Kind), apierrors.FromDomain(domainErr, lang))
			return
		}
		zap.L().Error("failed to load profile", zap.String("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGetProfile, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	err := h.userService.ChangePassword(c.Request.Context(), domain.ChangePasswordInput{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		var domainErr *domain.Error
		if errors.As(err, &domainErr) {
			c.JSON(apierrors.StatusForKind(domainErr.Kind), apierrors.FromDomain(domainErr, lang))
			return
		}
		zap.L().Error("failed to change password", zap.String("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailChangePassword, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
