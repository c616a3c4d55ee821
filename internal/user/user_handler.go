package user

import (
	"net/http"

	"job-portal/internal/middleware"
	"job-portal/internal/shared/apperror"
	"job-portal/internal/shared/pagination"
	"job-portal/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	pages  pagination.Config
	logger *zap.Logger
}

func NewHandler(service Service, pages pagination.Config, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("user.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.handler")
	}
	return &Handler{svc: service, pages: pages, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("user request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetAll(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		h.writeError(c, apperror.ErrUnauthorized)
		return
	}

	var q ListUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}
	page := h.pages.FromQuery(c)

	resp, total, err := h.svc.List(c.Request.Context(), actor, q, page)
	if err != nil {
		h.writeError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page.Page, page.PageSize)
	response.Success(c, http.StatusOK, "Users retrieved successfully.", resp, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		h.writeError(c, apperror.ErrUnauthorized)
		return
	}

	resp, err := h.svc.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved successfully.", resp, nil)
}

func (h *Handler) ToggleStatus(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		h.writeError(c, apperror.ErrUnauthorized)
		return
	}

	var req UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.svc.SetStatus(c.Request.Context(), actor, c.Param("id"), *req.IsActive)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User status updated successfully.", resp, nil)
}

func (h *Handler) ForceResetPassword(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		h.writeError(c, apperror.ErrUnauthorized)
		return
	}

	var req ForceResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.svc.ForceResetPassword(c.Request.Context(), actor, c.Param("id"), req.NewPassword); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Password reset successfully.", nil, nil)
}
