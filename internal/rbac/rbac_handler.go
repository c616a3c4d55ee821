package rbac

import (
	"net/http"

	"job-portal/internal/access"
	"job-portal/internal/shared/apperror"
	"job-portal/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

// Enforce evaluates the collection gate for a hypothetical actor.
func (h *Handler) Enforce(c *gin.Context) {
	var req EnforceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	role, _ := access.ParseRole(req.Role)
	verb := map[string]access.Verb{
		"read":   access.VerbRead,
		"create": access.VerbCreate,
		"update": access.VerbUpdate,
		"delete": access.VerbDelete,
	}[req.Action]

	probe := access.Actor{UserID: uuid.New(), Role: role, IsSuperuser: req.IsSuperuser, IsStaff: req.IsSuperuser}
	allowed, err := h.service.Enforce(probe, access.Resource(req.Resource), verb)
	if err != nil {
		h.logger.Error("http rbac enforce failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, apperror.ErrInternal.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "", EnforceResponse{Allowed: allowed}, nil)
}

func (h *Handler) ListPolicies(c *gin.Context) {
	policies, err := h.service.Policies()
	if err != nil {
		h.logger.Error("http list rbac policies failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, apperror.ErrInternal.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, "", policies, nil)
}
