package joinrequest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/RndsK/BMA/internal/domain"
	"github.com/RndsK/BMA/internal/middleware"
	"github.com/RndsK/BMA/internal/shared/apperror"
	"github.com/RndsK/BMA/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("joinrequest.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("joinrequest.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("join request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	actor := middleware.CurrentPrincipal(c)

	var req CreateJoinRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create join request validation failed", zap.Error(err))
		appErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, appErr.Status, appErr.Code, appErr.Message, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	h.decide(c, h.service.Approve)
}

func (h *Handler) Reject(c *gin.Context) {
	h.decide(c, h.service.Reject)
}

func (h *Handler) GetPendingByCompany(c *gin.Context) {
	actor := middleware.CurrentPrincipal(c)

	companyID, err := strconv.ParseUint(c.Param("companyId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid company id", nil)
		return
	}

	resp, err := h.service.ListPendingByCompany(c.Request.Context(), actor, uint(companyID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetMineByCompany(c *gin.Context) {
	actor := middleware.CurrentPrincipal(c)

	companyID, err := strconv.ParseUint(c.Param("companyId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid company id", nil)
		return
	}

	resp, err := h.service.ListMineByCompany(c.Request.Context(), actor, uint(companyID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) decide(c *gin.Context, fn func(context.Context, domain.Principal, uint) (JoinRequestResponse, error)) {
	actor := middleware.CurrentPrincipal(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid join request id", nil)
		return
	}

	resp, err := fn(c.Request.Context(), actor, uint(id))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
