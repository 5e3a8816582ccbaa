package holiday

import (
	"net/http"
	"strconv"

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
	l := zap.L().Named("holiday.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("holiday request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetBalance(c *gin.Context) {
	actor := middleware.CurrentPrincipal(c)

	companyID, ok := h.companyParam(c)
	if !ok {
		return
	}

	balance, err := h.service.GetBalance(c.Request.Context(), actor, companyID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, balance, nil)
}

func (h *Handler) GetUpcoming(c *gin.Context) {
	actor := middleware.CurrentPrincipal(c)

	companyID, ok := h.companyParam(c)
	if !ok {
		return
	}

	resp, err := h.service.ListUpcoming(c.Request.Context(), actor, companyID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetCompanyByMonth(c *gin.Context) {
	actor := middleware.CurrentPrincipal(c)

	companyID, ok := h.companyParam(c)
	if !ok {
		return
	}

	month := 0
	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid month", nil)
			return
		}
		month = parsed
	}

	resp, err := h.service.ListCompanyByMonth(c.Request.Context(), actor, companyID, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetBankHolidays(c *gin.Context) {
	resp, err := h.service.BankHolidays(c.Request.Context(), c.Param("countryCode"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) companyParam(c *gin.Context) (uint, bool) {
	companyID, err := strconv.ParseUint(c.Param("companyId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid company id", nil)
		return 0, false
	}
	return uint(companyID), true
}
