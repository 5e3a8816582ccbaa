package request

import (
	"context"
	"mime/multipart"
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
	l := zap.L().Named("request.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("request operation failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeValidationError(c *gin.Context, err error) {
	h.logger.Warn("request payload validation failed", zap.Error(err))
	appErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, appErr.Status, appErr.Code, appErr.Message, err.Error())
}

func (h *Handler) CreateExpense(c *gin.Context) {
	actor := middleware.CurrentPrincipal(c)

	var req CreateExpenseRequest
	if err := c.ShouldBind(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	attachment, release, err := openUpload(c, "attachment")
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "unreadable attachment", nil)
		return
	}
	defer release()

	resp, err := h.service.CreateExpense(c.Request.Context(), actor, req, attachment)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) CreateHoliday(c *gin.Context) {
	actor := middleware.CurrentPrincipal(c)

	var req CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.CreateHoliday(c.Request.Context(), actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) CreateOvertime(c *gin.Context) {
	actor := middleware.CurrentPrincipal(c)

	var req CreateOvertimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.CreateOvertime(c.Request.Context(), actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) CreateFinancial(c *gin.Context) {
	actor := middleware.CurrentPrincipal(c)

	var req CreateFinancialRequest
	if err := c.ShouldBind(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	document, release, err := openUpload(c, "supportingDocument")
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "unreadable supporting document", nil)
		return
	}
	defer release()

	resp, err := h.service.CreateFinancial(c.Request.Context(), actor, req, document)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) CreateSignOff(c *gin.Context) {
	actor := middleware.CurrentPrincipal(c)

	var req CreateSignOffRequest
	if err := c.ShouldBind(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	document, release, err := openUpload(c, "supportingDocument")
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "unreadable supporting document", nil)
		return
	}
	defer release()

	resp, err := h.service.CreateSignOff(c.Request.Context(), actor, req, document)
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

func (h *Handler) Cancel(c *gin.Context) {
	h.decide(c, h.service.Cancel)
}

func (h *Handler) decide(c *gin.Context, fn func(context.Context, domain.Principal, uint) (any, error)) {
	actor := middleware.CurrentPrincipal(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid request id", nil)
		return
	}

	resp, err := fn(c.Request.Context(), actor, uint(id))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetPendingByCompany(c *gin.Context) {
	actor := middleware.CurrentPrincipal(c)

	companyID, err := strconv.ParseUint(c.Param("companyId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid company id", nil)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	search := c.Query("search")

	paged, err := h.service.ListPendingPaged(c.Request.Context(), actor, uint(companyID), search, page, size)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(paged.Total, paged.Page, paged.Size)
	response.Success(c, http.StatusOK, paged.Items, &meta)
}

func (h *Handler) GetByKind(c *gin.Context) {
	actor := middleware.CurrentPrincipal(c)

	companyID, err := strconv.ParseUint(c.Param("companyId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid company id", nil)
		return
	}

	kind, ok := kindFromSlug(c.Param("kind"))
	if !ok {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "unknown request kind", nil)
		return
	}

	resp, err := h.service.ListByKind(c.Request.Context(), actor, uint(companyID), kind)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func kindFromSlug(slug string) (string, bool) {
	switch slug {
	case "expenses":
		return KindExpenses, true
	case "holidays":
		return KindHoliday, true
	case "overtime":
		return KindOvertime, true
	case "financial":
		return KindFinancial, true
	case "sign-offs":
		return KindSignOff, true
	default:
		return "", false
	}
}

// openUpload pulls the named multipart file if present. The release
// func closes the underlying file and is safe to defer either way.
func openUpload(c *gin.Context, field string) (*Upload, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile || err == http.ErrNotMultipart {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}
	return openHeader(header)
}

func openHeader(header *multipart.FileHeader) (*Upload, func(), error) {
	f, err := header.Open()
	if err != nil {
		return nil, func() {}, err
	}
	upload := &Upload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Reader:      f,
	}
	return upload, func() { _ = f.Close() }, nil
}
