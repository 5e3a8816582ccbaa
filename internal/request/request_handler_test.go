package request_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/RndsK/BMA/internal/domain"
	"github.com/RndsK/BMA/internal/request"
	requesterrors "github.com/RndsK/BMA/internal/request/errors"
	"github.com/RndsK/BMA/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeService struct {
	createHolidayFn    func(ctx context.Context, actor domain.Principal, req request.CreateHolidayRequest) (any, error)
	approveFn          func(ctx context.Context, actor domain.Principal, id uint) (any, error)
	listPendingPagedFn func(ctx context.Context, actor domain.Principal, companyID uint, search string, page, size int) (request.PagedRequests, error)
}

func (f *fakeService) CreateExpense(ctx context.Context, actor domain.Principal, req request.CreateExpenseRequest, attachment *request.Upload) (any, error) {
	return nil, nil
}

func (f *fakeService) CreateHoliday(ctx context.Context, actor domain.Principal, req request.CreateHolidayRequest) (any, error) {
	return f.createHolidayFn(ctx, actor, req)
}

func (f *fakeService) CreateOvertime(ctx context.Context, actor domain.Principal, req request.CreateOvertimeRequest) (any, error) {
	return nil, nil
}

func (f *fakeService) CreateFinancial(ctx context.Context, actor domain.Principal, req request.CreateFinancialRequest, document *request.Upload) (any, error) {
	return nil, nil
}

func (f *fakeService) CreateSignOff(ctx context.Context, actor domain.Principal, req request.CreateSignOffRequest, document *request.Upload) (any, error) {
	return nil, nil
}

func (f *fakeService) Approve(ctx context.Context, actor domain.Principal, id uint) (any, error) {
	return f.approveFn(ctx, actor, id)
}

func (f *fakeService) Reject(ctx context.Context, actor domain.Principal, id uint) (any, error) {
	return nil, nil
}

func (f *fakeService) Cancel(ctx context.Context, actor domain.Principal, id uint) (any, error) {
	return nil, nil
}

func (f *fakeService) ListPendingPaged(ctx context.Context, actor domain.Principal, companyID uint, search string, page, size int) (request.PagedRequests, error) {
	return f.listPendingPagedFn(ctx, actor, companyID, search, page, size)
}

func (f *fakeService) ListByKind(ctx context.Context, actor domain.Principal, companyID uint, kind string) ([]any, error) {
	return nil, nil
}

func authedContext(t *testing.T, method, target string, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", "emp-a")
	c.Set("employee_email", "a@example.com")
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestHandler_CreateHoliday(t *testing.T) {
	t.Run("created payload is wrapped in the envelope", func(t *testing.T) {
		svc := &fakeService{
			createHolidayFn: func(ctx context.Context, actor domain.Principal, req request.CreateHolidayRequest) (any, error) {
				assert.Equal(t, "emp-a", actor.EmployeeID)
				assert.Equal(t, "2026-07-06", req.StartDate)
				return request.HolidayResponse{}, nil
			},
		}
		h := request.NewHandler(svc, zap.NewNop())

		c, w := authedContext(t, http.MethodPost, "/requests/holidays",
			`{"companyId":3,"startDate":"2026-07-06","endDate":"2026-07-10"}`)
		h.CreateHoliday(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var envelope map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, true, envelope["ok"])
	})

	t.Run("malformed payload is a 400", func(t *testing.T) {
		h := request.NewHandler(&fakeService{}, zap.NewNop())

		c, w := authedContext(t, http.MethodPost, "/requests/holidays",
			`{"companyId":3,"startDate":"06.07.2026","endDate":"2026-07-10"}`)
		h.CreateHoliday(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Approve(t *testing.T) {
	t.Run("conflict surfaces as 409", func(t *testing.T) {
		svc := &fakeService{
			approveFn: func(ctx context.Context, actor domain.Principal, id uint) (any, error) {
				return nil, requesterrors.ErrRequestNotPending
			},
		}
		h := request.NewHandler(svc, zap.NewNop())

		c, w := authedContext(t, http.MethodPost, "/requests/11/approve", "")
		c.Params = gin.Params{{Key: "id", Value: "11"}}
		h.Approve(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		var envelope map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, false, envelope["ok"])
		errObj := envelope["error"].(map[string]any)
		assert.Equal(t, apperror.CodeInvalidState, errObj["code"])
	})

	t.Run("garbage id is a 400", func(t *testing.T) {
		h := request.NewHandler(&fakeService{}, zap.NewNop())

		c, w := authedContext(t, http.MethodPost, "/requests/nope/approve", "")
		c.Params = gin.Params{{Key: "id", Value: "nope"}}
		h.Approve(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_GetPendingByCompany(t *testing.T) {
	t.Run("paging params flow through and meta comes back", func(t *testing.T) {
		svc := &fakeService{
			listPendingPagedFn: func(ctx context.Context, actor domain.Principal, companyID uint, search string, page, size int) (request.PagedRequests, error) {
				assert.Equal(t, uint(3), companyID)
				assert.Equal(t, "holiday", search)
				assert.Equal(t, 2, page)
				assert.Equal(t, 2, size)
				return request.PagedRequests{
					Items: []any{request.HolidayResponse{}, request.HolidayResponse{}},
					Total: 5,
					Page:  2,
					Size:  2,
				}, nil
			},
		}
		h := request.NewHandler(svc, zap.NewNop())

		c, w := authedContext(t, http.MethodGet, "/requests/companies/3/pending?page=2&size=2&search=holiday", "")
		c.Params = gin.Params{{Key: "companyId", Value: "3"}}
		h.GetPendingByCompany(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var envelope map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		meta := envelope["meta"].(map[string]any)
		assert.Equal(t, float64(5), meta["total"])
		assert.Equal(t, float64(3), meta["totalPages"])
		assert.Equal(t, float64(2), meta["page"])
	})
}
