package request_test

import (
	"testing"
	"time"

	"github.com/RndsK/BMA/internal/domain"
	"github.com/RndsK/BMA/internal/request"
	requesterrors "github.com/RndsK/BMA/internal/request/errors"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestMapToResponse(t *testing.T) {
	start := time.Date(2026, 7, 6, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)

	base := request.Request{
		ID:          21,
		Reference:   "REQ-00021",
		Status:      domain.StatusPending,
		Description: "desc",
		CompanyID:   3,
		EmployeeID:  "emp-a",
	}

	t.Run("expense", func(t *testing.T) {
		r := base
		r.Kind = request.KindExpenses
		r.Amount = ptr(120.5)
		r.Currency = ptr(request.CurrencyCHF)
		r.ExpenseType = ptr(request.ExpenseTypeTravel)
		r.ProjectName = ptr("launch")
		r.Attachment = ptr("https://blob/receipt.pdf")

		resp, err := request.MapToResponse(r)

		assert.NoError(t, err)
		expense := resp.(request.ExpenseResponse)
		assert.Equal(t, uint(21), expense.ID)
		assert.Equal(t, 120.5, expense.Amount)
		assert.Equal(t, request.ExpenseTypeTravel, expense.ExpenseType)
		assert.Equal(t, "https://blob/receipt.pdf", expense.Attachment)
	})

	t.Run("holiday", func(t *testing.T) {
		r := base
		r.Kind = request.KindHoliday
		r.StartDate = &start
		r.EndDate = &end

		resp, err := request.MapToResponse(r)

		assert.NoError(t, err)
		h := resp.(request.HolidayResponse)
		assert.Equal(t, start, h.StartDate)
		assert.Equal(t, end, h.EndDate)
	})

	t.Run("overtime", func(t *testing.T) {
		r := base
		r.Kind = request.KindOvertime
		r.StartDate = &start
		r.Length = ptr(3)

		resp, err := request.MapToResponse(r)

		assert.NoError(t, err)
		o := resp.(request.OvertimeResponse)
		assert.Equal(t, 3, o.Length)
	})

	t.Run("financial carries the participant emails", func(t *testing.T) {
		r := base
		r.Kind = request.KindFinancial
		r.Amount = ptr(5000.0)
		r.Currency = ptr(request.CurrencyUSD)
		r.TransferType = ptr(request.TransferTypeBudget)
		r.RecurrenceType = ptr(request.RecurrenceMonthly)
		r.TransferFrom = ptr("ops")
		r.TransferTo = ptr("marketing")
		r.SignOffEmails = pq.StringArray{"ana@example.com", "ben@example.com"}

		resp, err := request.MapToResponse(r)

		assert.NoError(t, err)
		f := resp.(request.FinancialResponse)
		assert.Equal(t, request.TransferTypeBudget, f.TransferType)
		assert.Equal(t, []string{"ana@example.com", "ben@example.com"}, f.Participants)
	})

	t.Run("sign-off", func(t *testing.T) {
		r := base
		r.Kind = request.KindSignOff
		r.SupportingDocument = ptr("https://blob/contract.pdf")
		r.SignOffEmails = pq.StringArray{"cora@example.com"}

		resp, err := request.MapToResponse(r)

		assert.NoError(t, err)
		s := resp.(request.SignOffResponse)
		assert.Equal(t, "https://blob/contract.pdf", s.SupportingDocument)
		assert.Equal(t, []string{"cora@example.com"}, s.Participants)
	})

	t.Run("unknown kind is an internal error", func(t *testing.T) {
		r := base
		r.Kind = "MysteryRequest"

		resp, err := request.MapToResponse(r)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, requesterrors.ErrUnsupportedVariant)
	})
}
