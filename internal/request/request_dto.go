package request

import (
	"time"

	requesterrors "github.com/RndsK/BMA/internal/request/errors"
)

// Create payloads. Expense, financial and sign-off requests arrive as
// multipart forms so a file can ride along; the rest are JSON.

type CreateExpenseRequest struct {
	CompanyID   uint    `json:"companyId" form:"companyId" binding:"required"`
	Description string  `json:"description" form:"description"`
	Amount      float64 `json:"amount" form:"amount" binding:"required,gt=0"`
	Currency    string  `json:"currency" form:"currency" binding:"omitempty,oneof=CHF GBP USD EUR AED"`
	ExpenseType string  `json:"expenseType" form:"expenseType"`
	ProjectName string  `json:"projectName" form:"projectName"`
}

type CreateHolidayRequest struct {
	CompanyID   uint   `json:"companyId" binding:"required"`
	Description string `json:"description"`
	StartDate   string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"endDate" binding:"required,datetime=2006-01-02"`
}

type CreateOvertimeRequest struct {
	CompanyID   uint   `json:"companyId" binding:"required"`
	Description string `json:"description"`
	StartDate   string `json:"startDate" binding:"required,datetime=2006-01-02"`
	Length      int    `json:"length" binding:"required"`
}

type CreateFinancialRequest struct {
	CompanyID      uint     `json:"companyId" form:"companyId" binding:"required"`
	Description    string   `json:"description" form:"description"`
	Amount         float64  `json:"amount" form:"amount" binding:"required,gt=0"`
	Currency       string   `json:"currency" form:"currency" binding:"omitempty,oneof=CHF GBP USD EUR AED"`
	TransferType   string   `json:"transferType" form:"transferType"`
	RecurrenceType string   `json:"recurrenceType" form:"recurrenceType"`
	TransferFrom   string   `json:"transferFrom" form:"transferFrom" binding:"required"`
	TransferTo     string   `json:"transferTo" form:"transferTo" binding:"required"`
	Participants   []string `json:"participants" form:"participants" binding:"omitempty,dive,email"`
}

type CreateSignOffRequest struct {
	CompanyID    uint     `json:"companyId" form:"companyId" binding:"required"`
	Description  string   `json:"description" form:"description"`
	Participants []string `json:"participants" form:"participants" binding:"required,min=1,dive,email"`
}

// Variant responses.

type baseResponse struct {
	ID          uint      `json:"id"`
	Reference   string    `json:"reference"`
	Kind        string    `json:"kind"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	CompanyID   uint      `json:"companyId"`
	EmployeeID  string    `json:"employeeId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ExpenseResponse struct {
	baseResponse
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	ExpenseType string  `json:"expenseType"`
	ProjectName string  `json:"projectName,omitempty"`
	Attachment  string  `json:"attachment,omitempty"`
}

type HolidayResponse struct {
	baseResponse
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type OvertimeResponse struct {
	baseResponse
	StartDate time.Time `json:"startDate"`
	Length    int       `json:"length"`
}

type FinancialResponse struct {
	baseResponse
	Amount             float64  `json:"amount"`
	Currency           string   `json:"currency"`
	TransferType       string   `json:"transferType"`
	RecurrenceType     string   `json:"recurrenceType"`
	TransferFrom       string   `json:"transferFrom"`
	TransferTo         string   `json:"transferTo"`
	SupportingDocument string   `json:"supportingDocument,omitempty"`
	Participants       []string `json:"participants"`
}

type SignOffResponse struct {
	baseResponse
	SupportingDocument string   `json:"supportingDocument,omitempty"`
	Participants       []string `json:"participants"`
}

// MapToResponse projects the wide row into its variant response based
// on the kind discriminator. An unknown kind means the row predates or
// postdates the code reading it and is surfaced as an internal error
// rather than guessed at.
func MapToResponse(r Request) (any, error) {
	base := baseResponse{
		ID:          r.ID,
		Reference:   r.Reference,
		Kind:        r.Kind,
		Status:      r.Status,
		Description: r.Description,
		CompanyID:   r.CompanyID,
		EmployeeID:  r.EmployeeID,
		CreatedAt:   r.CreatedAt,
	}

	switch r.Kind {
	case KindExpenses:
		return ExpenseResponse{
			baseResponse: base,
			Amount:       deref(r.Amount),
			Currency:     deref(r.Currency),
			ExpenseType:  deref(r.ExpenseType),
			ProjectName:  deref(r.ProjectName),
			Attachment:   deref(r.Attachment),
		}, nil
	case KindHoliday:
		return HolidayResponse{
			baseResponse: base,
			StartDate:    deref(r.StartDate),
			EndDate:      deref(r.EndDate),
		}, nil
	case KindOvertime:
		return OvertimeResponse{
			baseResponse: base,
			StartDate:    deref(r.StartDate),
			Length:       deref(r.Length),
		}, nil
	case KindFinancial:
		return FinancialResponse{
			baseResponse:       base,
			Amount:             deref(r.Amount),
			Currency:           deref(r.Currency),
			TransferType:       deref(r.TransferType),
			RecurrenceType:     deref(r.RecurrenceType),
			TransferFrom:       deref(r.TransferFrom),
			TransferTo:         deref(r.TransferTo),
			SupportingDocument: deref(r.SupportingDocument),
			Participants:       r.SignOffEmails,
		}, nil
	case KindSignOff:
		return SignOffResponse{
			baseResponse:       base,
			SupportingDocument: deref(r.SupportingDocument),
			Participants:       r.SignOffEmails,
		}, nil
	default:
		return nil, requesterrors.ErrUnsupportedVariant
	}
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
