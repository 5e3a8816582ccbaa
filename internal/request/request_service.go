package request

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/RndsK/BMA/internal/approval"
	"github.com/RndsK/BMA/internal/company"
	companyerrors "github.com/RndsK/BMA/internal/company/errors"
	"github.com/RndsK/BMA/internal/domain"
	"github.com/RndsK/BMA/internal/events"
	"github.com/RndsK/BMA/internal/messaging/kafka"
	"github.com/RndsK/BMA/internal/rbac"
	requesterrors "github.com/RndsK/BMA/internal/request/errors"
	"github.com/RndsK/BMA/internal/shared/blob"
	"github.com/RndsK/BMA/internal/shared/contextutil"
	"github.com/RndsK/BMA/internal/shared/counter"
	"github.com/RndsK/BMA/internal/signoff"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Upload carries an optional multipart file from the handler to the
// blob store without the service touching HTTP types.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// PagedRequests is one page of mapped variant responses plus the
// pre-paging total.
type PagedRequests struct {
	Items []any
	Total int64
	Page  int
	Size  int
}

//go:generate mockgen -source=request_service.go -destination=mock/request_service_mock.go -package=mock
type Service interface {
	CreateExpense(ctx context.Context, actor domain.Principal, req CreateExpenseRequest, attachment *Upload) (any, error)
	CreateHoliday(ctx context.Context, actor domain.Principal, req CreateHolidayRequest) (any, error)
	CreateOvertime(ctx context.Context, actor domain.Principal, req CreateOvertimeRequest) (any, error)
	CreateFinancial(ctx context.Context, actor domain.Principal, req CreateFinancialRequest, document *Upload) (any, error)
	CreateSignOff(ctx context.Context, actor domain.Principal, req CreateSignOffRequest, document *Upload) (any, error)
	Approve(ctx context.Context, actor domain.Principal, id uint) (any, error)
	Reject(ctx context.Context, actor domain.Principal, id uint) (any, error)
	Cancel(ctx context.Context, actor domain.Principal, id uint) (any, error)
	ListPendingPaged(ctx context.Context, actor domain.Principal, companyID uint, search string, page, size int) (PagedRequests, error)
	ListByKind(ctx context.Context, actor domain.Principal, companyID uint, kind string) ([]any, error)
}

type service struct {
	repo      Repository
	companies company.Repository
	counters  counter.Repository
	tracker   signoff.Tracker
	uploader  blob.Uploader
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	companies company.Repository,
	counters counter.Repository,
	tracker signoff.Tracker,
	uploader blob.Uploader,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("request.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.service")
	}
	return &service{
		repo:      repo,
		companies: companies,
		counters:  counters,
		tracker:   tracker,
		uploader:  uploader,
		logger:    l,
	}
}

func (s *service) CreateExpense(ctx context.Context, actor domain.Principal, req CreateExpenseRequest, attachment *Upload) (any, error) {
	base, err := s.newRequest(ctx, actor, req.CompanyID, KindExpenses, req.Description)
	if err != nil {
		return nil, err
	}

	currency := defaultString(req.Currency, CurrencyCHF)
	expenseType := defaultString(req.ExpenseType, ExpenseTypeOffice)
	base.Amount = &req.Amount
	base.Currency = &currency
	base.ExpenseType = &expenseType
	if req.ProjectName != "" {
		base.ProjectName = &req.ProjectName
	}

	if attachment != nil {
		url, err := s.upload(ctx, attachment)
		if err != nil {
			return nil, err
		}
		base.Attachment = &url
	}

	if err := s.repo.Create(ctx, base); err != nil {
		s.logger.Error("create expense request failed", zap.Error(err))
		return nil, err
	}

	s.logCreated(base)
	return MapToResponse(*base)
}

func (s *service) CreateHoliday(ctx context.Context, actor domain.Principal, req CreateHolidayRequest) (any, error) {
	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	base, err := s.newRequest(ctx, actor, req.CompanyID, KindHoliday, req.Description)
	if err != nil {
		return nil, err
	}
	base.StartDate = &start
	base.EndDate = &end

	if err := s.repo.Create(ctx, base); err != nil {
		s.logger.Error("create holiday request failed", zap.Error(err))
		return nil, err
	}

	s.logCreated(base)
	return MapToResponse(*base)
}

func (s *service) CreateOvertime(ctx context.Context, actor domain.Principal, req CreateOvertimeRequest) (any, error) {
	if req.Length < MinOvertimeDays || req.Length > MaxOvertimeDays {
		return nil, requesterrors.ErrInvalidLength
	}
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, requesterrors.ErrInvalidDateRange
	}

	base, err := s.newRequest(ctx, actor, req.CompanyID, KindOvertime, req.Description)
	if err != nil {
		return nil, err
	}
	base.StartDate = &start
	base.Length = &req.Length

	if err := s.repo.Create(ctx, base); err != nil {
		s.logger.Error("create overtime request failed", zap.Error(err))
		return nil, err
	}

	s.logCreated(base)
	return MapToResponse(*base)
}

func (s *service) CreateFinancial(ctx context.Context, actor domain.Principal, req CreateFinancialRequest, document *Upload) (any, error) {
	participantIDs, err := s.tracker.Resolve(ctx, req.Participants)
	if err != nil {
		return nil, err
	}

	base, err := s.newRequest(ctx, actor, req.CompanyID, KindFinancial, req.Description)
	if err != nil {
		return nil, err
	}

	currency := defaultString(req.Currency, CurrencyCHF)
	transferType := defaultString(req.TransferType, TransferTypeInternal)
	recurrence := defaultString(req.RecurrenceType, RecurrenceOneOff)
	base.Amount = &req.Amount
	base.Currency = &currency
	base.TransferType = &transferType
	base.RecurrenceType = &recurrence
	base.TransferFrom = &req.TransferFrom
	base.TransferTo = &req.TransferTo
	base.SignOffEmails = req.Participants

	if document != nil {
		url, err := s.upload(ctx, document)
		if err != nil {
			return nil, err
		}
		base.SupportingDocument = &url
	}

	if err := s.repo.CreateWithParticipants(ctx, base, participantIDs); err != nil {
		s.logger.Error("create financial request failed", zap.Error(err))
		return nil, err
	}

	s.logCreated(base)
	return MapToResponse(*base)
}

func (s *service) CreateSignOff(ctx context.Context, actor domain.Principal, req CreateSignOffRequest, document *Upload) (any, error) {
	participantIDs, err := s.tracker.Resolve(ctx, req.Participants)
	if err != nil {
		return nil, err
	}

	base, err := s.newRequest(ctx, actor, req.CompanyID, KindSignOff, req.Description)
	if err != nil {
		return nil, err
	}
	base.SignOffEmails = req.Participants

	if document != nil {
		url, err := s.upload(ctx, document)
		if err != nil {
			return nil, err
		}
		base.SupportingDocument = &url
	}

	if err := s.repo.CreateWithParticipants(ctx, base, participantIDs); err != nil {
		s.logger.Error("create sign-off request failed", zap.Error(err))
		return nil, err
	}

	s.logCreated(base)
	return MapToResponse(*base)
}

// Approve flips a pending request to Approved. Company owner only; the
// ledger row and the decision event commit with the flip.
func (s *service) Approve(ctx context.Context, actor domain.Principal, id uint) (any, error) {
	return s.decide(ctx, actor, id, domain.StatusApproved)
}

// Reject flips a pending request to Rejected under the same rules.
func (s *service) Reject(ctx context.Context, actor domain.Principal, id uint) (any, error) {
	return s.decide(ctx, actor, id, domain.StatusRejected)
}

func (s *service) decide(ctx context.Context, actor domain.Principal, id uint, to string) (any, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, requesterrors.ErrRequestNotFound
		}
		return nil, err
	}

	if err := s.requireOwner(ctx, actor, req.CompanyID); err != nil {
		return nil, err
	}

	ledger := approval.Approval{
		Status:     to,
		ApprovedBy: actor.Email,
		RequestID:  &req.ID,
	}
	event, err := buildDecisionEvent(ctx, req, to, actor)
	if err != nil {
		return nil, err
	}

	decided, err := s.repo.UpdateStatusWithApproval(ctx, req, to, ledger, event)
	if err != nil {
		s.logger.Error("request decision failed",
			zap.Uint("request_id", id),
			zap.String("to", to),
			zap.Error(err),
		)
		return nil, err
	}
	if !decided {
		return nil, requesterrors.ErrRequestNotPending
	}

	s.logger.Info("request decided",
		zap.Uint("request_id", req.ID),
		zap.String("reference", req.Reference),
		zap.String("status", to),
		zap.String("decided_by", actor.EmployeeID),
	)
	return MapToResponse(*req)
}

// Cancel withdraws a pending request. Submitter only; no ledger row is
// written for a cancellation.
func (s *service) Cancel(ctx context.Context, actor domain.Principal, id uint) (any, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, requesterrors.ErrRequestNotFound
		}
		return nil, err
	}

	if req.EmployeeID != actor.EmployeeID {
		return nil, requesterrors.ErrNotRequestSubmitter
	}

	cancelled, err := s.repo.UpdateStatusIfPending(ctx, req, domain.StatusCancelled)
	if err != nil {
		s.logger.Error("cancel request failed", zap.Uint("request_id", id), zap.Error(err))
		return nil, err
	}
	if !cancelled {
		return nil, requesterrors.ErrRequestNotPending
	}

	s.logger.Info("request cancelled",
		zap.Uint("request_id", req.ID),
		zap.String("reference", req.Reference),
	)
	return MapToResponse(*req)
}

// ListPendingPaged returns one page of the company's pending requests.
// Owner only. The search term filters on the kind discriminator.
func (s *service) ListPendingPaged(ctx context.Context, actor domain.Principal, companyID uint, search string, page, size int) (PagedRequests, error) {
	if page < 1 || size < 1 {
		return PagedRequests{}, requesterrors.ErrInvalidPagination
	}
	if err := s.requireOwner(ctx, actor, companyID); err != nil {
		return PagedRequests{}, err
	}

	requests, total, err := s.repo.FindPendingPaged(ctx, companyID, search, page, size)
	if err != nil {
		return PagedRequests{}, err
	}

	items, err := mapAll(requests)
	if err != nil {
		return PagedRequests{}, err
	}
	return PagedRequests{Items: items, Total: total, Page: page, Size: size}, nil
}

// ListByKind returns the whole company's requests of one kind when the
// actor owns the company, otherwise just the actor's own.
func (s *service) ListByKind(ctx context.Context, actor domain.Principal, companyID uint, kind string) ([]any, error) {
	role, err := s.companies.RoleFor(ctx, actor.EmployeeID, companyID)
	if err != nil {
		return nil, err
	}

	var requests []Request
	switch role {
	case rbac.RoleOwner:
		requests, err = s.repo.ListByKindForCompany(ctx, kind, companyID)
	case "":
		return nil, companyerrors.ErrNotCompanyMember
	default:
		requests, err = s.repo.ListByKindForEmployee(ctx, kind, actor.EmployeeID, companyID)
	}
	if err != nil {
		return nil, err
	}
	return mapAll(requests)
}

// newRequest builds the common part of a row: membership is verified
// and the company-scoped reference number is assigned.
func (s *service) newRequest(ctx context.Context, actor domain.Principal, companyID uint, kind, description string) (*Request, error) {
	member, err := s.companies.IsMember(ctx, actor.EmployeeID, companyID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, companyerrors.ErrNotCompanyMember
	}

	seq, err := s.counters.GetNextValue(ctx, companyID, CounterTypeReference)
	if err != nil {
		return nil, err
	}

	return &Request{
		Reference:   fmt.Sprintf("REQ-%05d", seq),
		Kind:        kind,
		Status:      domain.StatusPending,
		Description: description,
		CompanyID:   companyID,
		EmployeeID:  actor.EmployeeID,
	}, nil
}

func (s *service) requireOwner(ctx context.Context, actor domain.Principal, companyID uint) error {
	role, err := s.companies.RoleFor(ctx, actor.EmployeeID, companyID)
	if err != nil {
		return err
	}
	if role != rbac.RoleOwner {
		return companyerrors.ErrNotCompanyOwner
	}
	return nil
}

func (s *service) upload(ctx context.Context, u *Upload) (string, error) {
	url, err := s.uploader.Upload(ctx, u.Name, u.Reader, u.Size, u.ContentType)
	if err != nil {
		s.logger.Error("attachment upload failed", zap.String("name", u.Name), zap.Error(err))
		return "", err
	}
	return url, nil
}

func (s *service) logCreated(req *Request) {
	s.logger.Info("request created",
		zap.Uint("request_id", req.ID),
		zap.String("reference", req.Reference),
		zap.String("kind", req.Kind),
		zap.Uint("company_id", req.CompanyID),
		zap.String("employee_id", req.EmployeeID),
	)
}

func buildDecisionEvent(ctx context.Context, req *Request, to string, actor domain.Principal) (kafka.OutboxEvent, error) {
	payload, err := json.Marshal(events.RequestDecidedEvent{
		EventType:  "request.decided",
		RequestID:  req.ID,
		Reference:  req.Reference,
		Kind:       req.Kind,
		CompanyID:  req.CompanyID,
		Status:     to,
		DecidedBy:  actor.EmployeeID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return kafka.OutboxEvent{}, err
	}

	return kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "request",
		AggregateID:   strconv.FormatUint(uint64(req.ID), 10),
		EventType:     "request.decided",
		Topic:         events.RequestDecidedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}, nil
}

func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, requesterrors.ErrInvalidDateRange
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, requesterrors.ErrInvalidDateRange
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, requesterrors.ErrInvalidDateRange
	}
	return start, end, nil
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func mapAll(requests []Request) ([]any, error) {
	items := make([]any, len(requests))
	for i, r := range requests {
		item, err := MapToResponse(r)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}
