package joinrequest

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/RndsK/BMA/internal/approval"
	"github.com/RndsK/BMA/internal/company"
	companyerrors "github.com/RndsK/BMA/internal/company/errors"
	"github.com/RndsK/BMA/internal/domain"
	"github.com/RndsK/BMA/internal/events"
	joinrequesterrors "github.com/RndsK/BMA/internal/joinrequest/errors"
	"github.com/RndsK/BMA/internal/messaging/kafka"
	"github.com/RndsK/BMA/internal/rbac"
	"github.com/RndsK/BMA/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=joinrequest_service.go -destination=mock/joinrequest_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor domain.Principal, req CreateJoinRequestRequest) (JoinRequestResponse, error)
	Approve(ctx context.Context, actor domain.Principal, id uint) (JoinRequestResponse, error)
	Reject(ctx context.Context, actor domain.Principal, id uint) (JoinRequestResponse, error)
	ListPendingByCompany(ctx context.Context, actor domain.Principal, companyID uint) ([]JoinRequestResponse, error)
	ListMineByCompany(ctx context.Context, actor domain.Principal, companyID uint) ([]JoinRequestResponse, error)
}

type service struct {
	repo      Repository
	companies company.Repository
	logger    *zap.Logger
}

func NewService(repo Repository, companies company.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("joinrequest.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("joinrequest.service")
	}
	return &service{repo: repo, companies: companies, logger: l}
}

// Create files an application to join a company. One application per
// (company, employee); existing members cannot apply again.
func (s *service) Create(ctx context.Context, actor domain.Principal, req CreateJoinRequestRequest) (JoinRequestResponse, error) {
	if _, err := s.companies.FindByID(ctx, req.CompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return JoinRequestResponse{}, companyerrors.ErrCompanyNotFound
		}
		return JoinRequestResponse{}, err
	}

	member, err := s.companies.IsMember(ctx, actor.EmployeeID, req.CompanyID)
	if err != nil {
		return JoinRequestResponse{}, err
	}
	if member {
		return JoinRequestResponse{}, joinrequesterrors.ErrAlreadyMember
	}

	jr := &JoinRequest{
		Status:     domain.StatusPending,
		CompanyID:  req.CompanyID,
		EmployeeID: actor.EmployeeID,
	}
	if err := s.repo.Create(ctx, jr); err != nil {
		s.logger.Warn("create join request failed",
			zap.String("actor_id", actor.EmployeeID),
			zap.Uint("company_id", req.CompanyID),
			zap.Error(err),
		)
		return JoinRequestResponse{}, err
	}

	s.logger.Info("join request created",
		zap.Uint("join_request_id", jr.ID),
		zap.Uint("company_id", jr.CompanyID),
		zap.String("employee_id", jr.EmployeeID),
	)
	return MapToResponse(*jr), nil
}

// Approve accepts the application: status flip, acceptance date, the
// ledger row, the User membership and the joined event land in one
// transaction. Only the company owner may decide.
func (s *service) Approve(ctx context.Context, actor domain.Principal, id uint) (JoinRequestResponse, error) {
	jr, err := s.loadForDecision(ctx, actor, id)
	if err != nil {
		return JoinRequestResponse{}, err
	}

	membership := company.RoleInCompany{
		Name:       rbac.RoleUser,
		EmployeeID: jr.EmployeeID,
		CompanyID:  jr.CompanyID,
	}
	ledger := approval.Approval{
		Status:        domain.StatusApproved,
		ApprovedBy:    actor.Email,
		JoinRequestID: &jr.ID,
	}
	event, err := buildMemberJoinedEvent(ctx, jr)
	if err != nil {
		return JoinRequestResponse{}, err
	}

	decided, err := s.repo.ApproveWithMembership(ctx, jr, membership, ledger, event)
	if err != nil {
		s.logger.Error("approve join request failed", zap.Uint("join_request_id", id), zap.Error(err))
		return JoinRequestResponse{}, err
	}
	if !decided {
		return JoinRequestResponse{}, joinrequesterrors.ErrJoinRequestNotPending
	}

	s.logger.Info("join request approved",
		zap.Uint("join_request_id", jr.ID),
		zap.Uint("company_id", jr.CompanyID),
		zap.String("employee_id", jr.EmployeeID),
		zap.String("approved_by", actor.EmployeeID),
	)
	return MapToResponse(*jr), nil
}

// Reject declines the application and records the decision. Guarded on
// Pending the same way as Approve.
func (s *service) Reject(ctx context.Context, actor domain.Principal, id uint) (JoinRequestResponse, error) {
	jr, err := s.loadForDecision(ctx, actor, id)
	if err != nil {
		return JoinRequestResponse{}, err
	}

	ledger := approval.Approval{
		Status:        domain.StatusRejected,
		ApprovedBy:    actor.Email,
		JoinRequestID: &jr.ID,
	}

	decided, err := s.repo.RejectWithApproval(ctx, jr, ledger)
	if err != nil {
		s.logger.Error("reject join request failed", zap.Uint("join_request_id", id), zap.Error(err))
		return JoinRequestResponse{}, err
	}
	if !decided {
		return JoinRequestResponse{}, joinrequesterrors.ErrJoinRequestNotPending
	}

	s.logger.Info("join request rejected",
		zap.Uint("join_request_id", jr.ID),
		zap.String("approved_by", actor.EmployeeID),
	)
	return MapToResponse(*jr), nil
}

func (s *service) ListPendingByCompany(ctx context.Context, actor domain.Principal, companyID uint) ([]JoinRequestResponse, error) {
	if err := s.requireOwner(ctx, actor, companyID); err != nil {
		return nil, err
	}

	requests, err := s.repo.ListPendingByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return mapAll(requests), nil
}

func (s *service) ListMineByCompany(ctx context.Context, actor domain.Principal, companyID uint) ([]JoinRequestResponse, error) {
	requests, err := s.repo.ListByEmployeeAndCompany(ctx, actor.EmployeeID, companyID)
	if err != nil {
		return nil, err
	}
	return mapAll(requests), nil
}

// loadForDecision fetches the request and verifies the actor owns the
// company it targets. Existence is checked before authority so missing
// requests stay a 404 regardless of who asks.
func (s *service) loadForDecision(ctx context.Context, actor domain.Principal, id uint) (*JoinRequest, error) {
	jr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, joinrequesterrors.ErrJoinRequestNotFound
		}
		return nil, err
	}

	if err := s.requireOwner(ctx, actor, jr.CompanyID); err != nil {
		return nil, err
	}
	return jr, nil
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

func buildMemberJoinedEvent(ctx context.Context, jr *JoinRequest) (kafka.OutboxEvent, error) {
	payload, err := json.Marshal(events.MemberJoinedEvent{
		EventType:     "company.member_joined",
		JoinRequestID: jr.ID,
		CompanyID:     jr.CompanyID,
		EmployeeID:    jr.EmployeeID,
		Role:          rbac.RoleUser,
		OccurredAt:    time.Now().UTC(),
	})
	if err != nil {
		return kafka.OutboxEvent{}, err
	}

	return kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "join_request",
		AggregateID:   strconv.FormatUint(uint64(jr.ID), 10),
		EventType:     "company.member_joined",
		Topic:         events.MemberJoinedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}, nil
}

func mapAll(requests []JoinRequest) []JoinRequestResponse {
	resp := make([]JoinRequestResponse, len(requests))
	for i, jr := range requests {
		resp[i] = MapToResponse(jr)
	}
	return resp
}
