package approval

import (
	"context"

	approvalerrors "github.com/RndsK/BMA/internal/approval/errors"
	"github.com/RndsK/BMA/internal/domain"
	"github.com/RndsK/BMA/internal/rbac"

	"go.uber.org/zap"
)

// RoleResolver reports the actor's role inside a company. The company
// repository satisfies it.
type RoleResolver interface {
	RoleFor(ctx context.Context, employeeID string, companyID uint) (string, error)
}

//go:generate mockgen -source=approval_service.go -destination=mock/approval_service_mock.go -package=mock
type Service interface {
	ListMine(ctx context.Context, actor domain.Principal) ([]ApprovalResponse, error)
	ListByCompany(ctx context.Context, actor domain.Principal, companyID uint) ([]ApprovalResponse, error)
}

type service struct {
	repo   Repository
	roles  RoleResolver
	logger *zap.Logger
}

func NewService(repo Repository, roles RoleResolver, logger ...*zap.Logger) Service {
	l := zap.L().Named("approval.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.service")
	}
	return &service{repo: repo, roles: roles, logger: l}
}

// ListMine returns every decision made on the actor's own submissions.
func (s *service) ListMine(ctx context.Context, actor domain.Principal) ([]ApprovalResponse, error) {
	approvals, err := s.repo.ListByEmployee(ctx, actor.EmployeeID)
	if err != nil {
		s.logger.Error("list own approvals failed", zap.Error(err))
		return nil, err
	}
	return mapAll(approvals), nil
}

// ListByCompany returns the full decision ledger of a company. Owner
// only.
func (s *service) ListByCompany(ctx context.Context, actor domain.Principal, companyID uint) ([]ApprovalResponse, error) {
	role, err := s.roles.RoleFor(ctx, actor.EmployeeID, companyID)
	if err != nil {
		return nil, err
	}
	if role != rbac.RoleOwner {
		s.logger.Warn("company approval history denied",
			zap.String("actor_id", actor.EmployeeID),
			zap.Uint("company_id", companyID),
			zap.String("role", role),
		)
		return nil, approvalerrors.ErrNotCompanyOwner
	}

	approvals, err := s.repo.ListByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("list company approvals failed", zap.Error(err))
		return nil, err
	}
	return mapAll(approvals), nil
}

func mapAll(approvals []Approval) []ApprovalResponse {
	resp := make([]ApprovalResponse, len(approvals))
	for i, a := range approvals {
		resp[i] = MapToResponse(a)
	}
	return resp
}
