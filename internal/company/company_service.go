package company

import (
	"context"
	"errors"

	companyerrors "github.com/RndsK/BMA/internal/company/errors"
	"github.com/RndsK/BMA/internal/domain"
	"github.com/RndsK/BMA/internal/rbac"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor domain.Principal, req CreateCompanyRequest) (CompanyResponse, error)
	GetByID(ctx context.Context, actor domain.Principal, id uint) (CompanyResponse, error)
	ListMine(ctx context.Context, actor domain.Principal) ([]CompanyResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l}
}

// Create registers a company and makes the creating employee its owner.
func (s *service) Create(ctx context.Context, actor domain.Principal, req CreateCompanyRequest) (CompanyResponse, error) {
	s.logger.Debug("create company requested",
		zap.String("actor_id", actor.EmployeeID),
		zap.String("name", req.Name),
	)

	c := &Company{
		Name:    req.Name,
		OwnerID: actor.EmployeeID,
	}

	if err := s.repo.CreateWithOwner(ctx, c, rbac.RoleOwner); err != nil {
		s.logger.Error("create company persist failed", zap.Error(err))
		return CompanyResponse{}, err
	}

	s.logger.Info("create company success",
		zap.Uint("company_id", c.ID),
		zap.String("owner_id", c.OwnerID),
	)

	return mapToResponse(*c, rbac.RoleOwner), nil
}

func (s *service) GetByID(ctx context.Context, actor domain.Principal, id uint) (CompanyResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyResponse{}, companyerrors.ErrCompanyNotFound
		}
		return CompanyResponse{}, err
	}

	role, err := s.repo.RoleFor(ctx, actor.EmployeeID, id)
	if err != nil {
		return CompanyResponse{}, err
	}
	if role == "" {
		return CompanyResponse{}, companyerrors.ErrNotCompanyMember
	}

	return mapToResponse(*c, role), nil
}

func (s *service) ListMine(ctx context.Context, actor domain.Principal) ([]CompanyResponse, error) {
	companies, err := s.repo.ListForEmployee(ctx, actor.EmployeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		resp[i] = mapToResponse(c, "")
	}
	return resp, nil
}

func mapToResponse(c Company, role string) CompanyResponse {
	return CompanyResponse{
		ID:      c.ID,
		Name:    c.Name,
		OwnerID: c.OwnerID,
		Role:    role,
	}
}
