package rbac

import (
	"context"
	"strconv"
	"sync"

	"github.com/RndsK/BMA/internal/domain"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Role names assigned through memberships.
const (
	RoleOwner   = "Owner"
	RoleManager = "Manager"
	RoleUser    = "User"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// What each role may do. Owner inherits Manager inherits User.
var policies = [][]string{
	{RoleUser, "request", "create"},
	{RoleUser, "request", "read"},
	{RoleUser, "holiday", "read"},
	{RoleUser, "approval", "read"},
	{RoleOwner, "request", "approve"},
	{RoleOwner, "request", "read_all"},
	{RoleOwner, "joinrequest", "approve"},
	{RoleOwner, "joinrequest", "read"},
	{RoleOwner, "approval", "read_all"},
}

var roleHierarchy = [][]string{
	{RoleOwner, RoleManager},
	{RoleManager, RoleUser},
}

// RoleResolver answers which role an employee holds inside a company.
// Implemented by the company membership repository.
type RoleResolver interface {
	RoleFor(ctx context.Context, employeeID string, companyID uint) (string, error)
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

type service struct {
	resolver RoleResolver
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

func NewService(resolver RoleResolver) (Service, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	for _, g := range roleHierarchy {
		if _, err := enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, err
		}
	}

	return &service{resolver: resolver, enforcer: enforcer}, nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	companyID, err := strconv.ParseUint(req.CompanyID, 10, 64)
	if err != nil {
		return false, nil
	}

	role, err := s.resolver.RoleFor(context.Background(), req.EmployeeID, uint(companyID))
	if err != nil {
		return false, err
	}
	if role == "" {
		// not a member of this company
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enforcer.Enforce(role, req.Resource, req.Action)
}
