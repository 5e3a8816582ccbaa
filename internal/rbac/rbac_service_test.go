package rbac_test

import (
	"context"
	"testing"

	"github.com/RndsK/BMA/internal/domain"
	"github.com/RndsK/BMA/internal/rbac"

	"github.com/stretchr/testify/assert"
)

type staticResolver struct {
	roles map[string]string
}

func (r *staticResolver) RoleFor(ctx context.Context, employeeID string, companyID uint) (string, error) {
	return r.roles[employeeID], nil
}

func TestService_Enforce(t *testing.T) {
	resolver := &staticResolver{roles: map[string]string{
		"emp-owner":   rbac.RoleOwner,
		"emp-manager": rbac.RoleManager,
		"emp-user":    rbac.RoleUser,
	}}
	svc, err := rbac.NewService(resolver)
	assert.NoError(t, err)

	check := func(employeeID, resource, action string) bool {
		ok, err := svc.Enforce(domain.EnforceRequest{
			EmployeeID: employeeID,
			CompanyID:  "3",
			Resource:   resource,
			Action:     action,
		})
		assert.NoError(t, err)
		return ok
	}

	t.Run("users create and read requests but never approve", func(t *testing.T) {
		assert.True(t, check("emp-user", "request", "create"))
		assert.True(t, check("emp-user", "request", "read"))
		assert.False(t, check("emp-user", "request", "approve"))
		assert.False(t, check("emp-user", "joinrequest", "approve"))
		assert.False(t, check("emp-user", "approval", "read_all"))
	})

	t.Run("owner inherits user permissions", func(t *testing.T) {
		assert.True(t, check("emp-owner", "request", "create"))
		assert.True(t, check("emp-owner", "request", "approve"))
		assert.True(t, check("emp-owner", "request", "read_all"))
		assert.True(t, check("emp-owner", "joinrequest", "approve"))
	})

	t.Run("manager sits between", func(t *testing.T) {
		assert.True(t, check("emp-manager", "holiday", "read"))
		assert.False(t, check("emp-manager", "request", "approve"))
	})

	t.Run("non-members are denied everything", func(t *testing.T) {
		assert.False(t, check("emp-ghost", "request", "read"))
	})

	t.Run("malformed company id denies without error", func(t *testing.T) {
		ok, err := svc.Enforce(domain.EnforceRequest{
			EmployeeID: "emp-owner",
			CompanyID:  "not-a-number",
			Resource:   "request",
			Action:     "read",
		})
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}
