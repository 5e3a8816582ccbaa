package joinrequest_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/RndsK/BMA/internal/approval"
	"github.com/RndsK/BMA/internal/company"
	companyerrors "github.com/RndsK/BMA/internal/company/errors"
	"github.com/RndsK/BMA/internal/domain"
	"github.com/RndsK/BMA/internal/events"
	"github.com/RndsK/BMA/internal/joinrequest"
	joinrequesterrors "github.com/RndsK/BMA/internal/joinrequest/errors"
	"github.com/RndsK/BMA/internal/messaging/kafka"
	"github.com/RndsK/BMA/internal/rbac"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeJoinRequestRepository struct {
	createFn                  func(ctx context.Context, jr *joinrequest.JoinRequest) error
	findByIDFn                func(ctx context.Context, id uint) (*joinrequest.JoinRequest, error)
	findAcceptedForEmployeeFn func(ctx context.Context, employeeID string, companyID uint) (*joinrequest.JoinRequest, error)
	listPendingByCompanyFn    func(ctx context.Context, companyID uint) ([]joinrequest.JoinRequest, error)
	listByEmployeeAndCompany  func(ctx context.Context, employeeID string, companyID uint) ([]joinrequest.JoinRequest, error)
	approveWithMembershipFn   func(ctx context.Context, jr *joinrequest.JoinRequest, membership company.RoleInCompany, ledger approval.Approval, event kafka.OutboxEvent) (bool, error)
	rejectWithApprovalFn      func(ctx context.Context, jr *joinrequest.JoinRequest, ledger approval.Approval) (bool, error)
}

func (f *fakeJoinRequestRepository) Create(ctx context.Context, jr *joinrequest.JoinRequest) error {
	if f.createFn != nil {
		return f.createFn(ctx, jr)
	}
	return nil
}

func (f *fakeJoinRequestRepository) FindByID(ctx context.Context, id uint) (*joinrequest.JoinRequest, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeJoinRequestRepository) FindAcceptedForEmployee(ctx context.Context, employeeID string, companyID uint) (*joinrequest.JoinRequest, error) {
	if f.findAcceptedForEmployeeFn != nil {
		return f.findAcceptedForEmployeeFn(ctx, employeeID, companyID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeJoinRequestRepository) ListPendingByCompany(ctx context.Context, companyID uint) ([]joinrequest.JoinRequest, error) {
	if f.listPendingByCompanyFn != nil {
		return f.listPendingByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeJoinRequestRepository) ListByEmployeeAndCompany(ctx context.Context, employeeID string, companyID uint) ([]joinrequest.JoinRequest, error) {
	if f.listByEmployeeAndCompany != nil {
		return f.listByEmployeeAndCompany(ctx, employeeID, companyID)
	}
	return nil, nil
}

func (f *fakeJoinRequestRepository) ApproveWithMembership(ctx context.Context, jr *joinrequest.JoinRequest, membership company.RoleInCompany, ledger approval.Approval, event kafka.OutboxEvent) (bool, error) {
	if f.approveWithMembershipFn != nil {
		return f.approveWithMembershipFn(ctx, jr, membership, ledger, event)
	}
	return true, nil
}

func (f *fakeJoinRequestRepository) RejectWithApproval(ctx context.Context, jr *joinrequest.JoinRequest, ledger approval.Approval) (bool, error) {
	if f.rejectWithApprovalFn != nil {
		return f.rejectWithApprovalFn(ctx, jr, ledger)
	}
	return true, nil
}

type fakeCompanyRepository struct {
	findByIDFn func(ctx context.Context, id uint) (*company.Company, error)
	isMemberFn func(ctx context.Context, employeeID string, companyID uint) (bool, error)
	roleForFn  func(ctx context.Context, employeeID string, companyID uint) (string, error)
}

func (f *fakeCompanyRepository) CreateWithOwner(ctx context.Context, c *company.Company, ownerRole string) error {
	return nil
}

func (f *fakeCompanyRepository) FindByID(ctx context.Context, id uint) (*company.Company, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &company.Company{ID: id, Name: "Acme"}, nil
}

func (f *fakeCompanyRepository) ListForEmployee(ctx context.Context, employeeID string) ([]company.Company, error) {
	return nil, nil
}

func (f *fakeCompanyRepository) IsMember(ctx context.Context, employeeID string, companyID uint) (bool, error) {
	if f.isMemberFn != nil {
		return f.isMemberFn(ctx, employeeID, companyID)
	}
	return false, nil
}

func (f *fakeCompanyRepository) RoleFor(ctx context.Context, employeeID string, companyID uint) (string, error) {
	if f.roleForFn != nil {
		return f.roleForFn(ctx, employeeID, companyID)
	}
	return "", nil
}

func setupService(t *testing.T) (*fakeJoinRequestRepository, *fakeCompanyRepository, joinrequest.Service) {
	t.Helper()
	repo := &fakeJoinRequestRepository{}
	companies := &fakeCompanyRepository{}
	svc := joinrequest.NewService(repo, companies, zap.NewNop())
	return repo, companies, svc
}

var (
	applicant = domain.Principal{EmployeeID: "emp-applicant", Email: "applicant@example.com"}
	theOwner  = domain.Principal{EmployeeID: "emp-owner", Email: "owner@example.com"}
)

func TestJoinRequestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending application", func(t *testing.T) {
		repo, _, svc := setupService(t)

		repo.createFn = func(ctx context.Context, jr *joinrequest.JoinRequest) error {
			jr.ID = 9
			return nil
		}

		resp, err := svc.Create(ctx, applicant, joinrequest.CreateJoinRequestRequest{CompanyID: 3})

		assert.NoError(t, err)
		assert.Equal(t, uint(9), resp.ID)
		assert.Equal(t, domain.StatusPending, resp.Status)
		assert.Nil(t, resp.AcceptanceDate)
	})

	t.Run("second application for the same company conflicts", func(t *testing.T) {
		repo, _, svc := setupService(t)
		repo.createFn = func(ctx context.Context, jr *joinrequest.JoinRequest) error {
			return joinrequesterrors.ErrDuplicateJoinRequest
		}

		_, err := svc.Create(ctx, applicant, joinrequest.CreateJoinRequestRequest{CompanyID: 3})

		assert.ErrorIs(t, err, joinrequesterrors.ErrDuplicateJoinRequest)
	})

	t.Run("existing members cannot apply", func(t *testing.T) {
		_, companies, svc := setupService(t)
		companies.isMemberFn = func(ctx context.Context, employeeID string, companyID uint) (bool, error) {
			return true, nil
		}

		_, err := svc.Create(ctx, applicant, joinrequest.CreateJoinRequestRequest{CompanyID: 3})

		assert.ErrorIs(t, err, joinrequesterrors.ErrAlreadyMember)
	})

	t.Run("unknown company is not found", func(t *testing.T) {
		_, companies, svc := setupService(t)
		companies.findByIDFn = func(ctx context.Context, id uint) (*company.Company, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := svc.Create(ctx, applicant, joinrequest.CreateJoinRequestRequest{CompanyID: 404})

		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})
}

func TestJoinRequestService_Approve(t *testing.T) {
	ctx := context.Background()

	pending := func() *joinrequest.JoinRequest {
		return &joinrequest.JoinRequest{
			ID:         9,
			Status:     domain.StatusPending,
			CompanyID:  3,
			EmployeeID: applicant.EmployeeID,
		}
	}

	t.Run("stamps the acceptance and grants the User membership", func(t *testing.T) {
		repo, companies, svc := setupService(t)
		companies.roleForFn = func(ctx context.Context, employeeID string, companyID uint) (string, error) {
			return rbac.RoleOwner, nil
		}
		repo.findByIDFn = func(ctx context.Context, id uint) (*joinrequest.JoinRequest, error) {
			return pending(), nil
		}

		var gotMembership company.RoleInCompany
		var gotLedger approval.Approval
		var gotEvent kafka.OutboxEvent
		repo.approveWithMembershipFn = func(ctx context.Context, jr *joinrequest.JoinRequest, membership company.RoleInCompany, ledger approval.Approval, event kafka.OutboxEvent) (bool, error) {
			gotMembership = membership
			gotLedger = ledger
			gotEvent = event
			now := jr.CreatedAt
			jr.Status = domain.StatusApproved
			jr.AcceptanceDate = &now
			return true, nil
		}

		resp, err := svc.Approve(ctx, theOwner, 9)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, resp.Status)
		assert.NotNil(t, resp.AcceptanceDate)

		assert.Equal(t, rbac.RoleUser, gotMembership.Name)
		assert.Equal(t, applicant.EmployeeID, gotMembership.EmployeeID)
		assert.Equal(t, uint(3), gotMembership.CompanyID)

		assert.Equal(t, domain.StatusApproved, gotLedger.Status)
		assert.Equal(t, theOwner.Email, gotLedger.ApprovedBy)
		assert.Equal(t, uint(9), *gotLedger.JoinRequestID)
		assert.Nil(t, gotLedger.RequestID)

		assert.Equal(t, events.MemberJoinedTopic, gotEvent.Topic)
		var payload events.MemberJoinedEvent
		assert.NoError(t, json.Unmarshal(gotEvent.Payload, &payload))
		assert.Equal(t, uint(9), payload.JoinRequestID)
		assert.Equal(t, applicant.EmployeeID, payload.EmployeeID)
	})

	t.Run("non-owner may not decide", func(t *testing.T) {
		repo, companies, svc := setupService(t)
		repo.findByIDFn = func(ctx context.Context, id uint) (*joinrequest.JoinRequest, error) {
			return pending(), nil
		}
		companies.roleForFn = func(ctx context.Context, employeeID string, companyID uint) (string, error) {
			return rbac.RoleUser, nil
		}

		_, err := svc.Approve(ctx, applicant, 9)

		assert.ErrorIs(t, err, companyerrors.ErrNotCompanyOwner)
	})

	t.Run("already decided application conflicts", func(t *testing.T) {
		repo, companies, svc := setupService(t)
		companies.roleForFn = func(ctx context.Context, employeeID string, companyID uint) (string, error) {
			return rbac.RoleOwner, nil
		}
		repo.findByIDFn = func(ctx context.Context, id uint) (*joinrequest.JoinRequest, error) {
			jr := pending()
			jr.Status = domain.StatusRejected
			return jr, nil
		}
		repo.approveWithMembershipFn = func(ctx context.Context, jr *joinrequest.JoinRequest, membership company.RoleInCompany, ledger approval.Approval, event kafka.OutboxEvent) (bool, error) {
			return false, nil
		}

		_, err := svc.Approve(ctx, theOwner, 9)

		assert.ErrorIs(t, err, joinrequesterrors.ErrJoinRequestNotPending)
	})

	t.Run("missing application is not found", func(t *testing.T) {
		_, companies, svc := setupService(t)
		companies.roleForFn = func(ctx context.Context, employeeID string, companyID uint) (string, error) {
			return rbac.RoleOwner, nil
		}

		_, err := svc.Approve(ctx, theOwner, 404)

		assert.ErrorIs(t, err, joinrequesterrors.ErrJoinRequestNotFound)
	})
}

func TestJoinRequestService_Reject(t *testing.T) {
	ctx := context.Background()

	t.Run("writes the ledger row without a membership", func(t *testing.T) {
		repo, companies, svc := setupService(t)
		companies.roleForFn = func(ctx context.Context, employeeID string, companyID uint) (string, error) {
			return rbac.RoleOwner, nil
		}
		repo.findByIDFn = func(ctx context.Context, id uint) (*joinrequest.JoinRequest, error) {
			return &joinrequest.JoinRequest{ID: 9, Status: domain.StatusPending, CompanyID: 3, EmployeeID: applicant.EmployeeID}, nil
		}

		var gotLedger approval.Approval
		repo.rejectWithApprovalFn = func(ctx context.Context, jr *joinrequest.JoinRequest, ledger approval.Approval) (bool, error) {
			gotLedger = ledger
			jr.Status = domain.StatusRejected
			return true, nil
		}

		resp, err := svc.Reject(ctx, theOwner, 9)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusRejected, resp.Status)
		assert.Nil(t, resp.AcceptanceDate)
		assert.Equal(t, domain.StatusRejected, gotLedger.Status)
		assert.Equal(t, uint(9), *gotLedger.JoinRequestID)
	})
}

func TestJoinRequestService_Listing(t *testing.T) {
	ctx := context.Background()

	t.Run("pending queue is owner only", func(t *testing.T) {
		_, companies, svc := setupService(t)
		companies.roleForFn = func(ctx context.Context, employeeID string, companyID uint) (string, error) {
			return rbac.RoleUser, nil
		}

		_, err := svc.ListPendingByCompany(ctx, applicant, 3)

		assert.ErrorIs(t, err, companyerrors.ErrNotCompanyOwner)
	})

	t.Run("own applications need no role", func(t *testing.T) {
		repo, _, svc := setupService(t)
		repo.listByEmployeeAndCompany = func(ctx context.Context, employeeID string, companyID uint) ([]joinrequest.JoinRequest, error) {
			assert.Equal(t, applicant.EmployeeID, employeeID)
			return []joinrequest.JoinRequest{{ID: 1}, {ID: 2}}, nil
		}

		resp, err := svc.ListMineByCompany(ctx, applicant, 3)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
	})
}
