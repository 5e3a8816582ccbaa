package joinrequest

import (
	"context"
	"time"

	"github.com/RndsK/BMA/internal/approval"
	"github.com/RndsK/BMA/internal/company"
	"github.com/RndsK/BMA/internal/domain"
	joinrequesterrors "github.com/RndsK/BMA/internal/joinrequest/errors"
	"github.com/RndsK/BMA/internal/messaging/kafka"

	"gorm.io/gorm"
)

//go:generate mockgen -source=joinrequest_repo.go -destination=mock/joinrequest_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, jr *JoinRequest) error
	FindByID(ctx context.Context, id uint) (*JoinRequest, error)
	FindAcceptedForEmployee(ctx context.Context, employeeID string, companyID uint) (*JoinRequest, error)
	ListPendingByCompany(ctx context.Context, companyID uint) ([]JoinRequest, error)
	ListByEmployeeAndCompany(ctx context.Context, employeeID string, companyID uint) ([]JoinRequest, error)
	ApproveWithMembership(ctx context.Context, jr *JoinRequest, membership company.RoleInCompany, ledger approval.Approval, event kafka.OutboxEvent) (bool, error)
	RejectWithApproval(ctx context.Context, jr *JoinRequest, ledger approval.Approval) (bool, error)
}

type repository struct {
	db        *gorm.DB
	approvals approval.Repository
	outbox    kafka.OutboxRepository
}

func NewRepository(db *gorm.DB, approvals approval.Repository, outbox kafka.OutboxRepository) Repository {
	return &repository{db: db, approvals: approvals, outbox: outbox}
}

func (r *repository) Create(ctx context.Context, jr *JoinRequest) error {
	if err := r.db.WithContext(ctx).Create(jr).Error; err != nil {
		return joinrequesterrors.MapCreateError(err)
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, id uint) (*JoinRequest, error) {
	var jr JoinRequest
	err := r.db.WithContext(ctx).First(&jr, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &jr, nil
}

// FindAcceptedForEmployee returns the approved join request whose
// acceptance date anchors holiday accrual.
func (r *repository) FindAcceptedForEmployee(ctx context.Context, employeeID string, companyID uint) (*JoinRequest, error) {
	var jr JoinRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("company_id = ?", companyID).
		Where("status = ?", domain.StatusApproved).
		Order("acceptance_date").
		First(&jr).Error
	if err != nil {
		return nil, err
	}
	return &jr, nil
}

func (r *repository) ListPendingByCompany(ctx context.Context, companyID uint) ([]JoinRequest, error) {
	var requests []JoinRequest
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Where("status = ?", domain.StatusPending).
		Order("id").
		Find(&requests).Error
	return requests, err
}

func (r *repository) ListByEmployeeAndCompany(ctx context.Context, employeeID string, companyID uint) ([]JoinRequest, error) {
	var requests []JoinRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("company_id = ?", companyID).
		Order("id").
		Find(&requests).Error
	return requests, err
}

// ApproveWithMembership performs the whole acceptance in one
// transaction: the status flip is conditioned on Pending, the
// acceptance date is stamped, the ledger row, the User membership and
// the outbox event are inserted. Returns false when the request was
// already decided; nothing is written in that case.
func (r *repository) ApproveWithMembership(ctx context.Context, jr *JoinRequest, membership company.RoleInCompany, ledger approval.Approval, event kafka.OutboxEvent) (bool, error) {
	now := time.Now().UTC()
	decided := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&JoinRequest{}).
			Where("id = ?", jr.ID).
			Where("status = ?", domain.StatusPending).
			Updates(map[string]any{
				"status":          domain.StatusApproved,
				"acceptance_date": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		decided = true

		if err := r.approvals.WithTx(tx).Create(ctx, &ledger); err != nil {
			return err
		}
		if err := tx.Create(&membership).Error; err != nil {
			return err
		}
		return r.outbox.WithTx(tx).Create(ctx, event)
	})
	if err != nil {
		return false, err
	}

	if decided {
		jr.Status = domain.StatusApproved
		jr.AcceptanceDate = &now
	}
	return decided, nil
}

// RejectWithApproval flips the status to Rejected and writes the
// ledger row atomically, guarded on Pending the same way.
func (r *repository) RejectWithApproval(ctx context.Context, jr *JoinRequest, ledger approval.Approval) (bool, error) {
	decided := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&JoinRequest{}).
			Where("id = ?", jr.ID).
			Where("status = ?", domain.StatusPending).
			Update("status", domain.StatusRejected)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		decided = true

		return r.approvals.WithTx(tx).Create(ctx, &ledger)
	})
	if err != nil {
		return false, err
	}

	if decided {
		jr.Status = domain.StatusRejected
	}
	return decided, nil
}
