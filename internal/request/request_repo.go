package request

import (
	"context"

	"github.com/RndsK/BMA/internal/approval"
	"github.com/RndsK/BMA/internal/domain"
	"github.com/RndsK/BMA/internal/messaging/kafka"
	"github.com/RndsK/BMA/internal/signoff"
	"github.com/RndsK/BMA/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=request_repo.go -destination=mock/request_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, r *Request) error
	CreateWithParticipants(ctx context.Context, r *Request, participantIDs []string) error
	FindByID(ctx context.Context, id uint) (*Request, error)
	UpdateStatusWithApproval(ctx context.Context, r *Request, to string, ledger approval.Approval, event kafka.OutboxEvent) (bool, error)
	UpdateStatusIfPending(ctx context.Context, r *Request, to string) (bool, error)
	FindPendingPaged(ctx context.Context, companyID uint, search string, page, size int) ([]Request, int64, error)
	ListByKindForEmployee(ctx context.Context, kind string, employeeID string, companyID uint) ([]Request, error)
	ListByKindForCompany(ctx context.Context, kind string, companyID uint) ([]Request, error)
}

type repository struct {
	db           *gorm.DB
	approvals    approval.Repository
	participants signoff.Repository
	outbox       kafka.OutboxRepository
}

func NewRepository(db *gorm.DB, approvals approval.Repository, participants signoff.Repository, outbox kafka.OutboxRepository) Repository {
	return &repository{db: db, approvals: approvals, participants: participants, outbox: outbox}
}

func (r *repository) Create(ctx context.Context, req *Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

// CreateWithParticipants inserts the request and its sign-off
// participant rows in one transaction, so the denormalized email list
// on the row and the participant rows cannot drift at creation.
func (r *repository) CreateWithParticipants(ctx context.Context, req *Request, participantIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(req).Error; err != nil {
			return err
		}
		rows := signoff.BuildParticipants(req.ID, participantIDs)
		return r.participants.WithTx(tx).CreateAll(ctx, rows)
	})
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Request, error) {
	var req Request
	err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// UpdateStatusWithApproval performs a decision atomically: the status
// flip is conditioned on Pending, and the ledger row plus the outbox
// event commit with it. Returns false when the guard matched no row;
// nothing is written then.
func (r *repository) UpdateStatusWithApproval(ctx context.Context, req *Request, to string, ledger approval.Approval, event kafka.OutboxEvent) (bool, error) {
	decided := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Request{}).
			Where("id = ?", req.ID).
			Where("status = ?", domain.StatusPending).
			Update("status", to)
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
		return r.outbox.WithTx(tx).Create(ctx, event)
	})
	if err != nil {
		return false, err
	}

	if decided {
		req.Status = to
	}
	return decided, nil
}

// UpdateStatusIfPending is the cancellation path: same Pending guard,
// no ledger row and no event.
func (r *repository) UpdateStatusIfPending(ctx context.Context, req *Request, to string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&Request{}).
		Where("id = ?", req.ID).
		Where("status = ?", domain.StatusPending).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	req.Status = to
	return true, nil
}

// FindPendingPaged returns one page of a company's pending requests.
// The search term matches the kind discriminator only; the total is
// counted after the status and kind filters, before paging.
func (r *repository) FindPendingPaged(ctx context.Context, companyID uint, search string, page, size int) ([]Request, int64, error) {
	q := r.db.WithContext(ctx).Model(&Request{}).
		Scopes(tenant.Scope(companyID)).
		Where("status = ?", domain.StatusPending)
	if search != "" {
		q = q.Where("kind ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []Request
	err := q.Order("id").
		Offset((page - 1) * size).
		Limit(size).
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (r *repository) ListByKindForEmployee(ctx context.Context, kind string, employeeID string, companyID uint) ([]Request, error) {
	var requests []Request
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("kind = ?", kind).
		Where("employee_id = ?", employeeID).
		Order("id").
		Find(&requests).Error
	return requests, err
}

func (r *repository) ListByKindForCompany(ctx context.Context, kind string, companyID uint) ([]Request, error) {
	var requests []Request
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("kind = ?", kind).
		Order("id").
		Find(&requests).Error
	return requests, err
}
