package approval

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=approval_repo.go -destination=mock/approval_repo_mock.go -package=mock

// Repository owns the approvals ledger. WithTx binds the repository to
// an open transaction so a decision and its ledger row commit together.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, a *Approval) error
	ListByEmployee(ctx context.Context, employeeID string) ([]Approval, error)
	ListByCompany(ctx context.Context, companyID uint) ([]Approval, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, a *Approval) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// ListByEmployee returns decisions on anything the employee submitted,
// requests and join requests alike.
func (r *repository) ListByEmployee(ctx context.Context, employeeID string) ([]Approval, error) {
	var approvals []Approval
	err := r.db.WithContext(ctx).
		Joins("LEFT JOIN requests ON requests.id = approvals.request_id").
		Joins("LEFT JOIN join_requests ON join_requests.id = approvals.join_request_id").
		Where("requests.employee_id = ? OR join_requests.employee_id = ?", employeeID, employeeID).
		Order("approvals.id").
		Find(&approvals).Error
	return approvals, err
}

func (r *repository) ListByCompany(ctx context.Context, companyID uint) ([]Approval, error) {
	var approvals []Approval
	err := r.db.WithContext(ctx).
		Joins("LEFT JOIN requests ON requests.id = approvals.request_id").
		Joins("LEFT JOIN join_requests ON join_requests.id = approvals.join_request_id").
		Where("requests.company_id = ? OR join_requests.company_id = ?", companyID, companyID).
		Order("approvals.id").
		Find(&approvals).Error
	return approvals, err
}
