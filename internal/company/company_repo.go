package company

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	CreateWithOwner(ctx context.Context, c *Company, ownerRole string) error
	FindByID(ctx context.Context, id uint) (*Company, error)
	ListForEmployee(ctx context.Context, employeeID string) ([]Company, error)
	IsMember(ctx context.Context, employeeID string, companyID uint) (bool, error)
	RoleFor(ctx context.Context, employeeID string, companyID uint) (string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateWithOwner inserts the company and the creator's Owner
// membership as one unit.
func (r *repository) CreateWithOwner(ctx context.Context, c *Company, ownerRole string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}

		membership := RoleInCompany{
			Name:       ownerRole,
			EmployeeID: c.OwnerID,
			CompanyID:  c.ID,
		}
		return tx.Create(&membership).Error
	})
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Company, error) {
	var c Company
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) ListForEmployee(ctx context.Context, employeeID string) ([]Company, error) {
	var companies []Company
	err := r.db.WithContext(ctx).
		Joins("JOIN role_in_companies ON role_in_companies.company_id = companies.id").
		Where("role_in_companies.employee_id = ?", employeeID).
		Order("companies.id").
		Find(&companies).Error
	return companies, err
}

func (r *repository) IsMember(ctx context.Context, employeeID string, companyID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&RoleInCompany{}).
		Where("employee_id = ?", employeeID).
		Where("company_id = ?", companyID).
		Count(&count).Error
	return count > 0, err
}

// RoleFor returns the membership role name, or "" when the employee is
// not a member. Satisfies rbac.RoleResolver.
func (r *repository) RoleFor(ctx context.Context, employeeID string, companyID uint) (string, error) {
	var membership RoleInCompany
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("company_id = ?", companyID).
		First(&membership).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil
		}
		return "", err
	}
	return membership.Name, nil
}
