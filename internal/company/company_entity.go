package company

import (
	"time"
)

type Company struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(120);not null"`
	OwnerID   string `gorm:"type:varchar(64);not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoleInCompany is the membership row between an employee and a
// company, carrying the role label. One row per (employee, company) is
// expected; the join-request layer is what keeps it that way.
type RoleInCompany struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"type:varchar(30);not null"`
	EmployeeID string `gorm:"type:varchar(64);not null;index:idx_memberships_employee_company"`
	CompanyID  uint   `gorm:"not null;index:idx_memberships_employee_company"`
	CreatedAt  time.Time
}
