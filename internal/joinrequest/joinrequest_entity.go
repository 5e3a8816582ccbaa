package joinrequest

import (
	"time"
)

// JoinRequest is an employee's application to join a company. The
// unique index keeps the ledger at one application per pair; renewed
// attempts surface as a conflict.
type JoinRequest struct {
	ID             uint       `gorm:"primaryKey"`
	Status         string     `gorm:"type:varchar(20);not null;default:'Pending'"`
	AcceptanceDate *time.Time `gorm:""`
	CompanyID      uint       `gorm:"not null;uniqueIndex:idx_join_requests_company_employee"`
	EmployeeID     string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_join_requests_company_employee"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
