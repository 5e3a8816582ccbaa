package request

import (
	"time"

	"github.com/RndsK/BMA/internal/employee"

	"github.com/lib/pq"
)

// Request is the single wide row behind every request variant. The
// Kind discriminator decides which of the nullable columns are
// meaningful; MapToResponse is the only reader that switches on it.
// Rows are never deleted.
type Request struct {
	ID          uint   `gorm:"primaryKey"`
	Reference   string `gorm:"type:varchar(20);not null;index"`
	Kind        string `gorm:"type:varchar(30);not null;index"`
	Status      string `gorm:"type:varchar(20);not null;default:'Pending';index"`
	Description string `gorm:"type:text"`
	CompanyID   uint   `gorm:"not null;index"`
	EmployeeID  string `gorm:"type:varchar(64);not null;index"`

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID"`

	// Expenses
	Amount      *float64 `gorm:""`
	Currency    *string  `gorm:"type:varchar(3)"`
	ExpenseType *string  `gorm:"type:varchar(30)"`
	ProjectName *string  `gorm:"type:varchar(120)"`
	Attachment  *string  `gorm:"type:text"`

	// Holiday / overtime
	StartDate *time.Time `gorm:""`
	EndDate   *time.Time `gorm:""`
	Length    *int       `gorm:""`

	// Financial
	TransferType   *string `gorm:"type:varchar(30)"`
	RecurrenceType *string `gorm:"type:varchar(30)"`
	TransferFrom   *string `gorm:"type:varchar(120)"`
	TransferTo     *string `gorm:"type:varchar(120)"`

	// Financial / sign-off
	SupportingDocument *string        `gorm:"type:text"`
	SignOffEmails      pq.StringArray `gorm:"type:text[]"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
