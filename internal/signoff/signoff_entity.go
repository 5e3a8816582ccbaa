package signoff

import (
	"time"
)

// SignOffParticipant tracks one employee's pending signature on a
// financial or sign-off request. Rows start as Not Signed; nothing in
// the workflow flips them yet.
type SignOffParticipant struct {
	ID         uint   `gorm:"primaryKey"`
	RequestID  uint   `gorm:"not null;index"`
	EmployeeID string `gorm:"type:varchar(64);not null;index"`
	Status     string `gorm:"type:varchar(20);not null;default:'Not Signed'"`
	CreatedAt  time.Time
}
