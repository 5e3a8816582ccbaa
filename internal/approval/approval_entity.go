package approval

import (
	"time"
)

// Approval is one row in the append-only decision ledger. Exactly one
// of RequestID or JoinRequestID is set, depending on what was decided.
// Rows are never updated or deleted after insert.
type Approval struct {
	ID            uint   `gorm:"primaryKey"`
	Status        string `gorm:"type:varchar(20);not null"`
	ApprovedBy    string `gorm:"type:varchar(120);not null;index"`
	RequestID     *uint  `gorm:"index"`
	JoinRequestID *uint  `gorm:"index"`
	CreatedAt     time.Time
}
