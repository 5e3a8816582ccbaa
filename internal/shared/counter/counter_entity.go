package counter

import (
	"time"
)

// CompanyCounter backs the per-company sequences. The unique index is
// what the UPSERT in GetNextValue conflicts on.
type CompanyCounter struct {
	ID          uint   `gorm:"primaryKey"`
	CompanyID   uint   `gorm:"not null;uniqueIndex:idx_company_counters_company_type"`
	CounterType string `gorm:"type:varchar(40);not null;uniqueIndex:idx_company_counters_company_type"`
	LastValue   int64  `gorm:"not null;default:0"`
	UpdatedAt   time.Time
}
