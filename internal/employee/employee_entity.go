package employee

import (
	"time"
)

// Employee mirrors the directory row owned by the identity provider.
// IDs are opaque strings issued there; the engine only reads.
type Employee struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	FullName  string `gorm:"type:varchar(120);not null"`
	Email     string `gorm:"type:varchar(120);uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
