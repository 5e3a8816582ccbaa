package kafka

import (
	"time"
)

// OutboxEventRow is the migration shape of the outbox table; the
// repository itself speaks raw SQL against it.
type OutboxEventRow struct {
	ID            string `gorm:"type:uuid;primaryKey"`
	RequestID     string `gorm:"type:varchar(64)"`
	AggregateType string `gorm:"type:varchar(40);not null"`
	AggregateID   string `gorm:"type:varchar(64);not null"`
	EventType     string `gorm:"type:varchar(60);not null"`
	Topic         string `gorm:"type:varchar(120);not null"`
	Payload       []byte `gorm:"type:jsonb;not null"`
	Status        string `gorm:"type:varchar(20);not null;default:'pending';index"`
	RetryCount    int    `gorm:"not null;default:0"`
	NextRetryAt   *time.Time
	ProcessedAt   *time.Time
	ErrorMessage  *string `gorm:"type:varchar(500)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (OutboxEventRow) TableName() string { return "outbox_events" }
