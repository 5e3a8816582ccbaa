package events

import "time"

const RequestDecidedTopic = "bma.request.decision.v1"

// RequestDecidedEvent is emitted whenever a company owner approves or
// rejects a request. Written through the transactional outbox.
type RequestDecidedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  uint      `json:"request_id"`
	Reference  string    `json:"reference"`
	Kind       string    `json:"kind"`
	CompanyID  uint      `json:"company_id"`
	Status     string    `json:"status"`
	DecidedBy  string    `json:"decided_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
