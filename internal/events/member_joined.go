package events

import "time"

const MemberJoinedTopic = "bma.company.member_joined.v1"

// MemberJoinedEvent is emitted when a join request is approved and the
// applicant receives a membership.
type MemberJoinedEvent struct {
	EventType     string    `json:"event_type"`
	JoinRequestID uint      `json:"join_request_id"`
	CompanyID     uint      `json:"company_id"`
	EmployeeID    string    `json:"employee_id"`
	Role          string    `json:"role"`
	OccurredAt    time.Time `json:"occurred_at"`
}
