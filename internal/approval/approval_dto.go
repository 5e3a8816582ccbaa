package approval

import (
	"time"
)

type ApprovalResponse struct {
	ID            uint      `json:"id"`
	Status        string    `json:"status"`
	ApprovedBy    string    `json:"approvedBy"`
	RequestID     *uint     `json:"requestId,omitempty"`
	JoinRequestID *uint     `json:"joinRequestId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func MapToResponse(a Approval) ApprovalResponse {
	return ApprovalResponse{
		ID:            a.ID,
		Status:        a.Status,
		ApprovedBy:    a.ApprovedBy,
		RequestID:     a.RequestID,
		JoinRequestID: a.JoinRequestID,
		CreatedAt:     a.CreatedAt,
	}
}
