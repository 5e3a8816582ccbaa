package joinrequest

import (
	"time"
)

type CreateJoinRequestRequest struct {
	CompanyID uint `json:"companyId" binding:"required"`
}

type JoinRequestResponse struct {
	ID             uint       `json:"id"`
	Status         string     `json:"status"`
	AcceptanceDate *time.Time `json:"acceptanceDate,omitempty"`
	CompanyID      uint       `json:"companyId"`
	EmployeeID     string     `json:"employeeId"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func MapToResponse(jr JoinRequest) JoinRequestResponse {
	return JoinRequestResponse{
		ID:             jr.ID,
		Status:         jr.Status,
		AcceptanceDate: jr.AcceptanceDate,
		CompanyID:      jr.CompanyID,
		EmployeeID:     jr.EmployeeID,
		CreatedAt:      jr.CreatedAt,
	}
}
