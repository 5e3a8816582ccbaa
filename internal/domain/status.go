package domain

// Workflow statuses shared by requests and join requests. Approval
// ledger rows reuse the decision subset.
const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
	StatusCancelled = "Cancelled"
)

// Sign-off participant states.
const (
	SignOffSigned    = "Signed"
	SignOffNotSigned = "Not Signed"
)
