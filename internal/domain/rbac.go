package domain

// EnforceRequest carries one RBAC question: may this employee perform
// this action on this resource within this company.
type EnforceRequest struct {
	EmployeeID string
	CompanyID  string
	Resource   string
	Action     string
}
