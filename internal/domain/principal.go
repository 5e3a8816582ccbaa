package domain

// Principal is the authenticated employee acting on a request. It is
// extracted once at the HTTP boundary and passed explicitly; services
// never reach into ambient auth state.
type Principal struct {
	EmployeeID string
	Email      string
}
