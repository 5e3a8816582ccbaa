package company

type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required,min=2,max=120"`
}

type CompanyResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	OwnerID string `json:"owner_id"`
	Role    string `json:"role,omitempty"`
}
