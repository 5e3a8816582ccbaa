package approvalerrors

import (
	"net/http"

	"github.com/RndsK/BMA/internal/shared/apperror"
)

var (
	ErrNotCompanyOwner = apperror.New(
		apperror.CodeForbidden,
		"only the company owner may view the company approval history",
		http.StatusForbidden,
	)
)
