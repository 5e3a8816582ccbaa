package companyerrors

import (
	"net/http"

	"github.com/RndsK/BMA/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"company not found",
		http.StatusNotFound,
	)
	ErrNotCompanyOwner = apperror.New(
		apperror.CodeForbidden,
		"only the company owner may perform this action",
		http.StatusForbidden,
	)
	ErrNotCompanyMember = apperror.New(
		apperror.CodeForbidden,
		"employee does not belong to this company",
		http.StatusForbidden,
	)
)
