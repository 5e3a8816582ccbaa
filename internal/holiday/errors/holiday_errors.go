package holidayerrors

import (
	"net/http"

	"github.com/RndsK/BMA/internal/shared/apperror"
)

var (
	ErrMissingAccrualAnchor = apperror.New(
		apperror.CodeInvalidInput,
		"employee has no accepted join request for this company",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must be between 1 and 12",
		http.StatusBadRequest,
	)
	ErrInvalidCountryCode = apperror.New(
		apperror.CodeInvalidInput,
		"country code must be two letters",
		http.StatusBadRequest,
	)
)
