package requesterrors

import (
	"net/http"

	"github.com/RndsK/BMA/internal/shared/apperror"
)

var (
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"request not found",
		http.StatusNotFound,
	)
	ErrNotRequestSubmitter = apperror.New(
		apperror.CodeForbidden,
		"only the submitting employee may cancel a request",
		http.StatusForbidden,
	)
	ErrRequestNotPending = apperror.New(
		apperror.CodeInvalidState,
		"request has already been decided or cancelled",
		http.StatusConflict,
	)
	ErrInvalidPagination = apperror.New(
		apperror.CodeInvalidInput,
		"page and size must be positive",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"end date must not be before start date",
		http.StatusBadRequest,
	)
	ErrInvalidLength = apperror.New(
		apperror.CodeInvalidInput,
		"overtime length must be between 1 and 7 days",
		http.StatusBadRequest,
	)
	ErrUnsupportedVariant = apperror.New(
		apperror.CodeInternalError,
		"unsupported request kind",
		http.StatusInternalServerError,
	)
)
