package joinrequesterrors

import (
	"errors"
	"net/http"

	"github.com/RndsK/BMA/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrJoinRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"join request not found",
		http.StatusNotFound,
	)
	ErrDuplicateJoinRequest = apperror.New(
		apperror.CodeConflict,
		"a join request for this company already exists",
		http.StatusConflict,
	)
	ErrJoinRequestNotPending = apperror.New(
		apperror.CodeInvalidState,
		"join request has already been decided",
		http.StatusConflict,
	)
	ErrAlreadyMember = apperror.New(
		apperror.CodeConflict,
		"employee is already a member of this company",
		http.StatusConflict,
	)
)

// MapCreateError translates the unique (company, employee) violation
// into the duplicate sentinel; anything else passes through.
func MapCreateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateJoinRequest
	}
	return err
}
