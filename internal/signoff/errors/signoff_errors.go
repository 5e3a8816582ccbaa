package signofferrors

import (
	"fmt"
	"net/http"

	"github.com/RndsK/BMA/internal/shared/apperror"
)

// ErrParticipantNotFound names the first email that failed to resolve.
func ErrParticipantNotFound(email string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("participant %s is not a registered employee", email),
		http.StatusBadRequest,
	)
}
