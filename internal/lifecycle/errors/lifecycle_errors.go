package lifecycleerrors

import (
	"net/http"
	"strings"

	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/shared/apperror"
)

var (
	ErrInvalidEmail = apperror.New(
		apperror.CodeInvalidEmail,
		"invalid email",
		http.StatusBadRequest,
	)
	ErrBatchTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"Too many onboarding requests in one batch",
		http.StatusBadRequest,
	)
)

// MissingFields reports absent onboarding keys; fields must already be sorted.
func MissingFields(fields []string) *apperror.AppError {
	return apperror.New(
		apperror.CodeMissingFields,
		"missing fields: "+strings.Join(fields, ", "),
		http.StatusBadRequest,
	).WithDetails(fields)
}
