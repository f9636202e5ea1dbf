package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput  = "INVALID_INPUT"
	CodeMissingFields = "MISSING_FIELDS"
	CodeInvalidEmail  = "INVALID_EMAIL"
	CodeNotFound      = "NOT_FOUND"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
