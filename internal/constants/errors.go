package constants

// Error codes grouped by the failure taxonomy: fetch failures are retryable
// load errors, validation failures block the write, mutation failures leave
// local state untouched.
const (
	ErrCodeFetchFailed      = "FETCH_FAILED"
	ErrCodeFlightNotFound   = "FLIGHT_NOT_FOUND"
	ErrCodeTargetNotFound   = "TARGET_NOT_FOUND"
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeMutationFailed   = "MUTATION_FAILED"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

var errorMessages = map[string]string{
	ErrCodeFetchFailed:      "Failed to load data from the backend. Previously loaded data is preserved.",
	ErrCodeFlightNotFound:   "Flight record not found",
	ErrCodeTargetNotFound:   "Route target not found",
	ErrCodeValidationFailed: "Input failed validation",
	ErrCodeMutationFailed:   "The change was rejected by the backend. No local state was modified.",
	ErrCodeUnauthorized:     "Not authorized for this operation",
	ErrCodeInternalError:    "Internal server error",
}

// GetErrorMessage returns the human readable message for an error code
func GetErrorMessage(code string) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return errorMessages[ErrCodeInternalError]
}

type APIStatus string

const (
	APIStatusOk    APIStatus = "success"
	APIStatusError APIStatus = "error"
)
