package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden           = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrOutOfStock          = NewDomainError("OUT_OF_STOCK", "Product is out of stock")
	ErrInvalidCoordinate   = NewDomainError("INVALID_COORDINATE", "Coordinate is outside the valid range")
	ErrServiceUnavailable  = NewDomainError("SERVICE_UNAVAILABLE", "A backing service is unavailable")
	ErrTimeout             = NewDomainError("TIMEOUT", "Operation timed out")
)

// PartialFailureError reports an operation that succeeded for some units of
// work before failing. Succeeded carries the identifiers of the units that
// were completed and will not be rolled back.
type PartialFailureError struct {
	DomainError
	Succeeded []string `json:"succeeded"`
	Cause     error    `json:"-"`
}

func (e *PartialFailureError) Unwrap() error {
	return e.Cause
}

// NewPartialFailureError wraps cause together with the ids of the units of
// work that had already completed when the failure occurred.
func NewPartialFailureError(message string, succeeded []string, cause error) *PartialFailureError {
	return &PartialFailureError{
		DomainError: DomainError{Code: "PARTIAL_FAILURE", Message: message},
		Succeeded:   succeeded,
		Cause:       cause,
	}
}
