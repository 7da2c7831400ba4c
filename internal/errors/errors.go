package errors

import (
	stderrors "errors"
	"net/http"
)

// DomainError is a sentinel error carrying a stable code and the HTTP status it maps to.
type DomainError struct {
	Code    string
	Message string
	Status  int
}

func (e *DomainError) Error() string {
	return e.Message
}

// As finds the first DomainError in err's chain.
func As(err error) (*DomainError, bool) {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de, true
	}
	return nil, false
}

var (
	ErrInvalidID = &DomainError{
		Code:    "INVALID_ID",
		Message: "invalid identifier",
		Status:  http.StatusBadRequest,
	}
	ErrStatsUnavailable = &DomainError{
		Code:    "STATS_UNAVAILABLE",
		Message: "statistics are unavailable",
		Status:  http.StatusServiceUnavailable,
	}
)
