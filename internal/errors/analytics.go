package errors

import "net/http"

var (
	ErrInvalidPeriod = &DomainError{
		Code:    "INVALID_PERIOD",
		Message: "period must be one of week, month, year",
		Status:  http.StatusBadRequest,
	}
)
