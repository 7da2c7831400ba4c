package errors

import "net/http"

var (
	ErrOrderNotFound = &DomainError{
		Code:    "ORDER_NOT_FOUND",
		Message: "order not found",
		Status:  http.StatusNotFound,
	}
	ErrEmptyStatus = &DomainError{
		Code:    "EMPTY_STATUS",
		Message: "status is required",
		Status:  http.StatusBadRequest,
	}
	ErrStatusRejected = &DomainError{
		Code:    "STATUS_REJECTED",
		Message: "order status rejected by store",
		Status:  http.StatusUnprocessableEntity,
	}
)
