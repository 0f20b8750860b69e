package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrDuplicateCode
	ErrInsufficientStock
	ErrInvalidMovementStatus
	ErrConcurrencyConflict
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:               "success",
	ErrInternal:              "error internal",
	ErrNotFound:              "data not found",
	ErrInvalidRequest:        "invalid request",
	ErrUnauthorize:           "unauthorize request",
	ErrDuplicateCode:         "code already exists",
	ErrInsufficientStock:     "insufficient stock",
	ErrInvalidMovementStatus: "movement is not in pending status",
	ErrConcurrencyConflict:   "concurrent update conflict, please retry",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:               http.StatusOK,
	ErrInternal:              http.StatusInternalServerError,
	ErrNotFound:              http.StatusNotFound,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrUnauthorize:           http.StatusUnauthorized,
	ErrDuplicateCode:         http.StatusConflict,
	ErrInsufficientStock:     http.StatusConflict,
	ErrInvalidMovementStatus: http.StatusConflict,
	ErrConcurrencyConflict:   http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:               "0000",
	ErrInternal:              "0001",
	ErrNotFound:              "0002",
	ErrInvalidRequest:        "0003",
	ErrUnauthorize:           "0004",
	ErrDuplicateCode:         "0005",
	ErrInsufficientStock:     "0006",
	ErrInvalidMovementStatus: "0007",
	ErrConcurrencyConflict:   "0008",
}
