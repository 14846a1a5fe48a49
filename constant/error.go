package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrInvalidPassword
	ErrInvalidPhone
	ErrOTPExpired
	ErrOTPMismatch
	ErrUnverified
	ErrInvalidState
	ErrConflict
	ErrDeliveryFailure
	ErrTooManyRequests
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:         "success",
	ErrInternal:        "error internal",
	ErrNotFound:        "data not found",
	ErrInvalidRequest:  "invalid request",
	ErrUnauthorize:     "unauthorize request",
	ErrForbidden:       "you are not allowed to access this route",
	ErrInvalidPassword: "email or password invalid",
	ErrInvalidPhone:    "invalid phone number format",
	ErrOTPExpired:      "otp code has expired",
	ErrOTPMismatch:     "invalid otp code",
	ErrUnverified:      "contact not verified",
	ErrInvalidState:    "action not allowed for current service status",
	ErrConflict:        "conflicting data, please retry",
	ErrDeliveryFailure: "failed to deliver notification",
	ErrTooManyRequests: "too many requests, please wait before retrying",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:         http.StatusOK,
	ErrInternal:        http.StatusInternalServerError,
	ErrNotFound:        http.StatusNotFound,
	ErrInvalidRequest:  http.StatusBadRequest,
	ErrUnauthorize:     http.StatusUnauthorized,
	ErrForbidden:       http.StatusForbidden,
	ErrInvalidPassword: http.StatusBadRequest,
	ErrInvalidPhone:    http.StatusBadRequest,
	ErrOTPExpired:      http.StatusBadRequest,
	ErrOTPMismatch:     http.StatusBadRequest,
	ErrUnverified:      http.StatusForbidden,
	ErrInvalidState:    http.StatusConflict,
	ErrConflict:        http.StatusConflict,
	ErrDeliveryFailure: http.StatusBadGateway,
	ErrTooManyRequests: http.StatusTooManyRequests,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:         "0000",
	ErrInternal:        "0001",
	ErrNotFound:        "0002",
	ErrInvalidRequest:  "0003",
	ErrUnauthorize:     "0004",
	ErrForbidden:       "0005",
	ErrInvalidPassword: "0006",
	ErrInvalidPhone:    "0007",
	ErrOTPExpired:      "0008",
	ErrOTPMismatch:     "0009",
	ErrUnverified:      "0010",
	ErrInvalidState:    "0011",
	ErrConflict:        "0012",
	ErrDeliveryFailure: "0013",
	ErrTooManyRequests: "0014",
}
