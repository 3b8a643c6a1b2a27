package httperr

import "errors"

// Business error codes shared by the stores, use cases and handlers.
const (
	CodeProductNotFound     = "product_not_found"
	CodeProductUnavailable  = "product_unavailable"
	CodeProductIDTaken      = "product_id_taken"
	CodeReservationNotFound = "reservation_not_found"
	CodeInvalidStatus       = "invalid_status"
	CodeInvalidTransition   = "invalid_transition"
	CodeNumberExhausted     = "reservation_number_exhausted"
	CodeInvalidCredentials  = "invalid_credentials"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// CodeOf returns the business code carried by err, or "" when err is not a
// business error.
func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
