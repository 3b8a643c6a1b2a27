package validators

import (
	"regexp"
	"strings"

	"github.com/BruksfildServices01/store-reservations/internal/httperr"
	"github.com/BruksfildServices01/store-reservations/internal/models"
)

const (
	CodeFullNameRequired = "full_name_required"
	CodePhoneRequired    = "phone_required"
	CodeAddressRequired  = "address_required"
	CodeEmailRequired    = "email_required"
	CodeInvalidEmail     = "invalid_email"
	CodeInvalidSize      = "invalid_size"
	CodeInvalidColor     = "invalid_color"
)

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmailShapeValid checks the local@domain.tld shape only; no lookup is made.
func IsEmailShapeValid(email string) bool {
	return emailShape.MatchString(strings.TrimSpace(email))
}

type ReservationInput struct {
	FullName      string
	Phone         string
	Address       string
	Email         string
	SelectedSize  string
	SelectedColor string
}

// ValidateReservation returns the first problem found, in form order.
// Size and colour are optional but must be offered by the product when set.
func ValidateReservation(in ReservationInput, product models.Product) error {
	switch {
	case strings.TrimSpace(in.FullName) == "":
		return httperr.ErrBusiness(CodeFullNameRequired)
	case strings.TrimSpace(in.Phone) == "":
		return httperr.ErrBusiness(CodePhoneRequired)
	case strings.TrimSpace(in.Address) == "":
		return httperr.ErrBusiness(CodeAddressRequired)
	case strings.TrimSpace(in.Email) == "":
		return httperr.ErrBusiness(CodeEmailRequired)
	case !IsEmailShapeValid(in.Email):
		return httperr.ErrBusiness(CodeInvalidEmail)
	case in.SelectedSize != "" && !product.HasSize(in.SelectedSize):
		return httperr.ErrBusiness(CodeInvalidSize)
	case in.SelectedColor != "" && !product.HasColor(in.SelectedColor):
		return httperr.ErrBusiness(CodeInvalidColor)
	}
	return nil
}
