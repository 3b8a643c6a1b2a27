package validators

import (
	"strings"

	domain "github.com/BruksfildServices01/store-reservations/internal/domain/product"
	"github.com/BruksfildServices01/store-reservations/internal/httperr"
	"github.com/BruksfildServices01/store-reservations/internal/models"
)

const (
	CodeNameRequired    = "name_required"
	CodeInvalidPrice    = "invalid_price"
	CodeInvalidGender   = "invalid_gender"
	CodeInvalidCategory = "invalid_category"
	CodeSizesRequired   = "sizes_required"
	CodeColorsRequired  = "colors_required"
)

// CleanOptions trims every entry and drops the empty ones.
func CleanOptions(list []string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func ValidateProduct(p models.Product) error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return httperr.ErrBusiness(CodeNameRequired)
	case p.Price.IsNegative():
		return httperr.ErrBusiness(CodeInvalidPrice)
	case !p.Gender.Valid():
		return httperr.ErrBusiness(CodeInvalidGender)
	case !domain.IsValidCategory(p.Gender, p.Category):
		return httperr.ErrBusiness(CodeInvalidCategory)
	case len(CleanOptions(p.Sizes)) == 0:
		return httperr.ErrBusiness(CodeSizesRequired)
	case len(CleanOptions(p.Colors)) == 0:
		return httperr.ErrBusiness(CodeColorsRequired)
	}
	return nil
}
