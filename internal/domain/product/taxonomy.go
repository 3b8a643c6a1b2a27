package product

import "github.com/BruksfildServices01/store-reservations/internal/models"

// Categories offered per gender, in menu order.
var Categories = map[models.Gender][]string{
	models.GenderMen:   {"Camisas", "Calças", "Blazers", "Pijamas", "Roupa Íntima", "Calçado"},
	models.GenderWomen: {"Vestidos", "Blusas", "Saias", "Calças", "Pijamas", "Roupa Íntima", "Calçado"},
	models.GenderYouth: {"Camisas", "Calças", "Vestidos", "Pijamas", "Roupa Íntima", "Calçado"},
}

func CategoriesFor(g models.Gender) []string {
	return append([]string(nil), Categories[g]...)
}

func IsValidCategory(g models.Gender, category string) bool {
	for _, c := range Categories[g] {
		if c == category {
			return true
		}
	}
	return false
}

// CategoryFromSlug resolves a URL slug such as "roupa-intima" to the
// category name for that gender.
func CategoryFromSlug(g models.Gender, slug string) (string, bool) {
	want := Slug(slug)
	for _, c := range Categories[g] {
		if Slug(c) == want {
			return c, true
		}
	}
	return "", false
}

// Defaults applied to new products when the admin leaves them blank.
var (
	DefaultSizes  = []string{"P", "M", "G"}
	DefaultColors = []string{"Preto"}
)
