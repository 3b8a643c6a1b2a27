package product

import (
	"testing"

	"github.com/BruksfildServices01/store-reservations/internal/models"
)

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Roupa Íntima": "roupa-intima",
		"Calças":       "calcas",
		"Calçado":      "calcado",
		"  Vestidos ":  "vestidos",
		"roupa-intima": "roupa-intima",
	}
	for in, want := range cases {
		if got := Slug(in); got != want {
			t.Fatalf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCategoryFromSlug(t *testing.T) {
	got, ok := CategoryFromSlug(models.GenderMen, "calcas")
	if !ok || got != "Calças" {
		t.Fatalf("got %q, %v", got, ok)
	}
	if _, ok := CategoryFromSlug(models.GenderMen, "vestidos"); ok {
		t.Fatalf("vestidos is not a men's category")
	}
}

func TestIsValidCategory(t *testing.T) {
	if !IsValidCategory(models.GenderWomen, "Saias") {
		t.Fatalf("Saias should be valid for mulher")
	}
	if IsValidCategory(models.GenderYouth, "Saias") {
		t.Fatalf("Saias should not be valid for jovens")
	}
	if IsValidCategory(models.Gender("outro"), "Camisas") {
		t.Fatalf("unknown gender has no categories")
	}
}
