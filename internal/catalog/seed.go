package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/store-reservations/internal/models"
)

func photo(id string) string {
	return "https://images.pexels.com/photos/" + id + "/pexels-photo-" + id + ".jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1"
}

// Seed returns the built-in catalog loaded on every start. Admin edits are
// not persisted, so each restart returns to this list.
func Seed() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Vestido Floral Verão",
			Description: "Vestido floral perfeito para o verão, com tecido leve e design elegante.",
			Price:       decimal.RequireFromString("159.90"),
			ImageURL:    photo("7679720"),
			Category:    "Vestidos",
			Gender:      models.GenderWomen,
			Available:   true,
			Sizes:       []string{"P", "M", "G"},
			Colors:      []string{"Azul", "Rosa", "Verde"},
		},
		{
			ID:          "2",
			Name:        "Camisa Social Masculina",
			Description: "Camisa social de alta qualidade, ideal para ocasiões formais e ambiente de trabalho.",
			Price:       decimal.RequireFromString("129.90"),
			ImageURL:    photo("297933"),
			Category:    "Camisas",
			Gender:      models.GenderMen,
			Available:   true,
			Sizes:       []string{"P", "M", "G", "GG"},
			Colors:      []string{"Branco", "Azul", "Preto"},
		},
		{
			ID:          "3",
			Name:        "Calça Jeans Skinny",
			Description: "Calça jeans skinny com lavagem moderna e corte perfeito para todos os tipos de corpo.",
			Price:       decimal.RequireFromString("179.90"),
			ImageURL:    photo("1082529"),
			Category:    "Calças",
			Gender:      models.GenderYouth,
			Available:   true,
			Sizes:       []string{"36", "38", "40", "42", "44"},
			Colors:      []string{"Azul Claro", "Azul Escuro"},
		},
		{
			ID:          "4",
			Name:        "Pijama de Algodão",
			Description: "Pijama confortável feito de algodão puro, perfeito para uma boa noite de sono.",
			Price:       decimal.RequireFromString("89.90"),
			ImageURL:    photo("6765028"),
			Category:    "Pijamas",
			Gender:      models.GenderWomen,
			Available:   true,
			Sizes:       []string{"P", "M", "G"},
			Colors:      []string{"Rosa", "Azul", "Cinza"},
		},
		{
			ID:          "5",
			Name:        "Tênis Casual",
			Description: "Tênis casual versátil, combina com diversos looks.",
			Price:       decimal.RequireFromString("149.90"),
			ImageURL:    photo("6765029"),
			Category:    "Calçado",
			Gender:      models.GenderYouth,
			Available:   true,
			Sizes:       []string{"38", "39", "40", "41", "42"},
			Colors:      []string{"Preto", "Branco", "Cinza"},
		},
		{
			ID:          "6",
			Name:        "Conjunto de Roupa Íntima",
			Description: "Conjunto de roupa íntima confortável e elegante.",
			Price:       decimal.RequireFromString("79.90"),
			ImageURL:    photo("6765027"),
			Category:    "Roupa Íntima",
			Gender:      models.GenderWomen,
			Available:   true,
			Sizes:       []string{"P", "M", "G"},
			Colors:      []string{"Preto", "Branco", "Rosa"},
		},
	}
}
