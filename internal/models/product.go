package models

import "github.com/shopspring/decimal"

type Gender string

const (
	GenderMen   Gender = "homem"
	GenderWomen Gender = "mulher"
	GenderYouth Gender = "jovens"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMen, GenderWomen, GenderYouth:
		return true
	}
	return false
}

// Product is a single physical item on the shop floor. Products live only in
// memory and are reseeded on every start.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Category    string          `json:"category"`
	Gender      Gender          `json:"gender"`
	Available   bool            `json:"available"`
	Sizes       []string        `json:"sizes"`
	Colors      []string        `json:"colors"`
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	p.Sizes = append([]string(nil), p.Sizes...)
	p.Colors = append([]string(nil), p.Colors...)
	return p
}

func (p Product) HasSize(size string) bool {
	return contains(p.Sizes, size)
}

func (p Product) HasColor(color string) bool {
	return contains(p.Colors, color)
}

// ProductPatch carries a partial update. Nil fields are left untouched.
type ProductPatch struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	ImageURL    *string          `json:"imageUrl,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Gender      *Gender          `json:"gender,omitempty"`
	Available   *bool            `json:"available,omitempty"`
	Sizes       []string         `json:"sizes,omitempty"`
	Colors      []string         `json:"colors,omitempty"`
}

// Apply merges the patch onto p and returns the result.
func (pp ProductPatch) Apply(p Product) Product {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.ImageURL != nil {
		p.ImageURL = *pp.ImageURL
	}
	if pp.Category != nil {
		p.Category = *pp.Category
	}
	if pp.Gender != nil {
		p.Gender = *pp.Gender
	}
	if pp.Available != nil {
		p.Available = *pp.Available
	}
	if pp.Sizes != nil {
		p.Sizes = append([]string(nil), pp.Sizes...)
	}
	if pp.Colors != nil {
		p.Colors = append([]string(nil), pp.Colors...)
	}
	return p
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
