package product

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/store-reservations/internal/catalog"
	"github.com/BruksfildServices01/store-reservations/internal/httperr"
	"github.com/BruksfildServices01/store-reservations/internal/models"
	"github.com/BruksfildServices01/store-reservations/internal/validators"
)

func newCatalog() *catalog.Store {
	return catalog.NewStore(catalog.Seed())
}

func shirt() models.Product {
	return models.Product{
		Name:     "  Camisa Linho ",
		Price:    decimal.RequireFromString("49.90"),
		Gender:   "Homem",
		Category: "Camisas",
	}
}

func TestCreateProductAppliesDefaults(t *testing.T) {
	store := newCatalog()
	uc := NewCreateProduct(store)

	p, err := uc.Execute(context.Background(), shirt(), nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == "" {
		t.Fatalf("id not assigned")
	}
	if p.Name != "Camisa Linho" || p.Gender != models.GenderMen {
		t.Fatalf("fields not normalised: %+v", p)
	}
	if !p.Available {
		t.Fatalf("new product should be available")
	}
	if len(p.Sizes) != 3 || p.Sizes[0] != "P" || len(p.Colors) != 1 || p.Colors[0] != "Preto" {
		t.Fatalf("defaults not applied: sizes=%v colors=%v", p.Sizes, p.Colors)
	}

	got, err := store.Get(p.ID)
	if err != nil || got.Name != p.Name {
		t.Fatalf("product not stored: %v", err)
	}
}

func TestCreateProductRejectsInvalid(t *testing.T) {
	uc := NewCreateProduct(newCatalog())

	in := shirt()
	in.Category = "Vestidos"
	if _, err := uc.Execute(context.Background(), in, nil); !httperr.IsBusiness(err, validators.CodeInvalidCategory) {
		t.Fatalf("err = %v", err)
	}

	in = shirt()
	in.ID = "1"
	if _, err := uc.Execute(context.Background(), in, nil); !httperr.IsBusiness(err, httperr.CodeProductIDTaken) {
		t.Fatalf("duplicate id err = %v", err)
	}
}

func TestUpdateProductValidatesMergedResult(t *testing.T) {
	store := newCatalog()
	uc := NewUpdateProduct(store)
	ctx := context.Background()

	before, _ := store.Get("1")

	empty := "  "
	if _, err := uc.Execute(ctx, "1", models.ProductPatch{Name: &empty}); !httperr.IsBusiness(err, validators.CodeNameRequired) {
		t.Fatalf("err = %v", err)
	}
	after, _ := store.Get("1")
	if after.Name != before.Name {
		t.Fatalf("invalid patch was applied")
	}

	name := "Novo nome"
	got, err := uc.Execute(ctx, "1", models.ProductPatch{Name: &name, Sizes: []string{" S ", ""}})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != name || len(got.Sizes) != 1 || got.Sizes[0] != "S" {
		t.Fatalf("got %+v", got)
	}

	if _, err := uc.Execute(ctx, "nope", models.ProductPatch{Name: &name}); !httperr.IsBusiness(err, httperr.CodeProductNotFound) {
		t.Fatalf("unknown id err = %v", err)
	}
}

func TestDeleteProduct(t *testing.T) {
	store := newCatalog()
	uc := NewDeleteProduct(store)

	if err := uc.Execute(context.Background(), "2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := uc.Execute(context.Background(), "2"); !httperr.IsBusiness(err, httperr.CodeProductNotFound) {
		t.Fatalf("second delete err = %v", err)
	}
}

type fakeUploader struct {
	url string
	err error
	got []byte
}

func (f *fakeUploader) UploadProductImage(_ context.Context, _ string, r io.Reader) (string, error) {
	f.got, _ = io.ReadAll(r)
	return f.url, f.err
}

func TestSetProductImage(t *testing.T) {
	store := newCatalog()
	up := &fakeUploader{url: "http://cdn/products/1/x.webp"}
	uc := NewSetProductImage(store, up)

	p, err := uc.Execute(context.Background(), "1", bytes.NewReader([]byte("img")))
	if err != nil {
		t.Fatalf("set image: %v", err)
	}
	if p.ImageURL != up.url || string(up.got) != "img" {
		t.Fatalf("imageUrl = %q", p.ImageURL)
	}

	if _, err := uc.Execute(context.Background(), "nope", bytes.NewReader(nil)); !httperr.IsBusiness(err, httperr.CodeProductNotFound) {
		t.Fatalf("unknown product err = %v", err)
	}

	up.err = errors.New("bucket down")
	before, _ := store.Get("1")
	if _, err := uc.Execute(context.Background(), "1", bytes.NewReader(nil)); err == nil {
		t.Fatalf("expected upload error")
	}
	after, _ := store.Get("1")
	if after.ImageURL != before.ImageURL {
		t.Fatalf("imageUrl changed on failed upload")
	}
}
