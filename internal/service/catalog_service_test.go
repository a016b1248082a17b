package service

import (
	"context"
	"testing"
)

func TestCatalogCreateThenGet(t *testing.T) {
	svc := NewCatalogService(newFakePlantRepo())
	ctx := context.Background()

	in := CreatePlantInput{
		Name:        "Fern",
		Description: "Low light friendly",
		Category:    "indoor",
		Price:       10,
		Quantity:    5,
		ImageURL:    "https://img.example.com/fern.png",
		SellerName:  "Bea",
		SellerEmail: "bea@example.com",
		SellerImage: "https://img.example.com/bea.png",
	}
	created, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != in.Name || got.Price != in.Price || got.Quantity != in.Quantity ||
		got.Category != in.Category || got.SellerEmail != in.SellerEmail {
		t.Fatalf("fetched plant differs from created: %+v", got)
	}
}

func TestCatalogCreateValidation(t *testing.T) {
	svc := NewCatalogService(newFakePlantRepo())
	ctx := context.Background()

	tests := []struct {
		name string
		in   CreatePlantInput
	}{
		{"empty name", CreatePlantInput{Name: "  ", Price: 5, Quantity: 1}},
		{"negative price", CreatePlantInput{Name: "Cactus", Price: -1, Quantity: 1}},
		{"negative quantity", CreatePlantInput{Name: "Cactus", Price: 5, Quantity: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tt.in); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestCatalogGetMissing(t *testing.T) {
	svc := NewCatalogService(newFakePlantRepo())
	if _, err := svc.Get(context.Background(), 42); err != ErrNotFound {
		t.Fatalf("err=%v want ErrNotFound", err)
	}
}

func TestCatalogListBySeller(t *testing.T) {
	repo := newFakePlantRepo()
	svc := NewCatalogService(repo)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "a@example.com"} {
		if _, err := svc.Create(ctx, CreatePlantInput{Name: "Plant", Price: 1, Quantity: 1, SellerEmail: email}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	plants, err := svc.ListBySeller(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(plants) != 2 {
		t.Fatalf("got %d plants, want 2", len(plants))
	}
	for _, p := range plants {
		if p.SellerEmail != "a@example.com" {
			t.Fatalf("unexpected seller %q", p.SellerEmail)
		}
	}
}
