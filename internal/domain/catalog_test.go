package domain

import "testing"

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	if len(catalog) == 0 {
		t.Fatal("default catalog must not be empty")
	}

	seen := make(map[string]bool)
	for _, p := range catalog {
		if p.ID == "" {
			t.Fatalf("product %q has empty id", p.Name)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate product id %s", p.ID)
		}
		seen[p.ID] = true

		if !p.Category.Valid() {
			t.Fatalf("product %q has unknown category %q", p.Name, p.Category)
		}
		if p.Price <= 0 {
			t.Fatalf("product %q has non-positive price %d", p.Name, p.Price)
		}
		if p.OriginalPrice != nil && *p.OriginalPrice <= p.Price {
			t.Fatalf("product %q: original price %d must exceed price %d", p.Name, *p.OriginalPrice, p.Price)
		}
	}
}

func TestDiscounted(t *testing.T) {
	original := int64(12000)

	p := Product{Price: 10000, OriginalPrice: &original}
	if !p.Discounted() {
		t.Fatal("product with original price must be discounted")
	}

	p = Product{Price: 10000}
	if p.Discounted() {
		t.Fatal("product without original price must not be discounted")
	}
}

func TestCategoryValid(t *testing.T) {
	if !CategoryFruits.Valid() {
		t.Fatal("known category reported invalid")
	}
	if Category("Gadgets").Valid() {
		t.Fatal("unknown category reported valid")
	}
}
