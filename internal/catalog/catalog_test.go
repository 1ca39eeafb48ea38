package catalog_test

import (
	"testing"

	"github.com/example/quim/internal/catalog"
	"github.com/example/quim/internal/models"
)

func TestGetBySlug(t *testing.T) {
	p := catalog.NewDefaultProvider()

	prod, ok := p.GetBySlug("rigatoni-ragu-cupim")
	if !ok {
		t.Fatal("rigatoni-ragu-cupim not found")
	}
	if prod.BasePrice != 6900 {
		t.Errorf("base price = %d, want 6900", prod.BasePrice)
	}
	if g, ok := prod.Group("Porção"); !ok || !g.Required {
		t.Errorf("group Porção = %+v, want a required group", g)
	}

	if _, ok := p.GetBySlug("nao-existe"); ok {
		t.Error("GetBySlug(nao-existe) = hit, want miss")
	}
}

func TestListByCategory(t *testing.T) {
	p := catalog.NewDefaultProvider()

	for _, category := range []string{"Sobremesas", "sobremesas", "SOBREMESAS"} {
		got := p.ListByCategory(category)
		if len(got) == 0 {
			t.Fatalf("ListByCategory(%q) empty", category)
		}
		for _, prod := range got {
			if prod.Category != "Sobremesas" {
				t.Errorf("ListByCategory(%q) returned %s from %s", category, prod.Slug, prod.Category)
			}
		}
	}

	if got, all := p.ListByCategory(""), p.List(); len(got) != len(all) {
		t.Errorf("empty category = %d products, want the full menu of %d", len(got), len(all))
	}
}

func TestSearch(t *testing.T) {
	p := catalog.NewDefaultProvider()

	got := p.Search("salmão")
	if len(got) != 1 || got[0].Slug != "salmao-grelhado-quinoa" {
		t.Errorf("Search(salmão) = %v", slugs(got))
	}

	// Matches descriptions too, not just names.
	if got := p.Search("trufa"); len(got) == 0 {
		t.Error("Search(trufa) empty, want the risotto at least")
	}

	if got, all := p.Search("  "), p.List(); len(got) != len(all) {
		t.Errorf("blank search = %d products, want all %d", len(got), len(all))
	}

	if got := p.Search("xyzzy"); len(got) != 0 {
		t.Errorf("Search(xyzzy) = %v, want none", slugs(got))
	}
}

func TestCategoriesCoverMenu(t *testing.T) {
	p := catalog.NewDefaultProvider()

	known := make(map[string]bool)
	for _, c := range p.Categories() {
		known[c] = true
	}
	for _, prod := range p.List() {
		if !known[prod.Category] {
			t.Errorf("product %s has unlisted category %q", prod.Slug, prod.Category)
		}
	}
}

func TestListReturnsCopies(t *testing.T) {
	p := catalog.NewDefaultProvider()

	first := p.List()
	first[0].Name = "mutated"
	if second := p.List(); second[0].Name == "mutated" {
		t.Error("List exposes internal state to callers")
	}
}

func slugs(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Slug
	}
	return out
}
