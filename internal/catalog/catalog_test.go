package catalog

import (
	"testing"

	"github.com/Guidoll2/fontaneriabarcelona/internal/i18n"
)

func TestListReturnsAllProducts(t *testing.T) {
	got := List(i18n.LocaleES)
	if len(got) != 6 {
		t.Fatalf("expected 6 products, got %d", len(got))
	}
	for _, p := range got {
		if p.ID == "" || p.Name == "" || p.Price <= 0 {
			t.Errorf("product %q is incomplete: %+v", p.ID, p)
		}
		if !p.InstallationIncluded {
			t.Errorf("product %q should include installation", p.ID)
		}
	}
}

func TestListLocalizedDescriptions(t *testing.T) {
	es := List(i18n.LocaleES)
	en := List(i18n.LocaleEN)
	ca := List(i18n.LocaleCA)

	if en[0].Name != "Condensing Boiler 24kW" {
		t.Errorf("english name = %q", en[0].Name)
	}
	if ca[0].Name != "Caldera de Condensació 24kW" {
		t.Errorf("catalan name = %q", ca[0].Name)
	}
	for i := range es {
		if en[i].Description == es[i].Description {
			t.Errorf("product %q: english description not translated", es[i].ID)
		}
		if en[i].Price != es[i].Price || en[i].ID != es[i].ID {
			t.Errorf("product %q: locale must only change texts", es[i].ID)
		}
	}
}

func TestListUnknownLocaleFallsBackToSpanish(t *testing.T) {
	es := List(i18n.LocaleES)
	de := List(i18n.Locale("de"))

	for i := range es {
		if de[i].Name != es[i].Name {
			t.Errorf("product %q: expected spanish fallback, got %q", es[i].ID, de[i].Name)
		}
	}
}

func TestListReturnsCopy(t *testing.T) {
	first := List(i18n.LocaleES)
	first[0].Price = 1

	if got := List(i18n.LocaleES)[0].Price; got == 1 {
		t.Fatalf("mutating the returned slice leaked into the catalog")
	}
}

func TestFind(t *testing.T) {
	p, ok := Find("2")
	if !ok {
		t.Fatalf("product 2 should exist")
	}
	if p.Price != 1450 {
		t.Errorf("product 2: expected price 1450, got %v", p.Price)
	}

	if _, ok := Find("99"); ok {
		t.Errorf("product 99 should not exist")
	}
}

func TestTranslationsCoverWholeCatalog(t *testing.T) {
	for locale, overrides := range translations {
		for _, p := range products {
			text, ok := overrides[p.ID]
			if !ok {
				t.Errorf("locale %q: product %q has no translation", locale, p.ID)
				continue
			}
			if text.Name == "" || text.Description == "" {
				t.Errorf("locale %q: product %q translation incomplete", locale, p.ID)
			}
		}
	}
}

func TestSourceCartItem(t *testing.T) {
	item, ok := Source{}.CartItem("1")
	if !ok {
		t.Fatalf("product 1 should resolve to a cart item")
	}
	if item.Price != 1200 {
		t.Errorf("expected catalog price 1200, got %v", item.Price)
	}
	if item.Quantity != 0 {
		t.Errorf("cart item quantity is assigned by the cart, got %d", item.Quantity)
	}

	if _, ok := (Source{}).CartItem("99"); ok {
		t.Errorf("unknown product should not resolve")
	}
}
