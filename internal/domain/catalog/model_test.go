package catalog

import (
	"encoding/json"
	"reflect"
	"testing"
)

// TestMenuItemAvailableDefaultsTrue tests that items persisted without an
// available field unmarshal as available.
func TestMenuItemAvailableDefaultsTrue(t *testing.T) {
	var m MenuItem
	doc := `{"id":"m1","title":{"ru":"Чай","kk":"Шай"},"description":{"ru":"","kk":""},"price":500}`
	if err := json.Unmarshal([]byte(doc), &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.Available {
		t.Error("expected available to default to true")
	}

	doc = `{"id":"m2","title":{"ru":"Кофе","kk":"Кофе"},"price":900,"available":false}`
	if err := json.Unmarshal([]byte(doc), &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Available {
		t.Error("expected explicit available=false to be preserved")
	}
}

// TestProgramAvailableDefaultsTrue tests the same defaulting for programs.
func TestProgramAvailableDefaultsTrue(t *testing.T) {
	var p Program
	doc := `{"id":"p1","title":{"ru":"Пираты","kk":"Қарақшылар"},"price":15000,"costumes":["Пират"]}`
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Available {
		t.Error("expected available to default to true")
	}
	if len(p.Costumes) != 1 || p.Costumes[0] != "Пират" {
		t.Errorf("costumes not preserved: %v", p.Costumes)
	}
}

// TestLocalizedGet tests the lang -> ru -> fallback resolution order.
func TestLocalizedGet(t *testing.T) {
	l := Localized{"ru": "Чай", "kk": "Шай"}
	if got := l.Get("kk", "id-1"); got != "Шай" {
		t.Errorf("expected Шай, got %s", got)
	}
	l = Localized{"ru": "Чай"}
	if got := l.Get("kk", "id-1"); got != "Чай" {
		t.Errorf("expected fallback to ru, got %s", got)
	}
	l = Localized{}
	if got := l.Get("kk", "id-1"); got != "id-1" {
		t.Errorf("expected raw fallback, got %s", got)
	}
}

// TestParseCostumes tests comma splitting with trimming and empty drops.
func TestParseCostumes(t *testing.T) {
	got := ParseCostumes(" Пират , Фея ,, Тигр ,")
	want := []string{"Пират", "Фея", "Тигр"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseCostumes = %v, want %v", got, want)
	}
	if got := ParseCostumes("   "); got != nil {
		t.Errorf("expected nil for blank input, got %v", got)
	}
}

// TestMenuItemValidate tests required localized titles.
func TestMenuItemValidate(t *testing.T) {
	m := MenuItem{ID: "m1", Title: Localized{"ru": "Чай"}, Price: 500, Available: true}
	if err := m.Validate(); err != ErrEmptyTitle {
		t.Errorf("expected ErrEmptyTitle for missing kk title, got %v", err)
	}
	m.Title["kk"] = "Шай"
	if err := m.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	m.Price = -1
	if err := m.Validate(); err != ErrNegativePrice {
		t.Errorf("expected ErrNegativePrice, got %v", err)
	}
}

// TestIsSupportedLanguage tests the language whitelist.
func TestIsSupportedLanguage(t *testing.T) {
	if !IsSupportedLanguage("ru") || !IsSupportedLanguage("kk") {
		t.Error("ru and kk must be supported")
	}
	if IsSupportedLanguage("en") || IsSupportedLanguage("") {
		t.Error("unexpected language accepted")
	}
}
