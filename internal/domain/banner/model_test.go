package banner

import "testing"

// TestApplyCTADefaults tests that blank labels get the default ru/kk text.
func TestApplyCTADefaults(t *testing.T) {
	b := Banner{ID: "b1", Type: TypeSeasonal, ProgramID: "p1"}
	b.ApplyCTADefaults()
	if b.CTALabelRU != DefaultCTARussian {
		t.Errorf("expected default ru label, got %q", b.CTALabelRU)
	}
	if b.CTALabelKK != DefaultCTAKazakh {
		t.Errorf("expected default kk label, got %q", b.CTALabelKK)
	}

	b = Banner{ID: "b2", Type: TypeSeasonal, CTALabelRU: "Бронировать", CTALabelKK: "Брондау"}
	b.ApplyCTADefaults()
	if b.CTALabelRU != "Бронировать" || b.CTALabelKK != "Брондау" {
		t.Error("expected custom labels to be preserved")
	}
}

// TestTitleFallback tests lang -> title_ru -> id resolution.
func TestTitleFallback(t *testing.T) {
	b := Banner{ID: "b1", Type: TypeSeasonal, TitleRU: "Лето", TitleKK: "Жаз"}
	if got := b.Title("kk"); got != "Жаз" {
		t.Errorf("expected Жаз, got %s", got)
	}
	b.TitleKK = ""
	if got := b.Title("kk"); got != "Лето" {
		t.Errorf("expected fallback to title_ru, got %s", got)
	}
	b.TitleRU = ""
	if got := b.Title("kk"); got != "b1" {
		t.Errorf("expected fallback to id, got %s", got)
	}
}

// TestValidate tests the type whitelist.
func TestValidate(t *testing.T) {
	b := Banner{ID: "b1", Type: "blinking"}
	if err := b.Validate(); err != ErrInvalidType {
		t.Errorf("expected ErrInvalidType, got %v", err)
	}
	b.Type = TypeDiscount
	if err := b.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if b.IsSeasonal() {
		t.Error("discount banner must not be seasonal")
	}
}
