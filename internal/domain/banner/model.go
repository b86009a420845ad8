package banner

import "errors"

// Banner types
const (
	TypeSeasonal = "seasonal"
	TypeDiscount = "discount"
)

// ValidTypes contains all valid banner types.
var ValidTypes = []string{TypeSeasonal, TypeDiscount}

// Default call-to-action labels applied when the admin leaves them blank.
const (
	DefaultCTARussian = "Записаться"
	DefaultCTAKazakh  = "Тіркелу"
)

// Domain errors
var (
	ErrInvalidType = errors.New("banner type must be 'seasonal' or 'discount'")
)

// Banner is a promotional unit shown on the public site. The seasonal
// variant links a program and carries signup call-to-action labels; the
// discount variant links a menu item. Localized fields are flat per the
// persisted wire shape.
//
// No referential integrity is enforced against the linked program or menu
// item: deleting the target leaves the banner pointing at a dead id.
type Banner struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	TitleRU       string `json:"title_ru"`
	TitleKK       string `json:"title_kk"`
	DescriptionRU string `json:"description_ru"`
	DescriptionKK string `json:"description_kk"`

	// Seasonal variant only.
	ProgramID  string `json:"program_id,omitempty"`
	CTALabelRU string `json:"cta_label_ru,omitempty"`
	CTALabelKK string `json:"cta_label_kk,omitempty"`

	// Discount variant only.
	MenuItemID string `json:"menu_item_id,omitempty"`
}

// Validate checks if the Banner has valid data.
// PRE: Banner struct is populated
// POST: Returns nil if valid, error otherwise
func (b *Banner) Validate() error {
	if !isValidType(b.Type) {
		return ErrInvalidType
	}
	return nil
}

// IsSeasonal returns true for the seasonal variant.
// INVARIANT: Banner fields are not mutated
func (b *Banner) IsSeasonal() bool {
	return b.Type == TypeSeasonal
}

// Title returns the banner title for lang, falling back to Russian, then to
// the banner id.
func (b *Banner) Title(lang string) string {
	if lang == "kk" && b.TitleKK != "" {
		return b.TitleKK
	}
	if b.TitleRU != "" {
		return b.TitleRU
	}
	return b.ID
}

// ApplyCTADefaults fills blank call-to-action labels with the default
// Russian and Kazakh text. Only meaningful for the seasonal variant.
// POST: CTALabelRU and CTALabelKK are non-empty
func (b *Banner) ApplyCTADefaults() {
	if b.CTALabelRU == "" {
		b.CTALabelRU = DefaultCTARussian
	}
	if b.CTALabelKK == "" {
		b.CTALabelKK = DefaultCTAKazakh
	}
}

func isValidType(t string) bool {
	for _, v := range ValidTypes {
		if v == t {
			return true
		}
	}
	return false
}
