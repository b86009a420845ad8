package settings

// Settings is the singleton site configuration record. It is persisted
// wholesale: the settings and maintenance admin screens rewrite the whole
// document.
type Settings struct {
	OwnerAuthorized bool   `json:"ownerAuthorized"`
	CafeNumber      string `json:"cafeNumber"`
	CashierNumber   string `json:"cashierNumber"`
	Maintenance     bool   `json:"maintenance"`
}

// Defaults returns the settings used when no settings document exists yet.
func Defaults() Settings {
	return Settings{
		OwnerAuthorized: false,
		CafeNumber:      "+7 705 561 9337",
		CashierNumber:   "+7 705 123 4567",
		Maintenance:     false,
	}
}
