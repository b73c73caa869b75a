package models

// Selection captures the storefront booking choices a quote is computed from.
// Price fields are never stored on the selection; they are derived on demand.
type Selection struct {
	PhotographerID   string         `json:"photographer_id"`
	PhotographerName string         `json:"photographer_name"`
	HourlyRate       string         `json:"hourly_rate"` // currency-formatted, e.g. "₹500"
	Category         string         `json:"category"`
	Subcategory      string         `json:"subcategory"`
	Date             string         `json:"date,omitempty"` // "YYYY-MM-DD", empty when unset
	TimeSlots        []string       `json:"time_slots"`     // e.g. "10:00 AM - 11:00 AM"
	Addons           map[string]int `json:"addons"`         // add-on id -> quantity
}

// Ready reports whether the selection can be confirmed: a date has been
// chosen and at least one time slot is selected.
func (s Selection) Ready() bool {
	return s.Date != "" && len(s.TimeSlots) > 0
}

// AddonLine is one selected add-on surfaced in a quote. Zero-quantity
// entries never appear as lines.
type AddonLine struct {
	AddonID   string `json:"addon_id"`
	Name      string `json:"name"`
	UnitPrice int    `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal int    `json:"line_total"`
}

// Breakdown is the derived price decomposition for a booking selection.
// All amounts are whole currency units.
type Breakdown struct {
	BasePrice   int         `json:"base_price"`
	AddonsTotal int         `json:"addons_total"`
	Subtotal    int         `json:"subtotal"`
	Tax         int         `json:"tax"`
	PlatformFee int         `json:"platform_fee"`
	Total       int         `json:"total"`
	Lines       []AddonLine `json:"lines"`
}
