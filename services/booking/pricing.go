package booking

import (
	"math"

	"lenshub/models"
)

// FallbackHourlyRate is substituted when a photographer's rate string is
// missing or malformed. A booking must never price at zero because of bad
// upstream data.
const FallbackHourlyRate = 299

// TaxRate is the fixed tax applied to the subtotal.
const TaxRate = 0.18

// PlatformFee is the fixed per-booking fee in whole currency units.
const PlatformFee = 50

// MaxAddonQuantity caps the per-line quantity a selection may carry. Client
// input is untrusted; without the cap a huge quantity would overflow the
// totals negative.
const MaxAddonQuantity = 100

// maxRateDigits bounds the digits ParseRate consumes, keeping the parsed
// rate below 10^7 so slot multiplication cannot wrap.
const maxRateDigits = 7

// ParseRate extracts a whole-unit hourly rate from a currency-formatted
// string such as "₹500" or "Rs. 1,200/hr". Any string that yields zero
// falls back to FallbackHourlyRate.
func ParseRate(s string) int {
	rate := 0
	digits := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		rate = rate*10 + int(r-'0')
		digits++
		if digits == maxRateDigits {
			break
		}
	}
	if rate == 0 {
		return FallbackHourlyRate
	}
	return rate
}

// Quote computes the price breakdown for a booking selection against the
// add-on catalog. It is pure and never fails: missing or malformed inputs
// are coerced to safe defaults rather than rejected.
//
// Tax is rounded half away from zero (math.Round), which matches the
// storefront's displayed figures for all positive subtotals.
func Quote(sel models.Selection, catalog []models.AddOn) models.Breakdown {
	rate := ParseRate(sel.HourlyRate)
	basePrice := rate * len(sel.TimeSlots)

	var lines []models.AddonLine
	addonsTotal := 0
	for _, a := range catalog {
		qty := sel.Addons[a.ID]
		if qty <= 0 {
			continue
		}
		if qty > MaxAddonQuantity {
			qty = MaxAddonQuantity
		}
		lineTotal := a.UnitPrice * qty
		addonsTotal += lineTotal
		lines = append(lines, models.AddonLine{
			AddonID:   a.ID,
			Name:      a.Name,
			UnitPrice: a.UnitPrice,
			Quantity:  qty,
			LineTotal: lineTotal,
		})
	}

	subtotal := basePrice + addonsTotal
	tax := int(math.Round(float64(subtotal) * TaxRate))

	return models.Breakdown{
		BasePrice:   basePrice,
		AddonsTotal: addonsTotal,
		Subtotal:    subtotal,
		Tax:         tax,
		PlatformFee: PlatformFee,
		Total:       subtotal + tax + PlatformFee,
		Lines:       lines,
	}
}
