package booking

import (
	"math"
	"strings"
	"testing"

	"lenshub/models"

	"github.com/stretchr/testify/assert"
)

var droneCatalog = []models.AddOn{
	{ID: "drone", Name: "Drone Coverage", UnitPrice: 2000, Active: true},
	{ID: "album", Name: "Printed Album", UnitPrice: 1500, Active: true},
}

func TestParseRate(t *testing.T) {
	assert.Equal(t, 500, ParseRate("₹500"))
	assert.Equal(t, 1200, ParseRate("Rs. 1,200/hr"))
	assert.Equal(t, 299, ParseRate(""))
	assert.Equal(t, 299, ParseRate("abc"))
	assert.Equal(t, 299, ParseRate("₹0"))
}

func TestQuoteDeterminism(t *testing.T) {
	sel := models.Selection{
		HourlyRate: "₹750",
		Date:       "2026-09-12",
		TimeSlots:  []string{"10:00 AM - 11:00 AM", "11:00 AM - 12:00 PM"},
		Addons:     map[string]int{"drone": 1, "album": 2},
	}
	first := Quote(sel, droneCatalog)
	second := Quote(sel, droneCatalog)
	assert.Equal(t, first, second)
}

func TestQuoteZeroAddons(t *testing.T) {
	sel := models.Selection{
		HourlyRate: "₹400",
		TimeSlots:  []string{"10:00 AM - 11:00 AM"},
		Addons:     map[string]int{"drone": 0, "album": -3},
	}
	b := Quote(sel, droneCatalog)
	assert.Equal(t, 0, b.AddonsTotal)
	assert.Empty(t, b.Lines)
}

func TestQuoteUnknownAddonIgnored(t *testing.T) {
	sel := models.Selection{
		HourlyRate: "₹400",
		TimeSlots:  []string{"10:00 AM - 11:00 AM"},
		Addons:     map[string]int{"no-such-addon": 5},
	}
	b := Quote(sel, droneCatalog)
	assert.Equal(t, 0, b.AddonsTotal)
	assert.Empty(t, b.Lines)
}

func TestQuoteFallbackRate(t *testing.T) {
	sel := models.Selection{
		HourlyRate: "free!",
		TimeSlots:  []string{"10:00 AM - 11:00 AM"},
	}
	b := Quote(sel, droneCatalog)
	assert.Equal(t, FallbackHourlyRate, b.BasePrice)
}

func TestQuoteTaxRounding(t *testing.T) {
	// Subtotal 1000 -> tax 180.
	b := Quote(models.Selection{HourlyRate: "1000", TimeSlots: []string{"s1"}}, nil)
	assert.Equal(t, 180, b.Tax)

	// Subtotal 999 -> 179.82 rounds to 180.
	b = Quote(models.Selection{HourlyRate: "999", TimeSlots: []string{"s1"}}, nil)
	assert.Equal(t, 180, b.Tax)

	// Subtotal 25 -> exactly 4.5, rounded half away from zero to 5.
	b = Quote(models.Selection{HourlyRate: "25", TimeSlots: []string{"s1"}}, nil)
	assert.Equal(t, 5, b.Tax)
}

func TestParseRateCapsDigits(t *testing.T) {
	// Only the first seven digits count; absurd rate strings cannot wrap.
	assert.Equal(t, 9999999, ParseRate(strings.Repeat("9", 25)))
	assert.Equal(t, 1234567, ParseRate("₹1,234,567,890,123"))
	assert.Greater(t, ParseRate(strings.Repeat("9", 25)), 0)
}

func TestQuoteClampsHugeAddonQuantity(t *testing.T) {
	sel := models.Selection{
		HourlyRate: "₹500",
		TimeSlots:  []string{"10:00 AM - 11:00 AM"},
		Addons:     map[string]int{"drone": math.MaxInt64},
	}
	b := Quote(sel, droneCatalog)

	assert.Equal(t, 2000*MaxAddonQuantity, b.AddonsTotal)
	assert.Len(t, b.Lines, 1)
	assert.Equal(t, MaxAddonQuantity, b.Lines[0].Quantity)
	assert.GreaterOrEqual(t, b.AddonsTotal, 0)
	assert.GreaterOrEqual(t, b.Subtotal, 0)
	assert.GreaterOrEqual(t, b.Tax, 0)
	assert.GreaterOrEqual(t, b.Total, 0)
	assert.Equal(t, b.BasePrice+b.AddonsTotal+b.Tax+b.PlatformFee, b.Total)
}

func TestQuoteTotalInvariant(t *testing.T) {
	cases := []models.Selection{
		{HourlyRate: "₹500", TimeSlots: []string{"s1", "s2", "s3"}, Addons: map[string]int{"drone": 1}},
		{HourlyRate: "", TimeSlots: nil},
		{HourlyRate: "999", TimeSlots: []string{"s1"}, Addons: map[string]int{"album": 4}},
	}
	for _, sel := range cases {
		b := Quote(sel, droneCatalog)
		assert.Equal(t, b.BasePrice+b.AddonsTotal+b.Tax+b.PlatformFee, b.Total)
		assert.GreaterOrEqual(t, b.BasePrice, 0)
		assert.GreaterOrEqual(t, b.AddonsTotal, 0)
		assert.GreaterOrEqual(t, b.Tax, 0)
	}
}

func TestQuoteEndToEnd(t *testing.T) {
	sel := models.Selection{
		HourlyRate: "₹500",
		Date:       "2026-09-12",
		TimeSlots:  []string{"10:00 AM - 11:00 AM", "11:00 AM - 12:00 PM", "12:00 PM - 1:00 PM"},
		Addons:     map[string]int{"drone": 1},
	}
	b := Quote(sel, droneCatalog)

	assert.Equal(t, 1500, b.BasePrice)
	assert.Equal(t, 2000, b.AddonsTotal)
	assert.Equal(t, 3500, b.Subtotal)
	assert.Equal(t, 630, b.Tax)
	assert.Equal(t, 50, b.PlatformFee)
	assert.Equal(t, 4180, b.Total)
	assert.Len(t, b.Lines, 1)
	assert.Equal(t, "drone", b.Lines[0].AddonID)
	assert.True(t, sel.Ready())
}

func TestSelectionReady(t *testing.T) {
	assert.False(t, models.Selection{}.Ready())
	assert.False(t, models.Selection{Date: "2026-09-12"}.Ready())
	assert.False(t, models.Selection{TimeSlots: []string{"s1"}}.Ready())
	assert.True(t, models.Selection{Date: "2026-09-12", TimeSlots: []string{"s1"}}.Ready())
}
