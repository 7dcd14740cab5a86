package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRoom(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{"superior king", "Superior King Room", "SK"},
		{"superior twin", "Superior Room with Twin Beds", "ST"},
		{"deluxe king", "Deluxe King", "DK"},
		{"club twin", "Club Rooms Twin", "CT"},
		{"studio", "Studio Apartment", "SA"},
		{"one bedroom spelled out", "One Bedroom Apartment", "1BA"},
		{"one bedroom numeric", "1 Bedroom Apartment", "1BA"},
		{"business suite", "Business Suite", "BS"},
		{"executive suite", "Executive Suite City View", "ES"},
		{"family suite", "Family Suite", "FS"},
		{"two bedroom", "Two Bedroom Apartment", "2BA"},
		{"two bedroom hyphenated", "Two-Bedroom Residence", "2BA"},
		{"presidential", "Presidential Suite", "PRES"},
		{"royal", "Royal Suite", "RS"},
		{"unknown falls back to truncated code", "Garden Villa", "GARD"},
		{"short unknown kept whole", "SKD", "SKD"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRoom(tt.description))
		})
	}
}

func TestHighTDFRoom(t *testing.T) {
	assert.True(t, HighTDFRoom("2BA"))
	assert.True(t, HighTDFRoom("FS"))
	assert.True(t, HighTDFRoom("Two Bedroom Apartment"))
	assert.True(t, HighTDFRoom("family suite"))

	// Plain suites stay at the standard rate.
	assert.False(t, HighTDFRoom("ES"))
	assert.False(t, HighTDFRoom("Royal Suite"))
	assert.False(t, HighTDFRoom("SK"))
	assert.False(t, HighTDFRoom(""))
}
