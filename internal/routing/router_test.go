package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
)

func TestRouter_Route(t *testing.T) {
	tests := []struct {
		name            string
		companyLabel    string
		sender          string
		text            string
		wantProvider    string
		wantAttribution string
		wantMode        model.FinancialMode
	}{
		{
			name:            "shared mailbox label routes by agoda keyword",
			companyLabel:    "T- Agoda",
			sender:          "noreply-reservations@millenniumhotels.com",
			text:            "Booking made via Agoda.com for your hotel",
			wantProvider:    "Agoda",
			wantAttribution: "*INNLINK2WAY*",
			wantMode:        model.ModeNetExclusive,
		},
		{
			name:            "shared mailbox sender alone is enough",
			companyLabel:    "",
			sender:          "Noreply-Reservations@MillenniumHotels.com",
			text:            "Reservation via Booking.com",
			wantProvider:    "Booking.com",
			wantAttribution: "*INNLINK2WAY*",
			wantMode:        model.ModeTotalInclusive,
		},
		{
			name:            "agoda wins over booking.com when both appear",
			companyLabel:    "T- OTA",
			sender:          "noreply-reservations@millenniumhotels.com",
			text:            "Forwarded from agoda, originally booking.com",
			wantProvider:    "Agoda",
			wantAttribution: "*INNLINK2WAY*",
			wantMode:        model.ModeNetExclusive,
		},
		{
			name:            "shared mailbox with no keyword falls to channel default",
			companyLabel:    "T- Something",
			sender:          "noreply-reservations@millenniumhotels.com",
			text:            "Reservation confirmation",
			wantProvider:    "INNLINK Default",
			wantAttribution: "*INNLINK2WAY*",
			wantMode:        model.ModeTotalInclusive,
		},
		{
			name:            "direct agency attribution is the label verbatim",
			companyLabel:    "Travco LLC",
			sender:          "reservations@travco.co.uk",
			text:            "Passenger Name: Mr. John Smith",
			wantProvider:    "Travco",
			wantAttribution: "Travco LLC",
			wantMode:        model.ModeNetExclusive,
		},
		{
			name:            "unknown label falls to generic travel agency",
			companyLabel:    "Some Unknown DMC",
			sender:          "ops@unknowndmc.example",
			text:            "Booking confirmation",
			wantProvider:    "Travel Agency",
			wantAttribution: "Some Unknown DMC",
			wantMode:        model.ModeNetExclusive,
		},
		{
			name:            "airline fallback matches on message text",
			companyLabel:    "",
			sender:          "crew-rooms@csair.com",
			text:            "China Southern crew layover rooming list",
			wantProvider:    "China Southern Air",
			wantAttribution: "China Southern Air",
		},
		{
			name:            "corporate rate text keyword",
			companyLabel:    "",
			sender:          "pa@somecorp.example",
			text:            "Please book at the corporate rate as agreed",
			wantProvider:    "Corporate Rate",
			wantAttribution: "Corporate Rate",
		},
		{
			name:            "nothing matches routes to manual entry",
			companyLabel:    "",
			sender:          "random@example.com",
			text:            "Hello, do you have availability?",
			wantProvider:    "Manual Entry",
			wantAttribution: "MANUAL_ENTRY",
		},
	}

	router := NewRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := router.Route(tt.companyLabel, tt.sender, tt.text)
			require.NotNil(t, d.Profile)
			assert.Equal(t, tt.wantProvider, d.Profile.Name)
			assert.Equal(t, tt.wantAttribution, d.Attribution)
			if tt.wantMode != "" {
				assert.Equal(t, tt.wantMode, d.Profile.Mode)
			}
		})
	}
}

func TestRouter_ManualHasNoExtractor(t *testing.T) {
	d := NewRouter().Route("", "someone@example.com", "hello")
	require.NotNil(t, d.Profile)
	assert.False(t, d.Profile.HasExtractor())
}

func TestRouter_Profiles(t *testing.T) {
	profiles := NewRouter().Profiles()
	require.NotEmpty(t, profiles)

	// Shared channels come first, manual entry is always last.
	assert.Equal(t, model.TierSharedMailbox, profiles[0].Tier)
	assert.Equal(t, model.TierManual, profiles[len(profiles)-1].Tier)
}
