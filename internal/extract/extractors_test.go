package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
)

const innlinkBody = `Reservation Confirmation
Guest Name: Ahmed Hassan
Address: 12 Marina Walk
Arrive: 03/15/2026
Depart: 03/18/2026
Total Nights 3 nights
Adult/Children: 2/0
Room Type: Superior King Room
Rate Code: BARBB
Travel Agent
Name: Booking.com
Total charges: AED 960.00
`

func TestInnlinkExtractor(t *testing.T) {
	gross := &InnlinkExtractor{ReportsGrossTotal: true, Dates: MonthFirst}
	cf := gross.Extract(innlinkBody, "noreply-reservations@millenniumhotels.com")

	require.True(t, cf.FirstName.Known)
	assert.Equal(t, "Ahmed", cf.FirstName.Value)
	assert.Equal(t, "Hassan", cf.FullName.Value)

	// Channel-manager dates are month-first and come out day-first.
	assert.Equal(t, "15/03/2026", cf.Arrival.Value)
	assert.Equal(t, "18/03/2026", cf.Departure.Value)
	assert.Equal(t, 3, cf.Nights.Value)
	assert.Equal(t, 2, cf.Persons.Value)
	assert.Equal(t, "SK", cf.RoomCode.Value)
	assert.Equal(t, "BARBB", cf.RateCode.Value)
	assert.Equal(t, "Booking.com", cf.SourceName.Value)

	require.True(t, cf.Total.Known)
	assert.Equal(t, "960", cf.Total.Value.String())
	assert.False(t, cf.NetTotal.Known)
}

func TestInnlinkExtractor_NetVariant(t *testing.T) {
	net := &InnlinkExtractor{Dates: MonthFirst}
	cf := net.Extract(innlinkBody, "noreply-reservations@millenniumhotels.com")

	require.True(t, cf.NetTotal.Known)
	assert.Equal(t, "960", cf.NetTotal.Value.String())
	assert.False(t, cf.Total.Known)
}

func TestInnlinkExtractor_SubjectArrivalFallback(t *testing.T) {
	text := "Arrival Date: 04/02/2026 - Reservation Confirmation\nGuest Name: Li Wei\n"
	cf := (&InnlinkExtractor{Dates: MonthFirst}).Extract(text, "")

	require.True(t, cf.Arrival.Known)
	assert.Equal(t, "02/04/2026", cf.Arrival.Value)
	assert.False(t, cf.Departure.Known)
}

func TestTravcoExtractor(t *testing.T) {
	text := `Hotel Booking Confirmation
Passenger Name: Mr. John Smith
From 15/03/2026 To 18/03/2026 for 2 adults
Room Category: Deluxe King
Rate: ED- TO2026
Total AED 1,200.00
`
	cf := (&TravcoExtractor{}).Extract(text, "reservations@travco.co.uk")

	assert.Equal(t, "John", cf.FirstName.Value)
	assert.Equal(t, "Smith", cf.FullName.Value)
	assert.Equal(t, "15/03/2026", cf.Arrival.Value)
	assert.Equal(t, "18/03/2026", cf.Departure.Value)
	assert.Equal(t, 3, cf.Nights.Value)
	assert.Equal(t, 2, cf.Persons.Value)
	assert.Equal(t, "DK", cf.RoomCode.Value)
	assert.Equal(t, "ED-TO2026", cf.RateCode.Value)
	require.True(t, cf.NetTotal.Known)
	assert.Equal(t, "1200", cf.NetTotal.Value.String())
}

func TestDuriExtractor(t *testing.T) {
	text := `DURI TRAVEL ROOMING LIST
MR. KIM MINSU
MS. LEE JIYEON
CHECK-IN: 05-Jan-2026
CHECK-OUT: 08-Jan-2026
NIGHT: 3
ROOM: SUPERIOR TWIN
AED 1500
`
	cf := (&DuriExtractor{}).Extract(text, "duri@hanmail.net")

	assert.Equal(t, "KIM", cf.FirstName.Value)
	assert.Equal(t, "MINSU", cf.FullName.Value)
	assert.Equal(t, "05/01/2026", cf.Arrival.Value)
	assert.Equal(t, "08/01/2026", cf.Departure.Value)
	assert.Equal(t, 3, cf.Nights.Value)

	// Every titled line is one traveller.
	assert.Equal(t, 2, cf.Persons.Value)
	assert.Equal(t, "ST", cf.RoomCode.Value)
}

func TestGenericExtractor(t *testing.T) {
	text := `Booking confirmation
Guest Name: Fatima Al Mansoori
Check-in: 10/04/2026
Check-out: 12/04/2026
2 Adults
Room Type: Executive Suite
Total 850.00 AED
`
	cf := (&GenericExtractor{}).Extract(text, "ops@agency.example")

	assert.Equal(t, "Fatima", cf.FirstName.Value)
	assert.Equal(t, "Mansoori", cf.FullName.Value)
	assert.Equal(t, "10/04/2026", cf.Arrival.Value)
	assert.Equal(t, "12/04/2026", cf.Departure.Value)
	assert.Equal(t, 2, cf.Nights.Value)
	assert.Equal(t, 2, cf.Persons.Value)
	assert.Equal(t, "ES", cf.RoomCode.Value)
	require.True(t, cf.NetTotal.Known)
	assert.Equal(t, "850", cf.NetTotal.Value.String())
}

func TestGenericExtractor_EmptyText(t *testing.T) {
	cf := (&GenericExtractor{}).Extract("", "")
	assert.True(t, cf.IsEmpty())
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()

	assert.Nil(t, reg.Lookup(nil))
	assert.Nil(t, reg.Lookup(&model.ProviderProfile{}))
	assert.Nil(t, reg.Lookup(&model.ProviderProfile{ExtractorKey: "no-such-provider"}))

	for _, key := range []string{"innlink", "agoda", "expedia", "travco", "dubailink",
		"nirvana", "dakkak", "duri", "alkhalidiah", "easemytrip", "chinasouthern", "generic"} {
		p := &model.ProviderProfile{ExtractorKey: key}
		assert.NotNil(t, reg.Lookup(p), "extractor %q", key)
	}
}

func TestRegistry_ProfileConfiguresChannelExtractor(t *testing.T) {
	reg := NewRegistry()

	gross := reg.Lookup(&model.ProviderProfile{
		ExtractorKey:    "innlink",
		Mode:            model.ModeTotalInclusive,
		MonthFirstDates: true,
	})
	require.NotNil(t, gross)
	cf := gross.Extract(innlinkBody, "")
	assert.Equal(t, "15/03/2026", cf.Arrival.Value)
	require.True(t, cf.Total.Known)
	assert.False(t, cf.NetTotal.Known)

	net := reg.Lookup(&model.ProviderProfile{
		ExtractorKey:    "agoda",
		Mode:            model.ModeNetExclusive,
		MonthFirstDates: true,
	})
	require.NotNil(t, net)
	cf = net.Extract(innlinkBody, "")
	require.True(t, cf.NetTotal.Known)
	assert.False(t, cf.Total.Known)

	// A profile without the month-first marker reads dates day-first.
	dayFirst := reg.Lookup(&model.ProviderProfile{
		ExtractorKey: "innlink",
		Mode:         model.ModeTotalInclusive,
	})
	cf = dayFirst.Extract("Arrive: 15/03/2026\n", "")
	assert.Equal(t, "15/03/2026", cf.Arrival.Value)
}
