package extract

import (
	"regexp"
	"strconv"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
)

var (
	emtGuestRe   = regexp.MustCompile(`(?i)(?:Guest|Traveller) Name[:\s]*(?:Mrs\.?|Mr\.?|Ms\.?)?\s*(.+?)(?:\n|$)`)
	emtArriveRe  = regexp.MustCompile(`(?i)Check[\- ]?in[:\s]*(\d{1,2}-[A-Za-z]{3}-\d{4}|\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`)
	emtDepartRe  = regexp.MustCompile(`(?i)Check[\- ]?out[:\s]*(\d{1,2}-[A-Za-z]{3}-\d{4}|\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`)
	emtNightsRe  = regexp.MustCompile(`(?i)(\d+)\s*Night`)
	emtGuestsRe  = regexp.MustCompile(`(?i)(\d+)\s*(?:Guest|Adult)`)
	emtRoomRe    = regexp.MustCompile(`(?i)Room(?:\s*Type)?[:\s]*(.+?)(?:\n|$)`)
	emtBookIDRe  = regexp.MustCompile(`(?i)Booking ID[:\s]*([A-Z0-9\-]+)`)
	emtAmountRe  = regexp.MustCompile(`(?i)(?:Total Amount|Amount Paid)[^0-9\n]*?([0-9,]+\.?[0-9]*)`)
)

// EaseMyTripExtractor parses EaseMyTrip hotel booking confirmations.
type EaseMyTripExtractor struct{}

func (e *EaseMyTripExtractor) Extract(text, _ string) model.CanonicalFields {
	var cf model.CanonicalFields

	if m := emtGuestRe.FindStringSubmatch(text); m != nil {
		first, last := SplitGuestName(m[1])
		if first != "" {
			cf.FirstName = model.Known(first)
			cf.FullName = model.Known(last)
		}
	}

	if m := emtArriveRe.FindStringSubmatch(text); m != nil {
		cf.Arrival = model.Known(NormalizeDate(m[1], DayFirst))
	}
	if m := emtDepartRe.FindStringSubmatch(text); m != nil {
		cf.Departure = model.Known(NormalizeDate(m[1], DayFirst))
	}

	if m := emtNightsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			cf.Nights = model.Known(n)
		}
	}
	if !cf.Nights.Known && cf.Arrival.Known && cf.Departure.Known {
		if n, ok := NightsBetween(cf.Arrival.Value, cf.Departure.Value); ok {
			cf.Nights = model.Known(n)
		}
	}

	if m := emtGuestsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			cf.Persons = model.Known(n)
		}
	}

	if m := emtRoomRe.FindStringSubmatch(text); m != nil {
		if code := ClassifyRoom(m[1]); code != "" {
			cf.RoomCode = model.Known(code)
		}
	}

	if m := emtBookIDRe.FindStringSubmatch(text); m != nil {
		cf.RateCode = model.Known(m[1])
	}

	if m := emtAmountRe.FindStringSubmatch(text); m != nil {
		if amount, ok := ParseAmount(m[1]); ok {
			cf.NetTotal = model.Known(amount)
		}
	}

	return cf
}
