package extract

import (
	"regexp"
	"strconv"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
)

var (
	nirvanaGuestRe   = regexp.MustCompile(`(?i)(?:Guest Name[:\s]*)?(?:Mrs|Mr|Ms)\.?\s+([A-Za-z][A-Za-z .'\-]+?)(?:\n|,|$)`)
	nirvanaCheckInRe = regexp.MustCompile(`(?i)Check\s*In[:\s]*(\d{1,2}-[A-Za-z]{3}-\d{4})`)
	nirvanaCheckOutRe = regexp.MustCompile(`(?i)Check\s*Out[:\s]*(\d{1,2}-[A-Za-z]{3}-\d{4})`)
	nirvanaNightsRe  = regexp.MustCompile(`(?i)No\.?\s*of\s*Nights[:\s]*(\d+)`)
	nirvanaPaxRe     = regexp.MustCompile(`(?i)(\d+)\s*Pax`)
	nirvanaRoomRe    = regexp.MustCompile(`(?i)Room Type[:\s]*(.+?)(?:\n|$)`)
	nirvanaAmountRe  = regexp.MustCompile(`(?i)AED\s*([0-9,]+\.?[0-9]*)`)
)

// NirvanaExtractor parses Nirvana Travel confirmations, which use
// dd-MMM-yyyy dates and title-prefixed guest names.
type NirvanaExtractor struct{}

func (e *NirvanaExtractor) Extract(text, _ string) model.CanonicalFields {
	var cf model.CanonicalFields

	if m := nirvanaGuestRe.FindStringSubmatch(text); m != nil {
		first, last := SplitGuestName(m[1])
		if first != "" {
			cf.FirstName = model.Known(first)
			cf.FullName = model.Known(last)
		}
	}

	if m := nirvanaCheckInRe.FindStringSubmatch(text); m != nil {
		cf.Arrival = model.Known(NormalizeDate(m[1], DayFirst))
	}
	if m := nirvanaCheckOutRe.FindStringSubmatch(text); m != nil {
		cf.Departure = model.Known(NormalizeDate(m[1], DayFirst))
	}

	if m := nirvanaNightsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			cf.Nights = model.Known(n)
		}
	}
	if !cf.Nights.Known && cf.Arrival.Known && cf.Departure.Known {
		if n, ok := NightsBetween(cf.Arrival.Value, cf.Departure.Value); ok {
			cf.Nights = model.Known(n)
		}
	}

	if m := nirvanaPaxRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			cf.Persons = model.Known(n)
		}
	}

	if m := nirvanaRoomRe.FindStringSubmatch(text); m != nil {
		if code := ClassifyRoom(m[1]); code != "" {
			cf.RoomCode = model.Known(code)
		}
	}

	if m := nirvanaAmountRe.FindStringSubmatch(text); m != nil {
		if amount, ok := ParseAmount(m[1]); ok {
			cf.NetTotal = model.Known(amount)
		}
	}

	return cf
}
