package extract

import (
	"regexp"
	"strconv"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
)

var (
	dakkakGuestRe   = regexp.MustCompile(`(?i)Guest Name[:\s]*(?:Mrs\.?|Mr\.?|Ms\.?)?\s*(.+?)(?:\n|$)`)
	dakkakArriveRe  = regexp.MustCompile(`(?i)Arrival[:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`)
	dakkakDepartRe  = regexp.MustCompile(`(?i)Departure[:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`)
	dakkakNightsRe  = regexp.MustCompile(`(?i)(\d+)\s*Night\(s\)`)
	dakkakPaxRe     = regexp.MustCompile(`(?i)(\d+)\s*(?:Adult|Pax)`)
	dakkakRoomRe    = regexp.MustCompile(`(?i)Room(?: Type)?[:\s]*(.+?)(?:\n|$)`)
	dakkakRefRe     = regexp.MustCompile(`\b(BKGHO[A-Z0-9]*)\b`)
	dakkakPromoRe   = regexp.MustCompile(`(?i)Promo Code[:\s]*([A-Z0-9\-]+)`)
	dakkakAmountRe  = regexp.MustCompile(`(?i)AED\s*([0-9,]+\.?[0-9]*)`)
)

// DakkakExtractor parses Dakkak DMC confirmations. Their bookings carry a
// BKGHO reference which doubles as the rate identifier when no promo code
// appears.
type DakkakExtractor struct{}

func (e *DakkakExtractor) Extract(text, _ string) model.CanonicalFields {
	var cf model.CanonicalFields

	if m := dakkakGuestRe.FindStringSubmatch(text); m != nil {
		first, last := SplitGuestName(m[1])
		if first != "" {
			cf.FirstName = model.Known(first)
			cf.FullName = model.Known(last)
		}
	}

	if m := dakkakArriveRe.FindStringSubmatch(text); m != nil {
		cf.Arrival = model.Known(NormalizeDate(m[1], DayFirst))
	}
	if m := dakkakDepartRe.FindStringSubmatch(text); m != nil {
		cf.Departure = model.Known(NormalizeDate(m[1], DayFirst))
	}

	if m := dakkakNightsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			cf.Nights = model.Known(n)
		}
	}
	if !cf.Nights.Known && cf.Arrival.Known && cf.Departure.Known {
		if n, ok := NightsBetween(cf.Arrival.Value, cf.Departure.Value); ok {
			cf.Nights = model.Known(n)
		}
	}

	if m := dakkakPaxRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			cf.Persons = model.Known(n)
		}
	}

	if m := dakkakRoomRe.FindStringSubmatch(text); m != nil {
		if code := ClassifyRoom(m[1]); code != "" {
			cf.RoomCode = model.Known(code)
		}
	}

	if m := dakkakPromoRe.FindStringSubmatch(text); m != nil {
		cf.RateCode = model.Known(m[1])
	} else if m := dakkakRefRe.FindStringSubmatch(text); m != nil {
		cf.RateCode = model.Known(m[1])
	}

	if m := dakkakAmountRe.FindStringSubmatch(text); m != nil {
		if amount, ok := ParseAmount(m[1]); ok {
			cf.NetTotal = model.Known(amount)
		}
	}

	return cf
}
