package extract

import (
	"regexp"
	"strconv"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
)

var (
	csaPassengerRe = regexp.MustCompile(`(?i)Passenger Name[:\s]*(?:Mrs\.?|Mr\.?|Ms\.?)?\s*(.+?)(?:\n|$)`)
	csaCheckInRe   = regexp.MustCompile(`(?i)Check[\- ]?in[:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4}|\d{1,2}-[A-Za-z]{3}-\d{4})`)
	csaCheckOutRe  = regexp.MustCompile(`(?i)Check[\- ]?out[:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4}|\d{1,2}-[A-Za-z]{3}-\d{4})`)
	csaNightsRe    = regexp.MustCompile(`(?i)(\d+)\s*Night`)
	csaCrewRe      = regexp.MustCompile(`(?i)(\d+)\s*(?:Crew|Passenger|Pax)`)
	csaRoomRe      = regexp.MustCompile(`(?i)Room(?:\s*Type)?[:\s]*(.+?)(?:\n|$)`)
	csaFlightRe    = regexp.MustCompile(`\b(CZ\s?\d{3,4})\b`)
	csaPNRRe       = regexp.MustCompile(`(?i)PNR[:\s]*([A-Z0-9]{5,8})`)
)

// ChinaSouthernExtractor parses airline crew layover bookings. The flight
// number stands in for the rate code, and the booking always lands under
// the carrier's crew account.
type ChinaSouthernExtractor struct{}

func (e *ChinaSouthernExtractor) Extract(text, _ string) model.CanonicalFields {
	var cf model.CanonicalFields

	if m := csaPassengerRe.FindStringSubmatch(text); m != nil {
		first, last := SplitGuestName(m[1])
		if first != "" {
			cf.FirstName = model.Known(first)
			cf.FullName = model.Known(last)
		}
	}

	if m := csaCheckInRe.FindStringSubmatch(text); m != nil {
		cf.Arrival = model.Known(NormalizeDate(m[1], DayFirst))
	}
	if m := csaCheckOutRe.FindStringSubmatch(text); m != nil {
		cf.Departure = model.Known(NormalizeDate(m[1], DayFirst))
	}

	if m := csaNightsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			cf.Nights = model.Known(n)
		}
	}
	if !cf.Nights.Known && cf.Arrival.Known && cf.Departure.Known {
		if n, ok := NightsBetween(cf.Arrival.Value, cf.Departure.Value); ok {
			cf.Nights = model.Known(n)
		}
	}

	if m := csaCrewRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			cf.Persons = model.Known(n)
		}
	}

	if m := csaRoomRe.FindStringSubmatch(text); m != nil {
		if code := ClassifyRoom(m[1]); code != "" {
			cf.RoomCode = model.Known(code)
		}
	}

	if m := csaFlightRe.FindStringSubmatch(text); m != nil {
		cf.RateCode = model.Known(m[1])
	} else if m := csaPNRRe.FindStringSubmatch(text); m != nil {
		cf.RateCode = model.Known(m[1])
	}

	cf.SourceName = model.Known("C- China Southern Air")

	return cf
}
