package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
)

var (
	duriGuestRe    = regexp.MustCompile(`(?:MRS|MR|MS)\.?\s+([A-Z][A-Z .'\-]+?)(?:\n|,|$)`)
	duriTitleRe    = regexp.MustCompile(`(?:MRS|MR|MS)\.`)
	duriCheckInRe  = regexp.MustCompile(`(?i)CHECK[\- ]?IN[:\s]*(\d{1,2}-[A-Za-z]{3}-\d{4})`)
	duriCheckOutRe = regexp.MustCompile(`(?i)CHECK[\- ]?OUT[:\s]*(\d{1,2}-[A-Za-z]{3}-\d{4})`)
	duriNightsRe   = regexp.MustCompile(`(?i)NIGHT[S]?[:\s]*(\d+)`)
	duriRoomRe     = regexp.MustCompile(`(?i)ROOM(?: TYPE)?[:\s]*(.+?)(?:\n|$)`)
	duriAmountRe   = regexp.MustCompile(`(?i)AED\s*([0-9,]+\.?[0-9]*)`)
)

// DuriExtractor parses Duri Travel rooming lists. Guests appear as
// "MR. GIVEN SURNAME" lines in upper case; the count of titled lines
// gives the party size.
type DuriExtractor struct{}

func (e *DuriExtractor) Extract(text, _ string) model.CanonicalFields {
	var cf model.CanonicalFields

	if m := duriGuestRe.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(m[1])
		fields := strings.Fields(name)
		if len(fields) > 0 {
			cf.FirstName = model.Known(fields[0])
			cf.FullName = model.Known(fields[len(fields)-1])
		}
	}

	if m := duriCheckInRe.FindStringSubmatch(text); m != nil {
		cf.Arrival = model.Known(NormalizeDate(m[1], DayFirst))
	}
	if m := duriCheckOutRe.FindStringSubmatch(text); m != nil {
		cf.Departure = model.Known(NormalizeDate(m[1], DayFirst))
	}

	if m := duriNightsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			cf.Nights = model.Known(n)
		}
	}
	if !cf.Nights.Known && cf.Arrival.Known && cf.Departure.Known {
		if n, ok := NightsBetween(cf.Arrival.Value, cf.Departure.Value); ok {
			cf.Nights = model.Known(n)
		}
	}

	// Rooming lists name every traveller with a title prefix.
	if titles := duriTitleRe.FindAllString(text, -1); len(titles) > 0 {
		cf.Persons = model.Known(len(titles))
	}

	if m := duriRoomRe.FindStringSubmatch(text); m != nil {
		if code := ClassifyRoom(m[1]); code != "" {
			cf.RoomCode = model.Known(code)
		}
	}

	if m := duriAmountRe.FindStringSubmatch(text); m != nil {
		if amount, ok := ParseAmount(m[1]); ok {
			cf.NetTotal = model.Known(amount)
		}
	}

	return cf
}
