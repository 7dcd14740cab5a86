package extract

import (
	"regexp"
	"strconv"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
)

var (
	alkGuestRe   = regexp.MustCompile(`(?i)Guest(?:\s*Name)?[:\s]*(?:Mrs\.?|Mr\.?|Ms\.?)?\s*(.+?)(?:\n|$)`)
	alkArriveRe  = regexp.MustCompile(`(?i)Check[\- ]?in[:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`)
	alkDepartRe  = regexp.MustCompile(`(?i)Check[\- ]?out[:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`)
	alkNightsRe  = regexp.MustCompile(`(?i)Nights?[:\s]*(\d+)`)
	alkPaxRe     = regexp.MustCompile(`(?i)(\d+)\s*(?:Adult|Person|Pax)`)
	alkRoomRe    = regexp.MustCompile(`(?i)Room(?:\s*Type)?[:\s]*(.+?)(?:\n|$)`)
	alkAmountRe  = regexp.MustCompile(`(?i)(?:Total|Net)[^0-9\n]*?([0-9,]+\.?[0-9]*)\s*AED`)
	alkAmount2Re = regexp.MustCompile(`(?i)AED\s*([0-9,]+\.?[0-9]*)`)
)

// AlKhalidiahExtractor parses Al Khalidiah Tourism confirmations.
type AlKhalidiahExtractor struct{}

func (e *AlKhalidiahExtractor) Extract(text, _ string) model.CanonicalFields {
	var cf model.CanonicalFields

	if m := alkGuestRe.FindStringSubmatch(text); m != nil {
		first, last := SplitGuestName(m[1])
		if first != "" {
			cf.FirstName = model.Known(first)
			cf.FullName = model.Known(last)
		}
	}

	if m := alkArriveRe.FindStringSubmatch(text); m != nil {
		cf.Arrival = model.Known(NormalizeDate(m[1], DayFirst))
	}
	if m := alkDepartRe.FindStringSubmatch(text); m != nil {
		cf.Departure = model.Known(NormalizeDate(m[1], DayFirst))
	}

	if m := alkNightsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			cf.Nights = model.Known(n)
		}
	}
	if !cf.Nights.Known && cf.Arrival.Known && cf.Departure.Known {
		if n, ok := NightsBetween(cf.Arrival.Value, cf.Departure.Value); ok {
			cf.Nights = model.Known(n)
		}
	}

	if m := alkPaxRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			cf.Persons = model.Known(n)
		}
	}

	if m := alkRoomRe.FindStringSubmatch(text); m != nil {
		if code := ClassifyRoom(m[1]); code != "" {
			cf.RoomCode = model.Known(code)
		}
	}

	if m := alkAmountRe.FindStringSubmatch(text); m != nil {
		if amount, ok := ParseAmount(m[1]); ok {
			cf.NetTotal = model.Known(amount)
		}
	} else if m := alkAmount2Re.FindStringSubmatch(text); m != nil {
		if amount, ok := ParseAmount(m[1]); ok {
			cf.NetTotal = model.Known(amount)
		}
	}

	return cf
}
