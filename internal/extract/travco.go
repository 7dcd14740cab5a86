package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
)

var (
	travcoPassengerRe = regexp.MustCompile(`(?i)Passenger Name[:\s]*(?:Mrs\.?|Mr\.?|Ms\.?|Dr\.?)?\s*(.+?)(?:\n|$)`)
	travcoStayRe      = regexp.MustCompile(`(?i)From\s+(\d{1,2}/\d{1,2}/\d{4})\s+To\s+(\d{1,2}/\d{1,2}/\d{4})`)
	travcoAdultsRe    = regexp.MustCompile(`(?i)for\s+(\d+)\s+adult`)
	travcoRoomRe      = regexp.MustCompile(`(?i)Room Category[:\s]*(.+?)(?:\n|$)`)
	travcoRateRe      = regexp.MustCompile(`\b(ED-\s?TO[A-Z0-9]*)\b`)
	travcoAmountRe    = regexp.MustCompile(`(?i)AED\s*([0-9,]+\.?[0-9]*)`)
)

// TravcoExtractor parses Travco wholesale booking confirmations.
type TravcoExtractor struct{}

func (e *TravcoExtractor) Extract(text, _ string) model.CanonicalFields {
	var cf model.CanonicalFields

	if m := travcoPassengerRe.FindStringSubmatch(text); m != nil {
		first, last := SplitGuestName(m[1])
		if first != "" {
			cf.FirstName = model.Known(first)
			cf.FullName = model.Known(last)
		}
	}

	if m := travcoStayRe.FindStringSubmatch(text); m != nil {
		cf.Arrival = model.Known(NormalizeDate(m[1], DayFirst))
		cf.Departure = model.Known(NormalizeDate(m[2], DayFirst))
		if n, ok := NightsBetween(cf.Arrival.Value, cf.Departure.Value); ok {
			cf.Nights = model.Known(n)
		}
	}

	if m := travcoAdultsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			cf.Persons = model.Known(n)
		}
	}

	if m := travcoRoomRe.FindStringSubmatch(text); m != nil {
		if code := ClassifyRoom(m[1]); code != "" {
			cf.RoomCode = model.Known(code)
		}
	}

	if m := travcoRateRe.FindStringSubmatch(text); m != nil {
		cf.RateCode = model.Known(strings.ReplaceAll(m[1], " ", ""))
	}

	if m := travcoAmountRe.FindStringSubmatch(text); m != nil {
		if amount, ok := ParseAmount(m[1]); ok {
			cf.NetTotal = model.Known(amount)
		}
	}

	return cf
}
