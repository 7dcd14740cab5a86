package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
)

var (
	dubaiLinkFirstRe   = regexp.MustCompile(`(?i)(?:^|\n)Name:\s*(.+?)(?:\n|$)`)
	dubaiLinkLastRe    = regexp.MustCompile(`(?i)Last Name:\s*(.+?)(?:\n|$)`)
	dubaiLinkArriveRe  = regexp.MustCompile(`(?i)Arrival Date:\s*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`)
	dubaiLinkDepartRe  = regexp.MustCompile(`(?i)Departure Date:\s*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`)
	dubaiLinkAdultRe   = regexp.MustCompile(`(?i)\((\d+)\s+Adult`)
	dubaiLinkRoomRe    = regexp.MustCompile(`(?i)Room(?: Type)?:\s*(.+?)(?:\n|\()`)
	dubaiLinkCostRe    = regexp.MustCompile(`(?i)Booking cost price:\s*([0-9,]+\.?[0-9]*)\s*AED`)
	dubaiLinkPromoRe   = regexp.MustCompile(`(?i)Promo code:\s*([A-Z0-9\-]+)`)
)

// DubaiLinkExtractor parses Dubai Link booking vouchers, which split the
// guest name into separate first and last name lines.
type DubaiLinkExtractor struct{}

func (e *DubaiLinkExtractor) Extract(text, _ string) model.CanonicalFields {
	var cf model.CanonicalFields

	if m := dubaiLinkFirstRe.FindStringSubmatch(text); m != nil {
		first, _ := SplitGuestName(m[1])
		if first != "" {
			cf.FirstName = model.Known(first)
		}
	}
	if m := dubaiLinkLastRe.FindStringSubmatch(text); m != nil {
		last := strings.TrimSpace(m[1])
		if last != "" {
			fields := strings.Fields(last)
			cf.FullName = model.Known(fields[len(fields)-1])
		}
	}

	if m := dubaiLinkArriveRe.FindStringSubmatch(text); m != nil {
		cf.Arrival = model.Known(NormalizeDate(m[1], DayFirst))
	}
	if m := dubaiLinkDepartRe.FindStringSubmatch(text); m != nil {
		cf.Departure = model.Known(NormalizeDate(m[1], DayFirst))
	}
	if cf.Arrival.Known && cf.Departure.Known {
		if n, ok := NightsBetween(cf.Arrival.Value, cf.Departure.Value); ok {
			cf.Nights = model.Known(n)
		}
	}

	if m := dubaiLinkAdultRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			cf.Persons = model.Known(n)
		}
	}

	if m := dubaiLinkRoomRe.FindStringSubmatch(text); m != nil {
		if code := ClassifyRoom(m[1]); code != "" {
			cf.RoomCode = model.Known(code)
		}
	}

	if m := dubaiLinkCostRe.FindStringSubmatch(text); m != nil {
		if amount, ok := ParseAmount(m[1]); ok {
			cf.NetTotal = model.Known(amount)
		}
	}

	if m := dubaiLinkPromoRe.FindStringSubmatch(text); m != nil {
		cf.RateCode = model.Known(m[1])
	}

	return cf
}
