package extract

import (
	"regexp"
	"strconv"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
)

// The generic patterns cover the long tail of senders with no dedicated
// layout. Each field tries a few common labels in order.
var (
	genericNameRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Guest Name[:\s]*(?:Mrs\.?|Mr\.?|Ms\.?|Dr\.?)?\s*(.+?)(?:\n|$)`),
		regexp.MustCompile(`(?i)Passenger Name[:\s]*(?:Mrs\.?|Mr\.?|Ms\.?)?\s*(.+?)(?:\n|$)`),
		regexp.MustCompile(`(?i)(?:^|\n)Name[:\s]*(?:Mrs\.?|Mr\.?|Ms\.?)?\s*(.+?)(?:\n|$)`),
	}
	genericArriveRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Arrival(?: Date)?|Check[\- ]?in)[:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`),
		regexp.MustCompile(`(?i)(?:Arrival(?: Date)?|Check[\- ]?in)[:\s]*(\d{1,2}-[A-Za-z]{3}-\d{4})`),
	}
	genericDepartRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Departure(?: Date)?|Check[\- ]?out)[:\s]*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})`),
		regexp.MustCompile(`(?i)(?:Departure(?: Date)?|Check[\- ]?out)[:\s]*(\d{1,2}-[A-Za-z]{3}-\d{4})`),
	}
	genericNightsRe  = regexp.MustCompile(`(?i)(\d+)\s*Night`)
	genericPersonsRe = regexp.MustCompile(`(?i)(\d+)\s*(?:Adult|Person|Pax|Guest)`)
	genericRoomRe    = regexp.MustCompile(`(?i)Room(?: Type| Category)?[:\s]*(.+?)(?:\n|$)`)
	genericAmountRe  = regexp.MustCompile(`(?i)AED\s*([0-9,]+\.?[0-9]*)`)
	genericAmount2Re = regexp.MustCompile(`(?i)([0-9,]+\.?[0-9]*)\s*AED`)
)

// GenericExtractor applies best-effort patterns for providers without a
// dedicated layout.
type GenericExtractor struct{}

func (e *GenericExtractor) Extract(text, _ string) model.CanonicalFields {
	var cf model.CanonicalFields

	for _, re := range genericNameRes {
		if m := re.FindStringSubmatch(text); m != nil {
			first, last := SplitGuestName(m[1])
			if first != "" {
				cf.FirstName = model.Known(first)
				cf.FullName = model.Known(last)
				break
			}
		}
	}

	for _, re := range genericArriveRes {
		if m := re.FindStringSubmatch(text); m != nil {
			cf.Arrival = model.Known(NormalizeDate(m[1], DayFirst))
			break
		}
	}
	for _, re := range genericDepartRes {
		if m := re.FindStringSubmatch(text); m != nil {
			cf.Departure = model.Known(NormalizeDate(m[1], DayFirst))
			break
		}
	}

	if m := genericNightsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			cf.Nights = model.Known(n)
		}
	}
	if !cf.Nights.Known && cf.Arrival.Known && cf.Departure.Known {
		if n, ok := NightsBetween(cf.Arrival.Value, cf.Departure.Value); ok {
			cf.Nights = model.Known(n)
		}
	}

	if m := genericPersonsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			cf.Persons = model.Known(n)
		}
	}

	if m := genericRoomRe.FindStringSubmatch(text); m != nil {
		if code := ClassifyRoom(m[1]); code != "" {
			cf.RoomCode = model.Known(code)
		}
	}

	if m := genericAmountRe.FindStringSubmatch(text); m != nil {
		if amount, ok := ParseAmount(m[1]); ok {
			cf.NetTotal = model.Known(amount)
		}
	} else if m := genericAmount2Re.FindStringSubmatch(text); m != nil {
		if amount, ok := ParseAmount(m[1]); ok {
			cf.NetTotal = model.Known(amount)
		}
	}

	return cf
}
