package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
)

// Patterns for channel-manager confirmations. These messages share one
// layout regardless of which OTA originated the booking.
var (
	innlinkGuestRe        = regexp.MustCompile(`(?i)Guest Name:\s*(.+?)(?:\n|Address:)`)
	innlinkArriveRe       = regexp.MustCompile(`(?i)Arrive:\s*(\d{1,2}[/\-]\d{1,2}[/\-]\d{4})`)
	innlinkDepartRe       = regexp.MustCompile(`(?i)Depart:\s*(\d{1,2}[/\-]\d{1,2}[/\-]\d{4})`)
	innlinkNightsRe       = regexp.MustCompile(`(?i)Total Nights\s*(\d+)\s*night`)
	innlinkPersonsRe      = regexp.MustCompile(`(?i)Adult/Children:\s*(\d+)/\d+`)
	innlinkRoomRe         = regexp.MustCompile(`(?i)Room Type:\s*(.+?)(?:\n|Rate|$)`)
	innlinkRateCodeRe     = regexp.MustCompile(`(?i)Rate Code:\s*([A-Z0-9]+)`)
	innlinkRateNameRe     = regexp.MustCompile(`(?i)Rate Name:\s*(.+?)(?:\n|Rate Code:)`)
	innlinkCompanyRe      = regexp.MustCompile(`(?is)Travel Agent\s*(?:.*\n)*?Name:\s*(.+?)(?:\n|$)`)
	innlinkChargesRe      = regexp.MustCompile(`(?i)Total charges:\s*AED\s*([0-9,]+\.?[0-9]*)`)
	innlinkSubjArrivalRe  = regexp.MustCompile(`(?i)Arrival Date[:]*\s*(\d{1,2}[/\-]\d{1,2}[/\-]\d{4})`)
)

// InnlinkExtractor handles the shared-mailbox confirmation layout. The same
// contract serves every OTA behind that address; the provider profile decides
// both settings. ReportsGrossTotal marks the variants whose reported figure
// already includes the TDF component (Booking.com, Brand.com and the mailbox
// default); Dates selects how ambiguous numeric dates are read.
type InnlinkExtractor struct {
	ReportsGrossTotal bool
	Dates             DateOrder
}

// Extract implements Extractor.
func (e *InnlinkExtractor) Extract(text, _ string) model.CanonicalFields {
	var cf model.CanonicalFields

	if m := innlinkGuestRe.FindStringSubmatch(text); m != nil {
		first, last := SplitGuestName(m[1])
		if first != "" {
			cf.FirstName = model.Known(first)
			cf.FullName = model.Known(last)
		}
	}

	// Dates are read in the profile's declared order; fall back to the
	// subject line when the body carries no arrival date.
	if m := innlinkArriveRe.FindStringSubmatch(text); m != nil {
		cf.Arrival = model.Known(NormalizeDate(m[1], e.Dates))
	} else if m := innlinkSubjArrivalRe.FindStringSubmatch(text); m != nil {
		cf.Arrival = model.Known(NormalizeDate(m[1], e.Dates))
	}
	if m := innlinkDepartRe.FindStringSubmatch(text); m != nil {
		cf.Departure = model.Known(NormalizeDate(m[1], e.Dates))
	}

	if m := innlinkNightsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			cf.Nights = model.Known(n)
		}
	}
	if !cf.Nights.Known && cf.Arrival.Known && cf.Departure.Known {
		if n, ok := NightsBetween(cf.Arrival.Value, cf.Departure.Value); ok {
			cf.Nights = model.Known(n)
		}
	}

	if m := innlinkPersonsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			cf.Persons = model.Known(n)
		}
	}

	if m := innlinkRoomRe.FindStringSubmatch(text); m != nil {
		if code := ClassifyRoom(m[1]); code != "" {
			cf.RoomCode = model.Known(code)
		}
	}

	// Rate code is primary; rate name is the fallback.
	if m := innlinkRateCodeRe.FindStringSubmatch(text); m != nil {
		cf.RateCode = model.Known(m[1])
	} else if m := innlinkRateNameRe.FindStringSubmatch(text); m != nil {
		cf.RateCode = model.Known(strings.TrimSpace(m[1]))
	}

	if m := innlinkCompanyRe.FindStringSubmatch(text); m != nil {
		cf.SourceName = model.Known(strings.TrimSpace(m[1]))
	}

	if m := innlinkChargesRe.FindStringSubmatch(text); m != nil {
		if amount, ok := ParseAmount(m[1]); ok {
			if e.ReportsGrossTotal {
				cf.Total = model.Known(amount)
			} else {
				cf.NetTotal = model.Known(amount)
			}
		}
	}

	return cf
}
