package extract

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the canonical day/month/year form every date is stored in.
const DateLayout = "02/01/2006"

// DateOrder selects how an ambiguous numeric date is read.
type DateOrder int

// Date order constants.
const (
	// DayFirst reads 03/04/2025 as 3 April.
	DayFirst DateOrder = iota
	// MonthFirst reads 03/04/2025 as April 3. The channel-manager mailbox
	// delivers dates this way.
	MonthFirst
)

var dayFirstLayouts = []string{
	"02/01/2006", "2/1/2006",
	"02-01-2006", "2-1-2006",
	"02.01.2006", "2.1.2006",
}

var monthFirstLayouts = []string{
	"01/02/2006", "1/2/2006",
}

var abbrevMonthLayouts = []string{
	"02-Jan-2006", "2-Jan-2006",
	"02 Jan 2006", "2 Jan 2006",
}

// NormalizeDate parses s under the recognized formats and returns the
// canonical dd/mm/yyyy form. The preferred order is tried first, then the
// other numeric order, then the day-abbreviated-month-year form. Input that
// parses under no format is returned unchanged so downstream fields are
// never blocked. Normalizing an already-canonical date is a no-op.
func NormalizeDate(s string, order DateOrder) string {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return s
	}

	first, second := dayFirstLayouts, monthFirstLayouts
	if order == MonthFirst {
		first, second = monthFirstLayouts, dayFirstLayouts
	}

	for _, layouts := range [][]string{first, second} {
		for _, layout := range layouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t.Format(DateLayout)
			}
		}
	}

	// 29-DEC-2025 and 29-Dec-2025 both appear in the wild; Go's month
	// names are title case.
	titled := titleMonth(raw)
	for _, layout := range abbrevMonthLayouts {
		if t, err := time.Parse(layout, titled); err == nil {
			return t.Format(DateLayout)
		}
	}

	return s
}

// titleMonth title-cases alphabetic runs so "29-DEC-2025" parses.
func titleMonth(s string) string {
	var b strings.Builder
	prevAlpha := false
	for _, r := range s {
		isAlpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		switch {
		case isAlpha && !prevAlpha:
			b.WriteRune(upper(r))
		case isAlpha:
			b.WriteRune(lower(r))
		default:
			b.WriteRune(r)
		}
		prevAlpha = isAlpha
	}
	return b.String()
}

func upper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r - 'A' + 'a'
	}
	return r
}

// NightsBetween returns the night count between two canonical dates.
func NightsBetween(arrival, departure string) (int, bool) {
	a, err := time.Parse(DateLayout, strings.TrimSpace(arrival))
	if err != nil {
		return 0, false
	}
	d, err := time.Parse(DateLayout, strings.TrimSpace(departure))
	if err != nil {
		return 0, false
	}
	nights := int(d.Sub(a).Hours() / 24)
	if nights < 0 {
		return 0, false
	}
	return nights, true
}

// SplitGuestName decomposes a free-text guest name into the first
// whitespace-delimited token and the last token (surname position). This is
// the source-confirmed convention for single-field guest names, not a guess
// at arbitrary name grammar.
func SplitGuestName(name string) (first, last string) {
	parts := strings.Fields(stripTitle(name))
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], parts[0]
	default:
		return parts[0], parts[len(parts)-1]
	}
}

// stripTitle removes a leading honorific (Mr., Mrs., Ms., Dr., Prof.).
func stripTitle(name string) string {
	trimmed := strings.TrimSpace(name)
	for _, title := range []string{"mr.", "mrs.", "ms.", "dr.", "prof.", "mr", "mrs", "ms"} {
		if len(trimmed) > len(title) && strings.EqualFold(trimmed[:len(title)], title) {
			rest := trimmed[len(title):]
			if strings.HasPrefix(rest, " ") {
				return strings.TrimSpace(rest)
			}
		}
	}
	return trimmed
}

// ParseAmount parses a currency amount with optional thousands separators.
func ParseAmount(s string) (decimal.Decimal, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if cleaned == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
