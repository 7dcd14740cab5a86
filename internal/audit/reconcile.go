// Package audit compares reservation export rows against the fields
// recovered from confirmation emails and assigns a verdict per booking.
package audit

import (
	"fmt"
	"strings"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/extract"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
)

// Verdict thresholds on the match percentage.
const (
	passThreshold    = 80.0
	warningThreshold = 60.0
)

// Room codes treated as interchangeable when comparing. Superior king and
// superior twin rooms are routinely swapped at check-in.
var roomEquivalents = map[string]string{
	"ST": "SK",
	"SK": "ST",
}

// Reconcile merges the extracted field sets for one reservation and scores
// them against the export row. Attributes missing on either side are left
// out of the denominator.
func Reconcile(res model.ReservationRecord, extracted []model.CanonicalFields) model.AuditRecord {
	var merged model.CanonicalFields
	for _, cf := range extracted {
		merged = merged.Merge(cf)
	}

	rec := model.AuditRecord{
		Reservation: res,
		Extracted:   merged,
	}

	type comparison struct {
		name     string
		resKnown bool
		match    func() bool
	}

	comparisons := []comparison{
		{
			name:     "FULL_NAME",
			resKnown: res.FullName != "" && merged.FullName.Known,
			match:    func() bool { return textEqual(res.FullName, merged.FullName.Value) },
		},
		{
			name:     "FIRST_NAME",
			resKnown: res.FirstName != "" && merged.FirstName.Known,
			match:    func() bool { return textEqual(res.FirstName, merged.FirstName.Value) },
		},
		{
			name:     "ARRIVAL",
			resKnown: res.Arrival != "" && merged.Arrival.Known,
			match:    func() bool { return dateEqual(res.Arrival, merged.Arrival.Value) },
		},
		{
			name:     "DEPARTURE",
			resKnown: res.Departure != "" && merged.Departure.Known,
			match:    func() bool { return dateEqual(res.Departure, merged.Departure.Value) },
		},
		{
			name:     "NIGHTS",
			resKnown: res.Nights.Known && merged.Nights.Known,
			match:    func() bool { return res.Nights.Value == merged.Nights.Value },
		},
		{
			name:     "PERSONS",
			resKnown: res.Persons.Known && merged.Persons.Known,
			match:    func() bool { return res.Persons.Value == merged.Persons.Value },
		},
		{
			name:     "ROOM",
			resKnown: res.RoomCode != "" && merged.RoomCode.Known,
			match:    func() bool { return roomEqual(res.RoomCode, merged.RoomCode.Value) },
		},
	}

	for _, c := range comparisons {
		if !c.resKnown {
			continue
		}
		rec.FieldsCompared++
		if c.match() {
			rec.FieldsMatching++
		} else {
			rec.Issues = append(rec.Issues, fmt.Sprintf("%s mismatch", c.name))
		}
	}

	if rec.FieldsCompared == 0 {
		rec.Verdict = model.VerdictNoEmailData
	} else {
		pct := float64(rec.FieldsMatching) / float64(rec.FieldsCompared) * 100
		rec.MatchPercentage = model.Known(pct)
		switch {
		case pct >= passThreshold:
			rec.Verdict = model.VerdictPass
		case pct >= warningThreshold:
			rec.Verdict = model.VerdictWarning
		default:
			rec.Verdict = model.VerdictFail
		}
	}

	rec.Issues = append(rec.Issues, Validate(res)...)

	return rec
}

// Validate checks a reservation row for internal inconsistencies
// independent of any email evidence.
func Validate(res model.ReservationRecord) []string {
	var issues []string

	if res.FullName == "" {
		issues = append(issues, "missing guest name")
	}
	if res.Arrival == "" {
		issues = append(issues, "missing arrival date")
	}
	if res.Departure == "" {
		issues = append(issues, "missing departure date")
	}

	if res.Arrival != "" && res.Departure != "" && res.Nights.Known {
		if span, ok := extract.NightsBetween(
			extract.NormalizeDate(res.Arrival, extract.DayFirst),
			extract.NormalizeDate(res.Departure, extract.DayFirst),
		); ok && span != res.Nights.Value {
			issues = append(issues, fmt.Sprintf("nights %d disagree with date span %d", res.Nights.Value, span))
		}
	}

	if res.Persons.Known && res.Persons.Value <= 0 {
		issues = append(issues, "non-positive person count")
	}

	if res.NetTotal.Known && res.TaxTDF.Known && res.NetTotal.Value.LessThan(res.TaxTDF.Value) {
		issues = append(issues, "net amount below tourism fee")
	}

	return issues
}

func textEqual(a, b string) bool {
	return canonText(a) == canonText(b)
}

func canonText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// dateEqual re-normalizes both sides day-first so that a value that was
// already canonicalized compares equal to a raw export date.
func dateEqual(a, b string) bool {
	return extract.NormalizeDate(strings.TrimSpace(a), extract.DayFirst) ==
		extract.NormalizeDate(strings.TrimSpace(b), extract.DayFirst)
}

func roomEqual(a, b string) bool {
	ca, cb := canonRoom(a), canonRoom(b)
	if ca == cb {
		return true
	}
	return roomEquivalents[ca] == cb
}

func canonRoom(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}
