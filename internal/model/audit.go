package model

// Verdict classifies how well a reservation matched its extracted messages.
type Verdict string

// Verdict constants.
const (
	VerdictPass        Verdict = "PASS"
	VerdictWarning     Verdict = "WARNING"
	VerdictFail        Verdict = "FAIL"
	VerdictNoEmailData Verdict = "NO_EMAIL_DATA"
)

// AuditRecord pairs a reservation with the unioned canonical fields extracted
// from all messages matched to it, plus the comparison outcome. It is created
// once per reconciliation pass and not mutated afterward.
type AuditRecord struct {
	Reservation ReservationRecord
	Extracted   CanonicalFields

	// FieldsCompared counts attribute pairs known on both sides;
	// FieldsMatching counts those judged equal.
	FieldsCompared  int
	FieldsMatching  int
	MatchPercentage Field[float64]
	Verdict         Verdict

	// Issues are reservation-internal consistency findings, reported
	// alongside the match verdict, never instead of it.
	Issues []string
}
