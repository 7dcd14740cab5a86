package model

// ExtractionRecord is one row of the raw extraction snapshot: the canonical
// fields pulled from a single matched message, plus provenance.
type ExtractionRecord struct {
	GuestName   string // full name of the reservation the message matched
	Provider    string // routed provider profile name
	Attribution string // bookkeeping label from the routing decision
	Subject     string
	Sender      string
	Folder      string
	Fields      CanonicalFields
}
