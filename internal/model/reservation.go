package model

import "github.com/shopspring/decimal"

// ReservationRecord is one row from the entered-on export. It is produced by
// the tabular loader and read-only to the audit pipeline.
type ReservationRecord struct {
	FirstName    string
	FullName     string
	Arrival      string // canonical dd/mm/yyyy
	Departure    string
	RoomCode     string
	RateCode     string
	CompanyLabel string // C_T_S agency/company name as entered

	Nights  Field[int]
	Persons Field[int]

	// Monetary figures already computed by the source system.
	NetTotal Field[decimal.Decimal]
	TaxTDF   Field[decimal.Decimal]
	Total    Field[decimal.Decimal]
	ADR      Field[decimal.Decimal]
}
