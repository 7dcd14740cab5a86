package model

import "github.com/shopspring/decimal"

// CanonicalFields is the extraction result for one confirmation message.
// Every source extractor populates this fixed attribute set; attributes the
// source text does not yield stay unknown.
//
// Dates, once populated, are canonical dd/mm/yyyy text regardless of the
// originating format. Money fields are decimal amounts in AED, never
// pre-formatted strings.
type CanonicalFields struct {
	FirstName  Field[string]
	FullName   Field[string]
	Arrival    Field[string]
	Departure  Field[string]
	Nights     Field[int]
	Persons    Field[int]
	RoomCode   Field[string]
	RateCode   Field[string]
	SourceName Field[string]

	// NetTotal excludes the TDF tax component; Total includes it. Exactly
	// one of the two is extracted per financial mode, the other is derived.
	NetTotal      Field[decimal.Decimal]
	Total         Field[decimal.Decimal]
	TaxTDF        Field[decimal.Decimal]
	AmountExclTax Field[decimal.Decimal]
	ADR           Field[decimal.Decimal]
}

// Merge returns a copy of c with every known attribute of other written over
// the corresponding attribute of c. Later messages override earlier ones.
func (c CanonicalFields) Merge(other CanonicalFields) CanonicalFields {
	merged := c
	if other.FirstName.Known {
		merged.FirstName = other.FirstName
	}
	if other.FullName.Known {
		merged.FullName = other.FullName
	}
	if other.Arrival.Known {
		merged.Arrival = other.Arrival
	}
	if other.Departure.Known {
		merged.Departure = other.Departure
	}
	if other.Nights.Known {
		merged.Nights = other.Nights
	}
	if other.Persons.Known {
		merged.Persons = other.Persons
	}
	if other.RoomCode.Known {
		merged.RoomCode = other.RoomCode
	}
	if other.RateCode.Known {
		merged.RateCode = other.RateCode
	}
	if other.SourceName.Known {
		merged.SourceName = other.SourceName
	}
	if other.NetTotal.Known {
		merged.NetTotal = other.NetTotal
	}
	if other.Total.Known {
		merged.Total = other.Total
	}
	if other.TaxTDF.Known {
		merged.TaxTDF = other.TaxTDF
	}
	if other.AmountExclTax.Known {
		merged.AmountExclTax = other.AmountExclTax
	}
	if other.ADR.Known {
		merged.ADR = other.ADR
	}
	return merged
}

// IsEmpty reports whether no attribute is known at all.
func (c CanonicalFields) IsEmpty() bool {
	return !c.FirstName.Known && !c.FullName.Known &&
		!c.Arrival.Known && !c.Departure.Known &&
		!c.Nights.Known && !c.Persons.Known &&
		!c.RoomCode.Known && !c.RateCode.Known && !c.SourceName.Known &&
		!c.NetTotal.Known && !c.Total.Known && !c.TaxTDF.Known &&
		!c.AmountExclTax.Known && !c.ADR.Known
}
