// Package finance derives the tax and rate figures for a reservation from
// whichever single amount a confirmation reports.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/extract"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
)

// Tourism Dirham is charged per room-night, capped at 30 nights, at a
// higher rate for multi-bedroom and family units.
var (
	tdfStandardRate = decimal.NewFromInt(20)
	tdfFamilyRate   = decimal.NewFromInt(40)

	// Combined VAT and municipality fee divisor on the TDF-exclusive net.
	taxDivisor = decimal.RequireFromString("1.225")

	maxTDFNights = 30
)

// TDF returns the Tourism Dirham fee for a stay. The room argument may be
// a classified code or raw descriptive text.
func TDF(nights int, room string) decimal.Decimal {
	if nights < 0 {
		nights = 0
	}
	if nights > maxTDFNights {
		nights = maxTDFNights
	}
	rate := tdfStandardRate
	if extract.HighTDFRoom(room) {
		rate = tdfFamilyRate
	}
	return rate.Mul(decimal.NewFromInt(int64(nights)))
}

// Derive fills in the financial fields the confirmation did not report.
// Net-reporting providers get the TDF added to produce the gross total;
// gross-reporting providers get it subtracted to produce the net. Fields
// whose inputs are unknown stay unknown.
func Derive(cf model.CanonicalFields, mode model.FinancialMode) model.CanonicalFields {
	if !cf.Nights.Known {
		return cf
	}

	room := cf.RoomCode.Or("")
	tdf := TDF(cf.Nights.Value, room)
	cf.TaxTDF = model.Known(tdf)

	switch mode {
	case model.ModeNetExclusive:
		if cf.NetTotal.Known && !cf.Total.Known {
			cf.Total = model.Known(cf.NetTotal.Value.Add(tdf))
		}
	case model.ModeTotalInclusive:
		if cf.Total.Known && !cf.NetTotal.Known {
			cf.NetTotal = model.Known(cf.Total.Value.Sub(tdf))
		}
	}

	if cf.NetTotal.Known {
		excl := cf.NetTotal.Value.Div(taxDivisor).Round(2)
		cf.AmountExclTax = model.Known(excl)
		if cf.Nights.Value > 0 {
			nights := decimal.NewFromInt(int64(cf.Nights.Value))
			cf.ADR = model.Known(excl.Div(nights).Round(2))
		}
	}

	return cf
}
