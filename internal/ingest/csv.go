// Package ingest reads reservation export files into canonical records.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/common"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/extract"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
)

// CSVLoader reads a property-management export. Columns are located by
// header name so column order in the export does not matter.
type CSVLoader struct{}

func NewCSVLoader() *CSVLoader {
	return &CSVLoader{}
}

// Load implements service.ReservationLoader. Bad rows are skipped and
// reported; one malformed row never fails the file.
func (l *CSVLoader) Load(ctx context.Context, path string) ([]model.ReservationRecord, []error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, []error{fmt.Errorf("%w: %s", common.ErrReportUnreadable, path)}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, []error{fmt.Errorf("reading header of %s: %w", path, err)}
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[normalizeHeader(name)] = i
	}
	if _, ok := cols["FULL_NAME"]; !ok {
		return nil, []error{fmt.Errorf("%w: %s has no FULL_NAME column", common.ErrReportUnreadable, path)}
	}

	var (
		records []model.ReservationRecord
		errs    []error
		line    = 1
	)
	for {
		if err := ctx.Err(); err != nil {
			return records, append(errs, err)
		}
		row, err := r.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("row %d: %w", line, err))
			continue
		}

		rec, rowErrs := parseRow(cols, row)
		for _, re := range rowErrs {
			errs = append(errs, fmt.Errorf("row %d: %w", line, re))
		}
		if rec.FullName == "" && rec.FirstName == "" {
			errs = append(errs, fmt.Errorf("row %d: no guest name, skipped", line))
			continue
		}
		records = append(records, rec)
	}

	return records, errs
}

func parseRow(cols map[string]int, row []string) (model.ReservationRecord, []error) {
	var errs []error

	cell := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rec := model.ReservationRecord{
		FirstName:    cell("FIRST_NAME"),
		FullName:     cell("FULL_NAME"),
		Arrival:      extract.NormalizeDate(cell("ARRIVAL"), extract.DayFirst),
		Departure:    extract.NormalizeDate(cell("DEPARTURE"), extract.DayFirst),
		RoomCode:     cell("ROOM"),
		RateCode:     cell("RATE_CODE"),
		CompanyLabel: cell("C_T_S_NAME"),
	}

	if rec.FullName != "" && rec.FirstName == "" {
		first, last := extract.SplitGuestName(rec.FullName)
		rec.FirstName = first
		rec.FullName = last
	}

	if v := cell("NIGHTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			rec.Nights = model.Known(n)
		} else {
			errs = append(errs, fmt.Errorf("bad NIGHTS %q", v))
		}
	}
	if v := cell("PERSONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			rec.Persons = model.Known(n)
		} else {
			errs = append(errs, fmt.Errorf("bad PERSONS %q", v))
		}
	}

	rec.NetTotal = parseMoney(cell("NET_TOTAL"), "NET_TOTAL", &errs)
	rec.TaxTDF = parseMoney(cell("TDF"), "TDF", &errs)
	rec.Total = parseMoney(cell("TOTAL"), "TOTAL", &errs)
	rec.ADR = parseMoney(cell("ADR"), "ADR", &errs)
	if !rec.NetTotal.Known {
		rec.NetTotal = parseMoney(cell("AMOUNT"), "AMOUNT", &errs)
	}

	return rec, errs
}

func parseMoney(v, name string, errs *[]error) model.Field[decimal.Decimal] {
	if v == "" {
		return model.Unknown[decimal.Decimal]()
	}
	d, ok := extract.ParseAmount(v)
	if !ok {
		*errs = append(*errs, fmt.Errorf("bad %s %q", name, v))
		return model.Unknown[decimal.Decimal]()
	}
	return model.Known(d)
}

func normalizeHeader(name string) string {
	name = strings.TrimPrefix(name, "\uFEFF")
	return strings.ToUpper(strings.Join(strings.Fields(name), "_"))
}
