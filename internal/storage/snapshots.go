package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
)

// SaveReservations snapshots the loaded export rows for a run.
func (s *SQLiteStorage) SaveReservations(ctx context.Context, runID string, records []model.ReservationRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(runID, "runID"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO reservations_raw (
			run_id, first_name, full_name, arrival, departure,
			nights, persons, room, rate_code, company_label,
			net_total, tdf, total, adr
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx,
			runID, r.FirstName, r.FullName, r.Arrival, r.Departure,
			intToNull(r.Nights), intToNull(r.Persons), r.RoomCode, r.RateCode, r.CompanyLabel,
			moneyToNull(r.NetTotal), moneyToNull(r.TaxTDF), moneyToNull(r.Total), moneyToNull(r.ADR),
		); err != nil {
			return fmt.Errorf("failed to insert reservation: %w", err)
		}
	}

	return tx.Commit()
}

// SaveExtractions snapshots the per-message extraction results for a run.
func (s *SQLiteStorage) SaveExtractions(ctx context.Context, runID string, records []model.ExtractionRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(runID, "runID"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO extractions (
			run_id, guest_name, provider, attribution, subject, sender, folder,
			first_name, full_name, arrival, departure, nights, persons,
			room, rate_code, source_name,
			net_total, total, tdf, amount_excl_tax, adr
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, r := range records {
		cf := r.Fields
		if _, err := stmt.ExecContext(ctx,
			runID, r.GuestName, r.Provider, r.Attribution, r.Subject, r.Sender, r.Folder,
			strToNull(cf.FirstName), strToNull(cf.FullName),
			strToNull(cf.Arrival), strToNull(cf.Departure),
			intToNull(cf.Nights), intToNull(cf.Persons),
			strToNull(cf.RoomCode), strToNull(cf.RateCode), strToNull(cf.SourceName),
			moneyToNull(cf.NetTotal), moneyToNull(cf.Total), moneyToNull(cf.TaxTDF),
			moneyToNull(cf.AmountExclTax), moneyToNull(cf.ADR),
		); err != nil {
			return fmt.Errorf("failed to insert extraction: %w", err)
		}
	}

	return tx.Commit()
}

func strToNull(f model.Field[string]) sql.NullString {
	return sql.NullString{String: f.Value, Valid: f.Known}
}

func intToNull(f model.Field[int]) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(f.Value), Valid: f.Known}
}

func moneyToNull(f model.Field[decimal.Decimal]) sql.NullString {
	if !f.Known {
		return sql.NullString{}
	}
	return sql.NullString{String: f.Value.String(), Valid: true}
}
