package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/common"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/service"
)

const issueSeparator = "; "

// SaveAuditResults persists the verdict rows for a run.
func (s *SQLiteStorage) SaveAuditResults(ctx context.Context, runID string, results []model.AuditRecord) error {
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
		INSERT INTO audit_results (
			run_id, full_name, first_name,
			res_arrival, res_departure, res_nights, res_persons, res_room,
			mail_arrival, mail_departure, mail_nights, mail_persons, mail_room,
			fields_compared, fields_matching, match_percentage, verdict, issues
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, r := range results {
		var pct sql.NullFloat64
		if r.MatchPercentage.Known {
			pct = sql.NullFloat64{Float64: r.MatchPercentage.Value, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx,
			runID, r.Reservation.FullName, r.Reservation.FirstName,
			r.Reservation.Arrival, r.Reservation.Departure,
			intToNull(r.Reservation.Nights), intToNull(r.Reservation.Persons), r.Reservation.RoomCode,
			strToNull(r.Extracted.Arrival), strToNull(r.Extracted.Departure),
			intToNull(r.Extracted.Nights), intToNull(r.Extracted.Persons), strToNull(r.Extracted.RoomCode),
			r.FieldsCompared, r.FieldsMatching, pct, string(r.Verdict),
			strings.Join(r.Issues, issueSeparator),
		); err != nil {
			return fmt.Errorf("failed to insert audit result: %w", err)
		}
	}

	return tx.Commit()
}

// GetAuditResults returns the stored verdict rows for a run, optionally
// narrowed to one verdict.
func (s *SQLiteStorage) GetAuditResults(ctx context.Context, runID string, filter service.ResultFilter) ([]model.AuditRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(runID, "runID"); err != nil {
		return nil, err
	}

	query := `
		SELECT full_name, first_name,
			res_arrival, res_departure, res_nights, res_persons, res_room,
			mail_arrival, mail_departure, mail_nights, mail_persons, mail_room,
			fields_compared, fields_matching, match_percentage, verdict, issues
		FROM audit_results
		WHERE run_id = ?`
	args := []any{runID}
	if filter.Verdict != "" {
		query += " AND verdict = ?"
		args = append(args, string(filter.Verdict))
	}
	query += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit results: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []model.AuditRecord
	for rows.Next() {
		var (
			rec        model.AuditRecord
			resNights  sql.NullInt64
			resPersons sql.NullInt64
			mailArr    sql.NullString
			mailDep    sql.NullString
			mailNights sql.NullInt64
			mailPers   sql.NullInt64
			mailRoom   sql.NullString
			pct        sql.NullFloat64
			verdict    string
			issues     sql.NullString
		)
		if err := rows.Scan(
			&rec.Reservation.FullName, &rec.Reservation.FirstName,
			&rec.Reservation.Arrival, &rec.Reservation.Departure,
			&resNights, &resPersons, &rec.Reservation.RoomCode,
			&mailArr, &mailDep, &mailNights, &mailPers, &mailRoom,
			&rec.FieldsCompared, &rec.FieldsMatching, &pct, &verdict, &issues,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audit result: %w", err)
		}

		rec.Reservation.Nights = nullToInt(resNights)
		rec.Reservation.Persons = nullToInt(resPersons)
		rec.Extracted.Arrival = nullToStr(mailArr)
		rec.Extracted.Departure = nullToStr(mailDep)
		rec.Extracted.Nights = nullToInt(mailNights)
		rec.Extracted.Persons = nullToInt(mailPers)
		rec.Extracted.RoomCode = nullToStr(mailRoom)
		if pct.Valid {
			rec.MatchPercentage = model.Known(pct.Float64)
		}
		rec.Verdict = model.Verdict(verdict)
		if v := nullIfNotValid(issues); v != "" {
			rec.Issues = strings.Split(v, issueSeparator)
		}
		results = append(results, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Distinguish a run with no matching rows from a run id that never
	// existed.
	if len(results) == 0 {
		var n int
		if err := s.db.QueryRowContext(ctx,
			`SELECT COUNT(1) FROM audit_runs WHERE id = ?`, runID).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to check run: %w", err)
		}
		if n == 0 {
			return nil, fmt.Errorf("%w: run %s", common.ErrNotFound, runID)
		}
	}
	return results, nil
}

func nullToStr(v sql.NullString) model.Field[string] {
	if !v.Valid {
		return model.Unknown[string]()
	}
	return model.Known(v.String)
}

func nullToInt(v sql.NullInt64) model.Field[int] {
	if !v.Valid {
		return model.Unknown[int]()
	}
	return model.Known(int(v.Int64))
}
