package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/common"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/service"
)

// StartRun records the beginning of a reconciliation run and returns its ID.
func (s *SQLiteStorage) StartRun(ctx context.Context, sourceFile string) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}
	if err := validateString(sourceFile, "sourceFile"); err != nil {
		return "", err
	}

	id := uuid.New().String()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO audit_runs (id, started_at, source_file, status) VALUES (?, ?, ?, 'running')`,
		id, time.Now().UTC(), sourceFile)
	if err != nil {
		return "", fmt.Errorf("failed to start run: %w", err)
	}
	return id, nil
}

// FinishRun marks a run complete and stores its counters.
func (s *SQLiteStorage) FinishRun(ctx context.Context, runID string, stats service.RunStats) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(runID, "runID"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE audit_runs SET
			finished_at = ?,
			status = 'completed',
			reservations_loaded = ?,
			messages_matched = ?,
			extractions_saved = ?,
			pass_count = ?,
			warning_count = ?,
			fail_count = ?,
			no_data_count = ?,
			duration_ms = ?
		WHERE id = ?`,
		time.Now().UTC(),
		stats.ReservationsLoaded,
		stats.MessagesMatched,
		stats.ExtractionsSaved,
		stats.PassCount,
		stats.WarningCount,
		stats.FailCount,
		stats.NoDataCount,
		stats.Duration.Milliseconds(),
		runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check run update: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", common.ErrRunNotFound, runID)
	}
	return nil
}

// FailRun marks a run as failed without stamping counters. The failure
// detail is recorded separately through LogRunError.
func (s *SQLiteStorage) FailRun(ctx context.Context, runID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(runID, "runID"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE audit_runs SET finished_at = ?, status = 'failed' WHERE id = ?`,
		time.Now().UTC(), runID)
	if err != nil {
		return fmt.Errorf("failed to mark run failed: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check run update: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", common.ErrRunNotFound, runID)
	}
	return nil
}

// LogRunError records a boundary failure against a run without failing it.
func (s *SQLiteStorage) LogRunError(ctx context.Context, runID, errContext string, runErr error) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(runID, "runID"); err != nil {
		return err
	}

	msg := ""
	if runErr != nil {
		msg = runErr.Error()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO run_errors (run_id, context, message) VALUES (?, ?, ?)`,
		runID, errContext, msg)
	if err != nil {
		return fmt.Errorf("failed to log run error: %w", err)
	}
	return nil
}

// GetRecentRuns returns run history newest first.
func (s *SQLiteStorage) GetRecentRuns(ctx context.Context, limit int) ([]service.RunInfo, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, source_file, status,
			reservations_loaded, messages_matched, extractions_saved,
			pass_count, warning_count, fail_count, no_data_count, duration_ms
		FROM audit_runs
		ORDER BY started_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []service.RunInfo
	for rows.Next() {
		var (
			info       service.RunInfo
			durationMS int64
		)
		if err := rows.Scan(
			&info.ID, &info.StartedAt, &info.SourceFile, &info.Status,
			&info.Stats.ReservationsLoaded, &info.Stats.MessagesMatched, &info.Stats.ExtractionsSaved,
			&info.Stats.PassCount, &info.Stats.WarningCount, &info.Stats.FailCount,
			&info.Stats.NoDataCount, &durationMS,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		info.Stats.Duration = time.Duration(durationMS) * time.Millisecond
		errs, err := s.runErrors(ctx, info.ID)
		if err != nil {
			return nil, err
		}
		info.Errors = errs
		runs = append(runs, info)
	}
	return runs, rows.Err()
}

func (s *SQLiteStorage) runErrors(ctx context.Context, runID string) ([]service.RunError, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT occurred_at, context, message FROM run_errors WHERE run_id = ? ORDER BY occurred_at`,
		runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query run errors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var errs []service.RunError
	for rows.Next() {
		var re service.RunError
		if err := rows.Scan(&re.At, &re.Context, &re.Message); err != nil {
			return nil, fmt.Errorf("failed to scan run error: %w", err)
		}
		errs = append(errs, re)
	}
	return errs, rows.Err()
}

func nullIfNotValid(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}
