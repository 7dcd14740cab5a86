package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
// If the database cannot be migrated to this version, it's a fatal error.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS audit_runs (
					id TEXT PRIMARY KEY,
					started_at DATETIME NOT NULL,
					finished_at DATETIME,
					source_file TEXT NOT NULL,
					status TEXT NOT NULL DEFAULT 'running',
					reservations_loaded INTEGER DEFAULT 0,
					messages_matched INTEGER DEFAULT 0,
					extractions_saved INTEGER DEFAULT 0,
					pass_count INTEGER DEFAULT 0,
					warning_count INTEGER DEFAULT 0,
					fail_count INTEGER DEFAULT 0,
					no_data_count INTEGER DEFAULT 0,
					duration_ms INTEGER DEFAULT 0
				)`,
				`CREATE INDEX idx_audit_runs_started ON audit_runs(started_at)`,

				`CREATE TABLE IF NOT EXISTS reservations_raw (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					run_id TEXT NOT NULL,
					first_name TEXT,
					full_name TEXT,
					arrival TEXT,
					departure TEXT,
					nights INTEGER,
					persons INTEGER,
					room TEXT,
					rate_code TEXT,
					company_label TEXT,
					net_total TEXT,
					tdf TEXT,
					total TEXT,
					adr TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (run_id) REFERENCES audit_runs(id)
				)`,
				`CREATE INDEX idx_reservations_run ON reservations_raw(run_id)`,

				`CREATE TABLE IF NOT EXISTS extractions (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					run_id TEXT NOT NULL,
					guest_name TEXT,
					provider TEXT,
					attribution TEXT,
					subject TEXT,
					sender TEXT,
					folder TEXT,
					first_name TEXT,
					full_name TEXT,
					arrival TEXT,
					departure TEXT,
					nights INTEGER,
					persons INTEGER,
					room TEXT,
					rate_code TEXT,
					source_name TEXT,
					net_total TEXT,
					total TEXT,
					tdf TEXT,
					amount_excl_tax TEXT,
					adr TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (run_id) REFERENCES audit_runs(id)
				)`,
				`CREATE INDEX idx_extractions_run ON extractions(run_id)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Audit results",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS audit_results (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					run_id TEXT NOT NULL,
					full_name TEXT,
					first_name TEXT,
					res_arrival TEXT,
					res_departure TEXT,
					res_nights INTEGER,
					res_persons INTEGER,
					res_room TEXT,
					mail_arrival TEXT,
					mail_departure TEXT,
					mail_nights INTEGER,
					mail_persons INTEGER,
					mail_room TEXT,
					fields_compared INTEGER NOT NULL,
					fields_matching INTEGER NOT NULL,
					match_percentage REAL,
					verdict TEXT NOT NULL,
					issues TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (run_id) REFERENCES audit_runs(id)
				)`,
				`CREATE INDEX idx_audit_results_run ON audit_results(run_id)`,
				`CREATE INDEX idx_audit_results_verdict ON audit_results(verdict)`,
			}
			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     3,
		Description: "Run error log",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS run_errors (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					run_id TEXT NOT NULL,
					occurred_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					context TEXT NOT NULL,
					message TEXT NOT NULL,
					FOREIGN KEY (run_id) REFERENCES audit_runs(id)
				)
			`)
			return err
		},
	},
}

// Migrate applies any outstanding schema migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
