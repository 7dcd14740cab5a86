// Package engine orchestrates the entered-on audit pipeline: load the
// export, match confirmation emails, extract, derive, and reconcile.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/audit"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/common"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/extract"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/finance"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/mailbox"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/routing"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/service"
)

// AuditEngine runs the reconciliation pipeline for one export file.
type AuditEngine struct {
	storage    service.Storage
	source     service.MessageSource
	loader     service.ReservationLoader
	router     *routing.Router
	extractors *extract.Registry
	config     Config
}

// Config holds configuration options for the audit engine.
type Config struct {
	// Folders restricts the mailbox search; empty means all folders.
	Folders []string
	// Since drops messages received before this time. Zero means no limit.
	Since time.Time
	// Progress, when set, is called after each reservation is audited.
	Progress func(done, total int)
	// Retry controls mailbox search retries; the zero value uses the
	// package defaults.
	Retry service.RetryOptions
}

// New creates an audit engine with the given boundaries.
func New(storage service.Storage, source service.MessageSource, loader service.ReservationLoader, config Config) *AuditEngine {
	return &AuditEngine{
		storage:    storage,
		source:     source,
		loader:     loader,
		router:     routing.NewRouter(),
		extractors: extract.NewRegistry(),
		config:     config,
	}
}

// Run audits every reservation in the export file and persists the results.
func (e *AuditEngine) Run(ctx context.Context, exportPath string) (service.RunStats, error) {
	started := time.Now()
	var stats service.RunStats

	runID, err := e.storage.StartRun(ctx, exportPath)
	if err != nil {
		return stats, fmt.Errorf("failed to start run: %w", err)
	}
	slog.Info("Starting audit run", "run_id", runID, "export", exportPath)

	reservations, loadErrs := e.loader.Load(ctx, exportPath)
	for _, le := range loadErrs {
		slog.Warn("Export row problem", "error", le)
		_ = e.storage.LogRunError(ctx, runID, "load", le)
	}
	if len(reservations) == 0 {
		loadErr := fmt.Errorf("no usable reservations in %s", exportPath)
		_ = e.storage.LogRunError(ctx, runID, "load", loadErr)
		if err := e.storage.FailRun(ctx, runID); err != nil {
			common.LogError(err, "Failed to mark run failed", common.Fields{"run_id": runID})
		}
		return stats, loadErr
	}
	stats.ReservationsLoaded = len(reservations)

	if err := e.storage.SaveReservations(ctx, runID, reservations); err != nil {
		return stats, fmt.Errorf("failed to snapshot reservations: %w", err)
	}

	var messages []model.Message
	err = common.WithRetry(ctx, func() error {
		var searchErr error
		messages, searchErr = e.source.Search(ctx, service.MessageQuery{
			Since:   e.config.Since,
			Folders: e.config.Folders,
		})
		if searchErr != nil && !common.IsRetryable(searchErr) {
			return &common.RetryableError{Err: searchErr, Retryable: false}
		}
		return searchErr
	}, e.config.Retry)
	if err != nil {
		_ = e.storage.LogRunError(ctx, runID, "mailbox", err)
		common.LogError(err, "Mailbox unavailable, auditing without email evidence",
			common.Fields{"run_id": runID})
	}
	slog.Info("Mailbox searched", "messages", len(messages))

	var (
		results     []model.AuditRecord
		extractions []model.ExtractionRecord
	)
	for i, res := range reservations {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		rec, exts := e.auditOne(res, messages)
		results = append(results, rec)
		extractions = append(extractions, exts...)
		stats.MessagesMatched += len(exts)

		switch rec.Verdict {
		case model.VerdictPass:
			stats.PassCount++
		case model.VerdictWarning:
			stats.WarningCount++
		case model.VerdictFail:
			stats.FailCount++
		default:
			stats.NoDataCount++
		}

		if e.config.Progress != nil {
			e.config.Progress(i+1, len(reservations))
		}
	}

	if err := e.storage.SaveExtractions(ctx, runID, extractions); err != nil {
		return stats, fmt.Errorf("failed to save extractions: %w", err)
	}
	stats.ExtractionsSaved = len(extractions)

	if err := e.storage.SaveAuditResults(ctx, runID, results); err != nil {
		return stats, fmt.Errorf("failed to save audit results: %w", err)
	}

	stats.Duration = time.Since(started)
	if err := e.storage.FinishRun(ctx, runID, stats); err != nil {
		return stats, fmt.Errorf("failed to finish run: %w", err)
	}

	common.LogInfo("Audit run complete", common.Fields{
		"run_id":       runID,
		"reservations": stats.ReservationsLoaded,
		"pass":         stats.PassCount,
		"warning":      stats.WarningCount,
		"fail":         stats.FailCount,
		"no_data":      stats.NoDataCount,
		"duration":     stats.Duration,
	})

	return stats, nil
}

// auditOne routes, extracts, and reconciles a single reservation. A panic
// in a provider extractor downgrades the record instead of killing the run.
func (e *AuditEngine) auditOne(res model.ReservationRecord, messages []model.Message) (rec model.AuditRecord, exts []model.ExtractionRecord) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Extractor panicked", "guest", res.FullName, "panic", r)
			rec = audit.Reconcile(res, nil)
			rec.Issues = append(rec.Issues, "extraction aborted")
			exts = nil
		}
	}()

	var fieldSets []model.CanonicalFields
	for _, msg := range messages {
		if !mailbox.MatchesGuest(msg, res.FirstName, res.FullName) {
			continue
		}

		decision := e.router.Route(res.CompanyLabel, msg.Sender, msg.Text())
		ext := model.ExtractionRecord{
			GuestName:   res.FullName,
			Provider:    decision.Profile.Name,
			Attribution: decision.Attribution,
			Subject:     msg.Subject,
			Sender:      msg.Sender,
			Folder:      msg.Folder,
		}

		if extractor := e.extractors.Lookup(decision.Profile); extractor != nil {
			cf := extractor.Extract(msg.Text(), msg.Sender)
			cf = finance.Derive(cf, decision.Profile.Mode)
			ext.Fields = cf
			if !cf.IsEmpty() {
				fieldSets = append(fieldSets, cf)
			}
		}
		exts = append(exts, ext)
	}

	rec = audit.Reconcile(res, fieldSets)
	return rec, exts
}
