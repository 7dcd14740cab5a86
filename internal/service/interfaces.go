// Package service defines the interfaces between the audit pipeline and its
// boundaries: the run store, the reservation loader, and the mailbox.
package service

import (
	"context"
	"time"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
)

// Storage defines the contract for the run-history persistence layer.
type Storage interface {
	// Run tracking
	StartRun(ctx context.Context, sourceFile string) (string, error)
	FinishRun(ctx context.Context, runID string, stats RunStats) error
	FailRun(ctx context.Context, runID string) error
	LogRunError(ctx context.Context, runID, errContext string, err error) error
	GetRecentRuns(ctx context.Context, limit int) ([]RunInfo, error)

	// Snapshots
	SaveReservations(ctx context.Context, runID string, records []model.ReservationRecord) error
	SaveExtractions(ctx context.Context, runID string, records []model.ExtractionRecord) error

	// Audit results
	SaveAuditResults(ctx context.Context, runID string, results []model.AuditRecord) error
	GetAuditResults(ctx context.Context, runID string, filter ResultFilter) ([]model.AuditRecord, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// MessageSource supplies candidate confirmation messages for a reservation.
type MessageSource interface {
	Search(ctx context.Context, query MessageQuery) ([]model.Message, error)
}

// MessageQuery scopes a mailbox search.
type MessageQuery struct {
	Since   time.Time
	Folders []string
}

// ReservationLoader produces reservation records from the entered-on export.
type ReservationLoader interface {
	Load(ctx context.Context, path string) ([]model.ReservationRecord, []error)
}

// ResultFilter narrows audit-result queries. Zero value means no filtering.
type ResultFilter struct {
	Verdict model.Verdict
}

// RunStats shows the results of one reconciliation run.
type RunStats struct {
	ReservationsLoaded int
	MessagesMatched    int
	ExtractionsSaved   int
	PassCount          int
	WarningCount       int
	FailCount          int
	NoDataCount        int
	Duration           time.Duration
}

// RunError is one boundary failure recorded against a run.
type RunError struct {
	At      time.Time
	Context string
	Message string
}

// RunInfo summarizes a stored reconciliation run.
type RunInfo struct {
	ID         string
	StartedAt  time.Time
	SourceFile string
	Status     string
	Stats      RunStats
	Errors     []RunError
}

// RetryOptions configures retry behavior for boundary operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
