package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/common"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/service"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestMigrate_Idempotent(t *testing.T) {
	store := newTestStorage(t)
	require.NoError(t, store.Migrate(context.Background()))
}

func TestRunLifecycle(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	runID, err := store.StartRun(ctx, "exports/entered_on.csv")
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	require.NoError(t, store.LogRunError(ctx, runID, "load", errors.New("row 7: bad NIGHTS")))

	stats := service.RunStats{
		ReservationsLoaded: 10,
		MessagesMatched:    6,
		ExtractionsSaved:   6,
		PassCount:          5,
		WarningCount:       2,
		FailCount:          1,
		NoDataCount:        2,
		Duration:           1500 * time.Millisecond,
	}
	require.NoError(t, store.FinishRun(ctx, runID, stats))

	runs, err := store.GetRecentRuns(ctx, 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, runID, got.ID)
	assert.Equal(t, "exports/entered_on.csv", got.SourceFile)
	assert.Equal(t, "completed", got.Status)
	assert.Equal(t, stats.ReservationsLoaded, got.Stats.ReservationsLoaded)
	assert.Equal(t, stats.PassCount, got.Stats.PassCount)
	assert.Equal(t, stats.Duration, got.Stats.Duration)
	require.Len(t, got.Errors, 1)
	assert.Equal(t, "load", got.Errors[0].Context)
	assert.Contains(t, got.Errors[0].Message, "bad NIGHTS")
}

func TestFinishRun_UnknownRun(t *testing.T) {
	store := newTestStorage(t)
	err := store.FinishRun(context.Background(), "no-such-run", service.RunStats{})
	assert.ErrorIs(t, err, common.ErrRunNotFound)
}

func TestFailRun(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	runID, err := store.StartRun(ctx, "export.csv")
	require.NoError(t, err)
	require.NoError(t, store.FailRun(ctx, runID))

	runs, err := store.GetRecentRuns(ctx, 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "failed", runs[0].Status)
}

func TestFailRun_UnknownRun(t *testing.T) {
	store := newTestStorage(t)
	err := store.FailRun(context.Background(), "no-such-run")
	assert.ErrorIs(t, err, common.ErrRunNotFound)
}

func TestGetAuditResults_UnknownRun(t *testing.T) {
	store := newTestStorage(t)
	_, err := store.GetAuditResults(context.Background(), "no-such-run", service.ResultFilter{})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSaveAndGetAuditResults(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	runID, err := store.StartRun(ctx, "export.csv")
	require.NoError(t, err)

	results := []model.AuditRecord{
		{
			Reservation: model.ReservationRecord{
				FirstName: "Ahmed",
				FullName:  "Hassan",
				Arrival:   "15/03/2026",
				Departure: "18/03/2026",
				Nights:    model.Known(3),
				Persons:   model.Known(2),
				RoomCode:  "SK",
			},
			Extracted: model.CanonicalFields{
				Arrival:   model.Known("15/03/2026"),
				Departure: model.Known("18/03/2026"),
				Nights:    model.Known(3),
				Persons:   model.Known(2),
				RoomCode:  model.Known("SK"),
			},
			FieldsCompared:  7,
			FieldsMatching:  7,
			MatchPercentage: model.Known(100.0),
			Verdict:         model.VerdictPass,
		},
		{
			Reservation: model.ReservationRecord{
				FirstName: "Maria",
				FullName:  "Lopez",
				Arrival:   "01/05/2026",
			},
			Verdict: model.VerdictNoEmailData,
			Issues:  []string{"missing departure date"},
		},
	}
	require.NoError(t, store.SaveAuditResults(ctx, runID, results))

	all, err := store.GetAuditResults(ctx, runID, service.ResultFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	first := all[0]
	assert.Equal(t, "Hassan", first.Reservation.FullName)
	assert.Equal(t, 3, first.Reservation.Nights.Value)
	assert.Equal(t, "SK", first.Extracted.RoomCode.Value)
	require.True(t, first.MatchPercentage.Known)
	assert.InDelta(t, 100.0, first.MatchPercentage.Value, 0.001)
	assert.Equal(t, model.VerdictPass, first.Verdict)

	second := all[1]
	assert.False(t, second.MatchPercentage.Known)
	assert.False(t, second.Extracted.Nights.Known)
	assert.Equal(t, []string{"missing departure date"}, second.Issues)

	// Verdict filter narrows the result set.
	failed, err := store.GetAuditResults(ctx, runID, service.ResultFilter{Verdict: model.VerdictNoEmailData})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "Lopez", failed[0].Reservation.FullName)
}

func TestSaveSnapshots(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	runID, err := store.StartRun(ctx, "export.csv")
	require.NoError(t, err)

	reservations := []model.ReservationRecord{
		{
			FullName: "Hassan",
			Arrival:  "15/03/2026",
			Nights:   model.Known(3),
			NetTotal: model.Known(decimal.RequireFromString("900.50")),
		},
	}
	require.NoError(t, store.SaveReservations(ctx, runID, reservations))

	extractions := []model.ExtractionRecord{
		{
			GuestName:   "Hassan",
			Provider:    "Booking.com",
			Attribution: "*INNLINK2WAY*",
			Subject:     "Reservation Confirmation",
			Sender:      "noreply-reservations@millenniumhotels.com",
			Folder:      "Inbox",
			Fields: model.CanonicalFields{
				Arrival: model.Known("15/03/2026"),
				Total:   model.Known(decimal.NewFromInt(960)),
			},
		},
	}
	require.NoError(t, store.SaveExtractions(ctx, runID, extractions))
}

func TestValidation(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.StartRun(context.Background(), "")
	assert.Error(t, err)

	_, err = store.GetAuditResults(context.Background(), "", service.ResultFilter{})
	assert.Error(t, err)

	var nilCtx context.Context
	_, err = store.StartRun(nilCtx, "export.csv")
	assert.Error(t, err)
}
