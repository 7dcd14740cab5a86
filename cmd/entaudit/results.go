package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/cli"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/common"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/service"
)

func resultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results <run-id>",
		Short: "Show the audit results for a run",
		Args:  cobra.ExactArgs(1),
		RunE:  runResults,
	}

	cmd.Flags().String("verdict", "", "filter by verdict (PASS, WARNING, FAIL, NO_EMAIL_DATA)")
	cmd.Flags().String("export", "", "write results to a CSV file instead of the terminal")

	return cmd
}

func runResults(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	runID := args[0]

	verdictFlag, _ := cmd.Flags().GetString("verdict")
	exportPath, _ := cmd.Flags().GetString("export")

	var filter service.ResultFilter
	if verdictFlag != "" {
		v := model.Verdict(strings.ToUpper(verdictFlag))
		switch v {
		case model.VerdictPass, model.VerdictWarning, model.VerdictFail, model.VerdictNoEmailData:
			filter.Verdict = v
		default:
			return fmt.Errorf("unknown verdict %q", verdictFlag)
		}
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	results, err := store.GetAuditResults(ctx, runID, filter)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewUserError(fmt.Sprintf("no audit run %q", runID), err)
		}
		return fmt.Errorf("failed to load results: %w", err)
	}
	if len(results) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No results for this run."))
		return nil
	}

	if exportPath != "" {
		if err := exportResultsCSV(exportPath, results); err != nil {
			return err
		}
		fmt.Printf("Wrote %d results to %s\n", len(results), exportPath)
		return nil
	}

	fmt.Println(cli.TitleStyle.Render("Audit results"))
	for _, r := range results {
		fmt.Printf("%-14s %s  %s %s\n",
			cli.RenderVerdict(r.Verdict),
			cli.RenderMatch(r.MatchPercentage),
			r.Reservation.FirstName,
			r.Reservation.FullName)
		if len(r.Issues) > 0 {
			fmt.Printf("    %s\n", cli.SubtleStyle.Render(strings.Join(r.Issues, "; ")))
		}
	}

	return nil
}

func exportResultsCSV(path string, results []model.AuditRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	header := []string{
		"FULL_NAME", "FIRST_NAME",
		"RES_ARRIVAL", "RES_DEPARTURE", "RES_NIGHTS", "RES_PERSONS", "RES_ROOM",
		"MAIL_ARRIVAL", "MAIL_DEPARTURE", "MAIL_NIGHTS", "MAIL_PERSONS", "MAIL_ROOM",
		"FIELDS_COMPARED", "FIELDS_MATCHING", "MATCH_PERCENTAGE", "VERDICT", "ISSUES",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range results {
		pct := ""
		if r.MatchPercentage.Known {
			pct = strconv.FormatFloat(r.MatchPercentage.Value, 'f', 1, 64)
		}
		row := []string{
			r.Reservation.FullName, r.Reservation.FirstName,
			r.Reservation.Arrival, r.Reservation.Departure,
			fieldInt(r.Reservation.Nights), fieldInt(r.Reservation.Persons), r.Reservation.RoomCode,
			r.Extracted.Arrival.Or(""), r.Extracted.Departure.Or(""),
			fieldInt(r.Extracted.Nights), fieldInt(r.Extracted.Persons), r.Extracted.RoomCode.Or(""),
			strconv.Itoa(r.FieldsCompared), strconv.Itoa(r.FieldsMatching),
			pct, string(r.Verdict), strings.Join(r.Issues, "; "),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

func fieldInt(f model.Field[int]) string {
	if !f.Known {
		return ""
	}
	return strconv.Itoa(f.Value)
}
