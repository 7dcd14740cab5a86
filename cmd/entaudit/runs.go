package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/cli"
)

func runsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent audit runs",
		RunE:  runRuns,
	}

	cmd.Flags().Int("limit", 20, "number of runs to show")

	return cmd
}

func runRuns(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	runs, err := store.GetRecentRuns(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to load runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No audit runs recorded yet."))
		return nil
	}

	fmt.Println(cli.TitleStyle.Render("Audit runs"))
	for _, r := range runs {
		fmt.Printf("%s  %s  %s\n",
			r.StartedAt.Local().Format(time.DateTime),
			r.ID,
			cli.SubtleStyle.Render(r.SourceFile))
		fmt.Printf("    loaded %d  pass %d  warning %d  fail %d  no-data %d\n",
			r.Stats.ReservationsLoaded,
			r.Stats.PassCount,
			r.Stats.WarningCount,
			r.Stats.FailCount,
			r.Stats.NoDataCount)
		for _, re := range r.Errors {
			fmt.Printf("    %s %s: %s\n", cli.FailStyle.Render("error"), re.Context, re.Message)
		}
	}

	return nil
}
