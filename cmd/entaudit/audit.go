package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/cli"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/common"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/config"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/engine"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/ingest"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/mailbox"
)

func auditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit <export.csv>",
		Short: "Audit an entered-on export against confirmation emails",
		Long: `Load the entered-on reservation export, match each reservation to the
confirmation emails in the mailbox export, and score how well the two agree.
Results are stored in the run database for later inspection.`,
		Args: cobra.ExactArgs(1),
		RunE: runAudit,
	}

	cmd.Flags().String("mailbox", "", "mailbox export directory (default from config)")
	cmd.Flags().StringSlice("folder", nil, "restrict search to these mail folders")
	cmd.Flags().Int("since-days", 0, "ignore messages older than this many days (0 = no limit)")

	return cmd
}

func runAudit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	exportPath := args[0]

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	mailboxPath, _ := cmd.Flags().GetString("mailbox")
	if mailboxPath == "" {
		mailboxPath = viper.GetString("mailbox.path")
	}
	if mailboxPath == "" {
		return common.NewUserError("no mailbox export directory configured",
			fmt.Errorf("%w: mailbox.path", common.ErrMissingConfig))
	}
	mailboxPath = config.ExpandPath(mailboxPath)

	folders, _ := cmd.Flags().GetStringSlice("folder")
	sinceDays, _ := cmd.Flags().GetInt("since-days")
	var since time.Time
	if sinceDays > 0 {
		since = time.Now().AddDate(0, 0, -sinceDays)
	}

	var bar interface{ Add(int) error }
	cfg := engine.Config{
		Folders: folders,
		Since:   since,
		Progress: func(done, total int) {
			if bar == nil {
				bar = cli.NewProgressBar(total, "Auditing reservations")
			}
			_ = bar.Add(1)
		},
	}

	e := engine.New(store, mailbox.NewDirSource(mailboxPath, nil), ingest.NewCSVLoader(), cfg)
	stats, err := e.Run(ctx, exportPath)
	if err != nil {
		return common.NewUserError("audit did not complete", err)
	}

	fmt.Println(cli.TitleStyle.Render("Audit complete"))
	fmt.Printf("  Reservations:  %d\n", stats.ReservationsLoaded)
	fmt.Printf("  Emails used:   %d\n", stats.MessagesMatched)
	fmt.Printf("  %s  %d\n", cli.PassStyle.Render("PASS:         "), stats.PassCount)
	fmt.Printf("  %s  %d\n", cli.WarningStyle.Render("WARNING:      "), stats.WarningCount)
	fmt.Printf("  %s  %d\n", cli.FailStyle.Render("FAIL:         "), stats.FailCount)
	fmt.Printf("  %s  %d\n", cli.SubtleStyle.Render("NO_EMAIL_DATA:"), stats.NoDataCount)
	fmt.Printf("  Duration:      %s\n", stats.Duration.Round(time.Millisecond))

	return nil
}
