package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/cli"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/routing"
)

func providersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List the known booking providers and their routing rules",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(cli.TitleStyle.Render("Provider routing table"))
			for _, p := range routing.NewRouter().Profiles() {
				extractor := p.ExtractorKey
				if extractor == "" {
					extractor = "(none)"
				}
				fmt.Printf("%-24s %-16s mode=%-16s extractor=%s\n",
					p.Name,
					cli.SubtleStyle.Render(string(p.Tier)),
					p.Mode,
					extractor)
			}
		},
	}
}
