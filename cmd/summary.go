package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newSummaryCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary <term>",
		Short: "Look up an article summary",
		Long: `Fetches the summary of the best-matching article for the search term:
title, description, extract, and image URLs.`,
		Example: `  # Look up a person
  wikideck summary albert einstein

  # Machine-readable output
  wikideck summary "Go (programming language)" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			svc := newArticleService(cfg)
			summary, err := svc.Summary(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}

			fmt.Printf("%s\n%s\n\n%s\n", summary.Title, summary.Description, summary.Extract)
			if summary.ThumbnailURL != "" {
				fmt.Printf("\nThumbnail: %s\n", summary.ThumbnailURL)
			}
			if summary.OriginalImageURL != "" {
				fmt.Printf("Image:     %s\n", summary.OriginalImageURL)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the summary as JSON")

	return cmd
}
