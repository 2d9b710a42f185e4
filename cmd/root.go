package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wikideck",
		Short: "Search and read Wikipedia from the terminal",
		Long: `Wikideck is a Wikipedia reader for the terminal.

It looks up article summaries, browses an article's media list, renders
full pages as markdown, and can serve a small web interface with the same
views.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to YAML config file")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	// Add subcommands
	cmd.AddCommand(newSummaryCmd())
	cmd.AddCommand(newMediaCmd())
	cmd.AddCommand(newPageCmd())
	cmd.AddCommand(newDigestCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}
