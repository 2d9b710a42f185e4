package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wikideck/wikideck/internal/render"
)

func newPageCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "page <term>",
		Short: "Read a full article",
		Long: `Fetches the full article HTML and renders it as markdown for the
terminal. Use --raw to print the HTML untouched.`,
		Example: `  wikideck page albert einstein
  wikideck page "Apollo 11" --raw > apollo.html`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			svc := newArticleService(cfg)
			page, err := svc.Page(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			if raw {
				fmt.Print(page)
				return nil
			}

			markdown, err := render.PageToMarkdown(page)
			if err != nil {
				return err
			}
			fmt.Print(markdown)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the article HTML without rendering")

	return cmd
}
