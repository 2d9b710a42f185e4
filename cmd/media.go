package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newMediaCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "media <term>",
		Short: "List an article's media items",
		Long: `Fetches the media list of the best-matching article and prints the
retained items: valid entries carrying an image URL, images first, capped
at the configured maximum.`,
		Example: `  wikideck media albert einstein
  wikideck media "Saturn V" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			svc := newArticleService(cfg)
			items, err := svc.Media(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			}

			if len(items) == 0 {
				fmt.Println("No media items with images found.")
				return nil
			}
			for _, item := range items {
				fmt.Printf("%-8s %s\n", item.Type, item.Title)
				if item.Caption != "" {
					fmt.Printf("         %s\n", item.Caption)
				}
				fmt.Printf("         %s\n", item.ImageURL)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the media list as JSON")

	return cmd
}
