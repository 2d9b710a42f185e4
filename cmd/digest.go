package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wikideck/wikideck/internal/digest"
)

func newDigestCmd() *cobra.Command {
	var provider string
	var model string

	cmd := &cobra.Command{
		Use:   "digest <term>",
		Short: "Condense an article extract with an LLM",
		Long: `Fetches the article summary and condenses its extract into a few
sentences through an LLM provider (Gemini, Ollama, or OpenAI).

Provider credentials come from the environment: GEMINI_API_KEY,
OPENAI_API_KEY, or a local OLLAMA_URL.`,
		Example: `  # Digest with the default provider
  wikideck digest general relativity

  # Use a local Ollama model
  wikideck digest "Apollo 11" --provider ollama --model llama3.1:8b`,
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

			out, err := digest.NewService().Digest(cmd.Context(), summary, provider, model)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n\n%s\n", summary.Title, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "LLM provider (gemini, ollama, or openai)")
	cmd.Flags().StringVar(&model, "model", "", "Model name (defaults to provider's default)")

	return cmd
}
