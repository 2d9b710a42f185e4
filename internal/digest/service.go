// Package digest condenses an article extract into a few sentences through
// an LLM provider.
package digest

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/wikideck/wikideck/internal/gemini"
	"github.com/wikideck/wikideck/internal/ollama"
	"github.com/wikideck/wikideck/internal/openai"
	"github.com/wikideck/wikideck/internal/providers"
	"github.com/wikideck/wikideck/internal/wiki"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Digest condenses the summary's extract. Provider and model fall back to
// DIGEST_PROVIDER / per-provider model environment variables.
func (s *Service) Digest(ctx context.Context, summary wiki.Summary, provider, model string) (string, error) {
	if strings.TrimSpace(summary.Extract) == "" {
		return "", fmt.Errorf("article %q has no extract to digest", summary.Title)
	}

	if provider == "" {
		provider = os.Getenv("DIGEST_PROVIDER")
		if provider == "" {
			provider = "gemini"
		}
	}
	if model == "" {
		model = s.defaultModel(provider)
	}

	backend, err := s.backend(provider)
	if err != nil {
		return "", err
	}

	config := providers.Config{
		Model:       model,
		Temperature: 0.2,
		Prompt:      buildPrompt(summary),
	}

	out, err := backend.Generate(ctx, config)
	if err != nil {
		return "", fmt.Errorf("failed to digest %q with %s: %w", summary.Title, provider, err)
	}
	return strings.TrimSpace(out), nil
}

func (s *Service) backend(provider string) (providers.Provider, error) {
	switch provider {
	case "gemini":
		return gemini.New(), nil
	case "ollama":
		return ollama.New(), nil
	case "openai":
		return openai.New(), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

func (s *Service) defaultModel(provider string) string {
	switch provider {
	case "gemini":
		if model := os.Getenv("GEMINI_MODEL"); model != "" {
			return model
		}
		return "gemini-1.5-flash"
	case "ollama":
		if model := os.Getenv("OLLAMA_MODEL"); model != "" {
			return model
		}
		return "llama3.1:8b"
	case "openai":
		if model := os.Getenv("OPENAI_MODEL"); model != "" {
			return model
		}
		return "gpt-4o-mini"
	default:
		return ""
	}
}

func buildPrompt(summary wiki.Summary) string {
	var b strings.Builder
	b.WriteString("Condense the following encyclopedia extract into at most three plain sentences. ")
	b.WriteString("Keep only established facts from the text.\n\n")
	fmt.Fprintf(&b, "Title: %s\n", summary.Title)
	if summary.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", summary.Description)
	}
	fmt.Fprintf(&b, "\n%s\n", summary.Extract)
	return b.String()
}
