package cmd

import (
	"github.com/wikideck/wikideck/internal/article"
	"github.com/wikideck/wikideck/internal/config"
	"github.com/wikideck/wikideck/internal/httpc"
	"github.com/wikideck/wikideck/internal/wikipedia"
)

// loadConfig resolves the effective configuration for a command run.
func loadConfig() (config.Config, error) {
	return config.Load(cfgFile)
}

// newArticleService wires the HTTP client, the remote data source, and the
// use-case layer.
func newArticleService(cfg config.Config) *article.Service {
	hc := httpc.New(cfg.Timeout)
	source := wikipedia.NewClient(cfg.BaseURL, cfg.UserAgent, hc)
	return article.NewService(source, cfg.MaxMediaItems)
}
