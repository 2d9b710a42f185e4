package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/wikideck/wikideck/internal/handlers"
	"github.com/wikideck/wikideck/internal/httpc"
	"github.com/wikideck/wikideck/internal/images"
	"github.com/wikideck/wikideck/internal/storage"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web interface",
		Long: `Starts the Wikideck web interface on the specified port.

The interface looks up article summaries, shows the media gallery through
an image proxy backed by the bounded cache, and embeds the full article
page in a web view.`,
		Example: `  # Start server on default port 8888
  wikideck serve

  # Start server on custom port
  wikideck serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			loader, err := images.NewLoader(cfg.ImageCacheSize, httpc.New(cfg.Timeout), cfg.UserAgent)
			if err != nil {
				return err
			}
			handler := handlers.New(newArticleService(cfg), loader, storage.New(cfg.HistorySize))

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/summary", handler.HandleSummary)
			mux.HandleFunc("/api/media", handler.HandleMedia)
			mux.HandleFunc("/api/page", handler.HandlePage)
			mux.HandleFunc("/api/history", handler.HandleHistory)
			mux.HandleFunc("/image", handler.HandleImage)
			mux.HandleFunc("/", handler.HandleIndex)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Wikideck interface available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")

	return cmd
}
