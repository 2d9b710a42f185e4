package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/wikideck/wikideck/internal/article"
	"github.com/wikideck/wikideck/internal/httpc"
	"github.com/wikideck/wikideck/internal/images"
	"github.com/wikideck/wikideck/internal/storage"
)

type Handler struct {
	articles *article.Service
	loader   *images.Loader
	history  *storage.HistoryStore
}

func New(articles *article.Service, loader *images.Loader, history *storage.HistoryStore) *Handler {
	return &Handler{
		articles: articles,
		loader:   loader,
		history:  history,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

// writeDomainError maps use-case and network errors onto HTTP statuses.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, article.ErrTermTooShort):
		h.writeError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, article.ErrInvalidSummary):
		h.writeError(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		h.writeError(w, err.Error(), networkStatus(err))
	}
}

func networkStatus(err error) int {
	kind, ok := httpc.ErrorKind(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case httpc.KindNotFound:
		return http.StatusNotFound
	case httpc.KindTimeout:
		return http.StatusGatewayTimeout
	case httpc.KindBadURL:
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

// termParam extracts and checks the term query parameter.
func (h *Handler) termParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	term := r.URL.Query().Get("term")
	if term == "" {
		h.writeError(w, "Missing term parameter", http.StatusBadRequest)
		return "", false
	}
	return term, true
}
