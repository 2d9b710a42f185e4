package handlers

import (
	"net/http"
	"time"

	"github.com/wikideck/wikideck/internal/article"
	"github.com/wikideck/wikideck/internal/storage"
)

func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	term, ok := h.termParam(w, r)
	if !ok {
		return
	}

	summary, err := h.articles.Summary(r.Context(), term)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.history.Add(storage.Lookup{
		Term:  article.NormalizeTerm(term),
		Title: summary.Title,
		When:  time.Now(),
	})
	h.writeJSON(w, summary)
}

func (h *Handler) HandleMedia(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	term, ok := h.termParam(w, r)
	if !ok {
		return
	}

	items, err := h.articles.Media(r.Context(), term)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, items)
}

// HandlePage returns the raw article HTML so the UI can embed it as the
// web view.
func (h *Handler) HandlePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	term, ok := h.termParam(w, r)
	if !ok {
		return
	}

	page, err := h.articles.Page(r.Context(), term)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(page)); err != nil {
		h.writeError(w, "Failed to write page", http.StatusInternalServerError)
	}
}

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.writeJSON(w, h.history.Recent())
}
