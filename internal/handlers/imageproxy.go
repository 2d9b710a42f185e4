package handlers

import (
	"image/jpeg"
	"image/png"
	"net/http"
	"strconv"
)

// Bounds requested through the proxy are clamped to keep decode work
// predictable.
const maxProxyDimension = 2048

// HandleImage fetches an article image through the bounded cache,
// optionally rescaled, and re-encodes it for the browser.
func (h *Handler) HandleImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		h.writeError(w, "Missing url parameter", http.StatusBadRequest)
		return
	}

	width := dimensionParam(r, "w")
	height := dimensionParam(r, "h")

	bitmap, err := h.loader.Load(r.Context(), rawURL, width, height)
	if err != nil {
		h.writeError(w, err.Error(), networkStatus(err))
		return
	}

	if bitmap.Format == "jpeg" {
		w.Header().Set("Content-Type", "image/jpeg")
		if err := jpeg.Encode(w, bitmap.Image, &jpeg.Options{Quality: 85}); err != nil {
			h.writeError(w, "Failed to encode image", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, bitmap.Image); err != nil {
		h.writeError(w, "Failed to encode image", http.StatusInternalServerError)
	}
}

func dimensionParam(r *http.Request, name string) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0
	}
	if n > maxProxyDimension {
		return maxProxyDimension
	}
	return n
}
