package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/wikideck/wikideck/internal/article"
	"github.com/wikideck/wikideck/internal/httpc"
	"github.com/wikideck/wikideck/internal/images"
	"github.com/wikideck/wikideck/internal/storage"
	"github.com/wikideck/wikideck/internal/wiki"
)

// fakeRepo serves canned domain data without a network.
type fakeRepo struct {
	summary wiki.Summary
	media   []wiki.MediaItem
	page    string
	err     error
}

func (f *fakeRepo) Summary(ctx context.Context, term string) (wiki.Summary, error) {
	return f.summary, f.err
}

func (f *fakeRepo) MediaList(ctx context.Context, term string) ([]wiki.MediaItem, error) {
	return f.media, f.err
}

func (f *fakeRepo) PageHTML(ctx context.Context, term string) (string, error) {
	return f.page, f.err
}

func newTestHandler(t *testing.T, repo article.Repository) *Handler {
	t.Helper()
	loader, err := images.NewLoader(4, httpc.New(5*time.Second), "wikideck-test/0.1")
	if err != nil {
		t.Fatalf("NewLoader failed: %v", err)
	}
	return New(article.NewService(repo, 20), loader, storage.New(10))
}

func TestHandleSummary(t *testing.T) {
	repo := &fakeRepo{summary: wiki.Summary{Title: "Albert Einstein", Description: "Physicist", Extract: "..."}}
	handler := newTestHandler(t, repo)

	req := httptest.NewRequest(http.MethodGet, "/api/summary?term=Albert+Einstein", nil)
	rec := httptest.NewRecorder()
	handler.HandleSummary(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got wiki.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if got.Title != "Albert Einstein" {
		t.Errorf("Unexpected title: %s", got.Title)
	}

	if handler.history.Len() != 1 {
		t.Errorf("Expected lookup recorded in history, got %d entries", handler.history.Len())
	}
}

func TestHandleSummaryShortTerm(t *testing.T) {
	handler := newTestHandler(t, &fakeRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/summary?term=x", nil)
	rec := httptest.NewRecorder()
	handler.HandleSummary(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for short term, got %d", rec.Code)
	}
	if handler.history.Len() != 0 {
		t.Error("Expected no history entry for failed lookup")
	}
}

func TestHandleSummaryMissingTerm(t *testing.T) {
	handler := newTestHandler(t, &fakeRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	rec := httptest.NewRecorder()
	handler.HandleSummary(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing term, got %d", rec.Code)
	}
}

func TestHandleSummaryNotFound(t *testing.T) {
	repo := &fakeRepo{err: &httpc.Error{Kind: httpc.KindNotFound, URL: "https://x", Status: 404}}
	handler := newTestHandler(t, repo)

	req := httptest.NewRequest(http.MethodGet, "/api/summary?term=No+Such+Page", nil)
	rec := httptest.NewRecorder()
	handler.HandleSummary(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}

func TestHandleSummaryInvalid(t *testing.T) {
	repo := &fakeRepo{summary: wiki.Summary{Title: "Untitled"}}
	handler := newTestHandler(t, repo)

	req := httptest.NewRequest(http.MethodGet, "/api/summary?term=Albert+Einstein", nil)
	rec := httptest.NewRecorder()
	handler.HandleSummary(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422 for invalid summary, got %d", rec.Code)
	}
}

func TestHandleMedia(t *testing.T) {
	repo := &fakeRepo{media: []wiki.MediaItem{
		{Title: "File:A.jpg", ImageURL: "//u/a.jpg", Type: "image"},
		{Title: "File:NoImage.jpg", Type: "image"},
	}}
	handler := newTestHandler(t, repo)

	req := httptest.NewRequest(http.MethodGet, "/api/media?term=Albert+Einstein", nil)
	rec := httptest.NewRecorder()
	handler.HandleMedia(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var got []wiki.MediaItem
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(got) != 1 || got[0].Title != "File:A.jpg" {
		t.Errorf("Expected filtered list, got %+v", got)
	}
}

func TestHandlePage(t *testing.T) {
	repo := &fakeRepo{page: "<html><body>Einstein</body></html>"}
	handler := newTestHandler(t, repo)

	req := httptest.NewRequest(http.MethodGet, "/api/page?term=Albert+Einstein", nil)
	rec := httptest.NewRecorder()
	handler.HandlePage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Content-Type"), "text/html") {
		t.Errorf("Expected HTML content type, got %s", rec.Header().Get("Content-Type"))
	}
	if !strings.Contains(rec.Body.String(), "Einstein") {
		t.Errorf("Unexpected body: %s", rec.Body.String())
	}
}

func TestHandleImageProxy(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}

	var requests atomic.Int32
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if _, err := w.Write(buf.Bytes()); err != nil {
			t.Errorf("Failed to write image: %v", err)
		}
	}))
	defer origin.Close()

	handler := newTestHandler(t, &fakeRepo{})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/image?url="+origin.URL+"/a.png", nil)
		rec := httptest.NewRecorder()
		handler.HandleImage(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if rec.Header().Get("Content-Type") != "image/png" {
			t.Errorf("Expected PNG content type, got %s", rec.Header().Get("Content-Type"))
		}
	}

	if requests.Load() != 1 {
		t.Errorf("Expected cached second load, got %d origin fetches", requests.Load())
	}
}

func TestHandleImageMissingURL(t *testing.T) {
	handler := newTestHandler(t, &fakeRepo{})

	req := httptest.NewRequest(http.MethodGet, "/image", nil)
	rec := httptest.NewRecorder()
	handler.HandleImage(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestHandleHistory(t *testing.T) {
	handler := newTestHandler(t, &fakeRepo{})
	handler.history.Add(storage.Lookup{Term: "Albert Einstein", Title: "Albert Einstein", When: time.Now()})

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	rec := httptest.NewRecorder()
	handler.HandleHistory(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var got []storage.Lookup
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(got) != 1 || got[0].Term != "Albert Einstein" {
		t.Errorf("Unexpected history: %+v", got)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	handler := newTestHandler(t, &fakeRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/summary?term=Albert+Einstein", nil)
	rec := httptest.NewRecorder()
	handler.HandleSummary(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rec.Code)
	}
}

func TestHandleIndex(t *testing.T) {
	handler := newTestHandler(t, &fakeRepo{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.HandleIndex(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "wikideck") {
		t.Error("Expected embedded UI in response")
	}
}
