// Package wikipedia is the remote data source for the Wikipedia REST API.
// Responses are parsed with the jsonx field extractor and mapped to wiki
// domain records.
package wikipedia

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/wikideck/wikideck/internal/httpc"
	"github.com/wikideck/wikideck/internal/jsonx"
	"github.com/wikideck/wikideck/internal/wiki"
)

// Client issues requests against one Wikipedia REST base URL.
type Client struct {
	BaseURL   string
	UserAgent string
	httpc     *httpc.Client
}

// NewClient creates a data source over the given HTTP client.
func NewClient(baseURL, userAgent string, hc *httpc.Client) *Client {
	return &Client{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		UserAgent: userAgent,
		httpc:     hc,
	}
}

// Summary fetches and parses /page/summary/{term}.
func (c *Client) Summary(ctx context.Context, term string) (wiki.Summary, error) {
	reqURL := c.endpoint("summary", term)

	resp, err := c.httpc.Get(ctx, reqURL, c.jsonHeaders())
	if err != nil {
		return wiki.Summary{}, err
	}

	summary, err := parseSummary(resp.Body)
	if err != nil {
		slog.Warn("Failed to parse summary payload", "url", reqURL, "err", err)
		return wiki.Summary{}, httpc.ParseError(reqURL, err)
	}
	return summary, nil
}

// MediaList fetches and parses /page/media-list/{term}.
func (c *Client) MediaList(ctx context.Context, term string) ([]wiki.MediaItem, error) {
	reqURL := c.endpoint("media-list", term)

	resp, err := c.httpc.Get(ctx, reqURL, c.jsonHeaders())
	if err != nil {
		return nil, err
	}

	items, err := parseMediaList(resp.Body)
	if err != nil {
		slog.Warn("Failed to parse media-list payload", "url", reqURL, "err", err)
		return nil, httpc.ParseError(reqURL, err)
	}
	return items, nil
}

// PageHTML fetches /page/html/{term} and returns the raw article HTML.
func (c *Client) PageHTML(ctx context.Context, term string) (string, error) {
	reqURL := c.endpoint("html", term)

	resp, err := c.httpc.Get(ctx, reqURL, map[string]string{
		"Accept":     "text/html",
		"User-Agent": c.UserAgent,
	})
	if err != nil {
		return "", err
	}
	return resp.Body, nil
}

func (c *Client) endpoint(operation, term string) string {
	return fmt.Sprintf("%s/page/%s/%s", c.BaseURL, operation, pathSegment(term))
}

func (c *Client) jsonHeaders() map[string]string {
	return map[string]string{
		"Accept":     "application/json",
		"User-Agent": c.UserAgent,
	}
}

// pathSegment turns a normalized term into the REST path segment: spaces
// become underscores, everything else is percent-escaped.
func pathSegment(term string) string {
	return url.PathEscape(strings.ReplaceAll(term, " ", "_"))
}

func parseSummary(body string) (wiki.Summary, error) {
	title, ok := jsonx.StringField(body, "title")
	if !ok {
		return wiki.Summary{}, fmt.Errorf("summary payload missing title")
	}

	summary := wiki.Summary{Title: title}
	summary.Description, _ = jsonx.StringField(body, "description")
	summary.Extract, _ = jsonx.StringField(body, "extract")
	summary.PageID, _ = jsonx.IntField(body, "pageid")

	if thumb, ok := jsonx.Object(body, "thumbnail"); ok {
		summary.ThumbnailURL, _ = jsonx.StringField(thumb, "source")
	}
	if original, ok := jsonx.Object(body, "originalimage"); ok {
		summary.OriginalImageURL, _ = jsonx.StringField(original, "source")
	}
	if ts, ok := jsonx.StringField(body, "timestamp"); ok {
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			summary.Timestamp = parsed
		}
	}

	return summary, nil
}

func parseMediaList(body string) ([]wiki.MediaItem, error) {
	arr, ok := jsonx.Array(body, "items")
	if !ok {
		return nil, fmt.Errorf("media-list payload missing items array")
	}

	objects := jsonx.SplitObjects(arr)
	items := make([]wiki.MediaItem, 0, len(objects))
	for _, obj := range objects {
		items = append(items, parseMediaItem(obj))
	}
	return items, nil
}

func parseMediaItem(obj string) wiki.MediaItem {
	item := wiki.MediaItem{}
	item.Title, _ = jsonx.StringField(obj, "title")
	item.Type, _ = jsonx.StringField(obj, "type")

	if caption, ok := jsonx.Object(obj, "caption"); ok {
		item.Caption, _ = jsonx.StringField(caption, "text")
	}
	item.Keywords = extractKeywords(item.Caption)

	if srcset, ok := jsonx.Array(obj, "srcset"); ok {
		if sources := jsonx.SplitObjects(srcset); len(sources) > 0 {
			item.ImageURL, _ = jsonx.StringField(sources[0], "src")
		}
	}

	return item
}
