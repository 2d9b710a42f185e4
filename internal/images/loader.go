// Package images loads article images: normalize the URL, check the
// bounded cache, otherwise fetch, decode, optionally rescale, cache.
package images

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/wikideck/wikideck/internal/httpc"
)

// Bitmap is one decoded, possibly rescaled image.
type Bitmap struct {
	URL    string
	Format string
	Image  image.Image
	Width  int
	Height int
}

// Loader fetches and decodes images behind a bounded LRU cache keyed by
// normalized URL. The cache's own locking makes Load safe for concurrent
// use.
type Loader struct {
	cache     *lru.Cache[string, *Bitmap]
	client    *httpc.Client
	userAgent string
}

// NewLoader creates a loader with the given cache bound.
func NewLoader(cacheSize int, client *httpc.Client, userAgent string) (*Loader, error) {
	cache, err := lru.New[string, *Bitmap](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create image cache: %w", err)
	}
	return &Loader{cache: cache, client: client, userAgent: userAgent}, nil
}

// NormalizeURL completes scheme-less URLs the way the media-list endpoint
// emits them: "//host/p" and "host/p" both become "https://host/p".
func NormalizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		return ""
	case strings.HasPrefix(trimmed, "//"):
		return "https:" + trimmed
	case strings.Contains(trimmed, "://"):
		return trimmed
	default:
		return "https://" + trimmed
	}
}

// Load returns the image at rawURL, rescaled to fit maxWidth x maxHeight
// when both are positive. Repeated loads of one URL are served from the
// cache until evicted by the size bound.
func (l *Loader) Load(ctx context.Context, rawURL string, maxWidth, maxHeight int) (*Bitmap, error) {
	normalized := NormalizeURL(rawURL)
	if normalized == "" {
		return nil, &httpc.Error{Kind: httpc.KindBadURL, URL: rawURL}
	}

	if cached, ok := l.cache.Get(normalized); ok {
		slog.Debug("Image cache hit", "url", normalized)
		return cached, nil
	}

	data, err := l.client.GetBytes(ctx, normalized, map[string]string{"User-Agent": l.userAgent})
	if err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, httpc.ParseError(normalized, fmt.Errorf("failed to decode image: %w", err))
	}

	if maxWidth > 0 && maxHeight > 0 {
		img = scaleToFit(img, maxWidth, maxHeight)
	}

	bounds := img.Bounds()
	bitmap := &Bitmap{
		URL:    normalized,
		Format: format,
		Image:  img,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}

	l.cache.Add(normalized, bitmap)
	slog.Debug("Image cached", "url", normalized, "format", format, "width", bitmap.Width, "height", bitmap.Height)
	return bitmap, nil
}

// Len reports the number of cached images.
func (l *Loader) Len() int {
	return l.cache.Len()
}

// scaleToFit shrinks img to fit within maxWidth x maxHeight, preserving
// aspect ratio. Images already inside the bounds are returned unchanged.
func scaleToFit(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxWidth && h <= maxHeight {
		return img
	}

	scaleW := float64(maxWidth) / float64(w)
	scaleH := float64(maxHeight) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}

	dstW := int(float64(w) * scale)
	dstH := int(float64(h) * scale)
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
