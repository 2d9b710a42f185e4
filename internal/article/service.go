// Package article holds the use-cases between presentation and the remote
// data source: term validation and normalization, summary validity, and
// media list filtering.
package article

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/wikideck/wikideck/internal/wiki"
)

// Repository is what the use-cases need from a data source.
type Repository interface {
	Summary(ctx context.Context, term string) (wiki.Summary, error)
	MediaList(ctx context.Context, term string) ([]wiki.MediaItem, error)
	PageHTML(ctx context.Context, term string) (string, error)
}

// MinTermLength is the shortest search term accepted.
const MinTermLength = 2

var (
	// ErrTermTooShort rejects blank or single-character search terms.
	ErrTermTooShort = errors.New("search term must be at least 2 characters")
	// ErrInvalidSummary rejects summaries without a displayable title and
	// description.
	ErrInvalidSummary = errors.New("article summary is missing title or description")
)

// Service wires the use-cases to a repository.
type Service struct {
	repo     Repository
	maxMedia int
}

// NewService creates the use-case layer. maxMedia caps the media list
// returned by Media.
func NewService(repo Repository, maxMedia int) *Service {
	return &Service{repo: repo, maxMedia: maxMedia}
}

// NormalizeTerm trims the term and collapses inner whitespace runs to
// single spaces: "  Albert   Einstein  " becomes "Albert Einstein".
func NormalizeTerm(term string) string {
	return strings.Join(strings.Fields(term), " ")
}

func (s *Service) validateTerm(term string) (string, error) {
	normalized := NormalizeTerm(term)
	if len([]rune(normalized)) < MinTermLength {
		return "", fmt.Errorf("%w: %q", ErrTermTooShort, term)
	}
	return normalized, nil
}

// Summary validates and normalizes the term, fetches the article summary,
// and rejects summaries that fail the validity predicate.
func (s *Service) Summary(ctx context.Context, term string) (wiki.Summary, error) {
	normalized, err := s.validateTerm(term)
	if err != nil {
		return wiki.Summary{}, err
	}

	summary, err := s.repo.Summary(ctx, normalized)
	if err != nil {
		return wiki.Summary{}, err
	}
	if !summary.Valid() {
		return wiki.Summary{}, fmt.Errorf("%w: %q", ErrInvalidSummary, normalized)
	}
	return summary, nil
}

// Media fetches the article's media list, keeps only valid items with an
// image URL, sorts still images ahead of other media (title as tiebreak),
// and caps the result.
func (s *Service) Media(ctx context.Context, term string) ([]wiki.MediaItem, error) {
	normalized, err := s.validateTerm(term)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.MediaList(ctx, normalized)
	if err != nil {
		return nil, err
	}

	filtered := make([]wiki.MediaItem, 0, len(items))
	for _, item := range items {
		if item.Valid() && item.HasImage() {
			filtered = append(filtered, item)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].IsImage() != filtered[j].IsImage() {
			return filtered[i].IsImage()
		}
		return filtered[i].Title < filtered[j].Title
	})

	if len(filtered) > s.maxMedia {
		slog.Debug("Capping media list", "term", normalized, "total", len(filtered), "cap", s.maxMedia)
		filtered = filtered[:s.maxMedia]
	}
	return filtered, nil
}

// Page validates the term and fetches the raw article HTML.
func (s *Service) Page(ctx context.Context, term string) (string, error) {
	normalized, err := s.validateTerm(term)
	if err != nil {
		return "", err
	}
	return s.repo.PageHTML(ctx, normalized)
}
