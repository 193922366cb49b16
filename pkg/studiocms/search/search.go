// Package search fans a free-text query out across every searchable
// content kind and merges the matches into one normalized result list.
// There is no relevance scoring: output order is the fixed kind order
// below, then each kind's own newest-first ordering, so a given dataset
// and query always produce the same list.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/framelight/studio-cms/pkg/studiocms"
	"github.com/framelight/studio-cms/pkg/studiocms/urlstrategy"
)

// ErrQueryTooShort is returned when the trimmed query is under the
// minimum length; handlers map it to a 400.
var ErrQueryTooShort = errors.New("search query too short")

const minQueryLength = 2

// MessageQueryTooShort is the user-facing guidance for short queries.
const MessageQueryTooShort = "Please enter at least 2 characters to search"

// noResultSuggestions is generic guidance shown when nothing matched.
// It is fixed, not derived from the query.
var noResultSuggestions = []string{
	"Try searching for photographers, venues or makeup artists",
	"Browse vendor categories for inspiration",
	"Check the portfolio for recent weddings and events",
}

// Limits hold the per-kind result caps. Primary kinds (vendors,
// portfolio albums, service offerings) contribute up to Primary hits,
// the supporting kinds up to Secondary. Tuning defaults, not
// invariants.
type Limits struct {
	Primary   int
	Secondary int
}

// DefaultLimits returns the caps used when none are configured.
func DefaultLimits() Limits {
	return Limits{Primary: 10, Secondary: 5}
}

// Aggregator runs the fan-out search over a content repository.
type Aggregator struct {
	repo   studiocms.Repository
	limits Limits
	logger *slog.Logger
}

// NewAggregator creates a search aggregator. Zero limits fall back to
// the defaults.
func NewAggregator(repo studiocms.Repository, limits Limits, logger *slog.Logger) *Aggregator {
	if limits.Primary <= 0 {
		limits.Primary = DefaultLimits().Primary
	}
	if limits.Secondary <= 0 {
		limits.Secondary = DefaultLimits().Secondary
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{repo: repo, limits: limits, logger: logger}
}

// source is one entry in the fan-out table.
type source struct {
	kind  studiocms.Kind
	limit int
	fetch func(ctx context.Context, term string, limit int, urls urlstrategy.Resolver) ([]Hit, error)
}

// sources returns the fan-out table. The order here is the output
// order and must stay stable.
func (a *Aggregator) sources() []source {
	return []source{
		{studiocms.KindVendor, a.limits.Primary, a.fetchVendors},
		{studiocms.KindVendorCategory, a.limits.Secondary, a.fetchVendorCategories},
		{studiocms.KindVendorSubcategory, a.limits.Secondary, a.fetchVendorSubcategories},
		{studiocms.KindPortfolio, a.limits.Primary, a.fetchAlbums},
		{studiocms.KindPortfolioCategory, a.limits.Secondary, a.fetchPortfolioCategories},
		{studiocms.KindPortfolioImage, a.limits.Secondary, a.fetchPortfolioImages},
		{studiocms.KindVendorImage, a.limits.Secondary, a.fetchVendorImages},
		{studiocms.KindVendorService, a.limits.Secondary, a.fetchVendorServices},
		{studiocms.KindServiceOffering, a.limits.Primary, a.fetchOfferings},
	}
}

// Search runs the fan-out. A failing kind aborts the whole call; there
// is no meaningful partial result without per-kind isolation.
func (a *Aggregator) Search(ctx context.Context, query string, urls urlstrategy.Resolver) (*Response, error) {
	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < minQueryLength {
		return &Response{
			Query:   q,
			Results: []Hit{},
			Message: MessageQueryTooShort,
		}, ErrQueryTooShort
	}

	term := strings.ToLower(q)
	results := []Hit{}
	for _, src := range a.sources() {
		hits, err := src.fetch(ctx, term, src.limit, urls)
		if err != nil {
			return nil, fmt.Errorf("searching %s: %w", src.kind, err)
		}
		results = append(results, hits...)
	}

	resp := &Response{Query: q, Total: len(results), Results: results}
	if len(results) == 0 {
		resp.Message = fmt.Sprintf("No results found for %q", q)
		resp.Suggestions = noResultSuggestions
	}
	return resp, nil
}

// cannedSuggestions are the terms offered by the suggestions endpoint,
// each tied to the kind whose live count annotates it.
var cannedSuggestions = []Suggestion{
	{Term: "photographers", Kind: studiocms.KindVendor},
	{Term: "venues", Kind: studiocms.KindVendor},
	{Term: "makeup", Kind: studiocms.KindVendor},
	{Term: "wedding", Kind: studiocms.KindPortfolio},
	{Term: "candid", Kind: studiocms.KindPortfolio},
	{Term: "decor", Kind: studiocms.KindVendorCategory},
	{Term: "catering", Kind: studiocms.KindVendorService},
	{Term: "pre-wedding", Kind: studiocms.KindServiceOffering},
}

// Suggestions returns the canned terms annotated with live counts,
// dropping any term that currently matches nothing.
func (a *Aggregator) Suggestions(ctx context.Context) (*SuggestionsResponse, error) {
	out := make([]Suggestion, 0, len(cannedSuggestions))
	for _, s := range cannedSuggestions {
		count, err := a.repo.CountMatching(ctx, s.Kind, s.Term)
		if err != nil {
			return nil, fmt.Errorf("counting %s matches for %q: %w", s.Kind, s.Term, err)
		}
		if count == 0 {
			continue
		}
		s.Count = count
		out = append(out, s)
	}
	return &SuggestionsResponse{Suggestions: out}, nil
}

// Per-kind fetchers. Each runs the repository's substring query and
// normalizes the rows into Hits.

func (a *Aggregator) fetchVendors(ctx context.Context, term string, limit int, urls urlstrategy.Resolver) ([]Hit, error) {
	rows, err := a.repo.SearchVendors(ctx, term, limit)
	if err != nil {
		return nil, err
	}
	hits := make([]Hit, 0, len(rows))
	for _, v := range rows {
		hits = append(hits, Hit{
			Kind:        studiocms.KindVendor,
			ID:          v.ID.String(),
			Title:       v.Name,
			Subtitle:    v.Tagline,
			Description: truncate(v.Description, descriptionLimit),
			ImageURL:    urls.AssetURL(v.ProfileImage),
			DetailURL:   "/vendors/" + v.ID.String(),
			Category:    v.CategoryName,
			Rating:      v.Rating,
			PriceRange:  v.PriceRange,
			Location:    v.Location,
		})
	}
	return hits, nil
}

func (a *Aggregator) fetchVendorCategories(ctx context.Context, term string, limit int, urls urlstrategy.Resolver) ([]Hit, error) {
	rows, err := a.repo.SearchVendorCategories(ctx, term, limit)
	if err != nil {
		return nil, err
	}
	hits := make([]Hit, 0, len(rows))
	for _, c := range rows {
		hits = append(hits, Hit{
			Kind:        studiocms.KindVendorCategory,
			ID:          c.ID.String(),
			Title:       c.Name,
			Description: truncate(c.Description, descriptionLimit),
			ImageURL:    urls.AssetURL(c.Image),
			DetailURL:   "/vendors?category=" + c.Slug,
			Category:    "Vendor Category",
		})
	}
	return hits, nil
}

func (a *Aggregator) fetchVendorSubcategories(ctx context.Context, term string, limit int, urls urlstrategy.Resolver) ([]Hit, error) {
	rows, err := a.repo.SearchVendorSubcategories(ctx, term, limit)
	if err != nil {
		return nil, err
	}
	hits := make([]Hit, 0, len(rows))
	for _, s := range rows {
		hits = append(hits, Hit{
			Kind:        studiocms.KindVendorSubcategory,
			ID:          s.ID.String(),
			Title:       s.Name,
			Description: truncate(s.Description, descriptionLimit),
			ImageURL:    urls.AssetURL(""),
			DetailURL:   "/vendors?subcategory=" + s.Slug,
			Category:    "Vendor Subcategory",
		})
	}
	return hits, nil
}

func (a *Aggregator) fetchAlbums(ctx context.Context, term string, limit int, urls urlstrategy.Resolver) ([]Hit, error) {
	rows, err := a.repo.SearchAlbums(ctx, term, limit)
	if err != nil {
		return nil, err
	}
	hits := make([]Hit, 0, len(rows))
	for _, al := range rows {
		hits = append(hits, Hit{
			Kind:        studiocms.KindPortfolio,
			ID:          al.ID.String(),
			Title:       al.Title,
			Description: truncate(al.Description, descriptionLimit),
			ImageURL:    urls.AssetURL(al.CoverImage),
			DetailURL:   "/portfolio/" + al.ID.String(),
			Category:    al.CategoryName,
			Location:    al.Location,
			ImageCount:  al.ImageCount,
		})
	}
	return hits, nil
}

func (a *Aggregator) fetchPortfolioCategories(ctx context.Context, term string, limit int, urls urlstrategy.Resolver) ([]Hit, error) {
	rows, err := a.repo.SearchPortfolioCategories(ctx, term, limit)
	if err != nil {
		return nil, err
	}
	hits := make([]Hit, 0, len(rows))
	for _, c := range rows {
		hits = append(hits, Hit{
			Kind:        studiocms.KindPortfolioCategory,
			ID:          c.ID.String(),
			Title:       c.Name,
			Description: truncate(c.Description, descriptionLimit),
			ImageURL:    urls.AssetURL(""),
			DetailURL:   "/portfolio?category=" + c.Slug,
			Category:    "Portfolio Category",
		})
	}
	return hits, nil
}

func (a *Aggregator) fetchPortfolioImages(ctx context.Context, term string, limit int, urls urlstrategy.Resolver) ([]Hit, error) {
	rows, err := a.repo.SearchPortfolioImages(ctx, term, limit)
	if err != nil {
		return nil, err
	}
	hits := make([]Hit, 0, len(rows))
	for _, img := range rows {
		hits = append(hits, Hit{
			Kind:        studiocms.KindPortfolioImage,
			ID:          img.ID.String(),
			Title:       img.Title,
			Description: truncate(img.Caption, descriptionLimit),
			ImageURL:    urls.AssetURL(img.Image),
			DetailURL:   "/portfolio/" + img.AlbumID.String(),
		})
	}
	return hits, nil
}

func (a *Aggregator) fetchVendorImages(ctx context.Context, term string, limit int, urls urlstrategy.Resolver) ([]Hit, error) {
	rows, err := a.repo.SearchVendorImages(ctx, term, limit)
	if err != nil {
		return nil, err
	}
	hits := make([]Hit, 0, len(rows))
	for _, img := range rows {
		hits = append(hits, Hit{
			Kind:        studiocms.KindVendorImage,
			ID:          img.ID.String(),
			Title:       img.Title,
			Description: truncate(img.Caption, descriptionLimit),
			ImageURL:    urls.AssetURL(img.Image),
			DetailURL:   "/vendors/" + img.VendorID.String(),
		})
	}
	return hits, nil
}

func (a *Aggregator) fetchVendorServices(ctx context.Context, term string, limit int, urls urlstrategy.Resolver) ([]Hit, error) {
	rows, err := a.repo.SearchVendorServices(ctx, term, limit)
	if err != nil {
		return nil, err
	}
	hits := make([]Hit, 0, len(rows))
	for _, vs := range rows {
		hits = append(hits, Hit{
			Kind:        studiocms.KindVendorService,
			ID:          vs.ID.String(),
			Title:       vs.Name,
			Description: truncate(vs.Description, descriptionLimit),
			ImageURL:    urls.AssetURL(""),
			DetailURL:   "/vendors/" + vs.VendorID.String(),
			Price:       vs.Price,
		})
	}
	return hits, nil
}

func (a *Aggregator) fetchOfferings(ctx context.Context, term string, limit int, urls urlstrategy.Resolver) ([]Hit, error) {
	rows, err := a.repo.SearchOfferings(ctx, term, limit)
	if err != nil {
		return nil, err
	}
	hits := make([]Hit, 0, len(rows))
	for _, o := range rows {
		hits = append(hits, Hit{
			Kind:        studiocms.KindServiceOffering,
			ID:          o.ID.String(),
			Title:       o.Name,
			Subtitle:    o.Tagline,
			Description: truncate(o.Description, descriptionLimit),
			ImageURL:    urls.AssetURL(o.Image),
			DetailURL:   "/services/" + o.ID.String(),
			Price:       o.StartingPrice,
		})
	}
	return hits, nil
}
