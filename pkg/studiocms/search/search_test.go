package search_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framelight/studio-cms/pkg/studiocms"
	"github.com/framelight/studio-cms/pkg/studiocms/repo/memory"
	"github.com/framelight/studio-cms/pkg/studiocms/search"
	"github.com/framelight/studio-cms/pkg/studiocms/urlstrategy"
)

var testURLs = urlstrategy.CDN{BaseURL: "https://cdn.example.com"}

func newAggregator(t *testing.T) (*search.Aggregator, studiocms.Repository) {
	t.Helper()
	repo := memory.New()
	return search.NewAggregator(repo, search.DefaultLimits(), nil), repo
}

func seedVendor(t *testing.T, repo studiocms.Repository, name string, active bool, createdAt time.Time) *studiocms.VendorProfile {
	t.Helper()
	v := &studiocms.VendorProfile{
		ID:        uuid.New(),
		Name:      name,
		Tagline:   "Weddings done right",
		Active:    active,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, repo.CreateVendor(context.Background(), v))
	return v
}

func TestSearchRejectsShortQuery(t *testing.T) {
	agg, _ := newAggregator(t)

	for _, q := range []string{"", " ", "a", " a "} {
		resp, err := agg.Search(context.Background(), q, testURLs)
		assert.ErrorIs(t, err, search.ErrQueryTooShort, "query %q", q)
		require.NotNil(t, resp, "query %q still carries a body", q)
		assert.Equal(t, search.MessageQueryTooShort, resp.Message)
		assert.Empty(t, resp.Results)
	}
}

func TestSearchAcceptsTwoRunes(t *testing.T) {
	agg, repo := newAggregator(t)
	seedVendor(t, repo, "DJ Nights", true, time.Now())

	resp, err := agg.Search(context.Background(), "dj", testURLs)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "DJ Nights", resp.Results[0].Title)
}

func TestSearchFindsVendorByName(t *testing.T) {
	agg, repo := newAggregator(t)
	v := seedVendor(t, repo, "Glamour by Priya", true, time.Now())

	resp, err := agg.Search(context.Background(), "priya", testURLs)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)

	hit := resp.Results[0]
	assert.Equal(t, studiocms.KindVendor, hit.Kind)
	assert.Equal(t, v.ID.String(), hit.ID)
	assert.Equal(t, "Glamour by Priya", hit.Title)
	assert.Equal(t, "/vendors/"+v.ID.String(), hit.DetailURL)
	assert.Nil(t, hit.ImageURL, "no profile image yet, so image_url is null")
	assert.Empty(t, resp.Message)
	assert.Empty(t, resp.Suggestions)
}

func TestSearchResolvesImageURLs(t *testing.T) {
	agg, repo := newAggregator(t)
	v := seedVendor(t, repo, "Moments Photography", true, time.Now())
	require.NoError(t, repo.SetImageField(context.Background(), studiocms.KindVendor, v.ID, "profile_image", "vendor/"+v.ID.String()+"/profile.jpg"))

	resp, err := agg.Search(context.Background(), "moments", testURLs)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	require.NotNil(t, resp.Results[0].ImageURL)
	assert.Equal(t, "https://cdn.example.com/vendor/"+v.ID.String()+"/profile.jpg", *resp.Results[0].ImageURL)
}

func TestSearchSkipsInactiveRecords(t *testing.T) {
	agg, repo := newAggregator(t)
	seedVendor(t, repo, "Retired Studio", false, time.Now())

	resp, err := agg.Search(context.Background(), "retired", testURLs)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
}

func TestSearchCapsResultsPerKind(t *testing.T) {
	repo := memory.New()
	agg := search.NewAggregator(repo, search.Limits{Primary: 3, Secondary: 2}, nil)
	ctx := context.Background()

	base := time.Now()
	for i := 0; i < 5; i++ {
		seedVendor(t, repo, "Candid Crew", true, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.CreateVendorCategory(ctx, &studiocms.VendorCategory{
			ID:        uuid.New(),
			Name:      "Candid Decor",
			Slug:      uuid.NewString(),
			Active:    true,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	resp, err := agg.Search(ctx, "candid", testURLs)
	require.NoError(t, err)

	perKind := map[studiocms.Kind]int{}
	for _, hit := range resp.Results {
		perKind[hit.Kind]++
	}
	assert.Equal(t, 3, perKind[studiocms.KindVendor])
	assert.Equal(t, 2, perKind[studiocms.KindVendorCategory])
	assert.Equal(t, 5, resp.Total)
}

func TestSearchOrdersKindsThenNewestFirst(t *testing.T) {
	agg, repo := newAggregator(t)
	ctx := context.Background()

	base := time.Now()
	older := seedVendor(t, repo, "Sunset Films", true, base.Add(-time.Hour))
	newer := seedVendor(t, repo, "Sunset Stories", true, base)
	require.NoError(t, repo.CreateOffering(ctx, &studiocms.ServiceOffering{
		ID:        uuid.New(),
		Name:      "Sunset Couple Shoot",
		Active:    true,
		CreatedAt: base,
	}))

	resp, err := agg.Search(ctx, "sunset", testURLs)
	require.NoError(t, err)
	require.Equal(t, 3, resp.Total)

	// vendors come before offerings, newest vendor first
	assert.Equal(t, newer.ID.String(), resp.Results[0].ID)
	assert.Equal(t, older.ID.String(), resp.Results[1].ID)
	assert.Equal(t, studiocms.KindServiceOffering, resp.Results[2].Kind)

	// same dataset, same query, same order
	again, err := agg.Search(ctx, "sunset", testURLs)
	require.NoError(t, err)
	assert.Equal(t, resp.Results, again.Results)
}

func TestSearchTruncatesDescriptions(t *testing.T) {
	agg, repo := newAggregator(t)

	long := strings.Repeat("é", 200)
	v := &studiocms.VendorProfile{
		ID:          uuid.New(),
		Name:        "Verbose Vendor",
		Description: long,
		Active:      true,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, repo.CreateVendor(context.Background(), v))

	resp, err := agg.Search(context.Background(), "verbose", testURLs)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)

	desc := resp.Results[0].Description
	assert.True(t, strings.HasSuffix(desc, "..."))
	assert.Equal(t, 150, len([]rune(strings.TrimSuffix(desc, "..."))))
}

func TestSearchEmptyResultCarriesSuggestions(t *testing.T) {
	agg, _ := newAggregator(t)

	resp, err := agg.Search(context.Background(), "zzzzzz", testURLs)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	assert.NotNil(t, resp.Results, "results is an empty list, never null")
	assert.Equal(t, `No results found for "zzzzzz"`, resp.Message)
	assert.NotEmpty(t, resp.Suggestions)
}

func TestSearchEmptyResultListIsNotNil(t *testing.T) {
	agg, _ := newAggregator(t)

	resp, err := agg.Search(context.Background(), "nothing here", testURLs)
	require.NoError(t, err)
	assert.NotNil(t, resp.Results)
	assert.Len(t, resp.Results, 0)
}

func TestSuggestionsCarryLiveCounts(t *testing.T) {
	agg, repo := newAggregator(t)
	ctx := context.Background()

	seedVendor(t, repo, "Pixel Photographers", true, time.Now())
	seedVendor(t, repo, "Photographers of Pune", true, time.Now())

	resp, err := agg.Suggestions(ctx)
	require.NoError(t, err)

	var found bool
	for _, s := range resp.Suggestions {
		assert.Greater(t, s.Count, 0, "zero-count terms are dropped")
		if s.Term == "photographers" {
			found = true
			assert.Equal(t, studiocms.KindVendor, s.Kind)
			assert.Equal(t, 2, s.Count)
		}
	}
	assert.True(t, found)
}

func TestSuggestionsEmptyDataset(t *testing.T) {
	agg, _ := newAggregator(t)

	resp, err := agg.Suggestions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resp.Suggestions)
}
