package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framelight/studio-cms/pkg/studiocms"
	"github.com/framelight/studio-cms/pkg/studiocms/repo/memory"
)

func newVendor(name string, active bool, createdAt time.Time) *studiocms.VendorProfile {
	return &studiocms.VendorProfile{
		ID:        uuid.New(),
		Name:      name,
		Active:    active,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestVendorCRUD(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	v := newVendor("Lumen Studio", true, time.Now())
	v.Location = "Pune"
	require.NoError(t, repo.CreateVendor(ctx, v))

	got, err := repo.GetVendor(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lumen Studio", got.Name)
	assert.Equal(t, "Pune", got.Location)

	got.Name = "Lumen Studio & Co"
	require.NoError(t, repo.UpdateVendor(ctx, got))

	updated, err := repo.GetVendor(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lumen Studio & Co", updated.Name)

	require.NoError(t, repo.DeleteVendor(ctx, v.ID))
	_, err = repo.GetVendor(ctx, v.ID)
	assert.ErrorIs(t, err, studiocms.ErrNotFound)
}

func TestGetVendorDenormalizesCategoryNames(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	cat := &studiocms.VendorCategory{ID: uuid.New(), Name: "Decor", Slug: "decor", Active: true}
	require.NoError(t, repo.CreateVendorCategory(ctx, cat))
	sub := &studiocms.VendorSubcategory{ID: uuid.New(), CategoryID: cat.ID, Name: "Floral", Slug: "floral", Active: true}
	require.NoError(t, repo.CreateVendorSubcategory(ctx, sub))

	v := newVendor("Petals", true, time.Now())
	v.CategoryID = cat.ID
	v.SubcategoryID = sub.ID
	require.NoError(t, repo.CreateVendor(ctx, v))

	got, err := repo.GetVendor(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "Decor", got.CategoryName)
	assert.Equal(t, "Floral", got.SubcategoryName)
}

func TestReadsReturnCopies(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	v := newVendor("Immutable Studio", true, time.Now())
	require.NoError(t, repo.CreateVendor(ctx, v))

	got, err := repo.GetVendor(ctx, v.ID)
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := repo.GetVendor(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "Immutable Studio", again.Name)
}

func TestSearchVendorsMatchingAndOrder(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	base := time.Now()
	older := newVendor("Candid Tales", true, base.Add(-time.Hour))
	newer := newVendor("Candid Frames", true, base)
	inactive := newVendor("Candid Retired", false, base)
	unrelated := newVendor("Bridal Glow", true, base)
	unrelated.Description = "Makeup with a candid touch"

	for _, v := range []*studiocms.VendorProfile{older, newer, inactive, unrelated} {
		require.NoError(t, repo.CreateVendor(ctx, v))
	}

	rows, err := repo.SearchVendors(ctx, "candid", 0)
	require.NoError(t, err)
	require.Len(t, rows, 3, "matches name and description, skips inactive")

	// newest first; tie between newer and unrelated broken by ID
	assert.Equal(t, older.ID, rows[2].ID)

	capped, err := repo.SearchVendors(ctx, "candid", 2)
	require.NoError(t, err)
	assert.Len(t, capped, 2)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	require.NoError(t, repo.CreateVendor(ctx, newVendor("MEHENDI Masters", true, time.Now())))

	rows, err := repo.SearchVendors(ctx, "mehendi", 0)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestVendorCategoryDuplicateSlug(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	require.NoError(t, repo.CreateVendorCategory(ctx, &studiocms.VendorCategory{
		ID: uuid.New(), Name: "Venues", Slug: "venues", Active: true,
	}))

	err := repo.CreateVendorCategory(ctx, &studiocms.VendorCategory{
		ID: uuid.New(), Name: "Venues Again", Slug: "venues", Active: true,
	})
	assert.ErrorIs(t, err, studiocms.ErrDuplicateSlug)
}

func TestBlogPostDuplicateSlug(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	require.NoError(t, repo.CreateBlogPost(ctx, &studiocms.BlogPost{
		ID: uuid.New(), Title: "Monsoon Weddings", Slug: "monsoon-weddings", Published: true,
	}))

	err := repo.CreateBlogPost(ctx, &studiocms.BlogPost{
		ID: uuid.New(), Title: "Monsoon Weddings II", Slug: "monsoon-weddings", Published: true,
	})
	assert.ErrorIs(t, err, studiocms.ErrDuplicateSlug)

	got, err := repo.GetBlogPostBySlug(ctx, "monsoon-weddings")
	require.NoError(t, err)
	assert.Equal(t, "Monsoon Weddings", got.Title)
}

func TestSubcategoryRequiresParent(t *testing.T) {
	repo := memory.New()

	err := repo.CreateVendorSubcategory(context.Background(), &studiocms.VendorSubcategory{
		ID: uuid.New(), CategoryID: uuid.New(), Name: "Orphan", Slug: "orphan",
	})
	assert.ErrorIs(t, err, studiocms.ErrNotFound)
}

func TestPortfolioImageRequiresAlbum(t *testing.T) {
	repo := memory.New()

	err := repo.CreatePortfolioImage(context.Background(), &studiocms.PortfolioImage{
		ID: uuid.New(), AlbumID: uuid.New(), Title: "Orphan shot",
	})
	assert.ErrorIs(t, err, studiocms.ErrNotFound)
}

func TestAlbumImageCount(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	album := &studiocms.PortfolioAlbum{ID: uuid.New(), Title: "Goa Wedding", Active: true, CreatedAt: time.Now()}
	require.NoError(t, repo.CreateAlbum(ctx, album))

	for i, active := range []bool{true, true, false} {
		require.NoError(t, repo.CreatePortfolioImage(ctx, &studiocms.PortfolioImage{
			ID:        uuid.New(),
			AlbumID:   album.ID,
			Title:     "Shot",
			Active:    active,
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}))
	}

	got, err := repo.GetAlbum(ctx, album.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ImageCount, "only active images count")
}

func TestListVendorsActiveOnly(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	require.NoError(t, repo.CreateVendor(ctx, newVendor("Active One", true, time.Now())))
	require.NoError(t, repo.CreateVendor(ctx, newVendor("Hidden One", false, time.Now())))

	all, err := repo.ListVendors(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := repo.ListVendors(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Active One", active[0].Name)
}

func TestListFAQsOrdersByPosition(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	for _, f := range []struct {
		q   string
		pos int
	}{
		{"How early should we book?", 3},
		{"Do you travel?", 1},
		{"What about raw files?", 2},
	} {
		require.NoError(t, repo.CreateFAQ(ctx, &studiocms.FAQ{
			ID: uuid.New(), Question: f.q, Answer: "Yes", Position: f.pos, Active: true,
		}))
	}

	faqs, err := repo.ListFAQs(ctx, true)
	require.NoError(t, err)
	require.Len(t, faqs, 3)
	assert.Equal(t, "Do you travel?", faqs[0].Question)
	assert.Equal(t, "What about raw files?", faqs[1].Question)
	assert.Equal(t, "How early should we book?", faqs[2].Question)
}

func TestHeroSectionUpsertByPage(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	first := &studiocms.HeroSection{ID: uuid.New(), Page: "home", Heading: "Hello", Active: true}
	require.NoError(t, repo.UpsertHeroSection(ctx, first))

	second := &studiocms.HeroSection{ID: first.ID, Page: "home", Heading: "Hello again", Active: true}
	require.NoError(t, repo.UpsertHeroSection(ctx, second))

	got, err := repo.GetHeroSection(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, "Hello again", got.Heading)

	_, err = repo.GetHeroSection(ctx, "about")
	assert.ErrorIs(t, err, studiocms.ErrNotFound)
}

func TestCountMatching(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	require.NoError(t, repo.CreateVendor(ctx, newVendor("Photographers United", true, time.Now())))
	require.NoError(t, repo.CreateVendor(ctx, newVendor("Wedding Photographers", true, time.Now())))
	require.NoError(t, repo.CreateVendor(ctx, newVendor("Inactive Photographers", false, time.Now())))

	count, err := repo.CountMatching(ctx, studiocms.KindVendor, "photographers")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = repo.CountMatching(ctx, studiocms.KindPortfolio, "photographers")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = repo.CountMatching(ctx, studiocms.KindBlogPost, "photographers")
	assert.Error(t, err, "blog posts are not in the search fan-out")
}

func TestAssetLifecycle(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	ownerID := uuid.New()
	asset := &studiocms.MediaAsset{
		ID:        uuid.New(),
		OwnerKind: studiocms.KindVendor,
		OwnerID:   ownerID,
		Field:     "profile_image",
		ObjectKey: "vendor/" + ownerID.String() + "/a.jpg",
		FileName:  "a.jpg",
	}
	require.NoError(t, repo.CreateAsset(ctx, asset))

	byOwner, err := repo.GetAssetByOwnerField(ctx, studiocms.KindVendor, ownerID, "profile_image")
	require.NoError(t, err)
	assert.Equal(t, asset.ID, byOwner.ID)

	byOwner.FileName = "b.jpg"
	require.NoError(t, repo.UpdateAsset(ctx, byOwner))

	got, err := repo.GetAsset(ctx, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, "b.jpg", got.FileName)

	require.NoError(t, repo.DeleteAsset(ctx, asset.ID))
	_, err = repo.GetAsset(ctx, asset.ID)
	assert.ErrorIs(t, err, studiocms.ErrAssetNotFound)
	_, err = repo.GetAssetByOwnerField(ctx, studiocms.KindVendor, ownerID, "profile_image")
	assert.ErrorIs(t, err, studiocms.ErrAssetNotFound)
}

func TestSetImageField(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	v := newVendor("Linked Studio", true, time.Now())
	require.NoError(t, repo.CreateVendor(ctx, v))

	require.NoError(t, repo.SetImageField(ctx, studiocms.KindVendor, v.ID, "profile_image", "vendor/x/p.jpg"))

	got, err := repo.GetVendor(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "vendor/x/p.jpg", got.ProfileImage)

	// unknown field on a known record
	err = repo.SetImageField(ctx, studiocms.KindVendor, v.ID, "banner", "vendor/x/b.jpg")
	assert.ErrorIs(t, err, studiocms.ErrNotFound)

	// unknown record
	err = repo.SetImageField(ctx, studiocms.KindVendor, uuid.New(), "profile_image", "vendor/x/p.jpg")
	assert.ErrorIs(t, err, studiocms.ErrNotFound)
}

func TestSetImageFieldBlogPostTwoFields(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	post := &studiocms.BlogPost{ID: uuid.New(), Title: "Lighting", Slug: "lighting", Published: true}
	require.NoError(t, repo.CreateBlogPost(ctx, post))

	require.NoError(t, repo.SetImageField(ctx, studiocms.KindBlogPost, post.ID, "cover_image", "blog/c.jpg"))
	require.NoError(t, repo.SetImageField(ctx, studiocms.KindBlogPost, post.ID, "og_image", "blog/og.jpg"))

	got, err := repo.GetBlogPostBySlug(ctx, "lighting")
	require.NoError(t, err)
	assert.Equal(t, "blog/c.jpg", got.CoverImage)
	assert.Equal(t, "blog/og.jpg", got.OGImage)
}
