// Package memory implements studiocms.Repository with in-process maps.
// It backs tests and small deployments; all reads return copies so
// callers can never mutate stored state.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/framelight/studio-cms/pkg/studiocms"
)

// Repository implements studiocms.Repository using in-memory storage
type Repository struct {
	mu sync.RWMutex

	vendors             map[uuid.UUID]*studiocms.VendorProfile
	vendorCategories    map[uuid.UUID]*studiocms.VendorCategory
	vendorSubcategories map[uuid.UUID]*studiocms.VendorSubcategory
	vendorImages        map[uuid.UUID]*studiocms.VendorImage
	vendorServices      map[uuid.UUID]*studiocms.VendorService
	albums              map[uuid.UUID]*studiocms.PortfolioAlbum
	portfolioCategories map[uuid.UUID]*studiocms.PortfolioCategory
	portfolioImages     map[uuid.UUID]*studiocms.PortfolioImage
	offerings           map[uuid.UUID]*studiocms.ServiceOffering
	blogPosts           map[uuid.UUID]*studiocms.BlogPost
	testimonials        map[uuid.UUID]*studiocms.Testimonial
	faqs                map[uuid.UUID]*studiocms.FAQ
	heroes              map[string]*studiocms.HeroSection

	assets        map[uuid.UUID]*studiocms.MediaAsset
	assetsByOwner map[string]uuid.UUID // "kind|owner|field" -> asset id
}

// New creates a new in-memory repository
func New() studiocms.Repository {
	return &Repository{
		vendors:             make(map[uuid.UUID]*studiocms.VendorProfile),
		vendorCategories:    make(map[uuid.UUID]*studiocms.VendorCategory),
		vendorSubcategories: make(map[uuid.UUID]*studiocms.VendorSubcategory),
		vendorImages:        make(map[uuid.UUID]*studiocms.VendorImage),
		vendorServices:      make(map[uuid.UUID]*studiocms.VendorService),
		albums:              make(map[uuid.UUID]*studiocms.PortfolioAlbum),
		portfolioCategories: make(map[uuid.UUID]*studiocms.PortfolioCategory),
		portfolioImages:     make(map[uuid.UUID]*studiocms.PortfolioImage),
		offerings:           make(map[uuid.UUID]*studiocms.ServiceOffering),
		blogPosts:           make(map[uuid.UUID]*studiocms.BlogPost),
		testimonials:        make(map[uuid.UUID]*studiocms.Testimonial),
		faqs:                make(map[uuid.UUID]*studiocms.FAQ),
		heroes:              make(map[string]*studiocms.HeroSection),
		assets:              make(map[uuid.UUID]*studiocms.MediaAsset),
		assetsByOwner:       make(map[string]uuid.UUID),
	}
}

// matches reports whether any field contains term, case-insensitively.
func matches(term string, fields ...string) bool {
	term = strings.ToLower(term)
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Vendor profiles

func (r *Repository) CreateVendor(ctx context.Context, v *studiocms.VendorProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	vCopy := *v
	r.vendors[v.ID] = &vCopy
	return nil
}

// denormVendor fills the denormalized category names. Caller holds the lock.
func (r *Repository) denormVendor(v *studiocms.VendorProfile) *studiocms.VendorProfile {
	vCopy := *v
	if c, ok := r.vendorCategories[v.CategoryID]; ok {
		vCopy.CategoryName = c.Name
	}
	if s, ok := r.vendorSubcategories[v.SubcategoryID]; ok {
		vCopy.SubcategoryName = s.Name
	}
	return &vCopy
}

func (r *Repository) GetVendor(ctx context.Context, id uuid.UUID) (*studiocms.VendorProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, exists := r.vendors[id]
	if !exists {
		return nil, studiocms.ErrNotFound
	}
	return r.denormVendor(v), nil
}

func (r *Repository) UpdateVendor(ctx context.Context, v *studiocms.VendorProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.vendors[v.ID]; !exists {
		return studiocms.ErrNotFound
	}
	vCopy := *v
	r.vendors[v.ID] = &vCopy
	return nil
}

func (r *Repository) DeleteVendor(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.vendors[id]; !exists {
		return studiocms.ErrNotFound
	}
	delete(r.vendors, id)
	return nil
}

func (r *Repository) ListVendors(ctx context.Context, activeOnly bool) ([]*studiocms.VendorProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*studiocms.VendorProfile
	for _, v := range r.vendors {
		if activeOnly && !v.Active {
			continue
		}
		result = append(result, r.denormVendor(v))
	}
	sortNewestFirst(result, func(v *studiocms.VendorProfile) sortKey {
		return sortKey{v.CreatedAt.UnixNano(), v.ID.String()}
	})
	return result, nil
}

func (r *Repository) SearchVendors(ctx context.Context, term string, limit int) ([]*studiocms.VendorProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*studiocms.VendorProfile
	for _, v := range r.vendors {
		if !v.Active {
			continue
		}
		dv := r.denormVendor(v)
		if matches(term, dv.Name, dv.Tagline, dv.Description, dv.Story, dv.Location,
			dv.VendorType, dv.CategoryName, dv.SubcategoryName) {
			result = append(result, dv)
		}
	}
	sortNewestFirst(result, func(v *studiocms.VendorProfile) sortKey {
		return sortKey{v.CreatedAt.UnixNano(), v.ID.String()}
	})
	return capped(result, limit), nil
}

// Vendor categories

func (r *Repository) CreateVendorCategory(ctx context.Context, c *studiocms.VendorCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.vendorCategories {
		if existing.Slug == c.Slug {
			return studiocms.ErrDuplicateSlug
		}
	}
	cCopy := *c
	r.vendorCategories[c.ID] = &cCopy
	return nil
}

func (r *Repository) ListVendorCategories(ctx context.Context, activeOnly bool) ([]*studiocms.VendorCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*studiocms.VendorCategory
	for _, c := range r.vendorCategories {
		if activeOnly && !c.Active {
			continue
		}
		cCopy := *c
		result = append(result, &cCopy)
	}
	sortNewestFirst(result, func(c *studiocms.VendorCategory) sortKey {
		return sortKey{c.CreatedAt.UnixNano(), c.ID.String()}
	})
	return result, nil
}

func (r *Repository) SearchVendorCategories(ctx context.Context, term string, limit int) ([]*studiocms.VendorCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*studiocms.VendorCategory
	for _, c := range r.vendorCategories {
		if !c.Active || !matches(term, c.Name, c.Description) {
			continue
		}
		cCopy := *c
		result = append(result, &cCopy)
	}
	sortNewestFirst(result, func(c *studiocms.VendorCategory) sortKey {
		return sortKey{c.CreatedAt.UnixNano(), c.ID.String()}
	})
	return capped(result, limit), nil
}

// Vendor subcategories

func (r *Repository) CreateVendorSubcategory(ctx context.Context, s *studiocms.VendorSubcategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.vendorCategories[s.CategoryID]; !exists {
		return fmt.Errorf("parent category %s: %w", s.CategoryID, studiocms.ErrNotFound)
	}
	sCopy := *s
	r.vendorSubcategories[s.ID] = &sCopy
	return nil
}

func (r *Repository) ListVendorSubcategories(ctx context.Context, categoryID uuid.UUID, activeOnly bool) ([]*studiocms.VendorSubcategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*studiocms.VendorSubcategory
	for _, s := range r.vendorSubcategories {
		if categoryID != uuid.Nil && s.CategoryID != categoryID {
			continue
		}
		if activeOnly && !s.Active {
			continue
		}
		sCopy := *s
		result = append(result, &sCopy)
	}
	sortNewestFirst(result, func(s *studiocms.VendorSubcategory) sortKey {
		return sortKey{s.CreatedAt.UnixNano(), s.ID.String()}
	})
	return result, nil
}

func (r *Repository) SearchVendorSubcategories(ctx context.Context, term string, limit int) ([]*studiocms.VendorSubcategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*studiocms.VendorSubcategory
	for _, s := range r.vendorSubcategories {
		if !s.Active || !matches(term, s.Name, s.Description) {
			continue
		}
		sCopy := *s
		result = append(result, &sCopy)
	}
	sortNewestFirst(result, func(s *studiocms.VendorSubcategory) sortKey {
		return sortKey{s.CreatedAt.UnixNano(), s.ID.String()}
	})
	return capped(result, limit), nil
}

// Vendor images

func (r *Repository) CreateVendorImage(ctx context.Context, img *studiocms.VendorImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	imgCopy := *img
	r.vendorImages[img.ID] = &imgCopy
	return nil
}

func (r *Repository) ListVendorImages(ctx context.Context, vendorID uuid.UUID, activeOnly bool) ([]*studiocms.VendorImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*studiocms.VendorImage
	for _, img := range r.vendorImages {
		if vendorID != uuid.Nil && img.VendorID != vendorID {
			continue
		}
		if activeOnly && !img.Active {
			continue
		}
		imgCopy := *img
		result = append(result, &imgCopy)
	}
	sortNewestFirst(result, func(img *studiocms.VendorImage) sortKey {
		return sortKey{img.CreatedAt.UnixNano(), img.ID.String()}
	})
	return result, nil
}

func (r *Repository) SearchVendorImages(ctx context.Context, term string, limit int) ([]*studiocms.VendorImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*studiocms.VendorImage
	for _, img := range r.vendorImages {
		if !img.Active || !matches(term, img.Title, img.Caption) {
			continue
		}
		imgCopy := *img
		result = append(result, &imgCopy)
	}
	sortNewestFirst(result, func(img *studiocms.VendorImage) sortKey {
		return sortKey{img.CreatedAt.UnixNano(), img.ID.String()}
	})
	return capped(result, limit), nil
}

// Vendor services

func (r *Repository) CreateVendorService(ctx context.Context, s *studiocms.VendorService) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sCopy := *s
	r.vendorServices[s.ID] = &sCopy
	return nil
}

func (r *Repository) ListVendorServices(ctx context.Context, vendorID uuid.UUID, activeOnly bool) ([]*studiocms.VendorService, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*studiocms.VendorService
	for _, s := range r.vendorServices {
		if vendorID != uuid.Nil && s.VendorID != vendorID {
			continue
		}
		if activeOnly && !s.Active {
			continue
		}
		sCopy := *s
		result = append(result, &sCopy)
	}
	sortNewestFirst(result, func(s *studiocms.VendorService) sortKey {
		return sortKey{s.CreatedAt.UnixNano(), s.ID.String()}
	})
	return result, nil
}

func (r *Repository) SearchVendorServices(ctx context.Context, term string, limit int) ([]*studiocms.VendorService, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*studiocms.VendorService
	for _, s := range r.vendorServices {
		if !s.Active || !matches(term, s.Name, s.Description) {
			continue
		}
		sCopy := *s
		result = append(result, &sCopy)
	}
	sortNewestFirst(result, func(s *studiocms.VendorService) sortKey {
		return sortKey{s.CreatedAt.UnixNano(), s.ID.String()}
	})
	return capped(result, limit), nil
}

// Portfolio albums

func (r *Repository) CreateAlbum(ctx context.Context, a *studiocms.PortfolioAlbum) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	aCopy := *a
	r.albums[a.ID] = &aCopy
	return nil
}

// denormAlbum fills CategoryName and ImageCount. Caller holds the lock.
func (r *Repository) denormAlbum(a *studiocms.PortfolioAlbum) *studiocms.PortfolioAlbum {
	aCopy := *a
	if c, ok := r.portfolioCategories[a.CategoryID]; ok {
		aCopy.CategoryName = c.Name
	}
	count := 0
	for _, img := range r.portfolioImages {
		if img.AlbumID == a.ID && img.Active {
			count++
		}
	}
	aCopy.ImageCount = count
	return &aCopy
}

func (r *Repository) GetAlbum(ctx context.Context, id uuid.UUID) (*studiocms.PortfolioAlbum, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, exists := r.albums[id]
	if !exists {
		return nil, studiocms.ErrNotFound
	}
	return r.denormAlbum(a), nil
}

func (r *Repository) UpdateAlbum(ctx context.Context, a *studiocms.PortfolioAlbum) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.albums[a.ID]; !exists {
		return studiocms.ErrNotFound
	}
	aCopy := *a
	r.albums[a.ID] = &aCopy
	return nil
}

func (r *Repository) DeleteAlbum(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.albums[id]; !exists {
		return studiocms.ErrNotFound
	}
	delete(r.albums, id)
	return nil
}

func (r *Repository) ListAlbums(ctx context.Context, activeOnly bool) ([]*studiocms.PortfolioAlbum, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*studiocms.PortfolioAlbum
	for _, a := range r.albums {
		if activeOnly && !a.Active {
			continue
		}
		result = append(result, r.denormAlbum(a))
	}
	sortNewestFirst(result, func(a *studiocms.PortfolioAlbum) sortKey {
		return sortKey{a.CreatedAt.UnixNano(), a.ID.String()}
	})
	return result, nil
}

func (r *Repository) SearchAlbums(ctx context.Context, term string, limit int) ([]*studiocms.PortfolioAlbum, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*studiocms.PortfolioAlbum
	for _, a := range r.albums {
		if !a.Active || !matches(term, a.Title, a.Description, a.Location) {
			continue
		}
		result = append(result, r.denormAlbum(a))
	}
	sortNewestFirst(result, func(a *studiocms.PortfolioAlbum) sortKey {
		return sortKey{a.CreatedAt.UnixNano(), a.ID.String()}
	})
	return capped(result, limit), nil
}

// Portfolio categories

func (r *Repository) CreatePortfolioCategory(ctx context.Context, c *studiocms.PortfolioCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.portfolioCategories {
		if existing.Slug == c.Slug {
			return studiocms.ErrDuplicateSlug
		}
	}
	cCopy := *c
	r.portfolioCategories[c.ID] = &cCopy
	return nil
}

func (r *Repository) ListPortfolioCategories(ctx context.Context, activeOnly bool) ([]*studiocms.PortfolioCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*studiocms.PortfolioCategory
	for _, c := range r.portfolioCategories {
		if activeOnly && !c.Active {
			continue
		}
		cCopy := *c
		result = append(result, &cCopy)
	}
	sortNewestFirst(result, func(c *studiocms.PortfolioCategory) sortKey {
		return sortKey{c.CreatedAt.UnixNano(), c.ID.String()}
	})
	return result, nil
}

func (r *Repository) SearchPortfolioCategories(ctx context.Context, term string, limit int) ([]*studiocms.PortfolioCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*studiocms.PortfolioCategory
	for _, c := range r.portfolioCategories {
		if !c.Active || !matches(term, c.Name, c.Description) {
			continue
		}
		cCopy := *c
		result = append(result, &cCopy)
	}
	sortNewestFirst(result, func(c *studiocms.PortfolioCategory) sortKey {
		return sortKey{c.CreatedAt.UnixNano(), c.ID.String()}
	})
	return capped(result, limit), nil
}

// Portfolio images

func (r *Repository) CreatePortfolioImage(ctx context.Context, img *studiocms.PortfolioImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.albums[img.AlbumID]; !exists {
		return fmt.Errorf("parent album %s: %w", img.AlbumID, studiocms.ErrNotFound)
	}
	imgCopy := *img
	r.portfolioImages[img.ID] = &imgCopy
	return nil
}

func (r *Repository) ListAlbumImages(ctx context.Context, albumID uuid.UUID, activeOnly bool) ([]*studiocms.PortfolioImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*studiocms.PortfolioImage
	for _, img := range r.portfolioImages {
		if albumID != uuid.Nil && img.AlbumID != albumID {
			continue
		}
		if activeOnly && !img.Active {
			continue
		}
		imgCopy := *img
		result = append(result, &imgCopy)
	}
	sortNewestFirst(result, func(img *studiocms.PortfolioImage) sortKey {
		return sortKey{img.CreatedAt.UnixNano(), img.ID.String()}
	})
	return result, nil
}

func (r *Repository) SearchPortfolioImages(ctx context.Context, term string, limit int) ([]*studiocms.PortfolioImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*studiocms.PortfolioImage
	for _, img := range r.portfolioImages {
		if !img.Active || !matches(term, img.Title, img.Caption) {
			continue
		}
		imgCopy := *img
		result = append(result, &imgCopy)
	}
	sortNewestFirst(result, func(img *studiocms.PortfolioImage) sortKey {
		return sortKey{img.CreatedAt.UnixNano(), img.ID.String()}
	})
	return capped(result, limit), nil
}

// Service offerings

func (r *Repository) CreateOffering(ctx context.Context, o *studiocms.ServiceOffering) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	oCopy := *o
	r.offerings[o.ID] = &oCopy
	return nil
}

func (r *Repository) ListOfferings(ctx context.Context, activeOnly bool) ([]*studiocms.ServiceOffering, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*studiocms.ServiceOffering
	for _, o := range r.offerings {
		if activeOnly && !o.Active {
			continue
		}
		oCopy := *o
		result = append(result, &oCopy)
	}
	sortNewestFirst(result, func(o *studiocms.ServiceOffering) sortKey {
		return sortKey{o.CreatedAt.UnixNano(), o.ID.String()}
	})
	return result, nil
}

func (r *Repository) SearchOfferings(ctx context.Context, term string, limit int) ([]*studiocms.ServiceOffering, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*studiocms.ServiceOffering
	for _, o := range r.offerings {
		if !o.Active || !matches(term, o.Name, o.Tagline, o.Description) {
			continue
		}
		oCopy := *o
		result = append(result, &oCopy)
	}
	sortNewestFirst(result, func(o *studiocms.ServiceOffering) sortKey {
		return sortKey{o.CreatedAt.UnixNano(), o.ID.String()}
	})
	return capped(result, limit), nil
}

// Blog posts

func (r *Repository) CreateBlogPost(ctx context.Context, p *studiocms.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.blogPosts {
		if existing.Slug == p.Slug {
			return studiocms.ErrDuplicateSlug
		}
	}
	pCopy := *p
	r.blogPosts[p.ID] = &pCopy
	return nil
}

func (r *Repository) GetBlogPostBySlug(ctx context.Context, slug string) (*studiocms.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.blogPosts {
		if p.Slug == slug {
			pCopy := *p
			return &pCopy, nil
		}
	}
	return nil, studiocms.ErrNotFound
}

func (r *Repository) ListBlogPosts(ctx context.Context, publishedOnly bool) ([]*studiocms.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*studiocms.BlogPost
	for _, p := range r.blogPosts {
		if publishedOnly && !p.Published {
			continue
		}
		pCopy := *p
		result = append(result, &pCopy)
	}
	sortNewestFirst(result, func(p *studiocms.BlogPost) sortKey {
		return sortKey{p.CreatedAt.UnixNano(), p.ID.String()}
	})
	return result, nil
}

// Testimonials

func (r *Repository) CreateTestimonial(ctx context.Context, t *studiocms.Testimonial) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tCopy := *t
	r.testimonials[t.ID] = &tCopy
	return nil
}

func (r *Repository) ListTestimonials(ctx context.Context, activeOnly bool) ([]*studiocms.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*studiocms.Testimonial
	for _, t := range r.testimonials {
		if activeOnly && !t.Active {
			continue
		}
		tCopy := *t
		result = append(result, &tCopy)
	}
	sortNewestFirst(result, func(t *studiocms.Testimonial) sortKey {
		return sortKey{t.CreatedAt.UnixNano(), t.ID.String()}
	})
	return result, nil
}

// FAQs

func (r *Repository) CreateFAQ(ctx context.Context, f *studiocms.FAQ) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fCopy := *f
	r.faqs[f.ID] = &fCopy
	return nil
}

func (r *Repository) ListFAQs(ctx context.Context, activeOnly bool) ([]*studiocms.FAQ, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*studiocms.FAQ
	for _, f := range r.faqs {
		if activeOnly && !f.Active {
			continue
		}
		fCopy := *f
		result = append(result, &fCopy)
	}
	// FAQs keep their editorial ordering, not recency.
	sort.Slice(result, func(i, j int) bool {
		if result[i].Position != result[j].Position {
			return result[i].Position < result[j].Position
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	return result, nil
}

// Hero sections

func (r *Repository) UpsertHeroSection(ctx context.Context, h *studiocms.HeroSection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	hCopy := *h
	r.heroes[h.Page] = &hCopy
	return nil
}

func (r *Repository) GetHeroSection(ctx context.Context, page string) (*studiocms.HeroSection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, exists := r.heroes[page]
	if !exists {
		return nil, studiocms.ErrNotFound
	}
	hCopy := *h
	return &hCopy, nil
}

// CountMatching returns the live number of active records of the given
// kind matching term, for search suggestions.
func (r *Repository) CountMatching(ctx context.Context, kind studiocms.Kind, term string) (int, error) {
	switch kind {
	case studiocms.KindVendor:
		rows, err := r.SearchVendors(ctx, term, 0)
		return len(rows), err
	case studiocms.KindVendorCategory:
		rows, err := r.SearchVendorCategories(ctx, term, 0)
		return len(rows), err
	case studiocms.KindVendorSubcategory:
		rows, err := r.SearchVendorSubcategories(ctx, term, 0)
		return len(rows), err
	case studiocms.KindPortfolio:
		rows, err := r.SearchAlbums(ctx, term, 0)
		return len(rows), err
	case studiocms.KindPortfolioCategory:
		rows, err := r.SearchPortfolioCategories(ctx, term, 0)
		return len(rows), err
	case studiocms.KindPortfolioImage:
		rows, err := r.SearchPortfolioImages(ctx, term, 0)
		return len(rows), err
	case studiocms.KindVendorImage:
		rows, err := r.SearchVendorImages(ctx, term, 0)
		return len(rows), err
	case studiocms.KindVendorService:
		rows, err := r.SearchVendorServices(ctx, term, 0)
		return len(rows), err
	case studiocms.KindServiceOffering:
		rows, err := r.SearchOfferings(ctx, term, 0)
		return len(rows), err
	}
	return 0, fmt.Errorf("kind %q is not searchable", kind)
}

// Media assets

func ownerKey(kind studiocms.Kind, ownerID uuid.UUID, field string) string {
	return fmt.Sprintf("%s|%s|%s", kind, ownerID, field)
}

func (r *Repository) CreateAsset(ctx context.Context, a *studiocms.MediaAsset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	aCopy := *a
	r.assets[a.ID] = &aCopy
	r.assetsByOwner[ownerKey(a.OwnerKind, a.OwnerID, a.Field)] = a.ID
	return nil
}

func (r *Repository) GetAsset(ctx context.Context, id uuid.UUID) (*studiocms.MediaAsset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, exists := r.assets[id]
	if !exists {
		return nil, studiocms.ErrAssetNotFound
	}
	aCopy := *a
	return &aCopy, nil
}

func (r *Repository) GetAssetByOwnerField(ctx context.Context, kind studiocms.Kind, ownerID uuid.UUID, field string) (*studiocms.MediaAsset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.assetsByOwner[ownerKey(kind, ownerID, field)]
	if !exists {
		return nil, studiocms.ErrAssetNotFound
	}
	a, exists := r.assets[id]
	if !exists {
		return nil, studiocms.ErrAssetNotFound
	}
	aCopy := *a
	return &aCopy, nil
}

func (r *Repository) UpdateAsset(ctx context.Context, a *studiocms.MediaAsset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.assets[a.ID]; !exists {
		return studiocms.ErrAssetNotFound
	}
	aCopy := *a
	r.assets[a.ID] = &aCopy
	r.assetsByOwner[ownerKey(a.OwnerKind, a.OwnerID, a.Field)] = a.ID
	return nil
}

func (r *Repository) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, exists := r.assets[id]
	if !exists {
		return studiocms.ErrAssetNotFound
	}
	delete(r.assetsByOwner, ownerKey(a.OwnerKind, a.OwnerID, a.Field))
	delete(r.assets, id)
	return nil
}

// sortKey orders newest first with the ID string as a deterministic
// tie-break, so repeated queries over the same data return identical
// ordering.
type sortKey struct {
	createdNano int64
	id          string
}

func sortNewestFirst[T any](items []T, key func(T) sortKey) {
	sort.Slice(items, func(i, j int) bool {
		ki, kj := key(items[i]), key(items[j])
		if ki.createdNano != kj.createdNano {
			return ki.createdNano > kj.createdNano
		}
		return ki.id < kj.id
	})
}

func capped[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

// SetImageField writes objectKey onto the named image field of the
// owning record. Unknown kind/field combinations are an error so a
// miswired hook fails loudly instead of dropping the write.
func (r *Repository) SetImageField(ctx context.Context, kind studiocms.Kind, ownerID uuid.UUID, field, objectKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	touch := time.Now().UTC()

	switch kind {
	case studiocms.KindVendor:
		if v, ok := r.vendors[ownerID]; ok && field == "profile_image" {
			v.ProfileImage = objectKey
			v.UpdatedAt = touch
			return nil
		}
	case studiocms.KindVendorCategory:
		if c, ok := r.vendorCategories[ownerID]; ok && field == "image" {
			c.Image = objectKey
			c.UpdatedAt = touch
			return nil
		}
	case studiocms.KindVendorImage:
		if img, ok := r.vendorImages[ownerID]; ok && field == "image" {
			img.Image = objectKey
			img.UpdatedAt = touch
			return nil
		}
	case studiocms.KindPortfolio:
		if a, ok := r.albums[ownerID]; ok && field == "cover_image" {
			a.CoverImage = objectKey
			a.UpdatedAt = touch
			return nil
		}
	case studiocms.KindPortfolioImage:
		if img, ok := r.portfolioImages[ownerID]; ok && field == "image" {
			img.Image = objectKey
			img.UpdatedAt = touch
			return nil
		}
	case studiocms.KindServiceOffering:
		if o, ok := r.offerings[ownerID]; ok && field == "image" {
			o.Image = objectKey
			o.UpdatedAt = touch
			return nil
		}
	case studiocms.KindBlogPost:
		if p, ok := r.blogPosts[ownerID]; ok {
			switch field {
			case "cover_image":
				p.CoverImage = objectKey
				p.UpdatedAt = touch
				return nil
			case "og_image":
				p.OGImage = objectKey
				p.UpdatedAt = touch
				return nil
			}
		}
	case studiocms.KindTestimonial:
		if t, ok := r.testimonials[ownerID]; ok && field == "avatar" {
			t.Avatar = objectKey
			t.UpdatedAt = touch
			return nil
		}
	case studiocms.KindHeroSection:
		for _, h := range r.heroes {
			if h.ID == ownerID && field == "background_image" {
				h.BackgroundImage = objectKey
				h.UpdatedAt = touch
				return nil
			}
		}
	}

	return fmt.Errorf("no image field %q on %s %s: %w", field, kind, ownerID, studiocms.ErrNotFound)
}
