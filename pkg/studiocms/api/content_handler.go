package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/framelight/studio-cms/pkg/studiocms"
	"github.com/framelight/studio-cms/pkg/studiocms/urlstrategy"
)

// ContentHandler serves public site content. Every response carries
// absolute image URLs (or null) resolved per request.
type ContentHandler struct {
	service    studiocms.Service
	cdnBaseURL string
}

// NewContentHandler creates a new content handler
func NewContentHandler(service studiocms.Service, cdnBaseURL string) *ContentHandler {
	return &ContentHandler{service: service, cdnBaseURL: cdnBaseURL}
}

// Routes returns the public content routes
func (h *ContentHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/vendors", h.ListVendors)
	r.Get("/vendors/{id}", h.GetVendor)
	r.Get("/vendors/{id}/images", h.ListVendorImages)
	r.Get("/vendors/{id}/services", h.ListVendorServices)
	r.Get("/vendor-categories", h.ListVendorCategories)
	r.Get("/vendor-categories/{id}/subcategories", h.ListVendorSubcategories)

	r.Get("/portfolio", h.ListAlbums)
	r.Get("/portfolio/{id}", h.GetAlbum)
	r.Get("/portfolio/{id}/images", h.ListAlbumImages)
	r.Get("/portfolio-categories", h.ListPortfolioCategories)

	r.Get("/services", h.ListOfferings)

	r.Get("/blog", h.ListBlogPosts)
	r.Get("/blog/{slug}", h.GetBlogPost)
	r.Get("/testimonials", h.ListTestimonials)
	r.Get("/faqs", h.ListFAQs)
	r.Get("/hero/{page}", h.GetHeroSection)

	return r
}

// VendorResponse is a vendor profile with its resolved image URL
type VendorResponse struct {
	*studiocms.VendorProfile
	ImageURL *string `json:"image_url"`
}

func newVendorResponse(v *studiocms.VendorProfile, urls urlstrategy.Resolver) VendorResponse {
	return VendorResponse{VendorProfile: v, ImageURL: urls.AssetURL(v.ProfileImage)}
}

type VendorCategoryResponse struct {
	*studiocms.VendorCategory
	ImageURL *string `json:"image_url"`
}

type VendorImageResponse struct {
	*studiocms.VendorImage
	ImageURL *string `json:"image_url"`
}

type AlbumResponse struct {
	*studiocms.PortfolioAlbum
	ImageURL *string `json:"image_url"`
}

type PortfolioImageResponse struct {
	*studiocms.PortfolioImage
	ImageURL *string `json:"image_url"`
}

type OfferingResponse struct {
	*studiocms.ServiceOffering
	ImageURL *string `json:"image_url"`
}

type BlogPostResponse struct {
	*studiocms.BlogPost
	ImageURL *string `json:"image_url"`
}

type TestimonialResponse struct {
	*studiocms.Testimonial
	ImageURL *string `json:"image_url"`
}

type HeroSectionResponse struct {
	*studiocms.HeroSection
	ImageURL *string `json:"image_url"`
}

// ListVendors lists vendor profiles. ?all=true includes inactive ones.
func (h *ContentHandler) ListVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.service.ListVendors(r.Context(), !includeAll(r))
	if err != nil {
		slog.Error("Failed to list vendors", "error", err)
		writeError(w, err)
		return
	}

	urls := resolverFor(h.cdnBaseURL, r)
	resp := make([]VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		resp = append(resp, newVendorResponse(v, urls))
	}
	render.JSON(w, r, resp)
}

// GetVendor retrieves one vendor profile by ID
func (h *ContentHandler) GetVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	vendor, err := h.service.GetVendor(r.Context(), id)
	if err != nil {
		slog.Error("Failed to get vendor", "vendor_id", id, "error", err)
		writeError(w, err)
		return
	}

	render.JSON(w, r, newVendorResponse(vendor, resolverFor(h.cdnBaseURL, r)))
}

// ListVendorImages lists a vendor's gallery images
func (h *ContentHandler) ListVendorImages(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	images, err := h.service.ListVendorImages(r.Context(), id, !includeAll(r))
	if err != nil {
		slog.Error("Failed to list vendor images", "vendor_id", id, "error", err)
		writeError(w, err)
		return
	}

	urls := resolverFor(h.cdnBaseURL, r)
	resp := make([]VendorImageResponse, 0, len(images))
	for _, img := range images {
		resp = append(resp, VendorImageResponse{VendorImage: img, ImageURL: urls.AssetURL(img.Image)})
	}
	render.JSON(w, r, resp)
}

// ListVendorServices lists a vendor's priced services
func (h *ContentHandler) ListVendorServices(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	services, err := h.service.ListVendorServices(r.Context(), id, !includeAll(r))
	if err != nil {
		slog.Error("Failed to list vendor services", "vendor_id", id, "error", err)
		writeError(w, err)
		return
	}
	render.JSON(w, r, services)
}

// ListVendorCategories lists vendor categories
func (h *ContentHandler) ListVendorCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListVendorCategories(r.Context(), !includeAll(r))
	if err != nil {
		slog.Error("Failed to list vendor categories", "error", err)
		writeError(w, err)
		return
	}

	urls := resolverFor(h.cdnBaseURL, r)
	resp := make([]VendorCategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, VendorCategoryResponse{VendorCategory: c, ImageURL: urls.AssetURL(c.Image)})
	}
	render.JSON(w, r, resp)
}

// ListVendorSubcategories lists the subcategories of one category
func (h *ContentHandler) ListVendorSubcategories(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	subcategories, err := h.service.ListVendorSubcategories(r.Context(), id, !includeAll(r))
	if err != nil {
		slog.Error("Failed to list vendor subcategories", "category_id", id, "error", err)
		writeError(w, err)
		return
	}
	render.JSON(w, r, subcategories)
}

// ListAlbums lists portfolio albums
func (h *ContentHandler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	albums, err := h.service.ListAlbums(r.Context(), !includeAll(r))
	if err != nil {
		slog.Error("Failed to list albums", "error", err)
		writeError(w, err)
		return
	}

	urls := resolverFor(h.cdnBaseURL, r)
	resp := make([]AlbumResponse, 0, len(albums))
	for _, a := range albums {
		resp = append(resp, AlbumResponse{PortfolioAlbum: a, ImageURL: urls.AssetURL(a.CoverImage)})
	}
	render.JSON(w, r, resp)
}

// GetAlbum retrieves one portfolio album by ID
func (h *ContentHandler) GetAlbum(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	album, err := h.service.GetAlbum(r.Context(), id)
	if err != nil {
		slog.Error("Failed to get album", "album_id", id, "error", err)
		writeError(w, err)
		return
	}

	urls := resolverFor(h.cdnBaseURL, r)
	render.JSON(w, r, AlbumResponse{PortfolioAlbum: album, ImageURL: urls.AssetURL(album.CoverImage)})
}

// ListAlbumImages lists the images in one album
func (h *ContentHandler) ListAlbumImages(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	images, err := h.service.ListAlbumImages(r.Context(), id, !includeAll(r))
	if err != nil {
		slog.Error("Failed to list album images", "album_id", id, "error", err)
		writeError(w, err)
		return
	}

	urls := resolverFor(h.cdnBaseURL, r)
	resp := make([]PortfolioImageResponse, 0, len(images))
	for _, img := range images {
		resp = append(resp, PortfolioImageResponse{PortfolioImage: img, ImageURL: urls.AssetURL(img.Image)})
	}
	render.JSON(w, r, resp)
}

// ListPortfolioCategories lists portfolio categories
func (h *ContentHandler) ListPortfolioCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListPortfolioCategories(r.Context(), !includeAll(r))
	if err != nil {
		slog.Error("Failed to list portfolio categories", "error", err)
		writeError(w, err)
		return
	}
	render.JSON(w, r, categories)
}

// ListOfferings lists the studio's photography service packages
func (h *ContentHandler) ListOfferings(w http.ResponseWriter, r *http.Request) {
	offerings, err := h.service.ListOfferings(r.Context(), !includeAll(r))
	if err != nil {
		slog.Error("Failed to list offerings", "error", err)
		writeError(w, err)
		return
	}

	urls := resolverFor(h.cdnBaseURL, r)
	resp := make([]OfferingResponse, 0, len(offerings))
	for _, o := range offerings {
		resp = append(resp, OfferingResponse{ServiceOffering: o, ImageURL: urls.AssetURL(o.Image)})
	}
	render.JSON(w, r, resp)
}

// ListBlogPosts lists published blog posts. ?all=true includes drafts.
func (h *ContentHandler) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.ListBlogPosts(r.Context(), !includeAll(r))
	if err != nil {
		slog.Error("Failed to list blog posts", "error", err)
		writeError(w, err)
		return
	}

	urls := resolverFor(h.cdnBaseURL, r)
	resp := make([]BlogPostResponse, 0, len(posts))
	for _, p := range posts {
		resp = append(resp, BlogPostResponse{BlogPost: p, ImageURL: urls.AssetURL(p.CoverImage)})
	}
	render.JSON(w, r, resp)
}

// GetBlogPost retrieves one blog post by slug
func (h *ContentHandler) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.service.GetBlogPostBySlug(r.Context(), slug)
	if err != nil {
		slog.Error("Failed to get blog post", "slug", slug, "error", err)
		writeError(w, err)
		return
	}

	urls := resolverFor(h.cdnBaseURL, r)
	render.JSON(w, r, BlogPostResponse{BlogPost: post, ImageURL: urls.AssetURL(post.CoverImage)})
}

// ListTestimonials lists testimonials
func (h *ContentHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.service.ListTestimonials(r.Context(), !includeAll(r))
	if err != nil {
		slog.Error("Failed to list testimonials", "error", err)
		writeError(w, err)
		return
	}

	urls := resolverFor(h.cdnBaseURL, r)
	resp := make([]TestimonialResponse, 0, len(testimonials))
	for _, t := range testimonials {
		resp = append(resp, TestimonialResponse{Testimonial: t, ImageURL: urls.AssetURL(t.Avatar)})
	}
	render.JSON(w, r, resp)
}

// ListFAQs lists FAQs in display order
func (h *ContentHandler) ListFAQs(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.service.ListFAQs(r.Context(), !includeAll(r))
	if err != nil {
		slog.Error("Failed to list faqs", "error", err)
		writeError(w, err)
		return
	}
	render.JSON(w, r, faqs)
}

// GetHeroSection retrieves the hero block for one page
func (h *ContentHandler) GetHeroSection(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")

	hero, err := h.service.GetHeroSection(r.Context(), page)
	if err != nil {
		slog.Error("Failed to get hero section", "page", page, "error", err)
		writeError(w, err)
		return
	}

	urls := resolverFor(h.cdnBaseURL, r)
	render.JSON(w, r, HeroSectionResponse{HeroSection: hero, ImageURL: urls.AssetURL(hero.BackgroundImage)})
}

func includeAll(r *http.Request) bool {
	return r.URL.Query().Get("all") == "true"
}

func parseID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, param)
	id, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}
