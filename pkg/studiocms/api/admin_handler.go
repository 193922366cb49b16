package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/framelight/studio-cms/pkg/studiocms"
)

// maxUploadBytes caps multipart uploads at 32 MiB, plenty for studio
// photography exports.
const maxUploadBytes = 32 << 20

// AdminHandler covers content creation and media management. It is
// expected to sit behind whatever authentication the deployment uses.
type AdminHandler struct {
	service studiocms.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service studiocms.Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// Routes returns the admin routes
func (h *AdminHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/vendors", h.CreateVendor)
	r.Put("/vendors/{id}", h.UpdateVendor)
	r.Delete("/vendors/{id}", h.DeleteVendor)
	r.Post("/vendor-categories", h.CreateVendorCategory)
	r.Post("/vendor-subcategories", h.CreateVendorSubcategory)
	r.Post("/vendor-images", h.CreateVendorImage)
	r.Post("/vendor-services", h.CreateVendorService)

	r.Post("/albums", h.CreateAlbum)
	r.Put("/albums/{id}", h.UpdateAlbum)
	r.Delete("/albums/{id}", h.DeleteAlbum)
	r.Post("/portfolio-categories", h.CreatePortfolioCategory)
	r.Post("/portfolio-images", h.CreatePortfolioImage)

	r.Post("/services", h.CreateOffering)
	r.Post("/blog", h.CreateBlogPost)
	r.Post("/testimonials", h.CreateTestimonial)
	r.Post("/faqs", h.CreateFAQ)
	r.Put("/hero", h.UpsertHeroSection)

	r.Post("/assets", h.UploadAsset)
	r.Get("/assets/{id}", h.GetAsset)
	r.Get("/assets/{id}/download", h.DownloadAsset)
	r.Delete("/assets/{id}", h.DeleteAsset)

	return r
}

// CreateVendorRequest is the request body for creating a vendor profile
type CreateVendorRequest struct {
	Name          string  `json:"name"`
	Tagline       string  `json:"tagline"`
	Description   string  `json:"description"`
	Story         string  `json:"story"`
	Location      string  `json:"location"`
	VendorType    string  `json:"vendor_type"`
	CategoryID    string  `json:"category_id"`
	SubcategoryID string  `json:"subcategory_id"`
	Rating        float64 `json:"rating"`
	PriceRange    string  `json:"price_range"`
	Active        bool    `json:"active"`
}

// CreateVendor creates a new vendor profile
func (h *AdminHandler) CreateVendor(w http.ResponseWriter, r *http.Request) {
	var req CreateVendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	categoryID, ok := parseOptionalID(w, req.CategoryID, "category_id")
	if !ok {
		return
	}
	subcategoryID, ok := parseOptionalID(w, req.SubcategoryID, "subcategory_id")
	if !ok {
		return
	}

	vendor, err := h.service.CreateVendor(r.Context(), studiocms.CreateVendorRequest{
		Name:          req.Name,
		Tagline:       req.Tagline,
		Description:   req.Description,
		Story:         req.Story,
		Location:      req.Location,
		VendorType:    req.VendorType,
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		Rating:        req.Rating,
		PriceRange:    req.PriceRange,
		Active:        req.Active,
	})
	if err != nil {
		slog.Error("Failed to create vendor", "error", err)
		writeError(w, err)
		return
	}

	slog.Info("Vendor created", "vendor_id", vendor.ID)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, vendor)
}

// UpdateVendor replaces a vendor profile's editable fields
func (h *AdminHandler) UpdateVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	vendor, err := h.service.GetVendor(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	var req CreateVendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	categoryID, ok := parseOptionalID(w, req.CategoryID, "category_id")
	if !ok {
		return
	}
	subcategoryID, ok := parseOptionalID(w, req.SubcategoryID, "subcategory_id")
	if !ok {
		return
	}

	vendor.Name = req.Name
	vendor.Tagline = req.Tagline
	vendor.Description = req.Description
	vendor.Story = req.Story
	vendor.Location = req.Location
	vendor.VendorType = req.VendorType
	vendor.CategoryID = categoryID
	vendor.SubcategoryID = subcategoryID
	vendor.Rating = req.Rating
	vendor.PriceRange = req.PriceRange
	vendor.Active = req.Active

	if err := h.service.UpdateVendor(r.Context(), vendor); err != nil {
		slog.Error("Failed to update vendor", "vendor_id", id, "error", err)
		writeError(w, err)
		return
	}
	render.JSON(w, r, vendor)
}

// DeleteVendor removes a vendor profile
func (h *AdminHandler) DeleteVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteVendor(r.Context(), id); err != nil {
		slog.Error("Failed to delete vendor", "vendor_id", id, "error", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateVendorCategoryRequest is the request body for a vendor category
type CreateVendorCategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// CreateVendorCategory creates a vendor category
func (h *AdminHandler) CreateVendorCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateVendorCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Slug == "" {
		http.Error(w, "name and slug are required", http.StatusBadRequest)
		return
	}

	category, err := h.service.CreateVendorCategory(r.Context(), studiocms.CreateVendorCategoryRequest{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Active:      req.Active,
	})
	if err != nil {
		slog.Error("Failed to create vendor category", "error", err)
		writeError(w, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, category)
}

// CreateVendorSubcategoryRequest is the request body for a vendor subcategory
type CreateVendorSubcategoryRequest struct {
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// CreateVendorSubcategory creates a vendor subcategory
func (h *AdminHandler) CreateVendorSubcategory(w http.ResponseWriter, r *http.Request) {
	var req CreateVendorSubcategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		http.Error(w, "Invalid category_id", http.StatusBadRequest)
		return
	}

	subcategory, err := h.service.CreateVendorSubcategory(r.Context(), studiocms.CreateVendorSubcategoryRequest{
		CategoryID:  categoryID,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Active:      req.Active,
	})
	if err != nil {
		slog.Error("Failed to create vendor subcategory", "error", err)
		writeError(w, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, subcategory)
}

// CreateVendorImageRequest is the request body for a vendor gallery image
type CreateVendorImageRequest struct {
	VendorID string `json:"vendor_id"`
	Title    string `json:"title"`
	Caption  string `json:"caption"`
	Active   bool   `json:"active"`
}

// CreateVendorImage creates a vendor gallery image record; the image
// bytes are uploaded separately through the assets endpoint.
func (h *AdminHandler) CreateVendorImage(w http.ResponseWriter, r *http.Request) {
	var req CreateVendorImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		http.Error(w, "Invalid vendor_id", http.StatusBadRequest)
		return
	}

	image, err := h.service.CreateVendorImage(r.Context(), studiocms.CreateVendorImageRequest{
		VendorID: vendorID,
		Title:    req.Title,
		Caption:  req.Caption,
		Active:   req.Active,
	})
	if err != nil {
		slog.Error("Failed to create vendor image", "error", err)
		writeError(w, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, image)
}

// CreateVendorServiceRequest is the request body for a vendor service
type CreateVendorServiceRequest struct {
	VendorID    string `json:"vendor_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Active      bool   `json:"active"`
}

// CreateVendorService creates a vendor service
func (h *AdminHandler) CreateVendorService(w http.ResponseWriter, r *http.Request) {
	var req CreateVendorServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		http.Error(w, "Invalid vendor_id", http.StatusBadRequest)
		return
	}

	service, err := h.service.CreateVendorService(r.Context(), studiocms.CreateVendorServiceRequest{
		VendorID:    vendorID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Active:      req.Active,
	})
	if err != nil {
		slog.Error("Failed to create vendor service", "error", err)
		writeError(w, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, service)
}

// CreateAlbumRequest is the request body for a portfolio album
type CreateAlbumRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CategoryID  string     `json:"category_id"`
	EventDate   *time.Time `json:"event_date"`
	Location    string     `json:"location"`
	Active      bool       `json:"active"`
}

// CreateAlbum creates a portfolio album
func (h *AdminHandler) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	var req CreateAlbumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	categoryID, ok := parseOptionalID(w, req.CategoryID, "category_id")
	if !ok {
		return
	}

	album, err := h.service.CreateAlbum(r.Context(), studiocms.CreateAlbumRequest{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  categoryID,
		EventDate:   req.EventDate,
		Location:    req.Location,
		Active:      req.Active,
	})
	if err != nil {
		slog.Error("Failed to create album", "error", err)
		writeError(w, err)
		return
	}

	slog.Info("Album created", "album_id", album.ID)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, album)
}

// UpdateAlbum replaces an album's editable fields
func (h *AdminHandler) UpdateAlbum(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	album, err := h.service.GetAlbum(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	var req CreateAlbumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	categoryID, ok := parseOptionalID(w, req.CategoryID, "category_id")
	if !ok {
		return
	}

	album.Title = req.Title
	album.Description = req.Description
	album.CategoryID = categoryID
	album.EventDate = req.EventDate
	album.Location = req.Location
	album.Active = req.Active

	if err := h.service.UpdateAlbum(r.Context(), album); err != nil {
		slog.Error("Failed to update album", "album_id", id, "error", err)
		writeError(w, err)
		return
	}
	render.JSON(w, r, album)
}

// DeleteAlbum removes a portfolio album
func (h *AdminHandler) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteAlbum(r.Context(), id); err != nil {
		slog.Error("Failed to delete album", "album_id", id, "error", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreatePortfolioCategoryRequest is the request body for a portfolio category
type CreatePortfolioCategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// CreatePortfolioCategory creates a portfolio category
func (h *AdminHandler) CreatePortfolioCategory(w http.ResponseWriter, r *http.Request) {
	var req CreatePortfolioCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	category, err := h.service.CreatePortfolioCategory(r.Context(), studiocms.CreatePortfolioCategoryRequest{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Active:      req.Active,
	})
	if err != nil {
		slog.Error("Failed to create portfolio category", "error", err)
		writeError(w, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, category)
}

// CreatePortfolioImageRequest is the request body for a portfolio image
type CreatePortfolioImageRequest struct {
	AlbumID string `json:"album_id"`
	Title   string `json:"title"`
	Caption string `json:"caption"`
	Active  bool   `json:"active"`
}

// CreatePortfolioImage creates a portfolio image record
func (h *AdminHandler) CreatePortfolioImage(w http.ResponseWriter, r *http.Request) {
	var req CreatePortfolioImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	albumID, err := uuid.Parse(req.AlbumID)
	if err != nil {
		http.Error(w, "Invalid album_id", http.StatusBadRequest)
		return
	}

	image, err := h.service.CreatePortfolioImage(r.Context(), studiocms.CreatePortfolioImageRequest{
		AlbumID: albumID,
		Title:   req.Title,
		Caption: req.Caption,
		Active:  req.Active,
	})
	if err != nil {
		slog.Error("Failed to create portfolio image", "error", err)
		writeError(w, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, image)
}

// CreateOfferingRequest is the request body for a photography service offering
type CreateOfferingRequest struct {
	Name          string `json:"name"`
	Tagline       string `json:"tagline"`
	Description   string `json:"description"`
	StartingPrice string `json:"starting_price"`
	Active        bool   `json:"active"`
}

// CreateOffering creates a photography service offering
func (h *AdminHandler) CreateOffering(w http.ResponseWriter, r *http.Request) {
	var req CreateOfferingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	offering, err := h.service.CreateOffering(r.Context(), studiocms.CreateOfferingRequest{
		Name:          req.Name,
		Tagline:       req.Tagline,
		Description:   req.Description,
		StartingPrice: req.StartingPrice,
		Active:        req.Active,
	})
	if err != nil {
		slog.Error("Failed to create offering", "error", err)
		writeError(w, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, offering)
}

// CreateBlogPostRequest is the request body for a blog post
type CreateBlogPostRequest struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Excerpt   string `json:"excerpt"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
}

// CreateBlogPost creates a blog post
func (h *AdminHandler) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	var req CreateBlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Title == "" || req.Slug == "" {
		http.Error(w, "title and slug are required", http.StatusBadRequest)
		return
	}

	post, err := h.service.CreateBlogPost(r.Context(), studiocms.CreateBlogPostRequest{
		Title:     req.Title,
		Slug:      req.Slug,
		Excerpt:   req.Excerpt,
		Body:      req.Body,
		Published: req.Published,
	})
	if err != nil {
		slog.Error("Failed to create blog post", "error", err)
		writeError(w, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, post)
}

// CreateTestimonialRequest is the request body for a testimonial
type CreateTestimonialRequest struct {
	Author string `json:"author"`
	Role   string `json:"role"`
	Quote  string `json:"quote"`
	Active bool   `json:"active"`
}

// CreateTestimonial creates a testimonial
func (h *AdminHandler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req CreateTestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	testimonial, err := h.service.CreateTestimonial(r.Context(), studiocms.CreateTestimonialRequest{
		Author: req.Author,
		Role:   req.Role,
		Quote:  req.Quote,
		Active: req.Active,
	})
	if err != nil {
		slog.Error("Failed to create testimonial", "error", err)
		writeError(w, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, testimonial)
}

// CreateFAQRequest is the request body for a FAQ entry
type CreateFAQRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Position int    `json:"position"`
	Active   bool   `json:"active"`
}

// CreateFAQ creates a FAQ entry
func (h *AdminHandler) CreateFAQ(w http.ResponseWriter, r *http.Request) {
	var req CreateFAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	faq, err := h.service.CreateFAQ(r.Context(), studiocms.CreateFAQRequest{
		Question: req.Question,
		Answer:   req.Answer,
		Position: req.Position,
		Active:   req.Active,
	})
	if err != nil {
		slog.Error("Failed to create faq", "error", err)
		writeError(w, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, faq)
}

// UpsertHeroSectionRequest is the request body for a page hero block
type UpsertHeroSectionRequest struct {
	Page       string `json:"page"`
	Heading    string `json:"heading"`
	Subheading string `json:"subheading"`
	CTALabel   string `json:"cta_label"`
	CTAURL     string `json:"cta_url"`
	Active     bool   `json:"active"`
}

// UpsertHeroSection creates or replaces the hero block for a page
func (h *AdminHandler) UpsertHeroSection(w http.ResponseWriter, r *http.Request) {
	var req UpsertHeroSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Page == "" {
		http.Error(w, "page is required", http.StatusBadRequest)
		return
	}

	hero, err := h.service.UpsertHeroSection(r.Context(), studiocms.UpsertHeroSectionRequest{
		Page:       req.Page,
		Heading:    req.Heading,
		Subheading: req.Subheading,
		CTALabel:   req.CTALabel,
		CTAURL:     req.CTAURL,
		Active:     req.Active,
	})
	if err != nil {
		slog.Error("Failed to upsert hero section", "page", req.Page, "error", err)
		writeError(w, err)
		return
	}

	render.JSON(w, r, hero)
}

// UploadAsset accepts a multipart upload for an owning record's image
// field and runs it through the asset save path (watermarking included).
// Form fields: owner_kind, owner_id, field, optional backend, and the
// file part named "file".
func (h *AdminHandler) UploadAsset(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ownerID, err := uuid.Parse(r.FormValue("owner_id"))
	if err != nil {
		http.Error(w, "Invalid owner_id", http.StatusBadRequest)
		return
	}
	ownerKind := studiocms.Kind(r.FormValue("owner_kind"))
	field := r.FormValue("field")
	if ownerKind == "" || field == "" {
		http.Error(w, "owner_kind and field are required", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file part is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	asset, err := h.service.UploadAsset(r.Context(), studiocms.UploadAssetRequest{
		OwnerKind: ownerKind,
		OwnerID:   ownerID,
		Field:     field,
		FileName:  header.Filename,
		MimeType:  header.Header.Get("Content-Type"),
		Backend:   r.FormValue("backend"),
		Reader:    file,
	})
	if err != nil {
		slog.Error("Failed to upload asset", "owner_kind", ownerKind, "owner_id", ownerID, "field", field, "error", err)
		writeError(w, err)
		return
	}

	slog.Info("Asset uploaded", "asset_id", asset.ID, "key", asset.ObjectKey, "watermarked", asset.Watermarked)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, asset)
}

// GetAsset retrieves asset metadata by ID
func (h *AdminHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	asset, err := h.service.GetAsset(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	render.JSON(w, r, asset)
}

// DownloadAsset streams an asset's stored bytes
func (h *AdminHandler) DownloadAsset(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	rc, asset, err := h.service.DownloadAsset(r.Context(), id)
	if err != nil {
		slog.Error("Failed to download asset", "asset_id", id, "error", err)
		writeError(w, err)
		return
	}
	defer rc.Close()

	if asset.MimeType != "" {
		w.Header().Set("Content-Type", asset.MimeType)
	}
	streamObject(w, rc)
}

// DeleteAsset removes an asset and its stored object
func (h *AdminHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteAsset(r.Context(), id); err != nil {
		slog.Error("Failed to delete asset", "asset_id", id, "error", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseOptionalID parses a UUID string that may be empty (meaning unset)
func parseOptionalID(w http.ResponseWriter, raw, name string) (uuid.UUID, bool) {
	if raw == "" {
		return uuid.Nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		http.Error(w, "Invalid "+name, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}
