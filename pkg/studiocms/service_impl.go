package studiocms

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// service implements the Service interface
type service struct {
	repository     Repository
	blobStores     map[string]BlobStore
	defaultBackend string
	hooks          Hooks
	logger         *slog.Logger
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithRepository sets the repository for the service
func WithRepository(repo Repository) Option {
	return func(s *service) {
		s.repository = repo
	}
}

// WithBlobStore adds a blob storage backend
func WithBlobStore(name string, store BlobStore) Option {
	return func(s *service) {
		if s.blobStores == nil {
			s.blobStores = make(map[string]BlobStore)
		}
		s.blobStores[name] = store
		if s.defaultBackend == "" {
			s.defaultBackend = name
		}
	}
}

// WithDefaultBackend selects which registered backend receives uploads
// that do not name one explicitly
func WithDefaultBackend(name string) Option {
	return func(s *service) {
		s.defaultBackend = name
	}
}

// WithBeforeAssetSave appends a hook to the asset save chain
func WithBeforeAssetSave(hook BeforeAssetSaveHook) Option {
	return func(s *service) {
		s.hooks.BeforeAssetSave = append(s.hooks.BeforeAssetSave, hook)
	}
}

// WithAfterAssetSave appends a hook run after an asset is persisted
func WithAfterAssetSave(hook AfterAssetSaveHook) Option {
	return func(s *service) {
		s.hooks.AfterAssetSave = append(s.hooks.AfterAssetSave, hook)
	}
}

// WithLogger sets the structured logger used by the save path
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		s.logger = logger
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{
		blobStores: make(map[string]BlobStore),
	}

	for _, option := range options {
		option(s)
	}

	if s.repository == nil {
		return nil, fmt.Errorf("repository is required")
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s, nil
}

// Vendor operations

func (s *service) CreateVendor(ctx context.Context, req CreateVendorRequest) (*VendorProfile, error) {
	now := time.Now().UTC()
	v := &VendorProfile{
		ID:            uuid.New(),
		Name:          req.Name,
		Tagline:       req.Tagline,
		Description:   req.Description,
		Story:         req.Story,
		Location:      req.Location,
		VendorType:    req.VendorType,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Rating:        req.Rating,
		PriceRange:    req.PriceRange,
		Active:        req.Active,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repository.CreateVendor(ctx, v); err != nil {
		return nil, &ContentError{Kind: KindVendor, ID: v.ID, Op: "create", Err: err}
	}
	return v, nil
}

func (s *service) GetVendor(ctx context.Context, id uuid.UUID) (*VendorProfile, error) {
	return s.repository.GetVendor(ctx, id)
}

func (s *service) UpdateVendor(ctx context.Context, v *VendorProfile) error {
	v.UpdatedAt = time.Now().UTC()
	if err := s.repository.UpdateVendor(ctx, v); err != nil {
		return &ContentError{Kind: KindVendor, ID: v.ID, Op: "update", Err: err}
	}
	return nil
}

func (s *service) DeleteVendor(ctx context.Context, id uuid.UUID) error {
	return s.repository.DeleteVendor(ctx, id)
}

func (s *service) ListVendors(ctx context.Context, activeOnly bool) ([]*VendorProfile, error) {
	return s.repository.ListVendors(ctx, activeOnly)
}

func (s *service) CreateVendorCategory(ctx context.Context, req CreateVendorCategoryRequest) (*VendorCategory, error) {
	now := time.Now().UTC()
	c := &VendorCategory{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Active:      req.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repository.CreateVendorCategory(ctx, c); err != nil {
		return nil, &ContentError{Kind: KindVendorCategory, ID: c.ID, Op: "create", Err: err}
	}
	return c, nil
}

func (s *service) ListVendorCategories(ctx context.Context, activeOnly bool) ([]*VendorCategory, error) {
	return s.repository.ListVendorCategories(ctx, activeOnly)
}

func (s *service) CreateVendorSubcategory(ctx context.Context, req CreateVendorSubcategoryRequest) (*VendorSubcategory, error) {
	now := time.Now().UTC()
	sub := &VendorSubcategory{
		ID:          uuid.New(),
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Active:      req.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repository.CreateVendorSubcategory(ctx, sub); err != nil {
		return nil, &ContentError{Kind: KindVendorSubcategory, ID: sub.ID, Op: "create", Err: err}
	}
	return sub, nil
}

func (s *service) ListVendorSubcategories(ctx context.Context, categoryID uuid.UUID, activeOnly bool) ([]*VendorSubcategory, error) {
	return s.repository.ListVendorSubcategories(ctx, categoryID, activeOnly)
}

func (s *service) CreateVendorImage(ctx context.Context, req CreateVendorImageRequest) (*VendorImage, error) {
	now := time.Now().UTC()
	img := &VendorImage{
		ID:        uuid.New(),
		VendorID:  req.VendorID,
		Title:     req.Title,
		Caption:   req.Caption,
		Active:    req.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repository.CreateVendorImage(ctx, img); err != nil {
		return nil, &ContentError{Kind: KindVendorImage, ID: img.ID, Op: "create", Err: err}
	}
	return img, nil
}

func (s *service) ListVendorImages(ctx context.Context, vendorID uuid.UUID, activeOnly bool) ([]*VendorImage, error) {
	return s.repository.ListVendorImages(ctx, vendorID, activeOnly)
}

func (s *service) CreateVendorService(ctx context.Context, req CreateVendorServiceRequest) (*VendorService, error) {
	now := time.Now().UTC()
	vs := &VendorService{
		ID:          uuid.New(),
		VendorID:    req.VendorID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Active:      req.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repository.CreateVendorService(ctx, vs); err != nil {
		return nil, &ContentError{Kind: KindVendorService, ID: vs.ID, Op: "create", Err: err}
	}
	return vs, nil
}

func (s *service) ListVendorServices(ctx context.Context, vendorID uuid.UUID, activeOnly bool) ([]*VendorService, error) {
	return s.repository.ListVendorServices(ctx, vendorID, activeOnly)
}

// Portfolio operations

func (s *service) CreateAlbum(ctx context.Context, req CreateAlbumRequest) (*PortfolioAlbum, error) {
	now := time.Now().UTC()
	a := &PortfolioAlbum{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		EventDate:   req.EventDate,
		Location:    req.Location,
		Active:      req.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repository.CreateAlbum(ctx, a); err != nil {
		return nil, &ContentError{Kind: KindPortfolio, ID: a.ID, Op: "create", Err: err}
	}
	return a, nil
}

func (s *service) GetAlbum(ctx context.Context, id uuid.UUID) (*PortfolioAlbum, error) {
	return s.repository.GetAlbum(ctx, id)
}

func (s *service) UpdateAlbum(ctx context.Context, a *PortfolioAlbum) error {
	a.UpdatedAt = time.Now().UTC()
	if err := s.repository.UpdateAlbum(ctx, a); err != nil {
		return &ContentError{Kind: KindPortfolio, ID: a.ID, Op: "update", Err: err}
	}
	return nil
}

func (s *service) DeleteAlbum(ctx context.Context, id uuid.UUID) error {
	return s.repository.DeleteAlbum(ctx, id)
}

func (s *service) ListAlbums(ctx context.Context, activeOnly bool) ([]*PortfolioAlbum, error) {
	return s.repository.ListAlbums(ctx, activeOnly)
}

func (s *service) CreatePortfolioCategory(ctx context.Context, req CreatePortfolioCategoryRequest) (*PortfolioCategory, error) {
	now := time.Now().UTC()
	c := &PortfolioCategory{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Active:      req.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repository.CreatePortfolioCategory(ctx, c); err != nil {
		return nil, &ContentError{Kind: KindPortfolioCategory, ID: c.ID, Op: "create", Err: err}
	}
	return c, nil
}

func (s *service) ListPortfolioCategories(ctx context.Context, activeOnly bool) ([]*PortfolioCategory, error) {
	return s.repository.ListPortfolioCategories(ctx, activeOnly)
}

func (s *service) CreatePortfolioImage(ctx context.Context, req CreatePortfolioImageRequest) (*PortfolioImage, error) {
	now := time.Now().UTC()
	img := &PortfolioImage{
		ID:        uuid.New(),
		AlbumID:   req.AlbumID,
		Title:     req.Title,
		Caption:   req.Caption,
		Active:    req.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repository.CreatePortfolioImage(ctx, img); err != nil {
		return nil, &ContentError{Kind: KindPortfolioImage, ID: img.ID, Op: "create", Err: err}
	}
	return img, nil
}

func (s *service) ListAlbumImages(ctx context.Context, albumID uuid.UUID, activeOnly bool) ([]*PortfolioImage, error) {
	return s.repository.ListAlbumImages(ctx, albumID, activeOnly)
}

// Photography service offerings

func (s *service) CreateOffering(ctx context.Context, req CreateOfferingRequest) (*ServiceOffering, error) {
	now := time.Now().UTC()
	o := &ServiceOffering{
		ID:            uuid.New(),
		Name:          req.Name,
		Tagline:       req.Tagline,
		Description:   req.Description,
		StartingPrice: req.StartingPrice,
		Active:        req.Active,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repository.CreateOffering(ctx, o); err != nil {
		return nil, &ContentError{Kind: KindServiceOffering, ID: o.ID, Op: "create", Err: err}
	}
	return o, nil
}

func (s *service) ListOfferings(ctx context.Context, activeOnly bool) ([]*ServiceOffering, error) {
	return s.repository.ListOfferings(ctx, activeOnly)
}

// Page content

func (s *service) CreateBlogPost(ctx context.Context, req CreateBlogPostRequest) (*BlogPost, error) {
	now := time.Now().UTC()
	p := &BlogPost{
		ID:        uuid.New(),
		Title:     req.Title,
		Slug:      req.Slug,
		Excerpt:   req.Excerpt,
		Body:      req.Body,
		Published: req.Published,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Published {
		p.PublishedAt = &now
	}
	if err := s.repository.CreateBlogPost(ctx, p); err != nil {
		return nil, &ContentError{Kind: KindBlogPost, ID: p.ID, Op: "create", Err: err}
	}
	return p, nil
}

func (s *service) GetBlogPostBySlug(ctx context.Context, slug string) (*BlogPost, error) {
	return s.repository.GetBlogPostBySlug(ctx, slug)
}

func (s *service) ListBlogPosts(ctx context.Context, publishedOnly bool) ([]*BlogPost, error) {
	return s.repository.ListBlogPosts(ctx, publishedOnly)
}

func (s *service) CreateTestimonial(ctx context.Context, req CreateTestimonialRequest) (*Testimonial, error) {
	now := time.Now().UTC()
	t := &Testimonial{
		ID:        uuid.New(),
		Author:    req.Author,
		Role:      req.Role,
		Quote:     req.Quote,
		Active:    req.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repository.CreateTestimonial(ctx, t); err != nil {
		return nil, &ContentError{Kind: KindTestimonial, ID: t.ID, Op: "create", Err: err}
	}
	return t, nil
}

func (s *service) ListTestimonials(ctx context.Context, activeOnly bool) ([]*Testimonial, error) {
	return s.repository.ListTestimonials(ctx, activeOnly)
}

func (s *service) CreateFAQ(ctx context.Context, req CreateFAQRequest) (*FAQ, error) {
	now := time.Now().UTC()
	f := &FAQ{
		ID:        uuid.New(),
		Question:  req.Question,
		Answer:    req.Answer,
		Position:  req.Position,
		Active:    req.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repository.CreateFAQ(ctx, f); err != nil {
		return nil, &ContentError{Kind: KindFAQ, ID: f.ID, Op: "create", Err: err}
	}
	return f, nil
}

func (s *service) ListFAQs(ctx context.Context, activeOnly bool) ([]*FAQ, error) {
	return s.repository.ListFAQs(ctx, activeOnly)
}

func (s *service) UpsertHeroSection(ctx context.Context, req UpsertHeroSectionRequest) (*HeroSection, error) {
	now := time.Now().UTC()
	h := &HeroSection{
		ID:         uuid.New(),
		Page:       req.Page,
		Heading:    req.Heading,
		Subheading: req.Subheading,
		CTALabel:   req.CTALabel,
		CTAURL:     req.CTAURL,
		Active:     req.Active,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if existing, err := s.repository.GetHeroSection(ctx, req.Page); err == nil {
		h.ID = existing.ID
		h.CreatedAt = existing.CreatedAt
		h.BackgroundImage = existing.BackgroundImage
	}
	if err := s.repository.UpsertHeroSection(ctx, h); err != nil {
		return nil, &ContentError{Kind: KindHeroSection, ID: h.ID, Op: "upsert", Err: err}
	}
	return h, nil
}

func (s *service) GetHeroSection(ctx context.Context, page string) (*HeroSection, error) {
	return s.repository.GetHeroSection(ctx, page)
}

// Media asset operations

func (s *service) UploadAsset(ctx context.Context, req UploadAssetRequest) (*MediaAsset, error) {
	data, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyUpload
	}

	sum := sha256.Sum256(data)
	checksum := hex.EncodeToString(sum[:])

	// An unchanged re-save keeps the stored object as is; this is what
	// prevents re-watermarking an already-watermarked image.
	existing, err := s.repository.GetAssetByOwnerField(ctx, req.OwnerKind, req.OwnerID, req.Field)
	if err != nil && !errors.Is(err, ErrAssetNotFound) {
		return nil, fmt.Errorf("lookup existing asset: %w", err)
	}
	if existing != nil && existing.Checksum == checksum {
		return existing, nil
	}

	backendName := req.Backend
	if backendName == "" {
		backendName = s.defaultBackend
	}
	store, ok := s.blobStores[backendName]
	if !ok {
		return nil, ErrStorageBackendNotFound
	}

	now := time.Now().UTC()
	asset := &MediaAsset{
		ID:        uuid.New(),
		OwnerKind: req.OwnerKind,
		OwnerID:   req.OwnerID,
		Field:     req.Field,
		FileName:  req.FileName,
		MimeType:  req.MimeType,
		Checksum:  checksum,
		Backend:   backendName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	out, err := s.hooks.executeBeforeAssetSave(ctx, asset, data)
	if err != nil {
		return nil, &AssetError{AssetID: asset.ID, Op: "before_save", Err: err}
	}

	asset.ObjectKey = objectKey(req.OwnerKind, req.OwnerID, asset.ID, req.FileName)
	asset.Size = int64(len(out))

	if err := store.Upload(ctx, asset.ObjectKey, bytes.NewReader(out)); err != nil {
		return nil, &AssetError{AssetID: asset.ID, Op: "upload", Err: err}
	}

	if existing != nil {
		oldKey, oldBackend := existing.ObjectKey, existing.Backend
		existing.FileName = asset.FileName
		existing.ObjectKey = asset.ObjectKey
		existing.MimeType = asset.MimeType
		existing.Size = asset.Size
		existing.Checksum = asset.Checksum
		existing.Watermarked = asset.Watermarked
		existing.Backend = asset.Backend
		existing.UpdatedAt = now
		if err := s.repository.UpdateAsset(ctx, existing); err != nil {
			return nil, &AssetError{AssetID: existing.ID, Op: "update", Err: err}
		}
		if oldKey != "" && oldKey != asset.ObjectKey {
			s.deleteOldObject(oldBackend, oldKey)
		}
		s.hooks.executeAfterAssetSave(ctx, existing)
		return existing, nil
	}

	if err := s.repository.CreateAsset(ctx, asset); err != nil {
		return nil, &AssetError{AssetID: asset.ID, Op: "create", Err: err}
	}
	s.hooks.executeAfterAssetSave(ctx, asset)
	return asset, nil
}

// deleteOldObject removes a replaced blob best-effort; it must never
// block or fail the save that replaced it.
func (s *service) deleteOldObject(backend, key string) {
	store, ok := s.blobStores[backend]
	if !ok {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := store.Delete(ctx, key); err != nil {
			s.logger.Warn("failed to delete replaced object", "backend", backend, "key", key, "error", err)
		}
	}()
}

func (s *service) GetAsset(ctx context.Context, id uuid.UUID) (*MediaAsset, error) {
	return s.repository.GetAsset(ctx, id)
}

func (s *service) DownloadAsset(ctx context.Context, id uuid.UUID) (io.ReadCloser, *MediaAsset, error) {
	asset, err := s.repository.GetAsset(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	store, ok := s.blobStores[asset.Backend]
	if !ok {
		return nil, nil, ErrStorageBackendNotFound
	}
	rc, err := store.Download(ctx, asset.ObjectKey)
	if err != nil {
		return nil, nil, &AssetError{AssetID: id, Op: "download", Err: err}
	}
	return rc, asset, nil
}

func (s *service) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	asset, err := s.repository.GetAsset(ctx, id)
	if err != nil {
		return err
	}
	if store, ok := s.blobStores[asset.Backend]; ok {
		if err := store.Delete(ctx, asset.ObjectKey); err != nil {
			s.logger.Warn("failed to delete stored object", "key", asset.ObjectKey, "error", err)
		}
	}
	if err := s.repository.DeleteAsset(ctx, id); err != nil {
		return &AssetError{AssetID: id, Op: "delete", Err: err}
	}
	return nil
}

// Storage backend operations

func (s *service) RegisterBackend(name string, backend BlobStore) {
	s.blobStores[name] = backend
	if s.defaultBackend == "" {
		s.defaultBackend = name
	}
}

func (s *service) GetBackend(name string) (BlobStore, error) {
	store, ok := s.blobStores[name]
	if !ok {
		return nil, ErrStorageBackendNotFound
	}
	return store, nil
}

func objectKey(kind Kind, ownerID, assetID uuid.UUID, fileName string) string {
	return fmt.Sprintf("%s/%s/%s%s", kind, ownerID, assetID, filepath.Ext(fileName))
}
