package studiocms

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// Repository defines the interface for content persistence. Search*
// methods run case-insensitive substring matches over each kind's
// designated text fields, return active records only, newest first,
// capped at limit (limit <= 0 means no cap). CountMatching backs the
// live counts on search suggestions.
type Repository interface {
	// Vendor profiles
	CreateVendor(ctx context.Context, v *VendorProfile) error
	GetVendor(ctx context.Context, id uuid.UUID) (*VendorProfile, error)
	UpdateVendor(ctx context.Context, v *VendorProfile) error
	DeleteVendor(ctx context.Context, id uuid.UUID) error
	ListVendors(ctx context.Context, activeOnly bool) ([]*VendorProfile, error)
	SearchVendors(ctx context.Context, term string, limit int) ([]*VendorProfile, error)

	// Vendor categories and subcategories
	CreateVendorCategory(ctx context.Context, c *VendorCategory) error
	ListVendorCategories(ctx context.Context, activeOnly bool) ([]*VendorCategory, error)
	SearchVendorCategories(ctx context.Context, term string, limit int) ([]*VendorCategory, error)
	CreateVendorSubcategory(ctx context.Context, s *VendorSubcategory) error
	ListVendorSubcategories(ctx context.Context, categoryID uuid.UUID, activeOnly bool) ([]*VendorSubcategory, error)
	SearchVendorSubcategories(ctx context.Context, term string, limit int) ([]*VendorSubcategory, error)

	// Vendor images and services
	CreateVendorImage(ctx context.Context, img *VendorImage) error
	ListVendorImages(ctx context.Context, vendorID uuid.UUID, activeOnly bool) ([]*VendorImage, error)
	SearchVendorImages(ctx context.Context, term string, limit int) ([]*VendorImage, error)
	CreateVendorService(ctx context.Context, s *VendorService) error
	ListVendorServices(ctx context.Context, vendorID uuid.UUID, activeOnly bool) ([]*VendorService, error)
	SearchVendorServices(ctx context.Context, term string, limit int) ([]*VendorService, error)

	// Portfolio albums, categories, images
	CreateAlbum(ctx context.Context, a *PortfolioAlbum) error
	GetAlbum(ctx context.Context, id uuid.UUID) (*PortfolioAlbum, error)
	UpdateAlbum(ctx context.Context, a *PortfolioAlbum) error
	DeleteAlbum(ctx context.Context, id uuid.UUID) error
	ListAlbums(ctx context.Context, activeOnly bool) ([]*PortfolioAlbum, error)
	SearchAlbums(ctx context.Context, term string, limit int) ([]*PortfolioAlbum, error)
	CreatePortfolioCategory(ctx context.Context, c *PortfolioCategory) error
	ListPortfolioCategories(ctx context.Context, activeOnly bool) ([]*PortfolioCategory, error)
	SearchPortfolioCategories(ctx context.Context, term string, limit int) ([]*PortfolioCategory, error)
	CreatePortfolioImage(ctx context.Context, img *PortfolioImage) error
	ListAlbumImages(ctx context.Context, albumID uuid.UUID, activeOnly bool) ([]*PortfolioImage, error)
	SearchPortfolioImages(ctx context.Context, term string, limit int) ([]*PortfolioImage, error)

	// Photography service offerings
	CreateOffering(ctx context.Context, o *ServiceOffering) error
	ListOfferings(ctx context.Context, activeOnly bool) ([]*ServiceOffering, error)
	SearchOfferings(ctx context.Context, term string, limit int) ([]*ServiceOffering, error)

	// Page content
	CreateBlogPost(ctx context.Context, p *BlogPost) error
	GetBlogPostBySlug(ctx context.Context, slug string) (*BlogPost, error)
	ListBlogPosts(ctx context.Context, publishedOnly bool) ([]*BlogPost, error)
	CreateTestimonial(ctx context.Context, t *Testimonial) error
	ListTestimonials(ctx context.Context, activeOnly bool) ([]*Testimonial, error)
	CreateFAQ(ctx context.Context, f *FAQ) error
	ListFAQs(ctx context.Context, activeOnly bool) ([]*FAQ, error)
	UpsertHeroSection(ctx context.Context, h *HeroSection) error
	GetHeroSection(ctx context.Context, page string) (*HeroSection, error)

	// Live counts for search suggestions
	CountMatching(ctx context.Context, kind Kind, term string) (int, error)

	// Media assets. SetImageField writes a stored object key back onto
	// the owning record's image field after a successful asset save.
	SetImageField(ctx context.Context, kind Kind, ownerID uuid.UUID, field, objectKey string) error
	CreateAsset(ctx context.Context, a *MediaAsset) error
	GetAsset(ctx context.Context, id uuid.UUID) (*MediaAsset, error)
	GetAssetByOwnerField(ctx context.Context, kind Kind, ownerID uuid.UUID, field string) (*MediaAsset, error)
	UpdateAsset(ctx context.Context, a *MediaAsset) error
	DeleteAsset(ctx context.Context, id uuid.UUID) error
}

// BlobStore defines the interface for blob storage backends
type BlobStore interface {
	// Upload stores content from the reader under the object key
	Upload(ctx context.Context, objectKey string, reader io.Reader) error

	// Download retrieves the object's content
	Download(ctx context.Context, objectKey string) (io.ReadCloser, error)

	// Delete removes the object
	Delete(ctx context.Context, objectKey string) error

	// GetObjectMeta retrieves storage-level metadata for the object
	GetObjectMeta(ctx context.Context, objectKey string) (*ObjectMeta, error)
}
