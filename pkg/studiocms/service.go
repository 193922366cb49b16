package studiocms

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// Service defines the main interface for the studio-cms library
type Service interface {
	// Vendor operations
	CreateVendor(ctx context.Context, req CreateVendorRequest) (*VendorProfile, error)
	GetVendor(ctx context.Context, id uuid.UUID) (*VendorProfile, error)
	UpdateVendor(ctx context.Context, v *VendorProfile) error
	DeleteVendor(ctx context.Context, id uuid.UUID) error
	ListVendors(ctx context.Context, activeOnly bool) ([]*VendorProfile, error)
	CreateVendorCategory(ctx context.Context, req CreateVendorCategoryRequest) (*VendorCategory, error)
	ListVendorCategories(ctx context.Context, activeOnly bool) ([]*VendorCategory, error)
	CreateVendorSubcategory(ctx context.Context, req CreateVendorSubcategoryRequest) (*VendorSubcategory, error)
	ListVendorSubcategories(ctx context.Context, categoryID uuid.UUID, activeOnly bool) ([]*VendorSubcategory, error)
	CreateVendorImage(ctx context.Context, req CreateVendorImageRequest) (*VendorImage, error)
	ListVendorImages(ctx context.Context, vendorID uuid.UUID, activeOnly bool) ([]*VendorImage, error)
	CreateVendorService(ctx context.Context, req CreateVendorServiceRequest) (*VendorService, error)
	ListVendorServices(ctx context.Context, vendorID uuid.UUID, activeOnly bool) ([]*VendorService, error)

	// Portfolio operations
	CreateAlbum(ctx context.Context, req CreateAlbumRequest) (*PortfolioAlbum, error)
	GetAlbum(ctx context.Context, id uuid.UUID) (*PortfolioAlbum, error)
	UpdateAlbum(ctx context.Context, a *PortfolioAlbum) error
	DeleteAlbum(ctx context.Context, id uuid.UUID) error
	ListAlbums(ctx context.Context, activeOnly bool) ([]*PortfolioAlbum, error)
	CreatePortfolioCategory(ctx context.Context, req CreatePortfolioCategoryRequest) (*PortfolioCategory, error)
	ListPortfolioCategories(ctx context.Context, activeOnly bool) ([]*PortfolioCategory, error)
	CreatePortfolioImage(ctx context.Context, req CreatePortfolioImageRequest) (*PortfolioImage, error)
	ListAlbumImages(ctx context.Context, albumID uuid.UUID, activeOnly bool) ([]*PortfolioImage, error)

	// Photography service offerings
	CreateOffering(ctx context.Context, req CreateOfferingRequest) (*ServiceOffering, error)
	ListOfferings(ctx context.Context, activeOnly bool) ([]*ServiceOffering, error)

	// Page content
	CreateBlogPost(ctx context.Context, req CreateBlogPostRequest) (*BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*BlogPost, error)
	ListBlogPosts(ctx context.Context, publishedOnly bool) ([]*BlogPost, error)
	CreateTestimonial(ctx context.Context, req CreateTestimonialRequest) (*Testimonial, error)
	ListTestimonials(ctx context.Context, activeOnly bool) ([]*Testimonial, error)
	CreateFAQ(ctx context.Context, req CreateFAQRequest) (*FAQ, error)
	ListFAQs(ctx context.Context, activeOnly bool) ([]*FAQ, error)
	UpsertHeroSection(ctx context.Context, req UpsertHeroSectionRequest) (*HeroSection, error)
	GetHeroSection(ctx context.Context, page string) (*HeroSection, error)

	// Media asset operations. UploadAsset runs the before-save hook
	// chain on the bytes, writes the blob, and records the asset;
	// re-uploading identical bytes for the same owner/field is a no-op
	// that returns the existing asset.
	UploadAsset(ctx context.Context, req UploadAssetRequest) (*MediaAsset, error)
	GetAsset(ctx context.Context, id uuid.UUID) (*MediaAsset, error)
	DownloadAsset(ctx context.Context, id uuid.UUID) (io.ReadCloser, *MediaAsset, error)
	DeleteAsset(ctx context.Context, id uuid.UUID) error

	// Storage backend operations
	RegisterBackend(name string, backend BlobStore)
	GetBackend(name string) (BlobStore, error)
}
