package studiocms

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// CreateVendorRequest contains parameters for creating a vendor profile
type CreateVendorRequest struct {
	Name          string
	Tagline       string
	Description   string
	Story         string
	Location      string
	VendorType    string
	CategoryID    uuid.UUID
	SubcategoryID uuid.UUID
	Rating        float64
	PriceRange    string
	Active        bool
}

type CreateVendorCategoryRequest struct {
	Name        string
	Slug        string
	Description string
	Active      bool
}

type CreateVendorSubcategoryRequest struct {
	CategoryID  uuid.UUID
	Name        string
	Slug        string
	Description string
	Active      bool
}

type CreateVendorImageRequest struct {
	VendorID uuid.UUID
	Title    string
	Caption  string
	Active   bool
}

type CreateVendorServiceRequest struct {
	VendorID    uuid.UUID
	Name        string
	Description string
	Price       string
	Active      bool
}

type CreateAlbumRequest struct {
	Title       string
	Description string
	CategoryID  uuid.UUID
	EventDate   *time.Time
	Location    string
	Active      bool
}

type CreatePortfolioCategoryRequest struct {
	Name        string
	Slug        string
	Description string
	Active      bool
}

type CreatePortfolioImageRequest struct {
	AlbumID uuid.UUID
	Title   string
	Caption string
	Active  bool
}

type CreateOfferingRequest struct {
	Name          string
	Tagline       string
	Description   string
	StartingPrice string
	Active        bool
}

type CreateBlogPostRequest struct {
	Title     string
	Slug      string
	Excerpt   string
	Body      string
	Published bool
}

type CreateTestimonialRequest struct {
	Author string
	Role   string
	Quote  string
	Active bool
}

type CreateFAQRequest struct {
	Question string
	Answer   string
	Position int
	Active   bool
}

type UpsertHeroSectionRequest struct {
	Page       string
	Heading    string
	Subheading string
	CTALabel   string
	CTAURL     string
	Active     bool
}

// UploadAssetRequest contains parameters for storing an image upload
// against an owning record's image field. The save path runs the
// before-save hook chain (watermarking) on the bytes before they reach
// the blob store.
type UploadAssetRequest struct {
	OwnerKind Kind
	OwnerID   uuid.UUID
	Field     string
	FileName  string
	MimeType  string
	Backend   string // optional; empty means the default backend
	Reader    io.Reader
}
