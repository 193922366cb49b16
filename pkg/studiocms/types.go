package studiocms

import (
	"time"

	"github.com/google/uuid"
)

// Kind tags which content table a record (or search hit) came from.
type Kind string

const (
	KindVendor             Kind = "vendor"
	KindVendorCategory     Kind = "vendor_category"
	KindVendorSubcategory  Kind = "vendor_subcategory"
	KindPortfolio          Kind = "portfolio"
	KindPortfolioCategory  Kind = "portfolio_category"
	KindPortfolioImage     Kind = "portfolio_image"
	KindVendorImage        Kind = "vendor_image"
	KindVendorService      Kind = "vendor_service"
	KindServiceOffering    Kind = "photography_service"
	KindBlogPost           Kind = "blog_post"
	KindTestimonial        Kind = "testimonial"
	KindFAQ                Kind = "faq"
	KindHeroSection        Kind = "hero_section"
)

// VendorProfile is a listed vendor (photographer, venue, makeup artist, ...).
// CategoryName/SubcategoryName are denormalized from the referenced
// categories so vendor search can match on them without a second lookup.
type VendorProfile struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Tagline         string    `json:"tagline,omitempty"`
	Description     string    `json:"description,omitempty"`
	Story           string    `json:"story,omitempty"`
	Location        string    `json:"location,omitempty"`
	VendorType      string    `json:"vendor_type,omitempty"`
	CategoryID      uuid.UUID `json:"category_id,omitempty"`
	SubcategoryID   uuid.UUID `json:"subcategory_id,omitempty"`
	CategoryName    string    `json:"category_name,omitempty"`
	SubcategoryName string    `json:"subcategory_name,omitempty"`
	Rating          float64   `json:"rating,omitempty"`
	PriceRange      string    `json:"price_range,omitempty"`
	ProfileImage    string    `json:"profile_image,omitempty"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// VendorCategory groups vendors (photography, decor, catering, ...).
type VendorCategory struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type VendorSubcategory struct {
	ID          uuid.UUID `json:"id"`
	CategoryID  uuid.UUID `json:"category_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VendorImage is a gallery image attached to a vendor profile.
type VendorImage struct {
	ID        uuid.UUID `json:"id"`
	VendorID  uuid.UUID `json:"vendor_id"`
	Title     string    `json:"title,omitempty"`
	Caption   string    `json:"caption,omitempty"`
	Image     string    `json:"image,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VendorService is a priced service offered by a vendor.
type VendorService struct {
	ID          uuid.UUID `json:"id"`
	VendorID    uuid.UUID `json:"vendor_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PortfolioAlbum is a shot event/collection. ImageCount is derived by
// the repository, never stored.
type PortfolioAlbum struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	CategoryID   uuid.UUID  `json:"category_id,omitempty"`
	CategoryName string     `json:"category_name,omitempty"`
	CoverImage   string     `json:"cover_image,omitempty"`
	EventDate    *time.Time `json:"event_date,omitempty"`
	Location     string     `json:"location,omitempty"`
	ImageCount   int        `json:"image_count"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type PortfolioCategory struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PortfolioImage struct {
	ID        uuid.UUID `json:"id"`
	AlbumID   uuid.UUID `json:"album_id"`
	Title     string    `json:"title,omitempty"`
	Caption   string    `json:"caption,omitempty"`
	Image     string    `json:"image,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ServiceOffering is a photography service package sold by the studio
// itself (wedding coverage, pre-wedding shoot, ...).
type ServiceOffering struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Tagline       string    `json:"tagline,omitempty"`
	Description   string    `json:"description,omitempty"`
	StartingPrice string    `json:"starting_price,omitempty"`
	Image         string    `json:"image,omitempty"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BlogPost is a published article on the site.
type BlogPost struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Body        string     `json:"body,omitempty"`
	CoverImage  string     `json:"cover_image,omitempty"`
	OGImage     string     `json:"og_image,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Testimonial struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Role      string    `json:"role,omitempty"`
	Quote     string    `json:"quote"`
	Avatar    string    `json:"avatar,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type FAQ struct {
	ID        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Position  int       `json:"position"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HeroSection is the banner block shown at the top of a page; one per page key.
type HeroSection struct {
	ID              uuid.UUID `json:"id"`
	Page            string    `json:"page"`
	Heading         string    `json:"heading"`
	Subheading      string    `json:"subheading,omitempty"`
	BackgroundImage string    `json:"background_image,omitempty"`
	CTALabel        string    `json:"cta_label,omitempty"`
	CTAURL          string    `json:"cta_url,omitempty"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MediaAsset is a stored upload. Checksum is the SHA-256 of the bytes as
// uploaded (before watermarking), which is how the save path detects an
// unchanged re-save and skips re-watermarking.
type MediaAsset struct {
	ID          uuid.UUID `json:"id"`
	OwnerKind   Kind      `json:"owner_kind"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Field       string    `json:"field"`
	FileName    string    `json:"file_name"`
	ObjectKey   string    `json:"object_key"`
	MimeType    string    `json:"mime_type,omitempty"`
	Size        int64     `json:"size"`
	Checksum    string    `json:"checksum,omitempty"`
	Watermarked bool      `json:"watermarked"`
	Backend     string    `json:"backend"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ObjectMeta holds storage-level metadata about a stored object.
type ObjectMeta struct {
	Key         string
	Size        int64
	ContentType string
	UpdatedAt   time.Time
	ETag        string
	Metadata    map[string]string
}
