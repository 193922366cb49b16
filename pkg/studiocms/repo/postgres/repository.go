// Package postgres implements studiocms.Repository using PostgreSQL.
// Substring search uses ILIKE scans; fine at CMS data volumes
// (hundreds to low thousands of rows per kind), but a real text-search
// index would be needed for a large catalog.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/framelight/studio-cms/pkg/studiocms"
)

// DBTX is an interface that allows us to use either a database
// connection or a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Repository implements studiocms.Repository using PostgreSQL
type Repository struct {
	db DBTX
}

// New creates a new PostgreSQL repository
func New(db DBTX) studiocms.Repository {
	return &Repository{db: db}
}

// NewWithPool creates a new PostgreSQL repository with connection pool
func NewWithPool(pool *pgxpool.Pool) studiocms.Repository {
	return &Repository{db: pool}
}

func (r *Repository) handleError(operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if strings.Contains(pgErr.ConstraintName, "slug") {
				return studiocms.ErrDuplicateSlug
			}
			return fmt.Errorf("duplicate entry")
		case "23503": // foreign_key_violation
			return fmt.Errorf("referenced record not found")
		case "23502": // not_null_violation
			return fmt.Errorf("required field %s is missing", pgErr.ColumnName)
		case "42P01": // undefined_table
			return fmt.Errorf("table does not exist - database migration required")
		default:
			return fmt.Errorf("database error in %s: %s (code: %s)", operation, pgErr.Message, pgErr.Code)
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return studiocms.ErrNotFound
	}
	return fmt.Errorf("database error in %s: %w", operation, err)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// likePattern wraps a term for a prefix-less ILIKE substring match.
func likePattern(term string) string {
	return "%" + term + "%"
}

// withLimit appends a LIMIT clause when limit is positive.
func withLimit(query string, limit int) string {
	if limit > 0 {
		return fmt.Sprintf("%s LIMIT %d", query, limit)
	}
	return query
}

// Vendor profiles

const vendorColumns = `
	v.id, v.name, v.tagline, v.description, v.story, v.location,
	v.vendor_type, v.category_id, v.subcategory_id,
	COALESCE(c.name, ''), COALESCE(s.name, ''),
	v.rating, v.price_range, v.profile_image, v.active, v.created_at, v.updated_at`

const vendorFrom = `
	FROM vendor_profiles v
	LEFT JOIN vendor_categories c ON c.id = v.category_id
	LEFT JOIN vendor_subcategories s ON s.id = v.subcategory_id`

func scanVendor(row rowScanner) (*studiocms.VendorProfile, error) {
	var v studiocms.VendorProfile
	var categoryID, subcategoryID *uuid.UUID
	err := row.Scan(&v.ID, &v.Name, &v.Tagline, &v.Description, &v.Story, &v.Location,
		&v.VendorType, &categoryID, &subcategoryID,
		&v.CategoryName, &v.SubcategoryName,
		&v.Rating, &v.PriceRange, &v.ProfileImage, &v.Active, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if categoryID != nil {
		v.CategoryID = *categoryID
	}
	if subcategoryID != nil {
		v.SubcategoryID = *subcategoryID
	}
	return &v, nil
}

func nullableID(id uuid.UUID) interface{} {
	if id == uuid.Nil {
		return nil
	}
	return id
}

func (r *Repository) CreateVendor(ctx context.Context, v *studiocms.VendorProfile) error {
	query := `
		INSERT INTO vendor_profiles (
			id, name, tagline, description, story, location, vendor_type,
			category_id, subcategory_id, rating, price_range, profile_image,
			active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.Exec(ctx, query,
		v.ID, v.Name, v.Tagline, v.Description, v.Story, v.Location, v.VendorType,
		nullableID(v.CategoryID), nullableID(v.SubcategoryID), v.Rating, v.PriceRange,
		v.ProfileImage, v.Active, v.CreatedAt, v.UpdatedAt)
	if err != nil {
		return r.handleError("create vendor", err)
	}
	return nil
}

func (r *Repository) GetVendor(ctx context.Context, id uuid.UUID) (*studiocms.VendorProfile, error) {
	query := `SELECT` + vendorColumns + vendorFrom + ` WHERE v.id = $1`
	v, err := scanVendor(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, r.handleError("get vendor", err)
	}
	return v, nil
}

func (r *Repository) UpdateVendor(ctx context.Context, v *studiocms.VendorProfile) error {
	query := `
		UPDATE vendor_profiles SET
			name = $2, tagline = $3, description = $4, story = $5, location = $6,
			vendor_type = $7, category_id = $8, subcategory_id = $9, rating = $10,
			price_range = $11, profile_image = $12, active = $13, updated_at = $14
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		v.ID, v.Name, v.Tagline, v.Description, v.Story, v.Location, v.VendorType,
		nullableID(v.CategoryID), nullableID(v.SubcategoryID), v.Rating, v.PriceRange,
		v.ProfileImage, v.Active, v.UpdatedAt)
	if err != nil {
		return r.handleError("update vendor", err)
	}
	if tag.RowsAffected() == 0 {
		return studiocms.ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteVendor(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM vendor_profiles WHERE id = $1`, id)
	if err != nil {
		return r.handleError("delete vendor", err)
	}
	if tag.RowsAffected() == 0 {
		return studiocms.ErrNotFound
	}
	return nil
}

func (r *Repository) listVendors(ctx context.Context, query string, args ...interface{}) ([]*studiocms.VendorProfile, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*studiocms.VendorProfile
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, rows.Err()
}

func (r *Repository) ListVendors(ctx context.Context, activeOnly bool) ([]*studiocms.VendorProfile, error) {
	query := `SELECT` + vendorColumns + vendorFrom
	if activeOnly {
		query += ` WHERE v.active`
	}
	query += ` ORDER BY v.created_at DESC, v.id`
	result, err := r.listVendors(ctx, query)
	if err != nil {
		return nil, r.handleError("list vendors", err)
	}
	return result, nil
}

func (r *Repository) SearchVendors(ctx context.Context, term string, limit int) ([]*studiocms.VendorProfile, error) {
	query := `SELECT` + vendorColumns + vendorFrom + `
		WHERE v.active AND (
			v.name ILIKE $1 OR v.tagline ILIKE $1 OR v.description ILIKE $1 OR
			v.story ILIKE $1 OR v.location ILIKE $1 OR v.vendor_type ILIKE $1 OR
			c.name ILIKE $1 OR s.name ILIKE $1
		)
		ORDER BY v.created_at DESC, v.id`
	result, err := r.listVendors(ctx, withLimit(query, limit), likePattern(term))
	if err != nil {
		return nil, r.handleError("search vendors", err)
	}
	return result, nil
}

// Vendor categories

func scanVendorCategory(row rowScanner) (*studiocms.VendorCategory, error) {
	var c studiocms.VendorCategory
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Image, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) CreateVendorCategory(ctx context.Context, c *studiocms.VendorCategory) error {
	query := `
		INSERT INTO vendor_categories (id, name, slug, description, image, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query, c.ID, c.Name, c.Slug, c.Description, c.Image, c.Active, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return r.handleError("create vendor category", err)
	}
	return nil
}

func (r *Repository) listVendorCategories(ctx context.Context, query string, args ...interface{}) ([]*studiocms.VendorCategory, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*studiocms.VendorCategory
	for rows.Next() {
		c, err := scanVendorCategory(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *Repository) ListVendorCategories(ctx context.Context, activeOnly bool) ([]*studiocms.VendorCategory, error) {
	query := `SELECT id, name, slug, description, image, active, created_at, updated_at FROM vendor_categories`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY created_at DESC, id`
	result, err := r.listVendorCategories(ctx, query)
	if err != nil {
		return nil, r.handleError("list vendor categories", err)
	}
	return result, nil
}

func (r *Repository) SearchVendorCategories(ctx context.Context, term string, limit int) ([]*studiocms.VendorCategory, error) {
	query := `
		SELECT id, name, slug, description, image, active, created_at, updated_at
		FROM vendor_categories
		WHERE active AND (name ILIKE $1 OR description ILIKE $1)
		ORDER BY created_at DESC, id`
	result, err := r.listVendorCategories(ctx, withLimit(query, limit), likePattern(term))
	if err != nil {
		return nil, r.handleError("search vendor categories", err)
	}
	return result, nil
}

// Vendor subcategories

func scanVendorSubcategory(row rowScanner) (*studiocms.VendorSubcategory, error) {
	var s studiocms.VendorSubcategory
	err := row.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Slug, &s.Description, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) CreateVendorSubcategory(ctx context.Context, s *studiocms.VendorSubcategory) error {
	query := `
		INSERT INTO vendor_subcategories (id, category_id, name, slug, description, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query, s.ID, s.CategoryID, s.Name, s.Slug, s.Description, s.Active, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return r.handleError("create vendor subcategory", err)
	}
	return nil
}

func (r *Repository) listVendorSubcategories(ctx context.Context, query string, args ...interface{}) ([]*studiocms.VendorSubcategory, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*studiocms.VendorSubcategory
	for rows.Next() {
		s, err := scanVendorSubcategory(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *Repository) ListVendorSubcategories(ctx context.Context, categoryID uuid.UUID, activeOnly bool) ([]*studiocms.VendorSubcategory, error) {
	query := `SELECT id, category_id, name, slug, description, active, created_at, updated_at FROM vendor_subcategories`
	var clauses []string
	var args []interface{}
	if categoryID != uuid.Nil {
		args = append(args, categoryID)
		clauses = append(clauses, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if activeOnly {
		clauses = append(clauses, "active")
	}
	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY created_at DESC, id`
	result, err := r.listVendorSubcategories(ctx, query, args...)
	if err != nil {
		return nil, r.handleError("list vendor subcategories", err)
	}
	return result, nil
}

func (r *Repository) SearchVendorSubcategories(ctx context.Context, term string, limit int) ([]*studiocms.VendorSubcategory, error) {
	query := `
		SELECT id, category_id, name, slug, description, active, created_at, updated_at
		FROM vendor_subcategories
		WHERE active AND (name ILIKE $1 OR description ILIKE $1)
		ORDER BY created_at DESC, id`
	result, err := r.listVendorSubcategories(ctx, withLimit(query, limit), likePattern(term))
	if err != nil {
		return nil, r.handleError("search vendor subcategories", err)
	}
	return result, nil
}

// Vendor images

func scanVendorImage(row rowScanner) (*studiocms.VendorImage, error) {
	var img studiocms.VendorImage
	err := row.Scan(&img.ID, &img.VendorID, &img.Title, &img.Caption, &img.Image, &img.Active, &img.CreatedAt, &img.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *Repository) CreateVendorImage(ctx context.Context, img *studiocms.VendorImage) error {
	query := `
		INSERT INTO vendor_images (id, vendor_id, title, caption, image, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query, img.ID, img.VendorID, img.Title, img.Caption, img.Image, img.Active, img.CreatedAt, img.UpdatedAt)
	if err != nil {
		return r.handleError("create vendor image", err)
	}
	return nil
}

func (r *Repository) listVendorImages(ctx context.Context, query string, args ...interface{}) ([]*studiocms.VendorImage, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*studiocms.VendorImage
	for rows.Next() {
		img, err := scanVendorImage(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, img)
	}
	return result, rows.Err()
}

func (r *Repository) ListVendorImages(ctx context.Context, vendorID uuid.UUID, activeOnly bool) ([]*studiocms.VendorImage, error) {
	query := `SELECT id, vendor_id, title, caption, image, active, created_at, updated_at FROM vendor_images`
	var clauses []string
	var args []interface{}
	if vendorID != uuid.Nil {
		args = append(args, vendorID)
		clauses = append(clauses, fmt.Sprintf("vendor_id = $%d", len(args)))
	}
	if activeOnly {
		clauses = append(clauses, "active")
	}
	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY created_at DESC, id`
	result, err := r.listVendorImages(ctx, query, args...)
	if err != nil {
		return nil, r.handleError("list vendor images", err)
	}
	return result, nil
}

func (r *Repository) SearchVendorImages(ctx context.Context, term string, limit int) ([]*studiocms.VendorImage, error) {
	query := `
		SELECT id, vendor_id, title, caption, image, active, created_at, updated_at
		FROM vendor_images
		WHERE active AND (title ILIKE $1 OR caption ILIKE $1)
		ORDER BY created_at DESC, id`
	result, err := r.listVendorImages(ctx, withLimit(query, limit), likePattern(term))
	if err != nil {
		return nil, r.handleError("search vendor images", err)
	}
	return result, nil
}

// Vendor services

func scanVendorService(row rowScanner) (*studiocms.VendorService, error) {
	var s studiocms.VendorService
	err := row.Scan(&s.ID, &s.VendorID, &s.Name, &s.Description, &s.Price, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) CreateVendorService(ctx context.Context, s *studiocms.VendorService) error {
	query := `
		INSERT INTO vendor_services (id, vendor_id, name, description, price, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query, s.ID, s.VendorID, s.Name, s.Description, s.Price, s.Active, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return r.handleError("create vendor service", err)
	}
	return nil
}

func (r *Repository) listVendorServices(ctx context.Context, query string, args ...interface{}) ([]*studiocms.VendorService, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*studiocms.VendorService
	for rows.Next() {
		s, err := scanVendorService(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *Repository) ListVendorServices(ctx context.Context, vendorID uuid.UUID, activeOnly bool) ([]*studiocms.VendorService, error) {
	query := `SELECT id, vendor_id, name, description, price, active, created_at, updated_at FROM vendor_services`
	var clauses []string
	var args []interface{}
	if vendorID != uuid.Nil {
		args = append(args, vendorID)
		clauses = append(clauses, fmt.Sprintf("vendor_id = $%d", len(args)))
	}
	if activeOnly {
		clauses = append(clauses, "active")
	}
	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY created_at DESC, id`
	result, err := r.listVendorServices(ctx, query, args...)
	if err != nil {
		return nil, r.handleError("list vendor services", err)
	}
	return result, nil
}

func (r *Repository) SearchVendorServices(ctx context.Context, term string, limit int) ([]*studiocms.VendorService, error) {
	query := `
		SELECT id, vendor_id, name, description, price, active, created_at, updated_at
		FROM vendor_services
		WHERE active AND (name ILIKE $1 OR description ILIKE $1)
		ORDER BY created_at DESC, id`
	result, err := r.listVendorServices(ctx, withLimit(query, limit), likePattern(term))
	if err != nil {
		return nil, r.handleError("search vendor services", err)
	}
	return result, nil
}

// Portfolio albums

const albumColumns = `
	a.id, a.title, a.description, a.category_id, COALESCE(c.name, ''),
	a.cover_image, a.event_date, a.location, a.active, a.created_at, a.updated_at,
	(SELECT COUNT(*) FROM portfolio_images i WHERE i.album_id = a.id AND i.active)`

const albumFrom = `
	FROM portfolio_albums a
	LEFT JOIN portfolio_categories c ON c.id = a.category_id`

func scanAlbum(row rowScanner) (*studiocms.PortfolioAlbum, error) {
	var a studiocms.PortfolioAlbum
	var categoryID *uuid.UUID
	err := row.Scan(&a.ID, &a.Title, &a.Description, &categoryID, &a.CategoryName,
		&a.CoverImage, &a.EventDate, &a.Location, &a.Active, &a.CreatedAt, &a.UpdatedAt,
		&a.ImageCount)
	if err != nil {
		return nil, err
	}
	if categoryID != nil {
		a.CategoryID = *categoryID
	}
	return &a, nil
}

func (r *Repository) CreateAlbum(ctx context.Context, a *studiocms.PortfolioAlbum) error {
	query := `
		INSERT INTO portfolio_albums (id, title, description, category_id, cover_image, event_date, location, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query, a.ID, a.Title, a.Description, nullableID(a.CategoryID),
		a.CoverImage, a.EventDate, a.Location, a.Active, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return r.handleError("create album", err)
	}
	return nil
}

func (r *Repository) GetAlbum(ctx context.Context, id uuid.UUID) (*studiocms.PortfolioAlbum, error) {
	query := `SELECT` + albumColumns + albumFrom + ` WHERE a.id = $1`
	a, err := scanAlbum(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, r.handleError("get album", err)
	}
	return a, nil
}

func (r *Repository) UpdateAlbum(ctx context.Context, a *studiocms.PortfolioAlbum) error {
	query := `
		UPDATE portfolio_albums SET
			title = $2, description = $3, category_id = $4, cover_image = $5,
			event_date = $6, location = $7, active = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, a.ID, a.Title, a.Description, nullableID(a.CategoryID),
		a.CoverImage, a.EventDate, a.Location, a.Active, a.UpdatedAt)
	if err != nil {
		return r.handleError("update album", err)
	}
	if tag.RowsAffected() == 0 {
		return studiocms.ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteAlbum(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM portfolio_albums WHERE id = $1`, id)
	if err != nil {
		return r.handleError("delete album", err)
	}
	if tag.RowsAffected() == 0 {
		return studiocms.ErrNotFound
	}
	return nil
}

func (r *Repository) listAlbums(ctx context.Context, query string, args ...interface{}) ([]*studiocms.PortfolioAlbum, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*studiocms.PortfolioAlbum
	for rows.Next() {
		a, err := scanAlbum(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

func (r *Repository) ListAlbums(ctx context.Context, activeOnly bool) ([]*studiocms.PortfolioAlbum, error) {
	query := `SELECT` + albumColumns + albumFrom
	if activeOnly {
		query += ` WHERE a.active`
	}
	query += ` ORDER BY a.created_at DESC, a.id`
	result, err := r.listAlbums(ctx, query)
	if err != nil {
		return nil, r.handleError("list albums", err)
	}
	return result, nil
}

func (r *Repository) SearchAlbums(ctx context.Context, term string, limit int) ([]*studiocms.PortfolioAlbum, error) {
	query := `SELECT` + albumColumns + albumFrom + `
		WHERE a.active AND (a.title ILIKE $1 OR a.description ILIKE $1 OR a.location ILIKE $1)
		ORDER BY a.created_at DESC, a.id`
	result, err := r.listAlbums(ctx, withLimit(query, limit), likePattern(term))
	if err != nil {
		return nil, r.handleError("search albums", err)
	}
	return result, nil
}

// Portfolio categories

func scanPortfolioCategory(row rowScanner) (*studiocms.PortfolioCategory, error) {
	var c studiocms.PortfolioCategory
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) CreatePortfolioCategory(ctx context.Context, c *studiocms.PortfolioCategory) error {
	query := `
		INSERT INTO portfolio_categories (id, name, slug, description, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, c.ID, c.Name, c.Slug, c.Description, c.Active, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return r.handleError("create portfolio category", err)
	}
	return nil
}

func (r *Repository) listPortfolioCategories(ctx context.Context, query string, args ...interface{}) ([]*studiocms.PortfolioCategory, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*studiocms.PortfolioCategory
	for rows.Next() {
		c, err := scanPortfolioCategory(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *Repository) ListPortfolioCategories(ctx context.Context, activeOnly bool) ([]*studiocms.PortfolioCategory, error) {
	query := `SELECT id, name, slug, description, active, created_at, updated_at FROM portfolio_categories`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY created_at DESC, id`
	result, err := r.listPortfolioCategories(ctx, query)
	if err != nil {
		return nil, r.handleError("list portfolio categories", err)
	}
	return result, nil
}

func (r *Repository) SearchPortfolioCategories(ctx context.Context, term string, limit int) ([]*studiocms.PortfolioCategory, error) {
	query := `
		SELECT id, name, slug, description, active, created_at, updated_at
		FROM portfolio_categories
		WHERE active AND (name ILIKE $1 OR description ILIKE $1)
		ORDER BY created_at DESC, id`
	result, err := r.listPortfolioCategories(ctx, withLimit(query, limit), likePattern(term))
	if err != nil {
		return nil, r.handleError("search portfolio categories", err)
	}
	return result, nil
}

// Portfolio images

func scanPortfolioImage(row rowScanner) (*studiocms.PortfolioImage, error) {
	var img studiocms.PortfolioImage
	err := row.Scan(&img.ID, &img.AlbumID, &img.Title, &img.Caption, &img.Image, &img.Active, &img.CreatedAt, &img.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *Repository) CreatePortfolioImage(ctx context.Context, img *studiocms.PortfolioImage) error {
	query := `
		INSERT INTO portfolio_images (id, album_id, title, caption, image, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query, img.ID, img.AlbumID, img.Title, img.Caption, img.Image, img.Active, img.CreatedAt, img.UpdatedAt)
	if err != nil {
		return r.handleError("create portfolio image", err)
	}
	return nil
}

func (r *Repository) listPortfolioImages(ctx context.Context, query string, args ...interface{}) ([]*studiocms.PortfolioImage, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*studiocms.PortfolioImage
	for rows.Next() {
		img, err := scanPortfolioImage(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, img)
	}
	return result, rows.Err()
}

func (r *Repository) ListAlbumImages(ctx context.Context, albumID uuid.UUID, activeOnly bool) ([]*studiocms.PortfolioImage, error) {
	query := `SELECT id, album_id, title, caption, image, active, created_at, updated_at FROM portfolio_images`
	var clauses []string
	var args []interface{}
	if albumID != uuid.Nil {
		args = append(args, albumID)
		clauses = append(clauses, fmt.Sprintf("album_id = $%d", len(args)))
	}
	if activeOnly {
		clauses = append(clauses, "active")
	}
	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY created_at DESC, id`
	result, err := r.listPortfolioImages(ctx, query, args...)
	if err != nil {
		return nil, r.handleError("list album images", err)
	}
	return result, nil
}

func (r *Repository) SearchPortfolioImages(ctx context.Context, term string, limit int) ([]*studiocms.PortfolioImage, error) {
	query := `
		SELECT id, album_id, title, caption, image, active, created_at, updated_at
		FROM portfolio_images
		WHERE active AND (title ILIKE $1 OR caption ILIKE $1)
		ORDER BY created_at DESC, id`
	result, err := r.listPortfolioImages(ctx, withLimit(query, limit), likePattern(term))
	if err != nil {
		return nil, r.handleError("search portfolio images", err)
	}
	return result, nil
}

// Service offerings

func scanOffering(row rowScanner) (*studiocms.ServiceOffering, error) {
	var o studiocms.ServiceOffering
	err := row.Scan(&o.ID, &o.Name, &o.Tagline, &o.Description, &o.StartingPrice, &o.Image, &o.Active, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) CreateOffering(ctx context.Context, o *studiocms.ServiceOffering) error {
	query := `
		INSERT INTO service_offerings (id, name, tagline, description, starting_price, image, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query, o.ID, o.Name, o.Tagline, o.Description, o.StartingPrice, o.Image, o.Active, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return r.handleError("create offering", err)
	}
	return nil
}

func (r *Repository) listOfferings(ctx context.Context, query string, args ...interface{}) ([]*studiocms.ServiceOffering, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*studiocms.ServiceOffering
	for rows.Next() {
		o, err := scanOffering(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, rows.Err()
}

func (r *Repository) ListOfferings(ctx context.Context, activeOnly bool) ([]*studiocms.ServiceOffering, error) {
	query := `SELECT id, name, tagline, description, starting_price, image, active, created_at, updated_at FROM service_offerings`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY created_at DESC, id`
	result, err := r.listOfferings(ctx, query)
	if err != nil {
		return nil, r.handleError("list offerings", err)
	}
	return result, nil
}

func (r *Repository) SearchOfferings(ctx context.Context, term string, limit int) ([]*studiocms.ServiceOffering, error) {
	query := `
		SELECT id, name, tagline, description, starting_price, image, active, created_at, updated_at
		FROM service_offerings
		WHERE active AND (name ILIKE $1 OR tagline ILIKE $1 OR description ILIKE $1)
		ORDER BY created_at DESC, id`
	result, err := r.listOfferings(ctx, withLimit(query, limit), likePattern(term))
	if err != nil {
		return nil, r.handleError("search offerings", err)
	}
	return result, nil
}

// Blog posts

func scanBlogPost(row rowScanner) (*studiocms.BlogPost, error) {
	var p studiocms.BlogPost
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Body, &p.CoverImage, &p.OGImage,
		&p.Published, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) CreateBlogPost(ctx context.Context, p *studiocms.BlogPost) error {
	query := `
		INSERT INTO blog_posts (id, title, slug, excerpt, body, cover_image, og_image, published, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query, p.ID, p.Title, p.Slug, p.Excerpt, p.Body, p.CoverImage, p.OGImage,
		p.Published, p.PublishedAt, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return r.handleError("create blog post", err)
	}
	return nil
}

func (r *Repository) GetBlogPostBySlug(ctx context.Context, slug string) (*studiocms.BlogPost, error) {
	query := `
		SELECT id, title, slug, excerpt, body, cover_image, og_image, published, published_at, created_at, updated_at
		FROM blog_posts WHERE slug = $1`
	p, err := scanBlogPost(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		return nil, r.handleError("get blog post", err)
	}
	return p, nil
}

func (r *Repository) ListBlogPosts(ctx context.Context, publishedOnly bool) ([]*studiocms.BlogPost, error) {
	query := `SELECT id, title, slug, excerpt, body, cover_image, og_image, published, published_at, created_at, updated_at FROM blog_posts`
	if publishedOnly {
		query += ` WHERE published`
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, r.handleError("list blog posts", err)
	}
	defer rows.Close()

	var result []*studiocms.BlogPost
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, r.handleError("list blog posts", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// Testimonials

func (r *Repository) CreateTestimonial(ctx context.Context, t *studiocms.Testimonial) error {
	query := `
		INSERT INTO testimonials (id, author, role, quote, avatar, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query, t.ID, t.Author, t.Role, t.Quote, t.Avatar, t.Active, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return r.handleError("create testimonial", err)
	}
	return nil
}

func (r *Repository) ListTestimonials(ctx context.Context, activeOnly bool) ([]*studiocms.Testimonial, error) {
	query := `SELECT id, author, role, quote, avatar, active, created_at, updated_at FROM testimonials`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, r.handleError("list testimonials", err)
	}
	defer rows.Close()

	var result []*studiocms.Testimonial
	for rows.Next() {
		var t studiocms.Testimonial
		if err := rows.Scan(&t.ID, &t.Author, &t.Role, &t.Quote, &t.Avatar, &t.Active, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, r.handleError("list testimonials", err)
		}
		result = append(result, &t)
	}
	return result, rows.Err()
}

// FAQs

func (r *Repository) CreateFAQ(ctx context.Context, f *studiocms.FAQ) error {
	query := `
		INSERT INTO faqs (id, question, answer, position, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, f.ID, f.Question, f.Answer, f.Position, f.Active, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		return r.handleError("create faq", err)
	}
	return nil
}

func (r *Repository) ListFAQs(ctx context.Context, activeOnly bool) ([]*studiocms.FAQ, error) {
	query := `SELECT id, question, answer, position, active, created_at, updated_at FROM faqs`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY position, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, r.handleError("list faqs", err)
	}
	defer rows.Close()

	var result []*studiocms.FAQ
	for rows.Next() {
		var f studiocms.FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.Position, &f.Active, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, r.handleError("list faqs", err)
		}
		result = append(result, &f)
	}
	return result, rows.Err()
}

// Hero sections

func (r *Repository) UpsertHeroSection(ctx context.Context, h *studiocms.HeroSection) error {
	query := `
		INSERT INTO hero_sections (id, page, heading, subheading, background_image, cta_label, cta_url, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (page) DO UPDATE SET
			heading = EXCLUDED.heading, subheading = EXCLUDED.subheading,
			background_image = EXCLUDED.background_image, cta_label = EXCLUDED.cta_label,
			cta_url = EXCLUDED.cta_url, active = EXCLUDED.active, updated_at = EXCLUDED.updated_at`
	_, err := r.db.Exec(ctx, query, h.ID, h.Page, h.Heading, h.Subheading, h.BackgroundImage,
		h.CTALabel, h.CTAURL, h.Active, h.CreatedAt, h.UpdatedAt)
	if err != nil {
		return r.handleError("upsert hero section", err)
	}
	return nil
}

func (r *Repository) GetHeroSection(ctx context.Context, page string) (*studiocms.HeroSection, error) {
	query := `
		SELECT id, page, heading, subheading, background_image, cta_label, cta_url, active, created_at, updated_at
		FROM hero_sections WHERE page = $1`
	var h studiocms.HeroSection
	err := r.db.QueryRow(ctx, query, page).Scan(&h.ID, &h.Page, &h.Heading, &h.Subheading,
		&h.BackgroundImage, &h.CTALabel, &h.CTAURL, &h.Active, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, r.handleError("get hero section", err)
	}
	return &h, nil
}

// CountMatching returns the live number of active records of the given
// kind matching term.
func (r *Repository) CountMatching(ctx context.Context, kind studiocms.Kind, term string) (int, error) {
	var query string
	switch kind {
	case studiocms.KindVendor:
		query = `
			SELECT COUNT(*)` + vendorFrom + `
			WHERE v.active AND (
				v.name ILIKE $1 OR v.tagline ILIKE $1 OR v.description ILIKE $1 OR
				v.story ILIKE $1 OR v.location ILIKE $1 OR v.vendor_type ILIKE $1 OR
				c.name ILIKE $1 OR s.name ILIKE $1
			)`
	case studiocms.KindVendorCategory:
		query = `SELECT COUNT(*) FROM vendor_categories WHERE active AND (name ILIKE $1 OR description ILIKE $1)`
	case studiocms.KindVendorSubcategory:
		query = `SELECT COUNT(*) FROM vendor_subcategories WHERE active AND (name ILIKE $1 OR description ILIKE $1)`
	case studiocms.KindPortfolio:
		query = `SELECT COUNT(*) FROM portfolio_albums WHERE active AND (title ILIKE $1 OR description ILIKE $1 OR location ILIKE $1)`
	case studiocms.KindPortfolioCategory:
		query = `SELECT COUNT(*) FROM portfolio_categories WHERE active AND (name ILIKE $1 OR description ILIKE $1)`
	case studiocms.KindPortfolioImage:
		query = `SELECT COUNT(*) FROM portfolio_images WHERE active AND (title ILIKE $1 OR caption ILIKE $1)`
	case studiocms.KindVendorImage:
		query = `SELECT COUNT(*) FROM vendor_images WHERE active AND (title ILIKE $1 OR caption ILIKE $1)`
	case studiocms.KindVendorService:
		query = `SELECT COUNT(*) FROM vendor_services WHERE active AND (name ILIKE $1 OR description ILIKE $1)`
	case studiocms.KindServiceOffering:
		query = `SELECT COUNT(*) FROM service_offerings WHERE active AND (name ILIKE $1 OR tagline ILIKE $1 OR description ILIKE $1)`
	default:
		return 0, fmt.Errorf("kind %q is not searchable", kind)
	}

	var count int
	if err := r.db.QueryRow(ctx, query, likePattern(term)).Scan(&count); err != nil {
		return 0, r.handleError("count matching", err)
	}
	return count, nil
}

// Media assets

func scanAsset(row rowScanner) (*studiocms.MediaAsset, error) {
	var a studiocms.MediaAsset
	err := row.Scan(&a.ID, &a.OwnerKind, &a.OwnerID, &a.Field, &a.FileName, &a.ObjectKey,
		&a.MimeType, &a.Size, &a.Checksum, &a.Watermarked, &a.Backend, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) CreateAsset(ctx context.Context, a *studiocms.MediaAsset) error {
	query := `
		INSERT INTO media_assets (id, owner_kind, owner_id, field, file_name, object_key, mime_type, size, checksum, watermarked, backend, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query, a.ID, a.OwnerKind, a.OwnerID, a.Field, a.FileName, a.ObjectKey,
		a.MimeType, a.Size, a.Checksum, a.Watermarked, a.Backend, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return r.handleError("create asset", err)
	}
	return nil
}

const assetColumns = `id, owner_kind, owner_id, field, file_name, object_key, mime_type, size, checksum, watermarked, backend, created_at, updated_at`

func (r *Repository) GetAsset(ctx context.Context, id uuid.UUID) (*studiocms.MediaAsset, error) {
	query := `SELECT ` + assetColumns + ` FROM media_assets WHERE id = $1`
	a, err := scanAsset(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, studiocms.ErrAssetNotFound
		}
		return nil, r.handleError("get asset", err)
	}
	return a, nil
}

func (r *Repository) GetAssetByOwnerField(ctx context.Context, kind studiocms.Kind, ownerID uuid.UUID, field string) (*studiocms.MediaAsset, error) {
	query := `SELECT ` + assetColumns + ` FROM media_assets WHERE owner_kind = $1 AND owner_id = $2 AND field = $3`
	a, err := scanAsset(r.db.QueryRow(ctx, query, kind, ownerID, field))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, studiocms.ErrAssetNotFound
		}
		return nil, r.handleError("get asset by owner", err)
	}
	return a, nil
}

func (r *Repository) UpdateAsset(ctx context.Context, a *studiocms.MediaAsset) error {
	query := `
		UPDATE media_assets SET
			file_name = $2, object_key = $3, mime_type = $4, size = $5,
			checksum = $6, watermarked = $7, backend = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, a.ID, a.FileName, a.ObjectKey, a.MimeType, a.Size,
		a.Checksum, a.Watermarked, a.Backend, a.UpdatedAt)
	if err != nil {
		return r.handleError("update asset", err)
	}
	if tag.RowsAffected() == 0 {
		return studiocms.ErrAssetNotFound
	}
	return nil
}

func (r *Repository) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM media_assets WHERE id = $1`, id)
	if err != nil {
		return r.handleError("delete asset", err)
	}
	if tag.RowsAffected() == 0 {
		return studiocms.ErrAssetNotFound
	}
	return nil
}

// imageFieldColumns whitelists the writable image columns per kind so
// SetImageField can never interpolate an arbitrary identifier.
var imageFieldColumns = map[studiocms.Kind]struct {
	table  string
	fields map[string]bool
}{
	studiocms.KindVendor:          {"vendor_profiles", map[string]bool{"profile_image": true}},
	studiocms.KindVendorCategory:  {"vendor_categories", map[string]bool{"image": true}},
	studiocms.KindVendorImage:     {"vendor_images", map[string]bool{"image": true}},
	studiocms.KindPortfolio:       {"portfolio_albums", map[string]bool{"cover_image": true}},
	studiocms.KindPortfolioImage:  {"portfolio_images", map[string]bool{"image": true}},
	studiocms.KindServiceOffering: {"service_offerings", map[string]bool{"image": true}},
	studiocms.KindBlogPost:        {"blog_posts", map[string]bool{"cover_image": true, "og_image": true}},
	studiocms.KindTestimonial:     {"testimonials", map[string]bool{"avatar": true}},
	studiocms.KindHeroSection:     {"hero_sections", map[string]bool{"background_image": true}},
}

// SetImageField writes objectKey onto the named image column of the
// owning record.
func (r *Repository) SetImageField(ctx context.Context, kind studiocms.Kind, ownerID uuid.UUID, field, objectKey string) error {
	entry, ok := imageFieldColumns[kind]
	if !ok || !entry.fields[field] {
		return fmt.Errorf("no image field %q on kind %q", field, kind)
	}

	query := fmt.Sprintf(`UPDATE %s SET %s = $2, updated_at = now() WHERE id = $1`, entry.table, field)
	tag, err := r.db.Exec(ctx, query, ownerID, objectKey)
	if err != nil {
		return r.handleError("set image field", err)
	}
	if tag.RowsAffected() == 0 {
		return studiocms.ErrNotFound
	}
	return nil
}
