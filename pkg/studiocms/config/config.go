// Package config builds a fully wired application from declarative
// settings: repository, storage backends, watermark pipeline and the
// search aggregator.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/framelight/studio-cms/pkg/studiocms"
	repomemory "github.com/framelight/studio-cms/pkg/studiocms/repo/memory"
	repopg "github.com/framelight/studio-cms/pkg/studiocms/repo/postgres"
	"github.com/framelight/studio-cms/pkg/studiocms/search"
	fsstorage "github.com/framelight/studio-cms/pkg/studiocms/storage/fs"
	memorystorage "github.com/framelight/studio-cms/pkg/studiocms/storage/memory"
	s3storage "github.com/framelight/studio-cms/pkg/studiocms/storage/s3"
	"github.com/framelight/studio-cms/pkg/studiocms/watermark"
)

// Option applies configuration to a ServerConfig instance.
type Option func(*ServerConfig) error

// Load constructs a ServerConfig by applying the supplied options on top of library defaults.
func Load(opts ...Option) (*ServerConfig, error) {
	cfg := defaults()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() ServerConfig {
	return ServerConfig{
		Port:                  "8080",
		Environment:           "development",
		DatabaseType:          "memory",
		DefaultStorageBackend: "memory",
		StorageBackends: []StorageBackendConfig{
			{
				Name:   "memory",
				Type:   "memory",
				Config: map[string]interface{}{},
			},
		},
		Watermark: WatermarkConfig{
			Enabled:     true,
			AssetPath:   "./assets/watermark.png",
			Position:    string(watermark.BottomRight),
			Opacity:     0.75,
			SizePercent: 10,
		},
		Search: SearchConfig{
			PrimaryLimit:   10,
			SecondaryLimit: 5,
		},
	}
}

// ServerConfig represents server configuration for the studio-cms service
type ServerConfig struct {
	Port        string
	Environment string // development, production, testing

	// Database configuration
	DatabaseURL  string
	DatabaseType string // "memory", "postgres"
	DBSchema     string // Postgres schema to use

	// Storage configuration
	DefaultStorageBackend string
	StorageBackends       []StorageBackendConfig

	// Media URL configuration. When CDNBaseURL is set, asset URLs in
	// API responses point at the CDN instead of the API's asset route.
	CDNBaseURL string

	Watermark WatermarkConfig
	Search    SearchConfig
}

// StorageBackendConfig represents configuration for a storage backend
type StorageBackendConfig struct {
	Name   string
	Type   string // "memory", "fs", "s3"
	Config map[string]interface{}
}

// WatermarkConfig controls the upload watermarking pipeline.
type WatermarkConfig struct {
	Enabled     bool
	AssetPath   string
	Position    string
	Opacity     float64
	SizePercent int
}

// SearchConfig sets the per-kind result caps for the search aggregator.
type SearchConfig struct {
	PrimaryLimit   int // vendors and portfolio albums
	SecondaryLimit int // every other kind
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}

	if c.DatabaseType != "memory" && c.DatabaseType != "postgres" {
		return errors.New("database_type must be 'memory' or 'postgres'")
	}

	if c.DatabaseType == "postgres" && c.DatabaseURL == "" {
		return errors.New("database_url is required when using postgres")
	}

	found := false
	for _, backend := range c.StorageBackends {
		if backend.Name == c.DefaultStorageBackend {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("default storage backend '%s' not found in configured backends", c.DefaultStorageBackend)
	}

	if c.Watermark.Opacity < 0 || c.Watermark.Opacity > 1 {
		return errors.New("watermark opacity must be between 0 and 1")
	}

	if c.Search.PrimaryLimit < 0 || c.Search.SecondaryLimit < 0 {
		return errors.New("search limits must not be negative")
	}

	return nil
}

// App bundles the wired application components.
type App struct {
	Service    studiocms.Service
	Repository studiocms.Repository
	Search     *search.Aggregator
	Registry   *watermark.Registry
}

// imageFields declares every content kind whose uploads carry images
// and the field names they arrive under. Fields on the watermark
// exemption list (logos, icons, social preview images) are still
// declared here; the registry skips them at dispatch time.
func imageFields() []watermark.ModelImageFields {
	return []watermark.ModelImageFields{
		{Kind: studiocms.KindVendor, Fields: []string{"profile_image"}},
		{Kind: studiocms.KindVendorCategory, Fields: []string{"image"}},
		{Kind: studiocms.KindVendorImage, Fields: []string{"image"}},
		{Kind: studiocms.KindPortfolio, Fields: []string{"cover_image"}},
		{Kind: studiocms.KindPortfolioImage, Fields: []string{"image"}},
		{Kind: studiocms.KindServiceOffering, Fields: []string{"image"}},
		{Kind: studiocms.KindBlogPost, Fields: []string{"cover_image", "og_image"}},
		{Kind: studiocms.KindTestimonial, Fields: []string{"avatar"}},
		{Kind: studiocms.KindHeroSection, Fields: []string{"background_image"}},
	}
}

// Build creates the wired application from the server configuration.
func (c *ServerConfig) Build(logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	repo, err := c.buildRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to build repository: %w", err)
	}

	options := []studiocms.Option{
		studiocms.WithRepository(repo),
		studiocms.WithDefaultBackend(c.DefaultStorageBackend),
		studiocms.WithLogger(logger),
		studiocms.WithAfterAssetSave(studiocms.LinkAssetToOwner(repo)),
	}

	for _, backendConfig := range c.StorageBackends {
		store, err := c.buildStorageBackend(backendConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to build storage backend %s: %w", backendConfig.Name, err)
		}
		options = append(options, studiocms.WithBlobStore(backendConfig.Name, store))
	}

	registry := watermark.NewRegistry(imageFields()...)
	if c.Watermark.Enabled {
		compositor := watermark.NewCompositor(c.Watermark.AssetPath, logger)
		opts := watermark.Options{
			Position:    watermark.Position(c.Watermark.Position),
			Opacity:     c.Watermark.Opacity,
			SizePercent: c.Watermark.SizePercent,
		}
		options = append(options, studiocms.WithBeforeAssetSave(watermark.Hook(compositor, registry, opts)))
		logger.Info("watermarking enabled",
			"kinds", registry.RegisteredKinds(), "asset", c.Watermark.AssetPath)
	}

	svc, err := studiocms.New(options...)
	if err != nil {
		return nil, err
	}

	limits := search.Limits{
		Primary:   c.Search.PrimaryLimit,
		Secondary: c.Search.SecondaryLimit,
	}

	return &App{
		Service:    svc,
		Repository: repo,
		Search:     search.NewAggregator(repo, limits, logger),
		Registry:   registry,
	}, nil
}

// buildRepository creates a Repository based on the configuration
func (c *ServerConfig) buildRepository() (studiocms.Repository, error) {
	switch c.DatabaseType {
	case "memory":
		return repomemory.New(), nil
	case "postgres":
		if c.DatabaseURL == "" {
			return nil, errors.New("database_url is required for postgres")
		}
		cfg, err := pgxpool.ParseConfig(c.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse DATABASE_URL: %w", err)
		}
		schema := c.DBSchema
		cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
			if schema == "" {
				return nil
			}
			_, err := conn.Exec(ctx, fmt.Sprintf("SET search_path TO %s", schema))
			return err
		}
		pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create pgx pool: %w", err)
		}
		return repopg.NewWithPool(pool), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", c.DatabaseType)
	}
}

// PingPostgres verifies connectivity to Postgres and optionally sets search_path for the session.
// It fails if the schema (when provided) does not exist.
func PingPostgres(databaseURL, schema string) error {
	if databaseURL == "" {
		return errors.New("database_url is required")
	}
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return fmt.Errorf("failed to parse DATABASE_URL: %w", err)
	}
	if schema != "" {
		cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
			_, err := conn.Exec(ctx, fmt.Sprintf("SET search_path TO %s", schema))
			return err
		}
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create pgx pool: %w", err)
	}
	defer pool.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// buildStorageBackend creates a BlobStore based on the backend configuration
func (c *ServerConfig) buildStorageBackend(config StorageBackendConfig) (studiocms.BlobStore, error) {
	switch config.Type {
	case "memory":
		return memorystorage.New(), nil

	case "fs":
		fsConfig := fsstorage.Config{
			BaseDir: getString(config.Config, "base_dir", "./data/storage"),
		}
		return fsstorage.New(fsConfig)

	case "s3":
		s3Config := s3storage.Config{
			Region:                 getString(config.Config, "region", "us-east-1"),
			Bucket:                 getString(config.Config, "bucket", ""),
			AccessKeyID:            getString(config.Config, "access_key_id", ""),
			SecretAccessKey:        getString(config.Config, "secret_access_key", ""),
			Endpoint:               getString(config.Config, "endpoint", ""),
			UsePathStyle:           getBool(config.Config, "use_path_style", false),
			EnableSSE:              getBool(config.Config, "enable_sse", false),
			SSEAlgorithm:           getString(config.Config, "sse_algorithm", "AES256"),
			SSEKMSKeyID:            getString(config.Config, "sse_kms_key_id", ""),
			CreateBucketIfNotExist: getBool(config.Config, "create_bucket_if_not_exist", false),
		}
		return s3storage.New(s3Config)

	default:
		return nil, fmt.Errorf("unsupported storage backend type: %s", config.Type)
	}
}

func getString(config map[string]interface{}, key string, defaultValue string) string {
	if value, exists := config[key]; exists {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return defaultValue
}

func getBool(config map[string]interface{}, key string, defaultValue bool) bool {
	if value, exists := config[key]; exists {
		if b, ok := value.(bool); ok {
			return b
		}
		if str, ok := value.(string); ok {
			if b, err := strconv.ParseBool(str); err == nil {
				return b
			}
		}
	}
	return defaultValue
}
