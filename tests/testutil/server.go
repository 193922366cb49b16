package testutil

import (
	"log"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"

	"github.com/framelight/studio-cms/pkg/studiocms"
	"github.com/framelight/studio-cms/pkg/studiocms/api"
	memoryrepo "github.com/framelight/studio-cms/pkg/studiocms/repo/memory"
	"github.com/framelight/studio-cms/pkg/studiocms/search"
	memorystorage "github.com/framelight/studio-cms/pkg/studiocms/storage/memory"
)

// SetupTestServer creates a test server with all routes configured,
// backed by in-memory repository and storage.
func SetupTestServer() *httptest.Server {
	repo := memoryrepo.New()
	memBackend := memorystorage.New()

	svc, err := studiocms.New(
		studiocms.WithRepository(repo),
		studiocms.WithBlobStore("memory", memBackend),
		studiocms.WithDefaultBackend("memory"),
		studiocms.WithAfterAssetSave(studiocms.LinkAssetToOwner(repo)),
	)
	if err != nil {
		log.Fatal(err)
	}

	aggregator := search.NewAggregator(repo, search.DefaultLimits(), nil)

	contentHandler := api.NewContentHandler(svc, "")
	searchHandler := api.NewSearchHandler(aggregator, "")
	adminHandler := api.NewAdminHandler(svc)
	mediaHandler := api.NewMediaHandler(svc, "memory")

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Mount("/search", searchHandler.Routes())
		r.Mount("/admin", adminHandler.Routes())
		r.Mount("/media", mediaHandler.Routes())
		r.Mount("/", contentHandler.Routes())
	})

	return httptest.NewServer(r)
}
