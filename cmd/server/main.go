package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/vitrinehq/vitrine/internal/common"
	appconfig "github.com/vitrinehq/vitrine/internal/config"
	"github.com/vitrinehq/vitrine/internal/http/v1/routes"
	appmiddleware "github.com/vitrinehq/vitrine/internal/middleware"
	"github.com/vitrinehq/vitrine/internal/respond"
	"github.com/vitrinehq/vitrine/internal/service/document"
	"github.com/vitrinehq/vitrine/internal/service/upload"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	// Missing .env is fine: production deployments configure the
	// process environment directly.
	_ = godotenv.Load()

	defer func() {
		if err := common.Sync(); err != nil {
			appmiddleware.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := common.Err(); err != nil {
		appmiddleware.LogError(context.Background(), "logger init error", err)
	}

	respond.Install()

	storage := appconfig.StorageFromEnv()
	store, uploader, err := buildBackends(context.Background(), storage)
	if err != nil {
		appmiddleware.LogFatal(context.Background(), "storage client init failed", err)
	}

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security("/api-docs"),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		// Without a trusted proxy, clients can spoof their IP address.
		chimiddleware.RealIP,
		// Large enough for image uploads, small enough to bound memory use.
		chimiddleware.RequestSize(25<<20), // 25 MB limit
		appmiddleware.RequestLogger(),
		appmiddleware.AccessLogger(),
		respond.Recoverer(),
	)

	cfg := huma.DefaultConfig("Vitrine API", Version)
	cfg.DocsPath = "/api-docs"
	// Clients expect bare payloads; drop the $schema link transformer.
	cfg.Transformers = nil
	api := humachi.New(router, cfg)

	// Add CBOR content type to OpenAPI requests and responses
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)

	routes.Register(api, store, document.NewRegistry(store), uploader)

	srv := &http.Server{
		Addr:              ":" + appconfig.Port(),
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		appmiddleware.LogInfo(context.Background(), "server listening",
			zap.String("addr", srv.Addr),
			zap.Bool("objectStorage", storage.UseObjectStorage()),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		appmiddleware.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		appmiddleware.LogInfo(context.Background(), "shutdown signal received")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appmiddleware.LogError(ctx, "server shutdown error", err)
	}
	appmiddleware.LogInfo(context.Background(), "server exited")
}

// buildBackends selects the storage backends: the object store when a
// bucket and credentials are configured, the local filesystem otherwise.
// Uploads have no filesystem fallback; without a bucket they fail loudly.
func buildBackends(ctx context.Context, storage appconfig.Storage) (document.Store, upload.Uploader, error) {
	if !storage.UseObjectStorage() {
		appmiddleware.LogInfo(ctx, "no object storage configured, using local files",
			zap.String("dir", storage.Dir),
		)
		return document.NewFileStore(storage.Dir), upload.Disabled{}, nil
	}
	client, err := appconfig.NewS3Client(ctx, storage)
	if err != nil {
		return nil, nil, err
	}
	return document.NewS3Store(client, storage.Bucket),
		upload.NewS3Uploader(client, storage.Bucket, storage.Endpoint, storage.PublicURL),
		nil
}
