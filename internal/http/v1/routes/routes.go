package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/vitrinehq/vitrine/internal/http/health"
	configv1 "github.com/vitrinehq/vitrine/internal/http/v1/config"
	"github.com/vitrinehq/vitrine/internal/http/v1/profiles"
	"github.com/vitrinehq/vitrine/internal/http/v1/uploads"
	"github.com/vitrinehq/vitrine/internal/service/document"
	"github.com/vitrinehq/vitrine/internal/service/upload"
)

// Register wires all HTTP routes into the provided API router.
func Register(
	api huma.API,
	store document.Store,
	registry *document.Registry,
	uploader upload.Uploader,
) {
	health.Register(api)
	configv1.Register(api, store)
	profiles.Register(api, registry)
	uploads.Register(api, uploader)
}
