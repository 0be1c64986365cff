package config

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	appmiddleware "github.com/vitrinehq/vitrine/internal/middleware"
	"github.com/vitrinehq/vitrine/internal/service/document"
)

// Register registers the configuration document endpoints.
func Register(api huma.API, store document.Store) {
	huma.Register(api, huma.Operation{
		OperationID: "get-config",
		Method:      http.MethodGet,
		Path:        "/config",
		Summary:     "Get a site configuration document",
		Description: "Returns the configuration document for the addressed profile. Profiles that were never saved get the default document.",
		Tags:        []string{"Config"},
	}, func(ctx context.Context, input *ConfigGetInput) (*ConfigGetOutput, error) {
		doc, err := store.Load(ctx, profileOrDefault(input.Profile))
		if err != nil {
			appmiddleware.LogError(ctx, "failed to load configuration", err)
			return nil, huma.Error500InternalServerError("Failed to load configuration")
		}
		return &ConfigGetOutput{Body: *doc}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "save-config",
		Method:      http.MethodPost,
		Path:        "/config",
		Summary:     "Replace a site configuration document",
		Description: "Overwrites the stored document for the addressed profile. Last writer wins; there is no version check.",
		Tags:        []string{"Config"},
	}, func(ctx context.Context, input *ConfigSaveInput) (*ConfigSaveOutput, error) {
		profileID := profileOrDefault(input.Profile)
		doc := input.Body
		// The stored document is addressed by the query parameter, never
		// by whatever id the client left in the body.
		doc.ID = profileID
		doc.EnsureEntryIDs()
		if err := doc.Validate(); err != nil {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		if err := store.Save(ctx, profileID, &doc); err != nil {
			appmiddleware.LogError(ctx, "failed to save configuration", err)
			return nil, huma.Error500InternalServerError("Failed to save configuration")
		}
		return &ConfigSaveOutput{Body: ConfigSaveBody{Success: true}}, nil
	})
}

// profileOrDefault covers clients that send an empty profile= value,
// which bypasses the schema default.
func profileOrDefault(profile string) string {
	if profile == "" {
		return "default"
	}
	return profile
}
