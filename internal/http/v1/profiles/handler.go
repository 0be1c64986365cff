package profiles

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	appmiddleware "github.com/vitrinehq/vitrine/internal/middleware"
	"github.com/vitrinehq/vitrine/internal/service/document"
)

// Register registers the profile registry endpoints.
func Register(api huma.API, registry *document.Registry) {
	huma.Register(api, huma.Operation{
		OperationID: "list-profiles",
		Method:      http.MethodGet,
		Path:        "/profiles",
		Summary:     "List profiles",
		Description: "Returns the ids of every profile with a stored document. Order follows the storage backend and is not guaranteed stable.",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, _ *ProfilesListInput) (*ProfilesListOutput, error) {
		ids, err := registry.List(ctx)
		if err != nil {
			appmiddleware.LogError(ctx, "failed to list profiles", err)
			return nil, huma.Error500InternalServerError("Failed to list profiles")
		}
		return &ProfilesListOutput{Body: ProfilesListBody{Profiles: ids}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "create-profile",
		Method:      http.MethodPost,
		Path:        "/profiles",
		Summary:     "Create a profile",
		Description: "Derives an id from the display name and seeds a default document under it. Names that sanitize to an existing id overwrite that profile.",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, input *ProfileCreateInput) (*ProfileCreateOutput, error) {
		if input.Body.Name == nil || strings.TrimSpace(*input.Body.Name) == "" {
			return nil, huma.Error400BadRequest("Profile name is required")
		}
		id, err := registry.Create(ctx, *input.Body.Name)
		if err != nil {
			if errors.Is(err, document.ErrNameRequired) {
				return nil, huma.Error400BadRequest("Profile name is required")
			}
			appmiddleware.LogError(ctx, "failed to create profile", err)
			return nil, huma.Error500InternalServerError("Failed to create profile")
		}
		return &ProfileCreateOutput{Body: ProfileCreateBody{Success: true, ProfileID: id}}, nil
	})
}
