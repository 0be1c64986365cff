package uploads

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	appmiddleware "github.com/vitrinehq/vitrine/internal/middleware"
	"github.com/vitrinehq/vitrine/internal/service/upload"
)

// Register registers the asset upload endpoint.
func Register(api huma.API, uploader upload.Uploader) {
	huma.Register(api, huma.Operation{
		OperationID: "upload-asset",
		Method:      http.MethodPost,
		Path:        "/upload",
		Summary:     "Upload an asset",
		Description: "Stores the submitted file with a collision-resistant key and returns its public URL. Identical content uploaded twice yields two distinct objects.",
		Tags:        []string{"Uploads"},
	}, func(ctx context.Context, input *UploadInput) (*UploadOutput, error) {
		form := input.RawBody.Data()
		if !form.File.IsSet {
			return failure(http.StatusBadRequest, "No file provided", ""), nil
		}

		result, err := uploader.Upload(ctx, upload.Params{
			FileName:    form.File.Filename,
			ContentType: form.File.ContentType,
			Body:        form.File,
		})
		switch {
		case errors.Is(err, upload.ErrNoFile):
			return failure(http.StatusBadRequest, "No file provided", ""), nil
		case errors.Is(err, upload.ErrNotConfigured):
			appmiddleware.LogError(ctx, "upload storage not configured", err)
			return failure(http.StatusInternalServerError, "Upload storage is not configured", err.Error()), nil
		case err != nil:
			appmiddleware.LogError(ctx, "upload failed", err)
			return failure(http.StatusInternalServerError, "Failed to upload file", err.Error()), nil
		}

		return &UploadOutput{
			Status: http.StatusOK,
			Body: UploadBody{
				Success: true,
				URL:     result.URL,
				ID:      result.ID,
			},
		}, nil
	})
}

func failure(status int, message, details string) *UploadOutput {
	return &UploadOutput{
		Status: status,
		Body: UploadBody{
			Success: false,
			Message: message,
			Details: details,
		},
	}
}
