package uploads

import "github.com/danielgtaylor/huma/v2"

// UploadFormData is the multipart form carried by POST /upload.
type UploadFormData struct {
	// File presence is checked in the handler so the success/message
	// response shape stays uniform across all failure modes.
	File huma.FormFile `form:"file" doc:"Binary asset to store"`
}

// UploadInput for POST /upload
type UploadInput struct {
	RawBody huma.MultipartFormFiles[UploadFormData]
}
