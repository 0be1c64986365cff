package uploads

// UploadOutput for POST /upload. Status carries the response code so
// failures keep the same body shape with success=false.
type UploadOutput struct {
	Status int
	Body   UploadBody
}

// UploadBody reports where the stored asset can be retrieved.
type UploadBody struct {
	Success bool   `json:"success" doc:"Whether the upload was stored"`
	URL     string `json:"url,omitempty" doc:"Public retrieval URL of the stored asset"`
	ID      string `json:"id,omitempty" doc:"Generated id usable as a gallery entry id"`
	Message string `json:"message,omitempty" doc:"Human-readable failure description"`
	Details string `json:"details,omitempty" doc:"Underlying failure detail"`
}
