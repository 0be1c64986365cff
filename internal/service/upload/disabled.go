package upload

import "context"

// Disabled is the Uploader wired when no bucket is configured. It still
// validates input so missing files report a validation error rather than
// a configuration one.
type Disabled struct{}

func (Disabled) Upload(_ context.Context, p Params) (*Result, error) {
	if p.FileName == "" || p.Body == nil {
		return nil, ErrNoFile
	}
	return nil, ErrNotConfigured
}
