// Package upload stores user-submitted images in an S3-compatible bucket
// and hands back the public URL they will be served from.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"
)

var (
	// ErrNoFile is returned when the request carried no usable file.
	ErrNoFile = errors.New("no file provided")
	// ErrNotConfigured is returned when no upload bucket is configured.
	ErrNotConfigured = errors.New("upload storage is not configured")
)

// Params describes one file to upload.
type Params struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

// Result is the outcome of a stored upload.
type Result struct {
	// URL is the public address the stored object is served from.
	URL string
	// ID is the unique key prefix, usable as a gallery entry id.
	ID string
}

// Uploader stores files and returns their public address.
type Uploader interface {
	Upload(ctx context.Context, p Params) (*Result, error)
}

// objectKey builds the stored key: upload time in unix milliseconds, a
// nine-digit random component, and the sanitized original file name.
// The random component keeps same-millisecond uploads of the same file
// from colliding. The prefix doubles as the upload id.
func objectKey(fileName string) (key, id string) {
	id = fmt.Sprintf("%d-%09d", time.Now().UnixMilli(), rand.IntN(1_000_000_000))
	return id + "-" + sanitizeFileName(fileName), id
}

// sanitizeFileName strips every character outside [A-Za-z0-9.-_] so the
// key carries only the safe remainder of the original name.
func sanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return -1
		}
	}, name)
}
