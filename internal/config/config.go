// Package config resolves runtime settings from the environment. Storage
// settings accept several alias names so deployments on AWS, Cloudflare R2,
// Tigris and generic S3-compatible hosts all work without renaming their
// conventional variables.
package config

import (
	"fmt"
	"os"
)

const (
	defaultRegion     = "auto"
	defaultStorageDir = "data"
	defaultPort       = "8080"
)

// Storage holds the resolved object-storage settings.
type Storage struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	// PublicURL is the base URL uploads are served from, without a
	// trailing slash guarantee. Empty when no bucket is configured.
	PublicURL string
	// Dir is the local fallback directory used when no bucket is set.
	Dir string
}

// HasCredentials reports whether both halves of the key pair are present.
func (s Storage) HasCredentials() bool {
	return s.AccessKey != "" && s.SecretKey != ""
}

// HasBucket reports whether a target bucket is configured.
func (s Storage) HasBucket() bool {
	return s.Bucket != ""
}

// UseObjectStorage reports whether the object-storage backend should be
// used instead of the local filesystem.
func (s Storage) UseObjectStorage() bool {
	return s.HasBucket() && s.HasCredentials()
}

// StorageFromEnv resolves storage settings. Each setting takes the first
// non-empty value in its alias chain:
//
//	region:     AWS_REGION (default "auto")
//	endpoint:   AWS_ENDPOINT_URL_S3, S3_ENDPOINT
//	access key: AWS_ACCESS_KEY_ID, ACCESS_KEY, S3_ACCESS_KEY
//	secret key: AWS_SECRET_ACCESS_KEY, SECRET_KEY, S3_SECRET_KEY
//	bucket:     AWS_BUCKET_NAME, BUCKET_NAME, S3_BUCKET
//	public URL: PUBLIC_BUCKET_URL, else derived from BUCKET_NAME
func StorageFromEnv() Storage {
	s := Storage{
		Region:    firstNonEmpty(os.Getenv("AWS_REGION"), defaultRegion),
		Endpoint:  firstNonEmpty(os.Getenv("AWS_ENDPOINT_URL_S3"), os.Getenv("S3_ENDPOINT")),
		AccessKey: firstNonEmpty(os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("ACCESS_KEY"), os.Getenv("S3_ACCESS_KEY")),
		SecretKey: firstNonEmpty(os.Getenv("AWS_SECRET_ACCESS_KEY"), os.Getenv("SECRET_KEY"), os.Getenv("S3_SECRET_KEY")),
		Bucket:    firstNonEmpty(os.Getenv("AWS_BUCKET_NAME"), os.Getenv("BUCKET_NAME"), os.Getenv("S3_BUCKET")),
		Dir:       firstNonEmpty(os.Getenv("STORAGE_DIR"), defaultStorageDir),
	}
	s.PublicURL = publicURL()
	return s
}

// publicURL resolves the base URL uploads are addressed under. The AWS
// fallback intentionally builds from BUCKET_NAME only: alias-named buckets
// on non-AWS hosts are expected to set PUBLIC_BUCKET_URL explicitly.
func publicURL() string {
	if url := os.Getenv("PUBLIC_BUCKET_URL"); url != "" {
		return url
	}
	bucket := os.Getenv("BUCKET_NAME")
	if bucket == "" {
		return ""
	}
	region := firstNonEmpty(os.Getenv("AWS_REGION"), "us-east-1")
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
}

// Port returns the HTTP listen port, PORT or the default.
func Port() string {
	return firstNonEmpty(os.Getenv("PORT"), defaultPort)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
