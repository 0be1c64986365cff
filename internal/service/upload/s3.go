package upload

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// PutObjectAPI is the slice of the S3 client used by S3Uploader.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader stores uploads in a bucket with a public-read ACL.
type S3Uploader struct {
	client    PutObjectAPI
	bucket    string
	endpoint  string
	publicURL string
}

// NewS3Uploader returns an uploader writing to bucket. publicURL, when
// set, is the base the stored key is appended to; otherwise URLs are
// built path-style from the endpoint.
func NewS3Uploader(client PutObjectAPI, bucket, endpoint, publicURL string) *S3Uploader {
	return &S3Uploader{
		client:    client,
		bucket:    bucket,
		endpoint:  endpoint,
		publicURL: publicURL,
	}
}

func (u *S3Uploader) Upload(ctx context.Context, p Params) (*Result, error) {
	if p.FileName == "" || p.Body == nil {
		return nil, ErrNoFile
	}
	if u.bucket == "" {
		return nil, ErrNotConfigured
	}

	key, id := objectKey(p.FileName)
	contentType := p.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        p.Body,
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		URL: u.publicObjectURL(key),
		ID:  id,
	}, nil
}

func (u *S3Uploader) publicObjectURL(key string) string {
	if u.publicURL != "" {
		return strings.TrimSuffix(u.publicURL, "/") + "/" + key
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(u.endpoint, "/"), u.bucket, key)
}
