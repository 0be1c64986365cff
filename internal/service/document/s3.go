package document

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"

	"github.com/vitrinehq/vitrine/internal/common"
)

// ObjectAPI is the slice of the S3 client used by S3Store.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// S3Store keeps documents in an S3-compatible bucket under
// profiles/{id}.json. It works against AWS S3 as well as R2, Tigris and
// MinIO style endpoints.
type S3Store struct {
	client ObjectAPI
	bucket string
}

// NewS3Store returns a store backed by the given client and bucket.
func NewS3Store(client ObjectAPI, bucket string) *S3Store {
	return &S3Store{client: client, bucket: bucket}
}

func (s *S3Store) Load(ctx context.Context, profileID string) (*Document, error) {
	if s.bucket == "" {
		return nil, ErrNotConfigured
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storageKey(profileID)),
	})
	if err != nil {
		if isNotFound(err) {
			return Default(), nil
		}
		return nil, err
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, err
	}
	doc, err := decodeDocument(data)
	if err != nil {
		// A corrupt object must not take the site down. Serve the
		// default and leave the stored object for inspection.
		common.Logger().Warn("stored document is not valid JSON, serving default",
			zap.String("profileId", profileID),
			zap.Error(err),
		)
		return Default(), nil
	}
	return doc, nil
}

func (s *S3Store) Save(ctx context.Context, profileID string, doc *Document) error {
	if s.bucket == "" {
		return ErrNotConfigured
	}
	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(storageKey(profileID)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	return err
}

func (s *S3Store) List(ctx context.Context) ([]string, error) {
	if s.bucket == "" {
		return nil, ErrNotConfigured
	}
	ids := make([]string, 0)
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(keyPrefix),
	}
	for {
		out, err := s.client.ListObjectsV2(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, obj := range out.Contents {
			if id, ok := profileIDFromKey(aws.ToString(obj.Key)); ok {
				ids = append(ids, id)
			}
		}
		if !aws.ToBool(out.IsTruncated) {
			break
		}
		input.ContinuationToken = out.NextContinuationToken
	}
	return ids, nil
}

// isNotFound matches the missing-key error across S3-compatible vendors:
// AWS returns NoSuchKey, some compatible endpoints answer a bare 404.
func isNotFound(err error) bool {
	var noKey *types.NoSuchKey
	if errors.As(err, &noKey) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
