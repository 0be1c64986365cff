package upload

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type fakePutAPI struct {
	putFn func(*s3.PutObjectInput) (*s3.PutObjectOutput, error)
}

func (f *fakePutAPI) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	return f.putFn(in)
}

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "photo.jpg", want: "photo.jpg"},
		{in: "safe-name_1.jpg", want: "safe-name_1.jpg"},
		{in: "my photo (1).jpg", want: "myphoto1.jpg"},
		{in: "weird/..\\name", want: "weird..name"},
		{in: "Ünïcode.png", want: "ncode.png"},
	}
	for _, tc := range cases {
		if got := sanitizeFileName(tc.in); got != tc.want {
			t.Fatalf("sanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestObjectKeyShape(t *testing.T) {
	key, id := objectKey("photo.jpg")
	pattern := regexp.MustCompile(`^\d{13}-\d{9}-photo\.jpg$`)
	if !pattern.MatchString(key) {
		t.Fatalf("unexpected key shape %q", key)
	}
	if key != id+"-photo.jpg" {
		t.Fatalf("id should be the key prefix: key %q, id %q", key, id)
	}
}

func TestObjectKeysAreDistinct(t *testing.T) {
	seen := make(map[string]struct{})
	for range 50 {
		key, _ := objectKey("photo.jpg")
		if _, dup := seen[key]; dup {
			t.Fatalf("duplicate key %q", key)
		}
		seen[key] = struct{}{}
	}
}

func TestS3UploaderRejectsMissingFileWithoutBackendCall(t *testing.T) {
	called := false
	client := &fakePutAPI{putFn: func(*s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		called = true
		return &s3.PutObjectOutput{}, nil
	}}
	uploader := NewS3Uploader(client, "bucket", "https://s3.example.com", "")

	if _, err := uploader.Upload(context.Background(), Params{}); !errors.Is(err, ErrNoFile) {
		t.Fatalf("expected ErrNoFile, got %v", err)
	}
	if _, err := uploader.Upload(context.Background(), Params{FileName: "a.jpg"}); !errors.Is(err, ErrNoFile) {
		t.Fatalf("expected ErrNoFile for nil body, got %v", err)
	}
	if called {
		t.Fatalf("backend should not be called for invalid input")
	}
}

func TestS3UploaderWithoutBucketIsNotConfigured(t *testing.T) {
	uploader := NewS3Uploader(&fakePutAPI{}, "", "https://s3.example.com", "")
	p := Params{FileName: "a.jpg", Body: strings.NewReader("data")}
	if _, err := uploader.Upload(context.Background(), p); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestS3UploaderStoresPublicReadObject(t *testing.T) {
	var got *s3.PutObjectInput
	var gotBody []byte
	client := &fakePutAPI{putFn: func(in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		got = in
		data, err := io.ReadAll(in.Body)
		if err != nil {
			t.Fatalf("reading body: %v", err)
		}
		gotBody = data
		return &s3.PutObjectOutput{}, nil
	}}
	uploader := NewS3Uploader(client, "bucket", "https://s3.example.com", "")

	res, err := uploader.Upload(context.Background(), Params{
		FileName:    "photo.jpg",
		ContentType: "image/jpeg",
		Body:        bytes.NewReader([]byte("jpeg-bytes")),
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	if aws.ToString(got.Bucket) != "bucket" {
		t.Fatalf("unexpected bucket %q", aws.ToString(got.Bucket))
	}
	if got.ACL != types.ObjectCannedACLPublicRead {
		t.Fatalf("expected public-read ACL, got %q", got.ACL)
	}
	if aws.ToString(got.ContentType) != "image/jpeg" {
		t.Fatalf("unexpected content type %q", aws.ToString(got.ContentType))
	}
	if string(gotBody) != "jpeg-bytes" {
		t.Fatalf("unexpected body %q", gotBody)
	}
	wantURL := "https://s3.example.com/bucket/" + aws.ToString(got.Key)
	if res.URL != wantURL {
		t.Fatalf("unexpected URL %q, want %q", res.URL, wantURL)
	}
	if res.ID == "" || !strings.HasPrefix(aws.ToString(got.Key), res.ID+"-") {
		t.Fatalf("id should be the stored key's prefix: key %q, id %q", aws.ToString(got.Key), res.ID)
	}
}

func TestS3UploaderPublicURLWins(t *testing.T) {
	client := &fakePutAPI{putFn: func(in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return &s3.PutObjectOutput{}, nil
	}}
	uploader := NewS3Uploader(client, "bucket", "https://s3.example.com", "https://cdn.example.com/")

	res, err := uploader.Upload(context.Background(), Params{
		FileName: "photo.jpg",
		Body:     strings.NewReader("data"),
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if !strings.HasPrefix(res.URL, "https://cdn.example.com/") {
		t.Fatalf("expected CDN-based URL, got %q", res.URL)
	}
	if strings.Contains(res.URL, "//bucket") {
		t.Fatalf("public URL form should not include the bucket segment: %q", res.URL)
	}
}

func TestS3UploaderIdenticalContentDistinctResults(t *testing.T) {
	var keys []string
	client := &fakePutAPI{putFn: func(in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		keys = append(keys, aws.ToString(in.Key))
		return &s3.PutObjectOutput{}, nil
	}}
	uploader := NewS3Uploader(client, "bucket", "https://s3.example.com", "")

	var ids []string
	for range 2 {
		res, err := uploader.Upload(context.Background(), Params{
			FileName: "photo.jpg",
			Body:     strings.NewReader("same-bytes"),
		})
		if err != nil {
			t.Fatalf("upload failed: %v", err)
		}
		ids = append(ids, res.ID)
	}
	if keys[0] == keys[1] {
		t.Fatalf("identical uploads should get distinct keys: %q", keys[0])
	}
	if ids[0] == ids[1] {
		t.Fatalf("identical uploads should get distinct ids: %q", ids[0])
	}
}

func TestS3UploaderDefaultsContentType(t *testing.T) {
	var gotContentType string
	client := &fakePutAPI{putFn: func(in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		gotContentType = aws.ToString(in.ContentType)
		return &s3.PutObjectOutput{}, nil
	}}
	uploader := NewS3Uploader(client, "bucket", "https://s3.example.com", "")

	if _, err := uploader.Upload(context.Background(), Params{FileName: "blob", Body: strings.NewReader("x")}); err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if gotContentType != "application/octet-stream" {
		t.Fatalf("unexpected content type %q", gotContentType)
	}
}
