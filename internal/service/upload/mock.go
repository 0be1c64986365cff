package upload

import (
	"context"
	"io"
	"sync"
)

// MockUploader is an in-memory Uploader for tests. It records uploaded
// payloads and can be made to fail via Err.
type MockUploader struct {
	mu    sync.Mutex
	calls []Params
	data  [][]byte

	Err error
}

// NewMockUploader returns an empty mock.
func NewMockUploader() *MockUploader {
	return &MockUploader{}
}

func (m *MockUploader) Upload(_ context.Context, p Params) (*Result, error) {
	if p.FileName == "" || p.Body == nil {
		return nil, ErrNoFile
	}
	if m.Err != nil {
		return nil, m.Err
	}
	data, err := io.ReadAll(p.Body)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, p)
	m.data = append(m.data, data)
	return &Result{
		URL: "https://uploads.test/" + sanitizeFileName(p.FileName),
		ID:  "mock-upload-id",
	}, nil
}

// Calls returns the recorded upload parameters.
func (m *MockUploader) Calls() []Params {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Params, len(m.calls))
	copy(out, m.calls)
	return out
}

// Data returns the recorded payload bytes per call.
func (m *MockUploader) Data() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.data))
	copy(out, m.data)
	return out
}
