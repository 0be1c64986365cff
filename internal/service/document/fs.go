package document

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"go.uber.org/zap"

	"github.com/vitrinehq/vitrine/internal/common"
)

// FileStore keeps documents on the local filesystem under
// {dir}/profiles/{id}.json. It is the development backend used when no
// bucket is configured, and writes atomically so a crash mid-save never
// leaves a truncated document behind.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (f *FileStore) path(profileID string) string {
	return filepath.Join(f.dir, keyPrefix+profileID+keySuffix)
}

func (f *FileStore) Load(_ context.Context, profileID string) (*Document, error) {
	data, err := os.ReadFile(f.path(profileID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	doc, err := decodeDocument(data)
	if err != nil {
		common.Logger().Warn("stored document is not valid JSON, serving default",
			zap.String("profileId", profileID),
			zap.Error(err),
		)
		return Default(), nil
	}
	return doc, nil
}

func (f *FileStore) Save(_ context.Context, profileID string, doc *Document) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(f.dir, "profiles"), 0o755); err != nil {
		return err
	}
	return renameio.WriteFile(f.path(profileID), data, 0o644)
}

func (f *FileStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(f.dir, "profiles"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if id, found := strings.CutSuffix(entry.Name(), keySuffix); found && id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
