package document

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// ErrNotConfigured is returned by backends that are missing the settings
// they need (for example an object-store backend without a bucket).
var ErrNotConfigured = errors.New("document storage is not configured")

const (
	keyPrefix = "profiles/"
	keySuffix = ".json"
)

// Store persists one document per profile id. Load never fails for a
// missing or unreadable document: those cases yield the default document
// so first-time visitors always see a renderable site. Only backend
// transport failures surface as errors.
type Store interface {
	// Load returns the document stored under profileID, or the default
	// document if none exists or the stored payload cannot be decoded.
	Load(ctx context.Context, profileID string) (*Document, error)
	// Save replaces the document stored under profileID.
	Save(ctx context.Context, profileID string, doc *Document) error
	// List returns the profile ids that have a stored document.
	List(ctx context.Context) ([]string, error)
}

// storageKey maps a profile id to its object key.
func storageKey(profileID string) string {
	return keyPrefix + profileID + keySuffix
}

// profileIDFromKey inverts storageKey. Keys outside the profiles/
// namespace report ok=false.
func profileIDFromKey(key string) (string, bool) {
	rest, found := strings.CutPrefix(key, keyPrefix)
	if !found {
		return "", false
	}
	id, found := strings.CutSuffix(rest, keySuffix)
	if !found || id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

// encodeDocument renders the stored JSON form. Documents are kept
// pretty-printed so operators can inspect them with standard tools.
func encodeDocument(doc *Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// decodeDocument parses stored bytes back into a document.
func decodeDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
