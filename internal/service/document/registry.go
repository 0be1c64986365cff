package document

import (
	"context"
	"errors"
	"strings"
)

// ErrNameRequired is returned by Create when the display name is empty.
var ErrNameRequired = errors.New("profile name is required")

// Registry manages the set of profiles sharing one store.
type Registry struct {
	store Store
}

// NewRegistry returns a registry over store.
func NewRegistry(store Store) *Registry {
	return &Registry{store: store}
}

// List returns the ids of all stored profiles.
func (r *Registry) List(ctx context.Context) ([]string, error) {
	return r.store.List(ctx)
}

// Create derives an id from the display name, seeds a fresh default
// document carrying that name, and persists it. Creating a name that
// sanitizes to an existing id overwrites that profile's document.
func (r *Registry) Create(ctx context.Context, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrNameRequired
	}
	id := SanitizeProfileID(name)
	doc := Default()
	doc.ID = id
	doc.Profile.Name = name
	if err := r.store.Save(ctx, id, doc); err != nil {
		return "", err
	}
	return id, nil
}
