package document

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/vitrinehq/vitrine/internal/common"
)

// ErrNotInitialized is returned by Session mutators called before
// Initialize has loaded the working document.
var ErrNotInitialized = errors.New("session is not initialized")

// Partial is a set of optional top-level replacements applied to a
// session's document. Nil fields leave the current value untouched; a
// non-nil slice field replaces the whole collection.
type Partial struct {
	Theme        *Theme
	Profile      *ProfileInfo
	Services     *[]ServiceItem
	Gallery      *[]ImageItem
	Availability *AvailabilityInfo
	HeroImageID  *string
}

func (p Partial) apply(doc *Document) {
	if p.Theme != nil {
		doc.Theme = *p.Theme
	}
	if p.Profile != nil {
		doc.Profile = *p.Profile
	}
	if p.Services != nil {
		doc.Services = *p.Services
	}
	if p.Gallery != nil {
		doc.Gallery = *p.Gallery
	}
	if p.Availability != nil {
		doc.Availability = *p.Availability
	}
	if p.HeroImageID != nil {
		doc.HeroImageID = *p.HeroImageID
	}
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSaveErrorHandler replaces the default log-only handler invoked when
// a background persist fails.
func WithSaveErrorHandler(fn func(profileID string, err error)) SessionOption {
	return func(s *Session) {
		s.onSaveError = fn
	}
}

// Session is the working copy of one profile's document. Reads and
// updates are served from memory; every update persists in a detached
// goroutine so callers never wait on storage. Updates that race merge
// last-writer-wins per top-level field under the session mutex.
type Session struct {
	store     Store
	profileID string

	mu          sync.Mutex
	doc         *Document
	initialized bool

	saves       sync.WaitGroup
	onSaveError func(profileID string, err error)
}

// NewSession returns a session for profileID backed by store. Call
// Initialize before reading or updating.
func NewSession(store Store, profileID string, opts ...SessionOption) *Session {
	s := &Session{
		store:     store,
		profileID: profileID,
		onSaveError: func(profileID string, err error) {
			common.Logger().Error("background document save failed",
				zap.String("profileId", profileID),
				zap.Error(err),
			)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads the working document. On a backend failure the session
// still becomes usable with the default document, and the error is
// returned so the caller can surface it.
func (s *Session) Initialize(ctx context.Context) (*Document, error) {
	doc, err := s.store.Load(ctx, s.profileID)
	if err != nil {
		doc = Default()
	}
	s.mu.Lock()
	s.doc = doc
	s.initialized = true
	s.mu.Unlock()
	return doc.Clone(), err
}

// Read returns a snapshot of the working document.
func (s *Session) Read() *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return Default()
	}
	return s.doc.Clone()
}

// Update merges the partial into the working document, schedules a
// background persist of the merged result, and returns the merged
// snapshot immediately.
func (s *Session) Update(ctx context.Context, p Partial) (*Document, error) {
	s.mu.Lock()
	if !s.initialized {
		s.mu.Unlock()
		return nil, ErrNotInitialized
	}
	merged := s.doc.Clone()
	p.apply(merged)
	s.doc = merged
	snapshot := merged.Clone()
	result := merged.Clone()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	return result, nil
}

// SetTheme is a convenience for the most common single-field update.
func (s *Session) SetTheme(ctx context.Context, theme Theme) (*Document, error) {
	return s.Update(ctx, Partial{Theme: &theme})
}

// Flush blocks until all scheduled background persists have finished.
func (s *Session) Flush() {
	s.saves.Wait()
}

func (s *Session) persist(ctx context.Context, snapshot *Document) {
	// Detach from the request context so an aborted request cannot
	// cancel a persist that the caller already observed as accepted.
	ctx = context.WithoutCancel(ctx)
	s.saves.Add(1)
	go func() {
		defer s.saves.Done()
		if err := s.store.Save(ctx, s.profileID, snapshot); err != nil {
			s.onSaveError(s.profileID, err)
		}
	}()
}
