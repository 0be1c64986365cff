package document

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Theme selects the public rendering variant for a site.
type Theme string

const (
	ThemeLuxury  Theme = "luxury"
	ThemeBold    Theme = "bold"
	ThemeSoft    Theme = "soft"
	ThemeMinimal Theme = "minimal"
)

// Valid reports whether t is a member of the theme enumeration.
func (t Theme) Valid() bool {
	switch t {
	case ThemeLuxury, ThemeBold, ThemeSoft, ThemeMinimal:
		return true
	}
	return false
}

// AvailabilityStatus is the coarse booking state shown on a site.
type AvailabilityStatus string

const (
	StatusAvailable   AvailabilityStatus = "available"
	StatusLimited     AvailabilityStatus = "limited"
	StatusUnavailable AvailabilityStatus = "unavailable"
)

// Valid reports whether s is a member of the status enumeration.
func (s AvailabilityStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusLimited, StatusUnavailable:
		return true
	}
	return false
}

// SocialLinks holds optional social handles.
type SocialLinks struct {
	Twitter   string `json:"twitter,omitempty"   doc:"Twitter handle"`
	Instagram string `json:"instagram,omitempty" doc:"Instagram handle"`
}

// ProfileInfo is the provider's public identity block.
type ProfileInfo struct {
	Name         string       `json:"name"                   doc:"Display name"       example:"Jane Doe"`
	Tagline      string       `json:"tagline"                doc:"Short tagline"`
	Bio          string       `json:"bio"                    doc:"Multi-line biography"`
	Location     string       `json:"location"               doc:"Location string"    example:"New York, NY"`
	ContactEmail string       `json:"contactEmail"           doc:"Contact email"      example:"jane@example.com"`
	ContactPhone string       `json:"contactPhone,omitempty" doc:"Optional phone"`
	WhatsApp     string       `json:"whatsapp,omitempty"     doc:"Optional messaging handle"`
	Socials      *SocialLinks `json:"socials,omitempty"      doc:"Optional social handles"`
}

// ServiceItem is one offered service.
type ServiceItem struct {
	ID          string `json:"id"                 doc:"Unique entry id within the document"`
	Name        string `json:"name"               doc:"Service name"`
	Description string `json:"description"        doc:"Service description"`
	Rate        string `json:"rate"               doc:"Free-text rate, not numeric" example:"300"`
	Duration    string `json:"duration,omitempty" doc:"Optional duration"          example:"2 hours"`
}

// ImageItem is one gallery entry.
type ImageItem struct {
	ID       string   `json:"id"                 doc:"Unique entry id within the document"`
	URL      string   `json:"url"                doc:"Public retrieval URL"`
	Caption  string   `json:"caption,omitempty"  doc:"Optional caption"`
	Tags     []string `json:"tags,omitempty"     doc:"Optional tag set"`
	Enhanced bool     `json:"enhanced,omitempty" doc:"Optional enhanced flag"`
}

// AvailabilityInfo describes current booking availability.
type AvailabilityInfo struct {
	Status   AvailabilityStatus `json:"status" enum:"available,limited,unavailable" doc:"Availability status"`
	Schedule string             `json:"schedule"        doc:"Free-text schedule" example:"Mon-Fri: 6pm - 12am"`
	Notes    string             `json:"notes,omitempty" doc:"Optional notes"`
}

// Document is the single persisted configuration record for one
// service-provider site. It is always replaced as a whole; there is no
// partial-field patch semantic at the storage boundary.
type Document struct {
	ID           string           `json:"id" required:"false" doc:"Profile id, equals the storage key stem"`
	Theme        Theme            `json:"theme" enum:"luxury,bold,soft,minimal" doc:"Visual theme"`
	Profile      ProfileInfo      `json:"profile"`
	Services     []ServiceItem    `json:"services"`
	Gallery      []ImageItem      `json:"gallery"`
	Availability AvailabilityInfo `json:"availability"`
	HeroImageID  string           `json:"heroImageId,omitempty" doc:"Gallery entry used as hero image"`
}

// Default returns the seed document used for never-before-seen profiles.
func Default() *Document {
	return &Document{
		ID:    "default",
		Theme: ThemeLuxury,
		Profile: ProfileInfo{
			Name:         "Jane Doe",
			Tagline:      "Exclusive & Elegant",
			Bio:          "Professional companion for high-end events and private dinners.",
			Location:     "New York, NY",
			ContactEmail: "jane@example.com",
		},
		Services: []ServiceItem{
			{
				ID:          "1",
				Name:        "Dinner Date",
				Description: "A romantic evening at a fine dining establishment.",
				Rate:        "300",
				Duration:    "2 hours",
			},
		},
		Gallery: []ImageItem{},
		Availability: AvailabilityInfo{
			Status:   StatusAvailable,
			Schedule: "Mon-Fri: 6pm - 12am",
		},
	}
}

// Clone returns a deep copy so callers can hand out snapshots without
// sharing mutable slices with internal state.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := *d
	out.Services = slices.Clone(d.Services)
	if d.Gallery != nil {
		out.Gallery = make([]ImageItem, len(d.Gallery))
		for i, img := range d.Gallery {
			img.Tags = slices.Clone(img.Tags)
			out.Gallery[i] = img
		}
	}
	if d.Profile.Socials != nil {
		socials := *d.Profile.Socials
		out.Profile.Socials = &socials
	}
	return &out
}

// Validate checks the document invariants: non-empty id, enum membership,
// and per-document uniqueness of service and gallery entry ids.
func (d *Document) Validate() error {
	if d.ID == "" {
		return errors.New("document id is required")
	}
	if !d.Theme.Valid() {
		return fmt.Errorf("invalid theme %q", d.Theme)
	}
	if !d.Availability.Status.Valid() {
		return fmt.Errorf("invalid availability status %q", d.Availability.Status)
	}
	seen := make(map[string]struct{}, len(d.Services))
	for _, svc := range d.Services {
		if _, dup := seen[svc.ID]; dup {
			return fmt.Errorf("duplicate service id %q", svc.ID)
		}
		seen[svc.ID] = struct{}{}
	}
	seen = make(map[string]struct{}, len(d.Gallery))
	for _, img := range d.Gallery {
		if _, dup := seen[img.ID]; dup {
			return fmt.Errorf("duplicate gallery id %q", img.ID)
		}
		seen[img.ID] = struct{}{}
	}
	return nil
}

// EnsureEntryIDs fills in generated ids for service and gallery entries
// that were submitted without one.
func (d *Document) EnsureEntryIDs() {
	for i := range d.Services {
		if d.Services[i].ID == "" {
			d.Services[i].ID = NewEntryID()
		}
	}
	for i := range d.Gallery {
		if d.Gallery[i].ID == "" {
			d.Gallery[i].ID = NewEntryID()
		}
	}
}

// NewEntryID returns a fresh unique id for a service or gallery entry.
func NewEntryID() string {
	return uuid.NewString()
}

// SanitizeProfileID derives a profile id from a display name: lowercased,
// with every character outside [a-z0-9-] replaced by '-'.
func SanitizeProfileID(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '-'
		}
	}, strings.ToLower(name))
}
