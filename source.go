package locnews

import (
	"context"
	"net/url"
	"time"
)

// Source represents a news feed that articles are collected from.
type Source struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	FeedURL   string    `json:"feedUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the source contains invalid fields.
func (s *Source) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "source name required")
	}
	if s.FeedURL == "" {
		return Errorf(EINVALID, "source feed URL required")
	}
	if u, err := url.Parse(s.FeedURL); err != nil || u.Host == "" {
		return Errorf(EINVALID, "source feed URL must be absolute: %q", s.FeedURL)
	}
	return nil
}

// SourceService represents a service for managing feed sources.
type SourceService interface {
	// CreateSource creates a new source.
	// Returns ECONFLICT if a source with the same name exists.
	CreateSource(ctx context.Context, source *Source) error

	// FindSourceByID retrieves a source by ID.
	// Returns ENOTFOUND if source does not exist.
	FindSourceByID(ctx context.Context, id string) (*Source, error)

	// FindSources retrieves sources matching the filter.
	FindSources(ctx context.Context, filter SourceFilter) ([]*Source, error)

	// UpdateSource updates an existing source.
	// Returns ENOTFOUND if source does not exist.
	UpdateSource(ctx context.Context, id string, upd SourceUpdate) (*Source, error)

	// DeleteSource permanently removes a source and all associated articles.
	// Returns ENOTFOUND if source does not exist.
	DeleteSource(ctx context.Context, id string) error
}

// SourceFilter represents a filter for FindSources.
type SourceFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SourceUpdate represents fields that can be updated on a source.
type SourceUpdate struct {
	Name    *string `json:"name"`
	FeedURL *string `json:"feedUrl"`
}
