package epaper

import (
	"context"
	"io"
	"time"
)

// Repository defines the interface for edition persistence
type Repository interface {
	// CreateEdition stores a new edition
	CreateEdition(ctx context.Context, edition *Edition) error

	// GetEdition retrieves an edition by ID
	GetEdition(ctx context.Context, id string) (*Edition, error)

	// UpdateEdition replaces a stored edition
	UpdateEdition(ctx context.Context, edition *Edition) error

	// DeleteEdition removes an edition
	DeleteEdition(ctx context.Context, id string) error

	// ListEditions returns all editions in insertion order
	ListEditions(ctx context.Context) ([]*Edition, error)
}

// AssetStore defines the interface for binary asset backends (thumbnails,
// uploaded page renders, compressed images, generated images).
type AssetStore interface {
	// Upload stores an asset under the given key
	Upload(ctx context.Context, key string, reader io.Reader) error

	// UploadWithParams stores an asset with additional parameters
	UploadWithParams(ctx context.Context, reader io.Reader, params UploadParams) error

	// Download retrieves an asset
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete deletes an asset
	Delete(ctx context.Context, key string) error

	// GetAssetMeta retrieves metadata for a stored asset
	GetAssetMeta(ctx context.Context, key string) (*AssetMeta, error)
}

// TextGenerator produces editorial text from a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, cfg GenerationConfig) (string, error)
}

// ImageGenerator produces an image from a prompt, returned as a data URL.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string, cfg GenerationConfig) (string, error)
}

// EventSink defines the interface for event handling
type EventSink interface {
	// EditionCreated is fired when an edition is created
	EditionCreated(ctx context.Context, edition *Edition) error

	// EditionUpdated is fired when an edition is updated
	EditionUpdated(ctx context.Context, edition *Edition) error

	// EditionPublished is fired when a publish decision moves an edition out
	// of Draft
	EditionPublished(ctx context.Context, edition *Edition) error

	// EditionApproved is fired when a pending edition is approved
	EditionApproved(ctx context.Context, edition *Edition) error

	// EditionDeleted is fired when an edition is deleted
	EditionDeleted(ctx context.Context, editionID string) error
}

// AssetMeta contains metadata about a stored asset
type AssetMeta struct {
	Key         string
	Size        int64
	ContentType string
	UpdatedAt   time.Time
}

// UploadParams contains parameters for uploading an asset
type UploadParams struct {
	Key      string
	MimeType string
}
