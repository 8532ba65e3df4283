package download

import (
	"context"
	"image"

	"github.com/ytget/image-generator/internal/model"
	"github.com/ytget/image-generator/internal/photoapi"
)

// PhotoSource is the subset of the photo API the service depends on.
type PhotoSource interface {
	RandomPhoto(ctx context.Context, query string) (*photoapi.Photo, error)
	TrackDownload(ctx context.Context, photoID string) error
	FetchImage(ctx context.Context, imageURL string) ([]byte, error)
}

// Downloader defines the interface for the download service.
type Downloader interface {
	SetUpdateCallback(func(*model.Photo))

	// Generate fetches a random photo for the category and returns it with its display image.
	// The current photo is replaced only when every step succeeds.
	Generate(ctx context.Context, category model.Category) (*model.Photo, image.Image, error)

	// Current returns the current photo, if any
	Current() (*model.Photo, bool)

	// TrackDownload sends the tracking ping for the current photo and returns it
	TrackDownload(ctx context.Context) (*model.Photo, error)

	// SavePhoto fetches the full-resolution bytes of photo and writes them into dir
	SavePhoto(ctx context.Context, photo *model.Photo, dir string) (string, error)

	// SetSource replaces the photo API client, e.g. after settings change
	SetSource(source PhotoSource)
}
