package download

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/image-generator/internal/imaging"
	"github.com/ytget/image-generator/internal/model"
	"github.com/ytget/image-generator/internal/photoapi"
	"github.com/ytget/image-generator/internal/platform"
)

var (
	// ErrNoPhoto is returned when a download is requested before any photo was fetched
	ErrNoPhoto = errors.New("no image to download")

	// ErrInvalidCategory is returned when Generate is called without a real category
	ErrInvalidCategory = errors.New("invalid category")

	// ErrNoDirectory is returned when SavePhoto is called without a target directory
	ErrNoDirectory = errors.New("no target directory")
)

// Service handles photo fetch and save operations
type Service struct {
	source   PhotoSource
	current  *model.Photo
	mutex    sync.RWMutex
	onUpdate func(*model.Photo) // callback for UI updates
}

// NewService creates a new download service
func NewService(source PhotoSource) *Service {
	return &Service{source: source}
}

// SetUpdateCallback sets the callback invoked whenever the current photo changes
func (s *Service) SetUpdateCallback(callback func(*model.Photo)) {
	s.mutex.Lock()
	s.onUpdate = callback
	s.mutex.Unlock()
}

// SetSource replaces the photo API client
func (s *Service) SetSource(source PhotoSource) {
	s.mutex.Lock()
	s.source = source
	s.mutex.Unlock()
}

// Current returns the current photo
func (s *Service) Current() (*model.Photo, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.current == nil {
		return nil, false
	}
	photo := *s.current
	return &photo, true
}

// Generate fetches a random photo for the category, downloads its display
// variant, and resizes it to the display box
func (s *Service) Generate(ctx context.Context, category model.Category) (*model.Photo, image.Image, error) {
	if !category.IsValid() {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	requestID := generateRequestID()
	source := s.getSource()
	log.Printf("[%s] Generating photo for category %s", requestID, category)

	meta, err := source.RandomPhoto(ctx, category.String())
	if err != nil {
		log.Printf("[%s] Photo search failed: %v", requestID, err)
		return nil, nil, fmt.Errorf("failed to retrieve image: %w", err)
	}

	data, err := source.FetchImage(ctx, meta.URLs.Regular)
	if err != nil {
		log.Printf("[%s] Display image fetch failed for photo %s: %v", requestID, meta.ID, err)
		return nil, nil, fmt.Errorf("failed to retrieve image: %w", err)
	}

	img, err := imaging.PrepareForDisplay(data)
	if err != nil {
		log.Printf("[%s] Display image decode failed for photo %s: %v", requestID, meta.ID, err)
		return nil, nil, fmt.Errorf("failed to display image: %w", err)
	}

	photo := &model.Photo{
		ID:          meta.ID,
		DisplayURL:  meta.URLs.Regular,
		FullURL:     meta.URLs.Full,
		Description: strings.TrimSpace(meta.AltDescription),
		Author:      strings.TrimSpace(meta.User.Name),
		AuthorURL:   meta.User.Links.HTML,
		Category:    category,
		FetchedAt:   time.Now(),
	}

	s.mutex.Lock()
	s.current = photo
	s.mutex.Unlock()

	log.Printf("[%s] Photo %s ready (%d bytes)", requestID, photo.ID, len(data))
	s.notifyUpdate(photo)

	result := *photo
	return &result, img, nil
}

// TrackDownload sends the download-tracking ping for the current photo
func (s *Service) TrackDownload(ctx context.Context) (*model.Photo, error) {
	photo, ok := s.Current()
	if !ok {
		return nil, ErrNoPhoto
	}

	if err := s.getSource().TrackDownload(ctx, photo.ID); err != nil {
		log.Printf("Download tracking failed for photo %s: %v", photo.ID, err)
		return nil, fmt.Errorf("failed to track download: %w", err)
	}

	log.Printf("Download tracked for photo %s", photo.ID)
	return photo, nil
}

// SavePhoto fetches the full-resolution image and writes it to <dir>/<id>.jpg,
// replacing any existing file
func (s *Service) SavePhoto(ctx context.Context, photo *model.Photo, dir string) (string, error) {
	if photo == nil {
		return "", ErrNoPhoto
	}
	if strings.TrimSpace(dir) == "" {
		return "", ErrNoDirectory
	}

	data, err := s.getSource().FetchImage(ctx, photo.FullURL)
	if err != nil {
		log.Printf("Full image fetch failed for photo %s: %v", photo.ID, err)
		return "", fmt.Errorf("failed to download image: %w", err)
	}

	path := filepath.Join(dir, photo.FileName())
	if err := platform.WriteFileAtomic(path, data); err != nil {
		log.Printf("Saving photo %s failed: %v", photo.ID, err)
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	log.Printf("Photo %s saved to %s (%d bytes)", photo.ID, path, len(data))
	return path, nil
}

// getSource returns the current photo API client
func (s *Service) getSource() PhotoSource {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.source
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(photo *model.Photo) {
	s.mutex.RLock()
	callback := s.onUpdate
	s.mutex.RUnlock()

	if callback != nil {
		result := *photo
		callback(&result)
	}
}

// generateRequestID generates a unique ID used to correlate log lines of one fetch
func generateRequestID() string {
	return "req-" + uuid.NewString()
}

var _ Downloader = (*Service)(nil)
var _ PhotoSource = (*photoapi.Client)(nil)
