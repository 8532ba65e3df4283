package download

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ytget/image-generator/internal/imaging"
	"github.com/ytget/image-generator/internal/model"
	"github.com/ytget/image-generator/internal/photoapi"
)

// fakeSource is an in-memory PhotoSource
type fakeSource struct {
	mu        sync.Mutex
	photo     *photoapi.Photo
	searchErr error
	trackErr  error
	images    map[string][]byte
	fetchErr  map[string]error

	searchCalls int
	trackCalls  int
	fetchCalls  []string
}

func (f *fakeSource) RandomPhoto(ctx context.Context, query string) (*photoapi.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls++
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	photo := *f.photo
	return &photo, nil
}

func (f *fakeSource) TrackDownload(ctx context.Context, photoID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trackCalls++
	return f.trackErr
}

func (f *fakeSource) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchCalls = append(f.fetchCalls, imageURL)
	if err := f.fetchErr[imageURL]; err != nil {
		return nil, err
	}
	data, ok := f.images[imageURL]
	if !ok {
		return nil, &photoapi.StatusError{Op: photoapi.OpFetch, StatusCode: http.StatusNotFound, Status: "404 Not Found"}
	}
	return data, nil
}

func (f *fakeSource) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.searchCalls + f.trackCalls + len(f.fetchCalls)
}

func testJPEG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 90, 60))
	for y := 0; y < 60; y++ {
		for x := 0; x < 90; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: uint8(x), B: uint8(y), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("Failed to encode JPEG: %v", err)
	}
	return buf.Bytes()
}

func newTestSource(t *testing.T) *fakeSource {
	photo := &photoapi.Photo{ID: "abc123"}
	photo.URLs.Regular = "u1"
	photo.URLs.Full = "u2"
	photo.User.Name = "Jane Doe"
	return &fakeSource{
		photo:    photo,
		images:   map[string][]byte{"u1": testJPEG(t), "u2": []byte("B")},
		fetchErr: map[string]error{},
	}
}

func TestNewService(t *testing.T) {
	source := newTestSource(t)
	service := NewService(source)

	if service.source != source {
		t.Error("Expected service to use the provided source")
	}

	if _, ok := service.Current(); ok {
		t.Error("Expected no current photo after construction")
	}
}

func TestGenerate(t *testing.T) {
	source := newTestSource(t)
	service := NewService(source)

	photo, img, err := service.Generate(context.Background(), model.CategoryFood)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if photo.ID != "abc123" || photo.DisplayURL != "u1" || photo.FullURL != "u2" {
		t.Errorf("Unexpected photo: %+v", photo)
	}
	if photo.Category != model.CategoryFood {
		t.Errorf("Expected category Food, got %s", photo.Category)
	}
	if photo.Author != "Jane Doe" {
		t.Errorf("Expected author Jane Doe, got %s", photo.Author)
	}

	bounds := img.Bounds()
	if bounds.Dx() != imaging.DisplayWidth || bounds.Dy() != imaging.DisplayHeight {
		t.Errorf("Expected %dx%d display image, got %v", imaging.DisplayWidth, imaging.DisplayHeight, bounds)
	}

	current, ok := service.Current()
	if !ok || current.ID != "abc123" {
		t.Errorf("Expected current photo abc123, got %+v", current)
	}

	if len(source.fetchCalls) != 1 || source.fetchCalls[0] != "u1" {
		t.Errorf("Expected a single fetch of u1, got %v", source.fetchCalls)
	}
}

func TestGenerate_InvalidCategory(t *testing.T) {
	source := newTestSource(t)
	service := NewService(source)

	_, _, err := service.Generate(context.Background(), model.CategoryPlaceholder)
	if !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("Expected ErrInvalidCategory, got %v", err)
	}
	if source.totalCalls() != 0 {
		t.Errorf("Expected no API calls, got %d", source.totalCalls())
	}
}

func TestGenerate_FailureKeepsPreviousPhoto(t *testing.T) {
	source := newTestSource(t)
	service := NewService(source)

	if _, _, err := service.Generate(context.Background(), model.CategoryFood); err != nil {
		t.Fatalf("Initial generate failed: %v", err)
	}

	tests := []struct {
		name  string
		setup func(*fakeSource)
	}{
		{"search status", func(f *fakeSource) {
			f.searchErr = &photoapi.StatusError{Op: photoapi.OpSearch, StatusCode: 500, Status: "500 Internal Server Error"}
		}},
		{"malformed json", func(f *fakeSource) {
			f.searchErr = photoapi.ErrMalformedResponse
		}},
		{"image fetch", func(f *fakeSource) {
			f.photo = &photoapi.Photo{ID: "next"}
			f.photo.URLs.Regular = "u3"
			f.photo.URLs.Full = "u4"
		}},
		{"image decode", func(f *fakeSource) {
			f.photo = &photoapi.Photo{ID: "corrupt"}
			f.photo.URLs.Regular = "bad"
			f.photo.URLs.Full = "bad-full"
			f.images["bad"] = []byte("not an image")
		}},
	}

	for _, test := range tests {
		failing := newTestSource(t)
		test.setup(failing)
		service.SetSource(failing)

		_, _, err := service.Generate(context.Background(), model.CategoryArt)
		if err == nil {
			t.Errorf("%s: expected error, got nil", test.name)
			continue
		}

		current, ok := service.Current()
		if !ok || current.ID != "abc123" {
			t.Errorf("%s: expected previous photo to stay current, got %+v", test.name, current)
		}
	}
}

func TestGenerate_DecodeError(t *testing.T) {
	source := newTestSource(t)
	source.images["u1"] = []byte("garbage")
	service := NewService(source)

	_, _, err := service.Generate(context.Background(), model.CategoryNature)
	if !errors.Is(err, imaging.ErrDecode) {
		t.Errorf("Expected imaging.ErrDecode, got %v", err)
	}
	if _, ok := service.Current(); ok {
		t.Error("Expected no current photo after a decode failure")
	}
}

func TestTrackDownload_NoPhoto(t *testing.T) {
	source := newTestSource(t)
	service := NewService(source)

	_, err := service.TrackDownload(context.Background())
	if !errors.Is(err, ErrNoPhoto) {
		t.Errorf("Expected ErrNoPhoto, got %v", err)
	}
	if source.totalCalls() != 0 {
		t.Errorf("Expected no API calls, got %d", source.totalCalls())
	}
}

func TestTrackDownload_Error(t *testing.T) {
	source := newTestSource(t)
	service := NewService(source)
	if _, _, err := service.Generate(context.Background(), model.CategoryFood); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	source.trackErr = &photoapi.StatusError{Op: photoapi.OpTrack, StatusCode: 403, Status: "403 Forbidden"}
	_, err := service.TrackDownload(context.Background())

	var statusErr *photoapi.StatusError
	if !errors.As(err, &statusErr) {
		t.Errorf("Expected StatusError, got %v", err)
	}
}

func TestSavePhoto_Errors(t *testing.T) {
	source := newTestSource(t)
	service := NewService(source)
	photo := &model.Photo{ID: "abc123", FullURL: "u2"}

	if _, err := service.SavePhoto(context.Background(), nil, t.TempDir()); !errors.Is(err, ErrNoPhoto) {
		t.Errorf("Expected ErrNoPhoto, got %v", err)
	}

	if _, err := service.SavePhoto(context.Background(), photo, ""); !errors.Is(err, ErrNoDirectory) {
		t.Errorf("Expected ErrNoDirectory, got %v", err)
	}

	missingDir := filepath.Join(t.TempDir(), "missing")
	if _, err := service.SavePhoto(context.Background(), photo, missingDir); err == nil || !strings.Contains(err.Error(), "failed to save image") {
		t.Errorf("Expected save error for missing directory, got %v", err)
	}

	source.fetchErr["u2"] = errors.New("connection reset")
	if _, err := service.SavePhoto(context.Background(), photo, t.TempDir()); err == nil || !strings.Contains(err.Error(), "failed to download image") {
		t.Errorf("Expected download error, got %v", err)
	}
}

func TestUpdateCallback(t *testing.T) {
	service := NewService(newTestSource(t))

	var updated *model.Photo
	service.SetUpdateCallback(func(photo *model.Photo) {
		updated = photo
	})

	if _, _, err := service.Generate(context.Background(), model.CategoryMusic); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if updated == nil || updated.ID != "abc123" {
		t.Errorf("Expected update callback with photo abc123, got %+v", updated)
	}
}

func TestGenerateRequestID(t *testing.T) {
	id1 := generateRequestID()
	id2 := generateRequestID()

	if id1 == id2 {
		t.Error("Expected different request IDs")
	}

	if !strings.HasPrefix(id1, "req-") {
		t.Errorf("Expected ID to start with 'req-', got: %s", id1)
	}

	// req- + 36 chars for UUID
	if len(id1) != len("req-")+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len("req-")+36, len(id1), id1)
	}
}

// TestEndToEnd drives the real API client against a test server:
// Food -> abc123 -> display u1 -> track -> save u2 into a directory.
func TestEndToEnd(t *testing.T) {
	jpegBytes := testJPEG(t)
	var tracked atomic.Bool

	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/photos/random":
			if r.URL.Query().Get("query") != "Food" {
				t.Errorf("Expected query Food, got %s", r.URL.Query().Get("query"))
			}
			_, _ = w.Write([]byte(`{"id":"abc123","urls":{"regular":"` + server.URL + `/u1","full":"` + server.URL + `/u2"}}`))
		case "/u1":
			_, _ = w.Write(jpegBytes)
		case "/photos/abc123/download":
			tracked.Store(true)
			_, _ = w.Write([]byte(`{}`))
		case "/u2":
			_, _ = w.Write([]byte("B"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := photoapi.NewClient(photoapi.Config{BaseURL: server.URL, AccessKey: "test-key"})
	service := NewService(client)

	if _, _, err := service.Generate(context.Background(), model.CategoryFood); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	photo, err := service.TrackDownload(context.Background())
	if err != nil {
		t.Fatalf("TrackDownload failed: %v", err)
	}
	if !tracked.Load() {
		t.Error("Expected download tracking request")
	}

	outDir := filepath.Join(t.TempDir(), "out")
	if err := os.Mkdir(outDir, 0755); err != nil {
		t.Fatalf("Failed to create out dir: %v", err)
	}

	path, err := service.SavePhoto(context.Background(), photo, outDir)
	if err != nil {
		t.Fatalf("SavePhoto failed: %v", err)
	}

	expectedPath := filepath.Join(outDir, "abc123.jpg")
	if path != expectedPath {
		t.Errorf("Expected path %s, got %s", expectedPath, path)
	}

	content, err := os.ReadFile(expectedPath)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if string(content) != "B" {
		t.Errorf("Expected content B, got %q", content)
	}
}
