package photoapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// API constants
const (
	DefaultBaseURL    = "https://api.unsplash.com"
	DefaultTimeout    = 30 * time.Second
	APIVersion        = "v1"
	OrientationParam  = "landscape"
	MaxImageSizeBytes = 64 << 20
	MaxJSONSizeBytes  = 1 << 20
)

// Operation names used in errors and logs
const (
	OpSearch = "search photo"
	OpTrack  = "track download"
	OpFetch  = "fetch image"
)

// Photo is the subset of the Unsplash photo object the app consumes
type Photo struct {
	ID             string `json:"id"`
	AltDescription string `json:"alt_description"`
	URLs           struct {
		Regular string `json:"regular"`
		Full    string `json:"full"`
	} `json:"urls"`
	User struct {
		Name  string `json:"name"`
		Links struct {
			HTML string `json:"html"`
		} `json:"links"`
	} `json:"user"`
}

// Config configures a Client
type Config struct {
	BaseURL   string
	AccessKey string
	Timeout   time.Duration
}

// Client talks to the photo API over HTTP
type Client struct {
	baseURL   string
	accessKey string
	http      *http.Client

	// Body size caps; larger responses fail with ErrResponseTooLarge
	maxImageBytes int64
	maxJSONBytes  int64
}

// NewClient creates a new API client, filling defaults for empty fields
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:   baseURL,
		accessKey: strings.TrimSpace(cfg.AccessKey),
		http:      &http.Client{Timeout: timeout},

		maxImageBytes: MaxImageSizeBytes,
		maxJSONBytes:  MaxJSONSizeBytes,
	}
}

// RandomPhoto fetches metadata of one random landscape photo for the query
func (c *Client) RandomPhoto(ctx context.Context, query string) (*Photo, error) {
	if c.accessKey == "" {
		return nil, ErrMissingAccessKey
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("orientation", OrientationParam)
	params.Set("client_id", c.accessKey)
	endpoint := c.baseURL + "/photos/random?" + params.Encode()

	body, err := c.get(ctx, OpSearch, endpoint, c.maxJSONBytes)
	if err != nil {
		return nil, err
	}

	var photo Photo
	if err := json.Unmarshal(body, &photo); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", OpSearch, ErrMalformedResponse, err)
	}
	if photo.ID == "" || photo.URLs.Regular == "" || photo.URLs.Full == "" {
		return nil, fmt.Errorf("%s: %w: missing id or image urls", OpSearch, ErrMalformedResponse)
	}
	return &photo, nil
}

// TrackDownload sends the usage-accounting ping required before a full-resolution download
func (c *Client) TrackDownload(ctx context.Context, photoID string) error {
	if c.accessKey == "" {
		return ErrMissingAccessKey
	}

	params := url.Values{}
	params.Set("client_id", c.accessKey)
	endpoint := c.baseURL + "/photos/" + url.PathEscape(photoID) + "/download?" + params.Encode()

	_, err := c.get(ctx, OpTrack, endpoint, c.maxJSONBytes)
	return err
}

// FetchImage downloads raw image bytes from an opaque URL returned by RandomPhoto
func (c *Client) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	return c.get(ctx, OpFetch, imageURL, c.maxImageBytes)
}

// get performs a GET request and returns the body of a 2xx response.
// Bodies longer than limit are rejected rather than truncated.
func (c *Client) get(ctx context.Context, op, endpoint string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &RequestError{Op: op, URL: redact(endpoint), Err: err}
	}
	req.Header.Set("Accept-Version", APIVersion)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RequestError{Op: op, URL: redact(endpoint), Err: unwrapURLError(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, MaxJSONSizeBytes))
		return nil, &StatusError{Op: op, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, &RequestError{Op: op, URL: redact(endpoint), Err: err}
	}
	if int64(len(body)) > limit {
		return nil, &RequestError{Op: op, URL: redact(endpoint), Err: fmt.Errorf("%w: more than %d bytes", ErrResponseTooLarge, limit)}
	}
	return body, nil
}

// redact removes the client_id value from a URL so keys never reach logs or dialogs
func redact(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return endpoint
	}
	q := u.Query()
	if q.Has("client_id") {
		q.Set("client_id", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
