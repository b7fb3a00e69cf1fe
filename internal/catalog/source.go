package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
)

// Source reads the full item collection from wherever the catalog lives.
// Implementations return a *LoadError on failure.
type Source interface {
	Load(ctx context.Context) ([]Item, error)
	Location() string
}

// Ensure both sources implement Source at compile time.
var (
	_ Source = (*HTTPSource)(nil)
	_ Source = (*FileSource)(nil)
)

const (
	defaultUserAgent = "marquee/0.1"
	requestTimeout   = 10 * time.Second
	maxPayloadBytes  = 16 << 20
)

// NewSource picks an HTTP source for http(s) URLs and a file source for
// file:// URLs and plain paths. Other URL schemes are rejected.
func NewSource(location string) (Source, error) {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		return nil, fmt.Errorf("catalog location is empty")
	}
	lower := strings.ToLower(trimmed)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return NewHTTPSource(trimmed)
	case strings.HasPrefix(lower, "file://"):
		u, err := url.Parse(trimmed)
		if err != nil {
			return nil, fmt.Errorf("parse catalog location %q: %w", location, err)
		}
		return &FileSource{path: u.Path}, nil
	case strings.Contains(trimmed, "://"):
		return nil, fmt.Errorf("catalog location %q: unsupported scheme", location)
	default:
		return &FileSource{path: trimmed}, nil
	}
}

// HTTPSource fetches the catalog with a single GET request.
type HTTPSource struct {
	url       *url.URL
	http      *http.Client
	userAgent string
	maxBytes  int64
}

// NewHTTPSource builds an HTTPSource for the given absolute URL.
func NewHTTPSource(rawURL string) (*HTTPSource, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("parse catalog url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("catalog url %q: unsupported scheme %q", rawURL, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("catalog url %q: missing host", rawURL)
	}
	return &HTTPSource{
		url: u,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
		maxBytes:  maxPayloadBytes,
	}, nil
}

// Location returns the catalog URL.
func (s *HTTPSource) Location() string {
	if s == nil || s.url == nil {
		return ""
	}
	return s.url.String()
}

// Load performs the request and decodes the payload.
func (s *HTTPSource) Load(ctx context.Context) ([]Item, error) {
	if s == nil {
		return nil, fmt.Errorf("source is nil")
	}
	location := s.Location()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, transportError(location, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, transportError(location, fmt.Errorf("execute request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, transportError(location, fmt.Errorf("returned status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes+1))
	if err != nil {
		return nil, transportError(location, fmt.Errorf("read response: %w", err))
	}
	if int64(len(data)) > s.maxBytes {
		return nil, parseError(location, fmt.Errorf("payload exceeds %d bytes", s.maxBytes))
	}
	items, err := Decode(data)
	if err != nil {
		return nil, parseError(location, err)
	}
	return items, nil
}

// FileSource reads the catalog from a local JSON (or JSONC) file.
type FileSource struct {
	path string
}

// NewFileSource builds a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Location returns the file path.
func (s *FileSource) Location() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Load reads and decodes the file. Context cancellation is checked before
// the read; local reads are not interruptible.
func (s *FileSource) Load(ctx context.Context) ([]Item, error) {
	if s == nil {
		return nil, fmt.Errorf("source is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, transportError(s.path, err)
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, transportError(s.path, fmt.Errorf("read file: %w", err))
	}
	items, err := Decode(data)
	if err != nil {
		return nil, parseError(s.path, err)
	}
	return items, nil
}

// Decode parses a catalog payload: a JSON array of item records. Comments
// and trailing commas are tolerated. Duplicate IDs are rejected.
func Decode(data []byte) ([]Item, error) {
	clean := bytes.TrimSpace(jsonc.ToJSON(data))
	if len(clean) == 0 {
		return nil, errors.New("payload is empty")
	}
	if clean[0] != '[' {
		return nil, errors.New("payload is not an item sequence")
	}

	var items []Item
	if err := json.Unmarshal(clean, &items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}

	seen := make(map[int64]int, len(items))
	for i, item := range items {
		if prev, dup := seen[item.ID]; dup {
			return nil, fmt.Errorf("duplicate id %d at positions %d and %d", item.ID, prev, i)
		}
		seen[item.ID] = i
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}
