// Package loader turns files, byte uploads and URLs into contract text.
package loader

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/ppiankov/contractlens/internal/util"
)

var (
	// ErrUnsupportedFormat is returned for extensions with no parser or outside the allow list
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrTooLarge is returned when a document exceeds the configured size limit
	ErrTooLarge = errors.New("document too large")
	// ErrDisallowed is returned when robots.txt forbids fetching a URL
	ErrDisallowed = errors.New("disallowed by robots.txt")
	// ErrEmpty is returned for zero-byte input
	ErrEmpty = errors.New("document is empty")
)

// Document is a loaded contract ready for analysis
type Document struct {
	Name      string    `json:"name"`
	Format    string    `json:"format"`
	Source    string    `json:"source,omitempty"` // Path or URL the bytes came from
	Text      string    `json:"-"`                // Extracted text, as written
	Analyzed  string    `json:"-"`                // Text handed to the analysis core
	Detection Detection `json:"language"`
	PageCount int       `json:"page_count,omitempty"`
	WordCount int       `json:"word_count"`
	SHA256    string    `json:"sha256"`
	SizeBytes int       `json:"size_bytes"`
}

// Options control what the loader accepts and how it prepares text
type Options struct {
	MaxSize           int64    // Bytes; zero disables the limit
	AllowedExtensions []string // With leading dot; empty allows every registered format
	NormalizeHindi    bool
	RespectRobots     bool
}

// Throttle paces outbound requests per host
type Throttle interface {
	WaitWithDelay(ctx context.Context, rawURL string, delay time.Duration) error
}

// Loader reads documents through a parser registry
type Loader struct {
	opts     Options
	registry *Registry
	fetcher  *Fetcher
	robots   *RobotsChecker
	throttle Throttle
	logger   *slog.Logger
}

// New creates a loader for local files and uploads. Attach a fetcher with WithFetcher to load URLs.
func New(opts Options, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{opts: opts, registry: NewRegistry(), logger: logger}
}

// WithFetcher enables URL loading. robots and throttle may be nil.
func (l *Loader) WithFetcher(fetcher *Fetcher, robots *RobotsChecker, throttle Throttle) *Loader {
	l.fetcher = fetcher
	l.robots = robots
	l.throttle = throttle
	return l
}

// Registry exposes the parser registry for custom formats
func (l *Loader) Registry() *Registry {
	return l.registry
}

// Load dispatches on the source: http(s) URLs are fetched, anything else is read from disk
func (l *Loader) Load(ctx context.Context, source string) (*Document, error) {
	if IsURL(source) {
		return l.LoadURL(ctx, source)
	}
	return l.LoadFile(ctx, source)
}

// LoadFile reads and parses a local document
func (l *Loader) LoadFile(ctx context.Context, path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if l.opts.MaxSize > 0 && info.Size() > l.opts.MaxSize {
		return nil, fmt.Errorf("%w: %s is %d bytes (max %d)", ErrTooLarge, path, info.Size(), l.opts.MaxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := l.LoadBytes(ctx, filepath.Base(path), data)
	if err != nil {
		return nil, err
	}
	doc.Source = path
	return doc, nil
}

// LoadURL fetches a document, honouring robots.txt and the per-host throttle when configured
func (l *Loader) LoadURL(ctx context.Context, rawURL string) (*Document, error) {
	if l.fetcher == nil {
		return nil, fmt.Errorf("load %s: URL loading is not configured", rawURL)
	}

	var delay time.Duration
	if l.opts.RespectRobots && l.robots != nil {
		allowed, crawlDelay, err := l.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("check robots.txt: %w", err)
		}
		if !allowed {
			return nil, fmt.Errorf("%w: %s", ErrDisallowed, rawURL)
		}
		delay = crawlDelay
	}
	if l.throttle != nil {
		if err := l.throttle.WaitWithDelay(ctx, rawURL, delay); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	start := time.Now()
	result, err := l.fetcher.FetchWithRetry(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", rawURL, err)
	}
	l.logger.Debug("fetched document", "url", result.FinalURL, "bytes", len(result.Body), "duration", time.Since(start))

	doc, err := l.parse(ctx, result.Name, result.Format(), result.Body)
	if err != nil {
		return nil, err
	}
	doc.Source = result.FinalURL
	return doc, nil
}

// LoadBytes parses an in-memory document; name supplies the format through its extension
func (l *Loader) LoadBytes(ctx context.Context, name string, data []byte) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return nil, fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, name)
	}
	if len(l.opts.AllowedExtensions) > 0 && !slices.Contains(l.opts.AllowedExtensions, ext) {
		return nil, fmt.Errorf("%w: %s (allowed: %s)", ErrUnsupportedFormat, ext, strings.Join(l.opts.AllowedExtensions, ", "))
	}
	return l.parse(ctx, name, strings.TrimPrefix(ext, "."), data)
}

func (l *Loader) parse(ctx context.Context, name, format string, data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, name)
	}
	if l.opts.MaxSize > 0 && int64(len(data)) > l.opts.MaxSize {
		return nil, fmt.Errorf("%w: %s is %d bytes (max %d)", ErrTooLarge, name, len(data), l.opts.MaxSize)
	}

	parser, err := l.registry.Get(format)
	if err != nil {
		return nil, err
	}
	parsed, err := parser.Parse(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	text := strings.ToValidUTF8(parsed.Text, "\uFFFD")
	detection := DetectLanguage(text)
	analyzed := text
	if l.opts.NormalizeHindi && detection.Language == Hindi {
		analyzed = NormalizeHindi(text)
	}

	sum := sha256.Sum256(data)
	doc := &Document{
		Name:      name,
		Format:    format,
		Text:      text,
		Analyzed:  analyzed,
		Detection: detection,
		PageCount: parsed.Pages,
		WordCount: util.WordCount(text),
		SHA256:    hex.EncodeToString(sum[:]),
		SizeBytes: len(data),
	}
	l.logger.Debug("loaded document", "name", name, "format", format, "language", detection.Language, "words", doc.WordCount)
	return doc, nil
}

// IsURL reports whether source is an http or https URL
func IsURL(source string) bool {
	u, err := url.Parse(source)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
