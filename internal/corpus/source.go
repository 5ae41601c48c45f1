// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus produces the ordered lines of text a word graph is built
// from. Sources read a local file, standard input, an HTTP URL, or a named
// corpus previously imported into the SQLite library.
package corpus

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/graph-poet/internal/httputil"
	"github.com/pdiddy/graph-poet/pkg/types"
)

// ErrUnavailable reports that a corpus could not be read. Every Source
// wraps its failures with it.
var ErrUnavailable = errors.New("corpus unavailable")

// ErrNotFound reports that a named corpus is not in the library.
var ErrNotFound = errors.New("corpus not found")

// maxLineSize bounds a single corpus line.
const maxLineSize = 4 << 20

// Source yields corpus lines in order.
type Source interface {
	// Lines returns every line of the corpus. Line terminators are removed.
	Lines(ctx context.Context) ([]string, error)

	// Name identifies the source in messages and snapshots.
	Name() string
}

// FileSource reads a local text file.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return s.Path }

// Lines reads the file at s.Path.
func (s FileSource) Lines(ctx context.Context) ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer f.Close()

	lines, err := readLines(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrUnavailable, s.Path, err)
	}
	return lines, nil
}

// ReaderSource reads lines from an arbitrary reader, typically stdin.
// It can be consumed only once.
type ReaderSource struct {
	Label  string
	Reader io.Reader
}

func (s ReaderSource) Name() string { return s.Label }

// Lines reads s.Reader until EOF.
func (s ReaderSource) Lines(ctx context.Context) ([]string, error) {
	if s.Reader == nil {
		return nil, fmt.Errorf("%w: %s: no reader", ErrUnavailable, s.Label)
	}
	lines, err := readLines(ctx, s.Reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrUnavailable, s.Label, err)
	}
	return lines, nil
}

func readLines(ctx context.Context, r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// URLSource fetches a plain-text corpus over HTTP. Rate-limited and
// temporarily unavailable responses are retried.
type URLSource struct {
	URL        string
	Client     *http.Client
	UserAgent  string
	Token      string
	MaxRetries int
}

func (s URLSource) Name() string { return s.URL }

// Lines downloads s.URL and splits the body into lines.
func (s URLSource) Lines(ctx context.Context) ([]string, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %w", ErrUnavailable, err)
	}
	if s.UserAgent != "" {
		req.Header.Set("User-Agent", s.UserAgent)
	}
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, s.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %w", ErrUnavailable, s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: fetching %s: HTTP %d", ErrUnavailable, s.URL, resp.StatusCode)
	}

	lines, err := readLines(ctx, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrUnavailable, s.URL, err)
	}
	return lines, nil
}

// LibrarySource reads a named corpus from the library in Dir. The library
// is opened and closed on every call, and is never created by a read.
type LibrarySource struct {
	Dir    string
	Corpus string
}

func (s LibrarySource) Name() string { return s.Corpus }

// Lines loads the stored lines of s.Corpus.
func (s LibrarySource) Lines(ctx context.Context) ([]string, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if _, err := os.Stat(filepath.Join(dir, dbFile)); err != nil {
		return nil, fmt.Errorf("%w: no corpus library in %s: %w", ErrUnavailable, dir, err)
	}

	store, err := OpenStore(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer store.Close()
	return store.Lines(ctx, s.Corpus)
}

// Open selects a Source from cfg. A library name takes precedence over a
// URL, and a URL over a path. A path of "-" reads stdin.
func Open(cfg types.CorpusConfig, stdin io.Reader) (Source, error) {
	switch {
	case cfg.Name != "":
		return LibrarySource{Dir: cfg.LibraryDir, Corpus: cfg.Name}, nil
	case cfg.URL != "":
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		return URLSource{
			URL:        cfg.URL,
			Client:     &http.Client{Timeout: timeout},
			UserAgent:  cfg.UserAgent,
			Token:      cfg.Token,
			MaxRetries: cfg.MaxRetries,
		}, nil
	case cfg.Path == "-":
		return ReaderSource{Label: "stdin", Reader: stdin}, nil
	case cfg.Path != "":
		return FileSource{Path: cfg.Path}, nil
	default:
		return nil, fmt.Errorf("no corpus configured: provide --corpus, --url, or --name")
	}
}
