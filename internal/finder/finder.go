// Package finder locates the MP3 files of an album directory and reads
// their existing tags.
package finder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/handiism/tagg/internal/audio"
	"github.com/handiism/tagg/internal/model"
	"golang.org/x/sync/errgroup"
)

// DefaultExtensions are the file extensions looked up when none are given.
var DefaultExtensions = []string{".mp3"}

// DefaultConcurrency bounds the number of files read at once.
const DefaultConcurrency = 8

// ErrNoTracks is returned when a directory holds no matching file.
var ErrNoTracks = errors.New("no tracks found")

// TagReader reads the tags of one file.
type TagReader func(path string) (model.FileInput, error)

// Finder lists album files and reads their tags concurrently.
type Finder struct {
	exts        []string
	concurrency int
	read        TagReader
}

// New creates a Finder matching exts (case-insensitive, with or without
// the leading dot). Empty exts means DefaultExtensions and concurrency < 1
// means DefaultConcurrency.
func New(exts []string, concurrency int) *Finder {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	normalized := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	return &Finder{exts: normalized, concurrency: concurrency, read: audio.ReadTags}
}

// WithTagReader replaces the tag reader, mainly for tests.
func (f *Finder) WithTagReader(read TagReader) *Finder {
	if read != nil {
		f.read = read
	}
	return f
}

// Paths returns the matching regular files of dir, sorted by name.
func (f *Finder) Paths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !f.matches(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoTracks)
	}
	return paths, nil
}

func (f *Finder) matches(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range f.exts {
		if ext == want {
			return true
		}
	}
	return false
}

// Find returns the tags of every matching file of dir, in file name order.
func (f *Finder) Find(ctx context.Context, dir string) ([]model.FileInput, error) {
	paths, err := f.Paths(dir)
	if err != nil {
		return nil, err
	}

	items := make([]model.FileInput, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			item, err := f.read(path)
			if err != nil {
				return fmt.Errorf("read tags of %s: %w", path, err)
			}
			items[i] = item
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}
