package ioutils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// id3v1Size is the fixed size of an ID3v1 trailer.
const id3v1Size = 128

var (
	invalidChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots = regexp.MustCompile(`\.+$`)
	runsOfSpaces = regexp.MustCompile(`\s+`)
)

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing. The write is skipped if ctx is done.
//
// Example:
//
//	playlistContent := []byte("#EXTM3U\n...")
//	err := WriteFile(ctx, "/music/playlist.m3u", playlistContent)
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// This function ensures filenames are valid across different operating systems,
// particularly Windows which has the most restrictive naming rules.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("Song: Part 1/2")     // Returns "Song_ Part 1_2"
//	SanitizeFileName("Track...")           // Returns "Track"
//	SanitizeFileName("Name   with  spaces") // Returns "Name with spaces"
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = runsOfSpaces.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// StripID3v1 removes an ID3v1 trailer from the end of the file at path.
//
// It reports whether a trailer was found. Files shorter than a trailer are
// left alone.
func StripID3v1(path string) (bool, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return false, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	size := info.Size()
	if size < id3v1Size {
		return false, nil
	}

	header := make([]byte, 3)
	if _, err := f.ReadAt(header, size-id3v1Size); err != nil && err != io.EOF {
		return false, fmt.Errorf("read id3v1 header: %w", err)
	}
	if !bytes.Equal(header, []byte("TAG")) {
		return false, nil
	}

	if err := f.Truncate(size - id3v1Size); err != nil {
		return false, fmt.Errorf("truncate id3v1: %w", err)
	}
	return true, nil
}

// coverNames are the file names looked up by FindCoverArt, in order of
// preference, without extension.
var coverNames = []string{"cover", "folder", "front", "albumart"}

var coverExts = []string{".jpg", ".jpeg", ".png"}

// FindCoverArt returns the path of a cover image stored next to the tracks
// in dir, or "" if there is none. Names are matched case-insensitively.
func FindCoverArt(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	byName := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		byName[strings.ToLower(entry.Name())] = entry.Name()
	}

	for _, name := range coverNames {
		for _, ext := range coverExts {
			if actual, ok := byName[name+ext]; ok {
				return filepath.Join(dir, actual), nil
			}
		}
	}
	return "", nil
}
