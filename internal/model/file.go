package model

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	ioutils "github.com/handiism/tagg/internal/io"
)

// DefaultFileNameFormat renames files to "07 - Title.mp3" or
// "02-07 - Title.mp3" on multi-disc albums.
const DefaultFileNameFormat = "{number} - {title}.mp3"

// FileInput holds the tag values found in one MP3 file.
//
// Empty strings and zero numbers mean the value is unknown.
type FileInput struct {
	// Path is the location of the MP3 file.
	Path string

	Artist      string
	AlbumArtist string
	Album       string
	Year        int
	Title       string

	TrackNumber int
	TotalTracks int
	DiscNumber  int
	TotalDiscs  int
}

// FileOutput holds the validated tag values to write to one MP3 file.
type FileOutput struct {
	// Path is the current location of the MP3 file.
	Path string

	Artist      string
	AlbumArtist string
	Album       string
	Year        int
	Title       string

	TrackNumber int
	TotalTracks int
	DiscNumber  int
	TotalDiscs  int
}

// MultiDisc reports whether the album spans more than one disc.
func (f *FileOutput) MultiDisc() bool {
	return f.TotalDiscs > 1
}

// Number returns the track position used in file names: "07", or "02-07"
// when the album has several discs.
func (f *FileOutput) Number() string {
	if f.MultiDisc() {
		return fmt.Sprintf("%02d-%02d", f.DiscNumber, f.TrackNumber)
	}
	return fmt.Sprintf("%02d", f.TrackNumber)
}

// TrackPosition returns the TRCK frame text, e.g. "07/12".
func (f *FileOutput) TrackPosition() string {
	return fmt.Sprintf("%02d/%02d", f.TrackNumber, f.TotalTracks)
}

// DiscPosition returns the TPOS frame text, e.g. "01/02".
func (f *FileOutput) DiscPosition() string {
	return fmt.Sprintf("%02d/%02d", f.DiscNumber, f.TotalDiscs)
}

// FileName renders format for this file.
//
// Invalid filename characters are replaced with underscores.
func (f *FileOutput) FileName(format string) string {
	if strings.TrimSpace(format) == "" {
		format = DefaultFileNameFormat
	}
	r := strings.NewReplacer(
		"{number}", f.Number(),
		"{tracknum}", fmt.Sprintf("%02d", f.TrackNumber),
		"{discnum}", fmt.Sprintf("%02d", f.DiscNumber),
		"{title}", f.Title,
		"{artist}", f.Artist,
		"{albumartist}", f.AlbumArtist,
		"{album}", f.Album,
		"{year}", strconv.Itoa(f.Year),
	)
	return ioutils.SanitizeFileName(r.Replace(format))
}

// RenamedPath returns the path the file gets after renaming: the rendered
// file name in the file's current directory.
func (f *FileOutput) RenamedPath(format string) string {
	dir := filepath.Dir(f.Path)
	fileName := f.FileName(format)
	filePath := filepath.Join(dir, fileName)

	// Limit total path length for Windows compatibility (MAX_PATH = 260)
	if len(filePath) >= 260 {
		ext := filepath.Ext(fileName)
		maxLen := 259 - len(dir) - 1 - len(ext)
		base := strings.TrimSuffix(fileName, ext)
		if maxLen > 0 && maxLen < len(base) {
			filePath = filepath.Join(dir, base[:maxLen]+ext)
		}
	}

	return filePath
}
