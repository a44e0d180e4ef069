package audio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/bogem/id3v2"
	ioutils "github.com/handiism/tagg/internal/io"
	"github.com/handiism/tagg/internal/model"
)

// ErrTargetExists is returned when renaming would overwrite another file.
var ErrTargetExists = errors.New("target file already exists")

// TagConfig holds the tag writing configuration.
//
// Example:
//
//	cfg := &TagConfig{
//	    Version:        4,
//	    Rename:         true,
//	    FileNameFormat: "{number} - {title}.mp3",
//	    Preserve:       []string{"USLT"}, // keep lyrics
//	}
type TagConfig struct {
	// Version is the ID3v2 minor version to write, 3 or 4.
	Version byte

	// Rename moves each file to FileNameFormat after tagging.
	Rename bool

	// FileNameFormat is the model file name template.
	FileNameFormat string

	// Preserve lists frame IDs kept from the existing tag. Every other
	// frame is dropped.
	Preserve []string

	// Cover is JPEG data embedded as the front cover. Nil leaves covers
	// alone unless "APIC" is not preserved, in which case they are dropped.
	Cover []byte
}

// DefaultTagConfig returns the default tag configuration: ID3v2.4, rename
// to "07 - Title.mp3", nothing preserved.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		Version:        4,
		Rename:         true,
		FileNameFormat: model.DefaultFileNameFormat,
	}
}

// Writer writes edited tags to MP3 files.
//
// Example:
//
//	w := NewWriter(DefaultTagConfig())
//	newPath, err := w.Write(ctx, out)
//	if err != nil {
//	    log.Printf("Failed to tag %s: %v", out.Path, err)
//	}
type Writer struct {
	config *TagConfig
	logger *slog.Logger
}

// NewWriter creates a new Writer with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewWriter(config *TagConfig) *Writer {
	if config == nil {
		config = DefaultTagConfig()
	}
	if config.Version != 3 {
		config.Version = 4
	}
	return &Writer{config: config, logger: slog.New(slog.DiscardHandler)}
}

// WithLogger sets the logger used for per-file details.
func (w *Writer) WithLogger(logger *slog.Logger) *Writer {
	if logger != nil {
		w.logger = logger
	}
	return w
}

// Write replaces the tags of out.Path and returns the file's final path.
//
// This method:
//  1. Removes an ID3v1 trailer, if present
//  2. Drops the existing ID3v2 frames that are not preserved
//  3. Writes the album and track frames
//  4. Embeds cover art if configured
//  5. Renames the file if configured
func (w *Writer) Write(ctx context.Context, out model.FileOutput) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	removed, err := ioutils.StripID3v1(out.Path)
	if err != nil {
		return "", fmt.Errorf("remove id3v1 tag: %w", err)
	}
	if removed {
		w.logger.Debug("removed id3v1 tag", "path", out.Path)
	}

	tag, err := id3v2.Open(out.Path, id3v2.Options{Parse: true})
	if err != nil {
		return "", fmt.Errorf("open id3v2 tag: %w", err)
	}

	w.clearFrames(tag)
	w.setFrames(tag, out)

	if err := tag.Save(); err != nil {
		tag.Close()
		return "", fmt.Errorf("write id3v2 tag: %w", err)
	}
	if err := tag.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", out.Path, err)
	}

	if !w.config.Rename {
		return out.Path, nil
	}
	return w.rename(out)
}

// clearFrames drops every frame that is not preserved.
func (w *Writer) clearFrames(tag *id3v2.Tag) {
	keep := make(map[string]bool, len(w.config.Preserve))
	for _, id := range w.config.Preserve {
		keep[id] = true
	}
	if w.config.Cover != nil {
		keep["APIC"] = false
	}
	for id := range tag.AllFrames() {
		if !keep[id] {
			tag.DeleteFrames(id)
		}
	}
}

// setFrames writes the edited values. The year frame depends on the
// version: TDRC for v2.4, TYER for v2.3.
func (w *Writer) setFrames(tag *id3v2.Tag, out model.FileOutput) {
	tag.SetVersion(w.config.Version)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	tag.SetArtist(out.Artist)
	tag.AddTextFrame("TPE2", tag.DefaultEncoding(), out.AlbumArtist)
	tag.SetAlbum(out.Album)
	tag.SetYear(strconv.Itoa(out.Year))
	tag.SetTitle(out.Title)
	tag.AddTextFrame("TRCK", tag.DefaultEncoding(), out.TrackPosition())
	tag.AddTextFrame("TPOS", tag.DefaultEncoding(), out.DiscPosition())

	if w.config.Cover != nil {
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    "image/jpeg",
			PictureType: id3v2.PTFrontCover,
			Description: "Cover",
			Picture:     w.config.Cover,
		})
	}
}

// rename moves the file to its formatted name. It refuses to replace a
// different existing file.
func (w *Writer) rename(out model.FileOutput) (string, error) {
	target := out.RenamedPath(w.config.FileNameFormat)
	if target == out.Path {
		return target, nil
	}
	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("rename %s: %w: %s", out.Path, ErrTargetExists, target)
	}
	if err := os.Rename(out.Path, target); err != nil {
		return "", fmt.Errorf("rename file: %w", err)
	}
	w.logger.Debug("renamed", "from", out.Path, "to", target)
	return target, nil
}
