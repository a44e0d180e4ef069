// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Filename sanitization for cross-platform compatibility
//   - File writing and directory creation
//   - Stripping ID3v1 trailers from MP3 files
//   - Cover art lookup, resizing and format conversion
//
// # Filename Sanitization
//
// Use SanitizeFileName to remove invalid characters from filenames:
//
//	safe := ioutils.SanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
//
// # ID3v1
//
// ID3v2 tags live at the start of a file, ID3v1 tags in its last 128 bytes.
// StripID3v1 removes the latter so stale values cannot shadow the new tag:
//
//	removed, err := ioutils.StripID3v1("/music/01.mp3")
//
// # Image Processing
//
// FindCoverArt looks for cover.jpg, folder.png and similar files next to
// the tracks. The ImageService then turns the image into a JPEG no larger
// than the configured size:
//
//	path, _ := ioutils.FindCoverArt(dir)
//	cover, err := ioutils.NewImageService().PrepareCover(ctx, data, 1000)
package ioutils
