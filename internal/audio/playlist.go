package audio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/handiism/tagg/internal/model"
)

// PlaylistCreator generates a playlist of the tagged files of an album.
//
// Track paths in the playlist are relative (just the filename), assuming the
// playlist file is saved in the same directory as the tracks. Durations are
// not known to the tagger and are written as unknown.
//
// Example:
//
//	creator := NewPlaylistCreator(model.PlaylistFormatM3U, true)
//	content := creator.CreatePlaylist("Meddle", files)
//
//	// Result:
//	// #EXTM3U
//	// #EXTINF:-1,Pink Floyd - One of These Days
//	// 01 - One of These Days.mp3
type PlaylistCreator struct {
	format   model.PlaylistFormat
	extended bool // For M3U: include EXTINF lines
}

// NewPlaylistCreator creates a new PlaylistCreator.
//
// extended only applies to M3U and adds #EXTINF lines.
func NewPlaylistCreator(format model.PlaylistFormat, extended bool) *PlaylistCreator {
	return &PlaylistCreator{
		format:   format,
		extended: extended,
	}
}

// Extension returns the playlist file extension, including the dot.
func (p *PlaylistCreator) Extension() string {
	return p.format.Extension()
}

// CreatePlaylist generates playlist content for files, in the given order.
func (p *PlaylistCreator) CreatePlaylist(title string, files []model.FileOutput) string {
	switch p.format {
	case model.PlaylistFormatPLS:
		return p.createPLS(files)
	case model.PlaylistFormatWPL:
		return p.createSMIL(`<?wpl version="1.0"?>`, title, files, false)
	case model.PlaylistFormatZPL:
		return p.createSMIL(`<?zpl version="2.0"?>`, title, files, true)
	default:
		return p.createM3U(files)
	}
}

func (p *PlaylistCreator) createM3U(files []model.FileOutput) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
	}
	for _, f := range files {
		if p.extended {
			fmt.Fprintf(&sb, "#EXTINF:-1,%s - %s\n", f.Artist, f.Title)
		}
		sb.WriteString(filepath.Base(f.Path) + "\n")
	}

	return sb.String()
}

// createPLS generates an INI-style PLS playlist.
func (p *PlaylistCreator) createPLS(files []model.FileOutput) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")
	for i, f := range files {
		idx := i + 1
		fmt.Fprintf(&sb, "File%d=%s\n", idx, filepath.Base(f.Path))
		fmt.Fprintf(&sb, "Title%d=%s - %s\n", idx, f.Artist, f.Title)
		fmt.Fprintf(&sb, "Length%d=-1\n", idx)
	}
	fmt.Fprintf(&sb, "NumberOfEntries=%d\n", len(files))
	sb.WriteString("Version=2\n")

	return sb.String()
}

// createSMIL generates the XML playlists of Windows Media Player (WPL) and
// Zune (ZPL). ZPL adds per-track metadata attributes.
func (p *PlaylistCreator) createSMIL(header, title string, files []model.FileOutput, detailed bool) string {
	var sb strings.Builder

	sb.WriteString(header + "\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	fmt.Fprintf(&sb, "    <title>%s</title>\n", escapeXML(title))
	if detailed {
		sb.WriteString("    <meta name=\"Generator\" content=\"tagg\"/>\n")
		fmt.Fprintf(&sb, "    <meta name=\"ItemCount\" content=\"%d\"/>\n", len(files))
	}
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, f := range files {
		src := escapeXML(filepath.Base(f.Path))
		if !detailed {
			fmt.Fprintf(&sb, "      <media src=\"%s\"/>\n", src)
			continue
		}
		fmt.Fprintf(&sb, "      <media src=\"%s\" albumTitle=\"%s\" albumArtist=\"%s\" trackTitle=\"%s\" trackArtist=\"%s\"/>\n",
			src,
			escapeXML(f.Album),
			escapeXML(f.AlbumArtist),
			escapeXML(f.Title),
			escapeXML(f.Artist))
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

// escapeXML escapes special XML characters in a string.
func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
