package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/tagg/internal/album"
	"github.com/handiism/tagg/internal/config"
	"github.com/handiism/tagg/internal/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var headingStyle = lipgloss.NewStyle().Bold(true)

// renderSummary shows the album values followed by one row per file, with
// the new file name when renaming is on.
func renderSummary(rec album.Output, files []model.FileOutput, settings *config.Settings) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render(fmt.Sprintf("%s - %s (%d)", rec.Artist, rec.Album, rec.Year)))
	b.WriteString("\n")
	if rec.AlbumArtist != rec.Artist {
		fmt.Fprintf(&b, "Album artist: %s\n", rec.AlbumArtist)
	}
	fmt.Fprintf(&b, "Tracks: %d, discs: %d\n", rec.TotalTracks, rec.TotalDiscs)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := table.Row{"File", "Track", "Disc", "Title"}
	if settings.Rename {
		header = append(header, "New name")
	}
	tw.AppendHeader(header)

	for _, f := range files {
		row := table.Row{filepath.Base(f.Path), f.TrackNumber, f.DiscNumber, f.Title}
		if settings.Rename {
			row = append(row, f.FileName(settings.FileNameFormat))
		}
		tw.AppendRow(row)
	}

	// numbers right, names left
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Track", Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Name: "Disc", Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	b.WriteString(tw.Render())
	return b.String()
}
