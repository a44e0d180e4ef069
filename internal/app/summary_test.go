package app

import (
	"strings"
	"testing"

	"github.com/handiism/tagg/internal/album"
	"github.com/handiism/tagg/internal/config"
	"github.com/handiism/tagg/internal/model"
)

func TestRenderSummary(t *testing.T) {
	rec := album.Output{Artist: "Pink Floyd", AlbumArtist: "Various", Album: "Meddle", Year: 1971, TotalTracks: 6, TotalDiscs: 1}
	files := []model.FileOutput{
		{Path: "/music/track06.mp3", Title: "Echoes", TrackNumber: 6, DiscNumber: 1},
	}

	got := renderSummary(rec, files, config.DefaultSettings())
	for _, want := range []string{"Pink Floyd - Meddle (1971)", "Album artist: Various", "Tracks: 6, discs: 1", "track06.mp3", "Echoes", "06 - Echoes.mp3", "New name"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}

	settings := config.DefaultSettings()
	settings.Rename = false
	rec.AlbumArtist = rec.Artist
	got = renderSummary(rec, files, settings)
	for _, unwanted := range []string{"New name", "Album artist"} {
		if strings.Contains(got, unwanted) {
			t.Errorf("summary contains %q:\n%s", unwanted, got)
		}
	}
}
