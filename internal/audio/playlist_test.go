package audio

import (
	"strings"
	"testing"

	"github.com/handiism/tagg/internal/model"
)

func createTestFiles() []model.FileOutput {
	return []model.FileOutput{
		{Path: "/music/Meddle/01 - One of These Days.mp3", Artist: "Pink Floyd", AlbumArtist: "Pink Floyd", Album: "Meddle", Title: "One of These Days"},
		{Path: "/music/Meddle/06 - Echoes.mp3", Artist: "Pink Floyd", AlbumArtist: "Pink Floyd", Album: "Meddle", Title: "Echoes"},
	}
}

func TestPlaylistCreator_M3U(t *testing.T) {
	content := NewPlaylistCreator(model.PlaylistFormatM3U, false).CreatePlaylist("Meddle", createTestFiles())

	want := "01 - One of These Days.mp3\n06 - Echoes.mp3\n"
	if content != want {
		t.Errorf("M3U = %q, want %q", content, want)
	}
}

func TestPlaylistCreator_M3UExtended(t *testing.T) {
	content := NewPlaylistCreator(model.PlaylistFormatM3U, true).CreatePlaylist("Meddle", createTestFiles())

	if !strings.HasPrefix(content, "#EXTM3U\n") {
		t.Error("Extended M3U should start with #EXTM3U")
	}
	if !strings.Contains(content, "#EXTINF:-1,Pink Floyd - Echoes\n06 - Echoes.mp3\n") {
		t.Errorf("Extended M3U missing EXTINF entry:\n%s", content)
	}
}

func TestPlaylistCreator_PLS(t *testing.T) {
	content := NewPlaylistCreator(model.PlaylistFormatPLS, false).CreatePlaylist("Meddle", createTestFiles())

	for _, want := range []string{"[playlist]\n", "File2=06 - Echoes.mp3\n", "NumberOfEntries=2\n", "Version=2\n"} {
		if !strings.Contains(content, want) {
			t.Errorf("PLS missing %q:\n%s", want, content)
		}
	}
}

func TestPlaylistCreator_XML(t *testing.T) {
	files := createTestFiles()
	files[0].Title = "Fat Old Sun & Friends"

	wpl := NewPlaylistCreator(model.PlaylistFormatWPL, false).CreatePlaylist("Meddle <remaster>", files)
	if !strings.HasPrefix(wpl, "<?wpl") {
		t.Error("WPL should start with <?wpl")
	}
	if !strings.Contains(wpl, "<title>Meddle &lt;remaster&gt;</title>") {
		t.Errorf("WPL title not escaped:\n%s", wpl)
	}

	zpl := NewPlaylistCreator(model.PlaylistFormatZPL, false).CreatePlaylist("Meddle", files)
	if !strings.Contains(zpl, `trackTitle="Fat Old Sun &amp; Friends"`) {
		t.Errorf("ZPL track title not escaped:\n%s", zpl)
	}
	if !strings.Contains(zpl, `<meta name="ItemCount" content="2"/>`) {
		t.Errorf("ZPL missing item count:\n%s", zpl)
	}
}

func TestEscapeXML(t *testing.T) {
	got := escapeXML(`a & b < c > "d" 'e'`)
	want := "a &amp; b &lt; c &gt; &quot;d&quot; &apos;e&apos;"
	if got != want {
		t.Errorf("escapeXML() = %q, want %q", got, want)
	}
}
