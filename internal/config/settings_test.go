package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/handiism/tagg/internal/editor"
	"github.com/handiism/tagg/internal/model"
)

func TestLoad_MissingFile(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(DefaultSettings(), got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
back_command = ":back"
id3_version = 3
preserve_frames = ["USLT", "TCON"]
create_playlist = true
playlist_format = "pls"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := DefaultSettings()
	want.BackCommand = ":back"
	want.ID3Version = 3
	want.PreserveFrames = []string{"USLT", "TCON"}
	want.CreatePlaylist = true
	want.PlaylistFormat = "pls"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	if got.ToPlaylistFormat() != model.PlaylistFormatPLS {
		t.Errorf("ToPlaylistFormat() = %v, want PLS", got.ToPlaylistFormat())
	}
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"rename": false, "quit_command": ":x"}`), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Rename {
		t.Error("Rename = true, want false")
	}
	if diff := cmp.Diff(editor.Commands{Back: ":b", Quit: ":x"}, got.Commands()); diff != "" {
		t.Errorf("Commands() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"bad toml", "c.toml", "rename = ", "parse config"},
		{"bad json", "c.json", "{", "parse config"},
		{"same commands", "c.toml", `quit_command = ":b"`, "must differ"},
		{"empty command", "c.json", `{"back_command": " "}`, "must not be empty"},
		{"bad version", "c.toml", "id3_version = 2", "id3_version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	for _, name := range []string{"config.toml", "config.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			settings := DefaultSettings()
			settings.FileNameFormat = "{number} {artist} - {title}.mp3"
			settings.Extensions = []string{".mp3", ".MP3"}
			settings.PreserveFrames = []string{"USLT"}

			if err := settings.Save(path); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if diff := cmp.Diff(settings, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToTagConfig(t *testing.T) {
	settings := DefaultSettings()
	settings.PreserveFrames = []string{"USLT"}

	cfg := settings.ToTagConfig()
	if cfg.Version != 4 || !cfg.Rename || cfg.FileNameFormat != model.DefaultFileNameFormat {
		t.Errorf("ToTagConfig() = %+v", cfg)
	}
	cfg.Preserve[0] = "APIC"
	if settings.PreserveFrames[0] != "USLT" {
		t.Error("ToTagConfig() shares the preserve slice with settings")
	}
}
