package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/handiism/tagg/internal/audio"
	"github.com/handiism/tagg/internal/editor"
	"github.com/handiism/tagg/internal/finder"
	ioutils "github.com/handiism/tagg/internal/io"
	"github.com/handiism/tagg/internal/model"
	"github.com/pelletier/go-toml/v2"
)

// Settings holds all configuration options.
type Settings struct {
	// Editing
	BackCommand string `json:"back_command" toml:"back_command"`
	QuitCommand string `json:"quit_command" toml:"quit_command"`
	HistorySize int    `json:"history_size" toml:"history_size"`
	PlainInput  bool   `json:"plain_input" toml:"plain_input"`

	// File lookup
	Extensions  []string `json:"extensions" toml:"extensions"`
	Concurrency int      `json:"concurrency" toml:"concurrency"`

	// Tag settings
	ID3Version     int      `json:"id3_version" toml:"id3_version"` // 3 or 4
	PreserveFrames []string `json:"preserve_frames" toml:"preserve_frames"`

	// File naming
	Rename         bool   `json:"rename" toml:"rename"`
	FileNameFormat string `json:"file_name_format" toml:"file_name_format"`

	// Cover art settings
	EmbedCoverArt   bool `json:"embed_cover_art" toml:"embed_cover_art"`
	CoverArtMaxSize int  `json:"cover_art_max_size" toml:"cover_art_max_size"`

	// Playlist settings
	CreatePlaylist bool   `json:"create_playlist" toml:"create_playlist"`
	PlaylistFormat string `json:"playlist_format" toml:"playlist_format"` // m3u, pls, wpl, zpl
	M3UExtended    bool   `json:"m3u_extended" toml:"m3u_extended"`

	// Logging
	LogLevel string `json:"log_level" toml:"log_level"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	commands := editor.DefaultCommands()
	return &Settings{
		BackCommand: commands.Back,
		QuitCommand: commands.Quit,
		HistorySize: editor.DefaultHistorySize,

		Extensions:  []string{".mp3"},
		Concurrency: finder.DefaultConcurrency,

		ID3Version: 4,

		Rename:         true,
		FileNameFormat: model.DefaultFileNameFormat,

		EmbedCoverArt:   false,
		CoverArtMaxSize: 1000,

		CreatePlaylist: false,
		PlaylistFormat: "m3u",
		M3UExtended:    true,

		LogLevel: "warn",
	}
}

// DefaultPath returns the default settings location,
// ~/.config/tagg/config.toml or the platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tagg", "config.toml"), nil
}

// Load reads settings from a JSON file, or a TOML file when path ends in
// ".toml". Values absent from the file keep their defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isTOML(path) {
		err = toml.NewDecoder(bytes.NewReader(data)).Decode(settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Save writes settings to path, as TOML when it ends in ".toml" and JSON
// otherwise.
func (s *Settings) Save(path string) error {
	if err := ioutils.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate reports settings the tagger cannot work with.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.BackCommand) == "" || strings.TrimSpace(s.QuitCommand) == "" {
		return fmt.Errorf("config: back and quit commands must not be empty")
	}
	if strings.TrimSpace(s.BackCommand) == strings.TrimSpace(s.QuitCommand) {
		return fmt.Errorf("config: back and quit commands must differ, both are %q", s.BackCommand)
	}
	if s.ID3Version != 3 && s.ID3Version != 4 {
		return fmt.Errorf("config: id3_version must be 3 or 4, got %d", s.ID3Version)
	}
	if s.CoverArtMaxSize < 0 {
		return fmt.Errorf("config: cover_art_max_size must not be negative")
	}
	return nil
}

// Commands returns the session command tokens.
func (s *Settings) Commands() editor.Commands {
	return editor.Commands{
		Back: strings.TrimSpace(s.BackCommand),
		Quit: strings.TrimSpace(s.QuitCommand),
	}
}

// ToTagConfig converts settings to the tag writer configuration. The
// cover is filled in later, once it has been found.
func (s *Settings) ToTagConfig() *audio.TagConfig {
	return &audio.TagConfig{
		Version:        byte(s.ID3Version),
		Rename:         s.Rename,
		FileNameFormat: s.FileNameFormat,
		Preserve:       append([]string(nil), s.PreserveFrames...),
	}
}

// ToPlaylistFormat converts the playlist format name.
func (s *Settings) ToPlaylistFormat() model.PlaylistFormat {
	return model.ParsePlaylistFormat(s.PlaylistFormat)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
