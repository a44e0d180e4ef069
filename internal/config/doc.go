// Package config provides configuration management for tagg.
//
// This package handles:
//   - Loading and saving settings from JSON or TOML files
//   - Default configuration values
//   - Conversion to the tag writer and editor settings of other packages
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// ":b" goes back, ":q" quits
//	// Writes ID3v2.4 and renames files to "07 - Title.mp3"
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.toml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// The format follows the extension: ".toml" files are TOML, anything
// else is JSON.
//
// # Saving Settings
//
//	settings.FileNameFormat = "{number} {artist} - {title}.mp3"
//	err := settings.Save("/path/to/config.toml")
package config
