// Package audio reads and writes MP3 tags and generates playlists.
//
// # Reading Tags
//
// ReadTags turns an MP3's existing ID3v2 tag into a model.FileInput:
//
//	in, err := audio.ReadTags("/music/01.mp3")
//
// # Writing Tags
//
// The Writer replaces a file's tags with the edited values and renames it:
//
//	w := audio.NewWriter(audio.DefaultTagConfig())
//	newPath, err := w.Write(ctx, out)
//
// Writing removes any ID3v1 trailer, drops every ID3v2 frame (except the
// ones listed in TagConfig.Preserve) and adds:
//   - TPE1 artist, TPE2 album artist, TALB album
//   - TDRC (v2.4) or TYER (v2.3) year
//   - TIT2 title
//   - TRCK and TPOS as "07/12"
//   - APIC front cover, when cover art is configured
//
// # Playlist Generation
//
//	creator := audio.NewPlaylistCreator(model.PlaylistFormatM3U, true)
//	content := creator.CreatePlaylist("Meddle", files)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//   - WPL (Windows Media Player)
//   - ZPL (Zune Media Player)
package audio
