// Package model defines the file-level records exchanged between the tag
// reader, the editors and the tag writer.
//
// # FileInput
//
// FileInput holds what was read from an MP3 file's existing tags. Every
// value is optional: an empty string or zero number means the tag was
// missing.
//
//	in := model.FileInput{Path: "/music/01.mp3", Artist: "Pink Floyd", TrackNumber: 1}
//
// # FileOutput
//
// FileOutput holds the fully validated values to write back, merged from the
// album and track editors:
//
//	out := model.FileOutput{Path: in.Path}
//	albumOut.ApplyTo(&out)
//	trackOut.ApplyTo(&out)
//	fmt.Println(out.RenamedPath(model.DefaultFileNameFormat))
//
// # File Naming
//
// The file name template supports these placeholders:
//
//	{number}   "07" for single-disc albums, "02-07" for multi-disc albums
//	{tracknum} track number, 2 digits, zero-padded
//	{discnum}  disc number, 2 digits, zero-padded
//	{title}, {artist}, {albumartist}, {album}, {year}
package model
