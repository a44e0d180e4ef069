// Package album is the album-level record kind: the fields shared by every
// file of an album.
package album

import (
	"strconv"

	"github.com/handiism/tagg/internal/counter"
	"github.com/handiism/tagg/internal/editor"
	"github.com/handiism/tagg/internal/model"
)

// Key identifies an album field.
type Key int

const (
	Artist Key = iota
	AlbumArtist
	Album
	Year
	TotalTracks
	TotalDiscs
)

// Prompt implements editor.Prompter.
func (k Key) Prompt() string {
	switch k {
	case Artist:
		return "ARTIST"
	case AlbumArtist:
		return "ALBUM ARTIST"
	case Album:
		return "ALBUM"
	case Year:
		return "YEAR"
	case TotalTracks:
		return "TOTAL TRACKS"
	case TotalDiscs:
		return "TOTAL DISCS"
	default:
		return "UNKNOWN"
	}
}

// Schema lists the album fields in the order they are asked.
var Schema = editor.Schema[Key]{
	{Key: Artist, Name: "artist", Kind: editor.KindText},
	{Key: AlbumArtist, Name: "album artist", Kind: editor.KindText},
	{Key: Album, Name: "album", Kind: editor.KindText},
	{Key: Year, Name: "year", Kind: editor.KindInt, Min: 0, Max: 9999},
	{Key: TotalTracks, Name: "number of tracks", Kind: editor.KindInt, Min: 0},
	{Key: TotalDiscs, Name: "number of discs", Kind: editor.KindInt, Min: 0},
}

// Input is a partially known album. Nil fields are unknown.
type Input struct {
	Artist      *string
	AlbumArtist *string
	Album       *string
	Year        *int
	TotalTracks *int
	TotalDiscs  *int
}

// Output is a finished album record.
type Output struct {
	Artist      string
	AlbumArtist string
	Album       string
	Year        int
	TotalTracks int
	TotalDiscs  int
}

// ApplyTo copies the album values into out.
func (o Output) ApplyTo(out *model.FileOutput) {
	out.Artist = o.Artist
	out.AlbumArtist = o.AlbumArtist
	out.Album = o.Album
	out.Year = o.Year
	out.TotalTracks = o.TotalTracks
	out.TotalDiscs = o.TotalDiscs
}

// FromFiles picks the most common known value of each album field across
// items. Ties are broken arbitrarily.
func FromFiles(items []model.FileInput) Input {
	c := counter.New[Key, string]()
	insert := func(key Key, value string) {
		if value != "" {
			c.Insert(key, value)
		}
	}
	insertInt := func(key Key, value int) {
		if value > 0 {
			c.Insert(key, strconv.Itoa(value))
		}
	}

	for _, item := range items {
		insert(Artist, item.Artist)
		insert(AlbumArtist, item.AlbumArtist)
		insert(Album, item.Album)
		insertInt(Year, item.Year)
		insertInt(TotalTracks, item.TotalTracks)
		insertInt(TotalDiscs, item.TotalDiscs)
	}

	text := func(key Key) *string {
		if v, ok := c.MostCommon(key); ok {
			return &v
		}
		return nil
	}
	number := func(key Key) *int {
		v, ok := c.MostCommon(key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil
		}
		return &n
	}

	return Input{
		Artist:      text(Artist),
		AlbumArtist: text(AlbumArtist),
		Album:       text(Album),
		Year:        number(Year),
		TotalTracks: number(TotalTracks),
		TotalDiscs:  number(TotalDiscs),
	}
}

// Record converts the known values into an editor record.
func (in Input) Record() *editor.Record[Key] {
	r := editor.NewRecord[Key]()
	setText := func(key Key, v *string) {
		if v != nil {
			r.SetText(key, *v)
		}
	}
	setInt := func(key Key, v *int) {
		if v != nil {
			r.SetInt(key, *v)
		}
	}
	setText(Artist, in.Artist)
	setText(AlbumArtist, in.AlbumArtist)
	setText(Album, in.Album)
	setInt(Year, in.Year)
	setInt(TotalTracks, in.TotalTracks)
	setInt(TotalDiscs, in.TotalDiscs)
	return r
}

func assemble(r *editor.Record[Key]) Output {
	return Output{
		Artist:      r.Text(Artist),
		AlbumArtist: r.Text(AlbumArtist),
		Album:       r.Text(Album),
		Year:        r.Int(Year),
		TotalTracks: r.Int(TotalTracks),
		TotalDiscs:  r.Int(TotalDiscs),
	}
}

// NewBuilder returns the album builder seeded with in.
func NewBuilder(in Input) *editor.Builder[Key, Output] {
	return editor.NewBuilder(Schema, in.Record(), assemble)
}

// NewEditor returns a session asking for every album field, pre-filled
// from in.
func NewEditor(in Input, reader editor.LineReader, opts ...editor.Option) *editor.Session[Key, Output] {
	return editor.NewSession[Key, Output](Schema.Keys(), NewBuilder(in), reader, opts...)
}
