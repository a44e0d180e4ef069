// Package track is the track-level record kind: the fields that differ
// between the files of an album.
package track

import (
	"github.com/handiism/tagg/internal/editor"
	"github.com/handiism/tagg/internal/model"
)

// Key identifies a track field.
type Key int

const (
	TrackNumber Key = iota
	DiscNumber
	Title
)

// Prompt implements editor.Prompter.
func (k Key) Prompt() string {
	switch k {
	case TrackNumber:
		return "TRACK NUMBER"
	case DiscNumber:
		return "DISC NUMBER"
	case Title:
		return "TITLE"
	default:
		return "UNKNOWN"
	}
}

// Schema lists the track fields in the order they are asked.
var Schema = editor.Schema[Key]{
	{Key: TrackNumber, Name: "track number", Kind: editor.KindInt, Min: 0},
	{Key: DiscNumber, Name: "disc number", Kind: editor.KindInt, Min: 0},
	{Key: Title, Name: "title", Kind: editor.KindText},
}

// Input is a partially known track. Nil fields are unknown.
type Input struct {
	TrackNumber *int
	DiscNumber  *int
	Title       *string
}

// Output is a finished track record.
type Output struct {
	TrackNumber int
	DiscNumber  int
	Title       string
}

// ApplyTo copies the track values into out.
func (o Output) ApplyTo(out *model.FileOutput) {
	out.TrackNumber = o.TrackNumber
	out.DiscNumber = o.DiscNumber
	out.Title = o.Title
}

// FromFile takes the known track values of item.
func FromFile(item model.FileInput) Input {
	var in Input
	if item.TrackNumber > 0 {
		n := item.TrackNumber
		in.TrackNumber = &n
	}
	if item.DiscNumber > 0 {
		n := item.DiscNumber
		in.DiscNumber = &n
	}
	if item.Title != "" {
		s := item.Title
		in.Title = &s
	}
	return in
}

// Record converts the known values into an editor record.
func (in Input) Record() *editor.Record[Key] {
	r := editor.NewRecord[Key]()
	if in.TrackNumber != nil {
		r.SetInt(TrackNumber, *in.TrackNumber)
	}
	if in.DiscNumber != nil {
		r.SetInt(DiscNumber, *in.DiscNumber)
	}
	if in.Title != nil {
		r.SetText(Title, *in.Title)
	}
	return r
}

func assemble(r *editor.Record[Key]) Output {
	return Output{
		TrackNumber: r.Int(TrackNumber),
		DiscNumber:  r.Int(DiscNumber),
		Title:       r.Text(Title),
	}
}

// NewBuilder returns the track builder seeded with in.
func NewBuilder(in Input) *editor.Builder[Key, Output] {
	return editor.NewBuilder(Schema, in.Record(), assemble)
}

// NewEditor returns a session asking for every track field, pre-filled
// from in.
func NewEditor(in Input, reader editor.LineReader, opts ...editor.Option) *editor.Session[Key, Output] {
	return editor.NewSession[Key, Output](Schema.Keys(), NewBuilder(in), reader, opts...)
}
