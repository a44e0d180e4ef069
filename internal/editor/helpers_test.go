package editor

import (
	"context"
)

type testKey int

const (
	keyTrackNumber testKey = iota
	keyDiscNumber
	keyTitle
)

func (k testKey) Prompt() string {
	switch k {
	case keyTrackNumber:
		return "TRACK NUMBER"
	case keyDiscNumber:
		return "DISC NUMBER"
	case keyTitle:
		return "TITLE"
	}
	return "?"
}

type testTrack struct {
	TrackNumber int
	DiscNumber  int
	Title       string
}

var testSchema = Schema[testKey]{
	{Key: keyTrackNumber, Name: "track number", Kind: KindInt},
	{Key: keyDiscNumber, Name: "disc number", Kind: KindInt},
	{Key: keyTitle, Name: "title", Kind: KindText},
}

func assembleTestTrack(r *Record[testKey]) testTrack {
	return testTrack{
		TrackNumber: r.Int(keyTrackNumber),
		DiscNumber:  r.Int(keyDiscNumber),
		Title:       r.Text(keyTitle),
	}
}

func newTestBuilder(seed *Record[testKey]) *Builder[testKey, testTrack] {
	return NewBuilder(testSchema, seed, assembleTestTrack)
}

// scriptedReader answers prompts from a fixed script and records what it
// was asked. An exhausted script behaves like end of input.
type scriptedReader struct {
	lines    []string
	prompts  []string
	defaults []DefaultValue
	err      error
}

func (r *scriptedReader) ReadLine(_ context.Context, prompt string, def DefaultValue) (string, error) {
	r.prompts = append(r.prompts, prompt)
	r.defaults = append(r.defaults, def)
	if r.err != nil {
		return "", r.err
	}
	if len(r.lines) == 0 {
		return "", ErrInterrupted
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

// countingBuilder wraps a builder and counts Build calls.
type countingBuilder struct {
	*Builder[testKey, testTrack]
	builds int
}

func (b *countingBuilder) Build() (testTrack, error) {
	b.builds++
	return b.Builder.Build()
}
