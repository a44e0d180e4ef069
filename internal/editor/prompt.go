package editor

// Prompter is implemented by field keys. Prompt returns the short label shown
// in front of the input line, e.g. "ALBUM ARTIST".
type Prompter interface {
	Prompt() string
}

// DefaultValue is the text pre-filled into the input line.
//
// Left is placed before the cursor and Right after it, so a known value is
// offered as Left and the user types over it from the end.
type DefaultValue struct {
	Left  string
	Right string
}

// DefaultFrom returns the hint for a field whose current value is value.
// An unknown value yields the empty hint.
func DefaultFrom(value string, known bool) DefaultValue {
	if !known {
		return DefaultValue{}
	}
	return DefaultValue{Left: value}
}

// Text returns the full pre-filled text.
func (d DefaultValue) Text() string {
	return d.Left + d.Right
}

// Cursor returns the cursor position in runes.
func (d DefaultValue) Cursor() int {
	return len([]rune(d.Left))
}

// IsEmpty reports whether there is nothing to pre-fill.
func (d DefaultValue) IsEmpty() bool {
	return d.Left == "" && d.Right == ""
}
