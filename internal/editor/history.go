package editor

import "strings"

// DefaultHistorySize bounds a History created with a non-positive size.
const DefaultHistorySize = 500

// History holds the lines entered during a run. One History is shared by
// every session of the process; it is not safe for concurrent use.
type History struct {
	entries []string
	max     int
}

// NewHistory creates a History keeping at most max entries.
func NewHistory(max int) *History {
	if max <= 0 {
		max = DefaultHistorySize
	}
	return &History{max: max}
}

// Add appends line. Blank lines and repeats of the latest entry are skipped.
func (h *History) Add(line string) {
	if h == nil || strings.TrimSpace(line) == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	h.entries = append(h.entries, line)
	if len(h.entries) > h.max {
		h.entries = append([]string(nil), h.entries[len(h.entries)-h.max:]...)
	}
}

// Entries returns a copy of the entries, oldest first.
func (h *History) Entries() []string {
	if h == nil {
		return nil
	}
	return append([]string(nil), h.entries...)
}

// Len returns the number of entries.
func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.entries)
}
