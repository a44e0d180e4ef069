package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(m lineModel, msgs ...tea.KeyMsg) lineModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(lineModel)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLineModel_PrefillsDefault(t *testing.T) {
	m := newLineModel("[TITLE] >>> ", DefaultValue{Left: "Echo", Right: "es"}, nil)

	if got := m.input.Value(); got != "Echoes" {
		t.Errorf("Value() = %q, want %q", got, "Echoes")
	}
	if got := m.input.Position(); got != 4 {
		t.Errorf("Position() = %d, want 4", got)
	}
}

func TestLineModel_EnterSubmits(t *testing.T) {
	m := newLineModel("> ", DefaultValue{Left: "Meddle"}, nil)
	m = press(m, runes("!"), tea.KeyMsg{Type: tea.KeyEnter})

	if !m.done || m.aborted {
		t.Fatalf("done = %v aborted = %v, want submitted", m.done, m.aborted)
	}
	if got := m.input.Value(); got != "Meddle!" {
		t.Errorf("Value() = %q, want %q", got, "Meddle!")
	}
}

func TestLineModel_Abort(t *testing.T) {
	tests := []struct {
		name        string
		def         DefaultValue
		key         tea.KeyType
		wantAborted bool
	}{
		{"ctrl-c with text", DefaultValue{Left: "Meddle"}, tea.KeyCtrlC, true},
		{"esc", DefaultValue{Left: "Meddle"}, tea.KeyEsc, true},
		{"ctrl-d on empty line", DefaultValue{}, tea.KeyCtrlD, true},
		{"ctrl-d with text edits", DefaultValue{Right: "Meddle"}, tea.KeyCtrlD, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(newLineModel("> ", tt.def, nil), tea.KeyMsg{Type: tt.key})
			if m.aborted != tt.wantAborted {
				t.Errorf("aborted = %v, want %v", m.aborted, tt.wantAborted)
			}
		})
	}
}

func TestLineModel_HistoryBrowsing(t *testing.T) {
	m := newLineModel("> ", DefaultValue{Left: "draft"}, []string{"Pink Floyd", "Genesis"})

	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	if got := m.input.Value(); got != "Genesis" {
		t.Fatalf("after up Value() = %q, want %q", got, "Genesis")
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	if got := m.input.Value(); got != "Pink Floyd" {
		t.Fatalf("after up at oldest Value() = %q, want %q", got, "Pink Floyd")
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.input.Value(); got != "draft" {
		t.Errorf("after returning down Value() = %q, want %q", got, "draft")
	}
}

func TestLineModel_ViewAfterSubmit(t *testing.T) {
	m := newLineModel("> ", DefaultValue{Left: "Meddle"}, nil)
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.View(); got == "" || got[len(got)-1] != '\n' {
		t.Errorf("View() = %q, want the submitted line", got)
	}
}
