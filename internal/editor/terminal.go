package editor

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4"))

	suggestionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

// TerminalReader reads lines with an editable, pre-filled input field.
//
// Each ReadLine runs a short Bubble Tea program. Enter submits the line,
// ctrl-c, esc or ctrl-d on an empty line abort it, up and down walk the shared
// history and tab accepts the greyed suggestion taken from the history.
type TerminalReader struct {
	in      io.Reader
	out     io.Writer
	history *History
}

// NewTerminalReader creates a TerminalReader. history may be nil.
func NewTerminalReader(in io.Reader, out io.Writer, history *History) *TerminalReader {
	return &TerminalReader{in: in, out: out, history: history}
}

// ReadLine implements LineReader.
func (r *TerminalReader) ReadLine(ctx context.Context, prompt string, def DefaultValue) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", ErrInterrupted
	}

	p := tea.NewProgram(
		newLineModel(prompt, def, r.history.Entries()),
		tea.WithInput(r.in),
		tea.WithOutput(r.out),
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	if ctx.Err() != nil {
		return "", ErrInterrupted
	}
	if err != nil {
		return "", fmt.Errorf("line editor: %w", err)
	}

	m, ok := final.(lineModel)
	if !ok || m.aborted {
		return "", ErrInterrupted
	}
	line := m.input.Value()
	r.history.Add(line)
	return line, nil
}

// lineModel is the Bubble Tea model of a single line read.
type lineModel struct {
	input   textinput.Model
	entries []string
	index   int
	draft   string

	done    bool
	aborted bool
}

func newLineModel(prompt string, def DefaultValue, entries []string) lineModel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.PromptStyle = promptStyle
	ti.CompletionStyle = suggestionStyle
	ti.CharLimit = 1024
	ti.ShowSuggestions = len(entries) > 0
	ti.SetSuggestions(entries)
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))
	ti.SetValue(def.Text())
	ti.SetCursor(def.Cursor())
	ti.Focus()

	return lineModel{
		input:   ti,
		entries: entries,
		index:   len(entries),
	}
}

// Init implements tea.Model.
func (m lineModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m lineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit

		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit

		case tea.KeyCtrlD:
			if m.input.Value() == "" {
				m.aborted = true
				return m, tea.Quit
			}

		case tea.KeyUp:
			m.older()
			return m, nil

		case tea.KeyDown:
			m.newer()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// older replaces the line with the previous history entry, keeping the
// current text as a draft to return to.
func (m *lineModel) older() {
	if m.index == 0 {
		return
	}
	if m.index == len(m.entries) {
		m.draft = m.input.Value()
	}
	m.index--
	m.input.SetValue(m.entries[m.index])
	m.input.CursorEnd()
}

func (m *lineModel) newer() {
	if m.index >= len(m.entries) {
		return
	}
	m.index++
	if m.index == len(m.entries) {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.entries[m.index])
	}
	m.input.CursorEnd()
}

// View implements tea.Model. Once the read is over the line is rendered
// without cursor so it stays in the scrollback as typed.
func (m lineModel) View() string {
	if m.done || m.aborted {
		return m.input.PromptStyle.Render(m.input.Prompt) + m.input.Value() + "\n"
	}
	return m.input.View()
}
