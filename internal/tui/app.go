package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vhngoc/govi/internal/history"
	"github.com/vhngoc/govi/internal/method"
	"github.com/vhngoc/govi/internal/vietnamese"
)

// NamedMethod pairs a typing method with its display name. The built-in
// methods come first; custom methods from config follow.
type NamedMethod struct {
	Name string
	Def  method.Definition
}

type keyMap struct {
	ToggleMethod key.Binding
	ToggleStyle  key.Binding
	Commit       key.Binding
	Quit         key.Binding
}

var keys = keyMap{
	ToggleMethod: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch method"),
	),
	ToggleStyle: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "toggle accent style"),
	),
	Commit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "new line"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// Model is the interactive typing model: finished lines, the committed
// part of the current line, and an incremental buffer for the word
// being typed.
type Model struct {
	methods  []NamedMethod
	selected int
	style    vietnamese.AccentStyle
	store    *history.Store

	buf     *method.Buffer
	lines   []string
	current string

	width  int
	height int
	err    error
}

// New creates the typing model. store may be nil when history is
// disabled.
func New(methods []NamedMethod, selected int, style vietnamese.AccentStyle, store *history.Store) Model {
	if len(methods) == 0 {
		methods = []NamedMethod{{Name: "telex", Def: method.Telex}}
	}
	if selected < 0 || selected >= len(methods) {
		selected = 0
	}
	return Model{
		methods:  methods,
		selected: selected,
		style:    style,
		store:    store,
		buf:      method.NewBufferWithStyle(methods[selected].Def, style),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.ToggleMethod):
			m.selected = (m.selected + 1) % len(m.methods)
			m.replay(m.buf.Input())
			return m, nil

		case key.Matches(msg, keys.ToggleStyle):
			if m.style == vietnamese.StyleNew {
				m.style = vietnamese.StyleOld
			} else {
				m.style = vietnamese.StyleNew
			}
			m.replay(m.buf.Input())
			return m, nil

		case key.Matches(msg, keys.Commit):
			m.commitWord()
			m.lines = append(m.lines, m.current)
			m.current = ""
			return m, nil
		}

		switch msg.Type {
		case tea.KeyBackspace:
			m.backspace()
			return m, nil

		case tea.KeySpace:
			m.commitWord()
			m.current += " "
			return m, nil

		case tea.KeyRunes:
			for _, ch := range msg.Runes {
				m.pushRune(ch)
			}
			return m, nil
		}
	}
	return m, nil
}

func (m *Model) pushRune(ch rune) {
	if isWordRune(ch, m.methods[m.selected].Def) {
		m.buf.Push(ch)
		return
	}
	m.commitWord()
	m.current += string(ch)
}

// backspace removes the last keystroke of the open word by replaying
// the rest, or the last committed rune when no word is open.
func (m *Model) backspace() {
	if !m.buf.IsEmpty() {
		input := m.buf.Input()
		m.replay(input[:len(input)-1])
		return
	}
	runes := []rune(m.current)
	if len(runes) > 0 {
		m.current = string(runes[:len(runes)-1])
	}
}

func (m *Model) replay(input []rune) {
	keep := make([]rune, len(input))
	copy(keep, input)
	m.buf = method.NewBufferWithStyle(m.methods[m.selected].Def, m.style)
	for _, ch := range keep {
		m.buf.Push(ch)
	}
}

// commitWord moves the open word into the current line and records it
// in history when it contains letters.
func (m *Model) commitWord() {
	if m.buf.IsEmpty() {
		return
	}
	word := m.buf.View()
	m.current += word
	m.buf = method.NewBufferWithStyle(m.methods[m.selected].Def, m.style)

	if m.store != nil && hasLetter(word) {
		if err := m.store.Record(word, m.methods[m.selected].Name, styleName(m.style)); err != nil {
			m.err = err
		}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("govi"))
	b.WriteString("\n\n")

	var text strings.Builder
	for _, line := range m.lines {
		text.WriteString(textStyle.Render(line))
		text.WriteString("\n")
	}
	text.WriteString(textStyle.Render(m.current))
	if !m.buf.IsEmpty() {
		text.WriteString(openWordStyle.Render(m.buf.View()))
	}
	text.WriteString(openWordStyle.Render("█"))

	width := m.width - 4
	if width < 20 {
		width = 60
	}
	b.WriteString(editorStyle.Width(width).Render(text.String()))
	b.WriteString("\n")

	if !m.buf.IsEmpty() {
		b.WriteString(rawInputStyle.Render("keys: " + string(m.buf.Input())))
		b.WriteString("\n")
	}

	status := lipgloss.JoinHorizontal(lipgloss.Top,
		statusLabelStyle.Render("method "),
		statusValueStyle.Render(m.methods[m.selected].Name),
		statusLabelStyle.Render("  style "),
		statusValueStyle.Render(styleName(m.style)),
	)
	b.WriteString(status)
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(helpStyle.Render(fmt.Sprintf("history error: %v", m.err)))
		b.WriteString("\n")
	}

	help := []string{
		keys.ToggleMethod.Help().Key + " " + keys.ToggleMethod.Help().Desc,
		keys.ToggleStyle.Help().Key + " " + keys.ToggleStyle.Help().Desc,
		keys.Commit.Help().Key + " " + keys.Commit.Help().Desc,
		keys.Quit.Help().Key + " " + keys.Quit.Help().Desc,
	}
	b.WriteString(helpStyle.Render(truncate(strings.Join(help, " • "), m.width)))

	return b.String()
}

// Text returns everything typed so far, open word included.
func (m Model) Text() string {
	var b strings.Builder
	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.current)
	b.WriteString(m.buf.View())
	return b.String()
}

func isWordRune(ch rune, def method.Definition) bool {
	if unicode.IsLetter(ch) {
		return true
	}
	_, ok := def[unicode.ToLower(ch)]
	return ok
}

func hasLetter(word string) bool {
	for _, ch := range word {
		if unicode.IsLetter(ch) {
			return true
		}
	}
	return false
}

func styleName(style vietnamese.AccentStyle) string {
	if style == vietnamese.StyleOld {
		return "old"
	}
	return "new"
}

func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width-1, "…")
}

// Run starts the interactive program in the alternate screen and
// returns the final typed text.
func Run(methods []NamedMethod, selected int, style vietnamese.AccentStyle, store *history.Store) (string, error) {
	p := tea.NewProgram(New(methods, selected, style, store), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running interactive mode: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.Text(), nil
	}
	return "", nil
}
