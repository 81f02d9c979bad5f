package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vhscom/calc/internal/calc"
	"github.com/vhscom/calc/internal/session"
	"github.com/vhscom/calc/internal/ui"
)

// displayWidth matches the keypad: four keys and three gaps.
const displayWidth = 4*ui.KeyWidth + 3

type model struct {
	ctrl     session.Controller
	state    session.State
	keys     keyMap
	help     help.Model
	row, col int
	quitting bool
}

func initialModel(ctrl session.Controller) model {
	h := help.New()
	h.Styles.ShortDesc = ui.DimStyle
	h.Styles.FullDesc = ui.DimStyle
	h.Styles.ShortSeparator = ui.DimStyle
	h.Styles.FullSeparator = ui.DimStyle

	return model{
		ctrl: ctrl,
		keys: defaultKeyMap(),
		help: h,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Paste {
		m.state = session.SetInput(m.state, m.state.Input.Value+string(msg.Runes))
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.row = (m.row + len(session.Keypad) - 1) % len(session.Keypad)
	case key.Matches(msg, m.keys.Down):
		m.row = (m.row + 1) % len(session.Keypad)
	case key.Matches(msg, m.keys.Left):
		n := len(session.Keypad[m.row])
		m.col = (m.col + n - 1) % n
	case key.Matches(msg, m.keys.Right):
		m.col = (m.col + 1) % len(session.Keypad[m.row])
	case key.Matches(msg, m.keys.Press):
		m.press(session.Keypad[m.row][m.col])
	case key.Matches(msg, m.keys.Evaluate):
		m.press(session.ButtonEquals)
	case key.Matches(msg, m.keys.Backspace):
		m.press(session.ButtonBackspace)
	case key.Matches(msg, m.keys.Clear):
		m.press(session.ButtonClear)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case msg.Type == tea.KeyRunes:
		m.typeRunes(msg.Runes)
	}
	return m, nil
}

func (m *model) press(b session.Button) {
	m.state = m.ctrl.Press(m.state, b)
}

// typeRunes presses the matching button for each rune. Characters with no
// button, such as parentheses, are edited into the input directly.
func (m *model) typeRunes(runes []rune) {
	for _, r := range runes {
		if b, ok := session.ParseButton(string(r)); ok {
			m.press(b)
			continue
		}
		if text := session.Sanitize(string(r)); text != "" {
			m.state = session.SetInput(m.state, m.state.Input.Value+text)
		}
	}
}

// --- Views ---

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render("Calculator"))
	b.WriteString("\n\n")

	b.WriteString(ui.InputStyle.Render(ui.AlignRight(m.state.Input.Value, displayWidth)))
	b.WriteString("\n")

	result := ui.AlignRight(m.state.Result, displayWidth)
	if m.state.Result == calc.ErrorText {
		b.WriteString(ui.ErrorStyle.Render(result))
	} else {
		b.WriteString(ui.ResultStyle.Render(result))
	}
	b.WriteString("\n\n")

	b.WriteString(ui.RenderKeypad(keypad(), m.row, m.col))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func keypad() [][]ui.Key {
	rows := make([][]ui.Key, len(session.Keypad))
	for i, row := range session.Keypad {
		rows[i] = make([]ui.Key, len(row))
		for j, btn := range row {
			rows[i][j] = ui.Key{
				Label:  string(btn),
				Accent: btn.IsOperator() || btn == session.ButtonEquals,
			}
		}
	}
	return rows
}
