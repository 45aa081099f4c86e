// Package tui implements an interactive form over the project initializer.
// Navigation and input are two modes: arrows move between fields, enter
// toggles editing, and the submit button runs the initializer.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/c3nk/cli-standard-kit/scaffold"
)

type (
	field struct {
		assign      func(*scaffold.InitProjectCmd, string)
		name        string
		desc        string
		ti          textinput.Model
		highlighted bool
	}

	InitModel struct {
		cmd     *scaffold.InitProjectCmd
		err     error
		help    help.Model
		fields  []field
		index   int
		navMode bool
		working bool
		done    bool
	}

	initDoneMsg struct {
		err error
	}

	navModeKeyMap struct{}

	inputModeKeyMap struct{}

	submitButtonKeyMap struct{}
)

var (
	keys = struct {
		up     key.Binding
		down   key.Binding
		input  key.Binding
		finish key.Binding
		submit key.Binding
		help   key.Binding
		quit   key.Binding
	}{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		input: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "input mode"),
		),
		finish: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "finish input"),
		),
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "submit"),
		),
		help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
	}

	palette = struct {
		magenta lipgloss.Color
		red     lipgloss.Color
	}{
		magenta: lipgloss.Color("212"),
		red:     lipgloss.Color("9"),
	}

	highlightedStyle = lipgloss.NewStyle().Foreground(palette.magenta)
	errStyle         = lipgloss.NewStyle().Foreground(palette.red)
)

func (navModeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.help, keys.quit}
}

func (navModeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.up, keys.down, keys.input},
		{keys.help, keys.quit},
	}
}

func (inputModeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.finish, keys.quit}
}

func (inputModeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.finish},
		{keys.quit},
	}
}

func (submitButtonKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.help, keys.quit}
}

func (submitButtonKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.up, keys.down, keys.submit},
		{keys.help, keys.quit},
	}
}

func (f *field) View() string {
	var b strings.Builder

	if f.highlighted {
		b.WriteString(highlightedStyle.Render("> "))
	} else {
		b.WriteString("  ")
	}

	b.WriteString(f.name + ":")
	b.WriteString(f.ti.View())

	return b.String()
}

func newField(name, desc, placeholder string, assign func(*scaffold.InitProjectCmd, string)) field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 128
	ti.Width = 40
	ti.Prompt = " "

	return field{name: name, desc: desc, ti: ti, assign: assign}
}

func InitialInitModel(cmd *scaffold.InitProjectCmd) InitModel {
	m := InitModel{
		cmd:     cmd,
		navMode: true,
		help:    help.New(),
		fields: []field{
			newField("Project name", "Name of the new CLI project; also the directory and template slug.", "my-cli",
				func(c *scaffold.InitProjectCmd, v string) { c.ProjectName = v }),
			newField("Template", "Cookiecutter template reference.", scaffold.DefaultTemplate,
				func(c *scaffold.InitProjectCmd, v string) { c.Template = v }),
			newField("Branch", "Name of the initial git branch.", scaffold.DefaultBranch,
				func(c *scaffold.InitProjectCmd, v string) { c.Branch = v }),
			newField("Venv dir", "Directory of the virtual environment inside the project.", scaffold.DefaultVenvDir,
				func(c *scaffold.InitProjectCmd, v string) { c.VenvDir = v }),
		},
	}

	m.fields[0].highlighted = true

	return m
}

func (m InitModel) Init() tea.Cmd {
	return nil
}

func (m InitModel) View() string {
	if m.working {
		return "Scaffolding the project ...\n"
	}

	if m.done {
		if m.err != nil {
			return errStyle.Render("Scaffolding failed: "+m.err.Error()) + "\n"
		}

		return "Project ready. See the hint above.\n"
	}

	var b strings.Builder

	b.WriteString("Let's start a CLI project!\n\n")

	b.WriteString("Description: ")

	if m.index < len(m.fields) {
		b.WriteString(m.fields[m.index].desc)
	}

	b.WriteString("\n\n")

	for i := range m.fields {
		b.WriteString(m.fields[i].View())
		b.WriteRune('\n')
	}

	b.WriteRune('\n')

	if m.index == len(m.fields) {
		b.WriteString(highlightedStyle.Render("> [ Create project ]"))
	} else {
		b.WriteString("  [ Create project ]")
	}

	b.WriteString("\n\n")

	if m.navMode && m.index == len(m.fields) {
		b.WriteString(m.help.View(submitButtonKeyMap{}))
	} else if m.navMode {
		b.WriteString(m.help.View(navModeKeyMap{}))
	} else {
		b.WriteString(m.help.View(inputModeKeyMap{}))
	}

	b.WriteRune('\n')

	return b.String()
}

func (m *InitModel) navModeUpdate(msg tea.KeyMsg) (cmd tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.index > 0 {
			if m.index < len(m.fields) {
				m.fields[m.index].highlighted = false
			}

			m.index -= 1
			m.fields[m.index].highlighted = true
		}

		return nil
	case key.Matches(msg, keys.down):
		if m.index < len(m.fields) {
			m.fields[m.index].highlighted = false
			m.index += 1

			if m.index < len(m.fields) {
				m.fields[m.index].highlighted = true
			}
		}

		return nil
	case key.Matches(msg, keys.input):
		if m.index >= len(m.fields) {
			return nil
		}

		m.navMode = false
		m.help.ShowAll = false

		return m.fields[m.index].ti.Focus()
	default:
		return nil
	}
}

func (m *InitModel) scaffoldCmd() tea.Msg {
	for i := range m.fields {
		if v := strings.TrimSpace(m.fields[i].ti.Value()); v != "" {
			m.fields[i].assign(m.cmd, v)
		}
	}

	m.cmd.ApplyConfig(scaffold.Config{})

	if m.cmd.ProjectName == "" {
		return initDoneMsg{err: scaffold.ErrProjectNameRequired}
	}

	return initDoneMsg{err: m.cmd.Run()}
}

func (m InitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

		return m, nil
	case initDoneMsg:
		m.working = false
		m.done = true
		m.err = msg.err

		return m, tea.Quit
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case m.navMode && m.index == len(m.fields) && key.Matches(msg, keys.submit):
			m.working = true

			return m, m.scaffoldCmd
		case m.navMode && key.Matches(msg, keys.help):
			m.help.ShowAll = !m.help.ShowAll

			return m, nil
		case m.navMode:
			cmd = m.navModeUpdate(msg)

			return m, cmd
		case key.Matches(msg, keys.finish):
			m.fields[m.index].ti.Blur()
			m.navMode = true

			return m, nil
		default:
			m.fields[m.index].ti, cmd = m.fields[m.index].ti.Update(msg)

			return m, cmd
		}
	}

	if m.index < len(m.fields) {
		m.fields[m.index].ti, cmd = m.fields[m.index].ti.Update(msg)
	}

	return m, cmd
}

// Err reports the outcome after the program has finished.
func (m InitModel) Err() error {
	return m.err
}
