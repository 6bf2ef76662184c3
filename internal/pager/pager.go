// Package pager displays rendered output in a scrollable full-screen
// viewport.
package pager

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type model struct {
	content string
	vp      viewport.Model
	ready   bool
}

func newModel(content string) model {
	return model{content: content, vp: viewport.New(0, 0)}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - 1 // status line
		m.vp.SetContent(m.content)
		m.ready = true
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

var statusStyle = lipgloss.NewStyle().Faint(true)

func (m model) View() string {
	if !m.ready {
		return ""
	}
	return m.vp.View() + "\n" + statusStyle.Render("↑/↓ scroll · q quit")
}

// Run shows content in an alternate-screen pager and blocks until the
// user quits.
func Run(content string) error {
	program := tea.NewProgram(newModel(content), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	return err
}
