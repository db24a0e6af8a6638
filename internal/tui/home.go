package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HomeModel is the landing page of the main loop: pick a section or log
// out.
type HomeModel struct {
	session Session
	items   []string
	idx     int
}

func NewHomeModel(session Session) *HomeModel {
	return &HomeModel{
		session: session,
		items:   []string{"Dashboard", "Add workout", "Progress", "Log out"},
	}
}

func (m *HomeModel) Init() tea.Cmd {
	return nil
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		switch m.idx {
		case 0:
			return m, func() tea.Msg { return NavigateTo{Page: "dashboard"} }
		case 1:
			return m, func() tea.Msg { return NavigateTo{Page: "add"} }
		case 2:
			return m, func() tea.Msg { return NavigateTo{Page: "progress"} }
		case 3:
			return m, func() tea.Msg { return LogoutRequest{} }
		}
	}

	return m, nil
}

func (m *HomeModel) View() string {
	var b strings.Builder

	b.WriteString("Signed in as ")
	b.WriteString(m.session.Username)
	b.WriteString("\n\n")

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-3s │ %-*s\n", "ID", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", 3))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d │ %-*s\n", cursor, i+1, actionColWidth, item))
	}

	return renderPage("MAIN MENU", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move")
}
