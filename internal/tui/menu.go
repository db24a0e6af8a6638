package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuModel is the entry page of the login flow: pick between signing in
// and creating an account.
type MenuModel struct {
	items  []string
	idx    int
	status string
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []string{"Log in", "Register"},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(RegisterSuccessNotice); ok {
		if notice.Username != "" {
			m.status = "Account " + notice.Username + " created, you can log in now"
		} else {
			m.status = "Account created, you can log in now"
		}
		return m, nil
	}

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
		if m.idx == 0 {
			return m, func() tea.Msg { return NavigateTo{Page: "login"} }
		}
		return m, func() tea.Msg { return NavigateTo{Page: "register"} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item); w > actionColWidth {
			actionColWidth = w
		}
	}

	if m.status != "" {
		b.WriteString(successStyle.Render("OK: " + m.status))
		b.WriteString("\n\n")
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

	return renderPage("PERSONAL FITNESS TRACKER", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move")
}
