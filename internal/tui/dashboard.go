package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/metrics"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/service"
	"github.com/ccooddoo/Personal-Fitness-Tracker/models"
)

// DashboardModel shows the stored profile of the signed-in user: the raw
// numbers, the BMI gauge, and the recommendation for the BMI band.
type DashboardModel struct {
	ctx     context.Context
	auth    service.AuthService
	session Session

	user    models.User
	loading bool
	errMsg  string
}

func NewDashboardModel(ctx context.Context, auth service.AuthService, session Session) *DashboardModel {
	return &DashboardModel{
		ctx:     ctx,
		auth:    auth,
		session: session,
		loading: true,
	}
}

// Init implements [tea.Model]. Kicks off the async profile load.
func (m *DashboardModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoadProfile()
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if loaded, ok := msg.(profileLoadedMsg); ok {
		m.loading = false
		if loaded.err != nil {
			m.errMsg = humanizeError(loaded.err)
			return m, nil
		}
		m.errMsg = ""
		m.user = loaded.user
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "esc" {
		return m, func() tea.Msg { return NavigateTo{Page: "home"} }
	}

	return m, nil
}

func (m *DashboardModel) View() string {
	if m.loading {
		return renderPage("DASHBOARD", "Loading profile...", "esc: back")
	}
	if m.errMsg != "" {
		return renderPage("DASHBOARD", errorStyle.Render("Error: "+m.errMsg), "esc: back")
	}

	classification := metrics.ClassifyBMI(m.user.BMI)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Age: %d   Height: %.0f cm   Weight: %.0f kg\n\n", m.user.Age, m.user.Height, m.user.Weight))
	b.WriteString(fmt.Sprintf("BMI: %.2f (%s)\n", m.user.BMI, classification.Category))
	b.WriteString(renderBMIGauge(m.user.BMI, 44))
	b.WriteString("\n\n")
	b.WriteString(classification.Advice)
	b.WriteString("\n")
	b.WriteString(classification.Tip)

	return renderPage("DASHBOARD — "+m.session.Username, b.String(), "esc: back")
}

func (m *DashboardModel) cmdLoadProfile() tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	username := m.session.Username

	return func() tea.Msg {
		user, err := auth.Profile(ctx, username)
		return profileLoadedMsg{user: user, err: err}
	}
}

// renderBMIGauge draws a fixed 10..40 scale with the 18.5 and 25 band
// boundaries marked and the current value highlighted.
func renderBMIGauge(bmi float64, width int) string {
	const lo, hi = 10.0, 40.0

	position := func(v float64) int {
		p := int((v - lo) / (hi - lo) * float64(width-1))
		if p < 0 {
			p = 0
		}
		if p > width-1 {
			p = width - 1
		}
		return p
	}

	scale := []rune(strings.Repeat("─", width))
	scale[position(18.5)] = '┼'
	scale[position(25.0)] = '┼'
	scale[position(bmi)] = '●'

	var b strings.Builder
	b.WriteString(gaugeStyle.Render(string(scale)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%-*s%s", position(18.5)+1, "10", "18.5"))
	b.WriteString(fmt.Sprintf("%*s", position(25.0)-position(18.5), "25"))
	b.WriteString(fmt.Sprintf("%*s", width-position(25.0)-1, "40"))
	return b.String()
}
