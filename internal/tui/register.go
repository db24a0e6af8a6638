package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/service"
	"github.com/ccooddoo/Personal-Fitness-Tracker/models"
)

const (
	regFieldUsername = iota
	regFieldAge
	regFieldHeight
	regFieldWeight
	regFieldPassword
	regFieldRepeat
	regFieldCount
)

// RegisterModel is the Bubble Tea model for the registration screen. It
// renders six text inputs (username, age, height, weight, password, and
// password confirmation) and dispatches an async registration command on
// form submission. On success a [RegisterResult] message is produced; the
// model then resets the form and navigates back to the menu, passing a
// [RegisterSuccessNotice] payload.
type RegisterModel struct {
	ctx  context.Context
	auth service.AuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with six pre-configured text
// inputs. The username field receives focus immediately; the password
// fields use masked echo and the numeric fields accept digits only.
func NewRegisterModel(ctx context.Context, auth service.AuthService) *RegisterModel {
	digitsOnly := func(s string) error {
		for _, r := range s {
			if (r < '0' || r > '9') && r != '.' {
				return strconv.ErrSyntax
			}
		}
		return nil
	}

	fields := make([]textinput.Model, regFieldCount)

	fields[regFieldUsername] = textinput.New()
	fields[regFieldUsername].Placeholder = "username"
	fields[regFieldUsername].CharLimit = 30
	fields[regFieldUsername].Width = 40
	fields[regFieldUsername].Focus()

	fields[regFieldAge] = textinput.New()
	fields[regFieldAge].Placeholder = "age, years (10-100)"
	fields[regFieldAge].CharLimit = 3
	fields[regFieldAge].Width = 40
	fields[regFieldAge].Validate = digitsOnly

	fields[regFieldHeight] = textinput.New()
	fields[regFieldHeight].Placeholder = "height, cm (100-250)"
	fields[regFieldHeight].CharLimit = 6
	fields[regFieldHeight].Width = 40
	fields[regFieldHeight].Validate = digitsOnly

	fields[regFieldWeight] = textinput.New()
	fields[regFieldWeight].Placeholder = "weight, kg (30-200)"
	fields[regFieldWeight].CharLimit = 6
	fields[regFieldWeight].Width = 40
	fields[regFieldWeight].Validate = digitsOnly

	fields[regFieldPassword] = textinput.New()
	fields[regFieldPassword].Placeholder = "password"
	fields[regFieldPassword].EchoMode = textinput.EchoPassword
	fields[regFieldPassword].EchoCharacter = '*'
	fields[regFieldPassword].Width = 40

	fields[regFieldRepeat] = textinput.New()
	fields[regFieldRepeat].Placeholder = "repeat password"
	fields[regFieldRepeat].EchoMode = textinput.EchoPassword
	fields[regFieldRepeat].EchoCharacter = '*'
	fields[regFieldRepeat].Width = 40

	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		inputs: fields,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the
// active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [RegisterResult] — clears submitting state; on error, populates
//     errMsg; on success, resets the form and navigates to the menu.
//   - esc              — cancels and navigates back to the menu.
//   - tab              — moves focus to the next input.
//   - shift+tab        — moves focus to the previous input.
//   - enter            — validates inputs and dispatches the async
//     registration command.
//
// All other key events are forwarded to the focused input widget.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    "menu",
				Payload: RegisterSuccessNotice{Username: result.User.Username},
			}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			reg, err := m.collectForm()
			if err != "" {
				m.errMsg = err
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(reg)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the registration form as a
// two-column table with all six input fields, a submission indicator, and
// an optional error message.
func (m *RegisterModel) View() string {
	labels := [regFieldCount]string{
		"Username       ",
		"Age            ",
		"Height, cm     ",
		"Weight, kg     ",
		"Password       ",
		"Repeat password",
	}

	var b strings.Builder
	b.WriteString("Field           │ Value\n")
	b.WriteString("────────────────┼────────────────────────────────────\n")
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(" │ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

// collectForm validates the raw input values and assembles a registration
// request. The returned string is a user-facing error message, empty when
// the form is valid.
func (m *RegisterModel) collectForm() (models.Registration, string) {
	username := strings.TrimSpace(m.inputs[regFieldUsername].Value())
	pass := m.inputs[regFieldPassword].Value()
	repeat := m.inputs[regFieldRepeat].Value()

	if username == "" || pass == "" || repeat == "" {
		return models.Registration{}, "All fields are required"
	}
	if pass != repeat {
		return models.Registration{}, "Passwords do not match"
	}

	age, err := strconv.Atoi(strings.TrimSpace(m.inputs[regFieldAge].Value()))
	if err != nil || age < 10 || age > 100 {
		return models.Registration{}, "Age must be a whole number between 10 and 100"
	}

	height, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[regFieldHeight].Value()), 64)
	if err != nil || height < 100 || height > 250 {
		return models.Registration{}, "Height must be between 100 and 250 cm"
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[regFieldWeight].Value()), 64)
	if err != nil || weight < 30 || weight > 200 {
		return models.Registration{}, "Weight must be between 30 and 200 kg"
	}

	return models.Registration{
		Username: username,
		Age:      age,
		Height:   height,
		Weight:   weight,
		Password: pass,
	}, ""
}

func (m *RegisterModel) cmdRegister(reg models.Registration) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.Register(ctx, reg)
		return RegisterResult{
			User: user,
			Err:  err,
		}
	}
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
