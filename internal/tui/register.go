package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fraud-guard/internal/service"
	"github.com/MKhiriev/go-fraud-guard/models"
)

const (
	registerFullName = iota
	registerPhone
	registerEmail
	registerPassword
	registerConfirm
)

// RegisterModel is the Bubble Tea model for the account creation screen.
// Registration opens a session right away, so a successful [RegisterResult]
// ends the authentication flow in [RootModel].
type RegisterModel struct {
	ctx         context.Context
	credentials service.CredentialService

	form       form
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, credentials service.CredentialService) *RegisterModel {
	return &RegisterModel{
		ctx:         ctx,
		credentials: credentials,
		form: newForm(
			formField{label: "Full name", input: newInput("John Doe", false)},
			formField{label: "Phone", input: newInput("+1 555 000 0000", false)},
			formField{label: "Email", input: newInput("name@company.com", false)},
			formField{label: "Password", input: newInput("at least 6 characters", true)},
			formField{label: "Confirm password", input: newInput("repeat password", true)},
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = userMessage(result.Err)
			return m, nil
		}
		m.errMsg = ""
		m.form.reset()
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab", "down":
			m.form.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.form.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			// Everything else is checked by the credential service.
			if m.form.value(registerPassword) != m.form.value(registerConfirm) {
				m.errMsg = "Passwords do not match"
				return m, nil
			}

			profile := models.UserProfile{
				FullName: m.form.trimmed(registerFullName),
				Phone:    m.form.trimmed(registerPhone),
				Email:    m.form.trimmed(registerEmail),
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(profile, m.form.value(registerPassword))
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) View() string {
	return renderPage("CREATE ACCOUNT", m.form.view("Create account", m.submitting, m.errMsg), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(profile models.UserProfile, password string) tea.Cmd {
	ctx := m.ctx
	credentials := m.credentials

	return func() tea.Msg {
		session, err := credentials.Register(ctx, profile, password)
		return RegisterResult{Session: session, Err: err}
	}
}
