package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fraud-guard/internal/service"
)

// ForgotPasswordModel sets a new password for an existing email without
// proof of the old one. On success it returns to the menu with a notice.
type ForgotPasswordModel struct {
	ctx         context.Context
	credentials service.CredentialService

	form       form
	submitting bool
	errMsg     string
}

func NewForgotPasswordModel(ctx context.Context, credentials service.CredentialService) *ForgotPasswordModel {
	return &ForgotPasswordModel{
		ctx:         ctx,
		credentials: credentials,
		form: newForm(
			formField{label: "Email", input: newInput("name@company.com", false)},
			formField{label: "New password", input: newInput("at least 6 characters", true)},
			formField{label: "Confirm password", input: newInput("repeat password", true)},
		),
	}
}

func (m *ForgotPasswordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ForgotPasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(ResetPasswordResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = resetMessage(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    pageMenu,
				Payload: MenuNotice{Text: "Password updated for " + result.Email + ". Please sign in."},
			}
		}
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
			if m.form.value(1) != m.form.value(2) {
				m.errMsg = "Passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdReset(m.form.trimmed(0), m.form.value(1))
		}
	}

	return m, m.form.update(msg)
}

func (m *ForgotPasswordModel) View() string {
	return renderPage("RESET PASSWORD", m.form.view("Reset password", m.submitting, m.errMsg), "esc: back │ tab: next field │ enter: submit")
}

func (m *ForgotPasswordModel) cmdReset(email, password string) tea.Cmd {
	ctx := m.ctx
	credentials := m.credentials

	return func() tea.Msg {
		return ResetPasswordResult{Email: email, Err: credentials.ResetPassword(ctx, email, password)}
	}
}
