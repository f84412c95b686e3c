// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fraud-guard/internal/service"
)

// LoginModel is the Bubble Tea model for the sign-in screen. It renders the
// email and password inputs and dispatches an async login command on submit.
// On success a [LoginResult] message is produced and handled by [RootModel]
// to finish the authentication flow.
type LoginModel struct {
	ctx         context.Context
	credentials service.CredentialService

	form       form
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with the email field focused and a
// masked password field.
func NewLoginModel(ctx context.Context, credentials service.CredentialService) *LoginModel {
	return &LoginModel{
		ctx:         ctx,
		credentials: credentials,
		form: newForm(
			formField{label: "Email", input: newInput("name@company.com", false)},
			formField{label: "Password", input: newInput("password", true)},
		),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]  clears the submitting state; on error, populates errMsg.
//   - esc            navigates back to the menu.
//   - tab/shift+tab  moves focus between inputs.
//   - enter          checks that both fields are filled and dispatches the login.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = userMessage(result.Err)
		}
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

			email := m.form.trimmed(0)
			password := m.form.value(1)
			if email == "" || password == "" {
				m.errMsg = "Email and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(email, password)
		}
	}

	return m, m.form.update(msg)
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	return renderPage("SIGN IN", m.form.view("Sign in", m.submitting, m.errMsg), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	credentials := m.credentials

	return func() tea.Msg {
		session, err := credentials.Login(ctx, email, password)
		return LoginResult{Session: session, Err: err}
	}
}
