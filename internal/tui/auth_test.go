package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-fraud-guard/internal/app"
	"github.com/MKhiriev/go-fraud-guard/internal/service"
	"github.com/MKhiriev/go-fraud-guard/models"
)

func newRoot(t *testing.T) (RootModel, serviceMocks) {
	t.Helper()
	services, mocks := newServiceMocks(t)
	ctx := context.Background()

	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, services.CredentialService),
		pageRegister: NewRegisterModel(ctx, services.CredentialService),
		pageForgot:   NewForgotPasswordModel(ctx, services.CredentialService),
	}
	return NewRootModel(pages, pageMenu, models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc123")), mocks
}

func rootUpdate(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

func setFields(f *form, values ...string) {
	for i, v := range values {
		f.fields[i].input.SetValue(v)
	}
}

// ── menu ──────────────────────────────────────────────────────────────────────

func TestMenu_EnterNavigatesToSelectedPage(t *testing.T) {
	tests := []struct {
		name  string
		downs int
		want  string
	}{
		{name: "sign in", downs: 0, want: pageLogin},
		{name: "create account", downs: 1, want: pageRegister},
		{name: "forgot password", downs: 2, want: pageForgot},
		{name: "cursor stops at last item", downs: 5, want: pageForgot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			m := NewMenuModel()
			for range tt.downs {
				m.Update(keyPress(tea.KeyDown))
			}

			// Act
			_, cmd := m.Update(keyPress(tea.KeyEnter))

			// Assert
			require.NotNil(t, cmd)
			assert.Equal(t, NavigateTo{Page: tt.want}, cmd())
		})
	}
}

func TestMenu_NoticeIsShown(t *testing.T) {
	m := NewMenuModel()
	m.Update(MenuNotice{Text: "Password updated"})

	assert.Contains(t, m.View(), "OK: Password updated")
}

// ── root model ────────────────────────────────────────────────────────────────

func TestRoot_CtrlCQuitsByUser(t *testing.T) {
	r, _ := newRoot(t)

	r, cmd := rootUpdate(t, r, keyPress(tea.KeyCtrlC))

	assert.True(t, r.quitByUser)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestRoot_BuildInfoToggleOnMenuOnly(t *testing.T) {
	r, _ := newRoot(t)

	r, _ = rootUpdate(t, r, runes("v"))
	assert.True(t, r.showBuildInfo)
	assert.Contains(t, r.View(), "abc123")

	r, _ = rootUpdate(t, r, keyPress(tea.KeyEsc))
	assert.False(t, r.showBuildInfo)

	r, _ = rootUpdate(t, r, NavigateTo{Page: pageLogin})
	r, _ = rootUpdate(t, r, runes("v"))
	assert.False(t, r.showBuildInfo)
}

func TestRoot_NavigatePayloadIsDelivered(t *testing.T) {
	r, _ := newRoot(t)
	r, _ = rootUpdate(t, r, NavigateTo{Page: pageLogin})

	r, cmd := rootUpdate(t, r, NavigateTo{Page: pageMenu, Payload: MenuNotice{Text: "hello"}})
	require.NotNil(t, cmd)

	r, _ = rootUpdate(t, r, cmd())
	assert.Contains(t, r.View(), "OK: hello")
}

func TestRoot_UnknownPageIgnored(t *testing.T) {
	r, _ := newRoot(t)
	before := r.current

	r, cmd := rootUpdate(t, r, NavigateTo{Page: "nope"})
	assert.Nil(t, cmd)
	assert.Same(t, before, r.current)
}

// ── login ─────────────────────────────────────────────────────────────────────

func TestLogin_EmptyFieldsRejectedLocally(t *testing.T) {
	_, mocks := newServiceMocks(t)
	m := NewLoginModel(context.Background(), mocks.credentials)

	_, cmd := m.Update(keyPress(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Equal(t, "Email and password are required", m.errMsg)
}

func TestLogin_SuccessOpensSession(t *testing.T) {
	// Arrange
	r, mocks := newRoot(t)
	r, _ = rootUpdate(t, r, NavigateTo{Page: pageLogin})
	login := r.current.(*LoginModel)
	setFields(&login.form, " jane@example.com ", "secret1")

	mocks.credentials.EXPECT().Login(gomock.Any(), "jane@example.com", "secret1").Return(testSession, nil)

	// Act
	r, cmd := rootUpdate(t, r, keyPress(tea.KeyEnter))
	require.True(t, login.submitting)
	r, quit := rootUpdate(t, r, cmd())

	// Assert
	assert.Equal(t, testSession, r.session)
	require.NotNil(t, quit)
	assert.Equal(t, tea.QuitMsg{}, quit())
}

func TestLogin_FailureShowsMessage(t *testing.T) {
	r, mocks := newRoot(t)
	r, _ = rootUpdate(t, r, NavigateTo{Page: pageLogin})
	login := r.current.(*LoginModel)
	setFields(&login.form, "jane@example.com", "wrong")

	mocks.credentials.EXPECT().Login(gomock.Any(), "jane@example.com", "wrong").Return(models.Session{}, service.ErrInvalidCredentials)

	r, cmd := rootUpdate(t, r, keyPress(tea.KeyEnter))
	r, _ = rootUpdate(t, r, cmd())

	assert.True(t, r.session.IsEmpty())
	assert.False(t, login.submitting)
	assert.Equal(t, app.MsgInvalidCredentials, login.errMsg)
	assert.Contains(t, r.View(), app.MsgInvalidCredentials)
}

// ── register ──────────────────────────────────────────────────────────────────

func TestRegister_PasswordMismatchRejectedLocally(t *testing.T) {
	_, mocks := newServiceMocks(t)
	m := NewRegisterModel(context.Background(), mocks.credentials)
	setFields(&m.form, "Jane Doe", "+1 555", "jane@example.com", "secret1", "secret2")

	_, cmd := m.Update(keyPress(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Equal(t, "Passwords do not match", m.errMsg)
}

func TestRegister_SubmitsProfile(t *testing.T) {
	// Arrange
	_, mocks := newServiceMocks(t)
	m := NewRegisterModel(context.Background(), mocks.credentials)
	setFields(&m.form, " Jane Doe ", "+1 555", "jane@example.com", "secret1", "secret1")

	want := models.UserProfile{FullName: "Jane Doe", Phone: "+1 555", Email: "jane@example.com"}
	mocks.credentials.EXPECT().Register(gomock.Any(), want, "secret1").Return(testSession, nil)

	// Act
	_, cmd := m.Update(keyPress(tea.KeyEnter))
	require.NotNil(t, cmd)
	msg := cmd()

	// Assert
	assert.Equal(t, RegisterResult{Session: testSession}, msg)
}

func TestRegister_DuplicateShowsMessage(t *testing.T) {
	_, mocks := newServiceMocks(t)
	m := NewRegisterModel(context.Background(), mocks.credentials)

	m.submitting = true
	m.Update(RegisterResult{Err: service.ErrDuplicateAccount})

	assert.False(t, m.submitting)
	assert.Equal(t, app.MsgDuplicateAccount, m.errMsg)
}

// ── forgot password ───────────────────────────────────────────────────────────

func TestForgotPassword_SuccessReturnsToMenuWithNotice(t *testing.T) {
	// Arrange
	_, mocks := newServiceMocks(t)
	m := NewForgotPasswordModel(context.Background(), mocks.credentials)
	setFields(&m.form, "jane@example.com", "newpass", "newpass")
	mocks.credentials.EXPECT().ResetPassword(gomock.Any(), "jane@example.com", "newpass").Return(nil)

	// Act
	_, cmd := m.Update(keyPress(tea.KeyEnter))
	require.NotNil(t, cmd)
	_, nav := m.Update(cmd())

	// Assert
	require.NotNil(t, nav)
	msg, ok := nav().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageMenu, msg.Page)
	assert.Equal(t, MenuNotice{Text: "Password updated for jane@example.com. Please sign in."}, msg.Payload)
	assert.Empty(t, m.form.value(0))
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	_, mocks := newServiceMocks(t)
	m := NewForgotPasswordModel(context.Background(), mocks.credentials)

	_, cmd := m.Update(ResetPasswordResult{Email: "ghost@example.com", Err: service.ErrAccountNotFound})

	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgNoAccountForEmail, m.errMsg)
}

func TestForgotPassword_EscGoesBack(t *testing.T) {
	_, mocks := newServiceMocks(t)
	m := NewForgotPasswordModel(context.Background(), mocks.credentials)

	_, cmd := m.Update(keyPress(tea.KeyEsc))

	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageMenu}, cmd())
}
