package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-fraud-guard/internal/crypto"
	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/MKhiriev/go-fraud-guard/internal/mock"
	"github.com/MKhiriev/go-fraud-guard/internal/store"
	"github.com/MKhiriev/go-fraud-guard/internal/validators"
	"github.com/MKhiriev/go-fraud-guard/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testStartedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestCredentialService(t *testing.T) (*credentialService, store.Repository) {
	t.Helper()
	repo := store.NewKeyValueRepository(store.NewMemoryKV(), logger.Nop())
	svc := NewCredentialService(repo, repo, crypto.NewLegacyEncoder(), logger.Nop()).(*credentialService)
	svc.now = func() time.Time { return testStartedAt }
	return svc, repo
}

func janeProfile() models.UserProfile {
	return models.UserProfile{
		FullName: "Jane Doe",
		Email:    "jane@x.io",
		Phone:    "+91 98765 43210",
		City:     "Pune",
		DOB:      "1990-05-17",
	}
}

func registerJane(t *testing.T, svc CredentialService) models.Session {
	t.Helper()
	session, err := svc.Register(context.Background(), janeProfile(), "secret1")
	require.NoError(t, err)
	return session
}

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestCredentialService_Register_Success(t *testing.T) {
	// Arrange
	svc, repo := newTestCredentialService(t)
	ctx := context.Background()

	// Act
	session, err := svc.Register(ctx, janeProfile(), "secret1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "jane@x.io", session.Email)
	assert.True(t, session.IsVerified)
	assert.Equal(t, testStartedAt, session.StartedAt)

	accounts, err := repo.LoadAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("secret1")), accounts[0].Password)
	assert.True(t, accounts[0].IsVerified)

	stored, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, session.Email, stored.Email)
}

func TestCredentialService_Register_DuplicateIgnoresCase(t *testing.T) {
	svc, repo := newTestCredentialService(t)
	registerJane(t, svc)

	profile := janeProfile()
	profile.Email = "JANE@X.IO"
	_, err := svc.Register(context.Background(), profile, "another1")

	assert.ErrorIs(t, err, ErrDuplicateAccount)
	accounts, err := repo.LoadAccounts(context.Background())
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestCredentialService_Register_InvalidData(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(p *models.UserProfile)
		password string
		cause    error
	}{
		{name: "missing name", mutate: func(p *models.UserProfile) { p.FullName = "" }, password: "secret1", cause: validators.ErrEmptyFullName},
		{name: "missing email", mutate: func(p *models.UserProfile) { p.Email = " " }, password: "secret1", cause: validators.ErrEmptyEmail},
		{name: "malformed email", mutate: func(p *models.UserProfile) { p.Email = "jane" }, password: "secret1", cause: validators.ErrInvalidEmail},
		{name: "short password", mutate: func(*models.UserProfile) {}, password: "12345", cause: validators.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestCredentialService(t)
			profile := janeProfile()
			tt.mutate(&profile)

			_, err := svc.Register(context.Background(), profile, tt.password)

			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.cause)
			session, err := repo.LoadSession(context.Background())
			require.NoError(t, err)
			assert.Nil(t, session)
		})
	}
}

func TestCredentialService_Register_StorageErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mock.NewMockAccountRepository(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)
	svc := NewCredentialService(accounts, sessions, crypto.NewLegacyEncoder(), logger.Nop())

	t.Run("load fails", func(t *testing.T) {
		accounts.EXPECT().LoadAccounts(gomock.Any()).Return(nil, errStorage)

		_, err := svc.Register(context.Background(), janeProfile(), "secret1")
		assert.ErrorIs(t, err, errStorage)
	})

	t.Run("unique violation maps to duplicate", func(t *testing.T) {
		accounts.EXPECT().LoadAccounts(gomock.Any()).Return(nil, nil)
		accounts.EXPECT().SaveAccounts(gomock.Any(), gomock.Any()).Return(store.ErrDuplicateKey)

		_, err := svc.Register(context.Background(), janeProfile(), "secret1")
		assert.ErrorIs(t, err, ErrDuplicateAccount)
	})

	t.Run("session save fails", func(t *testing.T) {
		accounts.EXPECT().LoadAccounts(gomock.Any()).Return(nil, nil)
		accounts.EXPECT().SaveAccounts(gomock.Any(), gomock.Any()).Return(nil)
		sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(errStorage)

		_, err := svc.Register(context.Background(), janeProfile(), "secret1")
		assert.ErrorIs(t, err, errStorage)
	})
}

func TestCredentialService_Register_EncoderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	encoder := mock.NewMockPasswordEncoder(ctrl)
	repo := store.NewKeyValueRepository(store.NewMemoryKV(), logger.Nop())
	svc := NewCredentialService(repo, repo, encoder, logger.Nop())

	encoder.EXPECT().Encode("secret1").Return("", errors.New("entropy exhausted"))

	_, err := svc.Register(context.Background(), janeProfile(), "secret1")

	require.Error(t, err)
	accounts, err := repo.LoadAccounts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

// ─────────────────────────────────────────────
// Login / Logout / CurrentSession
// ─────────────────────────────────────────────

func TestCredentialService_Login(t *testing.T) {
	svc, _ := newTestCredentialService(t)
	registerJane(t, svc)
	require.NoError(t, svc.Logout(context.Background()))

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "exact", email: "jane@x.io", password: "secret1"},
		{name: "email case ignored", email: "Jane@X.io", password: "secret1"},
		{name: "wrong password", email: "jane@x.io", password: "secret2", wantErr: ErrInvalidCredentials},
		{name: "unknown email", email: "john@x.io", password: "secret1", wantErr: ErrInvalidCredentials},
		{name: "empty password", email: "jane@x.io", password: "", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "jane@x.io", session.Email)
			assert.Equal(t, "Jane Doe", session.FullName)
		})
	}
}

func TestCredentialService_LogoutIsIdempotent(t *testing.T) {
	svc, _ := newTestCredentialService(t)
	ctx := context.Background()
	registerJane(t, svc)

	require.NoError(t, svc.Logout(ctx))
	require.NoError(t, svc.Logout(ctx))

	_, ok, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCredentialService_CurrentSession(t *testing.T) {
	svc, _ := newTestCredentialService(t)
	ctx := context.Background()

	_, ok, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	registered := registerJane(t, svc)

	session, ok, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, registered, session)
}

// ─────────────────────────────────────────────
// UpdateProfile
// ─────────────────────────────────────────────

func TestCredentialService_UpdateProfile_MergesNonEmptyFields(t *testing.T) {
	svc, repo := newTestCredentialService(t)
	ctx := context.Background()
	session := registerJane(t, svc)
	svc.now = func() time.Time { return testStartedAt.Add(time.Hour) }

	updated, err := svc.UpdateProfile(ctx, session, models.ProfileUpdate{City: "Mumbai", IDType: "PAN"})

	require.NoError(t, err)
	assert.Equal(t, "Mumbai", updated.City)
	assert.Equal(t, "PAN", updated.IDType)
	assert.Equal(t, "Jane Doe", updated.FullName)
	assert.Equal(t, "+91 98765 43210", updated.Phone)
	assert.True(t, updated.IsVerified)
	assert.Equal(t, testStartedAt, updated.StartedAt)

	accounts, err := repo.LoadAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", accounts[0].City)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("secret1")), accounts[0].Password)
}

func TestCredentialService_UpdateProfile_EmailChange(t *testing.T) {
	svc, _ := newTestCredentialService(t)
	ctx := context.Background()
	session := registerJane(t, svc)

	updated, err := svc.UpdateProfile(ctx, session, models.ProfileUpdate{Email: "jane.doe@x.io"})
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@x.io", updated.Email)

	_, err = svc.Login(ctx, "jane.doe@x.io", "secret1")
	assert.NoError(t, err)
	_, err = svc.Login(ctx, "jane@x.io", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCredentialService_UpdateProfile_EmailCollision(t *testing.T) {
	svc, _ := newTestCredentialService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, models.UserProfile{FullName: "John", Email: "john@x.io"}, "secret1")
	require.NoError(t, err)
	session := registerJane(t, svc)

	_, err = svc.UpdateProfile(ctx, session, models.ProfileUpdate{Email: "JOHN@x.io"})
	assert.ErrorIs(t, err, ErrDuplicateAccount)

	// changing only the case of one's own email is allowed
	_, err = svc.UpdateProfile(ctx, session, models.ProfileUpdate{Email: "Jane@x.io"})
	assert.NoError(t, err)
}

func TestCredentialService_UpdateProfile_Errors(t *testing.T) {
	t.Run("empty session", func(t *testing.T) {
		svc, _ := newTestCredentialService(t)
		_, err := svc.UpdateProfile(context.Background(), models.Session{}, models.ProfileUpdate{City: "Pune"})
		assert.ErrorIs(t, err, ErrNoActiveSession)
	})

	t.Run("after logout", func(t *testing.T) {
		svc, _ := newTestCredentialService(t)
		session := registerJane(t, svc)
		require.NoError(t, svc.Logout(context.Background()))

		_, err := svc.UpdateProfile(context.Background(), session, models.ProfileUpdate{City: "Pune"})
		assert.ErrorIs(t, err, ErrNoActiveSession)
	})

	t.Run("session replaced by another user", func(t *testing.T) {
		svc, _ := newTestCredentialService(t)
		stale := registerJane(t, svc)
		_, err := svc.Register(context.Background(), models.UserProfile{FullName: "John", Email: "john@x.io"}, "secret1")
		require.NoError(t, err)

		_, err = svc.UpdateProfile(context.Background(), stale, models.ProfileUpdate{City: "Pune"})
		assert.ErrorIs(t, err, ErrNoActiveSession)
	})

	t.Run("account missing", func(t *testing.T) {
		svc, repo := newTestCredentialService(t)
		session := registerJane(t, svc)
		require.NoError(t, repo.SaveAccounts(context.Background(), nil))

		_, err := svc.UpdateProfile(context.Background(), session, models.ProfileUpdate{City: "Pune"})
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("empty update", func(t *testing.T) {
		svc, _ := newTestCredentialService(t)
		session := registerJane(t, svc)

		_, err := svc.UpdateProfile(context.Background(), session, models.ProfileUpdate{})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

// ─────────────────────────────────────────────
// ResetPassword / ChangePassword
// ─────────────────────────────────────────────

func TestCredentialService_ResetPassword(t *testing.T) {
	svc, repo := newTestCredentialService(t)
	ctx := context.Background()
	registerJane(t, svc)
	require.NoError(t, svc.Logout(ctx))

	require.NoError(t, svc.ResetPassword(ctx, "JANE@x.io", "newpass"))

	session, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session, "reset never opens a session")

	_, err = svc.Login(ctx, "jane@x.io", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "jane@x.io", "newpass")
	assert.NoError(t, err)
}

func TestCredentialService_ResetPassword_Errors(t *testing.T) {
	svc, _ := newTestCredentialService(t)
	registerJane(t, svc)

	assert.ErrorIs(t, svc.ResetPassword(context.Background(), "nobody@x.io", "newpass"), ErrAccountNotFound)
	assert.ErrorIs(t, svc.ResetPassword(context.Background(), "jane@x.io", "short"), ErrInvalidDataProvided)
}

func TestCredentialService_ChangePassword(t *testing.T) {
	svc, _ := newTestCredentialService(t)
	ctx := context.Background()
	registerJane(t, svc)

	assert.ErrorIs(t, svc.ChangePassword(ctx, "jane@x.io", "wrong1", "newpass"), ErrIncorrectPassword)
	assert.ErrorIs(t, svc.ChangePassword(ctx, "jane@x.io", "", "newpass"), ErrIncorrectPassword)
	assert.ErrorIs(t, svc.ChangePassword(ctx, "nobody@x.io", "secret1", "newpass"), ErrAccountNotFound)
	assert.ErrorIs(t, svc.ChangePassword(ctx, "jane@x.io", "secret1", "abc"), ErrInvalidDataProvided)

	require.NoError(t, svc.ChangePassword(ctx, "jane@x.io", "secret1", "newpass"))

	_, err := svc.Login(ctx, "jane@x.io", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "jane@x.io", "newpass")
	assert.NoError(t, err)
}

func TestCredentialService_Argon2RoundTrip(t *testing.T) {
	repo := store.NewKeyValueRepository(store.NewMemoryKV(), logger.Nop())
	encoder, err := crypto.NewPasswordEncoder("argon2id")
	require.NoError(t, err)
	svc := NewCredentialService(repo, repo, encoder, logger.Nop())
	ctx := context.Background()

	registerJane(t, svc)

	accounts, err := repo.LoadAccounts(ctx)
	require.NoError(t, err)
	assert.NotContains(t, accounts[0].Password, "secret1")

	_, err = svc.Login(ctx, "jane@x.io", "secret1")
	assert.NoError(t, err)
}
