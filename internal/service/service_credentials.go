// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-fraud-guard/internal/crypto"
	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/MKhiriev/go-fraud-guard/internal/store"
	"github.com/MKhiriev/go-fraud-guard/internal/validators"
	"github.com/MKhiriev/go-fraud-guard/models"
)

// credentialService is the concrete implementation of CredentialService.
//
// Accounts and the session live in one store and every operation is a
// read-modify-write of the full account list, so mutations are serialized
// by mu.
type credentialService struct {
	mu sync.Mutex

	accounts store.AccountRepository
	sessions store.SessionRepository

	// encoder turns raw passwords into their stored form and checks
	// candidates against it.
	encoder   crypto.PasswordEncoder
	validator validators.Validator

	now func() time.Time

	logger *logger.Logger
}

// NewCredentialService constructs a CredentialService over the given
// repositories. The encoder must be the same one the stored accounts were
// written with.
func NewCredentialService(accounts store.AccountRepository, sessions store.SessionRepository, encoder crypto.PasswordEncoder, logger *logger.Logger) CredentialService {
	return &credentialService{
		accounts:  accounts,
		sessions:  sessions,
		encoder:   encoder,
		validator: validators.NewCredentialValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

// Register creates an account for profile and signs it in.
//
// Returns:
//   - ErrInvalidDataProvided if the full name or email is missing, the email
//     is malformed, or the password is shorter than six characters.
//   - ErrDuplicateAccount if an account with the same email (ignoring case)
//     already exists.
func (s *credentialService) Register(ctx context.Context, profile models.UserProfile, rawPassword string) (models.Session, error) {
	log := logger.FromContext(ctx)

	profile.Email = strings.TrimSpace(profile.Email)
	if err := s.validator.Validate(ctx, models.RegisterRequest{UserProfile: profile, Password: rawPassword}); err != nil {
		log.Debug().Err(err).Str("func", "*credentialService.Register").Msg("invalid registration data")
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.accounts.LoadAccounts(ctx)
	if err != nil {
		log.Err(err).Str("func", "*credentialService.Register").Msg("error loading accounts")
		return models.Session{}, fmt.Errorf("error loading accounts: %w", err)
	}
	if findAccount(accounts, profile.Email) >= 0 {
		return models.Session{}, ErrDuplicateAccount
	}

	encoded, err := s.encoder.Encode(rawPassword)
	if err != nil {
		log.Err(err).Str("func", "*credentialService.Register").Msg("error encoding password")
		return models.Session{}, fmt.Errorf("error encoding password: %w", err)
	}

	profile.IsVerified = true
	account := models.UserAccount{UserProfile: profile, Password: encoded}

	if err = s.saveAccounts(ctx, append(accounts, account)); err != nil {
		return models.Session{}, err
	}

	session := models.SessionFromAccount(account, s.now())
	if err = s.sessions.SaveSession(ctx, &session); err != nil {
		log.Err(err).Str("func", "*credentialService.Register").Msg("error saving session")
		return models.Session{}, fmt.Errorf("error saving session: %w", err)
	}

	log.Info().Str("email", account.Email).Msg("account registered")
	return session, nil
}

// Login opens a session for the account matching email and rawPassword.
// Unknown emails and wrong passwords both return ErrInvalidCredentials.
func (s *credentialService) Login(ctx context.Context, email, rawPassword string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.LoginRequest{Email: email, Password: rawPassword}); err != nil {
		return models.Session{}, ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.accounts.LoadAccounts(ctx)
	if err != nil {
		log.Err(err).Str("func", "*credentialService.Login").Msg("error loading accounts")
		return models.Session{}, fmt.Errorf("error loading accounts: %w", err)
	}

	idx := findAccount(accounts, email)
	if idx < 0 || !s.encoder.Matches(accounts[idx].Password, rawPassword) {
		log.Info().Str("email", email).Msg("login rejected")
		return models.Session{}, ErrInvalidCredentials
	}

	session := models.SessionFromAccount(accounts[idx], s.now())
	if err = s.sessions.SaveSession(ctx, &session); err != nil {
		log.Err(err).Str("func", "*credentialService.Login").Msg("error saving session")
		return models.Session{}, fmt.Errorf("error saving session: %w", err)
	}

	return session, nil
}

// UpdateProfile merges the non-empty fields of update into the account of
// session and refreshes the stored session.
//
// Returns:
//   - ErrNoActiveSession if session is empty or is not the stored session.
//   - ErrInvalidDataProvided if update is empty or carries a malformed email.
//   - ErrAccountNotFound if the session email has no account.
//   - ErrDuplicateAccount if the new email belongs to another account.
func (s *credentialService) UpdateProfile(ctx context.Context, session models.Session, update models.ProfileUpdate) (models.Session, error) {
	log := logger.FromContext(ctx)

	if session.IsEmpty() {
		return models.Session{}, ErrNoActiveSession
	}

	update.Email = strings.TrimSpace(update.Email)
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.sessions.LoadSession(ctx)
	if err != nil {
		log.Err(err).Str("func", "*credentialService.UpdateProfile").Msg("error loading session")
		return models.Session{}, fmt.Errorf("error loading session: %w", err)
	}
	if current == nil || !models.SameEmail(current.Email, session.Email) {
		return models.Session{}, ErrNoActiveSession
	}

	accounts, err := s.accounts.LoadAccounts(ctx)
	if err != nil {
		log.Err(err).Str("func", "*credentialService.UpdateProfile").Msg("error loading accounts")
		return models.Session{}, fmt.Errorf("error loading accounts: %w", err)
	}

	idx := findAccount(accounts, session.Email)
	if idx < 0 {
		return models.Session{}, ErrAccountNotFound
	}
	if update.Email != "" && !models.SameEmail(update.Email, accounts[idx].Email) && findAccount(accounts, update.Email) >= 0 {
		return models.Session{}, ErrDuplicateAccount
	}

	if err = mergo.Merge(&accounts[idx].UserProfile, profileFromUpdate(update), mergo.WithOverride); err != nil {
		log.Err(err).Str("func", "*credentialService.UpdateProfile").Msg("error merging profile")
		return models.Session{}, fmt.Errorf("error merging profile: %w", err)
	}

	if err = s.saveAccounts(ctx, accounts); err != nil {
		return models.Session{}, err
	}

	refreshed := models.SessionFromAccount(accounts[idx], current.StartedAt)
	if err = s.sessions.SaveSession(ctx, &refreshed); err != nil {
		log.Err(err).Str("func", "*credentialService.UpdateProfile").Msg("error saving session")
		return models.Session{}, fmt.Errorf("error saving session: %w", err)
	}

	return refreshed, nil
}

// ResetPassword overwrites the password of the account with email without
// opening a session.
func (s *credentialService) ResetPassword(ctx context.Context, email, newRawPassword string) error {
	if err := s.validator.Validate(ctx, models.ResetPasswordRequest{Email: email, NewPassword: newRawPassword}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setPassword(ctx, email, newRawPassword, nil)
}

// ChangePassword overwrites the password of the account with email once
// oldRawPassword has been verified.
func (s *credentialService) ChangePassword(ctx context.Context, email, oldRawPassword, newRawPassword string) error {
	request := models.ChangePasswordRequest{CurrentPassword: oldRawPassword, NewPassword: newRawPassword}
	if err := s.validator.Validate(ctx, request, validators.FieldNewPassword); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setPassword(ctx, email, newRawPassword, func(account models.UserAccount) error {
		if !s.encoder.Matches(account.Password, oldRawPassword) {
			return ErrIncorrectPassword
		}
		return nil
	})
}

func (s *credentialService) Logout(ctx context.Context) error {
	if err := s.sessions.SaveSession(ctx, nil); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*credentialService.Logout").Msg("error clearing session")
		return fmt.Errorf("error clearing session: %w", err)
	}
	return nil
}

func (s *credentialService) CurrentSession(ctx context.Context) (models.Session, bool, error) {
	session, err := s.sessions.LoadSession(ctx)
	if err != nil {
		return models.Session{}, false, fmt.Errorf("error loading session: %w", err)
	}
	if session == nil || session.IsEmpty() {
		return models.Session{}, false, nil
	}
	return *session, true, nil
}

// setPassword must be called with mu held. check, when set, runs against
// the matched account before anything is written.
func (s *credentialService) setPassword(ctx context.Context, email, newRawPassword string, check func(models.UserAccount) error) error {
	log := logger.FromContext(ctx)

	accounts, err := s.accounts.LoadAccounts(ctx)
	if err != nil {
		log.Err(err).Str("func", "*credentialService.setPassword").Msg("error loading accounts")
		return fmt.Errorf("error loading accounts: %w", err)
	}

	idx := findAccount(accounts, email)
	if idx < 0 {
		return ErrAccountNotFound
	}
	if check != nil {
		if err = check(accounts[idx]); err != nil {
			return err
		}
	}

	if accounts[idx].Password, err = s.encoder.Encode(newRawPassword); err != nil {
		log.Err(err).Str("func", "*credentialService.setPassword").Msg("error encoding password")
		return fmt.Errorf("error encoding password: %w", err)
	}

	return s.saveAccounts(ctx, accounts)
}

func (s *credentialService) saveAccounts(ctx context.Context, accounts []models.UserAccount) error {
	if err := s.accounts.SaveAccounts(ctx, accounts); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*credentialService.saveAccounts").Msg("error saving accounts")
		if errors.Is(err, store.ErrDuplicateKey) {
			return ErrDuplicateAccount
		}
		return fmt.Errorf("error saving accounts: %w", err)
	}
	return nil
}

// findAccount returns the index of the account with email, ignoring case,
// or -1.
func findAccount(accounts []models.UserAccount, email string) int {
	for i := range accounts {
		if models.SameEmail(accounts[i].Email, email) {
			return i
		}
	}
	return -1
}

func profileFromUpdate(update models.ProfileUpdate) models.UserProfile {
	return models.UserProfile{
		FullName: update.FullName,
		Email:    update.Email,
		Phone:    update.Phone,
		City:     update.City,
		DOB:      update.DOB,
		IDType:   update.IDType,
		IDNumber: update.IDNumber,
	}
}
