// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-notas Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/notasapp/go-notas/internal/adapter"
	"github.com/notasapp/go-notas/internal/logger"
	"github.com/notasapp/go-notas/internal/validators"
	"github.com/notasapp/go-notas/models"
)

type sessionService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	mu     sync.RWMutex
	status models.SessionStatus
}

// NewSessionService builds the [SessionService] on top of the server
// adapter. It registers itself as the adapter's unauthorized hook, so a
// 401-equivalent rejection of any authenticated request forces the session
// back to the unauthenticated state.
func NewSessionService(serverAdapter adapter.ServerAdapter, log *logger.Logger) SessionService {
	s := &sessionService{
		adapter: serverAdapter,
		logger:  log,
		status:  models.StatusUnauthenticated,
	}
	serverAdapter.OnUnauthorized(s.expire)
	return s
}

// Login implements [SessionService].
func (s *sessionService) Login(ctx context.Context, email, password string) (string, error) {
	if err := validators.ValidateLogin(email, password); err != nil {
		return "", err
	}

	s.setStatus(models.StatusAuthenticating)

	token, err := s.adapter.Login(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		s.setStatus(models.StatusUnauthenticated)
		switch {
		case errors.Is(err, adapter.ErrUnauthorized):
			return "", fmt.Errorf("%w: %s", ErrInvalidCredentials, extractBody(err))
		case errors.Is(err, adapter.ErrNetwork):
			return "", fmt.Errorf("%w: %s", ErrServerUnavailable, extractBody(err))
		}
		return "", err
	}

	s.setStatus(models.StatusAuthenticated)
	s.logger.Info().Str("email", email).Msg("session established")
	return token, nil
}

// Register implements [SessionService]. Validation happens entirely locally;
// the adapter is only reached with well-formed credentials.
func (s *sessionService) Register(ctx context.Context, email, password string) error {
	if err := validators.ValidateRegistration(email, password); err != nil {
		return err
	}

	// The screens trim before submitting too; trimming here keeps the rule
	// independent of any particular consumer.
	creds := models.Credentials{
		Email:    strings.TrimSpace(email),
		Password: strings.TrimSpace(password),
	}

	if err := s.adapter.Register(ctx, creds); err != nil {
		if errors.Is(err, adapter.ErrNetwork) {
			return fmt.Errorf("%w: %s", ErrServerUnavailable, extractBody(err))
		}
		return fmt.Errorf("%w: %s", ErrRegistration, extractBody(err))
	}

	s.logger.Info().Str("email", creds.Email).Msg("account registered")
	return nil
}

// Logout implements [SessionService].
func (s *sessionService) Logout() {
	s.adapter.ClearToken()
	s.setStatus(models.StatusUnauthenticated)
}

// Status implements [SessionService].
func (s *sessionService) Status() models.SessionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Token implements [SessionService].
func (s *sessionService) Token() models.Token {
	return models.ParseToken(s.adapter.Token())
}

// expire is the adapter's unauthorized hook: any 401-equivalent response
// clears the credential and drops the session to unauthenticated.
func (s *sessionService) expire() {
	s.adapter.ClearToken()
	s.setStatus(models.StatusUnauthenticated)
	s.logger.Warn().Msg("session expired by server rejection")
}

func (s *sessionService) setStatus(status models.SessionStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}
