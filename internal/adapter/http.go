// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-notas Authors

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/notasapp/go-notas/internal/logger"
	"github.com/notasapp/go-notas/models"
)

const defaultRequestTimeout = 15 * time.Second

// HTTPClientConfig holds the settings for the HTTP implementation of
// [ServerAdapter].
type HTTPClientConfig struct {
	// BaseURL is the backend address. A bare host:port is assumed to be
	// http.
	BaseURL string
	// Timeout is the per-request timeout. Zero or negative selects the
	// default of 15 seconds.
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu             sync.RWMutex
	token          string
	onUnauthorized func()
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL and tags every
// outbound request with an X-Request-ID header.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(cfg HTTPClientConfig, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultRequestTimeout
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			req.SetHeader("X-Request-ID", uuid.NewString())
			return nil
		})

	return &httpServerAdapter{client: cli, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. The token is stored
// whitespace-trimmed.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ClearToken implements [ServerAdapter].
func (h *httpServerAdapter) ClearToken() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = ""
}

// OnUnauthorized implements [ServerAdapter].
func (h *httpServerAdapter) OnUnauthorized(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onUnauthorized = fn
}

// Login implements [ServerAdapter]. It POSTs the credentials to /login,
// decodes the {token} body, and stores the token via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("%w: login request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var lr models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if lr.Token == "" {
		return "", errors.New("login response carries no token")
	}

	h.SetToken(lr.Token)
	h.logger.Debug().Msg("login accepted, token stored")
	return lr.Token, nil
}

// Register implements [ServerAdapter]. It POSTs the credentials to /register
// and checks for a 2xx status. No token is stored.
func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/register")
	if err != nil {
		return fmt.Errorf("%w: register request: %v", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

// ListNotes implements [ServerAdapter].
func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get("/notes")
	if err != nil {
		return nil, fmt.Errorf("%w: list notes request: %v", ErrNetwork, err)
	}
	if err = h.checkAuthedResponse(resp); err != nil {
		return nil, err
	}

	var notes []models.Note
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("decode notes response: %w", err)
	}
	return notes, nil
}

// CreateNote implements [ServerAdapter].
func (h *httpServerAdapter) CreateNote(ctx context.Context, draft models.NoteDraft) (models.Note, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Note{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		Post("/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: create note request: %v", ErrNetwork, err)
	}
	if err = h.checkAuthedResponse(resp); err != nil {
		return models.Note{}, err
	}

	var note models.Note
	if err = json.Unmarshal(resp.Body(), &note); err != nil {
		return models.Note{}, fmt.Errorf("decode created note: %w", err)
	}
	return note, nil
}

// UpdateNote implements [ServerAdapter].
func (h *httpServerAdapter) UpdateNote(ctx context.Context, id int64, draft models.NoteDraft) (models.Note, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Note{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		Put(fmt.Sprintf("/notes/%d", id))
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: update note request: %v", ErrNetwork, err)
	}
	if err = h.checkAuthedResponse(resp); err != nil {
		return models.Note{}, err
	}

	var note models.Note
	if err = json.Unmarshal(resp.Body(), &note); err != nil {
		return models.Note{}, fmt.Errorf("decode updated note: %w", err)
	}
	return note, nil
}

// DeleteNote implements [ServerAdapter].
func (h *httpServerAdapter) DeleteNote(ctx context.Context, id int64) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete(fmt.Sprintf("/notes/%d", id))
	if err != nil {
		return fmt.Errorf("%w: delete note request: %v", ErrNetwork, err)
	}

	return h.checkAuthedResponse(resp)
}

// authedRequest prepares a request carrying the Authorization header. It
// fails with ErrUnauthorized before any network activity when no token is
// held.
func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		h.notifyUnauthorized()
		return nil, fmt.Errorf("%w: no session token", ErrUnauthorized)
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
}

// checkAuthedResponse maps the response status and fires the unauthorized
// hook on a 401-equivalent rejection of an authenticated request.
func (h *httpServerAdapter) checkAuthedResponse(resp *resty.Response) error {
	err := mapHTTPError(resp)
	if errors.Is(err, ErrUnauthorized) {
		h.logger.Warn().Msg("authenticated request rejected, clearing session")
		h.notifyUnauthorized()
	}
	return err
}

func (h *httpServerAdapter) notifyUnauthorized() {
	h.mu.RLock()
	fn := h.onUnauthorized
	h.mu.RUnlock()
	if fn != nil {
		fn()
	}
}
