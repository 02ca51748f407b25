// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-notas Authors

package devserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/notasapp/go-notas/internal/adapter"
	"github.com/notasapp/go-notas/internal/logger"
	"github.com/notasapp/go-notas/internal/mock"
	"github.com/notasapp/go-notas/internal/service"
	"github.com/notasapp/go-notas/models"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New("test-signing-key", logger.Nop()).Router())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func registerAndLogin(t *testing.T, srv *httptest.Server, email string) string {
	t.Helper()
	creds := models.Credentials{Email: email, Password: "longpassword"}

	resp := doJSON(t, http.MethodPost, srv.URL+"/register", "", creds)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, srv.URL+"/login", "", creds)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var lr models.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&lr))
	require.NotEmpty(t, lr.Token)
	return lr.Token
}

// ── Auth endpoints ───────────────────────────────────────────────────────────

func TestRegister_DuplicateEmail(t *testing.T) {
	srv := newTestServer(t)
	creds := models.Credentials{Email: "a@b.com", Password: "longpassword"}

	resp := doJSON(t, http.MethodPost, srv.URL+"/register", "", creds)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, srv.URL+"/register", "", creds)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin_WrongPassword(t *testing.T) {
	srv := newTestServer(t)
	registerAndLogin(t, srv, "a@b.com")

	resp := doJSON(t, http.MethodPost, srv.URL+"/login", "",
		models.Credentials{Email: "a@b.com", Password: "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_UnknownAccount(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/login", "",
		models.Credentials{Email: "nobody@b.com", Password: "longpassword"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ── Notes endpoints ──────────────────────────────────────────────────────────

func TestNotes_RequireToken(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/notes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/notes", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestNotes_CRUDRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "a@b.com")

	// crear
	resp := doJSON(t, http.MethodPost, srv.URL+"/notes", token,
		models.NoteDraft{Titulo: "compra", Descripcion: "pan y leche"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var created models.Note
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotZero(t, created.ID)

	// listar
	resp = doJSON(t, http.MethodGet, srv.URL+"/notes", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []models.Note
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])

	// actualizar
	resp = doJSON(t, http.MethodPut, srv.URL+"/notes/1", token,
		models.NoteDraft{Titulo: "compra v2", Descripcion: "pan"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Note
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, "compra v2", updated.Titulo)

	// borrar
	resp = doJSON(t, http.MethodDelete, srv.URL+"/notes/1", token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/notes", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Empty(t, list)
}

func TestNotes_UnknownNote(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "a@b.com")

	resp := doJSON(t, http.MethodPut, srv.URL+"/notes/99", token, models.NoteDraft{Titulo: "x"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, srv.URL+"/notes/99", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNotes_IsolatedPerUser(t *testing.T) {
	srv := newTestServer(t)
	tokenA := registerAndLogin(t, srv, "a@b.com")
	tokenB := registerAndLogin(t, srv, "b@b.com")

	resp := doJSON(t, http.MethodPost, srv.URL+"/notes", tokenA,
		models.NoteDraft{Titulo: "de A"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/notes", tokenB, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []models.Note
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Empty(t, list, "user B must not see user A's notes")
}

// ── End to end through the real client stack ─────────────────────────────────

func TestEndToEnd_ClientAgainstDevServer(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	serverAdapter, err := adapter.NewHTTPServerAdapter(
		adapter.HTTPClientConfig{BaseURL: srv.URL}, logger.Nop())
	require.NoError(t, err)

	services := service.NewClientServices(serverAdapter, nil, logger.Nop())
	defer services.Notes.Close()

	require.NoError(t, services.Session.Register(ctx, "e2e@b.com", "longpassword"))
	_, err = services.Session.Login(ctx, "e2e@b.com", "longpassword")
	require.NoError(t, err)
	assert.Equal(t, models.StatusAuthenticated, services.Session.Status())

	created, err := services.Notes.Create(ctx, "primera", "<p>Hola</p>")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	require.NoError(t, services.Notes.Load(ctx))
	snapshot := services.Notes.Snapshot()
	require.Len(t, snapshot.Notes, 1)
	assert.Equal(t, "Hola", snapshot.Notes[0].Preview())

	_, err = services.Notes.Update(ctx, created.ID, "primera v2", "editada")
	require.NoError(t, err)
	require.NoError(t, services.Notes.Delete(ctx, created.ID))
	assert.Empty(t, services.Notes.Snapshot().Notes)

	// El logout invalida el cliente: la siguiente petición no sale a la red.
	services.Session.Logout()
	err = services.Notes.Load(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrSessionExpired)
	assert.Equal(t, models.StatusUnauthenticated, services.Session.Status())
}

// El cliente arranca con la lista cacheada tras el login y la primera carga
// la sustituye por la verdad del servidor.
func TestEndToEnd_CacheHydratesAfterLogin(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCache := mock.NewMockNotesCache(ctrl)

	serverAdapter, err := adapter.NewHTTPServerAdapter(
		adapter.HTTPClientConfig{BaseURL: srv.URL}, logger.Nop())
	require.NoError(t, err)

	services := service.NewClientServices(serverAdapter, mockCache, logger.Nop())
	defer services.Notes.Close()

	require.NoError(t, services.Session.Register(ctx, "cache@b.com", "longpassword"))

	// La primera cuenta del servidor de desarrollo recibe el id 1; el token
	// emitido lleva ese id en el claim sub.
	cached := []models.Note{{ID: 99, Titulo: "guardada", Descripcion: "sin conexión"}}
	mockCache.EXPECT().LoadNotes(gomock.Any(), int64(1)).Return(cached, nil)
	mockCache.EXPECT().SaveNotes(gomock.Any(), int64(1), gomock.Any()).Return(nil)

	_, err = services.Session.Login(ctx, "cache@b.com", "longpassword")
	require.NoError(t, err)
	require.NoError(t, services.Notes.Hydrate(ctx))
	assert.Equal(t, cached, services.Notes.Snapshot().Notes)

	require.NoError(t, services.Notes.Load(ctx))
	assert.Empty(t, services.Notes.Snapshot().Notes,
		"la carga del servidor sustituye a la lista cacheada")
}
