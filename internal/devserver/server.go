// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-notas Authors

// Package devserver is an in-memory implementation of the notes backend
// REST interface, used by cmd/notasd for local development and by the
// end-to-end tests. It is a stand-in, not the production backend: state
// lives in process memory and disappears on exit.
package devserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/notasapp/go-notas/internal/logger"
	"github.com/notasapp/go-notas/models"
)

const tokenTTL = 24 * time.Hour

type account struct {
	id           int64
	email        string
	passwordHash []byte
}

// Server holds the in-memory state and the HTTP handler.
type Server struct {
	signKey []byte
	logger  *logger.Logger

	mu         sync.Mutex
	accounts   map[string]*account      // email -> account
	notes      map[int64][]models.Note  // user id -> ordered notes
	nextUserID int64
	nextNoteID int64
}

// New builds a Server signing tokens with signKey.
func New(signKey string, log *logger.Logger) *Server {
	return &Server{
		signKey:    []byte(signKey),
		logger:     log,
		accounts:   make(map[string]*account),
		notes:      make(map[int64][]models.Note),
		nextUserID: 1,
		nextNoteID: 1,
	}
}

// Router returns the chi handler exposing the backend REST interface.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.loggingMiddleware)

	r.Post("/register", s.handleRegister)
	r.Post("/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Get("/notes", s.handleListNotes)
		r.Post("/notes", s.handleCreateNote)
		r.Put("/notes/{id}", s.handleUpdateNote)
		r.Delete("/notes/{id}", s.handleDeleteNote)
	})

	return r
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLogger := s.logger.With().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", r.Header.Get("X-Request-ID")).
			Logger()
		next.ServeHTTP(w, r.WithContext(reqLogger.WithContext(r.Context())))
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "registration failed", http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[creds.Email]; exists {
		http.Error(w, "email already registered", http.StatusBadRequest)
		return
	}
	s.accounts[creds.Email] = &account{
		id:           s.nextUserID,
		email:        creds.Email,
		passwordHash: hash,
	}
	s.nextUserID++

	logger.FromRequest(r).Info().Str("email", creds.Email).Msg("account registered")
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	acc, ok := s.accounts[strings.TrimSpace(creds.Email)]
	s.mu.Unlock()

	if !ok || bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(creds.Password)) != nil {
		http.Error(w, "invalid email or password", http.StatusUnauthorized)
		return
	}

	token, err := s.issueToken(acc.id)
	if err != nil {
		http.Error(w, "token creation failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{Token: token})
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.notes[userID]
	out := make([]models.Note, len(list))
	copy(out, list)

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r)

	var draft models.NoteDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(draft.Titulo) == "" {
		http.Error(w, "titulo is required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	note := models.Note{ID: s.nextNoteID, Titulo: draft.Titulo, Descripcion: draft.Descripcion}
	s.nextNoteID++
	s.notes[userID] = append(s.notes[userID], note)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, note)
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r)
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid note id", http.StatusBadRequest)
		return
	}

	var draft models.NoteDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(draft.Titulo) == "" {
		http.Error(w, "titulo is required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notes[userID] {
		if n.ID == id {
			updated := models.Note{ID: id, Titulo: draft.Titulo, Descripcion: draft.Descripcion}
			s.notes[userID][i] = updated
			writeJSON(w, http.StatusOK, updated)
			return
		}
	}

	http.Error(w, "note not found", http.StatusNotFound)
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r)
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid note id", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.notes[userID]
	for i, n := range list {
		if n.ID == id {
			s.notes[userID] = append(list[:i], list[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}

	http.Error(w, "note not found", http.StatusNotFound)
}

func (s *Server) issueToken(userID int64) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signKey)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func fmtBearer(header string) (string, error) {
	parts := strings.Split(strings.TrimSpace(header), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", fmt.Errorf("invalid authorization header")
	}
	return parts[1], nil
}
