package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/stylish/internal/service"
)

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Login POST /api/v1/auth/login
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	auth := s.authStore(r)
	user, err := auth.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		ErrorJSON(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		ErrorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	SuccessJSON(w, user)
}

// Register POST /api/v1/auth/register
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	auth := s.authStore(r)
	user, err := auth.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		ErrorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	SuccessJSON(w, user)
}

// Logout POST /api/v1/auth/logout
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	auth := s.authStore(r)
	auth.Logout(r.Context())
	SuccessJSON(w, map[string]bool{"ok": true})
}

// Me GET /api/v1/auth/me
func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	auth := s.authStore(r)
	user := auth.Current()
	if user == nil {
		ErrorJSON(w, http.StatusUnauthorized, "not logged in")
		return
	}
	SuccessJSON(w, user)
}
