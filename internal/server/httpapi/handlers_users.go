package httpapi

import (
	"net/http"

	"github.com/ivolkov/filecab/internal/server/models"
)

type userDoc struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func docForUser(u *models.User) userDoc {
	return userDoc{ID: u.ID, Email: u.Email}
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := s.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, docForUser(user))
}

func (s *HTTPServer) handleConnect(w http.ResponseWriter, r *http.Request) {
	token, err := s.users.Login(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *HTTPServer) handleDisconnect(w http.ResponseWriter, r *http.Request) {
	if err := s.users.Logout(r.Context(), r.Header.Get(tokenHeader)); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) handleMe(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.ResolveUser(r.Context(), r.Header.Get(tokenHeader))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, docForUser(user))
}
