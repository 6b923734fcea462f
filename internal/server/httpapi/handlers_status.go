package httpapi

import "net/http"

func (s *HTTPServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{
		"db":       s.db.PingContext(r.Context()) == nil,
		"sessions": s.sessions.Alive(r.Context()),
	})
}

func (s *HTTPServer) handleStats(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.Count(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	files, err := s.files.Count(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"users": users, "files": files})
}
