package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ivolkov/filecab/internal/common"
	"github.com/ivolkov/filecab/internal/server/models"
	"github.com/ivolkov/filecab/internal/server/services"
)

// resolveCaller authenticates the request via the token header. The false
// return means the response has already been written.
func (s *HTTPServer) resolveCaller(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, err := s.users.ResolveUser(r.Context(), r.Header.Get(tokenHeader))
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return user, true
}

type uploadRequest struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	ParentID json.RawMessage `json:"parentId"`
	IsPublic bool            `json:"isPublic"`
	Data     string          `json:"data"`
}

// parentFromRaw accepts the parent reference as either a string or the bare
// number 0 that some clients send for root.
func parentFromRaw(raw json.RawMessage) (models.ParentRef, error) {
	if len(raw) == 0 {
		return models.RootParent(), nil
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return models.ParseParent(str)
	}
	var num int
	if err := json.Unmarshal(raw, &num); err == nil && num == 0 {
		return models.RootParent(), nil
	}
	return models.ParentRef{}, common.ErrParentNotFound
}

func (s *HTTPServer) handleUpload(w http.ResponseWriter, r *http.Request) {
	user, ok := s.resolveCaller(w, r)
	if !ok {
		return
	}

	var req uploadRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	parent, err := parentFromRaw(req.ParentID)
	if err != nil {
		// an unresolvable parent is a request problem, not a lookup miss
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	doc, err := s.files.Create(r.Context(), user, services.CreateRequest{
		Name:     req.Name,
		Type:     req.Type,
		Parent:   parent,
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		if errors.Is(err, common.ErrParentNotFound) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, doc.Doc())
}

func (s *HTTPServer) handleList(w http.ResponseWriter, r *http.Request) {
	user, ok := s.resolveCaller(w, r)
	if !ok {
		return
	}

	docs := make([]models.FileDoc, 0)

	parent, err := models.ParseParent(r.URL.Query().Get("parentId"))
	if err != nil {
		// an unresolvable parent matches nothing
		writeJSON(w, http.StatusOK, docs)
		return
	}

	files, err := s.files.List(r.Context(), user, parent, pageQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}

	for _, f := range files {
		docs = append(docs, f.Doc())
	}
	writeJSON(w, http.StatusOK, docs)
}

func (s *HTTPServer) handleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := s.resolveCaller(w, r)
	if !ok {
		return
	}

	doc, err := s.files.GetByID(r.Context(), user, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, doc.Doc())
}

func (s *HTTPServer) handlePublish(w http.ResponseWriter, r *http.Request) {
	s.setPublic(w, r, true)
}

func (s *HTTPServer) handleUnpublish(w http.ResponseWriter, r *http.Request) {
	s.setPublic(w, r, false)
}

func (s *HTTPServer) setPublic(w http.ResponseWriter, r *http.Request, isPublic bool) {
	user, ok := s.resolveCaller(w, r)
	if !ok {
		return
	}

	doc, err := s.files.SetPublic(r.Context(), user, r.PathValue("id"), isPublic)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, doc.Doc())
}

// handleData serves raw file content. The token is optional here: anonymous
// requests succeed for public files.
func (s *HTTPServer) handleData(w http.ResponseWriter, r *http.Request) {
	caller, err := s.users.ResolveUser(r.Context(), r.Header.Get(tokenHeader))
	if err != nil {
		caller = nil
	}

	data, mimeType, err := s.files.ReadContent(r.Context(), caller, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", mimeType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
