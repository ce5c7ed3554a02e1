package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"repo-radar/packages/ai"
	"repo-radar/packages/github"
	"repo-radar/packages/radar"
	"repo-radar/packages/session"
)

// Server exposes the dashboard over HTTP: one session-management endpoint
// plus one endpoint per page of the original dashboard.
type Server struct {
	session *session.Session
	service *radar.Service
}

func NewServer(sess *session.Session, service *radar.Service) *Server {
	return &Server{session: sess, service: service}
}

// Router wires the dashboard routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/session", s.handleSaveSession).Methods(http.MethodPost)
	r.HandleFunc("/api/session", s.handleGetSession).Methods(http.MethodGet)
	r.HandleFunc("/api/tree", s.handleTree).Methods(http.MethodGet)
	r.HandleFunc("/api/analysis/{kind}", s.handleAnalysis).Methods(http.MethodGet)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type saveSessionRequest struct {
	APIKey        string `json:"api_key"`
	RepositoryURL string `json:"repository_url"`
}

func (s *Server) handleSaveSession(w http.ResponseWriter, r *http.Request) {
	var req saveSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := s.session.Save(r.Context(), req.APIKey, req.RepositoryURL)
	slog.Info("Session saved", "keyAccepted", result.KeyAccepted, "apiType", result.APIType, "urlAccepted", result.URLAccepted)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	opts := s.session.Options()
	writeJSON(w, http.StatusOK, map[string]any{
		"api_type":       opts.APIType,
		"repository_url": opts.RepositoryURL,
		"language":       opts.Language,
		"ready":          s.session.Ready(),
	})
}

// handleTree returns the rendered ASCII tree as plain text, computing and
// caching it on first use.
func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	opts := s.session.Options()
	if opts.RepositoryURL == "" {
		writeError(w, http.StatusBadRequest, "no repository URL saved")
		return
	}

	rendered := s.session.FileTree()
	if rendered == "" {
		var err error
		rendered, err = s.service.TreeString(r.Context(), opts.RepositoryURL)
		if err != nil {
			writeFetchError(w, err)
			return
		}
		s.session.SetFileTree(rendered)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(rendered))
}

// handleAnalysis runs one of the four AI reports, caching the content in the
// session so repeat visits do not re-query the provider.
func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	kind := mux.Vars(r)["kind"]

	if !s.session.Ready() {
		writeError(w, http.StatusBadRequest, "API key and repository URL must be saved first")
		return
	}

	if content, ok := s.session.Report(kind); ok {
		writeJSON(w, http.StatusOK, map[string]string{"kind": kind, "content": content})
		return
	}

	opts := s.session.Options()
	provider, err := ai.ProviderFor(opts.APIType, opts.APIKey)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var content string
	switch kind {
	case "structure":
		content, err = s.service.Structure(r.Context(), provider, opts.RepositoryURL)
	case "setup":
		content, err = s.service.Setup(r.Context(), provider, opts.RepositoryURL)
	case "flow":
		content, err = s.service.Flow(r.Context(), provider, opts.RepositoryURL, nil, nil)
	case "issues":
		content, err = s.service.Issues(r.Context(), provider, opts.RepositoryURL)
	default:
		writeError(w, http.StatusNotFound, "unknown analysis kind")
		return
	}
	if err != nil {
		writeFetchError(w, err)
		return
	}

	s.session.SetReport(kind, content)
	writeJSON(w, http.StatusOK, map[string]string{"kind": kind, "content": content})
}

func writeFetchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, radar.ErrInvalidURL):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, github.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusBadGateway, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
