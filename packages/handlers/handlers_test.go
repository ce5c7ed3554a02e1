package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repo-radar/packages/github"
	"repo-radar/packages/handlers"
	"repo-radar/packages/radar"
	"repo-radar/packages/session"
)

func newTestServer(t *testing.T) (*handlers.Server, *session.Session) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/widgets/branches/main", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"name":"main","commit":{"sha":"abc123"}}`)
	})
	mux.HandleFunc("/repos/acme/widgets/git/trees/abc123", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"sha":"abc123","tree":[{"path":"src","type":"tree"},{"path":"src/a.py","type":"blob"}]}`)
	})
	backend := httptest.NewServer(mux)
	t.Cleanup(backend.Close)

	client := github.NewClientWithToken("")
	require.NoError(t, client.SetBaseURL(backend.URL))

	validateKey := func(ctx context.Context, key string) (string, error) {
		if key == "valid-key" {
			return "GPT", nil
		}
		return "", errors.New("rejected")
	}
	sess := session.NewWithValidators(validateKey, github.URLCheck)

	return handlers.NewServer(sess, radar.NewService(client)), sess
}

func TestSaveSessionEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	body := `{"api_key":"valid-key","repository_url":"https://github.com/acme/widgets"}`
	req := httptest.NewRequest(http.MethodPost, "/api/session", strings.NewReader(body))
	rec := httptest.NewRecorder()

	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"key_accepted":true,"api_type":"GPT","url_accepted":true}`, rec.Body.String())
}

func TestSaveSessionRejectsBadInputs(t *testing.T) {
	server, _ := newTestServer(t)

	body := `{"api_key":"bad","repository_url":"http://github.com/acme/widgets"}`
	req := httptest.NewRequest(http.MethodPost, "/api/session", strings.NewReader(body))
	rec := httptest.NewRecorder()

	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"key_accepted":false,"api_type":"","url_accepted":false}`, rec.Body.String())
}

func TestTreeEndpoint(t *testing.T) {
	server, sess := newTestServer(t)
	sess.Save(context.Background(), "valid-key", "https://github.com/acme/widgets")

	req := httptest.NewRequest(http.MethodGet, "/api/tree", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	expected := "Root\n" +
		"└── src/\n" +
		"    └── a.py\n"
	assert.Equal(t, expected, rec.Body.String())

	// Second request is served from the session cache.
	assert.Equal(t, expected, sess.FileTree())
}

func TestTreeEndpointWithoutURL(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/tree", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalysisEndpointRequiresSession(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/analysis/structure", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalysisEndpointServesCachedReport(t *testing.T) {
	server, sess := newTestServer(t)
	sess.Save(context.Background(), "valid-key", "https://github.com/acme/widgets")
	sess.SetReport("structure", "cached report")

	req := httptest.NewRequest(http.MethodGet, "/api/analysis/structure", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"kind":"structure","content":"cached report"}`, rec.Body.String())
}

func TestAnalysisEndpointUnknownKind(t *testing.T) {
	server, sess := newTestServer(t)
	sess.Save(context.Background(), "valid-key", "https://github.com/acme/widgets")

	req := httptest.NewRequest(http.MethodGet, "/api/analysis/bogus", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthz(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
