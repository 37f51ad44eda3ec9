package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/afuentes/centinela/internal/config"
	"github.com/afuentes/centinela/internal/gemini"
	"github.com/afuentes/centinela/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	response string
	err      error
}

func (c *stubClient) Generate(_ context.Context, _ gemini.GenerateRequest) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}

func newTestServer() *Server {
	cfg := config.Defaults()
	cfg.Addr = ":0"
	gateway := gemini.NewGateway(
		&stubClient{response: `{"summary": "ok"}`},
		func() string { return "AIzaSyTestKey" },
		"",
	)
	return NewServer(&cfg, store.New(store.Seed()...), gateway)
}

// loginClient returns an http.Client holding a valid session cookie.
func loginClient(t *testing.T, ts *httptest.Server) *http.Client {
	t.Helper()
	jar := newCookieJar()
	client := &http.Client{Jar: jar}

	resp, err := client.PostForm(ts.URL+"/login", url.Values{
		"username": {"admin"},
		"password": {"centinela"},
	})
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return client
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	var body map[string]string
	err = json.NewDecoder(resp.Body).Decode(&body)
	require.NoError(t, err)
	assert.Equal(t, "ok", body["status"])
}

func TestDashboardRequiresLogin(t *testing.T) {
	srv := newTestServer()
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestAPIRequiresLogin(t *testing.T) {
	srv := newTestServer()
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/violations")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	srv := newTestServer()
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.PostForm(ts.URL+"/login", url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	})
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginThenDashboard(t *testing.T) {
	srv := newTestServer()
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	client := loginClient(t, ts)

	resp, err := client.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}

func TestLogoutRevokesSession(t *testing.T) {
	srv := newTestServer()
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	client := loginClient(t, ts)

	resp, err := client.Get(ts.URL + "/logout")
	require.NoError(t, err)
	resp.Body.Close()

	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	resp, err = client.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestUnknownRouteReturns404(t *testing.T) {
	srv := newTestServer()
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	client := loginClient(t, ts)
	resp, err := client.Get(ts.URL + "/nonexistent")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStaticServedWithoutLogin(t *testing.T) {
	srv := newTestServer()
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/static/style.css")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServerHasManager(t *testing.T) {
	srv := newTestServer()
	assert.NotNil(t, srv.manager)
}

func TestSessionExpiry(t *testing.T) {
	s := newSessions(0)
	token := s.create()
	assert.False(t, s.valid(token))
}

func TestSessionRevoke(t *testing.T) {
	s := newSessions(time.Hour)
	token := s.create()
	assert.True(t, s.valid(token))
	s.revoke(token)
	assert.False(t, s.valid(token))
}

// newCookieJar builds a cookie jar and panics on the impossible error.
func newCookieJar() http.CookieJar {
	jar, err := cookiejar.New(nil)
	if err != nil {
		panic(err)
	}
	return jar
}
