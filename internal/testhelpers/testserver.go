package testhelpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"

	"gorm.io/gorm"
)

// TestServer runs a handler over real HTTP with a cookie jar, so the session survives between calls.
// Redirects are returned, not followed.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Client *http.Client
}

func NewTestServer(t *testing.T, handler http.Handler, db *gorm.DB) *TestServer {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}

	client := server.Client()
	client.Jar = jar
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &TestServer{Server: server, DB: db, Client: client}
}

// SendRequest sends body as JSON (when non-nil) and returns the response and its body.
func (ts *TestServer) SendRequest(t *testing.T, method, path string, body interface{}) (*http.Response, string) {
	t.Helper()

	var raw []byte
	headers := map[string]string{}
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		raw = encoded
		headers["Content-Type"] = "application/json"
	}
	return ts.SendRaw(t, method, path, headers, raw)
}

// SendRaw sends body bytes untouched.
func (ts *TestServer) SendRaw(t *testing.T, method, path string, headers map[string]string, body []byte) (*http.Response, string) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return res, string(resBody)
}

// Login walks /login and /callback with code, returning the callback response.
func (ts *TestServer) Login(t *testing.T, code string) *http.Response {
	t.Helper()

	res, _ := ts.SendRequest(t, http.MethodGet, "/login", nil)
	if res.StatusCode != http.StatusFound {
		t.Fatalf("expected /login to redirect, got %d", res.StatusCode)
	}

	authorize, err := url.Parse(res.Header.Get("Location"))
	if err != nil {
		t.Fatalf("invalid authorize url: %v", err)
	}
	state := authorize.Query().Get("state")

	q := url.Values{}
	q.Set("code", code)
	q.Set("state", state)
	res, _ = ts.SendRequest(t, http.MethodGet, "/callback?"+q.Encode(), nil)
	return res
}
