package testhelpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// DiscordStub fakes the two Discord endpoints used by login.
type DiscordStub struct {
	Server *httptest.Server

	// Code is the only authorization code accepted; Token is what it exchanges for.
	Code    string
	Token   string
	Profile map[string]interface{}

	TokenCalls   atomic.Int32
	ProfileCalls atomic.Int32
}

func NewDiscordStub(t *testing.T, code, token string, profile map[string]interface{}) *DiscordStub {
	t.Helper()

	stub := &DiscordStub{Code: code, Token: token, Profile: profile}

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		stub.TokenCalls.Add(1)
		if err := r.ParseForm(); err != nil || r.PostForm.Get("code") != stub.Code {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": stub.Token,
			"token_type":   "Bearer",
			"expires_in":   604800,
		})
	})
	mux.HandleFunc("/users/@me", func(w http.ResponseWriter, r *http.Request) {
		stub.ProfileCalls.Add(1)
		if r.Header.Get("Authorization") != "Bearer "+stub.Token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(stub.Profile)
	})

	stub.Server = httptest.NewServer(mux)
	t.Cleanup(stub.Server.Close)
	return stub
}

// URL is the API base to configure the Discord client with.
func (s *DiscordStub) URL() string {
	return s.Server.URL
}
