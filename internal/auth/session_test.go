package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(secret string) *SessionStore {
	return NewSessionStore(SessionConfig{Secret: secret, MaxAge: time.Hour})
}

func TestSessionStore_RoundTrip(t *testing.T) {
	store := newTestStore("s3cret")
	sess := &Session{User: &SessionUser{ID: "7", Username: "alice", Discriminator: "0000"}}
	sess.AddFlash("success", "Welcome back, alice!")

	rec := httptest.NewRecorder()
	require.NoError(t, store.Save(rec, sess))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	loaded := store.Load(req)

	require.True(t, loaded.IsAuthenticated())
	assert.Equal(t, "7", loaded.User.ID)
	assert.Equal(t, []Flash{{Category: "success", Message: "Welcome back, alice!"}}, loaded.PopFlashes())
	assert.Empty(t, loaded.PopFlashes())
}

func TestSessionStore_RejectsForeignSignature(t *testing.T) {
	token, err := newTestStore("other").Encode(&Session{User: &SessionUser{ID: "1", Username: "mallory"}})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: token})

	assert.False(t, newTestStore("s3cret").Load(req).IsAuthenticated())
}

func TestSessionStore_ExpiredIsEmpty(t *testing.T) {
	store := NewSessionStore(SessionConfig{Secret: "s3cret", MaxAge: time.Nanosecond})
	token, err := store.Encode(&Session{User: &SessionUser{ID: "1", Username: "bob"}})
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	_, err = store.Decode(token)
	assert.Error(t, err)
}

func TestSession_Clear(t *testing.T) {
	sess := &Session{User: &SessionUser{ID: "1"}, OAuthState: "x"}
	sess.AddFlash("info", "hi")
	sess.Clear()

	assert.False(t, sess.IsAuthenticated())
	assert.Empty(t, sess.OAuthState)
	assert.Empty(t, sess.Flashes)
}

func TestSessionUser_AvatarURL(t *testing.T) {
	u := &SessionUser{ID: "80351110224678912", Avatar: "abc123"}
	assert.Contains(t, u.AvatarURL(), "avatars/80351110224678912/abc123")
}
