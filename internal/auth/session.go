package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/golang-jwt/jwt/v5"
)

// SessionUser is the identity kept in the session after login.
type SessionUser struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Avatar        string `json:"avatar"`
	Discriminator string `json:"discriminator"`
}

// AvatarURL builds the CDN url for the user's avatar (or the default one).
func (u *SessionUser) AvatarURL() string {
	du := &discordgo.User{ID: u.ID, Avatar: u.Avatar, Discriminator: u.Discriminator}
	return du.AvatarURL("128")
}

// Flash is a one-shot message shown on the next page.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Session is the request-scoped session state.
type Session struct {
	User       *SessionUser `json:"user,omitempty"`
	Flashes    []Flash      `json:"flashes,omitempty"`
	OAuthState string       `json:"oauth_state,omitempty"`
}

func (s *Session) IsAuthenticated() bool {
	return s.User != nil && s.User.ID != ""
}

func (s *Session) AddFlash(category, message string) {
	s.Flashes = append(s.Flashes, Flash{Category: category, Message: message})
}

// PopFlashes returns the pending flashes and removes them.
func (s *Session) PopFlashes() []Flash {
	flashes := s.Flashes
	s.Flashes = nil
	if flashes == nil {
		return []Flash{}
	}
	return flashes
}

// Clear drops everything, user and flashes included.
func (s *Session) Clear() {
	*s = Session{}
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Session
}

type SessionConfig struct {
	Secret     string
	CookieName string
	MaxAge     time.Duration
	Secure     bool
}

// SessionStore keeps the session in an HS256-signed cookie.
type SessionStore struct {
	secret     []byte
	cookieName string
	maxAge     time.Duration
	secure     bool
}

func NewSessionStore(cfg SessionConfig) *SessionStore {
	if cfg.CookieName == "" {
		cfg.CookieName = "session"
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = 7 * 24 * time.Hour
	}
	return &SessionStore{
		secret:     []byte(cfg.Secret),
		cookieName: cfg.CookieName,
		maxAge:     cfg.MaxAge,
		secure:     cfg.Secure,
	}
}

func (s *SessionStore) CookieName() string {
	return s.cookieName
}

// Encode signs the session into a token.
func (s *SessionStore) Encode(sess *Session) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.maxAge)),
		},
		Session: *sess,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return signed, nil
}

// Decode verifies the signature and expiry of a session token.
func (s *SessionStore) Decode(tokenString string) (*Session, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}

	sess := claims.Session
	return &sess, nil
}

// Load reads the session from the request. A missing, tampered or expired cookie yields an empty session.
func (s *SessionStore) Load(r *http.Request) *Session {
	cookie, err := r.Cookie(s.cookieName)
	if err != nil || cookie.Value == "" {
		return &Session{}
	}

	sess, err := s.Decode(cookie.Value)
	if err != nil {
		return &Session{}
	}
	return sess
}

// Save writes the session cookie.
func (s *SessionStore) Save(w http.ResponseWriter, sess *Session) error {
	value, err := s.Encode(sess)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(s.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
