package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/oauth2"
)

type DiscordConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	APIBase      string
	Scopes       []string
	Timeout      time.Duration
}

// DiscordClient talks to the Discord OAuth2 and user endpoints.
// Every call is single-attempt and bounded by the configured timeout.
type DiscordClient struct {
	oauth   *oauth2.Config
	apiBase string
	timeout time.Duration
	client  *http.Client
}

func NewDiscordClient(cfg DiscordConfig) *DiscordClient {
	base := strings.TrimRight(cfg.APIBase, "/")
	if base == "" {
		base = "https://discord.com/api/v10"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if len(cfg.Scopes) == 0 {
		cfg.Scopes = []string{"identify", "guilds"}
	}

	return &DiscordClient{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   base + "/oauth2/authorize",
				TokenURL:  base + "/oauth2/token",
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		apiBase: base,
		timeout: cfg.Timeout,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// AuthCodeURL is where the browser is sent to authorize the app.
func (d *DiscordClient) AuthCodeURL(state string) string {
	return d.oauth.AuthCodeURL(state)
}

// Exchange trades an authorization code for an access token.
func (d *DiscordClient) Exchange(ctx context.Context, code string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	ctx = context.WithValue(ctx, oauth2.HTTPClient, d.client)

	token, err := d.oauth.Exchange(ctx, code,
		oauth2.SetAuthURLParam("scope", strings.Join(d.oauth.Scopes, " ")),
	)
	if err != nil {
		return "", fmt.Errorf("token exchange failed: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("token exchange failed: no access token in response")
	}
	return token.AccessToken, nil
}

// FetchProfile returns the user the access token belongs to.
func (d *DiscordClient) FetchProfile(ctx context.Context, accessToken string) (*discordgo.User, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.apiBase+"/users/@me", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("profile request failed: status %d", resp.StatusCode)
	}

	var user discordgo.User
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &user, nil
}
