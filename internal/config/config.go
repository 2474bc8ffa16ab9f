package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`

	Discord struct {
		ClientID     string        `yaml:"client_id"`
		ClientSecret string        `yaml:"client_secret"`
		RedirectURI  string        `yaml:"redirect_uri"`
		APIBase      string        `yaml:"api_base"`
		Scopes       []string      `yaml:"scopes"`
		Timeout      time.Duration `yaml:"timeout"`
	} `yaml:"discord"`

	Session struct {
		Secret     string        `yaml:"secret"`
		CookieName string        `yaml:"cookie_name"`
		MaxAge     time.Duration `yaml:"max_age"`
		Secure     bool          `yaml:"secure"`
	} `yaml:"session"`

	Webhook struct {
		Secret string `yaml:"secret"` // empty disables the sellhub webhook
	} `yaml:"webhook"`

	Verification struct {
		Code string `yaml:"code"`
	} `yaml:"verification"`

	Storage struct {
		Type      string `yaml:"type"`      // local, s3
		BasePath  string `yaml:"base_path"` // For local storage
		BaseURL   string `yaml:"base_url"`  // Public URL base
		Bucket    string `yaml:"bucket"`
		Region    string `yaml:"region"`
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
		Endpoint  string `yaml:"endpoint"` // custom S3-compatible endpoint
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"`
		AllowedTypes []string `yaml:"allowed_types"`
		MaxDimension int      `yaml:"max_dimension"`
		JPEGQuality  int      `yaml:"jpeg_quality"`
	} `yaml:"upload"`
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "" || c.Server.Env == "development"
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// LoadConfig builds the configuration from .env, the yaml file and the environment, in that order.
func LoadConfig() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := Default()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	if err := loadFile(cfg, configPath); err != nil {
		return nil, err
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a config with every optional value filled in.
func Default() *Config {
	var cfg Config

	cfg.Server.Port = 5000
	cfg.Server.Env = "development"
	cfg.Database.URL = "sqlite:iceai.db"

	cfg.Discord.APIBase = "https://discord.com/api/v10"
	cfg.Discord.Scopes = []string{"identify", "guilds"}
	cfg.Discord.Timeout = 10 * time.Second

	cfg.Session.CookieName = "session"
	cfg.Session.MaxAge = 7 * 24 * time.Hour

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "/files"

	cfg.Upload.MaxSize = 5 * 1024 * 1024
	cfg.Upload.AllowedTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
	cfg.Upload.MaxDimension = 4096
	cfg.Upload.JPEGQuality = 85

	return &cfg
}

func loadFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open config file at %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	setString("DISCORD_CLIENT_ID", &cfg.Discord.ClientID)
	setString("DISCORD_CLIENT_SECRET", &cfg.Discord.ClientSecret)
	setString("DISCORD_REDIRECT_URI", &cfg.Discord.RedirectURI)
	setString("DISCORD_API_BASE", &cfg.Discord.APIBase)
	setString("SECRET_KEY", &cfg.Session.Secret)
	setString("SELLHUB_SECRET", &cfg.Webhook.Secret)
	setString("VERIFICATION_CODE", &cfg.Verification.Code)
	setString("DATABASE_URL", &cfg.Database.URL)
	setString("SERVER_HOST", &cfg.Server.Host)
	setString("SERVER_ENV", &cfg.Server.Env)
	setString("STORAGE_TYPE", &cfg.Storage.Type)
	setString("STORAGE_BUCKET", &cfg.Storage.Bucket)
	setString("STORAGE_REGION", &cfg.Storage.Region)
	setString("STORAGE_ACCESS_KEY", &cfg.Storage.AccessKey)
	setString("STORAGE_SECRET_KEY", &cfg.Storage.SecretKey)
	setString("STORAGE_ENDPOINT", &cfg.Storage.Endpoint)
	setString("STORAGE_BASE_URL", &cfg.Storage.BaseURL)

	if v, ok := os.LookupEnv("SERVER_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SERVER_PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	if v, ok := os.LookupEnv("SESSION_SECURE"); ok && v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SESSION_SECURE %q: %w", v, err)
		}
		cfg.Session.Secure = secure
	}
	return nil
}

// Validate fails with every missing required setting listed at once.
func (c *Config) Validate() error {
	var missing []string
	if c.Discord.ClientID == "" {
		missing = append(missing, "DISCORD_CLIENT_ID")
	}
	if c.Discord.ClientSecret == "" {
		missing = append(missing, "DISCORD_CLIENT_SECRET")
	}
	if c.Discord.RedirectURI == "" {
		missing = append(missing, "DISCORD_REDIRECT_URI")
	}
	if c.Session.Secret == "" {
		missing = append(missing, "SECRET_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	switch c.Storage.Type {
	case "local", "s3":
	default:
		return fmt.Errorf("unknown storage type %q", c.Storage.Type)
	}
	return nil
}
