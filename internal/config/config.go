package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

// Config holds the full runtime configuration. It is loaded once at process
// start and injected where needed; nothing mutates it afterwards.
type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		UseTLS       bool   `yaml:"use_tls"`
	} `yaml:"email"`

	Session struct {
		Secret     string `yaml:"secret"`
		TTLMinutes int    `yaml:"ttl_minutes"`
		CookieName string `yaml:"cookie_name"`
	} `yaml:"session"`

	Sweep struct {
		// Secret protects the HTTP sweep trigger (Authorization: Bearer).
		Secret string `yaml:"secret"`
		// PreventeWindowDays is the pre-sale demotion window before the event.
		PreventeWindowDays int `yaml:"prevente_window_days"`
		// WindowInclusive keeps the exact window boundary date inside the
		// demotion window.
		WindowInclusive bool `yaml:"window_inclusive"`
		// SingleTransaction wraps both sweep rules in one transaction.
		SingleTransaction bool `yaml:"single_transaction"`
		// Schedule is a cron expression for the in-process job; empty
		// disables it (the HTTP trigger keeps working either way).
		Schedule string `yaml:"schedule"`
	} `yaml:"sweep"`

	Notifications struct {
		BatchSize int `yaml:"batch_size"`
	} `yaml:"notifications"`

	App struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"app"`
}

// Load reads the configuration. When DATABASE_URL is set the whole config
// comes from environment variables (container/test mode); otherwise the YAML
// file at CONFIG_PATH (default config/config.yaml) is used.
func Load() (*Config, error) {
	var cfg Config

	if os.Getenv("DATABASE_URL") == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			return nil, fmt.Errorf("open config file %s: %w", configPath, err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
		}

		cfg.applyDefaults()
		return &cfg, nil
	}

	cfg.Database.DSN = os.Getenv("DATABASE_URL")
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.Session.Secret = os.Getenv("SESSION_SECRET")
	cfg.Sweep.Secret = os.Getenv("SWEEP_SECRET")
	cfg.App.BaseURL = os.Getenv("APP_BASE_URL")

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = os.Getenv("SMTP_FROM")

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Session.TTLMinutes == 0 {
		c.Session.TTLMinutes = 60
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "sceno_session"
	}
	if c.Sweep.PreventeWindowDays == 0 {
		c.Sweep.PreventeWindowDays = 28
		c.Sweep.WindowInclusive = true
	}
	if c.Notifications.BatchSize == 0 {
		c.Notifications.BatchSize = 10
	}
	if c.Email.FromName == "" {
		c.Email.FromName = "Scèno"
	}
}

// SessionTTL returns the session lifetime as a duration.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLMinutes) * time.Minute
}

// PreventeWindow returns the demotion window as a fixed wall-clock offset
// (not calendar-month aware).
func (c *Config) PreventeWindow() time.Duration {
	return time.Duration(c.Sweep.PreventeWindowDays) * 24 * time.Hour
}
