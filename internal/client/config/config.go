package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/dealhunter/internal/logging"
)

// Config holds runtime settings for the CLI.
type Config struct {
	AccountsFile string        `koanf:"accounts_file"`
	APIBaseURL   string        `koanf:"api_base_url"`
	RedirectURL  string        `koanf:"redirect_url"`
	SearchDelay  time.Duration `koanf:"search_delay"`
	LogLevel     string        `koanf:"log_level"`
	LogFormat    string        `koanf:"log_format"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.AccountsFile = "users.csv"
	c.APIBaseURL = "https://www.cheapshark.com/api/1.0"
	c.RedirectURL = "https://www.cheapshark.com/redirect"
	c.SearchDelay = time.Second
	c.LogLevel = "warn"
	c.LogFormat = logging.FormatText
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.AccountsFile == "" {
		return errors.New("accounts file is required")
	}
	if err := validateURL("api base url", c.APIBaseURL); err != nil {
		return err
	}
	if err := validateURL("redirect url", c.RedirectURL); err != nil {
		return err
	}
	if c.SearchDelay < 0 {
		return fmt.Errorf("search delay must not be negative, got %s", c.SearchDelay)
	}
	if c.LogFormat != logging.FormatText && c.LogFormat != logging.FormatJSON {
		return fmt.Errorf("log format must be 'text' or 'json', got %q", c.LogFormat)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func validateURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be absolute, got %q", name, raw)
	}
	return nil
}
