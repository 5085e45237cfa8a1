// Package config loads ltcheck settings from a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Alfex4936/ltcheck/internal/chunk"
	"github.com/Alfex4936/ltcheck/internal/net"
	"github.com/Alfex4936/ltcheck/ltcheck"
)

// Config mirrors the sections of the configuration file.
type Config struct {
	Service  Service  `toml:"service"`
	Language Language `toml:"language"`
	Misc     Misc     `toml:"misc"`
	Paths    Paths    `toml:"paths"`
	UserPref UserPref `toml:"userpref"`
}

type Service struct {
	BaseURL   string `toml:"base_url"`
	UserAgent string `toml:"user_agent"`
	Timeout   int    `toml:"timeout"` // seconds
}

type Language struct {
	Default string `toml:"default"`
}

type Misc struct {
	// <= 0 disables the length check.
	MaxCharsForRequest int `toml:"max_chars_for_request"`
}

type Paths struct {
	Whitelist string `toml:"whitelist"`
}

type UserPref struct {
	IgnoreWhitelisted   bool `toml:"ignore_whitelisted"`
	AutosaveWhitelisted bool `toml:"autosave_whitelisted"`
	MisspellingsOnly    bool `toml:"misspellings_only"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Service: Service{
			BaseURL: net.DefaultBaseURL,
			Timeout: int(net.DefaultTimeout / time.Second),
		},
		Language: Language{Default: ltcheck.DefaultLanguage},
		Misc:     Misc{MaxCharsForRequest: chunk.DefaultMaxChars},
		Paths:    Paths{Whitelist: "whitelist.txt"},
	}
}

// Load reads path on top of the defaults, then applies environment
// overrides. An empty path or a missing file leaves the defaults in place.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode parses TOML text on top of the defaults.
func Decode(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("LTCHECK_BASE_URL"); v != "" {
		c.Service.BaseURL = v
	}
	if v := getenv("LTCHECK_LANGUAGE"); v != "" {
		c.Language.Default = v
	}
	if v := getenv("LTCHECK_WHITELIST"); v != "" {
		c.Paths.Whitelist = v
	}
	if v := getenv("LTCHECK_MAX_CHARS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: LTCHECK_MAX_CHARS: %w", err)
		}
		c.Misc.MaxCharsForRequest = n
	}
	return nil
}

// Validate checks the settings that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Service.BaseURL == "" {
		return errors.New("config: service.base_url is empty")
	}
	if c.Language.Default == "" {
		return errors.New("config: language.default is empty")
	}
	if c.Service.Timeout < 0 {
		return fmt.Errorf("config: service.timeout %d is negative", c.Service.Timeout)
	}
	return nil
}

// Options maps the settings onto client options.
func (c *Config) Options() ltcheck.Options {
	return ltcheck.Options{
		BaseURL:         c.Service.BaseURL,
		DefaultLanguage: c.Language.Default,
		MaxChars:        c.Misc.MaxCharsForRequest,
		Timeout:         time.Duration(c.Service.Timeout) * time.Second,
		UserAgent:       c.Service.UserAgent,
	}
}

// ReviewOptions maps the user preferences onto review options.
func (c *Config) ReviewOptions() ltcheck.ReviewOptions {
	opts := ltcheck.ReviewOptions{
		IgnoreWhitelisted: c.UserPref.IgnoreWhitelisted,
		MisspellingsOnly:  c.UserPref.MisspellingsOnly,
	}
	if c.UserPref.AutosaveWhitelisted {
		opts.AutosavePath = c.Paths.Whitelist
	}
	return opts
}
