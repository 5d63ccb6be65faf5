package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel  string `yaml:"logLevel" json:"logLevel"`   // "debug" | "info" | "warn" | "error"
	LogFile   string `yaml:"logFile" json:"logFile"`     // empty => logging disabled (the TUI owns stdout)
	PrettyLog bool   `yaml:"prettyLog" json:"prettyLog"` // true => zap dev console encoder, false => JSON

	// Journal is the sqlite path for the message journal. Empty disables it.
	Journal string `yaml:"journal" json:"journal"`

	Theme  string `yaml:"theme" json:"theme"`   // "auto" | "light" | "dark"
	Glyphs string `yaml:"glyphs" json:"glyphs"` // "unicode" | "ascii"
}

var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidTheme    = errors.New("invalid theme")
	ErrInvalidGlyphs   = errors.New("invalid glyph set")
)

func Default() Config {
	return Config{
		LogLevel: "info",
		Theme:    "auto",
		Glyphs:   "unicode",
	}
}

// Dir returns the config directory. DOCKET_CONFIG_DIR overrides ~/.docket
// (keeps tests away from the real home directory).
func Dir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("DOCKET_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".docket"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads path (or the default path when empty), applies env overrides
// and validates the result. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) == "" {
		p, err := Path()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating the parent directory. The file is
// replaced atomically.
func Save(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return atomicWriteFile(dir, "config.*.yaml.tmp", path, b, 0o644)
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

func applyEnv(cfg *Config) error {
	if v, ok := lookup("DOCKET_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup("DOCKET_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup("DOCKET_PRETTY_LOG"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("DOCKET_PRETTY_LOG: %w", err)
		}
		cfg.PrettyLog = b
	}
	if v, ok := lookup("DOCKET_JOURNAL"); ok {
		cfg.Journal = v
	}
	if v, ok := lookup("DOCKET_THEME"); ok {
		cfg.Theme = v
	}
	if v, ok := lookup("DOCKET_GLYPHS"); ok {
		cfg.Glyphs = v
	}
	return nil
}

func lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}

func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.Glyphs = strings.ToLower(strings.TrimSpace(c.Glyphs))
	if c.Theme == "" {
		c.Theme = "auto"
	}
	if c.Glyphs == "" {
		c.Glyphs = "unicode"
	}
	c.LogFile = strings.TrimSpace(c.LogFile)
	c.Journal = strings.TrimSpace(c.Journal)
}

func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	switch c.Theme {
	case "auto", "light", "dark":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTheme, c.Theme)
	}
	switch c.Glyphs {
	case "unicode", "ascii":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidGlyphs, c.Glyphs)
	}
	return nil
}
