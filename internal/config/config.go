package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AvengeMedia/artspace/internal/errdefs"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type DescriptionMode string

const (
	// DescriptionInline always shows the description under the title.
	DescriptionInline DescriptionMode = "inline"
	// DescriptionTooltip shows the description only while toggled on.
	DescriptionTooltip DescriptionMode = "tooltip"
)

const (
	MinImageWidth = 8
	MaxImageWidth = 200
)

const (
	EnvDescriptionMode = "ARTSPACE_DESCRIPTION_MODE"
	EnvLogLevel        = "ARTSPACE_LOG_LEVEL"
)

type Config struct {
	DescriptionMode DescriptionMode `yaml:"description_mode"`
	ImageWidth      int             `yaml:"image_width"`
	ImageAlpha      float64         `yaml:"image_alpha"`
	LogLevel        string          `yaml:"log_level"`
	Mouse           bool            `yaml:"mouse"`
}

func Default() Config {
	return Config{
		DescriptionMode: DescriptionTooltip,
		ImageWidth:      48,
		ImageAlpha:      0.6,
		LogLevel:        "info",
		Mouse:           true,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/artspace/config.yaml, falling back to ~/.config.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "artspace", "config.yaml")
}

// LogPath returns $XDG_STATE_HOME/artspace/artspace.log, falling back to ~/.local/state.
func LogPath() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".local", "state")
	}
	return filepath.Join(dir, "artspace", "artspace.log")
}

type Loader struct {
	fs     afero.Fs
	getenv func(string) string
	now    func() time.Time
}

func NewLoader(fsys afero.Fs) *Loader {
	return &Loader{fs: fsys, getenv: os.Getenv, now: time.Now}
}

// Load reads path over the defaults. A missing file is not an error.
// Environment overrides are applied last.
func (l *Loader) Load(path string) (Config, error) {
	cfg := Default()

	data, err := afero.ReadFile(l.fs, path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errdefs.NewCustomError(errdefs.ErrTypeConfig, fmt.Sprintf("failed to parse %s: %v", path, err))
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if v := l.getenv(EnvDescriptionMode); v != "" {
		cfg.DescriptionMode = DescriptionMode(strings.ToLower(v))
	}
	if v := l.getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating the parent directory.
func (l *Loader) Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := l.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := afero.WriteFile(l.fs, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Backup copies an existing config next to itself with a timestamp suffix
// and returns the backup path.
func (l *Loader) Backup(path string) (string, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read existing config: %w", err)
	}

	timestamp := l.now().Format("2006-01-02_15-04-05")
	backupPath := path + ".backup." + timestamp
	if err := afero.WriteFile(l.fs, backupPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to create backup: %w", err)
	}
	return backupPath, nil
}

func (c Config) Validate() error {
	switch c.DescriptionMode {
	case DescriptionInline, DescriptionTooltip:
	default:
		return configError("description_mode must be %q or %q, got %q", DescriptionInline, DescriptionTooltip, c.DescriptionMode)
	}

	if c.ImageWidth < MinImageWidth || c.ImageWidth > MaxImageWidth {
		return configError("image_width must be between %d and %d, got %d", MinImageWidth, MaxImageWidth, c.ImageWidth)
	}

	if c.ImageAlpha < 0 || c.ImageAlpha > 1 {
		return configError("image_alpha must be between 0 and 1, got %g", c.ImageAlpha)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return configError("log_level must be one of debug, info, warn, error, got %q", c.LogLevel)
	}

	return nil
}

func configError(format string, args ...interface{}) error {
	return errdefs.NewCustomError(errdefs.ErrTypeConfig, fmt.Sprintf(format, args...))
}
