// ABOUTME: Client configuration resolved from flags, environment, .env and config.yaml
// ABOUTME: Owns the XDG config directory where the session and debug log live

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// AppName names the config directory
	AppName = "strikersgear"

	// DefaultAPIURL is the hosted catalog API
	DefaultAPIURL = "https://strikersgear-api.vercel.app"

	// DefaultTimeout bounds every API request
	DefaultTimeout = 30 * time.Second

	// EnvAPIURL overrides the API base address
	EnvAPIURL = "STRIKERSGEAR_API_URL"

	// EnvDashboardAPIURL is the variable the web dashboard's .env files use
	EnvDashboardAPIURL = "VITE_API_URL"

	// EnvConfigDir overrides the config directory
	EnvConfigDir = "STRIKERSGEAR_CONFIG_DIR"

	fileName = "config.yaml"
)

// File is the on-disk config.yaml
type File struct {
	APIURL  string `yaml:"api_url"`
	Timeout string `yaml:"timeout"`
}

// Settings is the resolved client configuration
type Settings struct {
	APIURL  string
	Timeout time.Duration
	Dir     string
}

// DefaultDir returns the config directory following the XDG spec
func DefaultDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName)
}

// LoadDotEnv loads variables from the given .env files, skipping missing ones.
// Variables already present in the environment win.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// LoadFile reads config.yaml from dir. A missing file yields an empty File.
func LoadFile(dir string) (*File, error) {
	f := &File{}
	if dir == "" {
		return f, nil
	}

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return f, nil
}

// Resolve builds Settings in priority order: flag, environment, config file, default
func Resolve(flagURL string, flagTimeout time.Duration, dir string) (*Settings, error) {
	if dir == "" {
		dir = DefaultDir()
	}

	file, err := LoadFile(dir)
	if err != nil {
		return nil, err
	}

	s := &Settings{
		APIURL:  firstNonEmpty(flagURL, os.Getenv(EnvAPIURL), os.Getenv(EnvDashboardAPIURL), file.APIURL, DefaultAPIURL),
		Timeout: DefaultTimeout,
		Dir:     dir,
	}
	s.APIURL = strings.TrimRight(s.APIURL, "/")

	switch {
	case flagTimeout > 0:
		s.Timeout = flagTimeout
	case file.Timeout != "":
		d, err := time.ParseDuration(file.Timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid timeout %q in %s", file.Timeout, fileName)
		}
		s.Timeout = d
	}

	return s, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
