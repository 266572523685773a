package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"k8s.io/klog/v2"
)

// EnvToken is the environment variable consulted for the Imgur access
// token. A .env file in the working directory is honored too.
const EnvToken = "IMGUR_ACCESS_TOKEN"

// ErrNoToken is returned when no access token could be resolved from any
// source.
var ErrNoToken = errors.New("an Imgur access token is required")

// Settings holds all persisted configuration.
//
// The access token is a secret. Save writes it owner-readable only, and
// nothing in this package ever logs or prints it.
type Settings struct {
	// AccessToken is the Imgur OAuth bearer token sent on every API call.
	AccessToken string `json:"access_token"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{}
}

// DefaultPath returns the per-user settings file location,
// <user config dir>/chapterup/config.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "chapterup", "config.json"), nil
}

// Load reads settings from a JSON file. A missing file is not an error;
// defaults come back so a first run can prompt for the token.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}

	klog.V(2).Infof("loaded settings from %s", path)
	return settings, nil
}

// Save writes settings to a JSON file, creating the parent directory if
// needed. The file holds the access token, so both get owner-only
// permissions.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// TokenFromEnv returns the token set via the IMGUR_ACCESS_TOKEN
// environment variable, loading a .env file first when one is present.
func TokenFromEnv() string {
	_ = godotenv.Load()
	return strings.TrimSpace(os.Getenv(EnvToken))
}

// EnsureToken resolves the access token and returns settings ready for
// API calls. Sources are tried in order:
//
//  1. flagToken, which is persisted for future runs,
//  2. the IMGUR_ACCESS_TOKEN environment variable, never persisted,
//  3. the settings file at path,
//  4. the prompt callback, persisted for future runs.
//
// Once a token is persisted, later runs resolve it from the file without
// prompting. A nil prompt with no other source yields ErrNoToken.
func EnsureToken(path, flagToken string, prompt func() (string, error)) (*Settings, error) {
	settings, err := Load(path)
	if err != nil {
		return nil, err
	}

	if flagToken != "" {
		settings.AccessToken = flagToken
		if err := settings.Save(path); err != nil {
			return nil, fmt.Errorf("save settings: %w", err)
		}
		return settings, nil
	}

	if token := TokenFromEnv(); token != "" {
		klog.V(1).Infof("using access token from %s", EnvToken)
		settings.AccessToken = token
		return settings, nil
	}

	if settings.AccessToken != "" {
		return settings, nil
	}

	if prompt == nil {
		return nil, ErrNoToken
	}

	token, err := prompt()
	if err != nil {
		return nil, err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrNoToken
	}

	settings.AccessToken = token
	if err := settings.Save(path); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}
	return settings, nil
}
