// Package config provides configuration management for chapterup.
//
// This package handles:
//   - Loading and saving settings from a JSON file
//   - Locating the per-user settings path
//   - Resolving the Imgur access token from its sources
//
// # Settings File
//
// Settings live at <user config dir>/chapterup/config.json:
//
//	path, err := config.DefaultPath()
//	settings, err := config.Load(path)
//
// A missing file yields defaults, so a first run simply has no token yet.
// Because the file stores the access token, Save writes it with owner-only
// permissions (0600, directory 0700).
//
// # Token Resolution
//
// EnsureToken tries the sources in precedence order: the --access-token
// flag (persisted), the IMGUR_ACCESS_TOKEN environment variable or a .env
// file (used for the run, never persisted), the settings file, and finally
// an interactive prompt (persisted):
//
//	settings, err := config.EnsureToken(path, flagToken, promptFn)
//
// After a token has been persisted once, later runs never prompt again.
package config
