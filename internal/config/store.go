// Package config persists operator settings as a flat JSON key/value file:
// API keys per provider, disabled providers, favorite endpoints, and named
// profiles. Nothing about probe history is persisted; health state lives
// only for the duration of a run.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/erwinh22/free-coding-models-sub000/internal/errors"
)

const (
	// ConfigDir is the settings directory under the user's config root.
	ConfigDir = "fcm"
	// ConfigFileName is the settings file name.
	ConfigFileName = "config.json"
	// CatalogOverlayName is the optional user catalog overlay file name.
	CatalogOverlayName = "catalog.yaml"
)

// Profile is a named, saved set of launch options.
type Profile struct {
	Credential string `json:"credential" mapstructure:"credential"`
	Tier       string `json:"tier" mapstructure:"tier"`
	OpenCode   bool   `json:"opencode" mapstructure:"opencode"`
	Crush      bool   `json:"crush" mapstructure:"crush"`
}

// Store is the persisted key/value settings store.
type Store struct {
	v    *viper.Viper
	path string
}

// DefaultPath returns the settings file path under the user config dir.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine the user config directory",
			"Set HOME (or XDG_CONFIG_HOME) and try again")
	}
	return filepath.Join(base, ConfigDir, ConfigFileName), nil
}

// OverlayPath returns the catalog overlay path next to the settings file.
func OverlayPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine the user config directory",
			"Set HOME (or XDG_CONFIG_HOME) and try again")
	}
	return filepath.Join(base, ConfigDir, CatalogOverlayName), nil
}

// Load reads the store from path. A missing file yields an empty store;
// a corrupt one is a structured error with a fix suggestion.
func Load(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return &Store{v: v, path: path}, nil
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read settings file: "+path,
			"Fix the JSON or delete the file to start fresh")
	}

	return &Store{v: v, path: path}, nil
}

// Save writes the store back to its file, creating the directory if needed.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot create settings directory",
			"Check permissions on "+filepath.Dir(s.path))
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write settings file: "+s.path,
			"Check permissions and free disk space")
	}
	return nil
}

// APIKey returns the stored key for a provider, or "".
func (s *Store) APIKey(provider string) string {
	return s.v.GetString("api_keys." + provider)
}

// SetAPIKey stores the key for a provider.
func (s *Store) SetAPIKey(provider, key string) {
	s.v.Set("api_keys."+provider, key)
}

// DisabledProviders returns the providers excluded from probing.
func (s *Store) DisabledProviders() []string {
	return s.v.GetStringSlice("disabled_providers")
}

// SetProviderEnabled adds or removes a provider from the disabled list.
func (s *Store) SetProviderEnabled(provider string, enabled bool) {
	disabled := s.DisabledProviders()
	out := make([]string, 0, len(disabled)+1)
	for _, p := range disabled {
		if p != provider {
			out = append(out, p)
		}
	}
	if !enabled {
		out = append(out, provider)
	}
	s.v.Set("disabled_providers", out)
}

// IsProviderEnabled reports whether a provider should be probed.
func (s *Store) IsProviderEnabled(provider string) bool {
	for _, p := range s.DisabledProviders() {
		if p == provider {
			return false
		}
	}
	return true
}

// Favorites returns the favorited endpoint IDs.
func (s *Store) Favorites() []string {
	return s.v.GetStringSlice("favorites")
}

// ToggleFavorite flips an endpoint's favorite state and reports the new one.
func (s *Store) ToggleFavorite(endpointID string) bool {
	favs := s.Favorites()
	out := make([]string, 0, len(favs)+1)
	removed := false
	for _, id := range favs {
		if id == endpointID {
			removed = true
			continue
		}
		out = append(out, id)
	}
	if !removed {
		out = append(out, endpointID)
	}
	s.v.Set("favorites", out)
	return !removed
}

// IsFavorite reports whether an endpoint is favorited.
func (s *Store) IsFavorite(endpointID string) bool {
	for _, id := range s.Favorites() {
		if id == endpointID {
			return true
		}
	}
	return false
}

// Profile returns a named profile and whether it exists.
func (s *Store) Profile(name string) (Profile, bool) {
	key := "profiles." + name
	if !s.v.IsSet(key) {
		return Profile{}, false
	}
	var p Profile
	if err := s.v.UnmarshalKey(key, &p); err != nil {
		return Profile{}, false
	}
	return p, true
}

// SetProfile stores a named profile.
func (s *Store) SetProfile(name string, p Profile) {
	s.v.Set("profiles."+name, map[string]interface{}{
		"credential": p.Credential,
		"tier":       p.Tier,
		"opencode":   p.OpenCode,
		"crush":      p.Crush,
	})
}
