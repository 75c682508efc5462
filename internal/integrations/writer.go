// Package integrations writes the chosen endpoint into third-party
// coding-agent configuration files. Each adapter merges its provider block
// into the tool's existing JSON config, preserving unrelated keys, and
// commits with a temp-file rename so a crash never leaves a half-written
// config behind.
package integrations

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/erwinh22/free-coding-models-sub000/internal/endpoint"
	"github.com/erwinh22/free-coding-models-sub000/internal/errors"
)

// Selection is the hand-off contract: everything an agent adapter is
// allowed to know about the chosen endpoint.
type Selection struct {
	ID         string
	Label      string
	Tier       string
	Provider   string
	URL        string
	Model      string
	Credential string
}

// NewSelection builds the hand-off record from an endpoint and credential.
func NewSelection(e *endpoint.Endpoint, credential string) Selection {
	return Selection{
		ID:         e.ID,
		Label:      e.Label,
		Tier:       string(e.Tier),
		Provider:   e.Provider,
		URL:        e.URL,
		Model:      e.Model,
		Credential: credential,
	}
}

// Adapter writes a selection into one tool's configuration.
type Adapter interface {
	// Name is the tool's display name.
	Name() string
	// ConfigPath is the tool config file this adapter writes.
	ConfigPath() (string, error)
	// Write merges the selection into the tool config.
	Write(sel Selection) error
}

// readConfig loads an existing JSON config into a generic map, or an empty
// map when the file doesn't exist yet.
func readConfig(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]interface{}{}, nil
		}
		return nil, errors.WrapWithCode(err, errors.ErrIntegration,
			"Cannot read tool config: "+path,
			"Check file permissions")
	}

	var cfg map[string]interface{}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrIntegration,
			"Tool config is not valid JSON: "+path,
			"Fix or remove the file, then retry")
	}
	return cfg, nil
}

// writeConfig marshals and commits the config atomically: write a temp file
// in the same directory, then rename over the target.
func writeConfig(path string, cfg map[string]interface{}) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrIntegration,
			"Cannot encode tool config",
			"")
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrIntegration,
			"Cannot create tool config directory: "+dir,
			"Check permissions")
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrIntegration,
			"Cannot write tool config: "+tmp,
			"Check permissions and free disk space")
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.WrapWithCode(err, errors.ErrIntegration,
			"Cannot commit tool config: "+path,
			"Check permissions")
	}
	return nil
}

// section returns cfg[key] as a map, creating it when missing or mistyped.
func section(cfg map[string]interface{}, key string) map[string]interface{} {
	if m, ok := cfg[key].(map[string]interface{}); ok {
		return m
	}
	m := map[string]interface{}{}
	cfg[key] = m
	return m
}
