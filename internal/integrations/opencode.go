package integrations

import (
	"os"
	"path/filepath"
	"strings"
)

// OpenCode writes selections into opencode's provider config.
type OpenCode struct {
	// Path overrides the default config location, used by tests.
	Path string
}

// Name returns the tool's display name.
func (o *OpenCode) Name() string { return "opencode" }

// ConfigPath returns the opencode config file location.
func (o *OpenCode) ConfigPath() (string, error) {
	if o.Path != "" {
		return o.Path, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "opencode", "opencode.json"), nil
}

// Write merges the selection into opencode.json under provider.<provider>,
// sets it as the default model, and leaves every other key untouched.
func (o *OpenCode) Write(sel Selection) error {
	path, err := o.ConfigPath()
	if err != nil {
		return err
	}

	cfg, err := readConfig(path)
	if err != nil {
		return err
	}

	providers := section(cfg, "provider")
	providers[sel.Provider] = map[string]interface{}{
		"options": map[string]interface{}{
			"baseURL": baseURL(sel.URL),
			"apiKey":  sel.Credential,
		},
		"models": map[string]interface{}{
			sel.Model: map[string]interface{}{
				"name": sel.Label,
			},
		},
	}
	cfg["model"] = sel.Provider + "/" + sel.Model

	return writeConfig(path, cfg)
}

// baseURL strips the probe path suffix so the tool gets the API root.
func baseURL(probeURL string) string {
	if i := strings.LastIndex(probeURL, "/models"); i > 0 {
		return probeURL[:i]
	}
	return probeURL
}
