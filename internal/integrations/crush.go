package integrations

import (
	"os"
	"path/filepath"
)

// Crush writes selections into crush's provider config.
type Crush struct {
	// Path overrides the default config location, used by tests.
	Path string
}

// Name returns the tool's display name.
func (c *Crush) Name() string { return "crush" }

// ConfigPath returns the crush config file location.
func (c *Crush) ConfigPath() (string, error) {
	if c.Path != "" {
		return c.Path, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "crush", "crush.json"), nil
}

// Write merges the selection into crush.json under providers.<provider>
// and records it as the large-model default, preserving unrelated keys.
func (c *Crush) Write(sel Selection) error {
	path, err := c.ConfigPath()
	if err != nil {
		return err
	}

	cfg, err := readConfig(path)
	if err != nil {
		return err
	}

	providers := section(cfg, "providers")
	providers[sel.Provider] = map[string]interface{}{
		"type":     "openai",
		"base_url": baseURL(sel.URL),
		"api_key":  sel.Credential,
		"models": []interface{}{
			map[string]interface{}{
				"id":   sel.Model,
				"name": sel.Label,
			},
		},
	}

	models := section(cfg, "models")
	models["large"] = map[string]interface{}{
		"provider": sel.Provider,
		"model":    sel.Model,
	}

	return writeConfig(path, cfg)
}

// ForOptions returns the adapters selected by the hand-off flags.
func ForOptions(openCode, crush bool) []Adapter {
	var out []Adapter
	if openCode {
		out = append(out, &OpenCode{})
	}
	if crush {
		out = append(out, &Crush{})
	}
	return out
}
