package integrations

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erwinh22/free-coding-models-sub000/internal/catalog"
	"github.com/erwinh22/free-coding-models-sub000/internal/endpoint"
)

// testSelection is a representative hand-off used across adapter tests.
var testSelection = Selection{
	ID:         "openrouter/qwen3-coder",
	Label:      "Qwen3 Coder 480B",
	Tier:       "S+",
	Provider:   "openrouter",
	URL:        "https://openrouter.ai/api/v1/models",
	Model:      "qwen/qwen3-coder:free",
	Credential: "sk-or-v1-abc",
}

func readJSON(t *testing.T, path string) map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var cfg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &cfg))
	return cfg
}

func TestNewSelection(t *testing.T) {
	e := &endpoint.Endpoint{
		Entry: catalog.Entry{
			ID:       "groq/llama-3.3-70b",
			Label:    "Llama 3.3 70B",
			Provider: "groq",
			URL:      "https://api.groq.com/openai/v1/models",
			Model:    "llama-3.3-70b-versatile",
			Tier:     catalog.TierAPlus,
		},
	}

	sel := NewSelection(e, "gsk_test")
	assert.Equal(t, "groq/llama-3.3-70b", sel.ID)
	assert.Equal(t, "A+", sel.Tier)
	assert.Equal(t, "gsk_test", sel.Credential)
}

func TestBaseURL(t *testing.T) {
	tests := []struct {
		in     string
		expect string
	}{
		{"https://openrouter.ai/api/v1/models", "https://openrouter.ai/api/v1"},
		{"https://api.groq.com/openai/v1/models", "https://api.groq.com/openai/v1"},
		{"https://example.com/v1", "https://example.com/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expect, baseURL(tt.in))
		})
	}
}

func TestOpenCode_Write_FreshConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opencode.json")
	adapter := &OpenCode{Path: path}

	require.NoError(t, adapter.Write(testSelection))

	cfg := readJSON(t, path)
	assert.Equal(t, "openrouter/qwen/qwen3-coder:free", cfg["model"])

	provider := cfg["provider"].(map[string]interface{})["openrouter"].(map[string]interface{})
	options := provider["options"].(map[string]interface{})
	assert.Equal(t, "https://openrouter.ai/api/v1", options["baseURL"])
	assert.Equal(t, "sk-or-v1-abc", options["apiKey"])
}

func TestOpenCode_Write_PreservesUnrelatedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opencode.json")
	existing := `{
  "theme": "tokyonight",
  "provider": {
    "anthropic": {"options": {"apiKey": "keep-me"}}
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(existing), 0o644))

	adapter := &OpenCode{Path: path}
	require.NoError(t, adapter.Write(testSelection))

	cfg := readJSON(t, path)
	assert.Equal(t, "tokyonight", cfg["theme"])

	providers := cfg["provider"].(map[string]interface{})
	assert.Contains(t, providers, "anthropic")
	assert.Contains(t, providers, "openrouter")
}

func TestOpenCode_Write_RejectsCorruptConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opencode.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	adapter := &OpenCode{Path: path}
	assert.Error(t, adapter.Write(testSelection))

	// The corrupt file must survive untouched
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{broken", string(data))
}

func TestCrush_Write_FreshConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crush.json")
	adapter := &Crush{Path: path}

	require.NoError(t, adapter.Write(testSelection))

	cfg := readJSON(t, path)
	provider := cfg["providers"].(map[string]interface{})["openrouter"].(map[string]interface{})
	assert.Equal(t, "openai", provider["type"])
	assert.Equal(t, "https://openrouter.ai/api/v1", provider["base_url"])
	assert.Equal(t, "sk-or-v1-abc", provider["api_key"])

	large := cfg["models"].(map[string]interface{})["large"].(map[string]interface{})
	assert.Equal(t, "openrouter", large["provider"])
	assert.Equal(t, "qwen/qwen3-coder:free", large["model"])
}

func TestCrush_Write_NestedDirectoryIsCreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "crush.json")
	adapter := &Crush{Path: path}

	require.NoError(t, adapter.Write(testSelection))
	assert.FileExists(t, path)
}

func TestWriteConfig_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	require.NoError(t, writeConfig(path, map[string]interface{}{"k": "v"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "config.json", entries[0].Name())
}

func TestForOptions(t *testing.T) {
	assert.Empty(t, ForOptions(false, false))

	both := ForOptions(true, true)
	require.Len(t, both, 2)
	assert.Equal(t, "opencode", both[0].Name())
	assert.Equal(t, "crush", both[1].Name())
}
