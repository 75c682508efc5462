// Package catalog holds the static registry of free coding-model endpoints:
// which providers exist, where to probe them, and their externally supplied
// capability labels. The catalog carries no live state; runtime health lives
// in the endpoint package.
package catalog

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/erwinh22/free-coding-models-sub000/internal/errors"
)

// Entry describes one endpoint in the catalog.
// Score and Context are externally supplied labels ("" when absent),
// never computed by this tool.
type Entry struct {
	ID       string `yaml:"id"`
	Label    string `yaml:"label"`
	Provider string `yaml:"provider"`
	URL      string `yaml:"url"`
	Model    string `yaml:"model"`
	Tier     Tier   `yaml:"tier"`
	Score    string `yaml:"score"`
	Context  string `yaml:"context"`
}

// entries is the built-in catalog, in display rank order.
var entries = []Entry{
	{ID: "openrouter/qwen3-coder", Label: "Qwen3 Coder 480B", Provider: "openrouter", URL: "https://openrouter.ai/api/v1/models", Model: "qwen/qwen3-coder:free", Tier: TierSPlus, Score: "61.8%", Context: "256k"},
	{ID: "openrouter/deepseek-r1", Label: "DeepSeek R1 0528", Provider: "openrouter", URL: "https://openrouter.ai/api/v1/models", Model: "deepseek/deepseek-r1-0528:free", Tier: TierS, Score: "57.6%", Context: "128k"},
	{ID: "openrouter/kimi-k2", Label: "Kimi K2", Provider: "openrouter", URL: "https://openrouter.ai/api/v1/models", Model: "moonshotai/kimi-k2:free", Tier: TierS, Score: "56.4%", Context: "128k"},
	{ID: "groq/llama-3.3-70b", Label: "Llama 3.3 70B", Provider: "groq", URL: "https://api.groq.com/openai/v1/models", Model: "llama-3.3-70b-versatile", Tier: TierAPlus, Score: "50.2%", Context: "128k"},
	{ID: "cerebras/qwen-3-32b", Label: "Qwen 3 32B", Provider: "cerebras", URL: "https://api.cerebras.ai/v1/models", Model: "qwen-3-32b", Tier: TierA, Score: "47.1%", Context: "128k"},
	{ID: "sambanova/llama-3.1-405b", Label: "Llama 3.1 405B", Provider: "sambanova", URL: "https://api.sambanova.ai/v1/models", Model: "Meta-Llama-3.1-405B-Instruct", Tier: TierA, Score: "45.9%", Context: "128k"},
	{ID: "mistral/devstral-small", Label: "Devstral Small", Provider: "mistral", URL: "https://api.mistral.ai/v1/models", Model: "devstral-small-latest", Tier: TierAMinus, Score: "41.3%", Context: "128k"},
	{ID: "gemini/flash-2.5", Label: "Gemini 2.5 Flash", Provider: "gemini", URL: "https://generativelanguage.googleapis.com/v1beta/models", Model: "gemini-2.5-flash", Tier: TierAMinus, Score: "40.0%", Context: "1m"},
	{ID: "openrouter/glm-4.5-air", Label: "GLM 4.5 Air", Provider: "openrouter", URL: "https://openrouter.ai/api/v1/models", Model: "z-ai/glm-4.5-air:free", Tier: TierBPlus, Score: "33.9%", Context: "128k"},
	{ID: "cohere/command-r-plus", Label: "Command R+", Provider: "cohere", URL: "https://api.cohere.ai/v1/models", Model: "command-r-plus", Tier: TierB, Score: "28.1%", Context: "128k"},
	{ID: "openrouter/mistral-7b", Label: "Mistral 7B", Provider: "openrouter", URL: "https://openrouter.ai/api/v1/models", Model: "mistralai/mistral-7b-instruct:free", Tier: TierC, Score: "", Context: "32k"},
}

// Entries returns a copy of the built-in catalog in its declared order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Providers returns the unique provider keys in catalog order.
func Providers() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range entries {
		if !seen[e.Provider] {
			seen[e.Provider] = true
			out = append(out, e.Provider)
		}
	}
	return out
}

// overlayFile mirrors the overlay YAML document structure.
type overlayFile struct {
	Endpoints []Entry `yaml:"endpoints"`
}

// LoadOverlay reads user-defined extra endpoints from a YAML file and
// returns the built-in catalog with the extras appended. A missing file is
// not an error: the built-in catalog is returned unchanged.
func LoadOverlay(path string) ([]Entry, error) {
	base := Entries()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot read catalog overlay: "+path,
			"Check file permissions, or remove the file to use the built-in catalog")
	}

	var overlay overlayFile
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Catalog overlay is not valid YAML: "+path,
			"Fix the file or remove it to use the built-in catalog")
	}

	for _, e := range overlay.Endpoints {
		if e.ID == "" || e.URL == "" {
			return nil, errors.New(errors.ErrConfig,
				"Catalog overlay entries need at least 'id' and 'url'",
				"Add the missing fields in "+path)
		}
		base = append(base, e)
	}

	return base, nil
}
