package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := Load(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	return s
}

func TestLoad_MissingFileIsEmptyStore(t *testing.T) {
	s := tempStore(t)
	assert.Empty(t, s.APIKey("openrouter"))
	assert.Empty(t, s.DisabledProviders())
	assert.Empty(t, s.Favorites())
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestStore_SaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.json")

	s, err := Load(path)
	require.NoError(t, err)

	s.SetAPIKey("openrouter", "sk-or-v1-abc")
	s.SetProviderEnabled("cohere", false)
	s.ToggleFavorite("openrouter/qwen3-coder")
	require.NoError(t, s.Save())

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-or-v1-abc", reloaded.APIKey("openrouter"))
	assert.Equal(t, []string{"cohere"}, reloaded.DisabledProviders())
	assert.True(t, reloaded.IsFavorite("openrouter/qwen3-coder"))
}

func TestStore_ProviderEnablement(t *testing.T) {
	s := tempStore(t)

	assert.True(t, s.IsProviderEnabled("groq"))

	s.SetProviderEnabled("groq", false)
	assert.False(t, s.IsProviderEnabled("groq"))
	assert.Equal(t, []string{"groq"}, s.DisabledProviders())

	// Disabling twice doesn't duplicate
	s.SetProviderEnabled("groq", false)
	assert.Equal(t, []string{"groq"}, s.DisabledProviders())

	s.SetProviderEnabled("groq", true)
	assert.True(t, s.IsProviderEnabled("groq"))
	assert.Empty(t, s.DisabledProviders())
}

func TestStore_ToggleFavorite(t *testing.T) {
	s := tempStore(t)

	assert.True(t, s.ToggleFavorite("a/one"))
	assert.True(t, s.IsFavorite("a/one"))

	assert.False(t, s.ToggleFavorite("a/one"))
	assert.False(t, s.IsFavorite("a/one"))
}

func TestStore_Profiles(t *testing.T) {
	s := tempStore(t)

	_, ok := s.Profile("work")
	assert.False(t, ok)

	s.SetProfile("work", Profile{
		Credential: "sk-abc",
		Tier:       "S",
		OpenCode:   true,
	})

	p, ok := s.Profile("work")
	require.True(t, ok)
	assert.Equal(t, "sk-abc", p.Credential)
	assert.Equal(t, "S", p.Tier)
	assert.True(t, p.OpenCode)
	assert.False(t, p.Crush)
}

func TestStore_ProfileRoundTripsThroughDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	s, err := Load(path)
	require.NoError(t, err)
	s.SetProfile("quick", Profile{Tier: "A", Crush: true})
	require.NoError(t, s.Save())

	reloaded, err := Load(path)
	require.NoError(t, err)
	p, ok := reloaded.Profile("quick")
	require.True(t, ok)
	assert.Equal(t, "A", p.Tier)
	assert.True(t, p.Crush)
}
