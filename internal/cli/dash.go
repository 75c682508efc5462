package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/erwinh22/free-coding-models-sub000/internal/catalog"
	"github.com/erwinh22/free-coding-models-sub000/internal/config"
	"github.com/erwinh22/free-coding-models-sub000/internal/dashboard"
	"github.com/erwinh22/free-coding-models-sub000/internal/endpoint"
	"github.com/erwinh22/free-coding-models-sub000/internal/errors"
	"github.com/erwinh22/free-coding-models-sub000/internal/integrations"
	"github.com/erwinh22/free-coding-models-sub000/internal/logger"
	"github.com/erwinh22/free-coding-models-sub000/internal/probe"
	"github.com/erwinh22/free-coding-models-sub000/internal/ui"
)

// applyColorMode forces monochrome rendering when requested.
func applyColorMode(noColor bool) {
	if noColor || !ui.ColorEnabled() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// loadStore opens the persistent config store at its default location.
func loadStore() (*config.Store, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// loadEntries builds the effective catalog: built-in entries, the user's
// overlay file, minus disabled providers.
func loadEntries(store *config.Store) ([]catalog.Entry, error) {
	overlayPath, err := config.OverlayPath()
	if err != nil {
		return nil, err
	}

	entries, err := catalog.LoadOverlay(overlayPath)
	if err != nil {
		return nil, err
	}

	var enabled []catalog.Entry
	for _, e := range entries {
		if store.IsProviderEnabled(e.Provider) {
			enabled = append(enabled, e)
		}
	}

	if len(enabled) == 0 {
		return nil, errors.New(errors.ErrConfig,
			"Every provider is disabled",
			"Re-enable one with 'fcm provider enable <name>'")
	}
	return enabled, nil
}

// credentialFor builds the per-provider credential lookup. An explicit
// credential from the command line wins over stored keys.
func credentialFor(store *config.Store, explicit string) probe.CredentialFunc {
	return func(provider string) string {
		if explicit != "" {
			return explicit
		}
		return store.APIKey(provider)
	}
}

// dashCommand opens the live dashboard and handles the endpoint the user
// hands off, if any.
func dashCommand(opts Options) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	entries, err := loadEntries(store)
	if err != nil {
		return err
	}

	if opts.TierLetter != "" && len(catalog.TierGroup(opts.TierLetter)) == 0 {
		return errors.New(errors.ErrParse,
			"Unknown tier: "+opts.TierLetter,
			"Valid tiers are S, A, B, and C")
	}

	prober := probe.NewProber(entries, credentialFor(store, opts.Credential), probe.DefaultTimeout)
	prober.SetLogger(logger.Default())

	endpoints := endpoint.New(entries)
	model := dashboard.NewModel(endpoints, prober, dashboard.DefaultInterval, opts.TierLetter, store.Favorites())

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrProbe,
			"Dashboard crashed",
			"Run with FCM_DEBUG=1 for details")
	}

	m, ok := final.(dashboard.Model)
	if !ok {
		return nil
	}

	persistFavorites(store, m.Favorites())

	if chosen := m.Chosen(); chosen != nil {
		return handOff(chosen, opts, store)
	}
	return nil
}

// persistFavorites reconciles the dashboard's favorite set with the store.
func persistFavorites(store *config.Store, current []string) {
	before := make(map[string]bool)
	for _, id := range store.Favorites() {
		before[id] = true
	}
	after := make(map[string]bool)
	for _, id := range current {
		after[id] = true
	}

	changed := false
	for id := range after {
		if !before[id] {
			store.ToggleFavorite(id)
			changed = true
		}
	}
	for id := range before {
		if !after[id] {
			store.ToggleFavorite(id)
			changed = true
		}
	}

	if changed {
		if err := store.Save(); err != nil {
			logger.Default().Warn("could not save favorites: %v", err)
		}
	}
}

// handOff writes the chosen endpoint into the requested coding-agent tool
// configs, or just prints it when no tool flag was given.
func handOff(chosen *endpoint.Endpoint, opts Options, store *config.Store) error {
	credential := opts.Credential
	if credential == "" {
		credential = store.APIKey(chosen.Provider)
	}

	sel := integrations.NewSelection(chosen, credential)
	adapters := integrations.ForOptions(opts.OpenCode, opts.Crush)

	if len(adapters) == 0 {
		fmt.Printf("%s %s (%s, tier %s)\n", ui.SymbolSuccess, chosen.Label, chosen.Provider, chosen.Tier)
		fmt.Printf("  model: %s\n", chosen.Model)
		fmt.Printf("  url:   %s\n", chosen.URL)
		return nil
	}

	for _, adapter := range adapters {
		path, err := adapter.ConfigPath()
		if err != nil {
			return err
		}

		if _, statErr := os.Stat(path); statErr == nil {
			ok, err := ui.Confirm(
				fmt.Sprintf("Update %s config?", adapter.Name()),
				path+" already exists and will be modified.")
			if err != nil {
				return errors.WrapWithCode(err, errors.ErrIntegration,
					"Confirmation prompt failed",
					"")
			}
			if !ok {
				fmt.Printf("Skipped %s\n", adapter.Name())
				continue
			}
		}

		if err := adapter.Write(sel); err != nil {
			return err
		}
		fmt.Printf("%s Wrote %s to %s config\n", ui.SymbolSuccess, chosen.Label, adapter.Name())
	}

	return nil
}
