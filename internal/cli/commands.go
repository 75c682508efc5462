package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/erwinh22/free-coding-models-sub000/internal/catalog"
	"github.com/erwinh22/free-coding-models-sub000/internal/config"
	"github.com/erwinh22/free-coding-models-sub000/internal/errors"
	"github.com/erwinh22/free-coding-models-sub000/internal/ui"
	"github.com/erwinh22/free-coding-models-sub000/internal/util"
)

// listCmd prints the effective catalog without probing anything
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cataloged endpoints",
	Long: `Print the endpoint catalog, including overlay entries from your
catalog.yaml and the enabled/disabled state of each provider.

Examples:
  fcm list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listCommand()
	},
}

// keyCmd manages stored API credentials
var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage stored API keys",
}

var keySetCmd = &cobra.Command{
	Use:   "set <provider> <key>",
	Short: "Store an API key for a provider",
	Long: `Store an API key so probes and tool hand-offs can authenticate
without passing the credential on every invocation.

Examples:
  fcm key set openrouter sk-or-v1-abc123
  fcm key set groq gsk_abc123`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return keySetCommand(args[0], args[1])
	},
}

var keyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show which providers have stored keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		return keyShowCommand()
	},
}

// providerCmd enables and disables catalog providers
var providerCmd = &cobra.Command{
	Use:   "provider",
	Short: "Enable or disable providers",
}

var providerEnableCmd = &cobra.Command{
	Use:   "enable <name>",
	Short: "Re-enable a disabled provider",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return providerToggleCommand(args[0], true)
	},
}

var providerDisableCmd = &cobra.Command{
	Use:   "disable <name>",
	Short: "Hide a provider from probing and ranking",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return providerToggleCommand(args[0], false)
	},
}

var providerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List providers and their state",
	RunE: func(cmd *cobra.Command, args []string) error {
		return providerListCommand()
	},
}

// profileCmd saves and replays invocation presets
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Save and reuse invocation presets",
}

var profileSaveCmd = &cobra.Command{
	Use:   "save <name> [tokens...]",
	Short: "Save the given invocation tokens as a named preset",
	Long: `Save a preset from the same loose token form the bare fcm command
accepts.

Examples:
  fcm profile save work sk-or-v1-abc123 --tier s --opencode
  fcm profile save quick --crush`,
	Args:               cobra.MinimumNArgs(1),
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New(errors.ErrParse,
				"Profile name is required",
				"Usage: fcm profile save <name> [tokens...]")
		}
		return profileSaveCommand(args[0], args[1:])
	},
}

var profileUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Open the dashboard with a saved preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return profileUseCommand(args[0])
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for fcm.

Examples:
  # Bash
  fcm completion bash > /etc/bash_completion.d/fcm

  # Zsh
  fcm completion zsh > "${fpath[1]}/_fcm"

  # Fish
  fcm completion fish > ~/.config/fish/completions/fcm.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrParse,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func listCommand() error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	overlayPath, err := config.OverlayPath()
	if err != nil {
		return err
	}
	entries, err := catalog.LoadOverlay(overlayPath)
	if err != nil {
		return err
	}

	columns := []ui.TableColumn{
		{Title: "", Width: 2},
		{Title: "ID", Width: 26},
		{Title: "MODEL", Width: 24},
		{Title: "PROVIDER", Width: 12},
		{Title: "TIER", Width: 4},
		{Title: "SCORE", Width: 6},
		{Title: "CONTEXT", Width: 7},
	}

	var rows [][]string
	for _, e := range entries {
		marker := ""
		switch {
		case !store.IsProviderEnabled(e.Provider):
			marker = "-"
		case store.IsFavorite(e.ID):
			marker = ui.SymbolStar
		}
		rows = append(rows, []string{marker, e.ID, e.Label, e.Provider, string(e.Tier), e.Score, e.Context})
	}

	fmt.Print(ui.RenderTable(columns, rows))

	if disabled := store.DisabledProviders(); len(disabled) > 0 {
		fmt.Printf("\nDisabled providers: %s\n", util.JoinOrNone(disabled))
	}
	return nil
}

func keySetCommand(provider, key string) error {
	if !knownProvider(provider) {
		return errors.New(errors.ErrConfig,
			"Unknown provider: "+provider,
			"Known providers: "+strings.Join(catalog.Providers(), ", "))
	}

	store, err := loadStore()
	if err != nil {
		return err
	}

	store.SetAPIKey(provider, key)
	if err := store.Save(); err != nil {
		return err
	}

	fmt.Printf("%s Stored key for %s\n", ui.SymbolSuccess, provider)
	return nil
}

func keyShowCommand() error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	for _, provider := range catalog.Providers() {
		state := "no key"
		if store.APIKey(provider) != "" {
			state = "key stored"
		}
		fmt.Printf("%-12s %s\n", provider, state)
	}
	return nil
}

func providerToggleCommand(provider string, enabled bool) error {
	if !knownProvider(provider) {
		return errors.New(errors.ErrConfig,
			"Unknown provider: "+provider,
			"Known providers: "+strings.Join(catalog.Providers(), ", "))
	}

	store, err := loadStore()
	if err != nil {
		return err
	}

	store.SetProviderEnabled(provider, enabled)
	if err := store.Save(); err != nil {
		return err
	}

	verb := "Enabled"
	if !enabled {
		verb = "Disabled"
	}
	fmt.Printf("%s %s %s\n", ui.SymbolSuccess, verb, provider)
	return nil
}

func providerListCommand() error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	for _, provider := range catalog.Providers() {
		state := "enabled"
		if !store.IsProviderEnabled(provider) {
			state = "disabled"
		}
		fmt.Printf("%-12s %s\n", provider, state)
	}
	return nil
}

func profileSaveCommand(name string, tokens []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	opts := ParseOptions(tokens)
	store.SetProfile(name, config.Profile{
		Credential: opts.Credential,
		Tier:       opts.TierLetter,
		OpenCode:   opts.OpenCode,
		Crush:      opts.Crush,
	})
	if err := store.Save(); err != nil {
		return err
	}

	fmt.Printf("%s Saved profile %q\n", ui.SymbolSuccess, name)
	return nil
}

func profileUseCommand(name string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	p, ok := store.Profile(name)
	if !ok {
		return errors.New(errors.ErrConfig,
			"No profile named "+name,
			"Save one with 'fcm profile save "+name+" [tokens...]'")
	}

	return dashCommand(Options{
		Credential: p.Credential,
		TierLetter: p.Tier,
		OpenCode:   p.OpenCode,
		Crush:      p.Crush,
	})
}

// knownProvider reports whether the name is in the built-in catalog.
func knownProvider(name string) bool {
	for _, p := range catalog.Providers() {
		if p == name {
			return true
		}
	}
	return false
}

func init() {
	keyCmd.AddCommand(keySetCmd)
	keyCmd.AddCommand(keyShowCmd)

	providerCmd.AddCommand(providerEnableCmd)
	providerCmd.AddCommand(providerDisableCmd)
	providerCmd.AddCommand(providerListCmd)

	profileCmd.AddCommand(profileSaveCmd)
	profileCmd.AddCommand(profileUseCmd)

	// Register all commands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(providerCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(completionCmd)
}
