package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/erwinh22/free-coding-models-sub000/internal/endpoint"
	"github.com/erwinh22/free-coding-models-sub000/internal/engine"
	"github.com/erwinh22/free-coding-models-sub000/internal/errors"
	"github.com/erwinh22/free-coding-models-sub000/internal/logger"
	"github.com/erwinh22/free-coding-models-sub000/internal/probe"
	"github.com/erwinh22/free-coding-models-sub000/internal/ui"
)

var useCmd = &cobra.Command{
	Use:   "use [credential] [--opencode] [--crush] [--tier letter] [--no-color]",
	Short: "Pick an endpoint interactively and hand it off",
	Long: `Probe the catalog once, pick an endpoint from an interactive list,
and write it into the requested coding-agent tool configs.

Examples:
  fcm use --opencode
  fcm use sk-or-v1-abc123 --crush --tier a`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, a := range args {
			if a == "--help" || a == "-h" {
				return cmd.Help()
			}
		}
		opts := ParseOptions(args)
		applyColorMode(opts.NoColor)
		return useCommand(opts)
	},
}

// useCommand probes every endpoint once so the picker can show live
// verdicts, then hands off whatever the user selects.
func useCommand(opts Options) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	entries, err := loadEntries(store)
	if err != nil {
		return err
	}

	prober := probe.NewProber(entries, credentialFor(store, opts.Credential), probe.DefaultTimeout)
	prober.SetLogger(logger.Default())
	endpoints := endpoint.New(entries)

	fmt.Printf("%s Probing %d endpoints...\n", ui.SymbolProgress, len(endpoints))

	ctx, cancel := context.WithTimeout(context.Background(),
		probe.DefaultTimeout*time.Duration(len(endpoints)+1))
	for u := range prober.Run(ctx) {
		for _, e := range endpoints {
			if e.ID == u.EndpointID {
				e.Record(u.Result.Ping(), u.Result.ErrorCode)
				break
			}
		}
	}
	cancel()

	pool := endpoints
	if opts.TierLetter != "" {
		pool = engine.FilterByTierLetter(endpoints, opts.TierLetter)
		if pool == nil {
			return errors.New(errors.ErrParse,
				"Unknown tier: "+opts.TierLetter,
				"Valid tiers are S, A, B, and C")
		}
	}

	ranked := engine.Sort(pool, engine.ColumnAverageLatency, engine.Ascending)
	items := make([]ui.PickerItem, len(ranked))
	for i, e := range ranked {
		items[i] = ui.PickerItem{
			ID:       e.ID,
			Label:    e.Label,
			Provider: e.Provider,
			Tier:     string(e.Tier),
			Verdict:  engine.ComputeVerdict(e).String(),
			Latency:  formatAverage(engine.AverageLatency(e.History)),
			Favorite: store.IsFavorite(e.ID),
		}
	}

	picked, err := ui.RunPicker(items)
	if err != nil {
		return err
	}

	for _, e := range ranked {
		if e.ID == picked.ID {
			return handOff(e, opts, store)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(useCmd)
}
