package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the bare "fcm" invocation: it parses the loose token form
// (credential plus mode flags) itself and launches either the dashboard or
// the unattended best pick.
var rootCmd = &cobra.Command{
	Use:   "fcm [credential] [--best] [--opencode] [--crush] [--tier letter] [--no-color]",
	Short: "Find the healthiest free coding-model endpoint",
	Long: `fcm probes a catalog of free LLM inference endpoints, tracks their
latency and availability over time, and ranks them by stability.

Run without arguments to open the live dashboard. Pass an API credential
as the first argument to authenticate probes. Use --best for an
unattended pick that observes the endpoints briefly and prints the
winner, and --opencode / --crush to write the choice into those tools'
configuration.

Examples:
  fcm
  fcm sk-or-v1-abc123
  fcm --tier s
  fcm sk-or-v1-abc123 --best --opencode`,
	Args: cobra.ArbitraryArgs,
	// The loose token form is handled by ParseOptions, not pflag
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, a := range args {
			if a == "--help" || a == "-h" {
				return cmd.Help()
			}
			if a == "--version" {
				fmt.Printf("fcm %s\n", formatVersion(GetVersion()))
				return nil
			}
		}

		opts := ParseOptions(args)
		applyColorMode(opts.NoColor)

		if opts.Best {
			return bestCommand(opts)
		}
		return dashCommand(opts)
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
