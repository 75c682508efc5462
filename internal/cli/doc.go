// Package cli implements the fcm command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to workflow functions for the actual work:
//
//	fcm [credential] [flags] - Open the live dashboard
//	fcm ... --best           - Unattended best-endpoint pick
//	fcm list                 - Print the catalog without probing
//	fcm key set/show         - Manage stored API keys
//	fcm provider ...         - Enable or disable providers
//	fcm profile ...          - Save and replay invocation presets
//
// # Argument Handling
//
// The bare invocation accepts a loose token form: an optional credential
// as the first free token plus mode flags in any order. Flag parsing is
// disabled on the root command and ParseOptions interprets the raw
// tokens instead, so "fcm sk-abc --best" and "fcm --best sk-abc" mean
// the same thing. Subcommands use regular Cobra flag parsing.
package cli
