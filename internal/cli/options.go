package cli

import "strings"

// Options is the parsed form of the raw command-line tokens the root
// command receives. TierLetter is "" when --tier was absent or had no value.
type Options struct {
	Credential string
	Best       bool
	OpenCode   bool
	Crush      bool
	NoColor    bool
	TierLetter string
}

// ParseOptions parses raw tokens into Options. Pure: no I/O, no globals.
//
// The first token that is neither a flag nor consumed as a flag's value is
// captured as the optional credential; later bare tokens are ignored. Flags
// are matched case-insensitively. --tier takes the following token as its
// value (uppercased) unless that token itself looks like a flag, in which
// case the value is simply absent rather than an error.
func ParseOptions(tokens []string) Options {
	var opts Options
	credentialSet := false

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		if !isFlag(token) {
			if !credentialSet {
				opts.Credential = token
				credentialSet = true
			}
			continue
		}

		switch strings.ToLower(token) {
		case "--best":
			opts.Best = true
		case "--opencode":
			opts.OpenCode = true
		case "--crush":
			opts.Crush = true
		case "--no-color":
			opts.NoColor = true
		case "--tier":
			if i+1 < len(tokens) && !isFlag(tokens[i+1]) {
				opts.TierLetter = strings.ToUpper(tokens[i+1])
				i++
			}
		}
	}

	return opts
}

// isFlag reports whether a token looks like a flag marker. A flag can never
// be captured as the credential, even when it appears first.
func isFlag(token string) bool {
	return strings.HasPrefix(token, "-")
}
