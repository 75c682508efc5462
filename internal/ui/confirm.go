package ui

import "github.com/charmbracelet/huh"

// Confirm asks a yes/no question and returns the answer. Used before
// overwriting a coding-agent tool's existing configuration.
func Confirm(title, description string) (bool, error) {
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
