package shared

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ConfigureColor picks the lipgloss colour profile from the configured mode
// ("auto", "always" or "never"). noColor wins over the mode.
func ConfigureColor(mode string, noColor bool) termenv.Profile {
	var profile termenv.Profile
	switch {
	case noColor || mode == "never":
		profile = termenv.Ascii
	case mode == "always":
		profile = termenv.ANSI256
	default:
		profile = termenv.EnvColorProfile()
	}
	lipgloss.SetColorProfile(profile)
	return profile
}
