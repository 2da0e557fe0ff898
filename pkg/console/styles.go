package console

import "github.com/charmbracelet/lipgloss"

type styles struct {
	banner  lipgloss.Style
	info    lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	muted   lipgloss.Style
	link    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		banner: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#1D63ED")).
			Padding(0, 2),
		info:    r.NewStyle().Foreground(lipgloss.Color("51")),
		success: r.NewStyle().Foreground(lipgloss.Color("46")),
		warning: r.NewStyle().Foreground(lipgloss.Color("220")),
		err:     r.NewStyle().Foreground(lipgloss.Color("196")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("244")),
		link:    r.NewStyle().Foreground(lipgloss.Color("51")).Underline(true),
	}
}
