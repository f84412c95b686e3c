package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-fraud-guard/models"
)

type palette struct {
	text   lipgloss.Color
	muted  lipgloss.Color
	accent lipgloss.Color
	errorC lipgloss.Color
	border lipgloss.Color
}

var palettes = map[models.Theme]palette{
	models.ThemeDark: {
		text:   lipgloss.Color("#E5E7EB"),
		muted:  lipgloss.Color("#6B7280"),
		accent: lipgloss.Color("#60A5FA"),
		errorC: lipgloss.Color("#F87171"),
		border: lipgloss.Color("#374151"),
	},
	models.ThemeLight: {
		text:   lipgloss.Color("#111827"),
		muted:  lipgloss.Color("#9CA3AF"),
		accent: lipgloss.Color("#2563EB"),
		errorC: lipgloss.Color("#DC2626"),
		border: lipgloss.Color("#D1D5DB"),
	},
}

var riskColors = map[models.RiskLevel]lipgloss.Color{
	models.RiskLow:      lipgloss.Color("#22C55E"),
	models.RiskMedium:   lipgloss.Color("#EAB308"),
	models.RiskHigh:     lipgloss.Color("#F97316"),
	models.RiskCritical: lipgloss.Color("#EF4444"),
}

// styles is the set of lipgloss styles for one theme.
type styles struct {
	app    lipgloss.Style
	title  lipgloss.Style
	help   lipgloss.Style
	err    lipgloss.Style
	status lipgloss.Style
	box    lipgloss.Style
	label  lipgloss.Style
}

func newStyles(theme models.Theme) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[models.DefaultTheme]
	}

	return styles{
		app:    lipgloss.NewStyle().Padding(1, 2).Foreground(p.text),
		title:  lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		help:   lipgloss.NewStyle().Faint(true).Foreground(p.muted),
		err:    lipgloss.NewStyle().Bold(true).Foreground(p.errorC),
		status: lipgloss.NewStyle().Italic(true).Foreground(p.accent),
		box:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(0, 1),
		label:  lipgloss.NewStyle().Bold(true),
	}
}

// riskBadge renders level on its risk color. Unknown levels are drawn plain.
func riskBadge(level string) string {
	style := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	if c, ok := riskColors[models.RiskLevel(level)]; ok {
		style = style.Background(c).Foreground(lipgloss.Color("#000000"))
	}
	return style.Render(valueOrDash(level))
}
