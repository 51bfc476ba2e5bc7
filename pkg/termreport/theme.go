package termreport

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors and markers for terminal report output.
type Theme struct {
	Name    string
	Good    lipgloss.Style // clean modules, healthy scores
	Warn    lipgloss.Style // warning-level findings, middling scores
	Bad     lipgloss.Style // errors and failing scores
	Note    lipgloss.Style // refactor and convention chrome
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Markers Markers
}

// Markers is the per-category marker set shown next to counts.
type Markers struct {
	Error      string
	Warning    string
	Refactor   string
	Convention string
	Clean      string
	Bullet     string
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:  "default",
		Good:  lipgloss.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Bad:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Note:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),  // blue
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Bold:  lipgloss.NewStyle().Bold(true),
		Markers: Markers{
			Error:      "✗",
			Warning:    "⚠",
			Refactor:   "○",
			Convention: "·",
			Clean:      "✓",
			Bullet:     "·",
		},
	}
}

// SoftTheme returns a muted, low-contrast theme.
func SoftTheme() Theme {
	return Theme{
		Name:  "soft",
		Good:  lipgloss.NewStyle().Foreground(lipgloss.Color("108")), // sage green
		Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("179")), // muted gold
		Bad:   lipgloss.NewStyle().Foreground(lipgloss.Color("167")), // muted red
		Note:  lipgloss.NewStyle().Foreground(lipgloss.Color("75")),  // pale blue
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // lighter gray
		Bold:  lipgloss.NewStyle().Bold(true),
		Markers: Markers{
			Error:      "✗",
			Warning:    "!",
			Refactor:   "○",
			Convention: "·",
			Clean:      "✓",
			Bullet:     "·",
		},
	}
}

// MonoTheme returns a monochrome theme (no colors, ASCII markers).
func MonoTheme() Theme {
	return Theme{
		Name:  "mono",
		Good:  lipgloss.NewStyle(),
		Warn:  lipgloss.NewStyle(),
		Bad:   lipgloss.NewStyle(),
		Note:  lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle(),
		Bold:  lipgloss.NewStyle().Bold(true),
		Markers: Markers{
			Error:      "x",
			Warning:    "!",
			Refactor:   "-",
			Convention: ".",
			Clean:      "+",
			Bullet:     "-",
		},
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "soft":
		return SoftTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
