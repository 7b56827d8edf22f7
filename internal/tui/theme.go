package tui

import "github.com/charmbracelet/lipgloss"

// Theme is the palette for one of the two color schemes.
type Theme struct {
	Name string

	Title    lipgloss.Style
	Task     lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Pane     lipgloss.Style
	DoneHead lipgloss.Style
	OpenHead lipgloss.Style
	Input    lipgloss.Style
	Notice   lipgloss.Style
	Prompt   lipgloss.Style
	Muted    lipgloss.Style
}

// ThemeFor returns the dark or light theme.
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}

// DarkTheme is the default palette.
func DarkTheme() Theme {
	return Theme{
		Name:     "dark",
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89B4FA")),
		Task:     lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("#CDD6F4")),
		Selected: lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("#EE6FF8")).Background(lipgloss.Color("#313244")),
		Done:     lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("#A6E3A1")),
		Pane:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#585B70")).Padding(0, 1),
		DoneHead: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
		OpenHead: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
		Input:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#FAB387")).Padding(0, 1),
		Notice:   lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("#F38BA8")).Foreground(lipgloss.Color("#F38BA8")).Bold(true).Padding(0, 1),
		Prompt:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
	}
}

// LightTheme is the palette selected by the theme toggle.
func LightTheme() Theme {
	return Theme{
		Name:     "light",
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1E66F5")),
		Task:     lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("#4C4F69")),
		Selected: lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("#8839EF")).Background(lipgloss.Color("#DCE0E8")),
		Done:     lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("#40A02B")),
		Pane:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#9CA0B0")).Padding(0, 1),
		DoneHead: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#40A02B")),
		OpenHead: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D20F39")),
		Input:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#FE640B")).Padding(0, 1),
		Notice:   lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("#D20F39")).Foreground(lipgloss.Color("#D20F39")).Bold(true).Padding(0, 1),
		Prompt:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#DF8E1D")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8FA1")),
	}
}
