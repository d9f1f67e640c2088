package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors of a rendered locus.
type Theme struct {
	Name      string
	Locus     lipgloss.Color
	Pole      lipgloss.Color
	Zero      lipgloss.Color
	Breakaway lipgloss.Color
	Title     lipgloss.Color
	Label     lipgloss.Color
	Value     lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Locus:     lipgloss.Color("#00ffff"),
		Pole:      lipgloss.Color("#ff0055"),
		Zero:      lipgloss.Color("#00ff88"),
		Breakaway: lipgloss.Color("#ffff00"),
		Title:     lipgloss.Color("#ff00ff"),
		Label:     lipgloss.Color("#888899"),
		Value:     lipgloss.Color("#00ccff"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Locus:     lipgloss.Color("#00ff00"),
		Pole:      lipgloss.Color("#88ff88"),
		Zero:      lipgloss.Color("#00cc00"),
		Breakaway: lipgloss.Color("#ffff00"),
		Title:     lipgloss.Color("#00ff00"),
		Label:     lipgloss.Color("#005500"),
		Value:     lipgloss.Color("#88ff88"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Locus:     lipgloss.Color("#cccccc"),
		Pole:      lipgloss.Color("#ffffff"),
		Zero:      lipgloss.Color("#ffffff"),
		Breakaway: lipgloss.Color("#0088ff"),
		Title:     lipgloss.Color("#ffffff"),
		Label:     lipgloss.Color("#888888"),
		Value:     lipgloss.Color("#ffffff"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Locus:     lipgloss.Color("#00a8cc"),
		Pole:      lipgloss.Color("#ff4444"),
		Zero:      lipgloss.Color("#00ff88"),
		Breakaway: lipgloss.Color("#ffd700"),
		Title:     lipgloss.Color("#0077be"),
		Label:     lipgloss.Color("#4488aa"),
		Value:     lipgloss.Color("#e0f0ff"),
	}

	// Default theme
	CurrentTheme = ThemeCyberpunk

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
