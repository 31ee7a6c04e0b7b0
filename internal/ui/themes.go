package ui

import (
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds the lipgloss colors used for headings and tables.
type Palette struct {
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
}

// Theme pairs the ANSI escapes written around plain text (suite status,
// error messages) with the Palette used by lipgloss styles.
type Theme struct {
	Name string

	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Info      string
	Bold      string
	Underline string
	Reset     string

	Palette Palette
}

// Theme names accepted by SetTheme and the --theme flag.
const (
	ThemeDark    = "dark"
	ThemeLight   = "light"
	ThemeNone    = "none"
	DefaultTheme = ThemeDark
)

func fg(code int) string { return fmt.Sprintf("\033[38;5;%dm", code) }

var (
	// DarkTheme suits dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      ThemeDark,
		Primary:   fg(39),
		Secondary: fg(245),
		Success:   fg(82),
		Warning:   fg(220),
		Error:     fg(196),
		Info:      fg(141),
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
		Palette: Palette{
			Text:    lipgloss.Color("#E0E0E0"),
			Border:  lipgloss.Color("#FF6600"),
			Accent:  lipgloss.Color("#FF8C00"),
			Success: lipgloss.Color("#9ece6a"),
			Warning: lipgloss.Color("#FFB347"),
			Error:   lipgloss.Color("#FF4444"),
			Dim:     lipgloss.Color("#666666"),
		},
	}

	// LightTheme uses darker tones that stay readable on white.
	LightTheme = Theme{
		Name:      ThemeLight,
		Primary:   fg(27),
		Secondary: fg(240),
		Success:   fg(28),
		Warning:   fg(130),
		Error:     fg(124),
		Info:      fg(54),
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
		Palette: Palette{
			Text:    lipgloss.Color("#1A1A1A"),
			Border:  lipgloss.Color("#005F87"),
			Accent:  lipgloss.Color("#005FAF"),
			Success: lipgloss.Color("#008700"),
			Warning: lipgloss.Color("#AF5F00"),
			Error:   lipgloss.Color("#AF0000"),
			Dim:     lipgloss.Color("#8A8A8A"),
		},
	}

	// NoColorTheme writes no escapes at all. Selected by --no-color,
	// NO_COLOR or --theme none.
	NoColorTheme = Theme{
		Name: ThemeNone,
		Palette: Palette{
			Text:    lipgloss.NoColor{},
			Border:  lipgloss.NoColor{},
			Accent:  lipgloss.NoColor{},
			Success: lipgloss.NoColor{},
			Warning: lipgloss.NoColor{},
			Error:   lipgloss.NoColor{},
			Dim:     lipgloss.NoColor{},
		},
	}

	themes = []Theme{DarkTheme, LightTheme, NoColorTheme}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// ThemeNames lists the selectable theme names.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// LookupTheme returns the theme called name.
func LookupTheme(name string) (Theme, bool) {
	i := slices.IndexFunc(themes, func(t Theme) bool { return t.Name == name })
	if i < 0 {
		return Theme{}, false
	}
	return themes[i], true
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// GetCurrentPalette returns the palette of the active theme.
func GetCurrentPalette() Palette {
	return GetCurrentTheme().Palette
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates the theme called name. The active theme is left
// unchanged for unknown names.
func SetTheme(name string) error {
	t, ok := LookupTheme(name)
	if !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	SetCurrentTheme(t)
	return nil
}

// InitTheme activates the named theme unless colors are disabled by noColor
// or the NO_COLOR environment variable (https://no-color.org/), which win
// over any name. An empty name selects DefaultTheme.
func InitTheme(name string, noColor bool) error {
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		SetCurrentTheme(NoColorTheme)
		return nil
	}
	if name == "" {
		name = DefaultTheme
	}
	return SetTheme(name)
}
