package ui

import "github.com/charmbracelet/lipgloss"

// ColorReset returns the escape code clearing all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorRed returns the error color.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen returns the success color.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning color.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue returns the primary color.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorMagenta returns the info color.
func ColorMagenta() string { return GetCurrentTheme().Info }

// ColorCyan returns the secondary color.
func ColorCyan() string { return GetCurrentTheme().Secondary }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// HeadingStyle is the lipgloss style for section headings such as
// "--- Verification Summary ---".
func HeadingStyle() lipgloss.Style {
	p := GetCurrentPalette()
	return lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
}

// StatusStyle returns the style for a pass or fail status cell.
func StatusStyle(ok bool) lipgloss.Style {
	p := GetCurrentPalette()
	if ok {
		return lipgloss.NewStyle().Foreground(p.Success)
	}
	return lipgloss.NewStyle().Foreground(p.Error).Bold(true)
}

// Heading renders title as a section heading.
func Heading(title string) string {
	return HeadingStyle().Render("--- " + title + " ---")
}
