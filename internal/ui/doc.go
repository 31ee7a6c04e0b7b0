// Package ui provides themes and colors for the command-line output.
// ANSI escape helpers serve plain text tables; lipgloss styles render
// section headings.
package ui
