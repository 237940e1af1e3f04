package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	primaryColor = lipgloss.Color("#D64541") // Tomato red
	accentColor  = lipgloss.Color("#00AA00") // Green
	mutedColor   = lipgloss.Color("#888888") // Gray
	textColor    = lipgloss.Color("#FFFFFF") // White
)

// Styles
var (
	// Title style - bold red with tomato emoji
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// Success banner style
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	// Key-value pair styles
	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)
)

// PrintVersion prints version information
func PrintVersion(version string) {
	fmt.Println(TitleStyle.Render("Focusloop 🍅"))
	fmt.Printf("%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
	fmt.Println()
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintSuccess prints a completion banner
func PrintSuccess(message string) {
	fmt.Println(SuccessStyle.Render(message))
}
