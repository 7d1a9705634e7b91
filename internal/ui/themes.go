package ui

import (
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

// StyleTheme defines a clean cyberpunk color scheme for the TUI
type StyleTheme struct {
	Name          string
	Cyan          lipgloss.Color // Primary UI accent
	Purple        lipgloss.Color // Metadata
	VibrantPurple lipgloss.Color // Errors and gradient accent
	Green         lipgloss.Color // Completed indicators
	Red           lipgloss.Color // Errors
	Orange        lipgloss.Color // Open indicators
	Gray          lipgloss.Color // Muted text
	DarkGray      lipgloss.Color // Borders and backgrounds
	White         lipgloss.Color // Main text
}

// CleanCyberTheme is the default color scheme
var CleanCyberTheme = StyleTheme{
	Name:          "clean_cyber",
	Cyan:          lipgloss.Color("#00D9FF"),
	Purple:        lipgloss.Color("#E6CCFF"),
	VibrantPurple: lipgloss.Color("#9F4DFF"),
	Green:         lipgloss.Color("#00FF88"),
	Red:           lipgloss.Color("#FF0066"),
	Orange:        lipgloss.Color("#FF8800"),
	Gray:          lipgloss.Color("#666666"),
	DarkGray:      lipgloss.Color("#333333"),
	White:         lipgloss.Color("#EEEEEE"),
}

// MonokaiProTheme provides warm dark colors inspired by Monokai Pro
var MonokaiProTheme = StyleTheme{
	Name:          "monokai_pro",
	Cyan:          lipgloss.Color("#78DCE8"),
	Purple:        lipgloss.Color("#AB9DF2"),
	VibrantPurple: lipgloss.Color("#FF6188"),
	Green:         lipgloss.Color("#A9DC76"),
	Red:           lipgloss.Color("#FF6188"),
	Orange:        lipgloss.Color("#FC9867"),
	Gray:          lipgloss.Color("#727072"),
	DarkGray:      lipgloss.Color("#403E41"),
	White:         lipgloss.Color("#FCFCFA"),
}

// activeTheme is the theme all views render with
var activeTheme = CleanCyberTheme

// SetTheme switches the active theme by config name. Unknown names
// keep the default.
func SetTheme(name string) {
	switch name {
	case MonokaiProTheme.Name:
		activeTheme = MonokaiProTheme
	case CleanCyberTheme.Name:
		activeTheme = CleanCyberTheme
	}
}

func (t StyleTheme) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.DarkGray).
		Foreground(t.Cyan).
		Bold(true)
}

func (t StyleTheme) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Red).
		Bold(true)
}

func (t StyleTheme) SelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Cyan).
		Bold(true)
}

func (t StyleTheme) TextStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.White)
}

func (t StyleTheme) MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Gray)
}

func (t StyleTheme) SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Green)
}

// ToGlamourStyle converts our theme to a glamour style config for markdown rendering
func (t StyleTheme) ToGlamourStyle() ansi.StyleConfig {
	// Start with a base dark style
	style := styles.DraculaStyleConfig

	// Remove document margin so the viewport owns the layout
	style.Document.Margin = uintPtr(0)

	style.Document.StylePrimitive.Color = stringPtr(string(t.White))
	style.Heading.StylePrimitive.Color = stringPtr(string(t.Cyan))
	style.Heading.StylePrimitive.Bold = boolPtr(true)

	style.H1.StylePrimitive.Color = stringPtr(string(t.Cyan))
	style.H1.StylePrimitive.Bold = boolPtr(true)
	style.H1.StylePrimitive.Prefix = ""
	style.H1.Prefix = "▸ "
	style.H1.Suffix = ""
	style.H1.Format = ""

	style.Strong.Color = stringPtr(string(t.Purple))
	style.Emph.Color = stringPtr(string(t.Orange))
	style.Code.Color = stringPtr(string(t.Green))

	return style
}

// Helper functions for creating pointers
func stringPtr(s string) *string { return &s }
func uintPtr(u uint) *uint       { return &u }
func boolPtr(b bool) *bool       { return &b }
