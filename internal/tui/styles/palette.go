package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault ThemeName = "default" // Purple/green dark theme
	ThemeMono    ThemeName = "mono"    // Grayscale, for terminals with poor color support
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeMono),
	}
}

// IsValidTheme checks if a theme name is a built-in theme.
func IsValidTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Muted     lipgloss.Color
	Surface   lipgloss.Color
	Text      lipgloss.Color
	Border    lipgloss.Color

	// Product category labels
	SoftSkill  lipgloss.Color
	HardSkill  lipgloss.Color
	Other      lipgloss.Color
	Additional lipgloss.Color
	Button     lipgloss.Color
}

// DefaultPalette returns the default purple/green dark theme palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#A78BFA"),
		Secondary: lipgloss.Color("#10B981"),
		Warning:   lipgloss.Color("#F59E0B"),
		Error:     lipgloss.Color("#F87171"),
		Muted:     lipgloss.Color("#9CA3AF"),
		Surface:   lipgloss.Color("#1F2937"),
		Text:      lipgloss.Color("#F9FAFB"),
		Border:    lipgloss.Color("#6B7280"),

		SoftSkill:  lipgloss.Color("#83FA9D"),
		HardSkill:  lipgloss.Color("#FAA083"),
		Other:      lipgloss.Color("#FAD883"),
		Additional: lipgloss.Color("#B783FA"),
		Button:     lipgloss.Color("#83DDFA"),
	}
}

// MonoPalette returns a grayscale palette. Emphasis comes from bold and
// borders rather than hue.
func MonoPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#FFFFFF"),
		Secondary: lipgloss.Color("#D1D5DB"),
		Warning:   lipgloss.Color("#E5E7EB"),
		Error:     lipgloss.Color("#FFFFFF"),
		Muted:     lipgloss.Color("#9CA3AF"),
		Surface:   lipgloss.Color("#111111"),
		Text:      lipgloss.Color("#F3F4F6"),
		Border:    lipgloss.Color("#6B7280"),

		SoftSkill:  lipgloss.Color("#E5E7EB"),
		HardSkill:  lipgloss.Color("#D1D5DB"),
		Other:      lipgloss.Color("#9CA3AF"),
		Additional: lipgloss.Color("#F3F4F6"),
		Button:     lipgloss.Color("#BFC3C9"),
	}
}

// GetPalette returns the palette for a theme name.
// Unknown names return the default palette.
func GetPalette(name ThemeName) *ColorPalette {
	switch name {
	case ThemeMono:
		return MonoPalette()
	default:
		return DefaultPalette()
	}
}
