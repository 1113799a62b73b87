package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors - all colors meet WCAG AA contrast (4.5:1) on both black and dark surfaces
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray

	// Category colors, matching the shop's label palette
	CategorySoftSkill  = lipgloss.Color("#83FA9D") // Green
	CategoryHardSkill  = lipgloss.Color("#FAA083") // Orange
	CategoryOther      = lipgloss.Color("#FAD883") // Yellow
	CategoryAdditional = lipgloss.Color("#B783FA") // Violet
	CategoryButton     = lipgloss.Color("#83DDFA") // Cyan
)

// Styles built from the colors above. Rebuilt by Apply when the theme changes.
var (
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Text      lipgloss.Style

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Header   lipgloss.Style

	// Modal frames whatever the page opened on top of the gallery.
	Modal lipgloss.Style

	HelpBar lipgloss.Style
	HelpKey lipgloss.Style

	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	Price        lipgloss.Style

	Button         lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonDisabled lipgloss.Style

	Counter lipgloss.Style

	InputLabel   lipgloss.Style
	InputFocused lipgloss.Style

	ErrorMsg    lipgloss.Style
	SuccessMsg  lipgloss.Style
	ErrorBanner lipgloss.Style
)

func init() {
	build()
}

// build (re)creates every style from the current colors.
func build() {
	Primary = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning = lipgloss.NewStyle().Foreground(WarningColor)
	Error = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted = lipgloss.NewStyle().Foreground(MutedColor)
	Text = lipgloss.NewStyle().Foreground(TextColor)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor).
		MarginBottom(1)

	Modal = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(1, 2)

	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)

	CardSelected = Card.
		BorderForeground(PrimaryColor)

	CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor)

	Price = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor)

	Button = lipgloss.NewStyle().
		Foreground(TextColor).
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Padding(0, 2)

	ButtonActive = Button.
		Bold(true).
		BorderForeground(PrimaryColor).
		Foreground(PrimaryColor)

	ButtonDisabled = Button.
		Foreground(MutedColor).
		Faint(true)

	Counter = lipgloss.NewStyle().
		Bold(true).
		Foreground(SurfaceColor).
		Background(PrimaryColor).
		Padding(0, 1)

	InputLabel = lipgloss.NewStyle().
		Foreground(MutedColor)

	InputFocused = lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
		Foreground(ErrorColor).
		Bold(true)

	SuccessMsg = lipgloss.NewStyle().
		Foreground(SecondaryColor).
		Bold(true)

	ErrorBanner = lipgloss.NewStyle().
		Foreground(TextColor).
		Background(ErrorColor).
		Bold(true).
		Padding(0, 1)
}

// CategoryColor returns the label color for a product category.
// Unknown categories fall back to the muted color.
func CategoryColor(category string) lipgloss.Color {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "софт-скил", "soft-skill", "soft skill":
		return CategorySoftSkill
	case "хард-скил", "hard-skill", "hard skill":
		return CategoryHardSkill
	case "другое", "other":
		return CategoryOther
	case "дополнительное", "additional":
		return CategoryAdditional
	case "кнопка", "button":
		return CategoryButton
	default:
		return MutedColor
	}
}

// CategoryBadge returns a style rendering the category as a colored label.
func CategoryBadge(category string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(SurfaceColor).
		Background(CategoryColor(category)).
		Padding(0, 1)
}
