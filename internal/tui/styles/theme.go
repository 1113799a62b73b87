package styles

// SetActiveTheme switches the package-level colors and styles to the named
// theme. Unknown names fall back to the default theme.
//
// Note: This function is not thread-safe. It is designed to be called once
// before the Bubble Tea program starts, or from its event loop.
func SetActiveTheme(name ThemeName) {
	p := GetPalette(name)

	PrimaryColor = p.Primary
	SecondaryColor = p.Secondary
	WarningColor = p.Warning
	ErrorColor = p.Error
	MutedColor = p.Muted
	SurfaceColor = p.Surface
	TextColor = p.Text
	BorderColor = p.Border

	CategorySoftSkill = p.SoftSkill
	CategoryHardSkill = p.HardSkill
	CategoryOther = p.Other
	CategoryAdditional = p.Additional
	CategoryButton = p.Button

	build()
}
