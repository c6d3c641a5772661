package theme

import (
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"palinview/internal/presenter"
)

// RolePalette holds the colors for one verdict role.
type RolePalette struct {
	// Background is a three-stop diagonal gradient.
	Background [3]color.NRGBA
	Letter     color.NRGBA
	Caption    color.NRGBA
	Particle   color.NRGBA
}

// Palette defines the system colors.
type Palette struct {
	Roles map[presenter.Role]RolePalette

	Field       color.NRGBA
	FieldBorder color.NRGBA
	FieldFocus  color.NRGBA
	Text        color.NRGBA
	TextMuted   color.NRGBA
	Button      color.NRGBA
	ButtonText  color.NRGBA
}

// Role returns the palette of a role, falling back to neutral.
func (p Palette) Role(r presenter.Role) RolePalette {
	if rp, ok := p.Roles[r]; ok {
		return rp
	}
	return p.Roles[presenter.RoleNeutral]
}

// Config defines the system metrics.
type Config struct {
	CornerRadius unit.Dp
	Padding      unit.Dp
	FieldWidth   unit.Dp
	ParticleSize unit.Dp
	BounceHeight unit.Dp
	FontInput    unit.Sp
	FontLetter   unit.Sp
	FontIcon     unit.Sp
	FontCaption  unit.Sp
}

// Theme wraps the material theme with the visualizer's styling.
type Theme struct {
	*material.Theme
	Mode    string
	Palette Palette
	Config  Config
}

// NewTheme creates a theme for "light" or "dark" mode.
func NewTheme(mode string) *Theme {
	mt := material.NewTheme()
	mt.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	t := &Theme{Theme: mt}
	t.SetMode(mode)

	t.Config = Config{
		CornerRadius: unit.Dp(28),
		Padding:      unit.Dp(24),
		FieldWidth:   unit.Dp(420),
		ParticleSize: unit.Dp(10),
		BounceHeight: unit.Dp(14),
		FontInput:    unit.Sp(24),
		FontLetter:   unit.Sp(56),
		FontIcon:     unit.Sp(30),
		FontCaption:  unit.Sp(18),
	}
	return t
}

// SetMode switches palettes in place.
func (t *Theme) SetMode(mode string) {
	if mode == "dark" {
		setupDarkTheme(t)
	} else {
		setupLightTheme(t)
		mode = "light"
	}
	t.Mode = mode
	t.Theme.Palette.Fg = t.Palette.Text
	t.Theme.Palette.Bg = t.Palette.Field
	t.Theme.Palette.ContrastBg = t.Palette.Button
	t.Theme.Palette.ContrastFg = t.Palette.ButtonText
}

func rgb(v uint32) color.NRGBA {
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}

func setupLightTheme(t *Theme) {
	// Pastel gradients: green/blue/purple, greys, indigo/purple/pink.
	t.Palette = Palette{
		Roles: map[presenter.Role]RolePalette{
			presenter.RoleCelebrate: {
				Background: [3]color.NRGBA{rgb(0xBBF7D0), rgb(0xBFDBFE), rgb(0xE9D5FF)},
				Letter:     rgb(0x16A34A),
				Caption:    rgb(0x15803D),
				Particle:   rgb(0xFACC15),
			},
			presenter.RoleMuted: {
				Background: [3]color.NRGBA{rgb(0xD1D5DB), rgb(0xE5E7EB), rgb(0xF3F4F6)},
				Letter:     rgb(0x6B7280),
				Caption:    rgb(0x4B5563),
				Particle:   rgb(0x9CA3AF),
			},
			presenter.RoleNeutral: {
				Background: [3]color.NRGBA{rgb(0xC7D2FE), rgb(0xE9D5FF), rgb(0xFBCFE8)},
				Letter:     rgb(0x4F46E5),
				Caption:    rgb(0x4338CA),
				Particle:   rgb(0xA5B4FC),
			},
		},
		Field:       color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xCC},
		FieldBorder: rgb(0xD1D5DB),
		FieldFocus:  rgb(0x60A5FA),
		Text:        rgb(0x111827),
		TextMuted:   rgb(0x6B7280),
		Button:      rgb(0x6366F1),
		ButtonText:  rgb(0xFFFFFF),
	}
}

func setupDarkTheme(t *Theme) {
	t.Palette = Palette{
		Roles: map[presenter.Role]RolePalette{
			presenter.RoleCelebrate: {
				Background: [3]color.NRGBA{rgb(0x14532D), rgb(0x1E3A8A), rgb(0x581C87)},
				Letter:     rgb(0x4ADE80),
				Caption:    rgb(0x86EFAC),
				Particle:   rgb(0xFDE047),
			},
			presenter.RoleMuted: {
				Background: [3]color.NRGBA{rgb(0x1F2937), rgb(0x111827), rgb(0x030712)},
				Letter:     rgb(0x9CA3AF),
				Caption:    rgb(0xD1D5DB),
				Particle:   rgb(0x6B7280),
			},
			presenter.RoleNeutral: {
				Background: [3]color.NRGBA{rgb(0x312E81), rgb(0x3B0764), rgb(0x500724)},
				Letter:     rgb(0xA5B4FC),
				Caption:    rgb(0xC7D2FE),
				Particle:   rgb(0x818CF8),
			},
		},
		Field:       color.NRGBA{R: 0x1F, G: 0x29, B: 0x37, A: 0xCC},
		FieldBorder: rgb(0x4B5563),
		FieldFocus:  rgb(0x60A5FA),
		Text:        rgb(0xF9FAFB),
		TextMuted:   rgb(0x9CA3AF),
		Button:      rgb(0x818CF8),
		ButtonText:  rgb(0x111827),
	}
}
