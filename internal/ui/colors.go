package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/playaxis/internal/axis"
)

// Button names in display order.
var buttonOrder = []string{"previous", "play", "pause", "stop", "next"}

// buttonGlyphs maps button names to their on-screen labels.
var buttonGlyphs = map[string]string{
	"previous": "⏮",
	"play":     "▶",
	"pause":    "⏸",
	"stop":     "⏹",
	"next":     "⏭",
}

// Palette holds the resolved [lipgloss.Style] set for one appearance
// configuration: a prominent and a dimmed style per transport button, plus
// the caption and help styles.
type Palette struct {
	active  map[string]lipgloss.Style
	dimmed  map[string]lipgloss.Style
	caption lipgloss.Style
	help    lipgloss.Style
}

// NewPalette builds the stylesheet from resolved appearance settings,
// honoring the single-color flag via [axis.AppearanceSettings.ButtonColor].
func NewPalette(settings axis.Settings) *Palette {
	active := make(map[string]lipgloss.Style, len(buttonOrder))
	dimmed := make(map[string]lipgloss.Style, len(buttonOrder))

	for _, name := range buttonOrder {
		color := lipgloss.Color(settings.Appearance.ButtonColor(name))
		active[name] = lipgloss.NewStyle().Foreground(color).Bold(true).Padding(0, 1)
		dimmed[name] = lipgloss.NewStyle().Foreground(color).Faint(true).Padding(0, 1)
	}

	caption := lipgloss.NewStyle().Foreground(lipgloss.Color(settings.Caption.Color))
	// Terminal cells have no point sizes; large caption sizes render bold.
	if settings.Caption.FontSize >= 20 {
		caption = caption.Bold(true)
	}
	switch settings.Caption.Align {
	case "center":
		caption = caption.Align(lipgloss.Center)
	case "right":
		caption = caption.Align(lipgloss.Right)
	default:
		caption = caption.Align(lipgloss.Left)
	}

	return &Palette{
		active:  active,
		dimmed:  dimmed,
		caption: caption,
		help:    lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")).Italic(true),
	}
}

// Button renders the named button, dimmed or prominent.
func (p *Palette) Button(name string, prominent bool) string {
	glyph := buttonGlyphs[name]
	if prominent {
		return p.active[name].Render(glyph)
	}
	return p.dimmed[name].Render(glyph)
}

// Caption renders the caption text at the given width.
func (p *Palette) Caption(text string, width int) string {
	style := p.caption
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(text)
}
