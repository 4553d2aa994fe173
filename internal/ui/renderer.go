package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/icebound/internal/level"
	"github.com/samdwyer/icebound/internal/leveldata"
	"github.com/samdwyer/icebound/internal/world"
)

// Theme holds the style of each drawing layer.
type Theme struct {
	Wall     tcell.Style
	Floor    tcell.Style
	Hazard   tcell.Style
	Platform tcell.Style
	Player   tcell.Style
	Status   tcell.Style
}

// DefaultTheme is used for layers a level palette leaves unset.
func DefaultTheme() Theme {
	return Theme{
		Wall:     tcell.StyleDefault.Foreground(tcell.ColorSteelBlue),
		Floor:    tcell.StyleDefault.Foreground(tcell.ColorDarkGray),
		Hazard:   tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Bold(true),
		Platform: tcell.StyleDefault.Foreground(tcell.ColorLightCyan),
		Player:   tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		Status:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
	}
}

// ThemeFromColors overrides the default theme with any set palette colours.
func ThemeFromColors(c leveldata.Colors) Theme {
	theme := DefaultTheme()
	override := func(style *tcell.Style, color tcell.Color) {
		if color != tcell.ColorDefault {
			*style = style.Foreground(color)
		}
	}
	override(&theme.Wall, c.Wall)
	override(&theme.Floor, c.Floor)
	override(&theme.Hazard, c.Hazard)
	override(&theme.Platform, c.Platform)
	override(&theme.Player, c.Player)
	return theme
}

// Renderer handles drawing the level to the screen.
type Renderer struct {
	screen *Screen
	theme  Theme
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, theme Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Origin returns the screen cell of tile (0,0). The map is centred in the
// terminal, leaving one row below it for the status line.
func (r *Renderer) Origin(grid *world.Grid) (x, y int) {
	w, h := r.screen.Size()
	x = (w - grid.Width()) / 2
	y = (h - grid.Height() - 1) / 2
	return max(x, 0), max(y, 0)
}

// Render draws the level tiles, platforms, hazards and player, then a
// status line.
func (r *Renderer) Render(l *level.Level, title string) {
	r.screen.Clear()

	ox, oy := r.Origin(l.Grid())
	put := func(p world.Position, ch rune, style tcell.Style) {
		r.screen.SetContent(ox+p.X, oy+p.Y, ch, style)
	}

	for _, d := range l.Tiles() {
		if d.Variant == world.VariantOpen {
			put(d.Position, floorGlyph, r.theme.Floor)
		} else {
			put(d.Position, wallGlyph(d.Variant), r.theme.Wall)
		}
	}

	for _, p := range l.Platforms() {
		for _, s := range p.Segments {
			put(s.Position, platformGlyph(s.Variant), r.theme.Platform)
		}
	}

	l.Hazards().Each(func(h level.Hazard) {
		put(h.Position, hazardGlyph, r.theme.Hazard)
	})

	player := l.Player()
	put(player.Position(), player.Symbol(), r.theme.Player)

	r.RenderMessage(StatusLine(l, title), ox, oy+l.Grid().Height())

	r.screen.Show()
}

// StatusLine describes the player: tile, world position, movement state and
// what it is standing on.
func StatusLine(l *level.Level, title string) string {
	player := l.Player()
	wx, wy := l.PlayerWorld()
	status := fmt.Sprintf("%s  %v [%g,%g]  %s", title, player.Position(), wx, wy, player.State())
	if l.OnHazard() {
		status += "  on fire"
	}
	if _, ok := l.PlatformUnder(); ok {
		status += "  on ice"
	}
	return status
}

// RenderMessage displays a message starting at (x, y).
func (r *Renderer) RenderMessage(msg string, x, y int) {
	i := 0
	for _, ch := range msg {
		r.screen.SetContent(x+i, y, ch, r.theme.Status)
		i++
	}
}
