package leveldata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Palette holds optional hex colours for each drawing layer. Empty entries
// keep the renderer's default colour.
type Palette struct {
	Wall     string `json:"wall"`
	Floor    string `json:"floor"`
	Hazard   string `json:"hazard"`
	Platform string `json:"platform"`
	Player   string `json:"player"`
}

// Colors is a Palette resolved to terminal colours.
type Colors struct {
	Wall     tcell.Color
	Floor    tcell.Color
	Hazard   tcell.Color
	Platform tcell.Color
	Player   tcell.Color
}

// Resolve parses every set entry. Unset entries are tcell.ColorDefault.
func (p Palette) Resolve() (Colors, error) {
	var c Colors
	entries := []struct {
		name string
		hex  string
		dst  *tcell.Color
	}{
		{"wall", p.Wall, &c.Wall},
		{"floor", p.Floor, &c.Floor},
		{"hazard", p.Hazard, &c.Hazard},
		{"platform", p.Platform, &c.Platform},
		{"player", p.Player, &c.Player},
	}

	for _, e := range entries {
		*e.dst = tcell.ColorDefault
		if e.hex == "" {
			continue
		}
		color, err := ParseHexColor(e.hex)
		if err != nil {
			return Colors{}, fmt.Errorf("palette %s: %w", e.name, err)
		}
		*e.dst = color
	}
	return c, nil
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}
