package ui

import (
	"github.com/samdwyer/icebound/internal/level"
	"github.com/samdwyer/icebound/internal/world"
)

const (
	hazardGlyph = '^'
	floorGlyph  = '.'
)

// wallGlyph maps an autotile variant to the rune drawn for it.
func wallGlyph(v world.Variant) rune {
	switch v {
	case world.VariantIsolated:
		return '■'
	case world.VariantLeftEdge:
		return '▐'
	case world.VariantInterior:
		return '█'
	case world.VariantRightEdge:
		return '▌'
	default:
		return floorGlyph
	}
}

// platformGlyph maps a platform segment variant to its rune.
func platformGlyph(v world.Variant) rune {
	switch v {
	case level.SegmentSolo:
		return '◆'
	case level.SegmentLeftCap:
		return '('
	case level.SegmentFill:
		return '='
	case level.SegmentRightCap:
		return ')'
	default:
		return '?'
	}
}
